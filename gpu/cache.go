package gpu

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type textureKey struct {
	target Target
	path   string
}

// TextureCache loads textures from files and keeps the most recently used ones
// alive. The cache owns every texture it returns: callers must not call
// Release on them. Evicted textures are released by the cache.
type TextureCache struct {
	ctx   *Context
	opts  LoadOptions
	cache *lru.Cache[textureKey, *Texture]
}

// NewTextureCache creates a cache holding up to size textures. All textures are
// loaded using the given options.
func NewTextureCache(ctx *Context, size int, opts *LoadOptions) (*TextureCache, error) {
	cache, err := lru.NewWithEvict[textureKey, *Texture](size, releaseTextureOnEviction)
	if err != nil {
		return nil, fmt.Errorf("create texture cache: %w", err)
	}

	return &TextureCache{
		ctx:   ctx,
		opts:  opts.withDefaults(),
		cache: cache,
	}, nil
}

// Get returns the texture for the file at path, loading it on a cache miss.
// The returned texture stays valid until it is evicted, so bind it right
// away instead of holding on to it across other Get calls.
func (c *TextureCache) Get(target Target, path string) (*Texture, error) {
	key := textureKey{target: target, path: path}

	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	tex, err := LoadTexture(c.ctx, target, path, &c.opts)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, tex)

	return tex, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return c.cache.Len()
}

// Purge releases all cached textures.
func (c *TextureCache) Purge() {
	c.cache.Purge()
}

func releaseTextureOnEviction(_ textureKey, tex *Texture) {
	tex.Release()
}
