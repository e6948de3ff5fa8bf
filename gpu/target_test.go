package gpu_test

import (
	"testing"

	"github.com/oliverbestmann/gltex/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetGLEnum(t *testing.T) {
	targets := gpu.Targets()
	require.Len(t, targets, 11)

	seen := map[uint32]gpu.Target{}

	for _, target := range targets {
		glEnum := target.GLEnum()
		assert.NotZero(t, glEnum, "target %s", target)

		if other, ok := seen[glEnum]; ok {
			t.Errorf("%s and %s share GL enum 0x%04x", target, other, glEnum)
		}

		seen[glEnum] = target
	}
}

func TestTargetGLEnumValues(t *testing.T) {
	assert.Equal(t, uint32(0x0DE1), gpu.Texture2D.GLEnum())
	assert.Equal(t, uint32(0x8513), gpu.TextureCubeMap.GLEnum())
	assert.Equal(t, uint32(0x9102), gpu.Texture2DMultisampleArray.GLEnum())
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "Texture2D", gpu.Texture2D.String())
	assert.Equal(t, "TextureCubeMapArray", gpu.TextureCubeMapArray.String())
	assert.Equal(t, "Target(42)", gpu.Target(42).String())
}

func TestTargetGLEnumInvalid(t *testing.T) {
	assert.PanicsWithValue(t, "invalid texture target Target(42)", func() {
		gpu.Target(42).GLEnum()
	})
}

func TestLoadTextureInvalidTarget(t *testing.T) {
	ctx, driver := newContext(t)

	_, err := gpu.LoadTexture(ctx, gpu.Target(42), writeRGBA(t, "a.png", 2, 2, red), nil)

	var targetErr *gpu.UnsupportedTargetError
	require.ErrorAs(t, err, &targetErr)
	assert.Equal(t, gpu.Target(42), targetErr.Target)

	assert.Empty(t, driver.Calls())
}
