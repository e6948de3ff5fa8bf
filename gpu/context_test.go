package gpu_test

import (
	"testing"

	"github.com/oliverbestmann/gltex/gpu"
	"github.com/oliverbestmann/gltex/internal/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextIsUnique(t *testing.T) {
	ctx, _ := newContext(t)

	assert.Same(t, ctx, gpu.Current())

	other, err := gpu.New(fakegl.New())
	assert.ErrorIs(t, err, gpu.ErrContextExists)
	assert.Nil(t, other)

	ctx.Release()
	assert.Nil(t, gpu.Current())

	// the slot is free again
	next, err := gpu.New(fakegl.New())
	require.NoError(t, err)

	next.Release()
}

func TestContextInfo(t *testing.T) {
	driver := fakegl.New()
	driver.Renderer = "Test Renderer"
	driver.Version = "4.1.0 Test"

	ctx, err := gpu.New(driver)
	require.NoError(t, err)

	defer ctx.Release()

	assert.Equal(t, gpu.Info{Renderer: "Test Renderer", Version: "4.1.0 Test"}, ctx.Info())
	assert.Same(t, driver, ctx.Driver())
}

func TestReleaseOfStaleContextKeepsCurrent(t *testing.T) {
	ctx, _ := newContext(t)

	ctx.Release()

	next, err := gpu.New(fakegl.New())
	require.NoError(t, err)

	defer next.Release()

	// releasing the old context again must not free the slot of the new one
	ctx.Release()
	assert.Same(t, next, gpu.Current())
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_VALUE", gpu.ErrorName(gpu.GLInvalidValue))
	assert.Equal(t, "GL error 0x1234", gpu.ErrorName(0x1234))
}
