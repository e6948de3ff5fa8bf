// Package fakegl provides an in memory gpu.Driver that records every call.
// It models the parts of OpenGL the gpu package relies on: texture names,
// per target bindings, level 0 sizes, parameters and the error queue.
package fakegl

import (
	"fmt"
	"slices"

	"github.com/oliverbestmann/gltex/gpu"
)

var _ gpu.Driver = (*Driver)(nil)

// Call is one recorded driver call.
type Call struct {
	Name   string
	Target uint32
	Handle gpu.Handle
}

func (c Call) String() string {
	return fmt.Sprintf("%s(0x%04x, %d)", c.Name, c.Target, c.Handle)
}

// Level holds what was uploaded to level 0 of a texture.
type Level struct {
	Width, Height, Depth int32
	Format               gpu.PixelFormat
	Pixels               []byte
}

type textureState struct {
	// target of the first bind, like GL a name gets its type on first bind
	target uint32
	bound  bool

	levels map[uint32]Level
	params map[uint32]int32
}

// Driver is a fake gpu.Driver.
type Driver struct {
	Renderer string
	Version  string

	// FailAlloc makes GenTexture return no name and queue GL_OUT_OF_MEMORY.
	FailAlloc bool

	// FailUpload queues the given error on the next TexImage call.
	FailUpload uint32

	nextHandle gpu.Handle
	textures   map[gpu.Handle]*textureState
	bindings   map[uint32]gpu.Handle
	deletes    map[gpu.Handle]int
	errors     []uint32
	pixelStore map[uint32]int32

	calls []Call
}

func New() *Driver {
	return &Driver{
		Renderer: "fakegl",
		Version:  "4.1 fakegl",

		nextHandle: 1,
		textures:   map[gpu.Handle]*textureState{},
		bindings:   map[uint32]gpu.Handle{},
		deletes:    map[gpu.Handle]int{},
		pixelStore: map[uint32]int32{},
	}
}

func (d *Driver) record(name string, target uint32, handle gpu.Handle) {
	d.calls = append(d.calls, Call{Name: name, Target: target, Handle: handle})
}

// PushError queues an error as if a previous call failed.
func (d *Driver) PushError(code uint32) {
	d.errors = append(d.errors, code)
}

func (d *Driver) GenTexture() gpu.Handle {
	d.record("GenTexture", 0, 0)

	if d.FailAlloc {
		d.PushError(gpu.GLOutOfMemory)
		return 0
	}

	handle := d.nextHandle
	d.nextHandle += 1

	d.textures[handle] = &textureState{
		levels: map[uint32]Level{},
		params: map[uint32]int32{},
	}

	return handle
}

func (d *Driver) DeleteTexture(handle gpu.Handle) {
	d.record("DeleteTexture", 0, handle)

	d.deletes[handle] += 1
	delete(d.textures, handle)

	// deleting a bound texture reverts the binding to zero
	for target, bound := range d.bindings {
		if bound == handle {
			d.bindings[target] = 0
		}
	}
}

func (d *Driver) BindTexture(target uint32, handle gpu.Handle) {
	d.record("BindTexture", target, handle)

	if handle == 0 {
		d.bindings[target] = 0
		return
	}

	tex, ok := d.textures[handle]
	if !ok {
		d.PushError(gpu.GLInvalidValue)
		return
	}

	if tex.bound && tex.target != target {
		d.PushError(gpu.GLInvalidOperation)
		return
	}

	tex.target = target
	tex.bound = true

	d.bindings[target] = handle
}

// boundTo resolves the texture bound to target. Cube map faces resolve to
// the cube map binding.
func (d *Driver) boundTo(target uint32) (*textureState, bool) {
	binding := target
	if target >= gpu.GLTextureCubeMapPositiveX && target < gpu.GLTextureCubeMapPositiveX+6 {
		binding = gpu.GLTextureCubeMap
	}

	tex, ok := d.textures[d.bindings[binding]]
	if !ok {
		d.PushError(gpu.GLInvalidOperation)
		return nil, false
	}

	return tex, true
}

func (d *Driver) TexParameter(target uint32, pname uint32, param int32) {
	d.record("TexParameter", target, d.bindings[target])

	if tex, ok := d.boundTo(target); ok {
		tex.params[pname] = param
	}
}

func (d *Driver) PixelStore(pname uint32, param int32) {
	d.record("PixelStore", 0, 0)
	d.pixelStore[pname] = param
}

func (d *Driver) TexImage1D(target uint32, format gpu.PixelFormat, width int32, pixels []byte) {
	d.texImage("TexImage1D", target, format, width, 1, 1, pixels)
}

func (d *Driver) TexImage2D(target uint32, format gpu.PixelFormat, width, height int32, pixels []byte) {
	d.texImage("TexImage2D", target, format, width, height, 1, pixels)
}

func (d *Driver) TexImage3D(target uint32, format gpu.PixelFormat, width, height, depth int32, pixels []byte) {
	d.texImage("TexImage3D", target, format, width, height, depth, pixels)
}

func (d *Driver) texImage(name string, target uint32, format gpu.PixelFormat, width, height, depth int32, pixels []byte) {
	d.record(name, target, d.bindings[target])

	if d.FailUpload != gpu.GLNoError {
		d.PushError(d.FailUpload)
		d.FailUpload = gpu.GLNoError
		return
	}

	tex, ok := d.boundTo(target)
	if !ok {
		return
	}

	if width <= 0 || height <= 0 || depth <= 0 || len(pixels) < int(width*height*depth)*4 {
		d.PushError(gpu.GLInvalidValue)
		return
	}

	tex.levels[target] = Level{
		Width:  width,
		Height: height,
		Depth:  depth,
		Format: format,
		Pixels: slices.Clone(pixels),
	}
}

func (d *Driver) TexLevelSize(target uint32) (width, height int32) {
	d.record("TexLevelSize", target, d.bindings[target])

	tex, ok := d.boundTo(target)
	if !ok {
		return 0, 0
	}

	level := tex.levels[target]
	return level.Width, level.Height
}

func (d *Driver) GetString(name uint32) string {
	switch name {
	case gpu.GLRenderer:
		return d.Renderer
	case gpu.GLVersion:
		return d.Version
	default:
		d.PushError(gpu.GLInvalidEnum)
		return ""
	}
}

func (d *Driver) GetError() uint32 {
	if len(d.errors) == 0 {
		return gpu.GLNoError
	}

	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

// LiveTextures returns the number of allocated texture names.
func (d *Driver) LiveTextures() int {
	return len(d.textures)
}

// DeleteCount returns how often DeleteTexture was called with handle.
func (d *Driver) DeleteCount(handle gpu.Handle) int {
	return d.deletes[handle]
}

// Bound returns the handle bound to target.
func (d *Driver) Bound(target uint32) gpu.Handle {
	return d.bindings[target]
}

// Level returns what was uploaded to level 0 of handle for the given
// target, which is a cube map face for cube maps.
func (d *Driver) Level(handle gpu.Handle, target uint32) (Level, bool) {
	tex, ok := d.textures[handle]
	if !ok {
		return Level{}, false
	}

	level, ok := tex.levels[target]
	return level, ok
}

// Param returns a texture parameter of handle.
func (d *Driver) Param(handle gpu.Handle, pname uint32) (int32, bool) {
	tex, ok := d.textures[handle]
	if !ok {
		return 0, false
	}

	value, ok := tex.params[pname]
	return value, ok
}

// PixelStoreValue returns the last value set for a pixel store parameter.
func (d *Driver) PixelStoreValue(pname uint32) int32 {
	return d.pixelStore[pname]
}

// Calls returns all recorded calls.
func (d *Driver) Calls() []Call {
	return slices.Clone(d.calls)
}

// CallsNamed returns the recorded calls with the given name.
func (d *Driver) CallsNamed(name string) []Call {
	var calls []Call
	for _, call := range d.calls {
		if call.Name == name {
			calls = append(calls, call)
		}
	}

	return calls
}

// ResetCalls clears the call log.
func (d *Driver) ResetCalls() {
	d.calls = nil
}
