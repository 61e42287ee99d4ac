// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "unsafe"

// Color is a 32-bit RGBA color, laid out like the native Color struct.
type Color struct {
	R, G, B, A uint8
}

// Vector2 is a 2D vector of float32.
type Vector2 struct {
	X, Y float32
}

// Rectangle is an axis aligned rectangle of float32.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Camera2D defines a 2D camera transform.
type Camera2D struct {
	Offset   Vector2 // displacement from target
	Target   Vector2 // rotation and zoom origin
	Rotation float32 // degrees
	Zoom     float32 // 1 is no scale
}

// Vector3 is a 3D vector of float32.
type Vector3 struct {
	X, Y, Z float32
}

// CameraProjection selects the projection of a Camera3D.
type CameraProjection int32

// Camera projections.
const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

// Camera3D defines a 3D camera.
type Camera3D struct {
	Position   Vector3
	Target     Vector3 // point the camera looks at
	Up         Vector3
	Fovy       float32 // field of view in degrees, or near plane width when orthographic
	Projection CameraProjection
}

// Image is pixel data stored in CPU memory.
type Image struct {
	Data    unsafe.Pointer
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Valid reports whether the image holds pixel data. The native loader
// returns a zero Image when it cannot read or decode a file.
func (i Image) Valid() bool {
	return i.Data != nil && i.Width > 0 && i.Height > 0
}

// Texture is texture data stored in GPU memory.
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Valid reports whether the texture has a GPU id.
func (t Texture) Valid() bool {
	return t.ID != 0
}

// RenderTexture is a framebuffer with color and depth attachments.
type RenderTexture struct {
	ID      uint32
	Texture Texture
	Depth   Texture
}

// Valid reports whether the framebuffer and its color attachment exist.
func (r RenderTexture) Valid() bool {
	return r.ID != 0 && r.Texture.Valid()
}

// Font is a glyph atlas together with its glyph metrics.
type Font struct {
	BaseSize     int32
	GlyphCount   int32
	GlyphPadding int32
	Texture      Texture
	Recs         unsafe.Pointer
	Glyphs       unsafe.Pointer
}

// Valid reports whether the font carries glyphs and an atlas texture.
func (f Font) Valid() bool {
	return f.Glyphs != nil && f.Texture.Valid() && f.BaseSize > 0
}

// Shader is a compiled GPU program.
type Shader struct {
	ID   uint32
	Locs unsafe.Pointer
}

// Valid reports whether the shader has a program id.
func (s Shader) Valid() bool {
	return s.ID != 0 && s.Locs != nil
}

// Wave is audio sample data stored in CPU memory.
type Wave struct {
	FrameCount uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
	Data       unsafe.Pointer
}

// Valid reports whether the wave holds sample data.
func (w Wave) Valid() bool {
	return w.Data != nil && w.FrameCount > 0
}

// AudioStream is a custom audio stream fed by the audio thread.
type AudioStream struct {
	Buffer     unsafe.Pointer
	Processor  unsafe.Pointer
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
}

// Sound is a fully loaded audio clip.
type Sound struct {
	Stream     AudioStream
	FrameCount uint32
}

// Valid reports whether the sound has an audio buffer.
func (s Sound) Valid() bool {
	return s.Stream.Buffer != nil
}

// Music is an audio stream decoded on demand.
type Music struct {
	Stream     AudioStream
	FrameCount uint32
	Looping    bool
	CtxType    int32
	CtxData    unsafe.Pointer
}

// Valid reports whether the decoder context exists.
func (m Music) Valid() bool {
	return m.CtxData != nil
}

// ConfigFlags are window configuration hints applied before InitWindow.
type ConfigFlags uint32

// Window configuration flags, numbered like the native library.
const (
	FlagVSyncHint         ConfigFlags = 0x00000040
	FlagFullscreenMode    ConfigFlags = 0x00000002
	FlagWindowResizable   ConfigFlags = 0x00000004
	FlagWindowUndecorated ConfigFlags = 0x00000008
	FlagWindowHidden      ConfigFlags = 0x00000080
	FlagWindowTransparent ConfigFlags = 0x00000010
	FlagMSAA4xHint        ConfigFlags = 0x00000020
	FlagWindowHighDPI     ConfigFlags = 0x00002000
)

// TraceLogLevel selects how verbose the native library logs.
type TraceLogLevel int32

// Native log levels.
const (
	LogAll TraceLogLevel = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

// BlendMode selects the color blending equation.
type BlendMode int32

// Blend modes.
const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiplied
	BlendAddColors
	BlendSubtractColors
	BlendAlphaPremultiply
)

// TextureFilter selects texture sampling.
type TextureFilter int32

// Texture filters.
const (
	FilterPoint TextureFilter = iota
	FilterBilinear
	FilterTrilinear
	FilterAnisotropic4x
	FilterAnisotropic8x
	FilterAnisotropic16x
)

// UniformType describes the layout of a shader uniform value.
type UniformType int32

// Shader uniform types.
const (
	UniformFloat UniformType = iota
	UniformVec2
	UniformVec3
	UniformVec4
	UniformInt
	UniformIVec2
	UniformIVec3
	UniformIVec4
	UniformSampler2D
)

// Components returns how many float32 values one uniform of type u holds.
// Integer and sampler types return 0.
func (u UniformType) Components() int {
	switch u {
	case UniformFloat:
		return 1
	case UniformVec2:
		return 2
	case UniformVec3:
		return 3
	case UniformVec4:
		return 4
	default:
		return 0
	}
}

// KeyboardKey identifies a key, using the GLFW key codes raylib uses.
// Printable keys carry their ASCII upper case value.
type KeyboardKey int32

// Keyboard keys.
const (
	KeyNull       KeyboardKey = 0
	KeySpace      KeyboardKey = 32
	KeyApostrophe KeyboardKey = 39
	KeyComma      KeyboardKey = 44
	KeyMinus      KeyboardKey = 45
	KeyPeriod     KeyboardKey = 46
	KeySlash      KeyboardKey = 47
	KeyZero       KeyboardKey = 48
	KeyOne        KeyboardKey = 49
	KeyNine       KeyboardKey = 57
	KeyA          KeyboardKey = 65
	KeyD          KeyboardKey = 68
	KeyS          KeyboardKey = 83
	KeyW          KeyboardKey = 87
	KeyZ          KeyboardKey = 90
	KeyEscape     KeyboardKey = 256
	KeyEnter      KeyboardKey = 257
	KeyTab        KeyboardKey = 258
	KeyBackspace  KeyboardKey = 259
	KeyRight      KeyboardKey = 262
	KeyLeft       KeyboardKey = 263
	KeyDown       KeyboardKey = 264
	KeyUp         KeyboardKey = 265
	KeyF1         KeyboardKey = 290
	KeyLeftShift  KeyboardKey = 340
	KeyLeftCtrl   KeyboardKey = 341
)

// MouseButton identifies a mouse button.
type MouseButton int32

// Mouse buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)
