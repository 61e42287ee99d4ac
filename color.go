package rl

import (
	"image/color"

	"github.com/gogpu/rl/native"
)

// Palette of the native library, as straight-alpha colors.
var (
	LightGray = color.NRGBA{200, 200, 200, 255}
	Gray      = color.NRGBA{130, 130, 130, 255}
	DarkGray  = color.NRGBA{80, 80, 80, 255}
	Yellow    = color.NRGBA{253, 249, 0, 255}
	Gold      = color.NRGBA{255, 203, 0, 255}
	Orange    = color.NRGBA{255, 161, 0, 255}
	Pink      = color.NRGBA{255, 109, 194, 255}
	Red       = color.NRGBA{230, 41, 55, 255}
	Maroon    = color.NRGBA{190, 33, 55, 255}
	Green     = color.NRGBA{0, 228, 48, 255}
	Lime      = color.NRGBA{0, 158, 47, 255}
	DarkGreen = color.NRGBA{0, 117, 44, 255}
	SkyBlue   = color.NRGBA{102, 191, 255, 255}
	Blue      = color.NRGBA{0, 121, 241, 255}
	DarkBlue  = color.NRGBA{0, 82, 172, 255}
	Purple    = color.NRGBA{200, 122, 255, 255}
	Violet    = color.NRGBA{135, 60, 190, 255}
	Beige     = color.NRGBA{211, 176, 131, 255}
	Brown     = color.NRGBA{127, 106, 79, 255}
	White     = color.NRGBA{255, 255, 255, 255}
	Black     = color.NRGBA{0, 0, 0, 255}
	Blank     = color.NRGBA{0, 0, 0, 0}
	Magenta   = color.NRGBA{255, 0, 255, 255}
	RayWhite  = color.NRGBA{245, 245, 245, 255}
)

// toNative converts any color.Color to the native straight-alpha layout.
// A nil color is treated as opaque white, the neutral tint.
func toNative(c color.Color) native.Color {
	if c == nil {
		return native.Color{R: 255, G: 255, B: 255, A: 255}
	}
	if n, ok := c.(color.NRGBA); ok {
		return native.Color{R: n.R, G: n.G, B: n.B, A: n.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return native.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// fromNative converts a native color to color.NRGBA.
func fromNative(c native.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Geometry shared with the native layer.
type (
	Vector2   = native.Vector2
	Vector3   = native.Vector3
	Rectangle = native.Rectangle
	Camera2D  = native.Camera2D
	Camera3D  = native.Camera3D
)

// Vec2 returns the vector (x, y).
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vec3 returns the vector (x, y, z).
func Vec3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Rect returns the rectangle at (x, y) with the given size.
func Rect(x, y, width, height float32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}
