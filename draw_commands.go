package rl

import (
	"image/color"

	"github.com/gogpu/rl/native"
)

// ClearBackground fills the target with c.
func (d *DrawHandle) ClearBackground(c color.Color) {
	d.lib("ClearBackground").ClearBackground(toNative(c))
}

// DrawPixel draws a single pixel.
func (d *DrawHandle) DrawPixel(x, y int, c color.Color) {
	d.lib("DrawPixel").DrawPixel(int32(x), int32(y), toNative(c))
}

// DrawLine draws a one pixel wide line.
func (d *DrawHandle) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	d.lib("DrawLine").DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), toNative(c))
}

// DrawLineEx draws a line of the given thickness.
func (d *DrawHandle) DrawLineEx(start, end Vector2, thick float32, c color.Color) {
	d.lib("DrawLineEx").DrawLineEx(start, end, thick, toNative(c))
}

// DrawCircle draws a filled circle.
func (d *DrawHandle) DrawCircle(cx, cy int, radius float32, c color.Color) {
	d.lib("DrawCircle").DrawCircle(int32(cx), int32(cy), radius, toNative(c))
}

// DrawCircleLines draws a circle outline.
func (d *DrawHandle) DrawCircleLines(cx, cy int, radius float32, c color.Color) {
	d.lib("DrawCircleLines").DrawCircleLines(int32(cx), int32(cy), radius, toNative(c))
}

// DrawRectangle draws a filled rectangle.
func (d *DrawHandle) DrawRectangle(x, y, width, height int, c color.Color) {
	d.lib("DrawRectangle").DrawRectangle(int32(x), int32(y), int32(width), int32(height), toNative(c))
}

// DrawRectangleRec draws a filled rectangle.
func (d *DrawHandle) DrawRectangleRec(rec Rectangle, c color.Color) {
	d.lib("DrawRectangleRec").DrawRectangleRec(rec, toNative(c))
}

// DrawRectangleLines draws a rectangle outline.
func (d *DrawHandle) DrawRectangleLines(x, y, width, height int, c color.Color) {
	d.lib("DrawRectangleLines").DrawRectangleLines(int32(x), int32(y), int32(width), int32(height), toNative(c))
}

// DrawRectanglePro draws a filled rectangle rotated by rotation degrees
// around origin, which is relative to the rectangle.
func (d *DrawHandle) DrawRectanglePro(rec Rectangle, origin Vector2, rotation float32, c color.Color) {
	d.lib("DrawRectanglePro").DrawRectanglePro(rec, origin, rotation, toNative(c))
}

// DrawTriangle draws a filled triangle. Vertices go counter-clockwise.
func (d *DrawHandle) DrawTriangle(v1, v2, v3 Vector2, c color.Color) {
	d.lib("DrawTriangle").DrawTriangle(v1, v2, v3, toNative(c))
}

// DrawCube draws a solid box centered at pos. Like the other 3D shapes it
// is only accepted inside Mode3D.
func (d *DrawHandle) DrawCube(pos Vector3, width, height, length float32, c color.Color) {
	d.lib3D("DrawCube").DrawCube(pos, width, height, length, toNative(c))
}

// DrawCubeWires draws the edges of a box centered at pos.
func (d *DrawHandle) DrawCubeWires(pos Vector3, width, height, length float32, c color.Color) {
	d.lib3D("DrawCubeWires").DrawCubeWires(pos, width, height, length, toNative(c))
}

// DrawSphere draws a solid sphere.
func (d *DrawHandle) DrawSphere(center Vector3, radius float32, c color.Color) {
	d.lib3D("DrawSphere").DrawSphere(center, radius, toNative(c))
}

// DrawGrid draws a slices x slices grid on the XZ plane, centered at the
// origin. A slice count out of range draws nothing.
func (d *DrawHandle) DrawGrid(slices int, spacing float32) {
	l := d.lib3D("DrawGrid")
	if !validSize(slices) {
		return
	}
	l.DrawGrid(int32(slices), spacing)
}

// DrawText draws text with the default font. Text containing a NUL byte
// is rejected before anything is drawn.
func (d *DrawHandle) DrawText(text string, x, y, fontSize int, c color.Color) error {
	const op = "DrawText"
	l := d.lib(op)
	s, err := marshalText(op, text)
	if err != nil {
		return err
	}
	l.DrawText(s, int32(x), int32(y), int32(fontSize), toNative(c))
	return nil
}

// DrawTextEx draws text with font.
func (d *DrawHandle) DrawTextEx(font *Font, text string, pos Vector2, fontSize, spacing float32, tint color.Color) error {
	const op = "DrawTextEx"
	l := d.lib(op)
	s, err := marshalText(op, text)
	if err != nil {
		return err
	}
	l.DrawTextEx(font.handle(op), s, pos, fontSize, spacing, toNative(tint))
	return nil
}

// DrawFPS draws the current frame rate.
func (d *DrawHandle) DrawFPS(x, y int) {
	d.lib("DrawFPS").DrawFPS(int32(x), int32(y))
}

// DrawTexture draws tex with its top left corner at (x, y).
func (d *DrawHandle) DrawTexture(tex TextureSource, x, y int, tint color.Color) {
	const op = "DrawTexture"
	d.lib(op).DrawTexture(d.source(op, tex), int32(x), int32(y), toNative(tint))
}

// DrawTextureEx draws tex rotated and scaled.
func (d *DrawHandle) DrawTextureEx(tex TextureSource, pos Vector2, rotation, scale float32, tint color.Color) {
	const op = "DrawTextureEx"
	d.lib(op).DrawTextureEx(d.source(op, tex), pos, rotation, scale, toNative(tint))
}

// DrawTextureRec draws the src part of tex at pos. A negative source
// height flips the part vertically, which is how render textures are
// drawn upright.
func (d *DrawHandle) DrawTextureRec(tex TextureSource, src Rectangle, pos Vector2, tint color.Color) {
	const op = "DrawTextureRec"
	d.lib(op).DrawTextureRec(d.source(op, tex), src, pos, toNative(tint))
}

// DrawTexturePro draws the src part of tex into dst, rotated by rotation
// degrees around origin.
func (d *DrawHandle) DrawTexturePro(tex TextureSource, src, dst Rectangle, origin Vector2, rotation float32, tint color.Color) {
	const op = "DrawTexturePro"
	d.lib(op).DrawTexturePro(d.source(op, tex), src, dst, origin, rotation, toNative(tint))
}

// source resolves tex for a draw call. The bound render texture cannot be
// sampled while it is being drawn into.
func (d *DrawHandle) source(op string, tex TextureSource) native.Texture {
	if rt, ok := tex.(*RenderTexture); ok && rt.st == d.w.target {
		violation(op, ErrSelfSample)
	}
	return tex.texture(op)
}
