// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build raylib

package raylib

/*
#include <stdlib.h>
#include "raylib.h"
#include "rlgl.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/rl/native"
)

// Window

func (l *Library) SetConfigFlags(flags native.ConfigFlags) { C.SetConfigFlags(C.uint(flags)) }

func (l *Library) SetTraceLogLevel(level native.TraceLogLevel) { C.SetTraceLogLevel(C.int(level)) }

func (l *Library) InitWindow(width, height int32, title native.CString) {
	t := cstr(title)
	C.InitWindow(C.int(width), C.int(height), t)
	free(l.title)
	l.title = t
}

func (l *Library) CloseWindow() {
	C.CloseWindow()
	free(l.title)
	l.title = nil
}

func (l *Library) IsWindowReady() bool { return cBool(C.IsWindowReady()) }

func (l *Library) WindowShouldClose() bool { return cBool(C.WindowShouldClose()) }

func (l *Library) SetWindowTitle(title native.CString) {
	t := cstr(title)
	C.SetWindowTitle(t)
	free(l.title)
	l.title = t
}

func (l *Library) SetTargetFPS(fps int32) { C.SetTargetFPS(C.int(fps)) }

func (l *Library) GetScreenWidth() int32 { return int32(C.GetScreenWidth()) }

func (l *Library) GetScreenHeight() int32 { return int32(C.GetScreenHeight()) }

func (l *Library) GetFrameTime() float32 { return float32(C.GetFrameTime()) }

func (l *Library) GetFPS() int32 { return int32(C.GetFPS()) }

// Drawing

func (l *Library) BeginDrawing() { C.BeginDrawing() }

func (l *Library) EndDrawing() { C.EndDrawing() }

func (l *Library) BeginTextureMode(target native.RenderTexture) {
	C.BeginTextureMode(toRenderTexture(target))
}

func (l *Library) EndTextureMode() { C.EndTextureMode() }

func (l *Library) BeginMode2D(camera native.Camera2D) { C.BeginMode2D(toCamera2D(camera)) }

func (l *Library) EndMode2D() { C.EndMode2D() }

func (l *Library) BeginMode3D(camera native.Camera3D) { C.BeginMode3D(toCamera3D(camera)) }

func (l *Library) EndMode3D() { C.EndMode3D() }

func (l *Library) BeginScissorMode(x, y, width, height int32) {
	C.BeginScissorMode(C.int(x), C.int(y), C.int(width), C.int(height))
}

func (l *Library) EndScissorMode() { C.EndScissorMode() }

func (l *Library) BeginBlendMode(mode native.BlendMode) { C.BeginBlendMode(C.int(mode)) }

func (l *Library) EndBlendMode() { C.EndBlendMode() }

func (l *Library) BeginShaderMode(shader native.Shader) { C.BeginShaderMode(toShader(shader)) }

func (l *Library) EndShaderMode() { C.EndShaderMode() }

func (l *Library) ClearBackground(c native.Color) { C.ClearBackground(toColor(c)) }

func (l *Library) DrawPixel(x, y int32, c native.Color) {
	C.DrawPixel(C.int(x), C.int(y), toColor(c))
}

func (l *Library) DrawLine(x1, y1, x2, y2 int32, c native.Color) {
	C.DrawLine(C.int(x1), C.int(y1), C.int(x2), C.int(y2), toColor(c))
}

func (l *Library) DrawLineEx(start, end native.Vector2, thick float32, c native.Color) {
	C.DrawLineEx(toVector2(start), toVector2(end), C.float(thick), toColor(c))
}

func (l *Library) DrawCircle(cx, cy int32, radius float32, c native.Color) {
	C.DrawCircle(C.int(cx), C.int(cy), C.float(radius), toColor(c))
}

func (l *Library) DrawCircleLines(cx, cy int32, radius float32, c native.Color) {
	C.DrawCircleLines(C.int(cx), C.int(cy), C.float(radius), toColor(c))
}

func (l *Library) DrawRectangle(x, y, width, height int32, c native.Color) {
	C.DrawRectangle(C.int(x), C.int(y), C.int(width), C.int(height), toColor(c))
}

func (l *Library) DrawRectangleRec(rec native.Rectangle, c native.Color) {
	C.DrawRectangleRec(toRectangle(rec), toColor(c))
}

func (l *Library) DrawRectangleLines(x, y, width, height int32, c native.Color) {
	C.DrawRectangleLines(C.int(x), C.int(y), C.int(width), C.int(height), toColor(c))
}

func (l *Library) DrawRectanglePro(rec native.Rectangle, origin native.Vector2, rotation float32, c native.Color) {
	C.DrawRectanglePro(toRectangle(rec), toVector2(origin), C.float(rotation), toColor(c))
}

func (l *Library) DrawTriangle(v1, v2, v3 native.Vector2, c native.Color) {
	C.DrawTriangle(toVector2(v1), toVector2(v2), toVector2(v3), toColor(c))
}

func (l *Library) DrawCube(pos native.Vector3, width, height, length float32, c native.Color) {
	C.DrawCube(toVector3(pos), C.float(width), C.float(height), C.float(length), toColor(c))
}

func (l *Library) DrawCubeWires(pos native.Vector3, width, height, length float32, c native.Color) {
	C.DrawCubeWires(toVector3(pos), C.float(width), C.float(height), C.float(length), toColor(c))
}

func (l *Library) DrawSphere(center native.Vector3, radius float32, c native.Color) {
	C.DrawSphere(toVector3(center), C.float(radius), toColor(c))
}

func (l *Library) DrawGrid(slices int32, spacing float32) {
	C.DrawGrid(C.int(slices), C.float(spacing))
}

func (l *Library) DrawText(text native.CString, x, y, fontSize int32, c native.Color) {
	t := cstr(text)
	defer free(t)
	C.DrawText(t, C.int(x), C.int(y), C.int(fontSize), toColor(c))
}

func (l *Library) DrawTextEx(font native.Font, text native.CString, pos native.Vector2, fontSize, spacing float32, tint native.Color) {
	t := cstr(text)
	defer free(t)
	C.DrawTextEx(toFont(font), t, toVector2(pos), C.float(fontSize), C.float(spacing), toColor(tint))
}

func (l *Library) DrawFPS(x, y int32) { C.DrawFPS(C.int(x), C.int(y)) }

func (l *Library) DrawTexture(tex native.Texture, x, y int32, tint native.Color) {
	C.DrawTexture(toTexture(tex), C.int(x), C.int(y), toColor(tint))
}

func (l *Library) DrawTextureEx(tex native.Texture, pos native.Vector2, rotation, scale float32, tint native.Color) {
	C.DrawTextureEx(toTexture(tex), toVector2(pos), C.float(rotation), C.float(scale), toColor(tint))
}

func (l *Library) DrawTextureRec(tex native.Texture, src native.Rectangle, pos native.Vector2, tint native.Color) {
	C.DrawTextureRec(toTexture(tex), toRectangle(src), toVector2(pos), toColor(tint))
}

func (l *Library) DrawTexturePro(tex native.Texture, src, dst native.Rectangle, origin native.Vector2, rotation float32, tint native.Color) {
	C.DrawTexturePro(toTexture(tex), toRectangle(src), toRectangle(dst), toVector2(origin), C.float(rotation), toColor(tint))
}

// Images

func (l *Library) LoadImage(fileName native.CString) native.Image {
	p := cstr(fileName)
	defer free(p)
	return fromImage(C.LoadImage(p))
}

func (l *Library) ImageFromRGBA(pix []byte, width, height int32) native.Image {
	n := int(width) * int(height) * 4
	if n <= 0 || len(pix) < n {
		return native.Image{}
	}
	// UnloadImage frees data with the C allocator.
	data := C.malloc(C.size_t(n))
	if data == nil {
		return native.Image{}
	}
	copy(unsafe.Slice((*byte)(data), n), pix[:n])
	return native.Image{
		Data:    data,
		Width:   width,
		Height:  height,
		Mipmaps: 1,
		Format:  native.PixelR8G8B8A8,
	}
}

func (l *Library) GenImageColor(width, height int32, c native.Color) native.Image {
	return fromImage(C.GenImageColor(C.int(width), C.int(height), toColor(c)))
}

func (l *Library) ImageCopy(img native.Image) native.Image {
	return fromImage(C.ImageCopy(toImage(img)))
}

func (l *Library) UnloadImage(img native.Image) { C.UnloadImage(toImage(img)) }

func (l *Library) ExportImage(img native.Image, fileName native.CString) bool {
	p := cstr(fileName)
	defer free(p)
	return cBool(C.ExportImage(toImage(img), p))
}

func (l *Library) LoadImageColors(img native.Image) []native.Color {
	p := C.LoadImageColors(toImage(img))
	if p == nil {
		return nil
	}
	defer C.UnloadImageColors(p)
	src := unsafe.Slice(p, int(img.Width)*int(img.Height))
	out := make([]native.Color, len(src))
	for i, c := range src {
		out[i] = fromColor(c)
	}
	return out
}

func (l *Library) ImageResize(img *native.Image, width, height int32) {
	ci := toImage(*img)
	C.ImageResize(&ci, C.int(width), C.int(height))
	*img = fromImage(ci)
}

func (l *Library) ImageFlipVertical(img *native.Image) {
	ci := toImage(*img)
	C.ImageFlipVertical(&ci)
	*img = fromImage(ci)
}

func (l *Library) ImageCrop(img *native.Image, crop native.Rectangle) {
	ci := toImage(*img)
	C.ImageCrop(&ci, toRectangle(crop))
	*img = fromImage(ci)
}

// Textures

func (l *Library) LoadTexture(fileName native.CString) native.Texture {
	p := cstr(fileName)
	defer free(p)
	return fromTexture(C.LoadTexture(p))
}

func (l *Library) LoadTextureFromImage(img native.Image) native.Texture {
	return fromTexture(C.LoadTextureFromImage(toImage(img)))
}

func (l *Library) LoadImageFromTexture(tex native.Texture) native.Image {
	return fromImage(C.LoadImageFromTexture(toTexture(tex)))
}

func (l *Library) UnloadTexture(tex native.Texture) { C.UnloadTexture(toTexture(tex)) }

func (l *Library) UpdateTexture(tex native.Texture, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	C.UpdateTexture(toTexture(tex), unsafe.Pointer(&pixels[0]))
}

func (l *Library) UpdateTextureRec(tex native.Texture, rec native.Rectangle, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	C.UpdateTextureRec(toTexture(tex), toRectangle(rec), unsafe.Pointer(&pixels[0]))
}

func (l *Library) GenTextureMipmaps(tex *native.Texture) {
	ct := toTexture(*tex)
	C.GenTextureMipmaps(&ct)
	*tex = fromTexture(ct)
}

func (l *Library) SetTextureFilter(tex native.Texture, filter native.TextureFilter) {
	C.SetTextureFilter(toTexture(tex), C.int(filter))
}

func (l *Library) LoadRenderTexture(width, height int32) native.RenderTexture {
	return fromRenderTexture(C.LoadRenderTexture(C.int(width), C.int(height)))
}

func (l *Library) UnloadRenderTexture(target native.RenderTexture) {
	C.UnloadRenderTexture(toRenderTexture(target))
}

// Fonts

func (l *Library) GetFontDefault() native.Font { return fromFont(C.GetFontDefault()) }

func (l *Library) LoadFont(fileName native.CString) native.Font {
	p := cstr(fileName)
	defer free(p)
	return fromFont(C.LoadFont(p))
}

func (l *Library) LoadFontEx(fileName native.CString, fontSize int32, codepoints []rune) native.Font {
	p := cstr(fileName)
	defer free(p)
	var cp *C.int
	if len(codepoints) > 0 {
		cp = (*C.int)(unsafe.Pointer(&codepoints[0]))
	}
	return fromFont(C.LoadFontEx(p, C.int(fontSize), cp, C.int(len(codepoints))))
}

func (l *Library) UnloadFont(font native.Font) { C.UnloadFont(toFont(font)) }

func (l *Library) MeasureText(text native.CString, fontSize int32) int32 {
	t := cstr(text)
	defer free(t)
	return int32(C.MeasureText(t, C.int(fontSize)))
}

func (l *Library) MeasureTextEx(font native.Font, text native.CString, fontSize, spacing float32) native.Vector2 {
	t := cstr(text)
	defer free(t)
	return fromVector2(C.MeasureTextEx(toFont(font), t, C.float(fontSize), C.float(spacing)))
}

// Shaders

func (l *Library) LoadShader(vsFileName, fsFileName native.CString) native.Shader {
	vs, fs := cstr(vsFileName), cstr(fsFileName)
	defer free(vs)
	defer free(fs)
	return fromShader(C.LoadShader(vs, fs))
}

func (l *Library) UnloadShader(shader native.Shader) { C.UnloadShader(toShader(shader)) }

func (l *Library) ShaderIDDefault() uint32 { return uint32(C.rlGetShaderIdDefault()) }

func (l *Library) GetShaderLocation(shader native.Shader, uniformName native.CString) int32 {
	n := cstr(uniformName)
	defer free(n)
	return int32(C.GetShaderLocation(toShader(shader), n))
}

func (l *Library) SetShaderValue(shader native.Shader, loc int32, value []float32, uniformType native.UniformType) {
	if len(value) == 0 {
		return
	}
	C.SetShaderValue(toShader(shader), C.int(loc), unsafe.Pointer(&value[0]), C.int(uniformType))
}

// Audio

func (l *Library) InitAudioDevice() { C.InitAudioDevice() }

func (l *Library) CloseAudioDevice() { C.CloseAudioDevice() }

func (l *Library) IsAudioDeviceReady() bool { return cBool(C.IsAudioDeviceReady()) }

func (l *Library) LoadWave(fileName native.CString) native.Wave {
	p := cstr(fileName)
	defer free(p)
	return fromWave(C.LoadWave(p))
}

func (l *Library) UnloadWave(wave native.Wave) { C.UnloadWave(toWave(wave)) }

func (l *Library) LoadSound(fileName native.CString) native.Sound {
	p := cstr(fileName)
	defer free(p)
	return fromSound(C.LoadSound(p))
}

func (l *Library) LoadSoundFromWave(wave native.Wave) native.Sound {
	return fromSound(C.LoadSoundFromWave(toWave(wave)))
}

func (l *Library) UnloadSound(sound native.Sound) { C.UnloadSound(toSound(sound)) }

func (l *Library) PlaySound(sound native.Sound) { C.PlaySound(toSound(sound)) }

func (l *Library) StopSound(sound native.Sound) { C.StopSound(toSound(sound)) }

func (l *Library) IsSoundPlaying(sound native.Sound) bool {
	return cBool(C.IsSoundPlaying(toSound(sound)))
}

func (l *Library) SetSoundVolume(sound native.Sound, volume float32) {
	C.SetSoundVolume(toSound(sound), C.float(volume))
}

func (l *Library) LoadMusicStream(fileName native.CString) native.Music {
	p := cstr(fileName)
	defer free(p)
	return fromMusic(C.LoadMusicStream(p))
}

func (l *Library) UnloadMusicStream(music native.Music) { C.UnloadMusicStream(toMusic(music)) }

func (l *Library) PlayMusicStream(music native.Music) { C.PlayMusicStream(toMusic(music)) }

func (l *Library) UpdateMusicStream(music native.Music) { C.UpdateMusicStream(toMusic(music)) }

func (l *Library) StopMusicStream(music native.Music) { C.StopMusicStream(toMusic(music)) }

func (l *Library) IsMusicStreamPlaying(music native.Music) bool {
	return cBool(C.IsMusicStreamPlaying(toMusic(music)))
}

func (l *Library) GetMusicTimeLength(music native.Music) float32 {
	return float32(C.GetMusicTimeLength(toMusic(music)))
}

func (l *Library) IsKeyPressed(key native.KeyboardKey) bool { return cBool(C.IsKeyPressed(C.int(key))) }

func (l *Library) IsKeyDown(key native.KeyboardKey) bool { return cBool(C.IsKeyDown(C.int(key))) }

func (l *Library) IsKeyReleased(key native.KeyboardKey) bool { return cBool(C.IsKeyReleased(C.int(key))) }

func (l *Library) GetKeyPressed() native.KeyboardKey { return native.KeyboardKey(C.GetKeyPressed()) }

func (l *Library) IsMouseButtonPressed(button native.MouseButton) bool {
	return cBool(C.IsMouseButtonPressed(C.int(button)))
}

func (l *Library) IsMouseButtonDown(button native.MouseButton) bool {
	return cBool(C.IsMouseButtonDown(C.int(button)))
}

func (l *Library) GetMousePosition() native.Vector2 { return fromVector2(C.GetMousePosition()) }

func (l *Library) GetMouseWheelMove() float32 { return float32(C.GetMouseWheelMove()) }
