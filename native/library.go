// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

// Library is the fixed calling interface of the native graphics library.
//
// Implementations are thin: they convert arguments to the native calling
// convention and return whatever the native side returns. They do not
// validate protocol (begin/end pairing, single window, use after unload);
// that is the job of the rl package. Load functions signal failure the way
// the native library does, by returning a descriptor whose Valid method
// reports false.
//
// All methods must be called from the thread that called InitWindow.
type Library interface {
	// Name returns the backend identifier (e.g., "raylib", "fake").
	Name() string

	WindowLibrary
	DrawLibrary
	ImageLibrary
	TextureLibrary
	FontLibrary
	ShaderLibrary
	AudioLibrary
	InputLibrary
}

// WindowLibrary covers window and context lifecycle.
type WindowLibrary interface {
	SetConfigFlags(flags ConfigFlags)
	SetTraceLogLevel(level TraceLogLevel)
	InitWindow(width, height int32, title CString)
	CloseWindow()
	IsWindowReady() bool
	WindowShouldClose() bool
	SetWindowTitle(title CString)
	SetTargetFPS(fps int32)
	GetScreenWidth() int32
	GetScreenHeight() int32
	GetFrameTime() float32
	GetFPS() int32
}

// DrawLibrary covers the begin/end pairs and the immediate draw calls.
type DrawLibrary interface {
	BeginDrawing()
	EndDrawing()
	BeginTextureMode(target RenderTexture)
	EndTextureMode()
	BeginMode2D(camera Camera2D)
	EndMode2D()
	BeginMode3D(camera Camera3D)
	EndMode3D()
	BeginScissorMode(x, y, width, height int32)
	EndScissorMode()
	BeginBlendMode(mode BlendMode)
	EndBlendMode()
	BeginShaderMode(shader Shader)
	EndShaderMode()

	ClearBackground(c Color)
	DrawPixel(x, y int32, c Color)
	DrawLine(x1, y1, x2, y2 int32, c Color)
	DrawLineEx(start, end Vector2, thick float32, c Color)
	DrawCircle(cx, cy int32, radius float32, c Color)
	DrawCircleLines(cx, cy int32, radius float32, c Color)
	DrawRectangle(x, y, width, height int32, c Color)
	DrawRectangleRec(rec Rectangle, c Color)
	DrawRectangleLines(x, y, width, height int32, c Color)
	DrawRectanglePro(rec Rectangle, origin Vector2, rotation float32, c Color)
	DrawTriangle(v1, v2, v3 Vector2, c Color)

	DrawCube(pos Vector3, width, height, length float32, c Color)
	DrawCubeWires(pos Vector3, width, height, length float32, c Color)
	DrawSphere(center Vector3, radius float32, c Color)
	DrawGrid(slices int32, spacing float32)

	DrawText(text CString, x, y, fontSize int32, c Color)
	DrawTextEx(font Font, text CString, pos Vector2, fontSize, spacing float32, tint Color)
	DrawFPS(x, y int32)

	DrawTexture(tex Texture, x, y int32, tint Color)
	DrawTextureEx(tex Texture, pos Vector2, rotation, scale float32, tint Color)
	DrawTextureRec(tex Texture, src Rectangle, pos Vector2, tint Color)
	DrawTexturePro(tex Texture, src, dst Rectangle, origin Vector2, rotation float32, tint Color)
}

// ImageLibrary covers CPU images.
type ImageLibrary interface {
	LoadImage(fileName CString) Image
	// ImageFromRGBA copies tightly packed 8-bit RGBA pixels into a new
	// natively allocated image that UnloadImage can free.
	ImageFromRGBA(pix []byte, width, height int32) Image
	GenImageColor(width, height int32, c Color) Image
	ImageCopy(img Image) Image
	UnloadImage(img Image)
	ExportImage(img Image, fileName CString) bool
	// LoadImageColors returns a Go copy of the image pixels.
	LoadImageColors(img Image) []Color
	ImageResize(img *Image, width, height int32)
	ImageFlipVertical(img *Image)
	ImageCrop(img *Image, crop Rectangle)
}

// TextureLibrary covers GPU textures and framebuffers. Every method needs
// an initialized window.
type TextureLibrary interface {
	LoadTexture(fileName CString) Texture
	LoadTextureFromImage(img Image) Texture
	LoadImageFromTexture(tex Texture) Image
	UnloadTexture(tex Texture)
	UpdateTexture(tex Texture, pixels []byte)
	UpdateTextureRec(tex Texture, rec Rectangle, pixels []byte)
	GenTextureMipmaps(tex *Texture)
	SetTextureFilter(tex Texture, filter TextureFilter)
	LoadRenderTexture(width, height int32) RenderTexture
	UnloadRenderTexture(target RenderTexture)
}

// FontLibrary covers fonts. The native loaders fall back to the default
// font on failure, so callers compare against GetFontDefault.
type FontLibrary interface {
	GetFontDefault() Font
	LoadFont(fileName CString) Font
	LoadFontEx(fileName CString, fontSize int32, codepoints []rune) Font
	UnloadFont(font Font)
	MeasureText(text CString, fontSize int32) int32
	MeasureTextEx(font Font, text CString, fontSize, spacing float32) Vector2
}

// ShaderLibrary covers shader programs. A NULL path selects the default
// stage. A failed compile yields the default shader, whose id is
// ShaderIDDefault.
type ShaderLibrary interface {
	LoadShader(vsFileName, fsFileName CString) Shader
	UnloadShader(shader Shader)
	ShaderIDDefault() uint32
	GetShaderLocation(shader Shader, uniformName CString) int32
	SetShaderValue(shader Shader, loc int32, value []float32, uniformType UniformType)
}

// AudioLibrary covers the audio device and audio resources.
type AudioLibrary interface {
	InitAudioDevice()
	CloseAudioDevice()
	IsAudioDeviceReady() bool

	LoadWave(fileName CString) Wave
	UnloadWave(wave Wave)

	LoadSound(fileName CString) Sound
	LoadSoundFromWave(wave Wave) Sound
	UnloadSound(sound Sound)
	PlaySound(sound Sound)
	StopSound(sound Sound)
	IsSoundPlaying(sound Sound) bool
	SetSoundVolume(sound Sound, volume float32)

	LoadMusicStream(fileName CString) Music
	UnloadMusicStream(music Music)
	PlayMusicStream(music Music)
	UpdateMusicStream(music Music)
	StopMusicStream(music Music)
	IsMusicStreamPlaying(music Music) bool
	GetMusicTimeLength(music Music) float32
}

// InputLibrary covers keyboard and mouse polling. Input state is sampled
// once per frame, when EndDrawing runs.
type InputLibrary interface {
	IsKeyPressed(key KeyboardKey) bool
	IsKeyDown(key KeyboardKey) bool
	IsKeyReleased(key KeyboardKey) bool
	GetKeyPressed() KeyboardKey
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonDown(button MouseButton) bool
	GetMousePosition() Vector2
	GetMouseWheelMove() float32
}
