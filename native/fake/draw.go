// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

func (f *Library) BeginDrawing() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginDrawing()")
	f.requireWindow("BeginDrawing")
	if f.drawDepth > 0 {
		f.violate("BeginDrawing while drawing")
	}
	f.drawDepth++
}

func (f *Library) EndDrawing() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndDrawing()")
	if f.drawDepth == 0 {
		f.violate("EndDrawing without BeginDrawing")
		return
	}
	if f.textureMode {
		f.violate("EndDrawing inside texture mode")
	}
	if f.mode3D {
		f.violate("EndDrawing inside 3D mode")
	}
	f.drawDepth--
	f.frames++
	f.input.endFrame()
}

func (f *Library) BeginTextureMode(target native.RenderTexture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginTextureMode(%d)", target.ID)
	f.requireWindow("BeginTextureMode")
	if _, ok := f.targets[target.ID]; !ok {
		f.violate("BeginTextureMode on unknown render texture %d", target.ID)
	}
	if f.textureMode {
		f.violate("BeginTextureMode while in texture mode")
	}
	f.textureMode = true
}

func (f *Library) EndTextureMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndTextureMode()")
	if !f.textureMode {
		f.violate("EndTextureMode without BeginTextureMode")
	}
	f.textureMode = false
}

func (f *Library) BeginMode2D(camera native.Camera2D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginMode2D(%v)", camera)
	f.requireDrawing("BeginMode2D")
}

func (f *Library) EndMode2D() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndMode2D()")
}

func (f *Library) BeginMode3D(camera native.Camera3D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginMode3D(%v)", camera)
	f.requireDrawing("BeginMode3D")
	if f.mode3D {
		f.violate("BeginMode3D while in 3D mode")
	}
	f.mode3D = true
}

func (f *Library) EndMode3D() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndMode3D()")
	if !f.mode3D {
		f.violate("EndMode3D without BeginMode3D")
	}
	f.mode3D = false
}

func (f *Library) BeginScissorMode(x, y, width, height int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginScissorMode(%d, %d, %d, %d)", x, y, width, height)
	f.requireDrawing("BeginScissorMode")
}

func (f *Library) EndScissorMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndScissorMode()")
}

func (f *Library) BeginBlendMode(mode native.BlendMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginBlendMode(%d)", mode)
	f.requireDrawing("BeginBlendMode")
}

func (f *Library) EndBlendMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndBlendMode()")
}

func (f *Library) BeginShaderMode(shader native.Shader) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("BeginShaderMode(%d)", shader.ID)
	f.requireDrawing("BeginShaderMode")
	if !f.shaders[shader.ID] && shader.ID != f.defaultShader.ID {
		f.violate("BeginShaderMode with unknown shader %d", shader.ID)
	}
}

func (f *Library) EndShaderMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("EndShaderMode()")
}

func (f *Library) ClearBackground(c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ClearBackground(%v)", c)
	f.requireDrawing("ClearBackground")
}

func (f *Library) DrawPixel(x, y int32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawPixel(%d, %d, %v)", x, y, c)
	f.requireDrawing("DrawPixel")
}

func (f *Library) DrawLine(x1, y1, x2, y2 int32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawLine(%d, %d, %d, %d, %v)", x1, y1, x2, y2, c)
	f.requireDrawing("DrawLine")
}

func (f *Library) DrawLineEx(start, end native.Vector2, thick float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawLineEx(%v, %v, %g, %v)", start, end, thick, c)
	f.requireDrawing("DrawLineEx")
}

func (f *Library) DrawCircle(cx, cy int32, radius float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawCircle(%d, %d, %g, %v)", cx, cy, radius, c)
	f.requireDrawing("DrawCircle")
}

func (f *Library) DrawCircleLines(cx, cy int32, radius float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawCircleLines(%d, %d, %g, %v)", cx, cy, radius, c)
	f.requireDrawing("DrawCircleLines")
}

func (f *Library) DrawRectangle(x, y, width, height int32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawRectangle(%d, %d, %d, %d, %v)", x, y, width, height, c)
	f.requireDrawing("DrawRectangle")
}

func (f *Library) DrawRectangleRec(rec native.Rectangle, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawRectangleRec(%v, %v)", rec, c)
	f.requireDrawing("DrawRectangleRec")
}

func (f *Library) DrawRectangleLines(x, y, width, height int32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawRectangleLines(%d, %d, %d, %d, %v)", x, y, width, height, c)
	f.requireDrawing("DrawRectangleLines")
}

func (f *Library) DrawRectanglePro(rec native.Rectangle, origin native.Vector2, rotation float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawRectanglePro(%v, %v, %g, %v)", rec, origin, rotation, c)
	f.requireDrawing("DrawRectanglePro")
}

func (f *Library) DrawTriangle(v1, v2, v3 native.Vector2, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTriangle(%v, %v, %v, %v)", v1, v2, v3, c)
	f.requireDrawing("DrawTriangle")
}

func (f *Library) DrawCube(pos native.Vector3, width, height, length float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawCube(%v, %g, %g, %g, %v)", pos, width, height, length, c)
	f.require3D("DrawCube")
}

func (f *Library) DrawCubeWires(pos native.Vector3, width, height, length float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawCubeWires(%v, %g, %g, %g, %v)", pos, width, height, length, c)
	f.require3D("DrawCubeWires")
}

func (f *Library) DrawSphere(center native.Vector3, radius float32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawSphere(%v, %g, %v)", center, radius, c)
	f.require3D("DrawSphere")
}

func (f *Library) DrawGrid(slices int32, spacing float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawGrid(%d, %g)", slices, spacing)
	f.require3D("DrawGrid")
}

// require3D reports 3D shapes drawn without a 3D camera. Caller holds f.mu.
func (f *Library) require3D(call string) {
	f.requireDrawing(call)
	if !f.mode3D {
		f.violate("%s outside 3D mode", call)
	}
}

func (f *Library) DrawText(text native.CString, x, y, fontSize int32, c native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawText(%q, %d, %d, %d, %v)", text.String(), x, y, fontSize, c)
	f.requireDrawing("DrawText")
}

func (f *Library) DrawTextEx(font native.Font, text native.CString, pos native.Vector2, fontSize, spacing float32, tint native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTextEx(%d, %q, %v, %g, %g, %v)", font.Texture.ID, text.String(), pos, fontSize, spacing, tint)
	f.requireDrawing("DrawTextEx")
	if !f.fonts[font.Glyphs] && font.Glyphs != f.defaultFont.Glyphs {
		f.violate("DrawTextEx with unknown font")
	}
}

func (f *Library) DrawFPS(x, y int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawFPS(%d, %d)", x, y)
	f.requireDrawing("DrawFPS")
}

func (f *Library) checkTexture(call string, tex native.Texture) {
	f.requireDrawing(call)
	if f.knownTexture(tex.ID) {
		return
	}
	f.violate("%s with unknown texture %d", call, tex.ID)
}

func (f *Library) DrawTexture(tex native.Texture, x, y int32, tint native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTexture(%d, %d, %d, %v)", tex.ID, x, y, tint)
	f.checkTexture("DrawTexture", tex)
}

func (f *Library) DrawTextureEx(tex native.Texture, pos native.Vector2, rotation, scale float32, tint native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTextureEx(%d, %v, %g, %g, %v)", tex.ID, pos, rotation, scale, tint)
	f.checkTexture("DrawTextureEx", tex)
}

func (f *Library) DrawTextureRec(tex native.Texture, src native.Rectangle, pos native.Vector2, tint native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTextureRec(%d, %v, %v, %v)", tex.ID, src, pos, tint)
	f.checkTexture("DrawTextureRec", tex)
}

func (f *Library) DrawTexturePro(tex native.Texture, src, dst native.Rectangle, origin native.Vector2, rotation float32, tint native.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DrawTexturePro(%d, %v, %v, %v, %g, %v)", tex.ID, src, dst, origin, rotation, tint)
	f.checkTexture("DrawTexturePro", tex)
}
