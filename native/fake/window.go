// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

func (f *Library) SetConfigFlags(flags native.ConfigFlags) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetConfigFlags(%#x)", uint32(flags))
	f.flags = flags
}

func (f *Library) SetTraceLogLevel(level native.TraceLogLevel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetTraceLogLevel(%d)", level)
}

func (f *Library) InitWindow(width, height int32, title native.CString) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InitWindow(%d, %d, %q)", width, height, title.String())
	if f.ready {
		f.violate("InitWindow while a window is open")
		return
	}
	if f.failInit {
		f.failInit = false
		return
	}
	f.ready = true
	f.width, f.height = width, height
	f.closeReq = false
	f.frames = 0
	f.loads[KindWindow]++

	f.defaultFont = native.Font{
		BaseSize:   10,
		GlyphCount: 224,
		Texture:    native.Texture{ID: f.id(), Width: 128, Height: 128, Mipmaps: 1, Format: native.PixelGrayAlpha},
		Recs:       token(),
		Glyphs:     token(),
	}
	f.defaultShader = native.Shader{ID: f.id(), Locs: token()}
}

func (f *Library) CloseWindow() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CloseWindow()")
	if f.drawDepth > 0 || f.textureMode {
		f.violate("CloseWindow inside drawing")
	}
	f.release(KindWindow, f.ready, "CloseWindow")
	f.ready = false
}

func (f *Library) IsWindowReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

func (f *Library) WindowShouldClose() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("WindowShouldClose()")
	if !f.ready {
		return true
	}
	if f.closeReq {
		return true
	}
	return f.closeAfter > 0 && f.frames >= f.closeAfter
}

func (f *Library) SetWindowTitle(title native.CString) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetWindowTitle(%q)", title.String())
	f.requireWindow("SetWindowTitle")
}

func (f *Library) SetTargetFPS(fps int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetTargetFPS(%d)", fps)
	f.targetFPS = fps
}

func (f *Library) GetScreenWidth() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width
}

func (f *Library) GetScreenHeight() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height
}

func (f *Library) GetFrameTime() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.targetFPS > 0 {
		return 1 / float32(f.targetFPS)
	}
	return 1.0 / 60
}

func (f *Library) GetFPS() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.targetFPS > 0 {
		return f.targetFPS
	}
	return 60
}
