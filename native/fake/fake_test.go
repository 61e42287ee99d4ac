// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rl/native"
)

func mustCString(t *testing.T, s string) native.CString {
	t.Helper()
	cs, err := native.NewCString(s)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func TestLoadImageMissing(t *testing.T) {
	f := New()
	f.UseDisk(false)
	img := f.LoadImage(mustCString(t, "missing.png"))
	if img.Valid() {
		t.Error("LoadImage(missing) returned a valid image")
	}
	if got := f.Loads(KindImage); got != 0 {
		t.Errorf("Loads(image) = %d, want 0", got)
	}
}

func TestImageLifecycle(t *testing.T) {
	f := New()
	f.AddAsset("a.png", Asset{Width: 4, Height: 2, Color: native.Color{R: 9, A: 255}})

	img := f.LoadImage(mustCString(t, "a.png"))
	if !img.Valid() {
		t.Fatal("LoadImage returned invalid image")
	}
	if img.Width != 4 || img.Height != 2 {
		t.Errorf("size = %dx%d, want 4x2", img.Width, img.Height)
	}
	pix := f.LoadImageColors(img)
	if len(pix) != 8 || pix[0].R != 9 {
		t.Errorf("LoadImageColors() = %v", pix)
	}

	f.UnloadImage(img)
	f.UnloadImage(img)
	if got := f.Releases(KindImage); got != 1 {
		t.Errorf("Releases(image) = %d, want 1", got)
	}
	want := []string{"UnloadImage of unknown or released handle"}
	if diff := cmp.Diff(want, f.Violations()); diff != "" {
		t.Errorf("Violations() mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawOutsideDrawing(t *testing.T) {
	f := New()
	f.InitWindow(10, 10, mustCString(t, "t"))
	f.ClearBackground(native.Color{})
	f.BeginDrawing()
	f.DrawPixel(1, 1, native.Color{})
	f.EndDrawing()

	want := []string{"ClearBackground outside drawing"}
	if diff := cmp.Diff(want, f.Violations()); diff != "" {
		t.Errorf("Violations() mismatch (-want +got):\n%s", diff)
	}
	if f.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", f.Frames())
	}
}

func TestFontFallback(t *testing.T) {
	f := New()
	f.UseDisk(false)
	f.InitWindow(10, 10, mustCString(t, "t"))
	font := f.LoadFont(mustCString(t, "missing.ttf"))
	if font.Texture.ID != f.GetFontDefault().Texture.ID {
		t.Error("failed LoadFont should return the default font")
	}
	if f.Loads(KindFont) != 0 {
		t.Errorf("Loads(font) = %d, want 0", f.Loads(KindFont))
	}
}

func TestShaderFallback(t *testing.T) {
	f := New()
	f.UseDisk(false)
	f.InitWindow(10, 10, mustCString(t, "t"))
	s := f.LoadShader(native.CString{}, mustCString(t, "missing.fs"))
	if s.ID != f.ShaderIDDefault() {
		t.Errorf("failed LoadShader id = %d, want default %d", s.ID, f.ShaderIDDefault())
	}
}

func TestWindowShouldClose(t *testing.T) {
	f := New()
	if !f.WindowShouldClose() {
		t.Error("WindowShouldClose() = false without a window")
	}
	f.InitWindow(10, 10, mustCString(t, "t"))
	f.CloseAfter(2)
	for i := 0; i < 2; i++ {
		if f.WindowShouldClose() {
			t.Fatalf("WindowShouldClose() = true after %d frames", i)
		}
		f.BeginDrawing()
		f.EndDrawing()
	}
	if !f.WindowShouldClose() {
		t.Error("WindowShouldClose() = false after 2 frames")
	}
}
