// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rl"
	"github.com/gogpu/rl/native/fake"
)

func openWindow(t *testing.T) (*fake.Library, *rl.Window, *rl.Thread) {
	t.Helper()
	f := fake.New()
	f.UseDisk(false)
	rl.SetLibrary(f)
	w, th, err := rl.Open(320, 240, rl.WithTitle("canvas"), rl.WithLibrary(f))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	t.Cleanup(func() {
		if !w.Closed() {
			_ = w.Close()
		}
		rl.SetLibrary(nil)
		if v := f.Violations(); len(v) > 0 {
			t.Errorf("native protocol violations: %q", v)
		}
	})
	f.ResetCalls()
	return f, w, th
}

// textureCalls filters the call log down to texture traffic.
func textureCalls(f *fake.Library) []string {
	var out []string
	for _, c := range f.Calls() {
		for _, p := range []string{"ImageFromRGBA", "LoadTextureFromImage", "UpdateTexture", "UnloadTexture", "UnloadImage", "DrawTexturePro"} {
			if strings.HasPrefix(c, p+"(") {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func TestNewValidation(t *testing.T) {
	_, w, _ := openWindow(t)

	if _, err := New(nil, 10, 10); !errors.Is(err, ErrNilWindow) {
		t.Errorf("New(nil) = %v, want ErrNilWindow", err)
	}
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(w, sz[0], sz[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(nil) did not panic")
		}
	}()
	MustNew(nil, 1, 1)
}

func TestFlushCreatesThenUpdates(t *testing.T) {
	f, w, _ := openWindow(t)
	c := MustNew(w, 64, 32)
	defer c.Close()

	if c.Texture() != nil {
		t.Fatal("texture exists before first Flush")
	}
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	if c.IsDirty() {
		t.Error("canvas still dirty after Flush")
	}
	if got := tex.Bounds().Size(); got.X != 64 || got.Y != 32 {
		t.Errorf("texture size = %v, want 64x32", got)
	}

	// Clean canvas: no upload.
	if again, _ := c.Flush(); again != tex {
		t.Error("clean Flush returned a different texture")
	}

	if err := c.Draw(func(cc *gg.Context) {
		cc.SetRGB(1, 0, 0)
		cc.DrawRectangle(0, 0, 8, 8)
		cc.Fill()
	}); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if _, err := c.Flush(); err != nil {
		t.Fatalf("Flush() = %v", err)
	}

	id := tex.AsNative().ID
	want := []string{
		"ImageFromRGBA(8192, 64, 32)",
		"LoadTextureFromImage(64, 32)",
		"UnloadImage()",
		fmt.Sprintf("UpdateTexture(%d, 8192)", id),
	}
	if diff := cmp.Diff(want, textureCalls(f)); diff != "" {
		t.Errorf("texture calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelsAreStraightAlpha(t *testing.T) {
	_, w, _ := openWindow(t)
	c := MustNew(w, 4, 4)
	defer c.Close()

	_ = c.Draw(func(cc *gg.Context) {
		cc.SetRGBA(1, 0, 0, 0.5)
		cc.Clear()
	})
	got := c.pixels().NRGBAAt(1, 1)
	want := color.NRGBA{R: 255, A: 128}
	if diff(got.R, want.R) > 1 || got.G != 0 || got.B != 0 || diff(got.A, want.A) > 1 {
		t.Errorf("pixel = %v, want about %v", got, want)
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestResizeRecreatesTexture(t *testing.T) {
	f, w, _ := openWindow(t)
	c := MustNew(w, 16, 16)
	defer c.Close()

	old, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	oldID := old.AsNative().ID

	if err := c.Resize(16, 16); err != nil {
		t.Fatalf("Resize(same) = %v", err)
	}
	if c.IsDirty() {
		t.Error("Resize to the same size marked the canvas dirty")
	}
	if err := c.Resize(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidDimensions", err)
	}

	f.ResetCalls()
	if err := c.Resize(8, 4); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() = %v", err)
	}
	if !old.Released() {
		t.Error("old texture not released after resize")
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Errorf("texture = %dx%d, want 8x4", tex.Width(), tex.Height())
	}
	want := []string{
		fmt.Sprintf("UnloadTexture(%d)", oldID),
		"ImageFromRGBA(128, 8, 4)",
		"LoadTextureFromImage(8, 4)",
		"UnloadImage()",
	}
	if d := cmp.Diff(want, textureCalls(f)); d != "" {
		t.Errorf("texture calls mismatch (-want +got):\n%s", d)
	}
}

func TestRenderToEx(t *testing.T) {
	f, w, th := openWindow(t)
	c := MustNew(w, 64, 32)
	defer c.Close()

	err := w.Draw(th, func(d *rl.DrawHandle) error {
		if err := c.RenderTo(d); err != nil {
			return err
		}
		return c.RenderToEx(d, RenderOptions{X: 10, Y: 20, ScaleX: 0.5, ScaleY: 0.5, Alpha: 0.5, FlipY: true})
	})
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	id := c.Texture().AsNative().ID
	var draws []string
	for _, call := range textureCalls(f) {
		if strings.HasPrefix(call, "DrawTexturePro(") {
			draws = append(draws, call)
		}
	}
	want := []string{
		fmt.Sprintf("DrawTexturePro(%d, {0 0 64 32}, {0 0 64 32}, {0 0}, 0, {255 255 255 255})", id),
		fmt.Sprintf("DrawTexturePro(%d, {0 0 64 -32}, {10 20 32 16}, {0 0}, 0, {255 255 255 128})", id),
	}
	if d := cmp.Diff(want, draws); d != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", d)
	}
}

func TestTint(t *testing.T) {
	tests := []struct {
		alpha float32
		want  uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := tint(tt.alpha).A; got != tt.want {
			t.Errorf("tint(%v).A = %d, want %d", tt.alpha, got, tt.want)
		}
	}
}

func TestUseGoFont(t *testing.T) {
	_, w, _ := openWindow(t)
	c := MustNew(w, 100, 40)
	defer c.Close()

	if err := c.UseGoFont(16); err != nil {
		t.Fatalf("UseGoFont() = %v", err)
	}
	if width, _ := c.Context().MeasureString("raylib"); width <= 0 {
		t.Errorf("MeasureString = %v, want > 0", width)
	}
}

func TestCloseIdempotent(t *testing.T) {
	f, w, _ := openWindow(t)
	c := MustNew(w, 8, 8)
	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() = %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if !tex.Released() {
		t.Error("texture not released by Close")
	}
	if c.Context() != nil {
		t.Error("Context() after Close is not nil")
	}
	if _, err := c.Flush(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Flush after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.Draw(func(*gg.Context) {}); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Draw after Close = %v, want ErrCanvasClosed", err)
	}
	if err := c.Resize(1, 1); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize after Close = %v, want ErrCanvasClosed", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("window Close() = %v", err)
	}
	if got := f.Releases(fake.KindTexture); got != 1 {
		t.Errorf("texture releases = %d, want 1", got)
	}
}
