package rl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rl/native"
	"github.com/gogpu/rl/native/fake"
)

func TestDrawEndsOnPanic(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	f.ResetCalls()

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		_ = w.Draw(th, func(d *DrawHandle) error {
			d.ClearBackground(Black)
			panic("boom")
		})
	}()

	want := []string{"BeginDrawing()", "ClearBackground({0 0 0 255})", "EndDrawing()"}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if len(w.stack) != 0 {
		t.Errorf("stack depth after panic = %d, want 0", len(w.stack))
	}

	// The window is usable again.
	if err := w.Draw(th, func(*DrawHandle) error { return nil }); err != nil {
		t.Errorf("Draw() after panic = %v", err)
	}
	if got := f.Frames(); got != 2 {
		t.Errorf("frames = %d, want 2", got)
	}
	noViolations(t, f)
}

func TestDrawEndsOnError(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)

	errBody := errors.New("body failed")
	err := w.Draw(th, func(*DrawHandle) error { return errBody })
	if !errors.Is(err, errBody) {
		t.Fatalf("Draw() = %v, want body error", err)
	}
	if got := f.Frames(); got != 1 {
		t.Errorf("frames = %d, want 1", got)
	}
	noViolations(t, f)
}

func TestNestedScopesCloseInReverseOrder(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	rt, err := w.LoadRenderTexture(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	id := rt.AsNative().ID
	f.ResetCalls()

	cam := Camera2D{Zoom: 1}
	var depths []int
	err = w.Draw(th, func(d *DrawHandle) error {
		depths = append(depths, d.Depth())
		return d.TextureMode(rt, func(d *DrawHandle) error {
			depths = append(depths, d.Depth())
			return d.Mode2D(cam, func(d *DrawHandle) error {
				depths = append(depths, d.Depth())
				return d.Scissor(1, 2, 3, 4, func(d *DrawHandle) error {
					return d.Blend(native.BlendAdditive, func(d *DrawHandle) error {
						depths = append(depths, d.Depth())
						d.DrawPixel(1, 1, White)
						return nil
					})
				})
			})
		})
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"BeginDrawing()",
		"BeginTextureMode(" + itoa(id) + ")",
		"BeginMode2D({{0 0} {0 0} 0 1})",
		"BeginScissorMode(1, 2, 3, 4)",
		"BeginBlendMode(1)",
		"DrawPixel(1, 1, {255 255 255 255})",
		"EndBlendMode()",
		"EndScissorMode()",
		"EndMode2D()",
		"EndTextureMode()",
		"EndDrawing()",
	}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 5}, depths); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	noViolations(t, f)
}

func TestOuterHandleRejectedWhileInnerOpen(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	rt, err := w.LoadRenderTexture(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	_ = w.Draw(th, func(outer *DrawHandle) error {
		return outer.TextureMode(rt, func(inner *DrawHandle) error {
			mustViolate(t, ErrNotInnermost, func() { outer.ClearBackground(Black) })
			mustViolate(t, ErrNotInnermost, func() {
				_ = outer.Mode2D(Camera2D{Zoom: 1}, func(*DrawHandle) error { return nil })
			})
			inner.ClearBackground(Black)
			return nil
		})
	})
	noViolations(t, f)
}

func TestHandleRejectedAfterScope(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)

	var kept *DrawHandle
	if err := w.Draw(th, func(d *DrawHandle) error {
		kept = d
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	f.ResetCalls()
	mustViolate(t, ErrHandleEnded, func() { kept.DrawPixel(0, 0, White) })
	mustViolate(t, ErrHandleEnded, func() { _ = kept.DrawText("late", 0, 0, 10, White) })
	if calls := f.Calls(); len(calls) != 0 {
		t.Errorf("native calls after scope ended: %q", calls)
	}
	noViolations(t, f)
}

func TestSessionErrors(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	rt, err := w.LoadRenderTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	other, err := w.LoadRenderTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	nop := func(*DrawHandle) error { return nil }

	err = w.Draw(th, func(d *DrawHandle) error {
		if err := w.Draw(th, nop); !errors.Is(err, ErrSessionActive) {
			t.Errorf("nested Draw() = %v, want ErrSessionActive", err)
		}
		if err := w.DrawTo(th, rt, nop); !errors.Is(err, ErrSessionActive) {
			t.Errorf("DrawTo() in frame = %v, want ErrSessionActive", err)
		}
		if err := w.Close(); !errors.Is(err, ErrSessionActive) {
			t.Errorf("Close() in frame = %v, want ErrSessionActive", err)
		}
		return d.TextureMode(rt, func(d *DrawHandle) error {
			if err := d.TextureMode(other, nop); !errors.Is(err, ErrTargetBusy) {
				t.Errorf("second TextureMode() = %v, want ErrTargetBusy", err)
			}
			if err := rt.Close(); !errors.Is(err, ErrTargetBusy) {
				t.Errorf("Close() of bound target = %v, want ErrTargetBusy", err)
			}
			return nil
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if rt.Released() {
		t.Error("bound render texture was released")
	}
	noViolations(t, f)
}

func TestDrawTo(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	rt, err := w.LoadRenderTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	f.ResetCalls()

	err = w.DrawTo(th, rt, func(d *DrawHandle) error {
		if d.Mode() != "texture" {
			t.Errorf("Mode() = %q, want texture", d.Mode())
		}
		d.ClearBackground(Blank)
		d.DrawCircle(4, 4, 2, Red)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"BeginTextureMode(" + itoa(rt.AsNative().ID) + ")",
		"ClearBackground({0 0 0 0})",
		"DrawCircle(4, 4, 2, {230 41 55 255})",
		"EndTextureMode()",
	}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if w.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", w.Frames())
	}
	noViolations(t, f)
}

func TestDrawTextRejectsNUL(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	f.ResetCalls()

	err := w.Draw(th, func(d *DrawHandle) error {
		return d.DrawText("bad\x00text", 0, 0, 10, White)
	})
	if !errors.Is(err, ErrInvalidString) {
		t.Fatalf("Draw() = %v, want ErrInvalidString", err)
	}
	if !errors.Is(err, native.ErrEmbeddedNUL) {
		t.Errorf("Draw() = %v, want native.ErrEmbeddedNUL in chain", err)
	}
	want := []string{"BeginDrawing()", "EndDrawing()"}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawCommands(t *testing.T) {
	f := newFake(t)
	f.AddAsset("a.png", fake.Asset{Width: 4, Height: 4})
	w, th := openWindow(t, f)
	tex, err := w.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	id := itoa(tex.AsNative().ID)
	f.ResetCalls()

	tests := []struct {
		name string
		draw func(d *DrawHandle)
		want string
	}{
		{"DrawLine", func(d *DrawHandle) { d.DrawLine(0, 1, 2, 3, Black) }, "DrawLine(0, 1, 2, 3, {0 0 0 255})"},
		{"DrawLineEx", func(d *DrawHandle) { d.DrawLineEx(Vec2(0, 0), Vec2(1, 1), 2, Black) }, "DrawLineEx({0 0}, {1 1}, 2, {0 0 0 255})"},
		{"DrawCircleLines", func(d *DrawHandle) { d.DrawCircleLines(5, 5, 1.5, Black) }, "DrawCircleLines(5, 5, 1.5, {0 0 0 255})"},
		{"DrawRectangle", func(d *DrawHandle) { d.DrawRectangle(1, 2, 3, 4, Black) }, "DrawRectangle(1, 2, 3, 4, {0 0 0 255})"},
		{"DrawRectangleRec", func(d *DrawHandle) { d.DrawRectangleRec(Rect(1, 2, 3, 4), Black) }, "DrawRectangleRec({1 2 3 4}, {0 0 0 255})"},
		{"DrawRectangleLines", func(d *DrawHandle) { d.DrawRectangleLines(1, 2, 3, 4, Black) }, "DrawRectangleLines(1, 2, 3, 4, {0 0 0 255})"},
		{"DrawRectanglePro", func(d *DrawHandle) { d.DrawRectanglePro(Rect(1, 2, 3, 4), Vec2(1, 1), 45, Black) }, "DrawRectanglePro({1 2 3 4}, {1 1}, 45, {0 0 0 255})"},
		{"DrawTriangle", func(d *DrawHandle) { d.DrawTriangle(Vec2(0, 0), Vec2(0, 1), Vec2(1, 0), Black) }, "DrawTriangle({0 0}, {0 1}, {1 0}, {0 0 0 255})"},
		{"DrawFPS", func(d *DrawHandle) { d.DrawFPS(3, 4) }, "DrawFPS(3, 4)"},
		{"DrawTexture", func(d *DrawHandle) { d.DrawTexture(tex, 1, 2, nil) }, "DrawTexture(" + id + ", 1, 2, {255 255 255 255})"},
		{"DrawTextureEx", func(d *DrawHandle) { d.DrawTextureEx(tex, Vec2(1, 2), 90, 2, White) }, "DrawTextureEx(" + id + ", {1 2}, 90, 2, {255 255 255 255})"},
		{"DrawTexturePro", func(d *DrawHandle) {
			d.DrawTexturePro(tex, Rect(0, 0, 4, 4), Rect(0, 0, 8, 8), Vec2(0, 0), 0, White)
		}, "DrawTexturePro(" + id + ", {0 0 4 4}, {0 0 8 8}, {0 0}, 0, {255 255 255 255})"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.ResetCalls()
			if err := w.Draw(th, func(d *DrawHandle) error {
				tt.draw(d)
				return nil
			}); err != nil {
				t.Fatal(err)
			}
			want := []string{"BeginDrawing()", tt.want, "EndDrawing()"}
			if diff := cmp.Diff(want, f.Calls()); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
	noViolations(t, f)
}

func TestDrawReleasedTexture(t *testing.T) {
	f := newFake(t)
	f.AddAsset("a.png", fake.Asset{Width: 4, Height: 4})
	w, th := openWindow(t, f)
	tex, err := w.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if err := tex.Close(); err != nil {
		t.Fatal(err)
	}
	_ = w.Draw(th, func(d *DrawHandle) error {
		mustViolate(t, ErrReleased, func() { d.DrawTexture(tex, 0, 0, White) })
		return nil
	})
	noViolations(t, f)
}

func TestDrawBoundTargetIntoItself(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	rt, err := w.LoadRenderTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	other, err := w.LoadRenderTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	draws := map[string]func(d *DrawHandle){
		"DrawTexture":    func(d *DrawHandle) { d.DrawTexture(rt, 0, 0, nil) },
		"DrawTextureEx":  func(d *DrawHandle) { d.DrawTextureEx(rt, Vec2(0, 0), 0, 1, nil) },
		"DrawTextureRec": func(d *DrawHandle) { d.DrawTextureRec(rt, Rect(0, 0, 8, 8), Vec2(0, 0), nil) },
		"DrawTexturePro": func(d *DrawHandle) {
			d.DrawTexturePro(rt, Rect(0, 0, 8, 8), Rect(0, 0, 8, 8), Vec2(0, 0), 0, nil)
		},
	}
	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			f.ResetCalls()
			err := w.DrawTo(th, rt, func(d *DrawHandle) error {
				mustViolate(t, ErrSelfSample, func() { draw(d) })
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			for _, call := range f.Calls() {
				if call != "BeginTextureMode("+itoa(rt.AsNative().ID)+")" && call != "EndTextureMode()" {
					t.Errorf("unexpected native call %q", call)
				}
			}
		})
	}

	// Another render texture and rt outside its own scope are fine.
	err = w.Draw(th, func(d *DrawHandle) error {
		if err := d.TextureMode(other, func(d *DrawHandle) error {
			d.DrawTexture(rt, 0, 0, nil)
			return nil
		}); err != nil {
			return err
		}
		d.DrawTexture(rt, 0, 0, nil)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	noViolations(t, f)
}

func TestMode3D(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)
	cam := Camera3D{Position: Vec3(0, 10, 10), Up: Vec3(0, 1, 0), Fovy: 45, Projection: native.CameraPerspective}
	f.ResetCalls()

	err := w.Draw(th, func(d *DrawHandle) error {
		mustViolate(t, ErrNotIn3D, func() { d.DrawCube(Vec3(0, 0, 0), 1, 1, 1, Red) })
		return d.Mode3D(cam, func(d3 *DrawHandle) error {
			if d3.Mode() != "3d" || d3.Depth() != 2 {
				t.Errorf("Mode() = %q, Depth() = %d; want 3d, 2", d3.Mode(), d3.Depth())
			}
			if err := d3.Mode3D(cam, func(*DrawHandle) error { return nil }); !errors.Is(err, ErrSessionActive) {
				t.Errorf("nested Mode3D() = %v, want ErrSessionActive", err)
			}
			d3.DrawGrid(10, 1)
			d3.DrawGrid(0, 1)
			return d3.Scissor(0, 0, 10, 10, func(d *DrawHandle) error {
				d.DrawCube(Vec3(0, 1, 0), 2, 2, 2, Red)
				d.DrawCubeWires(Vec3(0, 1, 0), 2, 2, 2, Black)
				d.DrawSphere(Vec3(1, 1, 1), 0.5, Blue)
				return nil
			})
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"BeginDrawing()",
		"BeginMode3D({{0 10 10} {0 0 0} {0 1 0} 45 0})",
		"DrawGrid(10, 1)",
		"BeginScissorMode(0, 0, 10, 10)",
		"DrawCube({0 1 0}, 2, 2, 2, {230 41 55 255})",
		"DrawCubeWires({0 1 0}, 2, 2, 2, {0 0 0 255})",
		"DrawSphere({1 1 1}, 0.5, {0 121 241 255})",
		"EndScissorMode()",
		"EndMode3D()",
		"EndDrawing()",
	}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	noViolations(t, f)
}
