package rl

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rl/native"
	"github.com/gogpu/rl/native/fake"
)

func TestOpenOptions(t *testing.T) {
	f := newFake(t)
	w, _ := openWindow(t, f,
		WithTitle("opts"),
		WithTargetFPS(30),
		WithFlags(FlagResizable),
		WithFlags(FlagVSync),
		WithLogLevel(native.LogNone),
	)
	want := []string{
		"SetConfigFlags(0x44)",
		"SetTraceLogLevel(7)",
		`InitWindow(320, 240, "opts")`,
		"SetTargetFPS(30)",
	}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if w.Title() != "opts" {
		t.Errorf("Title() = %q", w.Title())
	}
	if w.FPS() != 30 {
		t.Errorf("FPS() = %d, want 30", w.FPS())
	}
	if got, want := w.FrameTime(), time.Second/30; got < want-time.Millisecond || got > want+time.Millisecond {
		t.Errorf("FrameTime() = %v, want about %v", got, want)
	}
	if width, height := w.Size(); width != 320 || height != 240 {
		t.Errorf("Size() = %d, %d", width, height)
	}
}

func TestOpenValidation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		opts   []Option
		want   error
	}{
		{"zero width", 0, 240, nil, ErrInvalidSize},
		{"negative height", 320, -1, nil, ErrInvalidSize},
		{"negative fps", 320, 240, []Option{WithTargetFPS(-1)}, ErrInvalidSize},
		{"NUL title", 320, 240, []Option{WithTitle("a\x00b")}, ErrInvalidString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(t)
			w, th, err := Open(tt.width, tt.height, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Open() = %v, want %v", err, tt.want)
			}
			if w != nil || th != nil {
				t.Error("Open() returned a window on error")
			}
			if calls := f.Calls(); len(calls) != 0 {
				t.Errorf("native calls on rejected Open: %q", calls)
			}
		})
	}
}

func TestOpenRejectsOversize(t *testing.T) {
	big := tooLarge(t)
	wrap := uint64(1)<<32 + 320 // 320 once truncated to 32 bits
	tests := []struct {
		name          string
		width, height int
		opts          []Option
	}{
		{"width", big, 240, nil},
		{"height", 320, big, nil},
		{"wrapping width", int(wrap), 240, nil},
		{"fps", 320, 240, []Option{WithTargetFPS(big)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFake(t)
			if _, _, err := Open(tt.width, tt.height, tt.opts...); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("Open() = %v, want ErrInvalidSize", err)
			}
			if calls := f.Calls(); len(calls) != 0 {
				t.Errorf("native calls on rejected Open: %q", calls)
			}
		})
	}
}

func TestSetTargetFPSOversize(t *testing.T) {
	big := tooLarge(t)
	f := newFake(t)
	w, _ := openWindow(t, f)
	f.ResetCalls()
	if err := w.SetTargetFPS(big); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetTargetFPS() = %v, want ErrInvalidSize", err)
	}
	if calls := f.Calls(); len(calls) != 0 {
		t.Errorf("native calls: %q", calls)
	}
}

func TestFailedOpenKeepsLibrary(t *testing.T) {
	t.Run("window already open", func(t *testing.T) {
		f1 := newFake(t)
		openWindow(t, f1)
		f2 := fake.New()
		if _, _, err := Open(320, 240, WithLibrary(f2)); !errors.Is(err, ErrWindowOpen) {
			t.Fatalf("Open() = %v, want ErrWindowOpen", err)
		}
		img, err := GenImageColor(2, 2, Black)
		if err != nil {
			t.Fatal(err)
		}
		defer img.Close()
		if got, other := f1.Loads(fake.KindImage), f2.Loads(fake.KindImage); got != 1 || other != 0 {
			t.Errorf("image loads: open library %d, rejected library %d; want 1, 0", got, other)
		}
	})
	t.Run("init failure", func(t *testing.T) {
		f1 := newFake(t)
		f2 := fake.New()
		f2.FailInit()
		if _, _, err := Open(320, 240, WithLibrary(f2)); !errors.Is(err, ErrInitFailed) {
			t.Fatalf("Open() = %v, want ErrInitFailed", err)
		}
		img, err := GenImageColor(2, 2, Black)
		if err != nil {
			t.Fatal(err)
		}
		defer img.Close()
		if got := f1.Loads(fake.KindImage); got != 1 {
			t.Errorf("image loads on selected library = %d, want 1", got)
		}
	})
	t.Run("success selects", func(t *testing.T) {
		newFake(t)
		f2 := fake.New()
		openWindow(t, f2)
		img, err := GenImageColor(2, 2, Black)
		if err != nil {
			t.Fatal(err)
		}
		defer img.Close()
		if got := f2.Loads(fake.KindImage); got != 1 {
			t.Errorf("image loads on window library = %d, want 1", got)
		}
	})
}

func TestOpenInitFailure(t *testing.T) {
	f := newFake(t)
	f.FailInit()
	if _, _, err := Open(320, 240); !errors.Is(err, ErrInitFailed) {
		t.Fatalf("Open() = %v, want ErrInitFailed", err)
	}
	// The slot stays free.
	openWindow(t, f)
}

func TestOpenSingleton(t *testing.T) {
	f := newFake(t)
	w, _ := openWindow(t, f)

	if _, _, err := Open(100, 100); !errors.Is(err, ErrWindowOpen) {
		t.Fatalf("second Open() = %v, want ErrWindowOpen", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	w2, _ := openWindow(t, f)
	if err := w2.Close(); err != nil {
		t.Fatal(err)
	}
	if got := f.Releases(fake.KindWindow); got != 2 {
		t.Errorf("window releases = %d, want 2", got)
	}
	noViolations(t, f)
}

func TestCloseIdempotent(t *testing.T) {
	f := newFake(t)
	w, th := openWindow(t, f)

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("second Close() = %v, want ErrWindowClosed", err)
	}
	if got := f.Releases(fake.KindWindow); got != 1 {
		t.Errorf("window releases = %d, want 1", got)
	}
	if err := w.Draw(th, func(*DrawHandle) error { return nil }); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Draw() after Close = %v, want ErrWindowClosed", err)
	}
	if !w.ShouldClose() {
		t.Error("ShouldClose() = false after Close")
	}
	if err := w.SetTitle("x"); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("SetTitle() after Close = %v", err)
	}
	if _, err := w.LoadRenderTexture(4, 4); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("LoadRenderTexture() after Close = %v", err)
	}
	if _, err := w.DefaultFont(); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("DefaultFont() after Close = %v", err)
	}
	noViolations(t, f)
}

func TestThreadBoundToWindow(t *testing.T) {
	f := newFake(t)
	w1, th1 := openWindow(t, f)
	if err := w1.Close(); err != nil {
		t.Fatal(err)
	}
	w2, th2 := openWindow(t, f)

	nop := func(*DrawHandle) error { return nil }
	if err := w2.Draw(th1, nop); !errors.Is(err, ErrWrongThread) {
		t.Errorf("Draw() with revoked thread = %v, want ErrWrongThread", err)
	}
	if err := w2.Draw(nil, nop); !errors.Is(err, ErrWrongThread) {
		t.Errorf("Draw() with nil thread = %v, want ErrWrongThread", err)
	}
	if err := w2.Draw(th2, nop); err != nil {
		t.Errorf("Draw() = %v", err)
	}
}

func TestShouldClose(t *testing.T) {
	f := newFake(t)
	f.CloseAfter(3)
	w, th := openWindow(t, f)

	frames := 0
	for !w.ShouldClose() {
		if err := w.Draw(th, func(d *DrawHandle) error {
			d.ClearBackground(RayWhite)
			return nil
		}); err != nil {
			t.Fatal(err)
		}
		frames++
		if frames > 10 {
			t.Fatal("window never asked to close")
		}
	}
	if frames != 3 || w.Frames() != 3 {
		t.Errorf("frames = %d (Frames() = %d), want 3", frames, w.Frames())
	}
}

func TestSetTitle(t *testing.T) {
	f := newFake(t)
	w, _ := openWindow(t, f)
	f.ResetCalls()

	// Decomposed e + combining acute is sent composed.
	if err := w.SetTitle("cafe\u0301"); err != nil {
		t.Fatal(err)
	}
	if err := w.SetTitle("bad\x00"); !errors.Is(err, ErrInvalidString) {
		t.Errorf("SetTitle() = %v, want ErrInvalidString", err)
	}
	want := []string{"SetWindowTitle(\"caf\u00e9\")"}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if w.Title() != "cafe\u0301" {
		t.Errorf("Title() = %q", w.Title())
	}
	if err := w.SetTargetFPS(-5); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("SetTargetFPS(-5) = %v", err)
	}
}

func TestCloseReleasesInReverseOrder(t *testing.T) {
	f := newFake(t)
	f.AddAsset("a.png", fake.Asset{Width: 2, Height: 2})
	f.AddAsset("b.png", fake.Asset{Width: 2, Height: 2})
	w, _ := openWindow(t, f)

	a, err := w.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	b, err := w.LoadTexture("b.png")
	if err != nil {
		t.Fatal(err)
	}
	c, err := w.LoadRenderTexture(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	ids := []uint32{a.AsNative().ID, b.AsNative().ID, c.AsNative().ID}
	f.ResetCalls()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"UnloadRenderTexture(" + itoa(ids[2]) + ")",
		"UnloadTexture(" + itoa(ids[1]) + ")",
		"UnloadTexture(" + itoa(ids[0]) + ")",
		"CloseWindow()",
	}
	if diff := cmp.Diff(want, f.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if !a.Released() || !b.Released() || !c.Released() {
		t.Error("resources not marked released by window close")
	}
	noViolations(t, f)
}
