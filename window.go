package rl

import (
	"runtime"
	"sync"
	"time"

	"github.com/gogpu/rl/native"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Thread is the drawing capability issued by Open. Only the goroutine that
// called Open holds it; it is locked to that OS thread until Close. A
// Thread is compared by identity and must not be copied.
type Thread struct {
	_ noCopy

	w       *Window
	revoked bool
}

// windowSlot enforces a single open window per process.
var windowSlot struct {
	mu   sync.Mutex
	open *Window
}

// Window is the single native window and its graphics context. Resources
// that live on the GPU (textures, render textures, fonts, shaders) are
// created through the Window and released, last acquired first, when it
// closes.
//
// A Window is not safe for concurrent use. All methods must be called
// from the goroutine that called Open.
type Window struct {
	lib    native.Library
	cfg    Config
	thread *Thread
	owned  *tracker
	closed bool

	stack  []*DrawHandle                // open drawing scopes, innermost last
	target *state[native.RenderTexture] // bound render texture, if any

	defaultFont *Font
	frames      uint64
}

// Open creates the window and returns it with the drawing capability.
// At most one window may be open at a time; a second Open fails with
// ErrWindowOpen until the first is closed.
//
// Open locks the calling goroutine to its OS thread. The native library
// keeps per-thread context state, so every later call must come from the
// same goroutine.
func Open(width, height int, opts ...Option) (*Window, *Thread, error) {
	const op = "Open"
	cfg := defaultConfig(width, height)
	for _, opt := range opts {
		opt(&cfg)
	}
	if !validSize(cfg.Width) || !validSize(cfg.Height) || !validCount(cfg.TargetFPS) {
		return nil, nil, stateError(op, ErrInvalidSize)
	}
	title, err := marshalText(op, cfg.Title)
	if err != nil {
		return nil, nil, err
	}

	l := cfg.lib
	if l == nil {
		if l, err = currentLibrary(); err != nil {
			return nil, nil, stateError(op, err)
		}
	}

	windowSlot.mu.Lock()
	defer windowSlot.mu.Unlock()
	if windowSlot.open != nil {
		return nil, nil, stateError(op, ErrWindowOpen)
	}

	runtime.LockOSThread()
	l.SetConfigFlags(cfg.Flags)
	l.SetTraceLogLevel(cfg.LogLevel)
	l.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	if !l.IsWindowReady() {
		runtime.UnlockOSThread()
		return nil, nil, stateError(op, ErrInitFailed)
	}
	if cfg.TargetFPS > 0 {
		l.SetTargetFPS(int32(cfg.TargetFPS))
	}
	// Selected only once the window exists, so a failed Open leaves CPU
	// resources on the library they were using.
	if cfg.lib != nil {
		SetLibrary(l)
	}

	w := &Window{
		lib:   l,
		cfg:   cfg,
		owned: newTracker("window"),
	}
	w.thread = &Thread{w: w}
	w.defaultFont = &Font{resource[native.Font]{borrow(fontKind, l, w.owned, l.GetFontDefault())}}
	windowSlot.open = w

	Logger().Info("rl: window opened", "width", cfg.Width, "height", cfg.Height,
		"title", cfg.Title, "backend", l.Name())
	return w, w.thread, nil
}

// ShouldClose reports whether the user asked to close the window (close
// button or escape key). A closed window always reports true.
func (w *Window) ShouldClose() bool {
	if w.closed {
		return true
	}
	return w.lib.WindowShouldClose()
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	const op = "Window.SetTitle"
	if w.closed {
		return stateError(op, ErrWindowClosed)
	}
	t, err := marshalText(op, title)
	if err != nil {
		return err
	}
	w.lib.SetWindowTitle(t)
	w.cfg.Title = title
	return nil
}

// Title returns the current window title.
func (w *Window) Title() string { return w.cfg.Title }

// SetTargetFPS caps the frame rate; 0 removes the cap.
func (w *Window) SetTargetFPS(fps int) error {
	const op = "Window.SetTargetFPS"
	if w.closed {
		return stateError(op, ErrWindowClosed)
	}
	if !validCount(fps) {
		return stateError(op, ErrInvalidSize)
	}
	w.lib.SetTargetFPS(int32(fps))
	w.cfg.TargetFPS = fps
	return nil
}

// Size returns the current screen size. A closed window reports 0, 0.
func (w *Window) Size() (width, height int) {
	if w.closed {
		return 0, 0
	}
	return int(w.lib.GetScreenWidth()), int(w.lib.GetScreenHeight())
}

// FrameTime returns the duration of the last frame.
func (w *Window) FrameTime() time.Duration {
	if w.closed {
		return 0
	}
	return time.Duration(float64(w.lib.GetFrameTime()) * float64(time.Second))
}

// FPS returns the current frames per second estimate.
func (w *Window) FPS() int {
	if w.closed {
		return 0
	}
	return int(w.lib.GetFPS())
}

// Frames returns how many frames Draw has completed.
func (w *Window) Frames() uint64 { return w.frames }

// Closed reports whether Close has run.
func (w *Window) Closed() bool { return w.closed }

// Close releases every resource created through the window that is still
// open, last acquired first, closes the native window and revokes the
// Thread. Close fails with ErrSessionActive while a drawing scope is
// open, and with ErrWindowClosed when called again.
func (w *Window) Close() error {
	const op = "Window.Close"
	if w.closed {
		return stateError(op, ErrWindowClosed)
	}
	if len(w.stack) > 0 {
		return stateError(op, ErrSessionActive)
	}

	reaped := ReleasePending()
	released := w.owned.closeAll()
	w.lib.CloseWindow()
	w.closed = true
	w.thread.revoked = true
	w.defaultFont = nil

	windowSlot.mu.Lock()
	if windowSlot.open == w {
		windowSlot.open = nil
	}
	windowSlot.mu.Unlock()
	runtime.UnlockOSThread()

	Logger().Info("rl: window closed", "frames", w.frames, "released", released, "reaped", reaped)
	return nil
}

// checkThread validates the capability for op.
func (w *Window) checkThread(op string, t *Thread) error {
	if w.closed {
		return stateError(op, ErrWindowClosed)
	}
	if t == nil || t.w != w || t.revoked {
		return stateError(op, ErrWrongThread)
	}
	return nil
}

// requireOpen guards resource creation.
func (w *Window) requireOpen(op string) error {
	if w.closed {
		return stateError(op, ErrWindowClosed)
	}
	return nil
}
