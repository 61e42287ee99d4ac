package rl

import (
	"github.com/gogpu/rl/native"
)

// DrawHandle is the capability to issue drawing commands. It exists only
// inside the function passed to Window.Draw, Window.DrawTo or one of the
// nested mode methods, and only the innermost open handle accepts
// commands. Using a handle after its function returned, or while a nested
// handle is open, panics with a protocol violation.
//
// By convention the first command of a frame is ClearBackground.
type DrawHandle struct {
	w     *Window
	mode  string
	ended bool
}

// Mode names the scope the handle belongs to: "frame", "texture", "2d",
// "3d", "scissor", "blend" or "shader".
func (d *DrawHandle) Mode() string { return d.mode }

// Depth returns how many scopes are open, counting this one.
func (d *DrawHandle) Depth() int {
	for i, h := range d.w.stack {
		if h == d {
			return i + 1
		}
	}
	return 0
}

// lib checks that d may issue op and returns the native library.
func (d *DrawHandle) lib(op string) native.Library {
	if d.ended {
		violation(op, ErrHandleEnded)
	}
	if n := len(d.w.stack); n == 0 || d.w.stack[n-1] != d {
		violation(op, ErrNotInnermost)
	}
	return d.w.lib
}

// scope opens a drawing scope, runs fn with its handle and closes the
// scope. end runs exactly once, also when fn panics.
func (w *Window) scope(mode string, begin, end func(native.Library), fn func(*DrawHandle) error) error {
	d := &DrawHandle{w: w, mode: mode}
	begin(w.lib)
	w.stack = append(w.stack, d)
	Logger().Debug("rl: scope begin", "mode", mode, "depth", len(w.stack))
	defer func() {
		d.ended = true
		w.stack = w.stack[:len(w.stack)-1]
		end(w.lib)
		Logger().Debug("rl: scope end", "mode", mode, "depth", len(w.stack))
	}()
	return fn(d)
}

// Draw runs one frame: it begins drawing, calls fn, and ends drawing,
// which presents the frame and waits for the target frame rate. Drawing
// ends even if fn returns an error or panics. Releases queued by the
// garbage collector run after the frame.
//
// Draw fails with ErrSessionActive when called from inside another scope.
func (w *Window) Draw(t *Thread, fn func(*DrawHandle) error) error {
	const op = "Window.Draw"
	if err := w.checkThread(op, t); err != nil {
		return err
	}
	if len(w.stack) > 0 {
		return stateError(op, ErrSessionActive)
	}
	defer func() {
		w.frames++
		ReleasePending()
	}()
	return w.scope("frame", native.Library.BeginDrawing, native.Library.EndDrawing, fn)
}

// DrawTo renders into rt outside of a frame, for example to prepare a
// texture once before the main loop.
func (w *Window) DrawTo(t *Thread, rt *RenderTexture, fn func(*DrawHandle) error) error {
	const op = "Window.DrawTo"
	if err := w.checkThread(op, t); err != nil {
		return err
	}
	if len(w.stack) > 0 {
		return stateError(op, ErrSessionActive)
	}
	return w.textureScope(op, rt, fn)
}

// TextureMode redirects drawing into rt while fn runs. Only one render
// texture can be the target at a time; nesting a second one fails with
// ErrTargetBusy. Drawing rt itself inside fn panics with a protocol
// violation.
func (d *DrawHandle) TextureMode(rt *RenderTexture, fn func(*DrawHandle) error) error {
	const op = "TextureMode"
	d.lib(op)
	return d.w.textureScope(op, rt, fn)
}

func (w *Window) textureScope(op string, rt *RenderTexture, fn func(*DrawHandle) error) error {
	raw := rt.handle(op)
	if w.target != nil {
		return stateError(op, ErrTargetBusy)
	}
	w.target = rt.st
	defer func() { w.target = nil }()
	return w.scope("texture",
		func(l native.Library) { l.BeginTextureMode(raw) },
		native.Library.EndTextureMode,
		fn)
}

// Mode2D applies camera to the drawing commands issued in fn.
func (d *DrawHandle) Mode2D(camera Camera2D, fn func(*DrawHandle) error) error {
	d.lib("Mode2D")
	return d.w.scope("2d",
		func(l native.Library) { l.BeginMode2D(camera) },
		native.Library.EndMode2D,
		fn)
}

// Mode3D projects the drawing commands issued in fn through camera. The
// 3D shape commands are only accepted inside it. 3D scopes do not nest;
// a second one fails with ErrSessionActive.
func (d *DrawHandle) Mode3D(camera Camera3D, fn func(*DrawHandle) error) error {
	const op = "Mode3D"
	d.lib(op)
	if d.in3D() {
		return stateError(op, ErrSessionActive)
	}
	return d.w.scope("3d",
		func(l native.Library) { l.BeginMode3D(camera) },
		native.Library.EndMode3D,
		fn)
}

// in3D reports whether a 3D scope is open.
func (d *DrawHandle) in3D() bool {
	for _, h := range d.w.stack {
		if h.mode == "3d" {
			return true
		}
	}
	return false
}

// lib3D is lib for the 3D shape commands.
func (d *DrawHandle) lib3D(op string) native.Library {
	l := d.lib(op)
	if !d.in3D() {
		violation(op, ErrNotIn3D)
	}
	return l
}

// Scissor clips the drawing commands issued in fn to the given screen
// rectangle.
func (d *DrawHandle) Scissor(x, y, width, height int, fn func(*DrawHandle) error) error {
	d.lib("Scissor")
	if !validCount(width) || !validCount(height) {
		return stateError("Scissor", ErrInvalidSize)
	}
	return d.w.scope("scissor",
		func(l native.Library) { l.BeginScissorMode(int32(x), int32(y), int32(width), int32(height)) },
		native.Library.EndScissorMode,
		fn)
}

// Blend selects the blend mode for the drawing commands issued in fn.
func (d *DrawHandle) Blend(mode native.BlendMode, fn func(*DrawHandle) error) error {
	d.lib("Blend")
	return d.w.scope("blend",
		func(l native.Library) { l.BeginBlendMode(mode) },
		native.Library.EndBlendMode,
		fn)
}

// WithShader draws the commands issued in fn with shader.
func (d *DrawHandle) WithShader(shader *Shader, fn func(*DrawHandle) error) error {
	const op = "WithShader"
	d.lib(op)
	raw := shader.handle(op)
	return d.w.scope("shader",
		func(l native.Library) { l.BeginShaderMode(raw) },
		native.Library.EndShaderMode,
		fn)
}
