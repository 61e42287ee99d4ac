package rl

import (
	"runtime"
	"weak"

	"github.com/gogpu/rl/native"
)

// kind describes one native handle type: how to recognize the load failure
// sentinel and which native entry point releases it.
type kind[H any] struct {
	name    string
	valid   func(H) bool
	release func(native.Library, H)
}

var (
	imageKind         = &kind[native.Image]{"image", native.Image.Valid, native.Library.UnloadImage}
	textureKind       = &kind[native.Texture]{"texture", native.Texture.Valid, native.Library.UnloadTexture}
	renderTextureKind = &kind[native.RenderTexture]{"render texture", native.RenderTexture.Valid, native.Library.UnloadRenderTexture}
	fontKind          = &kind[native.Font]{"font", native.Font.Valid, native.Library.UnloadFont}
	shaderKind        = &kind[native.Shader]{"shader", native.Shader.Valid, native.Library.UnloadShader}
	waveKind          = &kind[native.Wave]{"wave", native.Wave.Valid, native.Library.UnloadWave}
	soundKind         = &kind[native.Sound]{"sound", native.Sound.Valid, native.Library.UnloadSound}
	musicKind         = &kind[native.Music]{"music", native.Music.Valid, native.Library.UnloadMusicStream}
)

// state is the single owner of a native handle. Facades point at it, so
// copying a facade never duplicates ownership.
type state[H any] struct {
	kind     *kind[H]
	lib      native.Library
	raw      *H // boxed so releases queued elsewhere see in-place updates
	released bool
	borrowed bool // never released natively, see borrow

	owner   *tracker
	ownerID uint64
	cleanup runtime.Cleanup
}

// adopt takes ownership of raw. An invalid raw handle is reported as a
// load failure and nothing is registered. The release function is never
// called here.
func adopt[H any](k *kind[H], l native.Library, owner *tracker, raw H, op, path string) (*state[H], error) {
	if !k.valid(raw) {
		Logger().Debug("rl: load failed", "op", op, "path", path)
		return nil, loadError(op, path)
	}
	box := &raw
	s := &state[H]{kind: k, lib: l, raw: box, owner: owner}
	if owner != nil {
		s.ownerID = owner.add(s.weakRelease())
	}
	s.cleanup = runtime.AddCleanup(s, enqueue, &pendingRelease{
		kind:    k.name,
		lib:     l,
		owner:   owner,
		ownerID: s.ownerID,
		release: func() { k.release(l, *box) },
	})
	Logger().Debug("rl: loaded", "kind", k.name, "op", op)
	return s, nil
}

// borrow wraps a handle that belongs to the native library itself (such
// as the default font). Close on a borrowed handle does nothing; the owner
// invalidates it when it goes away.
func borrow[H any](k *kind[H], l native.Library, owner *tracker, raw H) *state[H] {
	s := &state[H]{kind: k, lib: l, raw: &raw, borrowed: true, owner: owner}
	if owner != nil {
		s.ownerID = owner.add(s.weakRelease())
	}
	return s
}

// close releases the handle exactly once.
func (s *state[H]) close() error {
	if s.released {
		return ErrReleased
	}
	if s.borrowed {
		return nil
	}
	s.drop()
	s.kind.release(s.lib, *s.raw)
	Logger().Debug("rl: released", "kind", s.kind.name)
	return nil
}

// drop marks the handle released and detaches it from its owner and the
// collector without calling the native library.
func (s *state[H]) drop() {
	s.released = true
	s.cleanup.Stop()
	if s.owner != nil {
		s.owner.remove(s.ownerID)
	}
}

// weakRelease returns the owner callback. It holds the state weakly so a
// tracked resource can still be collected while its owner lives. If the
// state is already gone, its queued collector release is dropped by
// ReleasePending once the owner is closed, so the callback frees the
// handle itself.
func (s *state[H]) weakRelease() func() {
	wp := weak.Make(s)
	k, l, raw, borrowed := s.kind, s.lib, s.raw, s.borrowed
	return func() {
		if s := wp.Value(); s != nil {
			if s.released {
				return
			}
			s.released = true
			s.cleanup.Stop()
		}
		if !borrowed {
			k.release(l, *raw)
			Logger().Debug("rl: released by owner", "kind", k.name)
		}
	}
}

// resource is embedded in every typed facade.
type resource[H any] struct {
	st *state[H]
}

// Close releases the native resource. The first call invokes the native
// release function; later calls return ErrReleased and do nothing.
//
// Close must be called from the thread that drives the window.
func (r resource[H]) Close() error {
	if err := r.st.close(); err != nil {
		return &Error{Op: "Close", Kind: KindState, Path: r.st.kind.name, Err: err}
	}
	return nil
}

// AsNative returns the raw descriptor for the duration of a native call.
// The descriptor is borrowed: it must not be released or kept past the
// lifetime of the resource.
//
// AsNative panics with a protocol violation after the resource has been
// released.
func (r resource[H]) AsNative() H {
	return r.handle("AsNative")
}

// Unwrap gives up ownership and returns the raw descriptor. The resource
// counts as released afterwards and nothing will ever free the handle; the
// caller takes over that duty.
//
// Borrowed resources are not owned and cannot be unwrapped; use AsNative.
func (r resource[H]) Unwrap() H {
	if r.st.released {
		violation("Unwrap", ErrReleased)
	}
	if r.st.borrowed {
		violation("Unwrap", ErrBorrowed)
	}
	r.st.drop()
	return *r.st.raw
}

// Released reports whether the resource has been released or unwrapped.
func (r resource[H]) Released() bool {
	return r.st.released
}

// handle returns the descriptor for op or panics after release.
func (r resource[H]) handle(op string) H {
	if r.st.released {
		violation(op, ErrReleased)
	}
	return *r.st.raw
}

// update runs a native call that modifies the descriptor in place.
func (r resource[H]) update(op string, fn func(*H)) {
	if r.st.released {
		violation(op, ErrReleased)
	}
	fn(r.st.raw)
}
