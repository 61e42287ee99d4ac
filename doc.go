// Package rl is a safe layer over a native, handle based graphics library
// (raylib).
//
// # Overview
//
// The native library manages windows, textures, fonts, shaders and audio
// through plain descriptors and relies on documentation for its protocol:
// every load must be paired with exactly one unload, drawing must happen
// between BeginDrawing and EndDrawing, and only one window may exist. rl
// turns those rules into types:
//
//   - Every resource is owned by one Go value. Close releases it once;
//     later calls return ErrReleased. Resources that become unreachable
//     without Close are released on the drawing thread after the next
//     frame.
//   - A failed load is an error matching ErrLoadFailed, never a handle.
//   - Text containing a NUL byte is rejected with ErrInvalidString before
//     any native call.
//   - Drawing commands exist only on a DrawHandle, which is available
//     only inside Window.Draw. The frame ends when the function returns,
//     even if it panics.
//   - Open returns the one Window together with the Thread capability
//     that every frame requires. Close revokes it.
//
// # Quick Start
//
//	w, t, err := rl.Open(320, 240, rl.WithTitle("hello"), rl.WithTargetFPS(60))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for !w.ShouldClose() {
//	    err := w.Draw(t, func(d *rl.DrawHandle) error {
//	        d.ClearBackground(rl.RayWhite)
//	        return d.DrawText("hello", 12, 12, 20, rl.DarkGray)
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Nested modes
//
// Inside a frame, TextureMode, Mode2D, Scissor, Blend and WithShader open
// nested scopes. Scopes close in reverse order of opening; only the
// innermost handle accepts commands.
//
// # Backends
//
// The native library is selected from the backends registered with
// package native. Import native/raylib (build tag raylib) for the real
// library or native/fake for tests.
//
// # Errors
//
// Recoverable failures are returned as *Error values that wrap one of the
// sentinel errors. Protocol violations, such as drawing through a handle
// whose scope has ended or using a released resource, panic with an
// *Error of KindProtocol that carries a stack trace.
package rl
