// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native declares the foreign boundary of rl: the flat, C-shaped
// descriptors exchanged with the native graphics library and the Library
// interface listing every native entry point rl calls.
//
// Nothing in this package owns anything. Descriptors such as Image or Texture
// are copyable values that become meaningless once the resource they describe
// has been unloaded; ownership lives exclusively in the rl wrapper types.
//
// # Backends
//
// Implementations of Library register themselves by name, the same way
// rendering backends register with a factory registry:
//
//	import _ "github.com/gogpu/rl/native/raylib" // cgo, build tag "raylib"
//
// The pure-Go package native/fake registers an instrumented implementation
// that records calls and counts releases. It is what the tests of rl run
// against, and it lets programs run headless.
//
// # Strings
//
// Text crosses the boundary only as CString, which can only be produced by
// NewCString. NewCString rejects text containing a NUL byte, so a string
// that would be silently truncated by the native side never reaches it.
package native
