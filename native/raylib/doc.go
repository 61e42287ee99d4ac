// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raylib binds the system raylib C library through cgo and
// registers it as native.BackendRaylib.
//
// The binding is compiled only with the "raylib" build tag:
//
//	go build -tags raylib ./...
//
// It expects raylib.h and rlgl.h on the include path and libraylib on the
// link path. Building for the web target additionally needs the "web" tag,
// which links the glfw shim that the emscripten port of raylib requires.
//
// Importing the package locks the main goroutine to the main OS thread,
// because the windowing system must be driven from the thread that created
// the window.
package raylib
