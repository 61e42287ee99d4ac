// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build raylib && web

package raylib

// The web port of raylib drives input and windowing through a glfw shim
// that must be linked explicitly.

/*
#cgo LDFLAGS: -lglfw
*/
import "C"
