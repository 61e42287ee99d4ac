package rl

import (
	"github.com/gogpu/rl/native"
)

// Input is polled by the native library once per frame, when Draw ends.
// A closed window reports no input.

// IsKeyPressed reports whether key went down during the last frame.
func (w *Window) IsKeyPressed(key native.KeyboardKey) bool {
	return !w.closed && w.lib.IsKeyPressed(key)
}

// IsKeyDown reports whether key is held.
func (w *Window) IsKeyDown(key native.KeyboardKey) bool {
	return !w.closed && w.lib.IsKeyDown(key)
}

// IsKeyReleased reports whether key went up during the last frame.
func (w *Window) IsKeyReleased(key native.KeyboardKey) bool {
	return !w.closed && w.lib.IsKeyReleased(key)
}

// KeysPressed drains the queue of keys pressed during the last frame, in
// the order they went down.
func (w *Window) KeysPressed() []native.KeyboardKey {
	if w.closed {
		return nil
	}
	var keys []native.KeyboardKey
	for key := w.lib.GetKeyPressed(); key != native.KeyNull; key = w.lib.GetKeyPressed() {
		keys = append(keys, key)
	}
	return keys
}

// IsMouseButtonPressed reports whether button went down during the last
// frame.
func (w *Window) IsMouseButtonPressed(button native.MouseButton) bool {
	return !w.closed && w.lib.IsMouseButtonPressed(button)
}

// IsMouseButtonDown reports whether button is held.
func (w *Window) IsMouseButtonDown(button native.MouseButton) bool {
	return !w.closed && w.lib.IsMouseButtonDown(button)
}

// MousePosition returns the cursor position in screen coordinates.
func (w *Window) MousePosition() Vector2 {
	if w.closed {
		return Vector2{}
	}
	return w.lib.GetMousePosition()
}

// MouseWheel returns the wheel movement of the last frame.
func (w *Window) MouseWheel() float32 {
	if w.closed {
		return 0
	}
	return w.lib.GetMouseWheelMove()
}
