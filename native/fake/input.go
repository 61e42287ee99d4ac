// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

// inputState is the scripted keyboard and mouse. Edge states (pressed,
// released) last until the end of the next frame, like the native
// library's once-per-frame polling.
type inputState struct {
	keysDown       map[native.KeyboardKey]bool
	keysPressed    map[native.KeyboardKey]bool
	keysReleased   map[native.KeyboardKey]bool
	keyQueue       []native.KeyboardKey
	buttonsDown    map[native.MouseButton]bool
	buttonsPressed map[native.MouseButton]bool
	mouse          native.Vector2
	wheel          float32
}

func newInputState() inputState {
	return inputState{
		keysDown:       make(map[native.KeyboardKey]bool),
		keysPressed:    make(map[native.KeyboardKey]bool),
		keysReleased:   make(map[native.KeyboardKey]bool),
		buttonsDown:    make(map[native.MouseButton]bool),
		buttonsPressed: make(map[native.MouseButton]bool),
	}
}

func (in *inputState) endFrame() {
	clear(in.keysPressed)
	clear(in.keysReleased)
	clear(in.buttonsPressed)
	in.keyQueue = nil
	in.wheel = 0
}

// PressKey pushes key down. It reads as pressed until the end of the next
// frame and as down until ReleaseKey.
func (f *Library) PressKey(key native.KeyboardKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.input.keysDown[key] {
		f.input.keysPressed[key] = true
		f.input.keyQueue = append(f.input.keyQueue, key)
	}
	f.input.keysDown[key] = true
}

// ReleaseKey lets key go up.
func (f *Library) ReleaseKey(key native.KeyboardKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.input.keysDown[key] {
		f.input.keysReleased[key] = true
	}
	delete(f.input.keysDown, key)
}

// PressMouseButton pushes button down until ReleaseMouseButton.
func (f *Library) PressMouseButton(button native.MouseButton) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.input.buttonsDown[button] {
		f.input.buttonsPressed[button] = true
	}
	f.input.buttonsDown[button] = true
}

// ReleaseMouseButton lets button go up.
func (f *Library) ReleaseMouseButton(button native.MouseButton) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.input.buttonsDown, button)
}

// MoveMouse places the cursor at (x, y).
func (f *Library) MoveMouse(x, y float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.mouse = native.Vector2{X: x, Y: y}
}

// ScrollWheel adds delta to the wheel movement of the current frame.
func (f *Library) ScrollWheel(delta float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.wheel += delta
}

// Input queries are not recorded in the call log; they are polled every
// frame and would drown the calls tests look for.

func (f *Library) IsKeyPressed(key native.KeyboardKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("IsKeyPressed")
	return f.input.keysPressed[key]
}

func (f *Library) IsKeyDown(key native.KeyboardKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("IsKeyDown")
	return f.input.keysDown[key]
}

func (f *Library) IsKeyReleased(key native.KeyboardKey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("IsKeyReleased")
	return f.input.keysReleased[key]
}

func (f *Library) GetKeyPressed() native.KeyboardKey {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("GetKeyPressed")
	if len(f.input.keyQueue) == 0 {
		return native.KeyNull
	}
	key := f.input.keyQueue[0]
	f.input.keyQueue = f.input.keyQueue[1:]
	return key
}

func (f *Library) IsMouseButtonPressed(button native.MouseButton) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("IsMouseButtonPressed")
	return f.input.buttonsPressed[button]
}

func (f *Library) IsMouseButtonDown(button native.MouseButton) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("IsMouseButtonDown")
	return f.input.buttonsDown[button]
}

func (f *Library) GetMousePosition() native.Vector2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("GetMousePosition")
	return f.input.mouse
}

func (f *Library) GetMouseWheelMove() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireWindow("GetMouseWheelMove")
	return f.input.wheel
}
