// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/gogpu/rl/native"
)

// Resource kinds counted by Loads and Releases.
const (
	KindWindow        = "window"
	KindImage         = "image"
	KindTexture       = "texture"
	KindRenderTexture = "render_texture"
	KindFont          = "font"
	KindShader        = "shader"
	KindAudioDevice   = "audio_device"
	KindWave          = "wave"
	KindSound         = "sound"
	KindMusic         = "music"
)

// Asset describes a virtual file served by the fake loaders.
type Asset struct {
	Width, Height int
	Color         native.Color
	Frames        int // audio frame count; 0 means 44100
}

// Library is an instrumented native.Library.
//
// Library is safe for concurrent use, although rl itself only calls it
// from one goroutine.
type Library struct {
	mu sync.Mutex

	calls      []string
	violations []string
	loads      map[string]int
	releases   map[string]int

	assets   map[string]Asset
	failures map[string]bool
	useDisk  bool

	ready       bool
	failInit    bool
	closeAfter  int
	closeReq    bool
	frames      int
	width       int32
	height      int32
	targetFPS   int32
	flags       native.ConfigFlags
	drawDepth   int
	textureMode bool
	mode3D      bool

	nextID   uint32
	images   map[unsafe.Pointer][]native.Color
	textures map[uint32]native.Texture
	targets  map[uint32]native.RenderTexture
	fonts    map[unsafe.Pointer]bool
	shaders  map[uint32]bool
	waves    map[unsafe.Pointer]bool
	sounds   map[unsafe.Pointer]bool
	musics   map[unsafe.Pointer]bool
	playing  map[unsafe.Pointer]bool

	defaultFont   native.Font
	defaultShader native.Shader

	audioReady bool

	input inputState
}

var _ native.Library = (*Library)(nil)

// New returns a fake library with no window and no virtual assets.
func New() *Library {
	return &Library{
		loads:    make(map[string]int),
		releases: make(map[string]int),
		assets:   make(map[string]Asset),
		failures: make(map[string]bool),
		useDisk:  true,
		nextID:   1,
		images:   make(map[unsafe.Pointer][]native.Color),
		textures: make(map[uint32]native.Texture),
		targets:  make(map[uint32]native.RenderTexture),
		fonts:    make(map[unsafe.Pointer]bool),
		shaders:  make(map[uint32]bool),
		waves:    make(map[unsafe.Pointer]bool),
		sounds:   make(map[unsafe.Pointer]bool),
		musics:   make(map[unsafe.Pointer]bool),
		playing:  make(map[unsafe.Pointer]bool),
		input:    newInputState(),
	}
}

// Name returns native.BackendFake.
func (f *Library) Name() string { return native.BackendFake }

// AddAsset registers a virtual file that the loaders accept.
func (f *Library) AddAsset(path string, a Asset) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assets[path] = a
}

// FailPath makes every load or export of path fail, even for assets.
func (f *Library) FailPath(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = true
}

// UseDisk controls whether paths that exist on disk count as assets.
// It is on by default.
func (f *Library) UseDisk(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.useDisk = on
}

// FailInit makes the next InitWindow leave the window not ready.
func (f *Library) FailInit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failInit = true
}

// CloseAfter makes WindowShouldClose report true once n frames have ended.
func (f *Library) CloseAfter(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeAfter = n
}

// RequestClose simulates the window manager close button.
func (f *Library) RequestClose() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeReq = true
}

// Calls returns a copy of the call log.
func (f *Library) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// ResetCalls clears the call log. Counters are kept.
func (f *Library) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// Violations returns the protocol slips observed so far.
func (f *Library) Violations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.violations...)
}

// Loads returns how many valid resources of kind were produced.
func (f *Library) Loads(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads[kind]
}

// Releases returns how many resources of kind were released.
func (f *Library) Releases(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.releases[kind]
}

// Live returns how many resources of kind are loaded and not released.
func (f *Library) Live(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads[kind] - f.releases[kind]
}

// Frames returns how many EndDrawing calls completed.
func (f *Library) Frames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *Library) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *Library) violate(format string, args ...any) {
	f.violations = append(f.violations, fmt.Sprintf(format, args...))
}

// lookup resolves a path to an asset. Caller holds f.mu.
func (f *Library) lookup(path native.CString) (Asset, bool) {
	if path.IsNull() || f.failures[path.String()] {
		return Asset{}, false
	}
	if a, ok := f.assets[path.String()]; ok {
		return a, true
	}
	if f.useDisk {
		if _, err := os.Stat(path.String()); err == nil {
			return Asset{Width: 1, Height: 1, Color: native.Color{A: 255}}, true
		}
	}
	return Asset{}, false
}

func (f *Library) id() uint32 {
	id := f.nextID
	f.nextID++
	return id
}

// token returns a unique non-nil pointer used as an opaque native handle.
func token() unsafe.Pointer {
	return unsafe.Pointer(new(byte))
}

func (f *Library) requireDrawing(call string) {
	if f.drawDepth == 0 && !f.textureMode {
		f.violate("%s outside drawing", call)
	}
}

func (f *Library) requireWindow(call string) {
	if !f.ready {
		f.violate("%s without window", call)
	}
}

func (f *Library) release(kind string, live bool, call string) {
	if !live {
		f.violate("%s of unknown or released handle", call)
		return
	}
	f.releases[kind]++
}
