// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build raylib

package raylib

/*
#cgo linux LDFLAGS: -lraylib -lGL -lm -lpthread -ldl -lrt -lX11
#cgo darwin LDFLAGS: -lraylib -framework OpenGL -framework Cocoa -framework IOKit -framework CoreVideo -framework CoreAudio
#cgo windows LDFLAGS: -lraylib -lopengl32 -lgdi32 -lwinmm
#include <stdlib.h>
#include <string.h>
#include "raylib.h"
#include "rlgl.h"
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/rl/native"
)

func init() {
	runtime.LockOSThread()
	native.Register(native.BackendRaylib, func() native.Library { return shared })
}

// shared is the process-wide binding; the C library has global state.
var shared = &Library{}

// Library calls into libraylib.
type Library struct {
	// title keeps the last window title alive: the C side stores the
	// pointer instead of copying the text.
	title *C.char
}

var _ native.Library = (*Library)(nil)

// Name returns native.BackendRaylib.
func (l *Library) Name() string { return native.BackendRaylib }

// cstr allocates a C copy of s. NULL stays NULL. The caller frees it.
func cstr(s native.CString) *C.char {
	if s.IsNull() {
		return nil
	}
	return C.CString(s.String())
}

func free(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func cBool(b C.bool) bool { return bool(b) }

func toColor(c native.Color) C.Color {
	return C.Color{r: C.uchar(c.R), g: C.uchar(c.G), b: C.uchar(c.B), a: C.uchar(c.A)}
}

func fromColor(c C.Color) native.Color {
	return native.Color{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: uint8(c.a)}
}

func toVector2(v native.Vector2) C.Vector2 {
	return C.Vector2{x: C.float(v.X), y: C.float(v.Y)}
}

func fromVector2(v C.Vector2) native.Vector2 {
	return native.Vector2{X: float32(v.x), Y: float32(v.y)}
}

func toRectangle(r native.Rectangle) C.Rectangle {
	return C.Rectangle{x: C.float(r.X), y: C.float(r.Y), width: C.float(r.Width), height: C.float(r.Height)}
}

func toCamera2D(c native.Camera2D) C.Camera2D {
	return C.Camera2D{
		offset:   toVector2(c.Offset),
		target:   toVector2(c.Target),
		rotation: C.float(c.Rotation),
		zoom:     C.float(c.Zoom),
	}
}

func toVector3(v native.Vector3) C.Vector3 {
	return C.Vector3{x: C.float(v.X), y: C.float(v.Y), z: C.float(v.Z)}
}

func toCamera3D(c native.Camera3D) C.Camera3D {
	return C.Camera3D{
		position:   toVector3(c.Position),
		target:     toVector3(c.Target),
		up:         toVector3(c.Up),
		fovy:       C.float(c.Fovy),
		projection: C.int(c.Projection),
	}
}

func toImage(i native.Image) C.Image {
	return C.Image{
		data:    i.Data,
		width:   C.int(i.Width),
		height:  C.int(i.Height),
		mipmaps: C.int(i.Mipmaps),
		format:  C.int(i.Format),
	}
}

func fromImage(i C.Image) native.Image {
	return native.Image{
		Data:    i.data,
		Width:   int32(i.width),
		Height:  int32(i.height),
		Mipmaps: int32(i.mipmaps),
		Format:  native.PixelFormat(i.format),
	}
}

func toTexture(t native.Texture) C.Texture2D {
	return C.Texture2D{
		id:      C.uint(t.ID),
		width:   C.int(t.Width),
		height:  C.int(t.Height),
		mipmaps: C.int(t.Mipmaps),
		format:  C.int(t.Format),
	}
}

func fromTexture(t C.Texture2D) native.Texture {
	return native.Texture{
		ID:      uint32(t.id),
		Width:   int32(t.width),
		Height:  int32(t.height),
		Mipmaps: int32(t.mipmaps),
		Format:  native.PixelFormat(t.format),
	}
}

func toRenderTexture(r native.RenderTexture) C.RenderTexture2D {
	return C.RenderTexture2D{id: C.uint(r.ID), texture: toTexture(r.Texture), depth: toTexture(r.Depth)}
}

func fromRenderTexture(r C.RenderTexture2D) native.RenderTexture {
	return native.RenderTexture{ID: uint32(r.id), Texture: fromTexture(r.texture), Depth: fromTexture(r.depth)}
}

func toFont(f native.Font) C.Font {
	return C.Font{
		baseSize:     C.int(f.BaseSize),
		glyphCount:   C.int(f.GlyphCount),
		glyphPadding: C.int(f.GlyphPadding),
		texture:      toTexture(f.Texture),
		recs:         (*C.Rectangle)(f.Recs),
		glyphs:       (*C.GlyphInfo)(f.Glyphs),
	}
}

func fromFont(f C.Font) native.Font {
	return native.Font{
		BaseSize:     int32(f.baseSize),
		GlyphCount:   int32(f.glyphCount),
		GlyphPadding: int32(f.glyphPadding),
		Texture:      fromTexture(f.texture),
		Recs:         unsafe.Pointer(f.recs),
		Glyphs:       unsafe.Pointer(f.glyphs),
	}
}

func toShader(s native.Shader) C.Shader {
	return C.Shader{id: C.uint(s.ID), locs: (*C.int)(s.Locs)}
}

func fromShader(s C.Shader) native.Shader {
	return native.Shader{ID: uint32(s.id), Locs: unsafe.Pointer(s.locs)}
}

func toWave(w native.Wave) C.Wave {
	return C.Wave{
		frameCount: C.uint(w.FrameCount),
		sampleRate: C.uint(w.SampleRate),
		sampleSize: C.uint(w.SampleSize),
		channels:   C.uint(w.Channels),
		data:       w.Data,
	}
}

func fromWave(w C.Wave) native.Wave {
	return native.Wave{
		FrameCount: uint32(w.frameCount),
		SampleRate: uint32(w.sampleRate),
		SampleSize: uint32(w.sampleSize),
		Channels:   uint32(w.channels),
		Data:       w.data,
	}
}

func toStream(s native.AudioStream) C.AudioStream {
	return C.AudioStream{
		buffer:     (*C.rAudioBuffer)(s.Buffer),
		processor:  (*C.rAudioProcessor)(s.Processor),
		sampleRate: C.uint(s.SampleRate),
		sampleSize: C.uint(s.SampleSize),
		channels:   C.uint(s.Channels),
	}
}

func fromStream(s C.AudioStream) native.AudioStream {
	return native.AudioStream{
		Buffer:     unsafe.Pointer(s.buffer),
		Processor:  unsafe.Pointer(s.processor),
		SampleRate: uint32(s.sampleRate),
		SampleSize: uint32(s.sampleSize),
		Channels:   uint32(s.channels),
	}
}

func toSound(s native.Sound) C.Sound {
	return C.Sound{stream: toStream(s.Stream), frameCount: C.uint(s.FrameCount)}
}

func fromSound(s C.Sound) native.Sound {
	return native.Sound{Stream: fromStream(s.stream), FrameCount: uint32(s.frameCount)}
}

func toMusic(m native.Music) C.Music {
	return C.Music{
		stream:     toStream(m.Stream),
		frameCount: C.uint(m.FrameCount),
		looping:    C.bool(m.Looping),
		ctxType:    C.int(m.CtxType),
		ctxData:    m.CtxData,
	}
}

func fromMusic(m C.Music) native.Music {
	return native.Music{
		Stream:     fromStream(m.stream),
		FrameCount: uint32(m.frameCount),
		Looping:    bool(m.looping),
		CtxType:    int32(m.ctxType),
		CtxData:    m.ctxData,
	}
}
