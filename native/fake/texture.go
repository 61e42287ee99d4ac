// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import "github.com/gogpu/rl/native"

// newTexture allocates a texture id. Caller holds f.mu.
func (f *Library) newTexture(w, h int32, format native.PixelFormat) native.Texture {
	if !f.ready || w <= 0 || h <= 0 {
		return native.Texture{}
	}
	t := native.Texture{ID: f.id(), Width: w, Height: h, Mipmaps: 1, Format: format}
	f.textures[t.ID] = t
	f.loads[KindTexture]++
	return t
}

func (f *Library) LoadTexture(fileName native.CString) native.Texture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadTexture(%q)", fileName.String())
	f.requireWindow("LoadTexture")
	a, ok := f.lookup(fileName)
	if !ok {
		return native.Texture{}
	}
	return f.newTexture(int32(a.Width), int32(a.Height), native.PixelR8G8B8A8)
}

func (f *Library) LoadTextureFromImage(img native.Image) native.Texture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadTextureFromImage(%d, %d)", img.Width, img.Height)
	f.requireWindow("LoadTextureFromImage")
	if _, ok := f.images[img.Data]; !ok {
		f.violate("LoadTextureFromImage of unknown image")
		return native.Texture{}
	}
	return f.newTexture(img.Width, img.Height, img.Format)
}

func (f *Library) LoadImageFromTexture(tex native.Texture) native.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadImageFromTexture(%d)", tex.ID)
	if !f.knownTexture(tex.ID) {
		f.violate("LoadImageFromTexture of unknown texture %d", tex.ID)
		return native.Image{}
	}
	return f.newImage(int(tex.Width), int(tex.Height), func(int) native.Color { return native.Color{} })
}

func (f *Library) UnloadTexture(tex native.Texture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadTexture(%d)", tex.ID)
	_, ok := f.textures[tex.ID]
	f.release(KindTexture, ok, "UnloadTexture")
	delete(f.textures, tex.ID)
}

func (f *Library) UpdateTexture(tex native.Texture, pixels []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTexture(%d, %d)", tex.ID, len(pixels))
	if _, ok := f.textures[tex.ID]; !ok {
		f.violate("UpdateTexture of unknown texture %d", tex.ID)
	}
}

func (f *Library) UpdateTextureRec(tex native.Texture, rec native.Rectangle, pixels []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTextureRec(%d, %v, %d)", tex.ID, rec, len(pixels))
	if _, ok := f.textures[tex.ID]; !ok {
		f.violate("UpdateTextureRec of unknown texture %d", tex.ID)
	}
}

func (f *Library) GenTextureMipmaps(tex *native.Texture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GenTextureMipmaps(%d)", tex.ID)
	if _, ok := f.textures[tex.ID]; !ok {
		f.violate("GenTextureMipmaps of unknown texture %d", tex.ID)
		return
	}
	levels := int32(1)
	for w, h := tex.Width, tex.Height; w > 1 || h > 1; w, h = w/2, h/2 {
		levels++
	}
	tex.Mipmaps = levels
	f.textures[tex.ID] = *tex
}

func (f *Library) SetTextureFilter(tex native.Texture, filter native.TextureFilter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetTextureFilter(%d, %d)", tex.ID, filter)
}

func (f *Library) LoadRenderTexture(width, height int32) native.RenderTexture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadRenderTexture(%d, %d)", width, height)
	f.requireWindow("LoadRenderTexture")
	if !f.ready || width <= 0 || height <= 0 {
		return native.RenderTexture{}
	}
	rt := native.RenderTexture{
		ID:      f.id(),
		Texture: native.Texture{ID: f.id(), Width: width, Height: height, Mipmaps: 1, Format: native.PixelR8G8B8A8},
		Depth:   native.Texture{ID: f.id(), Width: width, Height: height, Mipmaps: 1, Format: native.PixelR32},
	}
	f.targets[rt.ID] = rt
	f.loads[KindRenderTexture]++
	return rt
}

func (f *Library) UnloadRenderTexture(target native.RenderTexture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadRenderTexture(%d)", target.ID)
	_, ok := f.targets[target.ID]
	f.release(KindRenderTexture, ok, "UnloadRenderTexture")
	delete(f.targets, target.ID)
}

// knownTexture reports whether id is a live texture or the color
// attachment of a live render texture. Caller holds f.mu.
func (f *Library) knownTexture(id uint32) bool {
	if _, ok := f.textures[id]; ok {
		return true
	}
	for _, rt := range f.targets {
		if rt.Texture.ID == id {
			return true
		}
	}
	return false
}
