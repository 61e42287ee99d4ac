// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import (
	"unicode/utf8"

	"github.com/gogpu/rl/native"
)

func (f *Library) GetFontDefault() native.Font {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.defaultFont
}

// loadFont mirrors the native fallback: a failed load yields the default
// font. Caller holds f.mu.
func (f *Library) loadFont(fileName native.CString, size int32, glyphs int) native.Font {
	a, ok := f.lookup(fileName)
	if !ok || !f.ready {
		return f.defaultFont
	}
	if glyphs <= 0 {
		glyphs = 95
	}
	font := native.Font{
		BaseSize:     size,
		GlyphCount:   int32(glyphs),
		GlyphPadding: 4,
		Texture:      native.Texture{ID: f.id(), Width: int32(a.Width), Height: int32(a.Height), Mipmaps: 1, Format: native.PixelGrayAlpha},
		Recs:         token(),
		Glyphs:       token(),
	}
	f.fonts[font.Glyphs] = true
	f.loads[KindFont]++
	return font
}

func (f *Library) LoadFont(fileName native.CString) native.Font {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadFont(%q)", fileName.String())
	return f.loadFont(fileName, 32, 0)
}

func (f *Library) LoadFontEx(fileName native.CString, fontSize int32, codepoints []rune) native.Font {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadFontEx(%q, %d, %d)", fileName.String(), fontSize, len(codepoints))
	return f.loadFont(fileName, fontSize, len(codepoints))
}

func (f *Library) UnloadFont(font native.Font) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadFont(%d)", font.Texture.ID)
	if font.Glyphs == f.defaultFont.Glyphs {
		f.violate("UnloadFont of the default font")
		return
	}
	ok := f.fonts[font.Glyphs]
	f.release(KindFont, ok, "UnloadFont")
	delete(f.fonts, font.Glyphs)
}

func (f *Library) MeasureText(text native.CString, fontSize int32) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int32(utf8.RuneCountInString(text.String())) * fontSize / 2
}

func (f *Library) MeasureTextEx(font native.Font, text native.CString, fontSize, spacing float32) native.Vector2 {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := float32(utf8.RuneCountInString(text.String()))
	if n == 0 {
		return native.Vector2{}
	}
	return native.Vector2{X: n*fontSize/2 + (n-1)*spacing, Y: fontSize}
}
