package rl

import (
	"github.com/gogpu/rl/native"
)

// Font is a glyph atlas with its metrics.
type Font struct {
	resource[native.Font]
}

// DefaultFont returns the font built into the native library. It is
// borrowed: Close does nothing, and the font becomes unusable when the
// window closes.
func (w *Window) DefaultFont() (*Font, error) {
	if err := w.requireOpen("DefaultFont"); err != nil {
		return nil, err
	}
	return w.defaultFont, nil
}

// LoadFont loads a font file with the default size and glyph set.
func (w *Window) LoadFont(path string) (*Font, error) {
	const op = "LoadFont"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	return w.newFont(w.lib.LoadFont(p), op, path)
}

// LoadFontEx loads a font file rasterized at size pixels. A nil runes
// slice selects the default glyph set.
func (w *Window) LoadFontEx(path string, size int, runes []rune) (*Font, error) {
	const op = "LoadFontEx"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	if !validSize(size) {
		return nil, stateError(op, ErrInvalidSize)
	}
	return w.newFont(w.lib.LoadFontEx(p, int32(size), runes), op, path)
}

// newFont adopts raw. The native loaders return the default font instead
// of an invalid one, so that counts as a failure too and must not be
// released.
func (w *Window) newFont(raw native.Font, op, path string) (*Font, error) {
	if raw.Texture.ID == w.lib.GetFontDefault().Texture.ID {
		return nil, loadError(op, path)
	}
	st, err := adopt(fontKind, w.lib, w.owned, raw, op, path)
	if err != nil {
		return nil, err
	}
	return &Font{resource[native.Font]{st}}, nil
}

// BaseSize returns the size the atlas was rasterized at.
func (f *Font) BaseSize() int { return int(f.handle("Font.BaseSize").BaseSize) }

// GlyphCount returns the number of glyphs in the atlas.
func (f *Font) GlyphCount() int { return int(f.handle("Font.GlyphCount").GlyphCount) }

// Measure returns the size of text drawn with f at fontSize.
func (f *Font) Measure(text string, fontSize, spacing float32) (Vector2, error) {
	const op = "Font.Measure"
	c, err := marshalText(op, text)
	if err != nil {
		return Vector2{}, err
	}
	return f.st.lib.MeasureTextEx(f.handle(op), c, fontSize, spacing), nil
}

// MeasureText returns the width in pixels of text drawn with the default
// font at fontSize.
func (w *Window) MeasureText(text string, fontSize int) (int, error) {
	const op = "MeasureText"
	c, err := marshalText(op, text)
	if err != nil {
		return 0, err
	}
	if err := w.requireOpen(op); err != nil {
		return 0, err
	}
	return int(w.lib.MeasureText(c, int32(fontSize))), nil
}
