// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/rl"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNilWindow is returned when a nil window is passed.
	ErrNilWindow = errors.New("ggcanvas: nil window")
)

// Canvas wraps a gg.Context whose pixels are uploaded into an rl.Texture
// owned by the window.
//
// Canvas is NOT safe for concurrent use. Like every rl resource it must be
// used on the drawing thread.
type Canvas struct {
	win         *rl.Window
	ctx         *gg.Context
	texture     *rl.Texture
	staging     *image.NRGBA // straight alpha copy of the gg pixels
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Canvas drawing into a texture of win.
//
// The texture is created lazily on the first Flush, so New can be called
// before any frame is drawn.
func New(win *rl.Window, width, height int) (*Canvas, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		win:    win,
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(win *rl.Window, width, height int) *Canvas {
	c, err := New(win, width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil once the canvas is closed.
//
// Drawing through the context directly does not mark the canvas dirty;
// call MarkDirty afterwards or use Draw.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas for upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the canvas has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw calls fn with the gg context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// UseGoFont selects the embedded Go Regular face at the given point size.
func (c *Canvas) UseGoFont(points float64) error {
	if c.closed {
		return ErrCanvasClosed
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("ggcanvas: parse go font: %w", err)
	}
	c.ctx.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: points}))
	return nil
}

// Resize changes the canvas dimensions. The content is cleared and the
// texture is recreated on the next Flush.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	c.ctx = gg.NewContext(width, height)
	c.staging = nil
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the canvas content to its texture if dirty and returns the
// texture. The first call creates the texture; later calls update it in
// place unless the canvas was resized.
func (c *Canvas) Flush() (*rl.Texture, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.sizeChanged {
		if c.texture != nil {
			if err := c.texture.Close(); err != nil {
				return nil, err
			}
			c.texture = nil
		}
		c.sizeChanged = false
	}
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	pixels := c.pixels()
	if c.texture == nil {
		tex, err := c.createTexture(pixels)
		if err != nil {
			return nil, err
		}
		c.texture = tex
		c.dirty = false
		return c.texture, nil
	}
	if err := c.texture.Update(pixels.Pix); err != nil {
		return nil, fmt.Errorf("ggcanvas: texture update failed: %w", err)
	}
	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil if none has
// been created yet.
func (c *Canvas) Texture() *rl.Texture {
	return c.texture
}

// Close releases the texture. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var err error
	// The window may have released the texture already.
	if c.texture != nil && !c.texture.Released() {
		err = c.texture.Close()
	}
	c.texture = nil
	c.ctx = nil
	c.staging = nil
	return err
}

// pixels converts the premultiplied gg surface to the straight alpha RGBA
// layout raylib textures use.
func (c *Canvas) pixels() *image.NRGBA {
	src := c.ctx.Image()
	if c.staging == nil {
		c.staging = image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	}
	draw.Draw(c.staging, c.staging.Bounds(), src, src.Bounds().Min, draw.Src)
	return c.staging
}

func (c *Canvas) createTexture(pixels *image.NRGBA) (*rl.Texture, error) {
	img, err := rl.NewImageFromGo(pixels)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: texture creation failed: %w", err)
	}
	defer func() {
		if err := img.Close(); err != nil {
			rl.Logger().Warn("ggcanvas: staging image close failed", "err", err)
		}
	}()
	tex, err := c.win.LoadTextureFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: texture creation failed: %w", err)
	}
	rl.Logger().Debug("ggcanvas: texture created", "width", c.width, "height", c.height)
	return tex, nil
}
