// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"image/color"

	"github.com/gogpu/rl"
)

// RenderOptions controls how the canvas is drawn onto the target.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0)
	X, Y float32

	// ScaleX, ScaleY are the scale factors (default: 1, 1)
	ScaleX float32
	ScaleY float32

	// Rotation in degrees around the top left corner (default: 0)
	Rotation float32

	// Alpha is the opacity from 0 (transparent) to 1 (opaque) (default: 1)
	Alpha float32

	// FlipY flips the texture vertically (default: false)
	FlipY bool
}

// DefaultRenderOptions returns options drawing the canvas unscaled at the
// origin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ScaleX: 1,
		ScaleY: 1,
		Alpha:  1,
	}
}

// RenderTo flushes the canvas and draws it at (0, 0).
//
//	win.Draw(th, func(d *rl.DrawHandle) error {
//	    d.ClearBackground(rl.RayWhite)
//	    return canvas.RenderTo(d)
//	})
func (c *Canvas) RenderTo(d *rl.DrawHandle) error {
	return c.RenderToEx(d, DefaultRenderOptions())
}

// RenderToEx draws the canvas with positioning, scaling and transparency.
func (c *Canvas) RenderToEx(d *rl.DrawHandle, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush()
	if err != nil {
		return err
	}
	w, h := float32(c.width), float32(c.height)
	src := rl.Rect(0, 0, w, h)
	if opts.FlipY {
		src.Height = -h
	}
	dst := rl.Rect(opts.X, opts.Y, w*opts.ScaleX, h*opts.ScaleY)
	d.DrawTexturePro(tex, src, dst, rl.Vec2(0, 0), opts.Rotation, tint(opts.Alpha))
	return nil
}

// RenderToPosition draws the canvas unscaled at (x, y).
func (c *Canvas) RenderToPosition(d *rl.DrawHandle, x, y float32) error {
	opts := DefaultRenderOptions()
	opts.X, opts.Y = x, y
	return c.RenderToEx(d, opts)
}

// RenderToScaled draws the canvas at the origin with uniform scaling.
//
//	canvas.RenderToScaled(d, 0.5) // half size
func (c *Canvas) RenderToScaled(d *rl.DrawHandle, scale float32) error {
	opts := DefaultRenderOptions()
	opts.ScaleX, opts.ScaleY = scale, scale
	return c.RenderToEx(d, opts)
}

func tint(alpha float32) color.NRGBA {
	switch {
	case alpha <= 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha*255 + 0.5)}
}
