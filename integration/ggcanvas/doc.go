// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas draws fogleman/gg 2D graphics into rl windows.
//
// The data flow is:
//
//	gg.Context (draw) -> image.NRGBA (CPU) -> rl.Texture -> Window
//
// # Architecture
//
// Canvas wraps a gg.Context and manages the texture upload:
//
//   - Draw operations use the familiar gg API
//   - Flush uploads pixel data to a texture owned by the window
//   - RenderTo draws the texture inside an rl drawing session
//
// # Usage
//
//	canvas, err := ggcanvas.New(win, 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	canvas.Draw(func(cc *gg.Context) {
//	    cc.SetRGB(1, 0, 0)
//	    cc.DrawCircle(400, 300, 100)
//	    cc.Fill()
//	})
//
//	win.Draw(th, func(d *rl.DrawHandle) error {
//	    return canvas.RenderTo(d)
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use and, like every rl resource, must
// be used on the drawing thread.
//
// # Performance Notes
//
//   - The texture is created lazily on the first Flush
//   - Dirty tracking avoids redundant uploads
//   - Later uploads update the texture in place until the canvas is resized
package ggcanvas
