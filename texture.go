package rl

import (
	"image"

	"github.com/gogpu/rl/native"
)

// Texture is an image in GPU memory. Textures belong to the Window that
// created them and are released by Close or, at the latest, when the
// window closes.
type Texture struct {
	resource[native.Texture]
}

// TextureSource is anything that can be drawn as a texture: *Texture and
// *RenderTexture (its color attachment).
type TextureSource interface {
	texture(op string) native.Texture
}

func (t *Texture) texture(op string) native.Texture { return t.handle(op) }

func (w *Window) newTexture(raw native.Texture, op, path string) (*Texture, error) {
	st, err := adopt(textureKind, w.lib, w.owned, raw, op, path)
	if err != nil {
		return nil, err
	}
	return &Texture{resource[native.Texture]{st}}, nil
}

// LoadTexture loads an image file straight into GPU memory.
func (w *Window) LoadTexture(path string) (*Texture, error) {
	const op = "LoadTexture"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	return w.newTexture(w.lib.LoadTexture(p), op, path)
}

// LoadTextureFromImage uploads img. The image stays owned by the caller.
func (w *Window) LoadTextureFromImage(img *Image) (*Texture, error) {
	const op = "LoadTextureFromImage"
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	return w.newTexture(w.lib.LoadTextureFromImage(img.handle(op)), op, "")
}

// WrapTexture takes ownership of a raw texture created on w, for example
// through Unwrap.
func (w *Window) WrapTexture(raw native.Texture) (*Texture, error) {
	const op = "WrapTexture"
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	return w.newTexture(raw, op, "")
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return int(t.handle("Texture.Width").Width) }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return int(t.handle("Texture.Height").Height) }

// Bounds returns the texture rectangle, anchored at the origin.
func (t *Texture) Bounds() image.Rectangle {
	raw := t.handle("Texture.Bounds")
	return image.Rect(0, 0, int(raw.Width), int(raw.Height))
}

// Format returns the pixel format of the texture.
func (t *Texture) Format() native.PixelFormat { return t.handle("Texture.Format").Format }

// Mipmaps returns the number of mipmap levels.
func (t *Texture) Mipmaps() int { return int(t.handle("Texture.Mipmaps").Mipmaps) }

// Update replaces the whole texture with pixels, which must be laid out in
// the texture's pixel format.
func (t *Texture) Update(pixels []byte) error {
	const op = "Texture.Update"
	raw := t.handle(op)
	if want := raw.Format.DataSize(int(raw.Width), int(raw.Height)); len(pixels) != want {
		return errorf(op, KindOther, "%w: got %d bytes, want %d", ErrPixelSize, len(pixels), want)
	}
	t.st.lib.UpdateTexture(raw, pixels)
	return nil
}

// UpdateRect replaces the region r of the texture with pixels.
func (t *Texture) UpdateRect(r image.Rectangle, pixels []byte) error {
	const op = "Texture.UpdateRect"
	raw := t.handle(op)
	if r.Empty() || !r.In(image.Rect(0, 0, int(raw.Width), int(raw.Height))) {
		return errorf(op, KindOther, "%w: %v", ErrOutOfBounds, r)
	}
	if want := raw.Format.DataSize(r.Dx(), r.Dy()); len(pixels) != want {
		return errorf(op, KindOther, "%w: got %d bytes, want %d", ErrPixelSize, len(pixels), want)
	}
	t.st.lib.UpdateTextureRec(raw, rectangleOf(r), pixels)
	return nil
}

// SetFilter selects the sampling filter.
func (t *Texture) SetFilter(filter native.TextureFilter) {
	t.st.lib.SetTextureFilter(t.handle("Texture.SetFilter"), filter)
}

// GenMipmaps generates the mipmap chain on the GPU.
func (t *Texture) GenMipmaps() {
	t.update("Texture.GenMipmaps", func(raw *native.Texture) {
		t.st.lib.GenTextureMipmaps(raw)
	})
}

// ToImage reads the texture back into a new CPU image.
func (t *Texture) ToImage() (*Image, error) {
	const op = "Texture.ToImage"
	return newImage(t.st.lib, t.st.lib.LoadImageFromTexture(t.handle(op)), op, "")
}

// RenderTexture is an off-screen framebuffer. Draw into it with
// Window.DrawTo or DrawHandle.TextureMode, and draw it like a texture.
type RenderTexture struct {
	resource[native.RenderTexture]
	w *Window
}

func (r *RenderTexture) texture(op string) native.Texture { return r.handle(op).Texture }

// LoadRenderTexture creates a width x height framebuffer.
func (w *Window) LoadRenderTexture(width, height int) (*RenderTexture, error) {
	const op = "LoadRenderTexture"
	if err := w.requireOpen(op); err != nil {
		return nil, err
	}
	if !validSize(width) || !validSize(height) {
		return nil, stateError(op, ErrInvalidSize)
	}
	st, err := adopt(renderTextureKind, w.lib, w.owned, w.lib.LoadRenderTexture(int32(width), int32(height)), op, "")
	if err != nil {
		return nil, err
	}
	return &RenderTexture{resource[native.RenderTexture]{st}, w}, nil
}

// Close releases the framebuffer. It fails with ErrTargetBusy while the
// render texture is the drawing target.
func (r *RenderTexture) Close() error {
	if r.w.target == r.st {
		return stateError("RenderTexture.Close", ErrTargetBusy)
	}
	return r.resource.Close()
}

// Texture returns the color attachment. The descriptor is borrowed from
// the render texture and becomes invalid when it is released.
func (r *RenderTexture) Texture() native.Texture { return r.handle("RenderTexture.Texture").Texture }

// Width returns the framebuffer width in pixels.
func (r *RenderTexture) Width() int { return int(r.handle("RenderTexture.Width").Texture.Width) }

// Height returns the framebuffer height in pixels.
func (r *RenderTexture) Height() int { return int(r.handle("RenderTexture.Height").Texture.Height) }

// ToImage reads the color attachment back into a new CPU image. The
// native framebuffer is stored bottom-up; the image is flipped to match
// screen orientation.
func (r *RenderTexture) ToImage() (*Image, error) {
	const op = "RenderTexture.ToImage"
	img, err := newImage(r.st.lib, r.st.lib.LoadImageFromTexture(r.texture(op)), op, "")
	if err != nil {
		return nil, err
	}
	img.FlipVertical()
	return img, nil
}
