package rl

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/rl/native"
)

// Image is pixel data in CPU memory. Images do not need a window.
//
// The zero Image is not usable; obtain one from LoadImage, GenImageColor,
// NewImageFromGo, WrapImage or Texture.ToImage. Close releases the pixels.
type Image struct {
	resource[native.Image]
}

func newImage(l native.Library, raw native.Image, op, path string) (*Image, error) {
	st, err := adopt(imageKind, l, nil, raw, op, path)
	if err != nil {
		return nil, err
	}
	return &Image{resource[native.Image]{st}}, nil
}

// LoadImage loads an image file. A missing or undecodable file is
// reported as an error matching ErrLoadFailed.
func LoadImage(path string) (*Image, error) {
	const op = "LoadImage"
	p, err := marshalPath(op, path)
	if err != nil {
		return nil, err
	}
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	return newImage(l, l.LoadImage(p), op, path)
}

// GenImageColor creates a width x height image filled with c.
func GenImageColor(width, height int, c color.Color) (*Image, error) {
	const op = "GenImageColor"
	if !validSize(width) || !validSize(height) {
		return nil, stateError(op, ErrInvalidSize)
	}
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	return newImage(l, l.GenImageColor(int32(width), int32(height), toNative(c)), op, "")
}

// NewImageFromGo copies a Go image into a native R8G8B8A8 image.
func NewImageFromGo(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, stateError("NewImageFromGo", ErrInvalidSize)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return imageFromNRGBA("NewImageFromGo", dst)
}

// NewImageFromGoScaled copies a Go image into a native image of the given
// size, resampling with Catmull-Rom.
func NewImageFromGoScaled(src image.Image, width, height int) (*Image, error) {
	const op = "NewImageFromGoScaled"
	if !validSize(width) || !validSize(height) || src.Bounds().Empty() {
		return nil, stateError(op, ErrInvalidSize)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return imageFromNRGBA(op, dst)
}

func imageFromNRGBA(op string, m *image.NRGBA) (*Image, error) {
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if !validSize(w) || !validSize(h) {
		return nil, stateError(op, ErrInvalidSize)
	}
	pix := m.Pix
	if m.Stride != 4*w {
		pix = make([]byte, 0, 4*w*h)
		for y := range h {
			row := m.Pix[y*m.Stride:]
			pix = append(pix, row[:4*w]...)
		}
	}
	return newImage(l, l.ImageFromRGBA(pix, int32(w), int32(h)), op, "")
}

// WrapImage takes ownership of a raw image obtained from the native
// library, for example through Unwrap. The image is released by Close.
func WrapImage(raw native.Image) (*Image, error) {
	const op = "WrapImage"
	l, err := currentLibrary()
	if err != nil {
		return nil, stateError(op, err)
	}
	return newImage(l, raw, op, "")
}

// Copy returns an independent copy of the image.
func (i *Image) Copy() (*Image, error) {
	raw := i.handle("Image.Copy")
	return newImage(i.st.lib, i.st.lib.ImageCopy(raw), "Image.Copy", "")
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return int(i.handle("Image.Width").Width) }

// Height returns the image height in pixels.
func (i *Image) Height() int { return int(i.handle("Image.Height").Height) }

// Bounds returns the image rectangle, anchored at the origin.
func (i *Image) Bounds() image.Rectangle {
	raw := i.handle("Image.Bounds")
	return image.Rect(0, 0, int(raw.Width), int(raw.Height))
}

// Mipmaps returns the number of mipmap levels.
func (i *Image) Mipmaps() int { return int(i.handle("Image.Mipmaps").Mipmaps) }

// Format returns the pixel format.
func (i *Image) Format() native.PixelFormat { return i.handle("Image.Format").Format }

// Resize scales the image in place with bicubic filtering.
func (i *Image) Resize(width, height int) error {
	if !validSize(width) || !validSize(height) {
		return stateError("Image.Resize", ErrInvalidSize)
	}
	i.update("Image.Resize", func(raw *native.Image) {
		i.st.lib.ImageResize(raw, int32(width), int32(height))
	})
	return nil
}

// FlipVertical mirrors the image top to bottom in place.
func (i *Image) FlipVertical() {
	i.update("Image.FlipVertical", func(raw *native.Image) {
		i.st.lib.ImageFlipVertical(raw)
	})
}

// Crop cuts the image down to r in place. r must lie within the image.
func (i *Image) Crop(r image.Rectangle) error {
	if r.Empty() || !r.In(i.Bounds()) {
		return stateError("Image.Crop", ErrOutOfBounds)
	}
	i.update("Image.Crop", func(raw *native.Image) {
		i.st.lib.ImageCrop(raw, rectangleOf(r))
	})
	return nil
}

// Export writes the image to path; the extension selects the file format.
func (i *Image) Export(path string) error {
	const op = "Image.Export"
	p, err := marshalPath(op, path)
	if err != nil {
		return err
	}
	if !i.st.lib.ExportImage(i.handle(op), p) {
		return &Error{Op: op, Kind: KindOther, Path: path, Err: ErrExportFailed}
	}
	return nil
}

// NRGBA returns a Go copy of the pixels.
func (i *Image) NRGBA() *image.NRGBA {
	raw := i.handle("Image.NRGBA")
	colors := i.st.lib.LoadImageColors(raw)
	w := int(raw.Width)
	m := image.NewNRGBA(image.Rect(0, 0, w, int(raw.Height)))
	for k, c := range colors {
		m.SetNRGBA(k%w, k/w, fromNative(c))
	}
	return m
}

func rectangleOf(r image.Rectangle) native.Rectangle {
	return native.Rectangle{X: float32(r.Min.X), Y: float32(r.Min.Y), Width: float32(r.Dx()), Height: float32(r.Dy())}
}
