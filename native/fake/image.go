// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fake

import (
	"unsafe"

	"github.com/gogpu/rl/native"
)

// newImage allocates pixel storage and returns its descriptor. Caller holds f.mu.
func (f *Library) newImage(w, h int, fill func(i int) native.Color) native.Image {
	if w <= 0 || h <= 0 {
		return native.Image{}
	}
	pix := make([]native.Color, w*h)
	for i := range pix {
		pix[i] = fill(i)
	}
	p := unsafe.Pointer(&pix[0])
	f.images[p] = pix
	f.loads[KindImage]++
	return native.Image{
		Data:    p,
		Width:   int32(w),
		Height:  int32(h),
		Mipmaps: 1,
		Format:  native.PixelR8G8B8A8,
	}
}

func (f *Library) LoadImage(fileName native.CString) native.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadImage(%q)", fileName.String())
	a, ok := f.lookup(fileName)
	if !ok {
		return native.Image{}
	}
	return f.newImage(a.Width, a.Height, func(int) native.Color { return a.Color })
}

func (f *Library) ImageFromRGBA(pix []byte, width, height int32) native.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ImageFromRGBA(%d, %d, %d)", len(pix), width, height)
	if len(pix) < int(width)*int(height)*4 {
		return native.Image{}
	}
	return f.newImage(int(width), int(height), func(i int) native.Color {
		return native.Color{R: pix[4*i], G: pix[4*i+1], B: pix[4*i+2], A: pix[4*i+3]}
	})
}

func (f *Library) GenImageColor(width, height int32, c native.Color) native.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GenImageColor(%d, %d, %v)", width, height, c)
	return f.newImage(int(width), int(height), func(int) native.Color { return c })
}

func (f *Library) ImageCopy(img native.Image) native.Image {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ImageCopy()")
	src, ok := f.images[img.Data]
	if !ok {
		f.violate("ImageCopy of unknown image")
		return native.Image{}
	}
	return f.newImage(int(img.Width), int(img.Height), func(i int) native.Color { return src[i] })
}

func (f *Library) UnloadImage(img native.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UnloadImage()")
	_, ok := f.images[img.Data]
	f.release(KindImage, ok, "UnloadImage")
	delete(f.images, img.Data)
}

func (f *Library) ExportImage(img native.Image, fileName native.CString) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ExportImage(%q)", fileName.String())
	if _, ok := f.images[img.Data]; !ok {
		f.violate("ExportImage of unknown image")
		return false
	}
	return !f.failures[fileName.String()]
}

func (f *Library) LoadImageColors(img native.Image) []native.Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoadImageColors()")
	pix, ok := f.images[img.Data]
	if !ok {
		f.violate("LoadImageColors of unknown image")
		return nil
	}
	return append([]native.Color(nil), pix...)
}

// replace swaps the pixel storage behind img. Caller holds f.mu.
func (f *Library) replace(img *native.Image, w, h int, pix []native.Color) {
	delete(f.images, img.Data)
	p := unsafe.Pointer(&pix[0])
	f.images[p] = pix
	img.Data = p
	img.Width, img.Height = int32(w), int32(h)
}

func (f *Library) ImageResize(img *native.Image, width, height int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ImageResize(%d, %d)", width, height)
	src, ok := f.images[img.Data]
	if !ok {
		f.violate("ImageResize of unknown image")
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	sw, sh := int(img.Width), int(img.Height)
	w, h := int(width), int(height)
	pix := make([]native.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = src[(y*sh/h)*sw+x*sw/w]
		}
	}
	f.replace(img, w, h, pix)
}

func (f *Library) ImageFlipVertical(img *native.Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ImageFlipVertical()")
	src, ok := f.images[img.Data]
	if !ok {
		f.violate("ImageFlipVertical of unknown image")
		return
	}
	w, h := int(img.Width), int(img.Height)
	for y := 0; y < h/2; y++ {
		top := src[y*w : (y+1)*w]
		bottom := src[(h-1-y)*w : (h-y)*w]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}

func (f *Library) ImageCrop(img *native.Image, crop native.Rectangle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ImageCrop(%v)", crop)
	src, ok := f.images[img.Data]
	if !ok {
		f.violate("ImageCrop of unknown image")
		return
	}
	x0, y0 := int(crop.X), int(crop.Y)
	w, h := int(crop.Width), int(crop.Height)
	sw := int(img.Width)
	if w <= 0 || h <= 0 || x0 < 0 || y0 < 0 || x0+w > sw || y0+h > int(img.Height) {
		return
	}
	pix := make([]native.Color, w*h)
	for y := 0; y < h; y++ {
		copy(pix[y*w:(y+1)*w], src[(y0+y)*sw+x0:(y0+y)*sw+x0+w])
	}
	f.replace(img, w, h, pix)
}
