// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "github.com/gogpu/gputypes"

// PixelFormat is the native pixel format enumeration. Zero is not a valid
// format; the native library starts numbering at 1.
type PixelFormat int32

// Pixel formats.
const (
	PixelGrayscale PixelFormat = iota + 1
	PixelGrayAlpha
	PixelR5G6B5
	PixelR8G8B8
	PixelR5G5B5A1
	PixelR4G4B4A4
	PixelR8G8B8A8
	PixelR32
	PixelR32G32B32
	PixelR32G32B32A32
	PixelR16
	PixelR16G16B16
	PixelR16G16B16A16
	PixelDXT1RGB
	PixelDXT1RGBA
	PixelDXT3RGBA
	PixelDXT5RGBA
	PixelETC1RGB
	PixelETC2RGB
	PixelETC2EACRGBA
	PixelPVRTRGB
	PixelPVRTRGBA
	PixelASTC4x4RGBA
	PixelASTC8x8RGBA
)

var bitsPerPixel = map[PixelFormat]int{
	PixelGrayscale:    8,
	PixelGrayAlpha:    16,
	PixelR5G6B5:       16,
	PixelR8G8B8:       24,
	PixelR5G5B5A1:     16,
	PixelR4G4B4A4:     16,
	PixelR8G8B8A8:     32,
	PixelR32:          32,
	PixelR32G32B32:    96,
	PixelR32G32B32A32: 128,
	PixelR16:          16,
	PixelR16G16B16:    48,
	PixelR16G16B16A16: 64,
	PixelDXT1RGB:      4,
	PixelDXT1RGBA:     4,
	PixelDXT3RGBA:     8,
	PixelDXT5RGBA:     8,
	PixelETC1RGB:      4,
	PixelETC2RGB:      4,
	PixelETC2EACRGBA:  8,
	PixelPVRTRGB:      4,
	PixelPVRTRGBA:     4,
	PixelASTC4x4RGBA:  8,
	PixelASTC8x8RGBA:  2,
}

// BitsPerPixel returns the storage cost of one pixel, or 0 for an unknown
// format.
func (f PixelFormat) BitsPerPixel() int {
	return bitsPerPixel[f]
}

// Compressed reports whether f is a block-compressed format.
func (f PixelFormat) Compressed() bool {
	return f >= PixelDXT1RGB
}

// DataSize returns the byte size of a width x height buffer in format f,
// following the native GetPixelDataSize rules: compressed formats occupy at
// least one block.
func (f PixelFormat) DataSize(width, height int) int {
	size := width * height * f.BitsPerPixel() / 8
	if width < 4 && height < 4 {
		switch {
		case f >= PixelDXT1RGB && f < PixelDXT3RGBA:
			size = 8
		case f >= PixelDXT3RGBA && f < PixelASTC8x8RGBA:
			size = 16
		}
	}
	return size
}

// GPUFormat maps f to the equivalent gputypes texture format. Formats with
// no direct WebGPU counterpart map to TextureFormatUndefined.
func (f PixelFormat) GPUFormat() gputypes.TextureFormat {
	switch f {
	case PixelGrayscale:
		return gputypes.TextureFormatR8Unorm
	case PixelR8G8B8A8:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelGrayscale:
		return "grayscale"
	case PixelGrayAlpha:
		return "gray-alpha"
	case PixelR8G8B8:
		return "rgb8"
	case PixelR8G8B8A8:
		return "rgba8"
	case PixelR32G32B32A32:
		return "rgba32f"
	}
	if f.Compressed() && f.BitsPerPixel() > 0 {
		return "compressed"
	}
	if f.BitsPerPixel() > 0 {
		return "uncompressed"
	}
	return "unknown"
}
