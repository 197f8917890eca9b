// Package webgpu maps generic pixel formats to WebGPU texture formats and
// hands image layouts to WebGPU queues.
//
// WebGPU has no three-channel texture formats; the RGB generic formats map
// to TextureFormatUndefined and are reported with ErrUnsupported.
package webgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixel"
)

// ErrUnsupported is returned for formats and layouts WebGPU can't express.
var ErrUnsupported = errors.New("webgpu: unsupported")

// textureFormatTable maps every generic pixel format, indexed by format - 1.
var textureFormatTable = [pixel.NumPixelFormats]gputypes.TextureFormat{
	pixel.R8Unorm - 1:    gputypes.TextureFormatR8Unorm,
	pixel.RG8Unorm - 1:   gputypes.TextureFormatRG8Unorm,
	pixel.RGB8Unorm - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA8Unorm - 1: gputypes.TextureFormatRGBA8Unorm,

	pixel.R8Snorm - 1:    gputypes.TextureFormatR8Snorm,
	pixel.RG8Snorm - 1:   gputypes.TextureFormatRG8Snorm,
	pixel.RGB8Snorm - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA8Snorm - 1: gputypes.TextureFormatRGBA8Snorm,

	pixel.R8UI - 1:    gputypes.TextureFormatR8Uint,
	pixel.RG8UI - 1:   gputypes.TextureFormatRG8Uint,
	pixel.RGB8UI - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA8UI - 1: gputypes.TextureFormatRGBA8Uint,

	pixel.R8I - 1:    gputypes.TextureFormatR8Sint,
	pixel.RG8I - 1:   gputypes.TextureFormatRG8Sint,
	pixel.RGB8I - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA8I - 1: gputypes.TextureFormatRGBA8Sint,

	pixel.R16Unorm - 1:    gputypes.TextureFormatR16Unorm,
	pixel.RG16Unorm - 1:   gputypes.TextureFormatRG16Unorm,
	pixel.RGB16Unorm - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA16Unorm - 1: gputypes.TextureFormatRGBA16Unorm,

	pixel.R16Snorm - 1:    gputypes.TextureFormatR16Snorm,
	pixel.RG16Snorm - 1:   gputypes.TextureFormatRG16Snorm,
	pixel.RGB16Snorm - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA16Snorm - 1: gputypes.TextureFormatRGBA16Snorm,

	pixel.R16UI - 1:    gputypes.TextureFormatR16Uint,
	pixel.RG16UI - 1:   gputypes.TextureFormatRG16Uint,
	pixel.RGB16UI - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA16UI - 1: gputypes.TextureFormatRGBA16Uint,

	pixel.R16I - 1:    gputypes.TextureFormatR16Sint,
	pixel.RG16I - 1:   gputypes.TextureFormatRG16Sint,
	pixel.RGB16I - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA16I - 1: gputypes.TextureFormatRGBA16Sint,

	pixel.R32UI - 1:    gputypes.TextureFormatR32Uint,
	pixel.RG32UI - 1:   gputypes.TextureFormatRG32Uint,
	pixel.RGB32UI - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA32UI - 1: gputypes.TextureFormatRGBA32Uint,

	pixel.R32I - 1:    gputypes.TextureFormatR32Sint,
	pixel.RG32I - 1:   gputypes.TextureFormatRG32Sint,
	pixel.RGB32I - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA32I - 1: gputypes.TextureFormatRGBA32Sint,

	pixel.R16F - 1:    gputypes.TextureFormatR16Float,
	pixel.RG16F - 1:   gputypes.TextureFormatRG16Float,
	pixel.RGB16F - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA16F - 1: gputypes.TextureFormatRGBA16Float,

	pixel.R32F - 1:    gputypes.TextureFormatR32Float,
	pixel.RG32F - 1:   gputypes.TextureFormatRG32Float,
	pixel.RGB32F - 1:  gputypes.TextureFormatUndefined,
	pixel.RGBA32F - 1: gputypes.TextureFormatRGBA32Float,
}

// compressedTextureFormatTable maps every generic compressed format,
// indexed by format - 1.
var compressedTextureFormatTable = [pixel.NumCompressedPixelFormats]gputypes.TextureFormat{
	// BC1 without alpha is uploaded as BC1 with punch-through alpha, see
	// lossyCompressed.
	pixel.Bc1RGBUnorm - 1:   gputypes.TextureFormatBC1RGBAUnorm,
	pixel.Bc1RGBSrgb - 1:    gputypes.TextureFormatBC1RGBAUnormSrgb,
	pixel.Bc1RGBAUnorm - 1:  gputypes.TextureFormatBC1RGBAUnorm,
	pixel.Bc1RGBASrgb - 1:   gputypes.TextureFormatBC1RGBAUnormSrgb,
	pixel.Bc2RGBAUnorm - 1:  gputypes.TextureFormatBC2RGBAUnorm,
	pixel.Bc2RGBASrgb - 1:   gputypes.TextureFormatBC2RGBAUnormSrgb,
	pixel.Bc3RGBAUnorm - 1:  gputypes.TextureFormatBC3RGBAUnorm,
	pixel.Bc3RGBASrgb - 1:   gputypes.TextureFormatBC3RGBAUnormSrgb,
	pixel.Bc4RUnorm - 1:     gputypes.TextureFormatBC4RUnorm,
	pixel.Bc4RSnorm - 1:     gputypes.TextureFormatBC4RSnorm,
	pixel.Bc5RGUnorm - 1:    gputypes.TextureFormatBC5RGUnorm,
	pixel.Bc5RGSnorm - 1:    gputypes.TextureFormatBC5RGSnorm,
	pixel.Bc6hRGBUfloat - 1: gputypes.TextureFormatBC6HRGBUfloat,
	pixel.Bc6hRGBSfloat - 1: gputypes.TextureFormatBC6HRGBFloat,
	pixel.Bc7RGBAUnorm - 1:  gputypes.TextureFormatBC7RGBAUnorm,
	pixel.Bc7RGBASrgb - 1:   gputypes.TextureFormatBC7RGBAUnormSrgb,

	pixel.EacR11Unorm - 1:  gputypes.TextureFormatEACR11Unorm,
	pixel.EacR11Snorm - 1:  gputypes.TextureFormatEACR11Snorm,
	pixel.EacRG11Unorm - 1: gputypes.TextureFormatEACRG11Unorm,
	pixel.EacRG11Snorm - 1: gputypes.TextureFormatEACRG11Snorm,

	pixel.Etc2RGB8Unorm - 1:   gputypes.TextureFormatETC2RGB8Unorm,
	pixel.Etc2RGB8Srgb - 1:    gputypes.TextureFormatETC2RGB8UnormSrgb,
	pixel.Etc2RGB8A1Unorm - 1: gputypes.TextureFormatETC2RGB8A1Unorm,
	pixel.Etc2RGB8A1Srgb - 1:  gputypes.TextureFormatETC2RGB8A1UnormSrgb,
	pixel.Etc2RGBA8Unorm - 1:  gputypes.TextureFormatETC2RGBA8Unorm,
	pixel.Etc2RGBA8Srgb - 1:   gputypes.TextureFormatETC2RGBA8UnormSrgb,

	pixel.Astc4x4RGBAUnorm - 1:   gputypes.TextureFormatASTC4x4Unorm,
	pixel.Astc4x4RGBASrgb - 1:    gputypes.TextureFormatASTC4x4UnormSrgb,
	pixel.Astc5x4RGBAUnorm - 1:   gputypes.TextureFormatASTC5x4Unorm,
	pixel.Astc5x4RGBASrgb - 1:    gputypes.TextureFormatASTC5x4UnormSrgb,
	pixel.Astc5x5RGBAUnorm - 1:   gputypes.TextureFormatASTC5x5Unorm,
	pixel.Astc5x5RGBASrgb - 1:    gputypes.TextureFormatASTC5x5UnormSrgb,
	pixel.Astc6x5RGBAUnorm - 1:   gputypes.TextureFormatASTC6x5Unorm,
	pixel.Astc6x5RGBASrgb - 1:    gputypes.TextureFormatASTC6x5UnormSrgb,
	pixel.Astc6x6RGBAUnorm - 1:   gputypes.TextureFormatASTC6x6Unorm,
	pixel.Astc6x6RGBASrgb - 1:    gputypes.TextureFormatASTC6x6UnormSrgb,
	pixel.Astc8x5RGBAUnorm - 1:   gputypes.TextureFormatASTC8x5Unorm,
	pixel.Astc8x5RGBASrgb - 1:    gputypes.TextureFormatASTC8x5UnormSrgb,
	pixel.Astc8x6RGBAUnorm - 1:   gputypes.TextureFormatASTC8x6Unorm,
	pixel.Astc8x6RGBASrgb - 1:    gputypes.TextureFormatASTC8x6UnormSrgb,
	pixel.Astc8x8RGBAUnorm - 1:   gputypes.TextureFormatASTC8x8Unorm,
	pixel.Astc8x8RGBASrgb - 1:    gputypes.TextureFormatASTC8x8UnormSrgb,
	pixel.Astc10x5RGBAUnorm - 1:  gputypes.TextureFormatASTC10x5Unorm,
	pixel.Astc10x5RGBASrgb - 1:   gputypes.TextureFormatASTC10x5UnormSrgb,
	pixel.Astc10x6RGBAUnorm - 1:  gputypes.TextureFormatASTC10x6Unorm,
	pixel.Astc10x6RGBASrgb - 1:   gputypes.TextureFormatASTC10x6UnormSrgb,
	pixel.Astc10x8RGBAUnorm - 1:  gputypes.TextureFormatASTC10x8Unorm,
	pixel.Astc10x8RGBASrgb - 1:   gputypes.TextureFormatASTC10x8UnormSrgb,
	pixel.Astc10x10RGBAUnorm - 1: gputypes.TextureFormatASTC10x10Unorm,
	pixel.Astc10x10RGBASrgb - 1:  gputypes.TextureFormatASTC10x10UnormSrgb,
	pixel.Astc12x10RGBAUnorm - 1: gputypes.TextureFormatASTC12x10Unorm,
	pixel.Astc12x10RGBASrgb - 1:  gputypes.TextureFormatASTC12x10UnormSrgb,
	pixel.Astc12x12RGBAUnorm - 1: gputypes.TextureFormatASTC12x12Unorm,
	pixel.Astc12x12RGBASrgb - 1:  gputypes.TextureFormatASTC12x12UnormSrgb,
}

// lossyCompressed lists the generic formats sharing a WebGPU format with a
// format that interprets the blocks differently.
var lossyCompressed = map[pixel.CompressedPixelFormat]bool{
	pixel.Bc1RGBUnorm: true,
	pixel.Bc1RGBSrgb:  true,
}

// TextureFormatFor returns the WebGPU texture format of a generic pixel
// format. Formats without a WebGPU equivalent yield ErrUnsupported.
func TextureFormatFor(f pixel.PixelFormat) (gputypes.TextureFormat, error) {
	if f.IsImplementationSpecific() {
		return gputypes.TextureFormatUndefined, fmt.Errorf("webgpu: TextureFormatFor(): can't map an implementation-specific %v: %w", f, pixel.ErrInvalidArgument)
	}
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined, fmt.Errorf("webgpu: TextureFormatFor(): invalid %v: %w", f, pixel.ErrInvalidArgument)
	}
	tf := textureFormatTable[f-1]
	if tf == gputypes.TextureFormatUndefined {
		return tf, fmt.Errorf("webgpu: TextureFormatFor(): %v: %w", f, ErrUnsupported)
	}
	return tf, nil
}

// CompressedTextureFormatFor returns the WebGPU texture format of a generic
// compressed format.
func CompressedTextureFormatFor(f pixel.CompressedPixelFormat) (gputypes.TextureFormat, error) {
	if f.IsImplementationSpecific() {
		return gputypes.TextureFormatUndefined, fmt.Errorf("webgpu: CompressedTextureFormatFor(): can't map an implementation-specific %v: %w", f, pixel.ErrInvalidArgument)
	}
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined, fmt.Errorf("webgpu: CompressedTextureFormatFor(): invalid %v: %w", f, pixel.ErrInvalidArgument)
	}
	tf := compressedTextureFormatTable[f-1]
	if lossyCompressed[f] {
		pixel.Logger().Warn("webgpu: compressed format mapped lossily", "format", f.String(), "texture", tf.String())
	}
	return tf, nil
}

// RequiredFeature returns the device feature needed to sample textures of a
// generic compressed format.
func RequiredFeature(f pixel.CompressedPixelFormat) (gputypes.Feature, error) {
	switch {
	case f >= pixel.Bc1RGBUnorm && f <= pixel.Bc7RGBASrgb:
		return gputypes.FeatureTextureCompressionBC, nil
	case f >= pixel.EacR11Unorm && f <= pixel.Etc2RGBA8Srgb:
		return gputypes.FeatureTextureCompressionETC2, nil
	case f >= pixel.Astc4x4RGBAUnorm && f <= pixel.Astc12x12RGBASrgb:
		return gputypes.FeatureTextureCompressionASTC, nil
	}
	return 0, fmt.Errorf("webgpu: RequiredFeature(): invalid %v: %w", f, pixel.ErrInvalidArgument)
}

// GenericPixelFormat returns the generic format a WebGPU texture format maps
// from, if any.
func GenericPixelFormat(tf gputypes.TextureFormat) (pixel.PixelFormat, bool) {
	if tf == gputypes.TextureFormatUndefined {
		return 0, false
	}
	for i, native := range textureFormatTable {
		if native == tf {
			return pixel.PixelFormat(i + 1), true
		}
	}
	return 0, false
}

// GenericCompressedPixelFormat returns the generic compressed format a WebGPU
// texture format maps from, if any. Lossy mappings are never returned.
func GenericCompressedPixelFormat(tf gputypes.TextureFormat) (pixel.CompressedPixelFormat, bool) {
	for i, native := range compressedTextureFormatTable {
		f := pixel.CompressedPixelFormat(i + 1)
		if native == tf && !lossyCompressed[f] {
			return f, true
		}
	}
	return 0, false
}
