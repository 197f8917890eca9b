package webgpu

import (
	"github.com/gogpu/gputypes"
)

// Format adapts a WebGPU texture format to pixel.NativeFormat:
//
//	img, err := pixel.NewImageNative(storage, webgpu.Format(gputypes.TextureFormatBGRA8Unorm), size, data)
//
// Formats whose texel size isn't defined for copies (Depth24Plus and the
// combined depth-stencil formats) report a pixel size of 0.
type Format gputypes.TextureFormat

// Code returns the texture format value.
func (f Format) Code() uint32 { return uint32(f) }

// Extra returns 0; WebGPU formats need no additional information.
func (f Format) Extra() uint32 { return 0 }

// PixelSize returns the size of one texel in bytes.
func (f Format) PixelSize() int {
	return texelSize(gputypes.TextureFormat(f))
}

func (f Format) String() string {
	return "WebGPU::TextureFormat::" + gputypes.TextureFormat(f).String()
}

// CompressedFormat adapts a block-compressed WebGPU texture format to
// pixel.NativeCompressedFormat.
type CompressedFormat gputypes.TextureFormat

// Code returns the texture format value.
func (f CompressedFormat) Code() uint32 { return uint32(f) }

func (f CompressedFormat) String() string {
	return "WebGPU::TextureFormat::" + gputypes.TextureFormat(f).String()
}

func texelSize(tf gputypes.TextureFormat) int {
	switch tf {
	case gputypes.TextureFormatR8Unorm, gputypes.TextureFormatR8Snorm,
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint,
		gputypes.TextureFormatStencil8:
		return 1
	case gputypes.TextureFormatR16Unorm, gputypes.TextureFormatR16Snorm,
		gputypes.TextureFormatR16Uint, gputypes.TextureFormatR16Sint,
		gputypes.TextureFormatR16Float,
		gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatRG8Snorm,
		gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Sint,
		gputypes.TextureFormatDepth16Unorm:
		return 2
	case gputypes.TextureFormatR32Float, gputypes.TextureFormatR32Uint,
		gputypes.TextureFormatR32Sint,
		gputypes.TextureFormatRG16Unorm, gputypes.TextureFormatRG16Snorm,
		gputypes.TextureFormatRG16Uint, gputypes.TextureFormatRG16Sint,
		gputypes.TextureFormatRG16Float,
		gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatRGBA8Snorm, gputypes.TextureFormatRGBA8Uint,
		gputypes.TextureFormatRGBA8Sint,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb,
		gputypes.TextureFormatRGB10A2Uint, gputypes.TextureFormatRGB10A2Unorm,
		gputypes.TextureFormatRG11B10Ufloat, gputypes.TextureFormatRGB9E5Ufloat,
		gputypes.TextureFormatDepth32Float:
		return 4
	case gputypes.TextureFormatRG32Float, gputypes.TextureFormatRG32Uint,
		gputypes.TextureFormatRG32Sint,
		gputypes.TextureFormatRGBA16Unorm, gputypes.TextureFormatRGBA16Snorm,
		gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Sint,
		gputypes.TextureFormatRGBA16Float:
		return 8
	case gputypes.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA32Uint,
		gputypes.TextureFormatRGBA32Sint:
		return 16
	}
	return 0
}
