package gl

import (
	"fmt"

	"github.com/gogpu/pixel"
)

// Format is a GL pixel format and type pair. It implements
// pixel.NativeFormat, so images can be created directly in a GL format:
//
//	img, err := pixel.NewImageNative(storage, gl.Format{Format: gl.BGRA, Type: gl.UnsignedByte}, size, data)
type Format struct {
	Format PixelFormat
	Type   PixelType
}

// Code returns the pixel format.
func (f Format) Code() uint32 { return uint32(f.Format) }

// Extra returns the pixel type.
func (f Format) Extra() uint32 { return uint32(f.Type) }

// PixelSize returns the pixel size of the pair, 0 if the pair is unknown.
func (f Format) PixelSize() int {
	size, err := PixelSize(f.Format, f.Type)
	if err != nil {
		return 0
	}
	return size
}

func (f Format) String() string {
	return fmt.Sprintf("%v/%v", f.Format, f.Type)
}

// pixelFormatTable maps every generic pixel format, indexed by format - 1.
var pixelFormatTable = [pixel.NumPixelFormats]Format{
	pixel.R8Unorm - 1:    {Red, UnsignedByte},
	pixel.RG8Unorm - 1:   {RG, UnsignedByte},
	pixel.RGB8Unorm - 1:  {RGB, UnsignedByte},
	pixel.RGBA8Unorm - 1: {RGBA, UnsignedByte},

	pixel.R8Snorm - 1:    {Red, Byte},
	pixel.RG8Snorm - 1:   {RG, Byte},
	pixel.RGB8Snorm - 1:  {RGB, Byte},
	pixel.RGBA8Snorm - 1: {RGBA, Byte},

	pixel.R8UI - 1:    {RedInteger, UnsignedByte},
	pixel.RG8UI - 1:   {RGInteger, UnsignedByte},
	pixel.RGB8UI - 1:  {RGBInteger, UnsignedByte},
	pixel.RGBA8UI - 1: {RGBAInteger, UnsignedByte},

	pixel.R8I - 1:    {RedInteger, Byte},
	pixel.RG8I - 1:   {RGInteger, Byte},
	pixel.RGB8I - 1:  {RGBInteger, Byte},
	pixel.RGBA8I - 1: {RGBAInteger, Byte},

	pixel.R16Unorm - 1:    {Red, UnsignedShort},
	pixel.RG16Unorm - 1:   {RG, UnsignedShort},
	pixel.RGB16Unorm - 1:  {RGB, UnsignedShort},
	pixel.RGBA16Unorm - 1: {RGBA, UnsignedShort},

	pixel.R16Snorm - 1:    {Red, Short},
	pixel.RG16Snorm - 1:   {RG, Short},
	pixel.RGB16Snorm - 1:  {RGB, Short},
	pixel.RGBA16Snorm - 1: {RGBA, Short},

	pixel.R16UI - 1:    {RedInteger, UnsignedShort},
	pixel.RG16UI - 1:   {RGInteger, UnsignedShort},
	pixel.RGB16UI - 1:  {RGBInteger, UnsignedShort},
	pixel.RGBA16UI - 1: {RGBAInteger, UnsignedShort},

	pixel.R16I - 1:    {RedInteger, Short},
	pixel.RG16I - 1:   {RGInteger, Short},
	pixel.RGB16I - 1:  {RGBInteger, Short},
	pixel.RGBA16I - 1: {RGBAInteger, Short},

	pixel.R32UI - 1:    {RedInteger, UnsignedInt},
	pixel.RG32UI - 1:   {RGInteger, UnsignedInt},
	pixel.RGB32UI - 1:  {RGBInteger, UnsignedInt},
	pixel.RGBA32UI - 1: {RGBAInteger, UnsignedInt},

	pixel.R32I - 1:    {RedInteger, Int},
	pixel.RG32I - 1:   {RGInteger, Int},
	pixel.RGB32I - 1:  {RGBInteger, Int},
	pixel.RGBA32I - 1: {RGBAInteger, Int},

	pixel.R16F - 1:    {Red, HalfFloat},
	pixel.RG16F - 1:   {RG, HalfFloat},
	pixel.RGB16F - 1:  {RGB, HalfFloat},
	pixel.RGBA16F - 1: {RGBA, HalfFloat},

	pixel.R32F - 1:    {Red, Float},
	pixel.RG32F - 1:   {RG, Float},
	pixel.RGB32F - 1:  {RGB, Float},
	pixel.RGBA32F - 1: {RGBA, Float},
}

// compressedPixelFormatTable maps every generic compressed format, indexed
// by format - 1.
var compressedPixelFormatTable = [pixel.NumCompressedPixelFormats]CompressedPixelFormat{
	pixel.Bc1RGBUnorm - 1:   RGBS3tcDxt1,
	pixel.Bc1RGBSrgb - 1:    SRGBS3tcDxt1,
	pixel.Bc1RGBAUnorm - 1:  RGBAS3tcDxt1,
	pixel.Bc1RGBASrgb - 1:   SRGBAlphaS3tcDxt1,
	pixel.Bc2RGBAUnorm - 1:  RGBAS3tcDxt3,
	pixel.Bc2RGBASrgb - 1:   SRGBAlphaS3tcDxt3,
	pixel.Bc3RGBAUnorm - 1:  RGBAS3tcDxt5,
	pixel.Bc3RGBASrgb - 1:   SRGBAlphaS3tcDxt5,
	pixel.Bc4RUnorm - 1:     RedRgtc1,
	pixel.Bc4RSnorm - 1:     SignedRedRgtc1,
	pixel.Bc5RGUnorm - 1:    RGRgtc2,
	pixel.Bc5RGSnorm - 1:    SignedRGRgtc2,
	pixel.Bc6hRGBUfloat - 1: RGBBptcUnsignedFloat,
	pixel.Bc6hRGBSfloat - 1: RGBBptcSignedFloat,
	pixel.Bc7RGBAUnorm - 1:  RGBABptcUnorm,
	pixel.Bc7RGBASrgb - 1:   SRGBAlphaBptcUnorm,

	pixel.EacR11Unorm - 1:  R11Eac,
	pixel.EacR11Snorm - 1:  SignedR11Eac,
	pixel.EacRG11Unorm - 1: RG11Eac,
	pixel.EacRG11Snorm - 1: SignedRG11Eac,

	pixel.Etc2RGB8Unorm - 1:   RGB8Etc2,
	pixel.Etc2RGB8Srgb - 1:    SRGB8Etc2,
	pixel.Etc2RGB8A1Unorm - 1: RGB8PunchthroughAlpha1Etc2,
	pixel.Etc2RGB8A1Srgb - 1:  SRGB8PunchthroughAlpha1Etc2,
	pixel.Etc2RGBA8Unorm - 1:  RGBA8Etc2Eac,
	pixel.Etc2RGBA8Srgb - 1:   SRGB8Alpha8Etc2Eac,

	pixel.Astc4x4RGBAUnorm - 1:   RGBAAstc4x4,
	pixel.Astc4x4RGBASrgb - 1:    SRGB8Alpha8Astc4x4,
	pixel.Astc5x4RGBAUnorm - 1:   RGBAAstc5x4,
	pixel.Astc5x4RGBASrgb - 1:    SRGB8Alpha8Astc5x4,
	pixel.Astc5x5RGBAUnorm - 1:   RGBAAstc5x5,
	pixel.Astc5x5RGBASrgb - 1:    SRGB8Alpha8Astc5x5,
	pixel.Astc6x5RGBAUnorm - 1:   RGBAAstc6x5,
	pixel.Astc6x5RGBASrgb - 1:    SRGB8Alpha8Astc6x5,
	pixel.Astc6x6RGBAUnorm - 1:   RGBAAstc6x6,
	pixel.Astc6x6RGBASrgb - 1:    SRGB8Alpha8Astc6x6,
	pixel.Astc8x5RGBAUnorm - 1:   RGBAAstc8x5,
	pixel.Astc8x5RGBASrgb - 1:    SRGB8Alpha8Astc8x5,
	pixel.Astc8x6RGBAUnorm - 1:   RGBAAstc8x6,
	pixel.Astc8x6RGBASrgb - 1:    SRGB8Alpha8Astc8x6,
	pixel.Astc8x8RGBAUnorm - 1:   RGBAAstc8x8,
	pixel.Astc8x8RGBASrgb - 1:    SRGB8Alpha8Astc8x8,
	pixel.Astc10x5RGBAUnorm - 1:  RGBAAstc10x5,
	pixel.Astc10x5RGBASrgb - 1:   SRGB8Alpha8Astc10x5,
	pixel.Astc10x6RGBAUnorm - 1:  RGBAAstc10x6,
	pixel.Astc10x6RGBASrgb - 1:   SRGB8Alpha8Astc10x6,
	pixel.Astc10x8RGBAUnorm - 1:  RGBAAstc10x8,
	pixel.Astc10x8RGBASrgb - 1:   SRGB8Alpha8Astc10x8,
	pixel.Astc10x10RGBAUnorm - 1: RGBAAstc10x10,
	pixel.Astc10x10RGBASrgb - 1:  SRGB8Alpha8Astc10x10,
	pixel.Astc12x10RGBAUnorm - 1: RGBAAstc12x10,
	pixel.Astc12x10RGBASrgb - 1:  SRGB8Alpha8Astc12x10,
	pixel.Astc12x12RGBAUnorm - 1: RGBAAstc12x12,
	pixel.Astc12x12RGBASrgb - 1:  SRGB8Alpha8Astc12x12,
}

func formatFor(fn string, f pixel.PixelFormat) (Format, error) {
	if f.IsImplementationSpecific() {
		return Format{}, fmt.Errorf("gl: %s(): can't map an implementation-specific %v: %w", fn, f, pixel.ErrInvalidArgument)
	}
	if !f.IsValid() {
		return Format{}, fmt.Errorf("gl: %s(): invalid %v: %w", fn, f, pixel.ErrInvalidArgument)
	}
	return pixelFormatTable[f-1], nil
}

// PixelFormatFor returns the GL pixel format of a generic format.
func PixelFormatFor(f pixel.PixelFormat) (PixelFormat, error) {
	native, err := formatFor("PixelFormatFor", f)
	return native.Format, err
}

// PixelTypeFor returns the GL pixel type of a generic format.
func PixelTypeFor(f pixel.PixelFormat) (PixelType, error) {
	native, err := formatFor("PixelTypeFor", f)
	return native.Type, err
}

// FormatFor returns the GL format and type pair of a generic format.
func FormatFor(f pixel.PixelFormat) (Format, error) {
	return formatFor("FormatFor", f)
}

// CompressedPixelFormatFor returns the GL compressed format of a generic
// compressed format.
func CompressedPixelFormatFor(f pixel.CompressedPixelFormat) (CompressedPixelFormat, error) {
	if f.IsImplementationSpecific() {
		return 0, fmt.Errorf("gl: CompressedPixelFormatFor(): can't map an implementation-specific %v: %w", f, pixel.ErrInvalidArgument)
	}
	if !f.IsValid() {
		return 0, fmt.Errorf("gl: CompressedPixelFormatFor(): invalid %v: %w", f, pixel.ErrInvalidArgument)
	}
	return compressedPixelFormatTable[f-1], nil
}

// GenericPixelFormat returns the generic format a GL format and type pair
// maps from, if any.
func GenericPixelFormat(format PixelFormat, typ PixelType) (pixel.PixelFormat, bool) {
	for i, native := range pixelFormatTable {
		if native.Format == format && native.Type == typ {
			return pixel.PixelFormat(i + 1), true
		}
	}
	return 0, false
}

// GenericCompressedPixelFormat returns the generic compressed format a GL
// compressed format maps from, if any.
func GenericCompressedPixelFormat(f CompressedPixelFormat) (pixel.CompressedPixelFormat, bool) {
	for i, native := range compressedPixelFormatTable {
		if native == f {
			return pixel.CompressedPixelFormat(i + 1), true
		}
	}
	return 0, false
}

// FormatOf returns the GL format and type of a view, mapping generic formats
// and unwrapping implementation-specific ones with the view's format extra
// as the type.
func FormatOf[S pixel.Size](v pixel.View[S]) (Format, error) {
	f := v.Format()
	if !f.IsImplementationSpecific() {
		return formatFor("FormatOf", f)
	}
	code, err := pixel.UnwrapPixelFormat(f)
	if err != nil {
		return Format{}, err
	}
	return Format{Format: PixelFormat(code), Type: PixelType(v.FormatExtra())}, nil
}

// CompressedFormatOf returns the GL compressed format of a compressed view.
func CompressedFormatOf[S pixel.Size](v pixel.CompressedView[S]) (CompressedPixelFormat, error) {
	f := v.Format()
	if !f.IsImplementationSpecific() {
		return CompressedPixelFormatFor(f)
	}
	code, err := pixel.UnwrapCompressedPixelFormat(f)
	return CompressedPixelFormat(code), err
}
