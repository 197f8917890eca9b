// Package gl maps generic pixel formats to OpenGL and OpenGL ES.
//
// The constants carry the Khronos registry values. The package is pure Go;
// driving a live context's pixel storage state lives in gl/glstate.
package gl

import (
	"fmt"

	"github.com/gogpu/pixel"
)

// PixelFormat is a GL pixel format, the format argument of glTexImage and
// glReadPixels.
type PixelFormat uint32

// GL pixel formats.
const (
	StencilIndex   PixelFormat = 0x1901
	DepthComponent PixelFormat = 0x1902
	Red            PixelFormat = 0x1903
	Green          PixelFormat = 0x1904
	Blue           PixelFormat = 0x1905
	Alpha          PixelFormat = 0x1906
	RGB            PixelFormat = 0x1907
	RGBA           PixelFormat = 0x1908
	Luminance      PixelFormat = 0x1909
	LuminanceAlpha PixelFormat = 0x190A
	BGR            PixelFormat = 0x80E0
	BGRA           PixelFormat = 0x80E1
	RG             PixelFormat = 0x8227
	RGInteger      PixelFormat = 0x8228
	DepthStencil   PixelFormat = 0x84F9
	RedInteger     PixelFormat = 0x8D94
	GreenInteger   PixelFormat = 0x8D95
	BlueInteger    PixelFormat = 0x8D96
	RGBInteger     PixelFormat = 0x8D98
	RGBAInteger    PixelFormat = 0x8D99
	BGRInteger     PixelFormat = 0x8D9A
	BGRAInteger    PixelFormat = 0x8D9B
)

var pixelFormatNames = map[PixelFormat]string{
	StencilIndex:   "StencilIndex",
	DepthComponent: "DepthComponent",
	Red:            "Red",
	Green:          "Green",
	Blue:           "Blue",
	Alpha:          "Alpha",
	RGB:            "RGB",
	RGBA:           "RGBA",
	Luminance:      "Luminance",
	LuminanceAlpha: "LuminanceAlpha",
	BGR:            "BGR",
	BGRA:           "BGRA",
	RG:             "RG",
	RGInteger:      "RGInteger",
	DepthStencil:   "DepthStencil",
	RedInteger:     "RedInteger",
	GreenInteger:   "GreenInteger",
	BlueInteger:    "BlueInteger",
	RGBInteger:     "RGBInteger",
	RGBAInteger:    "RGBAInteger",
	BGRInteger:     "BGRInteger",
	BGRAInteger:    "BGRAInteger",
}

func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return "GL::PixelFormat::" + name
	}
	return fmt.Sprintf("GL::PixelFormat(%#x)", uint32(f))
}

// Components returns the number of components of f, 0 for unknown formats.
func (f PixelFormat) Components() int {
	switch f {
	case StencilIndex, DepthComponent, Red, Green, Blue, Alpha, Luminance,
		RedInteger, GreenInteger, BlueInteger:
		return 1
	case RG, RGInteger, LuminanceAlpha, DepthStencil:
		return 2
	case RGB, BGR, RGBInteger, BGRInteger:
		return 3
	case RGBA, BGRA, RGBAInteger, BGRAInteger:
		return 4
	}
	return 0
}

// PixelType is a GL pixel type, the type argument of glTexImage and
// glReadPixels.
type PixelType uint32

// GL pixel types.
const (
	Byte                     PixelType = 0x1400
	UnsignedByte             PixelType = 0x1401
	Short                    PixelType = 0x1402
	UnsignedShort            PixelType = 0x1403
	Int                      PixelType = 0x1404
	UnsignedInt              PixelType = 0x1405
	Float                    PixelType = 0x1406
	HalfFloat                PixelType = 0x140B
	UnsignedByte332          PixelType = 0x8032
	UnsignedShort4444        PixelType = 0x8033
	UnsignedShort5551        PixelType = 0x8034
	UnsignedInt8888          PixelType = 0x8035
	UnsignedInt1010102       PixelType = 0x8036
	UnsignedByte233Rev       PixelType = 0x8362
	UnsignedShort565         PixelType = 0x8363
	UnsignedShort565Rev      PixelType = 0x8364
	UnsignedShort4444Rev     PixelType = 0x8365
	UnsignedShort1555Rev     PixelType = 0x8366
	UnsignedInt8888Rev       PixelType = 0x8367
	UnsignedInt2101010Rev    PixelType = 0x8368
	UnsignedInt248           PixelType = 0x84FA
	UnsignedInt10F11F11FRev  PixelType = 0x8C3B
	UnsignedInt5999Rev       PixelType = 0x8C3E
	Float32UnsignedInt248Rev PixelType = 0x8DAD
)

type pixelTypeInfo struct {
	name string
	size int
	// packed types carry all components in size bytes
	packed bool
}

var pixelTypeInfos = map[PixelType]pixelTypeInfo{
	Byte:                     {"Byte", 1, false},
	UnsignedByte:             {"UnsignedByte", 1, false},
	Short:                    {"Short", 2, false},
	UnsignedShort:            {"UnsignedShort", 2, false},
	Int:                      {"Int", 4, false},
	UnsignedInt:              {"UnsignedInt", 4, false},
	Float:                    {"Float", 4, false},
	HalfFloat:                {"HalfFloat", 2, false},
	UnsignedByte332:          {"UnsignedByte332", 1, true},
	UnsignedShort4444:        {"UnsignedShort4444", 2, true},
	UnsignedShort5551:        {"UnsignedShort5551", 2, true},
	UnsignedInt8888:          {"UnsignedInt8888", 4, true},
	UnsignedInt1010102:       {"UnsignedInt1010102", 4, true},
	UnsignedByte233Rev:       {"UnsignedByte233Rev", 1, true},
	UnsignedShort565:         {"UnsignedShort565", 2, true},
	UnsignedShort565Rev:      {"UnsignedShort565Rev", 2, true},
	UnsignedShort4444Rev:     {"UnsignedShort4444Rev", 2, true},
	UnsignedShort1555Rev:     {"UnsignedShort1555Rev", 2, true},
	UnsignedInt8888Rev:       {"UnsignedInt8888Rev", 4, true},
	UnsignedInt2101010Rev:    {"UnsignedInt2101010Rev", 4, true},
	UnsignedInt248:           {"UnsignedInt248", 4, true},
	UnsignedInt10F11F11FRev:  {"UnsignedInt10F11F11FRev", 4, true},
	UnsignedInt5999Rev:       {"UnsignedInt5999Rev", 4, true},
	Float32UnsignedInt248Rev: {"Float32UnsignedInt248Rev", 8, true},
}

func (t PixelType) String() string {
	if info, ok := pixelTypeInfos[t]; ok {
		return "GL::PixelType::" + info.name
	}
	return fmt.Sprintf("GL::PixelType(%#x)", uint32(t))
}

// PixelSize returns the size in bytes of one pixel of the given format and
// type: the type size for packed types, component count times type size
// otherwise.
func PixelSize(format PixelFormat, typ PixelType) (int, error) {
	info, ok := pixelTypeInfos[typ]
	if !ok {
		return 0, fmt.Errorf("gl: PixelSize(): unknown %v: %w", typ, pixel.ErrInvalidArgument)
	}
	if info.packed {
		return info.size, nil
	}
	n := format.Components()
	if n == 0 {
		return 0, fmt.Errorf("gl: PixelSize(): unknown %v: %w", format, pixel.ErrInvalidArgument)
	}
	return n * info.size, nil
}

// CompressedPixelFormat is a GL compressed internal format.
type CompressedPixelFormat uint32

// GL compressed formats.
const (
	RGBS3tcDxt1  CompressedPixelFormat = 0x83F0
	RGBAS3tcDxt1 CompressedPixelFormat = 0x83F1
	RGBAS3tcDxt3 CompressedPixelFormat = 0x83F2
	RGBAS3tcDxt5 CompressedPixelFormat = 0x83F3

	SRGBS3tcDxt1      CompressedPixelFormat = 0x8C4C
	SRGBAlphaS3tcDxt1 CompressedPixelFormat = 0x8C4D
	SRGBAlphaS3tcDxt3 CompressedPixelFormat = 0x8C4E
	SRGBAlphaS3tcDxt5 CompressedPixelFormat = 0x8C4F

	RedRgtc1       CompressedPixelFormat = 0x8DBB
	SignedRedRgtc1 CompressedPixelFormat = 0x8DBC
	RGRgtc2        CompressedPixelFormat = 0x8DBD
	SignedRGRgtc2  CompressedPixelFormat = 0x8DBE

	RGBABptcUnorm        CompressedPixelFormat = 0x8E8C
	SRGBAlphaBptcUnorm   CompressedPixelFormat = 0x8E8D
	RGBBptcSignedFloat   CompressedPixelFormat = 0x8E8E
	RGBBptcUnsignedFloat CompressedPixelFormat = 0x8E8F

	R11Eac                      CompressedPixelFormat = 0x9270
	SignedR11Eac                CompressedPixelFormat = 0x9271
	RG11Eac                     CompressedPixelFormat = 0x9272
	SignedRG11Eac               CompressedPixelFormat = 0x9273
	RGB8Etc2                    CompressedPixelFormat = 0x9274
	SRGB8Etc2                   CompressedPixelFormat = 0x9275
	RGB8PunchthroughAlpha1Etc2  CompressedPixelFormat = 0x9276
	SRGB8PunchthroughAlpha1Etc2 CompressedPixelFormat = 0x9277
	RGBA8Etc2Eac                CompressedPixelFormat = 0x9278
	SRGB8Alpha8Etc2Eac          CompressedPixelFormat = 0x9279

	RGBAAstc4x4   CompressedPixelFormat = 0x93B0
	RGBAAstc5x4   CompressedPixelFormat = 0x93B1
	RGBAAstc5x5   CompressedPixelFormat = 0x93B2
	RGBAAstc6x5   CompressedPixelFormat = 0x93B3
	RGBAAstc6x6   CompressedPixelFormat = 0x93B4
	RGBAAstc8x5   CompressedPixelFormat = 0x93B5
	RGBAAstc8x6   CompressedPixelFormat = 0x93B6
	RGBAAstc8x8   CompressedPixelFormat = 0x93B7
	RGBAAstc10x5  CompressedPixelFormat = 0x93B8
	RGBAAstc10x6  CompressedPixelFormat = 0x93B9
	RGBAAstc10x8  CompressedPixelFormat = 0x93BA
	RGBAAstc10x10 CompressedPixelFormat = 0x93BB
	RGBAAstc12x10 CompressedPixelFormat = 0x93BC
	RGBAAstc12x12 CompressedPixelFormat = 0x93BD

	SRGB8Alpha8Astc4x4   CompressedPixelFormat = 0x93D0
	SRGB8Alpha8Astc5x4   CompressedPixelFormat = 0x93D1
	SRGB8Alpha8Astc5x5   CompressedPixelFormat = 0x93D2
	SRGB8Alpha8Astc6x5   CompressedPixelFormat = 0x93D3
	SRGB8Alpha8Astc6x6   CompressedPixelFormat = 0x93D4
	SRGB8Alpha8Astc8x5   CompressedPixelFormat = 0x93D5
	SRGB8Alpha8Astc8x6   CompressedPixelFormat = 0x93D6
	SRGB8Alpha8Astc8x8   CompressedPixelFormat = 0x93D7
	SRGB8Alpha8Astc10x5  CompressedPixelFormat = 0x93D8
	SRGB8Alpha8Astc10x6  CompressedPixelFormat = 0x93D9
	SRGB8Alpha8Astc10x8  CompressedPixelFormat = 0x93DA
	SRGB8Alpha8Astc10x10 CompressedPixelFormat = 0x93DB
	SRGB8Alpha8Astc12x10 CompressedPixelFormat = 0x93DC
	SRGB8Alpha8Astc12x12 CompressedPixelFormat = 0x93DD
)

var compressedPixelFormatNames = map[CompressedPixelFormat]string{
	RGBS3tcDxt1:  "RGBS3tcDxt1",
	RGBAS3tcDxt1: "RGBAS3tcDxt1",
	RGBAS3tcDxt3: "RGBAS3tcDxt3",
	RGBAS3tcDxt5: "RGBAS3tcDxt5",

	SRGBS3tcDxt1:      "SRGBS3tcDxt1",
	SRGBAlphaS3tcDxt1: "SRGBAlphaS3tcDxt1",
	SRGBAlphaS3tcDxt3: "SRGBAlphaS3tcDxt3",
	SRGBAlphaS3tcDxt5: "SRGBAlphaS3tcDxt5",

	RedRgtc1:       "RedRgtc1",
	SignedRedRgtc1: "SignedRedRgtc1",
	RGRgtc2:        "RGRgtc2",
	SignedRGRgtc2:  "SignedRGRgtc2",

	RGBABptcUnorm:        "RGBABptcUnorm",
	SRGBAlphaBptcUnorm:   "SRGBAlphaBptcUnorm",
	RGBBptcSignedFloat:   "RGBBptcSignedFloat",
	RGBBptcUnsignedFloat: "RGBBptcUnsignedFloat",

	R11Eac:                      "R11Eac",
	SignedR11Eac:                "SignedR11Eac",
	RG11Eac:                     "RG11Eac",
	SignedRG11Eac:               "SignedRG11Eac",
	RGB8Etc2:                    "RGB8Etc2",
	SRGB8Etc2:                   "SRGB8Etc2",
	RGB8PunchthroughAlpha1Etc2:  "RGB8PunchthroughAlpha1Etc2",
	SRGB8PunchthroughAlpha1Etc2: "SRGB8PunchthroughAlpha1Etc2",
	RGBA8Etc2Eac:                "RGBA8Etc2Eac",
	SRGB8Alpha8Etc2Eac:          "SRGB8Alpha8Etc2Eac",

	RGBAAstc4x4:   "RGBAAstc4x4",
	RGBAAstc5x4:   "RGBAAstc5x4",
	RGBAAstc5x5:   "RGBAAstc5x5",
	RGBAAstc6x5:   "RGBAAstc6x5",
	RGBAAstc6x6:   "RGBAAstc6x6",
	RGBAAstc8x5:   "RGBAAstc8x5",
	RGBAAstc8x6:   "RGBAAstc8x6",
	RGBAAstc8x8:   "RGBAAstc8x8",
	RGBAAstc10x5:  "RGBAAstc10x5",
	RGBAAstc10x6:  "RGBAAstc10x6",
	RGBAAstc10x8:  "RGBAAstc10x8",
	RGBAAstc10x10: "RGBAAstc10x10",
	RGBAAstc12x10: "RGBAAstc12x10",
	RGBAAstc12x12: "RGBAAstc12x12",

	SRGB8Alpha8Astc4x4:   "SRGB8Alpha8Astc4x4",
	SRGB8Alpha8Astc5x4:   "SRGB8Alpha8Astc5x4",
	SRGB8Alpha8Astc5x5:   "SRGB8Alpha8Astc5x5",
	SRGB8Alpha8Astc6x5:   "SRGB8Alpha8Astc6x5",
	SRGB8Alpha8Astc6x6:   "SRGB8Alpha8Astc6x6",
	SRGB8Alpha8Astc8x5:   "SRGB8Alpha8Astc8x5",
	SRGB8Alpha8Astc8x6:   "SRGB8Alpha8Astc8x6",
	SRGB8Alpha8Astc8x8:   "SRGB8Alpha8Astc8x8",
	SRGB8Alpha8Astc10x5:  "SRGB8Alpha8Astc10x5",
	SRGB8Alpha8Astc10x6:  "SRGB8Alpha8Astc10x6",
	SRGB8Alpha8Astc10x8:  "SRGB8Alpha8Astc10x8",
	SRGB8Alpha8Astc10x10: "SRGB8Alpha8Astc10x10",
	SRGB8Alpha8Astc12x10: "SRGB8Alpha8Astc12x10",
	SRGB8Alpha8Astc12x12: "SRGB8Alpha8Astc12x12",
}

func (f CompressedPixelFormat) String() string {
	if name, ok := compressedPixelFormatNames[f]; ok {
		return "GL::CompressedPixelFormat::" + name
	}
	return fmt.Sprintf("GL::CompressedPixelFormat(%#x)", uint32(f))
}

// Code returns the GL enum value, making f a pixel.NativeCompressedFormat.
func (f CompressedPixelFormat) Code() uint32 { return uint32(f) }
