package pixel

import (
	"fmt"
	"iter"
	"strings"
)

// CompressedPixelFormat identifies the format of block-compressed pixel data.
//
// Like PixelFormat, a value is either a generic enumerator or an
// implementation-specific code wrapped with WrapCompressedPixelFormat and
// tagged by the highest bit. The two types are distinct so a compressed
// format can't be used where an uncompressed one is expected.
type CompressedPixelFormat uint32

// Generic compressed formats, contiguous starting at 1.
const (
	// Bc1RGBUnorm is S3TC BC1 compressed RGB, normalized unsigned (DXT1).
	Bc1RGBUnorm CompressedPixelFormat = iota + 1
	// Bc1RGBSrgb is S3TC BC1 compressed sRGB.
	Bc1RGBSrgb
	// Bc1RGBAUnorm is S3TC BC1 compressed RGBA with 1-bit alpha (DXT1).
	Bc1RGBAUnorm
	// Bc1RGBASrgb is S3TC BC1 compressed sRGB with 1-bit alpha.
	Bc1RGBASrgb
	// Bc2RGBAUnorm is S3TC BC2 compressed RGBA (DXT3).
	Bc2RGBAUnorm
	// Bc2RGBASrgb is S3TC BC2 compressed sRGB + linear alpha.
	Bc2RGBASrgb
	// Bc3RGBAUnorm is S3TC BC3 compressed RGBA (DXT5).
	Bc3RGBAUnorm
	// Bc3RGBASrgb is S3TC BC3 compressed sRGB + linear alpha.
	Bc3RGBASrgb
	// Bc4RUnorm is BC4 compressed red, normalized unsigned (RGTC1).
	Bc4RUnorm
	// Bc4RSnorm is BC4 compressed red, normalized signed.
	Bc4RSnorm
	// Bc5RGUnorm is BC5 compressed red and green, normalized unsigned (RGTC2).
	Bc5RGUnorm
	// Bc5RGSnorm is BC5 compressed red and green, normalized signed.
	Bc5RGSnorm
	// Bc6hRGBUfloat is BC6H compressed RGB, unsigned float (BPTC).
	Bc6hRGBUfloat
	// Bc6hRGBSfloat is BC6H compressed RGB, signed float.
	Bc6hRGBSfloat
	// Bc7RGBAUnorm is BC7 compressed RGBA, normalized unsigned (BPTC).
	Bc7RGBAUnorm
	// Bc7RGBASrgb is BC7 compressed sRGB + linear alpha.
	Bc7RGBASrgb

	// EacR11Unorm is EAC compressed red, normalized unsigned 11-bit.
	EacR11Unorm
	// EacR11Snorm is EAC compressed red, normalized signed 11-bit.
	EacR11Snorm
	// EacRG11Unorm is EAC compressed red and green, normalized unsigned 11-bit.
	EacRG11Unorm
	// EacRG11Snorm is EAC compressed red and green, normalized signed 11-bit.
	EacRG11Snorm

	// Etc2RGB8Unorm is ETC2 compressed RGB, normalized unsigned byte.
	Etc2RGB8Unorm
	// Etc2RGB8Srgb is ETC2 compressed sRGB.
	Etc2RGB8Srgb
	// Etc2RGB8A1Unorm is ETC2 compressed RGB with punch-through alpha.
	Etc2RGB8A1Unorm
	// Etc2RGB8A1Srgb is ETC2 compressed sRGB with punch-through alpha.
	Etc2RGB8A1Srgb
	// Etc2RGBA8Unorm is ETC2 compressed RGBA with EAC alpha.
	Etc2RGBA8Unorm
	// Etc2RGBA8Srgb is ETC2 compressed sRGB with EAC alpha.
	Etc2RGBA8Srgb

	Astc4x4RGBAUnorm
	Astc4x4RGBASrgb
	Astc5x4RGBAUnorm
	Astc5x4RGBASrgb
	Astc5x5RGBAUnorm
	Astc5x5RGBASrgb
	Astc6x5RGBAUnorm
	Astc6x5RGBASrgb
	Astc6x6RGBAUnorm
	Astc6x6RGBASrgb
	Astc8x5RGBAUnorm
	Astc8x5RGBASrgb
	Astc8x6RGBAUnorm
	Astc8x6RGBASrgb
	Astc8x8RGBAUnorm
	Astc8x8RGBASrgb
	Astc10x5RGBAUnorm
	Astc10x5RGBASrgb
	Astc10x6RGBAUnorm
	Astc10x6RGBASrgb
	Astc10x8RGBAUnorm
	Astc10x8RGBASrgb
	Astc10x10RGBAUnorm
	Astc10x10RGBASrgb
	Astc12x10RGBAUnorm
	Astc12x10RGBASrgb
	Astc12x12RGBAUnorm
	Astc12x12RGBASrgb
)

// NumCompressedPixelFormats is the number of generic compressed formats.
const NumCompressedPixelFormats = int(Astc12x12RGBASrgb)

type compressedFormatInfo struct {
	name          string
	block         Vector3
	blockDataSize int
}

var compressedFormatInfoTable = [NumCompressedPixelFormats]compressedFormatInfo{
	Bc1RGBUnorm - 1:   {"Bc1RGBUnorm", Vector3{4, 4, 1}, 8},
	Bc1RGBSrgb - 1:    {"Bc1RGBSrgb", Vector3{4, 4, 1}, 8},
	Bc1RGBAUnorm - 1:  {"Bc1RGBAUnorm", Vector3{4, 4, 1}, 8},
	Bc1RGBASrgb - 1:   {"Bc1RGBASrgb", Vector3{4, 4, 1}, 8},
	Bc2RGBAUnorm - 1:  {"Bc2RGBAUnorm", Vector3{4, 4, 1}, 16},
	Bc2RGBASrgb - 1:   {"Bc2RGBASrgb", Vector3{4, 4, 1}, 16},
	Bc3RGBAUnorm - 1:  {"Bc3RGBAUnorm", Vector3{4, 4, 1}, 16},
	Bc3RGBASrgb - 1:   {"Bc3RGBASrgb", Vector3{4, 4, 1}, 16},
	Bc4RUnorm - 1:     {"Bc4RUnorm", Vector3{4, 4, 1}, 8},
	Bc4RSnorm - 1:     {"Bc4RSnorm", Vector3{4, 4, 1}, 8},
	Bc5RGUnorm - 1:    {"Bc5RGUnorm", Vector3{4, 4, 1}, 16},
	Bc5RGSnorm - 1:    {"Bc5RGSnorm", Vector3{4, 4, 1}, 16},
	Bc6hRGBUfloat - 1: {"Bc6hRGBUfloat", Vector3{4, 4, 1}, 16},
	Bc6hRGBSfloat - 1: {"Bc6hRGBSfloat", Vector3{4, 4, 1}, 16},
	Bc7RGBAUnorm - 1:  {"Bc7RGBAUnorm", Vector3{4, 4, 1}, 16},
	Bc7RGBASrgb - 1:   {"Bc7RGBASrgb", Vector3{4, 4, 1}, 16},

	EacR11Unorm - 1:  {"EacR11Unorm", Vector3{4, 4, 1}, 8},
	EacR11Snorm - 1:  {"EacR11Snorm", Vector3{4, 4, 1}, 8},
	EacRG11Unorm - 1: {"EacRG11Unorm", Vector3{4, 4, 1}, 16},
	EacRG11Snorm - 1: {"EacRG11Snorm", Vector3{4, 4, 1}, 16},

	Etc2RGB8Unorm - 1:   {"Etc2RGB8Unorm", Vector3{4, 4, 1}, 8},
	Etc2RGB8Srgb - 1:    {"Etc2RGB8Srgb", Vector3{4, 4, 1}, 8},
	Etc2RGB8A1Unorm - 1: {"Etc2RGB8A1Unorm", Vector3{4, 4, 1}, 8},
	Etc2RGB8A1Srgb - 1:  {"Etc2RGB8A1Srgb", Vector3{4, 4, 1}, 8},
	Etc2RGBA8Unorm - 1:  {"Etc2RGBA8Unorm", Vector3{4, 4, 1}, 16},
	Etc2RGBA8Srgb - 1:   {"Etc2RGBA8Srgb", Vector3{4, 4, 1}, 16},

	// Every ASTC block is 128 bits regardless of its footprint.
	Astc4x4RGBAUnorm - 1:   {"Astc4x4RGBAUnorm", Vector3{4, 4, 1}, 16},
	Astc4x4RGBASrgb - 1:    {"Astc4x4RGBASrgb", Vector3{4, 4, 1}, 16},
	Astc5x4RGBAUnorm - 1:   {"Astc5x4RGBAUnorm", Vector3{5, 4, 1}, 16},
	Astc5x4RGBASrgb - 1:    {"Astc5x4RGBASrgb", Vector3{5, 4, 1}, 16},
	Astc5x5RGBAUnorm - 1:   {"Astc5x5RGBAUnorm", Vector3{5, 5, 1}, 16},
	Astc5x5RGBASrgb - 1:    {"Astc5x5RGBASrgb", Vector3{5, 5, 1}, 16},
	Astc6x5RGBAUnorm - 1:   {"Astc6x5RGBAUnorm", Vector3{6, 5, 1}, 16},
	Astc6x5RGBASrgb - 1:    {"Astc6x5RGBASrgb", Vector3{6, 5, 1}, 16},
	Astc6x6RGBAUnorm - 1:   {"Astc6x6RGBAUnorm", Vector3{6, 6, 1}, 16},
	Astc6x6RGBASrgb - 1:    {"Astc6x6RGBASrgb", Vector3{6, 6, 1}, 16},
	Astc8x5RGBAUnorm - 1:   {"Astc8x5RGBAUnorm", Vector3{8, 5, 1}, 16},
	Astc8x5RGBASrgb - 1:    {"Astc8x5RGBASrgb", Vector3{8, 5, 1}, 16},
	Astc8x6RGBAUnorm - 1:   {"Astc8x6RGBAUnorm", Vector3{8, 6, 1}, 16},
	Astc8x6RGBASrgb - 1:    {"Astc8x6RGBASrgb", Vector3{8, 6, 1}, 16},
	Astc8x8RGBAUnorm - 1:   {"Astc8x8RGBAUnorm", Vector3{8, 8, 1}, 16},
	Astc8x8RGBASrgb - 1:    {"Astc8x8RGBASrgb", Vector3{8, 8, 1}, 16},
	Astc10x5RGBAUnorm - 1:  {"Astc10x5RGBAUnorm", Vector3{10, 5, 1}, 16},
	Astc10x5RGBASrgb - 1:   {"Astc10x5RGBASrgb", Vector3{10, 5, 1}, 16},
	Astc10x6RGBAUnorm - 1:  {"Astc10x6RGBAUnorm", Vector3{10, 6, 1}, 16},
	Astc10x6RGBASrgb - 1:   {"Astc10x6RGBASrgb", Vector3{10, 6, 1}, 16},
	Astc10x8RGBAUnorm - 1:  {"Astc10x8RGBAUnorm", Vector3{10, 8, 1}, 16},
	Astc10x8RGBASrgb - 1:   {"Astc10x8RGBASrgb", Vector3{10, 8, 1}, 16},
	Astc10x10RGBAUnorm - 1: {"Astc10x10RGBAUnorm", Vector3{10, 10, 1}, 16},
	Astc10x10RGBASrgb - 1:  {"Astc10x10RGBASrgb", Vector3{10, 10, 1}, 16},
	Astc12x10RGBAUnorm - 1: {"Astc12x10RGBAUnorm", Vector3{12, 10, 1}, 16},
	Astc12x10RGBASrgb - 1:  {"Astc12x10RGBASrgb", Vector3{12, 10, 1}, 16},
	Astc12x12RGBAUnorm - 1: {"Astc12x12RGBAUnorm", Vector3{12, 12, 1}, 16},
	Astc12x12RGBASrgb - 1:  {"Astc12x12RGBASrgb", Vector3{12, 12, 1}, 16},
}

// IsValid reports whether f is one of the generic compressed formats.
func (f CompressedPixelFormat) IsValid() bool {
	return f >= Bc1RGBUnorm && int(f) <= NumCompressedPixelFormats
}

// IsImplementationSpecific reports whether f wraps an implementation-specific
// format code.
func (f CompressedPixelFormat) IsImplementationSpecific() bool {
	return uint32(f)&implementationSpecific != 0
}

func (f CompressedPixelFormat) info() compressedFormatInfo {
	if !f.IsValid() {
		return compressedFormatInfo{}
	}
	return compressedFormatInfoTable[f-1]
}

// String renders f the same way PixelFormat.String does, using the
// CompressedPixelFormat namespace.
func (f CompressedPixelFormat) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("CompressedPixelFormat::ImplementationSpecific(%#x)", uint32(f)&^implementationSpecific)
	}
	if f.IsValid() {
		return "CompressedPixelFormat::" + f.info().name
	}
	return fmt.Sprintf("CompressedPixelFormat(%#x)", uint32(f))
}

// WrapCompressedPixelFormat wraps an implementation-specific compressed format
// code. The code must fit in 31 bits.
func WrapCompressedPixelFormat(code uint32) (CompressedPixelFormat, error) {
	if code&implementationSpecific != 0 {
		return 0, invalidArgument("WrapCompressedPixelFormat", "the highest bit is expected to be unset, got %#x", code)
	}
	return CompressedPixelFormat(code | implementationSpecific), nil
}

// UnwrapCompressedPixelFormat extracts the code wrapped by
// WrapCompressedPixelFormat.
func UnwrapCompressedPixelFormat(f CompressedPixelFormat) (uint32, error) {
	if !f.IsImplementationSpecific() {
		return 0, invalidArgument("UnwrapCompressedPixelFormat", "the highest bit is expected to be set, got %#x", uint32(f))
	}
	return uint32(f) &^ implementationSpecific, nil
}

// CompressedBlockSize returns the block footprint of a generic compressed
// format in pixels. The depth of every generic format is 1.
func CompressedBlockSize(f CompressedPixelFormat) (Vector3, error) {
	if !f.IsValid() {
		return Vector3{}, invalidArgument("CompressedBlockSize", "can't determine block size of %v", f)
	}
	return f.info().block, nil
}

// CompressedBlockDataSize returns the size of one compressed block in bytes.
func CompressedBlockDataSize(f CompressedPixelFormat) (int, error) {
	if !f.IsValid() {
		return 0, invalidArgument("CompressedBlockDataSize", "can't determine block data size of %v", f)
	}
	return f.info().blockDataSize, nil
}

// CompressedPixelFormats iterates over all generic compressed formats in
// numeric order.
func CompressedPixelFormats() iter.Seq[CompressedPixelFormat] {
	return func(yield func(CompressedPixelFormat) bool) {
		for f := Bc1RGBUnorm; int(f) <= NumCompressedPixelFormats; f++ {
			if !yield(f) {
				return
			}
		}
	}
}

// ParseCompressedPixelFormat returns the generic compressed format with the
// given name, with or without the CompressedPixelFormat:: prefix.
func ParseCompressedPixelFormat(name string) (CompressedPixelFormat, error) {
	name = strings.TrimPrefix(name, "CompressedPixelFormat::")
	for f := range CompressedPixelFormats() {
		if f.info().name == name {
			return f, nil
		}
	}
	return 0, invalidArgument("ParseCompressedPixelFormat", "unknown format %q", name)
}
