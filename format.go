package pixel

import (
	"fmt"
	"iter"
	"strings"
)

// PixelFormat identifies the format of uncompressed pixel data.
//
// A PixelFormat is either one of the generic values enumerated below or an
// implementation-specific value wrapped with WrapPixelFormat. The highest bit
// of the 32-bit value tells the two apart: generic formats have it unset,
// wrapped native formats have it set and carry the native code in the
// remaining 31 bits.
//
// The zero value is not a valid format.
type PixelFormat uint32

// Generic pixel formats. Values are contiguous starting at 1 and new formats
// are only ever appended.
const (
	// R8Unorm is a red component, normalized unsigned byte.
	R8Unorm PixelFormat = iota + 1
	// RG8Unorm is red and green components, normalized unsigned byte.
	RG8Unorm
	// RGB8Unorm is RGB, normalized unsigned byte.
	RGB8Unorm
	// RGBA8Unorm is RGBA, normalized unsigned byte.
	RGBA8Unorm

	// R8Snorm is a red component, normalized signed byte.
	R8Snorm
	// RG8Snorm is red and green components, normalized signed byte.
	RG8Snorm
	// RGB8Snorm is RGB, normalized signed byte.
	RGB8Snorm
	// RGBA8Snorm is RGBA, normalized signed byte.
	RGBA8Snorm

	// R8UI is a red component, integral unsigned byte.
	R8UI
	// RG8UI is red and green components, integral unsigned byte.
	RG8UI
	// RGB8UI is RGB, integral unsigned byte.
	RGB8UI
	// RGBA8UI is RGBA, integral unsigned byte.
	RGBA8UI

	// R8I is a red component, integral signed byte.
	R8I
	// RG8I is red and green components, integral signed byte.
	RG8I
	// RGB8I is RGB, integral signed byte.
	RGB8I
	// RGBA8I is RGBA, integral signed byte.
	RGBA8I

	// R16Unorm is a red component, normalized unsigned short.
	R16Unorm
	// RG16Unorm is red and green components, normalized unsigned short.
	RG16Unorm
	// RGB16Unorm is RGB, normalized unsigned short.
	RGB16Unorm
	// RGBA16Unorm is RGBA, normalized unsigned short.
	RGBA16Unorm

	// R16Snorm is a red component, normalized signed short.
	R16Snorm
	// RG16Snorm is red and green components, normalized signed short.
	RG16Snorm
	// RGB16Snorm is RGB, normalized signed short.
	RGB16Snorm
	// RGBA16Snorm is RGBA, normalized signed short.
	RGBA16Snorm

	// R16UI is a red component, integral unsigned short.
	R16UI
	// RG16UI is red and green components, integral unsigned short.
	RG16UI
	// RGB16UI is RGB, integral unsigned short.
	RGB16UI
	// RGBA16UI is RGBA, integral unsigned short.
	RGBA16UI

	// R16I is a red component, integral signed short.
	R16I
	// RG16I is red and green components, integral signed short.
	RG16I
	// RGB16I is RGB, integral signed short.
	RGB16I
	// RGBA16I is RGBA, integral signed short.
	RGBA16I

	// R32UI is a red component, integral unsigned int.
	R32UI
	// RG32UI is red and green components, integral unsigned int.
	RG32UI
	// RGB32UI is RGB, integral unsigned int.
	RGB32UI
	// RGBA32UI is RGBA, integral unsigned int.
	RGBA32UI

	// R32I is a red component, integral signed int.
	R32I
	// RG32I is red and green components, integral signed int.
	RG32I
	// RGB32I is RGB, integral signed int.
	RGB32I
	// RGBA32I is RGBA, integral signed int.
	RGBA32I

	// R16F is a red component, half float.
	R16F
	// RG16F is red and green components, half float.
	RG16F
	// RGB16F is RGB, half float.
	RGB16F
	// RGBA16F is RGBA, half float.
	RGBA16F

	// R32F is a red component, float.
	R32F
	// RG32F is red and green components, float.
	RG32F
	// RGB32F is RGB, float.
	RGB32F
	// RGBA32F is RGBA, float.
	RGBA32F
)

// NumPixelFormats is the number of generic pixel formats. Generic values
// occupy the range [1, NumPixelFormats].
const NumPixelFormats = int(RGBA32F)

// implementationSpecific is the tag bit of wrapped native format codes.
const implementationSpecific = uint32(1) << 31

// ComponentKind describes how the components of a generic format are
// interpreted.
type ComponentKind uint8

const (
	// KindUnorm is a normalized unsigned integer component.
	KindUnorm ComponentKind = iota + 1
	// KindSnorm is a normalized signed integer component.
	KindSnorm
	// KindUint is an integral unsigned component.
	KindUint
	// KindInt is an integral signed component.
	KindInt
	// KindFloat is a floating-point component.
	KindFloat
)

// String returns the kind name.
func (k ComponentKind) String() string {
	switch k {
	case KindUnorm:
		return "Unorm"
	case KindSnorm:
		return "Snorm"
	case KindUint:
		return "Uint"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// pixelFormatInfo describes one generic pixel format.
type pixelFormatInfo struct {
	name          string
	channels      int
	componentSize int
	kind          ComponentKind
}

// pixelFormatInfoTable holds one entry per generic format, indexed by
// format - 1.
var pixelFormatInfoTable = [NumPixelFormats]pixelFormatInfo{
	R8Unorm - 1:    {"R8Unorm", 1, 1, KindUnorm},
	RG8Unorm - 1:   {"RG8Unorm", 2, 1, KindUnorm},
	RGB8Unorm - 1:  {"RGB8Unorm", 3, 1, KindUnorm},
	RGBA8Unorm - 1: {"RGBA8Unorm", 4, 1, KindUnorm},

	R8Snorm - 1:    {"R8Snorm", 1, 1, KindSnorm},
	RG8Snorm - 1:   {"RG8Snorm", 2, 1, KindSnorm},
	RGB8Snorm - 1:  {"RGB8Snorm", 3, 1, KindSnorm},
	RGBA8Snorm - 1: {"RGBA8Snorm", 4, 1, KindSnorm},

	R8UI - 1:    {"R8UI", 1, 1, KindUint},
	RG8UI - 1:   {"RG8UI", 2, 1, KindUint},
	RGB8UI - 1:  {"RGB8UI", 3, 1, KindUint},
	RGBA8UI - 1: {"RGBA8UI", 4, 1, KindUint},

	R8I - 1:    {"R8I", 1, 1, KindInt},
	RG8I - 1:   {"RG8I", 2, 1, KindInt},
	RGB8I - 1:  {"RGB8I", 3, 1, KindInt},
	RGBA8I - 1: {"RGBA8I", 4, 1, KindInt},

	R16Unorm - 1:    {"R16Unorm", 1, 2, KindUnorm},
	RG16Unorm - 1:   {"RG16Unorm", 2, 2, KindUnorm},
	RGB16Unorm - 1:  {"RGB16Unorm", 3, 2, KindUnorm},
	RGBA16Unorm - 1: {"RGBA16Unorm", 4, 2, KindUnorm},

	R16Snorm - 1:    {"R16Snorm", 1, 2, KindSnorm},
	RG16Snorm - 1:   {"RG16Snorm", 2, 2, KindSnorm},
	RGB16Snorm - 1:  {"RGB16Snorm", 3, 2, KindSnorm},
	RGBA16Snorm - 1: {"RGBA16Snorm", 4, 2, KindSnorm},

	R16UI - 1:    {"R16UI", 1, 2, KindUint},
	RG16UI - 1:   {"RG16UI", 2, 2, KindUint},
	RGB16UI - 1:  {"RGB16UI", 3, 2, KindUint},
	RGBA16UI - 1: {"RGBA16UI", 4, 2, KindUint},

	R16I - 1:    {"R16I", 1, 2, KindInt},
	RG16I - 1:   {"RG16I", 2, 2, KindInt},
	RGB16I - 1:  {"RGB16I", 3, 2, KindInt},
	RGBA16I - 1: {"RGBA16I", 4, 2, KindInt},

	R32UI - 1:    {"R32UI", 1, 4, KindUint},
	RG32UI - 1:   {"RG32UI", 2, 4, KindUint},
	RGB32UI - 1:  {"RGB32UI", 3, 4, KindUint},
	RGBA32UI - 1: {"RGBA32UI", 4, 4, KindUint},

	R32I - 1:    {"R32I", 1, 4, KindInt},
	RG32I - 1:   {"RG32I", 2, 4, KindInt},
	RGB32I - 1:  {"RGB32I", 3, 4, KindInt},
	RGBA32I - 1: {"RGBA32I", 4, 4, KindInt},

	R16F - 1:    {"R16F", 1, 2, KindFloat},
	RG16F - 1:   {"RG16F", 2, 2, KindFloat},
	RGB16F - 1:  {"RGB16F", 3, 2, KindFloat},
	RGBA16F - 1: {"RGBA16F", 4, 2, KindFloat},

	R32F - 1:    {"R32F", 1, 4, KindFloat},
	RG32F - 1:   {"RG32F", 2, 4, KindFloat},
	RGB32F - 1:  {"RGB32F", 3, 4, KindFloat},
	RGBA32F - 1: {"RGBA32F", 4, 4, KindFloat},
}

// IsValid reports whether f is one of the generic formats.
func (f PixelFormat) IsValid() bool {
	return f >= R8Unorm && int(f) <= NumPixelFormats
}

// IsImplementationSpecific reports whether f wraps an implementation-specific
// format code.
func (f PixelFormat) IsImplementationSpecific() bool {
	return uint32(f)&implementationSpecific != 0
}

// info returns the table entry for a generic format, or the zero entry.
func (f PixelFormat) info() pixelFormatInfo {
	if !f.IsValid() {
		return pixelFormatInfo{}
	}
	return pixelFormatInfoTable[f-1]
}

// Channels returns the number of channels of a generic format, 0 otherwise.
func (f PixelFormat) Channels() int {
	return f.info().channels
}

// ComponentSize returns the size of one channel in bytes for a generic
// format, 0 otherwise.
func (f PixelFormat) ComponentSize() int {
	return f.info().componentSize
}

// Kind returns the component interpretation of a generic format, 0 otherwise.
func (f PixelFormat) Kind() ComponentKind {
	return f.info().kind
}

// String renders f as PixelFormat::Name for generic values,
// PixelFormat::ImplementationSpecific(0x...) for wrapped values and
// PixelFormat(0x...) for anything else.
func (f PixelFormat) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("PixelFormat::ImplementationSpecific(%#x)", uint32(f)&^implementationSpecific)
	}
	if f.IsValid() {
		return "PixelFormat::" + f.info().name
	}
	return fmt.Sprintf("PixelFormat(%#x)", uint32(f))
}

// WrapPixelFormat wraps an implementation-specific format code in a
// PixelFormat. The code must fit in 31 bits.
func WrapPixelFormat(code uint32) (PixelFormat, error) {
	if code&implementationSpecific != 0 {
		return 0, invalidArgument("WrapPixelFormat", "the highest bit is expected to be unset, got %#x", code)
	}
	return PixelFormat(code | implementationSpecific), nil
}

// UnwrapPixelFormat extracts the implementation-specific code from a value
// created by WrapPixelFormat.
func UnwrapPixelFormat(f PixelFormat) (uint32, error) {
	if !f.IsImplementationSpecific() {
		return 0, invalidArgument("UnwrapPixelFormat", "the highest bit is expected to be set, got %#x", uint32(f))
	}
	return uint32(f) &^ implementationSpecific, nil
}

// PixelSize returns the size of one pixel of a generic format in bytes.
//
// The size of an implementation-specific format can't be recovered from the
// wrapped code; such formats need an explicit pixel size, see
// NewImageImplementationSpecific and NativeFormat.
func PixelSize(f PixelFormat) (int, error) {
	if f.IsImplementationSpecific() {
		return 0, invalidArgument("PixelSize", "can't determine pixel size of an implementation-specific format")
	}
	if !f.IsValid() {
		return 0, invalidArgument("PixelSize", "invalid format %v", f)
	}
	info := f.info()
	return info.channels * info.componentSize, nil
}

// PixelFormats iterates over all generic pixel formats in numeric order.
func PixelFormats() iter.Seq[PixelFormat] {
	return func(yield func(PixelFormat) bool) {
		for f := R8Unorm; int(f) <= NumPixelFormats; f++ {
			if !yield(f) {
				return
			}
		}
	}
}

// ParsePixelFormat returns the generic format with the given name. Both the
// bare name ("RGBA8Unorm") and the rendered form ("PixelFormat::RGBA8Unorm")
// are accepted.
func ParsePixelFormat(name string) (PixelFormat, error) {
	name = strings.TrimPrefix(name, "PixelFormat::")
	for f := range PixelFormats() {
		if f.info().name == name {
			return f, nil
		}
	}
	return 0, invalidArgument("ParsePixelFormat", "unknown format %q", name)
}
