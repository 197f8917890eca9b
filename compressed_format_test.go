package pixel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/pixel/internal/enumcheck"
)

func TestWrapCompressedPixelFormat(t *testing.T) {
	f, err := WrapCompressedPixelFormat(0xdead)
	if err != nil {
		t.Fatalf("WrapCompressedPixelFormat(0xdead) error = %v", err)
	}
	if uint32(f) != 0x8000dead {
		t.Errorf("WrapCompressedPixelFormat(0xdead) = %#x, want 0x8000dead", uint32(f))
	}
	if code, err := UnwrapCompressedPixelFormat(f); err != nil || code != 0xdead {
		t.Errorf("UnwrapCompressedPixelFormat() = %#x, %v, want 0xdead", code, err)
	}
	if _, err := WrapCompressedPixelFormat(0xdeadbeef); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WrapCompressedPixelFormat(0xdeadbeef) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := UnwrapCompressedPixelFormat(Bc1RGBUnorm); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("UnwrapCompressedPixelFormat(Bc1RGBUnorm) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCompressedBlockProperties(t *testing.T) {
	tests := []struct {
		format   CompressedPixelFormat
		block    Vector3
		dataSize int
	}{
		{Bc1RGBUnorm, Vector3{4, 4, 1}, 8},
		{Bc3RGBASrgb, Vector3{4, 4, 1}, 16},
		{Bc4RSnorm, Vector3{4, 4, 1}, 8},
		{Bc7RGBAUnorm, Vector3{4, 4, 1}, 16},
		{EacR11Unorm, Vector3{4, 4, 1}, 8},
		{EacRG11Snorm, Vector3{4, 4, 1}, 16},
		{Etc2RGB8A1Srgb, Vector3{4, 4, 1}, 8},
		{Etc2RGBA8Unorm, Vector3{4, 4, 1}, 16},
		{Astc5x4RGBAUnorm, Vector3{5, 4, 1}, 16},
		{Astc10x8RGBASrgb, Vector3{10, 8, 1}, 16},
		{Astc12x12RGBASrgb, Vector3{12, 12, 1}, 16},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			block, err := CompressedBlockSize(tt.format)
			if err != nil || block != tt.block {
				t.Errorf("CompressedBlockSize() = %v, %v, want %v", block, err, tt.block)
			}
			size, err := CompressedBlockDataSize(tt.format)
			if err != nil || size != tt.dataSize {
				t.Errorf("CompressedBlockDataSize() = %d, %v, want %d", size, err, tt.dataSize)
			}
		})
	}
}

func TestCompressedBlockProperties_Errors(t *testing.T) {
	wrapped, _ := WrapCompressedPixelFormat(0x83f0)
	for _, f := range []CompressedPixelFormat{0, CompressedPixelFormat(NumCompressedPixelFormats + 1), wrapped} {
		if _, err := CompressedBlockSize(f); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CompressedBlockSize(%v) error = %v, want ErrInvalidArgument", f, err)
		}
		if _, err := CompressedBlockDataSize(f); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CompressedBlockDataSize(%v) error = %v, want ErrInvalidArgument", f, err)
		}
	}
}

func TestCompressedPixelFormat_String(t *testing.T) {
	wrapped, _ := WrapCompressedPixelFormat(0xdead)
	got := fmt.Sprint(Bc7RGBASrgb, " ", CompressedPixelFormat(0xdead), " ", wrapped)
	want := "CompressedPixelFormat::Bc7RGBASrgb CompressedPixelFormat(0xdead) CompressedPixelFormat::ImplementationSpecific(0xdead)"
	if got != want {
		t.Errorf("Sprint() = %q, want %q", got, want)
	}
}

func TestCompressedPixelFormats(t *testing.T) {
	var codes []uint32
	for f := range CompressedPixelFormats() {
		codes = append(codes, uint32(f))
		got, err := ParseCompressedPixelFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseCompressedPixelFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if len(codes) != NumCompressedPixelFormats {
		t.Fatalf("CompressedPixelFormats() yielded %d formats, want %d", len(codes), NumCompressedPixelFormats)
	}
	if err := enumcheck.Contiguous(codes, 1); err != nil {
		t.Error(err)
	}
	if _, err := ParseCompressedPixelFormat("Dxt1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseCompressedPixelFormat(\"Dxt1\") error = %v, want ErrInvalidArgument", err)
	}
}
