package gl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/pixel"
)

func TestString(t *testing.T) {
	tests := []struct {
		value fmt.Stringer
		want  string
	}{
		{RGBA, "GL::PixelFormat::RGBA"},
		{RGInteger, "GL::PixelFormat::RGInteger"},
		{PixelFormat(0xdead), "GL::PixelFormat(0xdead)"},
		{UnsignedByte, "GL::PixelType::UnsignedByte"},
		{UnsignedInt10F11F11FRev, "GL::PixelType::UnsignedInt10F11F11FRev"},
		{PixelType(0xdead), "GL::PixelType(0xdead)"},
		{RGBBptcUnsignedFloat, "GL::CompressedPixelFormat::RGBBptcUnsignedFloat"},
		{CompressedPixelFormat(0xdead), "GL::CompressedPixelFormat(0xdead)"},
		{Format{RG, HalfFloat}, "GL::PixelFormat::RG/GL::PixelType::HalfFloat"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		format PixelFormat
		typ    PixelType
		want   int
	}{
		{Red, UnsignedByte, 1},
		{RGB, UnsignedByte, 3},
		{BGRA, UnsignedByte, 4},
		{RGBA, HalfFloat, 8},
		{RGBInteger, Int, 12},
		{RGBA, Float, 16},
		{LuminanceAlpha, UnsignedByte, 2},
		{RGB, UnsignedShort565, 2},
		{RGBA, UnsignedShort4444, 2},
		{RGB, UnsignedInt10F11F11FRev, 4},
		{DepthStencil, UnsignedInt248, 4},
		{DepthStencil, Float32UnsignedInt248Rev, 8},
	}

	for _, tt := range tests {
		t.Run(Format{tt.format, tt.typ}.String(), func(t *testing.T) {
			got, err := PixelSize(tt.format, tt.typ)
			if err != nil {
				t.Fatalf("PixelSize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PixelSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPixelSize_Unknown(t *testing.T) {
	if _, err := PixelSize(RGBA, PixelType(0xdead)); !errors.Is(err, pixel.ErrInvalidArgument) {
		t.Errorf("PixelSize() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := PixelSize(PixelFormat(0xdead), UnsignedByte); !errors.Is(err, pixel.ErrInvalidArgument) {
		t.Errorf("PixelSize() error = %v, want ErrInvalidArgument", err)
	}
	if got := (Format{PixelFormat(0xdead), UnsignedByte}).PixelSize(); got != 0 {
		t.Errorf("Format.PixelSize() = %d, want 0", got)
	}
}
