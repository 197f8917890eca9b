package gl

import (
	"errors"
	"testing"

	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/internal/enumcheck"
)

func TestPixelFormatFor(t *testing.T) {
	tests := []struct {
		format     pixel.PixelFormat
		wantFormat PixelFormat
		wantType   PixelType
	}{
		{pixel.RGBA8Unorm, RGBA, UnsignedByte},
		{pixel.RGBA32F, RGBA, Float},
		{pixel.R8Unorm, Red, UnsignedByte},
		{pixel.RG8Snorm, RG, Byte},
		{pixel.RGB16UI, RGBInteger, UnsignedShort},
		{pixel.RGBA32I, RGBAInteger, Int},
		{pixel.R16F, Red, HalfFloat},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			format, err := PixelFormatFor(tt.format)
			if err != nil {
				t.Fatalf("PixelFormatFor() error = %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("PixelFormatFor() = %v, want %v", format, tt.wantFormat)
			}
			typ, err := PixelTypeFor(tt.format)
			if err != nil {
				t.Fatalf("PixelTypeFor() error = %v", err)
			}
			if typ != tt.wantType {
				t.Errorf("PixelTypeFor() = %v, want %v", typ, tt.wantType)
			}
		})
	}
}

func TestPixelFormatFor_Invalid(t *testing.T) {
	wrapped, err := pixel.WrapPixelFormat(0xdead)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []pixel.PixelFormat{0, pixel.PixelFormat(pixel.NumPixelFormats + 1), wrapped} {
		if _, err := PixelFormatFor(f); !errors.Is(err, pixel.ErrInvalidArgument) {
			t.Errorf("PixelFormatFor(%v) error = %v, want ErrInvalidArgument", f, err)
		}
		if _, err := PixelTypeFor(f); !errors.Is(err, pixel.ErrInvalidArgument) {
			t.Errorf("PixelTypeFor(%v) error = %v, want ErrInvalidArgument", f, err)
		}
	}
}

func TestPixelFormatTable_Exhaustive(t *testing.T) {
	var codes []uint32
	for f := range pixel.PixelFormats() {
		codes = append(codes, uint32(f))
	}
	if err := enumcheck.Contiguous(codes, 1); err != nil {
		t.Fatal(err)
	}

	n, err := enumcheck.Scan(1, uint32(pixel.NumPixelFormats)+1024, func(code uint32) bool {
		_, err := FormatFor(pixel.PixelFormat(code))
		return err == nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != pixel.NumPixelFormats {
		t.Errorf("FormatFor() handles %d formats, want %d", n, pixel.NumPixelFormats)
	}

	for i, native := range pixelFormatTable {
		if native.Format == 0 || native.Type == 0 {
			t.Errorf("missing entry for %v", pixel.PixelFormat(i+1))
		}
	}
}

func TestCompressedPixelFormatTable_Exhaustive(t *testing.T) {
	var codes []uint32
	for f := range pixel.CompressedPixelFormats() {
		codes = append(codes, uint32(f))
	}
	if err := enumcheck.Contiguous(codes, 1); err != nil {
		t.Fatal(err)
	}

	n, err := enumcheck.Scan(1, uint32(pixel.NumCompressedPixelFormats)+1024, func(code uint32) bool {
		_, err := CompressedPixelFormatFor(pixel.CompressedPixelFormat(code))
		return err == nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != pixel.NumCompressedPixelFormats {
		t.Errorf("CompressedPixelFormatFor() handles %d formats, want %d", n, pixel.NumCompressedPixelFormats)
	}

	seen := make(map[CompressedPixelFormat]pixel.CompressedPixelFormat)
	for i, native := range compressedPixelFormatTable {
		generic := pixel.CompressedPixelFormat(i + 1)
		if _, ok := compressedPixelFormatNames[native]; !ok {
			t.Errorf("%v maps to unnamed %v", generic, native)
		}
		if prev, ok := seen[native]; ok {
			t.Errorf("%v and %v both map to %v", prev, generic, native)
		}
		seen[native] = generic
	}
}

func TestGenericPixelFormat_RoundTrip(t *testing.T) {
	for f := range pixel.PixelFormats() {
		native, err := FormatFor(f)
		if err != nil {
			t.Fatalf("FormatFor(%v) error = %v", f, err)
		}
		got, ok := GenericPixelFormat(native.Format, native.Type)
		if !ok || got != f {
			t.Errorf("GenericPixelFormat(%v) = %v, %v, want %v", native, got, ok, f)
		}
		size, err := pixel.PixelSize(f)
		if err != nil {
			t.Fatal(err)
		}
		if native.PixelSize() != size {
			t.Errorf("%v PixelSize() = %d, want %d", native, native.PixelSize(), size)
		}
	}

	if _, ok := GenericPixelFormat(BGRA, UnsignedByte); ok {
		t.Error("GenericPixelFormat(BGRA, UnsignedByte) found a generic format")
	}
}

func TestGenericCompressedPixelFormat_RoundTrip(t *testing.T) {
	for f := range pixel.CompressedPixelFormats() {
		native, err := CompressedPixelFormatFor(f)
		if err != nil {
			t.Fatalf("CompressedPixelFormatFor(%v) error = %v", f, err)
		}
		if got, ok := GenericCompressedPixelFormat(native); !ok || got != f {
			t.Errorf("GenericCompressedPixelFormat(%v) = %v, %v, want %v", native, got, ok, f)
		}
	}
}

func TestFormatOf(t *testing.T) {
	data := make([]byte, 4*4*4)

	generic, err := pixel.NewImageView(pixel.Storage{}, pixel.RGBA8Unorm, pixel.Vector2{4, 4}, data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FormatOf[pixel.Vector2](generic)
	if err != nil {
		t.Fatalf("FormatOf() error = %v", err)
	}
	if want := (Format{RGBA, UnsignedByte}); got != want {
		t.Errorf("FormatOf() = %v, want %v", got, want)
	}

	native, err := pixel.NewImageViewNative(pixel.Storage{}, Format{BGRA, UnsignedInt8888Rev}, pixel.Vector2{4, 4}, data)
	if err != nil {
		t.Fatal(err)
	}
	got, err = FormatOf[pixel.Vector2](native)
	if err != nil {
		t.Fatalf("FormatOf() error = %v", err)
	}
	if want := (Format{BGRA, UnsignedInt8888Rev}); got != want {
		t.Errorf("FormatOf() = %v, want %v", got, want)
	}
	if native.PixelSize() != 4 {
		t.Errorf("PixelSize() = %d, want 4", native.PixelSize())
	}
}

func TestCompressedFormatOf(t *testing.T) {
	img, err := pixel.NewCompressedImageNative(pixel.CompressedStorage{}, RGBAS3tcDxt5, pixel.Vector2{4, 4}, make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	got, err := CompressedFormatOf[pixel.Vector2](img)
	if err != nil {
		t.Fatalf("CompressedFormatOf() error = %v", err)
	}
	if got != RGBAS3tcDxt5 {
		t.Errorf("CompressedFormatOf() = %v, want %v", got, RGBAS3tcDxt5)
	}

	generic, err := pixel.NewCompressedImageView(pixel.CompressedStorage{}, pixel.Etc2RGBA8Srgb, pixel.Vector2{4, 4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err = CompressedFormatOf[pixel.Vector2](generic)
	if err != nil {
		t.Fatalf("CompressedFormatOf() error = %v", err)
	}
	if got != SRGB8Alpha8Etc2Eac {
		t.Errorf("CompressedFormatOf() = %v, want %v", got, SRGB8Alpha8Etc2Eac)
	}
}
