package pixel

import (
	"errors"
	"math"
	"testing"
)

// testFormat is a NativeFormat with made-up values.
type testFormat struct {
	code, extra uint32
	pixelSize   int
}

func (f testFormat) Code() uint32   { return f.code }
func (f testFormat) Extra() uint32  { return f.extra }
func (f testFormat) PixelSize() int { return f.pixelSize }

func TestNewImage_DataSize(t *testing.T) {
	storage := mustStorage(t, WithSkip(Vector3{25, 25, 0}))
	size := Vector2{75, 75}
	const need = 22875

	tests := []struct {
		name    string
		len     int
		wantErr bool
	}{
		{"exact", need, false},
		{"one byte short", need - 1, true},
		{"extra bytes", need + 100, false},
		{"empty", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(storage, RGB8Unorm, size, make([]byte, tt.len))
			if tt.wantErr {
				if !errors.Is(err, ErrDataTooSmall) || !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("NewImage() error = %v, want ErrDataTooSmall", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImage() error = %v", err)
			}
			if img.PixelSize() != 3 || img.Format() != RGB8Unorm || img.Size() != size || len(img.Data()) != tt.len {
				t.Errorf("NewImage() = %+v", img)
			}
		})
	}
}

func TestNewImage_ErrorMessage(t *testing.T) {
	_, err := NewImage(Storage{}, RGBA8Unorm, Vector2{2, 2}, make([]byte, 15))
	want := "pixel: invalid argument: data too small: NewImage() got 15 but expected at least 16 bytes"
	if err == nil || err.Error() != want {
		t.Errorf("NewImage() error = %v, want %q", err, want)
	}
}

func TestNewImage_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size Vector2
		len  int
		want string
	}{
		{"negative width", Vector2{-5, 3}, 1, "pixel: invalid argument: NewImage(): size [-5 3 1] has a negative component"},
		{"negative height without data", Vector2{4, -1}, 0, "pixel: invalid argument: NewImage(): size [4 -1 1] has a negative component"},
		{"row overflows", Vector2{math.MaxInt / 2, 1}, 1, ""},
		{"slice overflows", Vector2{1 << 20, math.MaxInt / (1 << 20)}, 1, ""},
		{"overflow without data", Vector2{math.MaxInt / 2, math.MaxInt / 2}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(Storage{}, RGBA8Unorm, tt.size, make([]byte, tt.len))
			if !errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrDataTooSmall) {
				t.Fatalf("NewImage() = %v, %v, want ErrInvalidArgument", img, err)
			}
			if tt.want != "" && err.Error() != tt.want {
				t.Errorf("NewImage() error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestNewImageWithExtra(t *testing.T) {
	img, err := NewImageWithExtra(Storage{}, RGB8Unorm, 0x1401, 4, Vector2{2, 2}, make([]byte, 16))
	if err != nil {
		t.Fatalf("NewImageWithExtra() error = %v", err)
	}
	if img.Format() != RGB8Unorm || img.FormatExtra() != 0x1401 || img.PixelSize() != 4 {
		t.Errorf("NewImageWithExtra() = format %v, extra %#x, pixel size %d", img.Format(), img.FormatExtra(), img.PixelSize())
	}
	if got := img.DataProperties().Stride; got != (Vector2{4, 8}) {
		t.Errorf("Stride = %v, want [4 8]", got)
	}

	wrapped, _ := WrapPixelFormat(0x1908)
	img1, err := NewImageWithExtra(Storage{}, wrapped, 0x1401, 4, Vector1{3}, make([]byte, 12))
	if err != nil {
		t.Fatalf("NewImageWithExtra() error = %v", err)
	}
	if img1.Format() != wrapped {
		t.Errorf("Format() = %v, want %v", img1.Format(), wrapped)
	}

	tests := []struct {
		name      string
		format    PixelFormat
		pixelSize int
		len       int
		sentinel  error
	}{
		{"zero format", 0, 4, 16, ErrInvalidArgument},
		{"format past the table", PixelFormat(NumPixelFormats + 1), 4, 16, ErrInvalidArgument},
		{"negative pixel size", RGBA8Unorm, -1, 16, ErrInvalidArgument},
		{"data too small", RGBA8Unorm, 8, 16, ErrDataTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImageWithExtra(Storage{}, tt.format, 0, tt.pixelSize, Vector2{2, 2}, make([]byte, tt.len)); !errors.Is(err, tt.sentinel) {
				t.Errorf("NewImageWithExtra() error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestNewImage_InvalidFormat(t *testing.T) {
	wrapped, _ := WrapPixelFormat(0x1234)
	for _, f := range []PixelFormat{0, wrapped} {
		if _, err := NewImage(Storage{}, f, Vector1{1}, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewImage(%v) error = %v, want ErrInvalidArgument", f, err)
		}
	}
}

func TestNewImageNative(t *testing.T) {
	img, err := NewImageNative(Storage{}, testFormat{code: 0x1908, extra: 0x1401, pixelSize: 4}, Vector3{2, 2, 2}, make([]byte, 32))
	if err != nil {
		t.Fatalf("NewImageNative() error = %v", err)
	}
	if !img.Format().IsImplementationSpecific() {
		t.Errorf("Format() = %v, want an implementation-specific format", img.Format())
	}
	if code, _ := UnwrapPixelFormat(img.Format()); code != 0x1908 {
		t.Errorf("unwrapped format = %#x, want 0x1908", code)
	}
	if img.FormatExtra() != 0x1401 || img.PixelSize() != 4 {
		t.Errorf("FormatExtra() = %#x, PixelSize() = %d", img.FormatExtra(), img.PixelSize())
	}

	if _, err := NewImageNative(Storage{}, testFormat{code: 0x1908, pixelSize: 4}, Vector3{2, 2, 2}, make([]byte, 31)); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("NewImageNative() error = %v, want ErrDataTooSmall", err)
	}
	if _, err := NewImageNative(Storage{}, testFormat{code: 0x80000000, pixelSize: 4}, Vector1{1}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewImageNative() with the highest bit set error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewImageImplementationSpecific(t *testing.T) {
	// Pixel size 0 skips validation.
	img, err := NewImageImplementationSpecific(Storage{}, 0xdead, 0, 0, Vector2{64, 64}, make([]byte, 3))
	if err != nil {
		t.Fatalf("NewImageImplementationSpecific() error = %v", err)
	}
	if img.DataProperties() != (DataProperties[Vector2]{}) {
		t.Errorf("DataProperties() = %+v, want zero", img.DataProperties())
	}
	if _, err := NewImageImplementationSpecific(Storage{}, 0xdead, 0, -1, Vector2{1, 1}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewImageImplementationSpecific() with negative pixel size error = %v", err)
	}
}

func TestImage_SetData(t *testing.T) {
	orig := make([]byte, 16)
	img, err := NewImage(Storage{}, RGBA8Unorm, Vector2{2, 2}, orig)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.SetData(make([]byte, 8)); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("SetData() error = %v, want ErrDataTooSmall", err)
	}
	if &img.Data()[0] != &orig[0] {
		t.Error("SetData() replaced the buffer on error")
	}
	next := make([]byte, 20)
	if err := img.SetData(next); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}
	if len(img.Data()) != 20 {
		t.Errorf("Data() has %d bytes, want 20", len(img.Data()))
	}
}

func TestImage_MoveReleaseSwap(t *testing.T) {
	data := make([]byte, 16)
	img, err := NewImage(mustStorage(t, WithAlignment(1)), RGBA8Unorm, Vector2{2, 2}, data)
	if err != nil {
		t.Fatal(err)
	}

	moved := img.Move()
	if len(img.Data()) != 0 || img.Size() != (Vector2{}) {
		t.Errorf("Move() left data behind: size %v, %d bytes", img.Size(), len(img.Data()))
	}
	if moved.Storage().Alignment() != 1 || moved.Size() != (Vector2{2, 2}) || len(moved.Data()) != 16 {
		t.Errorf("Move() = %+v", moved)
	}

	other, err := NewImage(Storage{}, R8Unorm, Vector2{1, 1}, make([]byte, 4))
	if err != nil {
		t.Fatal(err)
	}
	moved.Swap(other)
	if moved.Format() != R8Unorm || other.Format() != RGBA8Unorm || other.Storage().Alignment() != 1 {
		t.Errorf("Swap() formats = %v, %v", moved.Format(), other.Format())
	}

	released := other.Release()
	if len(released) != 16 || &released[0] != &data[0] {
		t.Error("Release() did not return the original buffer")
	}
	if other.Release() != nil {
		t.Error("second Release() returned data")
	}
}

func TestImage_View(t *testing.T) {
	data := make([]byte, 12)
	img, err := NewImage(Storage{}, RGB8Unorm, Vector1{4}, data)
	if err != nil {
		t.Fatal(err)
	}
	v := img.View()
	if v.Format() != RGB8Unorm || v.PixelSize() != 3 || v.Size() != (Vector1{4}) || &v.Data()[0] != &data[0] {
		t.Errorf("View() = %+v", v)
	}
	if v.DataProperties() != img.DataProperties() {
		t.Errorf("View().DataProperties() = %+v, want %+v", v.DataProperties(), img.DataProperties())
	}

	var _ View[Vector1] = img
	var _ View[Vector1] = v
}
