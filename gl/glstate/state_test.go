package glstate

import (
	"errors"
	"testing"

	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/gl"
	"github.com/google/go-cmp/cmp"
	mobilegl "golang.org/x/mobile/gl"
)

type call struct {
	pname mobilegl.Enum
	param int32
}

// recorder records PixelStorei calls.
type recorder struct {
	calls []call
}

func (r *recorder) PixelStorei(pname mobilegl.Enum, param int32) {
	r.calls = append(r.calls, call{pname, param})
}

func (r *recorder) take() []call {
	calls := r.calls
	r.calls = nil
	return calls
}

func mustStorage(t *testing.T, opts ...pixel.StorageOption) pixel.Storage {
	t.Helper()
	s, err := pixel.NewStorage(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestApplyUnpack_DefaultsAreNoOp(t *testing.T) {
	r := &recorder{}
	s := NewPixelStorageState(r)
	if err := s.ApplyUnpack(pixel.Storage{}); err != nil {
		t.Fatalf("ApplyUnpack() error = %v", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("ApplyUnpack() issued %v, want no calls", r.calls)
	}
}

func TestApplyUnpack_OnlyChanges(t *testing.T) {
	r := &recorder{}
	s := NewPixelStorageState(r)

	storage := mustStorage(t, pixel.WithAlignment(1), pixel.WithRowLength(75), pixel.WithSkip(pixel.Vector3{25, 25, 0}))
	if err := s.ApplyUnpack(storage); err != nil {
		t.Fatal(err)
	}
	want := []call{
		{mobilegl.UNPACK_ALIGNMENT, 1},
		{mobilegl.UNPACK_ROW_LENGTH, 75},
		{mobilegl.UNPACK_SKIP_PIXELS, 25},
		{mobilegl.UNPACK_SKIP_ROWS, 25},
	}
	if diff := cmp.Diff(want, r.take(), cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("ApplyUnpack() calls mismatch (-want +got):\n%s", diff)
	}

	if err := s.ApplyUnpack(storage); err != nil {
		t.Fatal(err)
	}
	if calls := r.take(); len(calls) != 0 {
		t.Errorf("second ApplyUnpack() issued %v, want no calls", calls)
	}

	// Pack state is tracked separately.
	if err := s.ApplyPack(storage); err != nil {
		t.Fatal(err)
	}
	want = []call{
		{mobilegl.PACK_ALIGNMENT, 1},
		{mobilegl.PACK_ROW_LENGTH, 75},
		{mobilegl.PACK_SKIP_PIXELS, 25},
		{mobilegl.PACK_SKIP_ROWS, 25},
	}
	if diff := cmp.Diff(want, r.take(), cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("ApplyPack() calls mismatch (-want +got):\n%s", diff)
	}

	if err := s.ApplyUnpack(pixel.Storage{}); err != nil {
		t.Fatal(err)
	}
	want = []call{
		{mobilegl.UNPACK_ALIGNMENT, 4},
		{mobilegl.UNPACK_ROW_LENGTH, 0},
		{mobilegl.UNPACK_SKIP_PIXELS, 0},
		{mobilegl.UNPACK_SKIP_ROWS, 0},
	}
	if diff := cmp.Diff(want, r.take(), cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("ApplyUnpack() back to defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	r := &recorder{}
	s := NewPixelStorageState(r)
	s.Reset()

	if err := s.ApplyUnpack(pixel.Storage{}); err != nil {
		t.Fatal(err)
	}
	if got := len(r.take()); got != 6 {
		t.Errorf("ApplyUnpack() after Reset() issued %d calls, want 6", got)
	}

	if err := s.ApplyCompressedPack(pixel.CompressedStorage{}); err != nil {
		t.Fatal(err)
	}
	if got := len(r.take()); got != 10 {
		t.Errorf("ApplyCompressedPack() after Reset() issued %d calls, want 10", got)
	}
}

func TestApplyCompressedUnpack(t *testing.T) {
	r := &recorder{}
	s := NewPixelStorageState(r)

	storage, err := pixel.CompressedStorageFor(pixel.Bc3RGBAUnorm)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ApplyCompressedUnpack(storage); err != nil {
		t.Fatal(err)
	}
	want := []call{
		{unpackBlockW, 4},
		{unpackBlockH, 4},
		{unpackBlockD, 1},
		{unpackBlockBytes, 16},
	}
	if diff := cmp.Diff(want, r.take(), cmp.AllowUnexported(call{})); diff != "" {
		t.Errorf("ApplyCompressedUnpack() calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetES(t *testing.T) {
	r := &recorder{}
	s := NewPixelStorageState(r, WithTarget(TargetES))
	if s.Target() != TargetES {
		t.Fatalf("Target() = %v, want %v", s.Target(), TargetES)
	}

	if err := s.ApplyUnpack(mustStorage(t, pixel.WithImageHeight(8), pixel.WithSkip(pixel.Vector3{0, 0, 2}))); err != nil {
		t.Errorf("ApplyUnpack() error = %v", err)
	}

	err := s.ApplyPack(mustStorage(t, pixel.WithImageHeight(8)))
	if !errors.Is(err, pixel.ErrInvalidArgument) {
		t.Errorf("ApplyPack() error = %v, want ErrInvalidArgument", err)
	}

	storage, err := pixel.CompressedStorageFor(pixel.Etc2RGB8Unorm)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ApplyCompressedUnpack(storage); !errors.Is(err, pixel.ErrInvalidArgument) {
		t.Errorf("ApplyCompressedUnpack() error = %v, want ErrInvalidArgument", err)
	}
	if err := s.ApplyCompressedUnpack(pixel.CompressedStorage{}); err != nil {
		t.Errorf("ApplyCompressedUnpack() with no block properties error = %v", err)
	}
}

// The gl package defines its constants without importing x/mobile; make sure
// the ES subset agrees with the x/mobile headers.
func TestGLConstantsMatchES(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"Red", uint32(gl.Red), mobilegl.RED},
		{"RG", uint32(gl.RG), mobilegl.RG},
		{"RGB", uint32(gl.RGB), mobilegl.RGB},
		{"RGBA", uint32(gl.RGBA), mobilegl.RGBA},
		{"RedInteger", uint32(gl.RedInteger), mobilegl.RED_INTEGER},
		{"RGInteger", uint32(gl.RGInteger), mobilegl.RG_INTEGER},
		{"RGBInteger", uint32(gl.RGBInteger), mobilegl.RGB_INTEGER},
		{"RGBAInteger", uint32(gl.RGBAInteger), mobilegl.RGBA_INTEGER},
		{"DepthComponent", uint32(gl.DepthComponent), mobilegl.DEPTH_COMPONENT},
		{"DepthStencil", uint32(gl.DepthStencil), mobilegl.DEPTH_STENCIL},
		{"Alpha", uint32(gl.Alpha), mobilegl.ALPHA},
		{"Luminance", uint32(gl.Luminance), mobilegl.LUMINANCE},
		{"LuminanceAlpha", uint32(gl.LuminanceAlpha), mobilegl.LUMINANCE_ALPHA},

		{"Byte", uint32(gl.Byte), mobilegl.BYTE},
		{"UnsignedByte", uint32(gl.UnsignedByte), mobilegl.UNSIGNED_BYTE},
		{"Short", uint32(gl.Short), mobilegl.SHORT},
		{"UnsignedShort", uint32(gl.UnsignedShort), mobilegl.UNSIGNED_SHORT},
		{"Int", uint32(gl.Int), mobilegl.INT},
		{"UnsignedInt", uint32(gl.UnsignedInt), mobilegl.UNSIGNED_INT},
		{"Float", uint32(gl.Float), mobilegl.FLOAT},
		{"HalfFloat", uint32(gl.HalfFloat), mobilegl.HALF_FLOAT},
		{"UnsignedShort4444", uint32(gl.UnsignedShort4444), mobilegl.UNSIGNED_SHORT_4_4_4_4},
		{"UnsignedShort5551", uint32(gl.UnsignedShort5551), mobilegl.UNSIGNED_SHORT_5_5_5_1},
		{"UnsignedShort565", uint32(gl.UnsignedShort565), mobilegl.UNSIGNED_SHORT_5_6_5},
		{"UnsignedInt2101010Rev", uint32(gl.UnsignedInt2101010Rev), mobilegl.UNSIGNED_INT_2_10_10_10_REV},
		{"UnsignedInt10F11F11FRev", uint32(gl.UnsignedInt10F11F11FRev), mobilegl.UNSIGNED_INT_10F_11F_11F_REV},
		{"UnsignedInt5999Rev", uint32(gl.UnsignedInt5999Rev), mobilegl.UNSIGNED_INT_5_9_9_9_REV},
		{"UnsignedInt248", uint32(gl.UnsignedInt248), mobilegl.UNSIGNED_INT_24_8},
		{"Float32UnsignedInt248Rev", uint32(gl.Float32UnsignedInt248Rev), mobilegl.FLOAT_32_UNSIGNED_INT_24_8_REV},

		{"R11Eac", uint32(gl.R11Eac), mobilegl.COMPRESSED_R11_EAC},
		{"SignedR11Eac", uint32(gl.SignedR11Eac), mobilegl.COMPRESSED_SIGNED_R11_EAC},
		{"RG11Eac", uint32(gl.RG11Eac), mobilegl.COMPRESSED_RG11_EAC},
		{"SignedRG11Eac", uint32(gl.SignedRG11Eac), mobilegl.COMPRESSED_SIGNED_RG11_EAC},
		{"RGB8Etc2", uint32(gl.RGB8Etc2), mobilegl.COMPRESSED_RGB8_ETC2},
		{"SRGB8Etc2", uint32(gl.SRGB8Etc2), mobilegl.COMPRESSED_SRGB8_ETC2},
		{"RGB8PunchthroughAlpha1Etc2", uint32(gl.RGB8PunchthroughAlpha1Etc2), mobilegl.COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2},
		{"SRGB8PunchthroughAlpha1Etc2", uint32(gl.SRGB8PunchthroughAlpha1Etc2), mobilegl.COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2},
		{"RGBA8Etc2Eac", uint32(gl.RGBA8Etc2Eac), mobilegl.COMPRESSED_RGBA8_ETC2_EAC},
		{"SRGB8Alpha8Etc2Eac", uint32(gl.SRGB8Alpha8Etc2Eac), mobilegl.COMPRESSED_SRGB8_ALPHA8_ETC2_EAC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
			}
		})
	}
}
