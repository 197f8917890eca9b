package pixel

// NativeFormat is implemented by adapters of graphics API format
// descriptions that know their own pixel size. NewImageNative and
// NewImageViewNative wrap Code, store Extra as the format extra and use
// PixelSize for layout computation.
//
// A PixelSize of 0 marks a format whose layout is unknown; images in such a
// format skip buffer size validation.
type NativeFormat interface {
	Code() uint32
	Extra() uint32
	PixelSize() int
}

// NativeCompressedFormat is implemented by adapters of graphics API
// compressed format codes.
type NativeCompressedFormat interface {
	Code() uint32
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
