package pixel

import "math/bits"

// defaultAlignment is the row alignment of a zero Storage, matching the
// initial GL pack/unpack alignment.
const defaultAlignment = 4

// Storage describes how pixel rows and slices are laid out in memory.
//
// The zero value is ready to use and equals the GL defaults: rows aligned to
// four bytes, tightly packed row length and image height, no skip.
type Storage struct {
	alignment   int // 0 means defaultAlignment
	rowLength   int
	imageHeight int
	skip        Vector3
}

// StorageOption configures a Storage or CompressedStorage during creation.
//
// Example:
//
//	s, err := pixel.NewStorage(
//	    pixel.WithAlignment(1),
//	    pixel.WithRowLength(75),
//	    pixel.WithSkip(pixel.Vector3{25, 25, 0}),
//	)
type StorageOption func(*storageOptions)

type storageOptions struct {
	storage       Storage
	blockSize     Vector3
	blockDataSize int
	compressed    bool
	alignmentSet  bool
}

func (o *storageOptions) apply(fn string, opts []StorageOption) error {
	for _, opt := range opts {
		opt(o)
	}
	if o.alignmentSet {
		if err := checkAlignment(fn, o.storage.alignment); err != nil {
			return err
		}
	}
	return o.storage.validate(fn)
}

// WithAlignment sets the row alignment in bytes. Must be a power of two.
func WithAlignment(alignment int) StorageOption {
	return func(o *storageOptions) {
		o.storage.alignment = alignment
		o.alignmentSet = true
	}
}

// WithRowLength sets the row length in pixels. Zero means the image width.
func WithRowLength(length int) StorageOption {
	return func(o *storageOptions) {
		o.storage.rowLength = length
	}
}

// WithImageHeight sets the number of rows of one slice. Zero means the image
// height.
func WithImageHeight(height int) StorageOption {
	return func(o *storageOptions) {
		o.storage.imageHeight = height
	}
}

// WithSkip sets the number of pixels, rows and slices skipped before the
// first pixel.
func WithSkip(skip Vector3) StorageOption {
	return func(o *storageOptions) {
		o.storage.skip = skip
	}
}

// WithCompressedBlockSize sets the block footprint in pixels. Only accepted
// by NewCompressedStorage.
func WithCompressedBlockSize(size Vector3) StorageOption {
	return func(o *storageOptions) {
		o.blockSize = size
		o.compressed = true
	}
}

// WithCompressedBlockDataSize sets the size of one block in bytes. Only
// accepted by NewCompressedStorage.
func WithCompressedBlockDataSize(size int) StorageOption {
	return func(o *storageOptions) {
		o.blockDataSize = size
		o.compressed = true
	}
}

// NewStorage creates a Storage from the defaults and the given options.
func NewStorage(opts ...StorageOption) (Storage, error) {
	var o storageOptions
	if err := o.apply("NewStorage", opts); err != nil {
		return Storage{}, err
	}
	if o.compressed {
		return Storage{}, invalidArgument("NewStorage", "compressed block parameters need NewCompressedStorage")
	}
	return o.storage, nil
}

func (s Storage) validate(fn string) error {
	if err := checkAlignment(fn, s.Alignment()); err != nil {
		return err
	}
	if s.rowLength < 0 {
		return invalidArgument(fn, "row length %d is negative", s.rowLength)
	}
	if s.imageHeight < 0 {
		return invalidArgument(fn, "image height %d is negative", s.imageHeight)
	}
	return checkNonNegative(fn, "skip", s.skip)
}

func checkAlignment(fn string, alignment int) error {
	if alignment <= 0 || bits.OnesCount(uint(alignment)) != 1 {
		return invalidArgument(fn, "alignment %d is not a positive power of two", alignment)
	}
	return nil
}

func checkNonNegative(fn, what string, v Vector3) error {
	if v[0] < 0 || v[1] < 0 || v[2] < 0 {
		return invalidArgument(fn, "%s %v has a negative component", what, v)
	}
	return nil
}

// Alignment returns the row alignment in bytes.
func (s Storage) Alignment() int {
	if s.alignment == 0 {
		return defaultAlignment
	}
	return s.alignment
}

// SetAlignment sets the row alignment in bytes.
func (s *Storage) SetAlignment(alignment int) error {
	if err := checkAlignment("SetAlignment", alignment); err != nil {
		return err
	}
	s.alignment = alignment
	return nil
}

// RowLength returns the row length in pixels, 0 if rows are as long as the
// image is wide.
func (s Storage) RowLength() int { return s.rowLength }

// SetRowLength sets the row length in pixels.
func (s *Storage) SetRowLength(length int) error {
	if length < 0 {
		return invalidArgument("SetRowLength", "row length %d is negative", length)
	}
	s.rowLength = length
	return nil
}

// ImageHeight returns the number of rows of one slice, 0 if slices are as
// tall as the image.
func (s Storage) ImageHeight() int { return s.imageHeight }

// SetImageHeight sets the number of rows of one slice.
func (s *Storage) SetImageHeight(height int) error {
	if height < 0 {
		return invalidArgument("SetImageHeight", "image height %d is negative", height)
	}
	s.imageHeight = height
	return nil
}

// Skip returns the skipped pixels, rows and slices.
func (s Storage) Skip() Vector3 { return s.skip }

// SetSkip sets the skipped pixels, rows and slices.
func (s *Storage) SetSkip(skip Vector3) error {
	if err := checkNonNegative("SetSkip", "skip", skip); err != nil {
		return err
	}
	s.skip = skip
	return nil
}

// CompressedStorage extends Storage with the block parameters of
// block-compressed data. Row alignment does not apply to compressed data.
//
// Without both a block size and a block data size the layout of the data is
// opaque and DataProperties reports zeros.
type CompressedStorage struct {
	Storage
	blockSize     Vector3
	blockDataSize int
}

// NewCompressedStorage creates a CompressedStorage from the defaults and the
// given options.
func NewCompressedStorage(opts ...StorageOption) (CompressedStorage, error) {
	var o storageOptions
	if err := o.apply("NewCompressedStorage", opts); err != nil {
		return CompressedStorage{}, err
	}
	s := CompressedStorage{Storage: o.storage, blockSize: o.blockSize, blockDataSize: o.blockDataSize}
	if err := checkNonNegative("NewCompressedStorage", "block size", s.blockSize); err != nil {
		return CompressedStorage{}, err
	}
	if s.blockDataSize < 0 {
		return CompressedStorage{}, invalidArgument("NewCompressedStorage", "block data size %d is negative", s.blockDataSize)
	}
	return s, nil
}

// CompressedStorageFor returns a CompressedStorage carrying the block
// parameters of a generic compressed format.
func CompressedStorageFor(f CompressedPixelFormat, opts ...StorageOption) (CompressedStorage, error) {
	block, err := CompressedBlockSize(f)
	if err != nil {
		return CompressedStorage{}, err
	}
	dataSize, _ := CompressedBlockDataSize(f)
	opts = append(opts[:len(opts):len(opts)], WithCompressedBlockSize(block), WithCompressedBlockDataSize(dataSize))
	return NewCompressedStorage(opts...)
}

// CompressedBlockSize returns the block footprint in pixels.
func (s CompressedStorage) CompressedBlockSize() Vector3 { return s.blockSize }

// SetCompressedBlockSize sets the block footprint in pixels.
func (s *CompressedStorage) SetCompressedBlockSize(size Vector3) error {
	if err := checkNonNegative("SetCompressedBlockSize", "block size", size); err != nil {
		return err
	}
	s.blockSize = size
	return nil
}

// CompressedBlockDataSize returns the size of one block in bytes.
func (s CompressedStorage) CompressedBlockDataSize() int { return s.blockDataSize }

// SetCompressedBlockDataSize sets the size of one block in bytes.
func (s *CompressedStorage) SetCompressedBlockDataSize(size int) error {
	if size < 0 {
		return invalidArgument("SetCompressedBlockDataSize", "block data size %d is negative", size)
	}
	s.blockDataSize = size
	return nil
}

// hasBlockProperties reports whether the layout of the data can be computed.
func (s CompressedStorage) hasBlockProperties() bool {
	return s.blockSize[0] > 0 && s.blockSize[1] > 0 && s.blockSize[2] > 0 && s.blockDataSize > 0
}
