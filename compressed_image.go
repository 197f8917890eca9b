package pixel

// CompressedView is the read-only surface shared by CompressedImage and
// CompressedImageView.
type CompressedView[S Size] interface {
	Storage() CompressedStorage
	Format() CompressedPixelFormat
	Size() S
	Data() []byte
	DataProperties() DataProperties[S]
}

// CompressedImage is an owning container of block-compressed pixel data.
//
// The buffer is only validated against its layout when the storage carries
// both a block size and a block data size; otherwise it is treated as an
// opaque blob sized by the caller.
type CompressedImage[S Size] struct {
	_ noCopy

	storage CompressedStorage
	format  CompressedPixelFormat
	size    S
	data    []byte
}

type (
	CompressedImage1D = CompressedImage[Vector1]
	CompressedImage2D = CompressedImage[Vector2]
	CompressedImage3D = CompressedImage[Vector3]
)

// NewCompressedImage creates a compressed image. A generic format must be one
// of the known enumerators; wrapped formats are always accepted.
func NewCompressedImage[S Size](storage CompressedStorage, format CompressedPixelFormat, size S, data []byte) (*CompressedImage[S], error) {
	if err := checkCompressedFormat("NewCompressedImage", format); err != nil {
		return nil, err
	}
	if err := checkCompressedData("NewCompressedImage", storage, size, data); err != nil {
		return nil, err
	}
	return &CompressedImage[S]{storage: storage, format: format, size: size, data: data}, nil
}

// NewCompressedImageNative creates a compressed image of a native format
// code.
func NewCompressedImageNative[S Size](storage CompressedStorage, format NativeCompressedFormat, size S, data []byte) (*CompressedImage[S], error) {
	wrapped, err := WrapCompressedPixelFormat(format.Code())
	if err != nil {
		return nil, err
	}
	return NewCompressedImage(storage, wrapped, size, data)
}

func (img *CompressedImage[S]) Storage() CompressedStorage    { return img.storage }
func (img *CompressedImage[S]) Format() CompressedPixelFormat { return img.format }
func (img *CompressedImage[S]) Size() S                       { return img.size }
func (img *CompressedImage[S]) Data() []byte                  { return img.data }

// DataProperties computes the block-granular layout of the data, all zeros
// when the storage has no block parameters.
func (img *CompressedImage[S]) DataProperties() DataProperties[S] {
	return compressedDataPropertiesFor(img.storage, img.size)
}

// SetData replaces the buffer. On error the previous buffer stays in place.
func (img *CompressedImage[S]) SetData(data []byte) error {
	if err := checkCompressedData("CompressedImage.SetData", img.storage, img.size, data); err != nil {
		return err
	}
	img.data = data
	return nil
}

// Move transfers the size and data into a new image, leaving img with its
// storage and format, a zero size and no data.
func (img *CompressedImage[S]) Move() *CompressedImage[S] {
	moved := &CompressedImage[S]{storage: img.storage, format: img.format, size: img.size, data: img.data}
	var zero S
	img.size = zero
	img.data = nil
	return moved
}

// Swap exchanges the contents of img and other.
func (img *CompressedImage[S]) Swap(other *CompressedImage[S]) {
	img.storage, other.storage = other.storage, img.storage
	img.format, other.format = other.format, img.format
	img.size, other.size = other.size, img.size
	img.data, other.data = other.data, img.data
}

// Release transfers the buffer out of the image and resets the size to zero.
func (img *CompressedImage[S]) Release() []byte {
	data := img.data
	var zero S
	img.size = zero
	img.data = nil
	return data
}

// View returns a view borrowing the image data.
func (img *CompressedImage[S]) View() *CompressedImageView[S] {
	return &CompressedImageView[S]{storage: img.storage, format: img.format, size: img.size, data: img.data}
}

// CompressedImageView is a non-owning view of block-compressed pixel data.
type CompressedImageView[S Size] struct {
	storage CompressedStorage
	format  CompressedPixelFormat
	size    S
	data    []byte
}

type (
	CompressedImageView1D = CompressedImageView[Vector1]
	CompressedImageView2D = CompressedImageView[Vector2]
	CompressedImageView3D = CompressedImageView[Vector3]
)

// NewCompressedImageView creates a view of compressed data.
func NewCompressedImageView[S Size](storage CompressedStorage, format CompressedPixelFormat, size S, data []byte) (*CompressedImageView[S], error) {
	if err := checkCompressedFormat("NewCompressedImageView", format); err != nil {
		return nil, err
	}
	if err := checkCompressedData("NewCompressedImageView", storage, size, data); err != nil {
		return nil, err
	}
	return &CompressedImageView[S]{storage: storage, format: format, size: size, data: data}, nil
}

// NewCompressedImageViewNative creates a view of compressed data in a native
// format code.
func NewCompressedImageViewNative[S Size](storage CompressedStorage, format NativeCompressedFormat, size S, data []byte) (*CompressedImageView[S], error) {
	wrapped, err := WrapCompressedPixelFormat(format.Code())
	if err != nil {
		return nil, err
	}
	return NewCompressedImageView(storage, wrapped, size, data)
}

func (v *CompressedImageView[S]) Storage() CompressedStorage    { return v.storage }
func (v *CompressedImageView[S]) Format() CompressedPixelFormat { return v.format }
func (v *CompressedImageView[S]) Size() S                       { return v.size }
func (v *CompressedImageView[S]) Data() []byte                  { return v.data }

// DataProperties computes the block-granular layout of the viewed data.
func (v *CompressedImageView[S]) DataProperties() DataProperties[S] {
	return compressedDataPropertiesFor(v.storage, v.size)
}

// SetData points the view at another buffer. On error the view keeps the
// previous buffer.
func (v *CompressedImageView[S]) SetData(data []byte) error {
	if err := checkCompressedData("CompressedImageView.SetData", v.storage, v.size, data); err != nil {
		return err
	}
	v.data = data
	return nil
}

func checkCompressedFormat(fn string, format CompressedPixelFormat) error {
	if !format.IsImplementationSpecific() && !format.IsValid() {
		return invalidArgument(fn, "invalid format %v", format)
	}
	return nil
}

func checkCompressedData[S Size](fn string, storage CompressedStorage, size S, data []byte) error {
	if err := checkNonNegative(fn, "size", Pad(size)); err != nil {
		return err
	}
	props, ok := compressedLayoutFor(storage, size)
	if !ok {
		return invalidArgument(fn, "layout of size %v does not fit in memory", size)
	}
	if len(data) == 0 {
		return nil
	}
	if !storage.hasBlockProperties() {
		logUnchecked(fn, "no block properties", len(data))
		return nil
	}
	if len(data) < props.TotalSize {
		logRejected(fn, len(data), props.TotalSize)
		return dataTooSmall(fn, len(data), props.TotalSize)
	}
	return nil
}
