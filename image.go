package pixel

// View is the read-only surface shared by Image and ImageView. Native
// upload helpers accept a View so both can be handed to them.
type View[S Size] interface {
	Storage() Storage
	Format() PixelFormat
	FormatExtra() uint32
	PixelSize() int
	Size() S
	Data() []byte
	DataProperties() DataProperties[S]
}

// Image is an owning container of uncompressed pixel data of dimension S.
//
// An Image takes ownership of the buffer it is created with and must not be
// copied; use Move or Swap to transfer it. The zero value is an empty
// placeholder.
type Image[S Size] struct {
	_ noCopy

	storage     Storage
	format      PixelFormat
	formatExtra uint32
	pixelSize   int
	size        S
	data        []byte
}

type (
	Image1D = Image[Vector1]
	Image2D = Image[Vector2]
	Image3D = Image[Vector3]
)

// NewImage creates an image of a generic format. The pixel size is derived
// from the format and data, if not empty, must be large enough for the
// layout described by storage and size. The image takes ownership of data.
func NewImage[S Size](storage Storage, format PixelFormat, size S, data []byte) (*Image[S], error) {
	pixelSize, err := PixelSize(format)
	if err != nil {
		return nil, err
	}
	return newImage("NewImage", storage, format, 0, pixelSize, size, data)
}

// NewImageWithExtra creates an image of a generic or implementation-specific
// format with explicit native format information and pixel size, for data
// whose pixel size differs from the one PixelSize reports. The format is
// stored as given.
func NewImageWithExtra[S Size](storage Storage, format PixelFormat, formatExtra uint32, pixelSize int, size S, data []byte) (*Image[S], error) {
	if !format.IsImplementationSpecific() && !format.IsValid() {
		return nil, invalidArgument("NewImageWithExtra", "invalid format %v", format)
	}
	return newImage("NewImageWithExtra", storage, format, formatExtra, pixelSize, size, data)
}

// NewImageNative creates an image of a native format described by an
// adapter such as gl.Format or webgpu.Format.
func NewImageNative[S Size](storage Storage, format NativeFormat, size S, data []byte) (*Image[S], error) {
	return newImageImplementationSpecific("NewImageNative", storage, format.Code(), format.Extra(), format.PixelSize(), size, data)
}

// NewImageImplementationSpecific creates an image of a native format code
// with an explicit pixel size. A pixel size of 0 skips size validation.
func NewImageImplementationSpecific[S Size](storage Storage, format, formatExtra uint32, pixelSize int, size S, data []byte) (*Image[S], error) {
	return newImageImplementationSpecific("NewImageImplementationSpecific", storage, format, formatExtra, pixelSize, size, data)
}

func newImageImplementationSpecific[S Size](fn string, storage Storage, format, formatExtra uint32, pixelSize int, size S, data []byte) (*Image[S], error) {
	wrapped, err := WrapPixelFormat(format)
	if err != nil {
		return nil, err
	}
	return newImage(fn, storage, wrapped, formatExtra, pixelSize, size, data)
}

func newImage[S Size](fn string, storage Storage, format PixelFormat, formatExtra uint32, pixelSize int, size S, data []byte) (*Image[S], error) {
	if pixelSize < 0 {
		return nil, invalidArgument(fn, "pixel size %d is negative", pixelSize)
	}
	if err := checkData(fn, storage, pixelSize, size, data); err != nil {
		return nil, err
	}
	return &Image[S]{storage: storage, format: format, formatExtra: formatExtra, pixelSize: pixelSize, size: size, data: data}, nil
}

// Storage returns the storage parameters.
func (img *Image[S]) Storage() Storage { return img.storage }

// Format returns the pixel format.
func (img *Image[S]) Format() PixelFormat { return img.format }

// FormatExtra returns the additional native format information, such as the
// GL pixel type. Zero for generic formats.
func (img *Image[S]) FormatExtra() uint32 { return img.formatExtra }

// PixelSize returns the size of one pixel in bytes.
func (img *Image[S]) PixelSize() int { return img.pixelSize }

// Size returns the image size.
func (img *Image[S]) Size() S { return img.size }

// Data returns the image buffer.
func (img *Image[S]) Data() []byte { return img.data }

// DataProperties computes the layout of the image data.
func (img *Image[S]) DataProperties() DataProperties[S] {
	return dataPropertiesFor(img.storage, img.pixelSize, img.size)
}

// SetData replaces the buffer, keeping storage, format and size. On error the
// previous buffer stays in place.
func (img *Image[S]) SetData(data []byte) error {
	if err := checkData("Image.SetData", img.storage, img.pixelSize, img.size, data); err != nil {
		return err
	}
	img.data = data
	return nil
}

// Move transfers the size and data into a new image. img keeps its storage
// and format but is left with a zero size and no data.
func (img *Image[S]) Move() *Image[S] {
	moved := &Image[S]{
		storage:     img.storage,
		format:      img.format,
		formatExtra: img.formatExtra,
		pixelSize:   img.pixelSize,
		size:        img.size,
		data:        img.data,
	}
	var zero S
	img.size = zero
	img.data = nil
	return moved
}

// Swap exchanges the contents of img and other.
func (img *Image[S]) Swap(other *Image[S]) {
	img.storage, other.storage = other.storage, img.storage
	img.format, other.format = other.format, img.format
	img.formatExtra, other.formatExtra = other.formatExtra, img.formatExtra
	img.pixelSize, other.pixelSize = other.pixelSize, img.pixelSize
	img.size, other.size = other.size, img.size
	img.data, other.data = other.data, img.data
}

// Release transfers the buffer out of the image and resets the size to zero.
// Calling it again returns nil.
func (img *Image[S]) Release() []byte {
	data := img.data
	var zero S
	img.size = zero
	img.data = nil
	return data
}

// View returns a view borrowing the image data. The view is valid as long as
// the image keeps the buffer.
func (img *Image[S]) View() *ImageView[S] {
	return &ImageView[S]{
		storage:     img.storage,
		format:      img.format,
		formatExtra: img.formatExtra,
		pixelSize:   img.pixelSize,
		size:        img.size,
		data:        img.data,
	}
}

// checkData validates the size of an image and that data covers its layout.
// Empty data is a placeholder and always accepted.
func checkData[S Size](fn string, storage Storage, pixelSize int, size S, data []byte) error {
	if err := checkNonNegative(fn, "size", Pad(size)); err != nil {
		return err
	}
	props, ok := layoutFor(storage, pixelSize, size)
	if !ok {
		return invalidArgument(fn, "layout of size %v does not fit in memory", size)
	}
	if len(data) == 0 {
		return nil
	}
	if pixelSize == 0 {
		logUnchecked(fn, "opaque format", len(data))
		return nil
	}
	if len(data) < props.TotalSize {
		logRejected(fn, len(data), props.TotalSize)
		return dataTooSmall(fn, len(data), props.TotalSize)
	}
	return nil
}
