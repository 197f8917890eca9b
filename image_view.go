package pixel

// ImageView is a non-owning view of uncompressed pixel data of dimension S.
//
// The caller must keep the viewed buffer alive and unmodified for as long as
// the view is used. Copying a view copies the borrow, not the data.
type ImageView[S Size] struct {
	storage     Storage
	format      PixelFormat
	formatExtra uint32
	pixelSize   int
	size        S
	data        []byte
}

type (
	ImageView1D = ImageView[Vector1]
	ImageView2D = ImageView[Vector2]
	ImageView3D = ImageView[Vector3]
)

// NewImageView creates a view of data in a generic format.
func NewImageView[S Size](storage Storage, format PixelFormat, size S, data []byte) (*ImageView[S], error) {
	pixelSize, err := PixelSize(format)
	if err != nil {
		return nil, err
	}
	return newImageView("NewImageView", storage, format, 0, pixelSize, size, data)
}

// NewImageViewWithExtra creates a view of data in a generic or
// implementation-specific format with explicit native format information and
// pixel size. The format is stored as given.
func NewImageViewWithExtra[S Size](storage Storage, format PixelFormat, formatExtra uint32, pixelSize int, size S, data []byte) (*ImageView[S], error) {
	if !format.IsImplementationSpecific() && !format.IsValid() {
		return nil, invalidArgument("NewImageViewWithExtra", "invalid format %v", format)
	}
	return newImageView("NewImageViewWithExtra", storage, format, formatExtra, pixelSize, size, data)
}

// NewImageViewNative creates a view of data in a native format.
func NewImageViewNative[S Size](storage Storage, format NativeFormat, size S, data []byte) (*ImageView[S], error) {
	return newImageViewImplementationSpecific("NewImageViewNative", storage, format.Code(), format.Extra(), format.PixelSize(), size, data)
}

// NewImageViewImplementationSpecific creates a view of data in a native
// format code with an explicit pixel size.
func NewImageViewImplementationSpecific[S Size](storage Storage, format, formatExtra uint32, pixelSize int, size S, data []byte) (*ImageView[S], error) {
	return newImageViewImplementationSpecific("NewImageViewImplementationSpecific", storage, format, formatExtra, pixelSize, size, data)
}

func newImageViewImplementationSpecific[S Size](fn string, storage Storage, format, formatExtra uint32, pixelSize int, size S, data []byte) (*ImageView[S], error) {
	wrapped, err := WrapPixelFormat(format)
	if err != nil {
		return nil, err
	}
	return newImageView(fn, storage, wrapped, formatExtra, pixelSize, size, data)
}

func newImageView[S Size](fn string, storage Storage, format PixelFormat, formatExtra uint32, pixelSize int, size S, data []byte) (*ImageView[S], error) {
	if pixelSize < 0 {
		return nil, invalidArgument(fn, "pixel size %d is negative", pixelSize)
	}
	if err := checkData(fn, storage, pixelSize, size, data); err != nil {
		return nil, err
	}
	return &ImageView[S]{storage: storage, format: format, formatExtra: formatExtra, pixelSize: pixelSize, size: size, data: data}, nil
}

func (v *ImageView[S]) Storage() Storage    { return v.storage }
func (v *ImageView[S]) Format() PixelFormat { return v.format }
func (v *ImageView[S]) FormatExtra() uint32 { return v.formatExtra }
func (v *ImageView[S]) PixelSize() int      { return v.pixelSize }
func (v *ImageView[S]) Size() S             { return v.size }
func (v *ImageView[S]) Data() []byte        { return v.data }

// DataProperties computes the layout of the viewed data.
func (v *ImageView[S]) DataProperties() DataProperties[S] {
	return dataPropertiesFor(v.storage, v.pixelSize, v.size)
}

// SetData points the view at another buffer of the same layout. On error the
// view keeps the previous buffer.
func (v *ImageView[S]) SetData(data []byte) error {
	if err := checkData("ImageView.SetData", v.storage, v.pixelSize, v.size, data); err != nil {
		return err
	}
	v.data = data
	return nil
}
