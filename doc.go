// Package pixel describes pixel data for graphics APIs.
//
// It provides portable pixel format enumerations, byte layout arithmetic and
// dimension-generic image containers. Native graphics APIs plug in through
// the gl and webgpu subpackages, which map the generic formats to native
// codes and adapt native formats to the NativeFormat interface.
//
// # Formats
//
// PixelFormat and CompressedPixelFormat are 32-bit values. Generic formats
// are small contiguous enumerators; native codes are carried by wrapping them
// with the highest bit set:
//
//	f, err := pixel.WrapPixelFormat(0x8d9f)
//	fmt.Println(f) // PixelFormat::ImplementationSpecific(0x8d9f)
//
// # Layout
//
// A Storage describes row alignment, row length, image height and skip.
// Combined with a pixel size and an image size it yields DataProperties:
// per-dimension offsets and strides and the number of bytes a buffer needs.
//
//	s, _ := pixel.NewStorage(pixel.WithAlignment(1))
//	p := s.DataProperties(3, pixel.Vector3{2, 3, 1}) // TotalSize 18
//
// # Images
//
// Image owns its buffer, ImageView borrows one. Both are generic over the
// dimension vector (Vector1, Vector2, Vector3) and validate buffers against
// the layout on construction:
//
//	img, err := pixel.NewImage(pixel.Storage{}, pixel.RGBA8Unorm, pixel.Vector2{4, 4}, data)
//	if errors.Is(err, pixel.ErrDataTooSmall) {
//	    // ...
//	}
//
// CompressedImage and CompressedImageView carry block-compressed data whose
// layout is only known when the CompressedStorage has block parameters.
//
// All functions are safe for concurrent use; containers are not.
package pixel
