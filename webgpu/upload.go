package webgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixel"
	"github.com/gogpu/wgpu"
)

// TextureWriter writes data into a texture. It is satisfied by *wgpu.Queue.
type TextureWriter interface {
	WriteTexture(dst *wgpu.ImageCopyTexture, data []byte, layout *wgpu.ImageDataLayout, size *wgpu.Extent3D) error
}

var _ TextureWriter = (*wgpu.Queue)(nil)

// WriteImage writes the pixels of an image to dst, honoring the image's
// storage parameters.
//
//	img, _ := pixel.NewImage(pixel.Storage{}, pixel.RGBA8Unorm, pixel.Vector2{256, 256}, data)
//	err := webgpu.WriteImage(device.Queue(), &wgpu.ImageCopyTexture{Texture: tex}, img)
func WriteImage[S pixel.Size](w TextureWriter, dst *wgpu.ImageCopyTexture, v pixel.View[S]) error {
	if len(v.Data()) == 0 {
		return fmt.Errorf("webgpu: WriteImage(): image has no data: %w", pixel.ErrInvalidArgument)
	}
	layout, extent, err := DataLayout(v)
	if err != nil {
		return err
	}
	return write("WriteImage", w, dst, v.Data(), layout, extent)
}

// WriteCompressedImage writes the blocks of a compressed image to dst.
func WriteCompressedImage[S pixel.Size](w TextureWriter, dst *wgpu.ImageCopyTexture, v pixel.CompressedView[S]) error {
	if len(v.Data()) == 0 {
		return fmt.Errorf("webgpu: WriteCompressedImage(): image has no data: %w", pixel.ErrInvalidArgument)
	}
	layout, extent, err := CompressedDataLayout(v)
	if err != nil {
		return err
	}
	return write("WriteCompressedImage", w, dst, v.Data(), layout, extent)
}

func write(fn string, w TextureWriter, dst *wgpu.ImageCopyTexture, data []byte, layout gputypes.TextureDataLayout, extent gputypes.Extent3D) error {
	err := w.WriteTexture(dst, data,
		&wgpu.ImageDataLayout{Offset: layout.Offset, BytesPerRow: layout.BytesPerRow, RowsPerImage: layout.RowsPerImage},
		&wgpu.Extent3D{Width: extent.Width, Height: extent.Height, DepthOrArrayLayers: extent.DepthOrArrayLayers},
	)
	if err != nil {
		return fmt.Errorf("webgpu: %s(): %w", fn, err)
	}
	return nil
}

// UpdateRegion hands a two-dimensional image of four-byte pixels to u at
// (x, y). The updater expects densely packed rows, so rows padded by
// alignment or row length, and skipped pixels, are repacked into a new
// buffer first. An empty image updates nothing.
func UpdateRegion(u gpucontext.TextureRegionUpdater, x, y int, v pixel.View[pixel.Vector2]) error {
	if v.PixelSize() != 4 || (!v.Format().IsImplementationSpecific() && v.Format().Channels() != 4) {
		return fmt.Errorf("webgpu: UpdateRegion(): %v is not a four-channel byte format: %w", v.Format(), ErrUnsupported)
	}
	size := v.Size()
	w, h := size[0], size[1]
	if w <= 0 || h <= 0 {
		return nil
	}
	data := v.Data()
	if len(data) == 0 {
		return fmt.Errorf("webgpu: UpdateRegion(): image has no data: %w", pixel.ErrInvalidArgument)
	}

	props := v.DataProperties()
	rowBytes := w * 4
	begin := props.Begin()
	if props.Stride[1] < rowBytes {
		return fmt.Errorf("webgpu: UpdateRegion(): row length %d is shorter than the width %d: %w", v.Storage().RowLength(), w, pixel.ErrInvalidArgument)
	}
	if end := begin + (h-1)*props.Stride[1] + rowBytes; begin < 0 || end > len(data) {
		return fmt.Errorf("webgpu: UpdateRegion(): got %d bytes but the region ends at byte %d: %w", len(data), end, pixel.ErrDataTooSmall)
	}

	packed := data[begin : begin+rowBytes*h]
	if props.Stride[1] != rowBytes {
		pixel.Logger().Debug("webgpu: repacking rows", "width", w, "height", h, "stride", props.Stride[1])
		packed = make([]byte, rowBytes*h)
		for row := range h {
			src := begin + row*props.Stride[1]
			copy(packed[row*rowBytes:(row+1)*rowBytes], data[src:src+rowBytes])
		}
	}
	if err := u.UpdateRegion(x, y, w, h, packed); err != nil {
		return fmt.Errorf("webgpu: UpdateRegion(): %w", err)
	}
	return nil
}
