package webgpu

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixel"
)

// DataLayout converts the layout of an image into the data layout and copy
// size of a WebGPU texture write. Images of unknown pixel size yield
// ErrUnsupported.
func DataLayout[S pixel.Size](v pixel.View[S]) (gputypes.TextureDataLayout, gputypes.Extent3D, error) {
	if v.PixelSize() == 0 {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, fmt.Errorf("webgpu: DataLayout(): %v has no known pixel size: %w", v.Format(), ErrUnsupported)
	}
	storage := v.Storage()
	size := pixel.Pad(v.Size())
	props := storage.DataProperties(v.PixelSize(), size)

	rows := storage.ImageHeight()
	if rows == 0 {
		rows = size[1]
	}
	return dataLayout("DataLayout", v.DataProperties().Begin(), props.Stride[1], rows, size)
}

// CompressedDataLayout converts the layout of a compressed image into the
// data layout and copy size of a WebGPU texture write. The storage must
// carry block parameters, as CompressedStorageFor provides; RowsPerImage is
// counted in block rows.
func CompressedDataLayout[S pixel.Size](v pixel.CompressedView[S]) (gputypes.TextureDataLayout, gputypes.Extent3D, error) {
	storage := v.Storage()
	block := storage.CompressedBlockSize()
	size := pixel.Pad(v.Size())
	props := storage.DataProperties(size)
	if props.Stride[0] == 0 {
		return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, fmt.Errorf("webgpu: CompressedDataLayout(): storage has no block properties: %w", ErrUnsupported)
	}

	rows := storage.ImageHeight()
	if rows == 0 {
		rows = size[1]
	}
	return dataLayout("CompressedDataLayout", v.DataProperties().Begin(), props.Stride[1], (rows+block[1]-1)/block[1], size)
}

func dataLayout(fn string, offset, bytesPerRow, rowsPerImage int, size pixel.Vector3) (gputypes.TextureDataLayout, gputypes.Extent3D, error) {
	values := [...]int{bytesPerRow, rowsPerImage, size[0], size[1], size[2]}
	for _, n := range values {
		if n < 0 || uint64(n) > math.MaxUint32 {
			return gputypes.TextureDataLayout{}, gputypes.Extent3D{}, fmt.Errorf("webgpu: %s(): %d does not fit a copy parameter: %w", fn, n, ErrUnsupported)
		}
	}
	layout := gputypes.TextureDataLayout{
		Offset:       uint64(offset),
		BytesPerRow:  uint32(bytesPerRow),
		RowsPerImage: uint32(rowsPerImage),
	}
	extent := gputypes.NewExtent3D(uint32(size[0]), uint32(size[1]), uint32(size[2]))
	return layout, extent, nil
}
