package pixel

import (
	"math"
	"math/bits"
)

// DataProperties describes where the pixels of an image live in its buffer.
//
// Offset is the byte offset contributed by the skip in each dimension,
// Stride the distance in bytes between consecutive pixels, rows and slices,
// and TotalSize the number of bytes the buffer has to provide.
type DataProperties[S Size] struct {
	Offset    S
	Stride    S
	TotalSize int
}

// Begin returns the byte offset of the first pixel.
func (p DataProperties[S]) Begin() int {
	return sum(p.Offset)
}

// DataProperties computes the layout of a three-dimensional image with the
// given pixel size. A pixel size of 0 marks data of unknown layout and yields
// all zeros.
func (s Storage) DataProperties(pixelSize int, size Vector3) DataProperties[Vector3] {
	return dataPropertiesFor(s, pixelSize, size)
}

// dataPropertiesFor computes the layout of an image of dimension S. A layout
// whose byte counts overflow int reports a TotalSize of math.MaxInt.
func dataPropertiesFor[S Size](s Storage, pixelSize int, size S) DataProperties[S] {
	p, _ := layoutFor(s, pixelSize, size)
	return p
}

// layoutFor is dataPropertiesFor that also reports whether the arithmetic
// stayed within int. Sizes with a negative component yield all zeros.
func layoutFor[S Size](s Storage, pixelSize int, size S) (DataProperties[S], bool) {
	v := Pad(size)
	if pixelSize <= 0 || hasNegative(v) {
		return DataProperties[S]{}, true
	}

	var c checked
	rowPixels := s.rowLength
	if rowPixels == 0 {
		rowPixels = v[0]
	}
	rowBytes := c.alignUp(c.mul(rowPixels, pixelSize), s.Alignment())

	rows := s.imageHeight
	if rows == 0 {
		rows = v[1]
	}
	stride := Vector3{pixelSize, rowBytes, c.mul(rowBytes, rows)}
	offset := Vector3{
		c.mul(s.skip[0], stride[0]),
		c.mul(s.skip[1], stride[1]),
		c.mul(s.skip[2], stride[2]),
	}

	last := rowBytes
	if d := Dimensions[S](); d > 1 {
		last = c.mul(stride[d-1], v[d-1])
	}
	return layoutResult[S](&c, offset, stride, last, isEmpty(size))
}

// DataProperties computes the block-granular layout of a three-dimensional
// compressed image. Without block properties the layout is unknown and all
// values are zero.
func (s CompressedStorage) DataProperties(size Vector3) DataProperties[Vector3] {
	return compressedDataPropertiesFor(s, size)
}

func compressedDataPropertiesFor[S Size](s CompressedStorage, size S) DataProperties[S] {
	p, _ := compressedLayoutFor(s, size)
	return p
}

func compressedLayoutFor[S Size](s CompressedStorage, size S) (DataProperties[S], bool) {
	v := Pad(size)
	if !s.hasBlockProperties() || hasNegative(v) {
		return DataProperties[S]{}, true
	}
	block := s.blockSize

	var c checked
	rowPixels := s.rowLength
	if rowPixels == 0 {
		rowPixels = v[0]
	}
	rowBytes := c.mul(divCeil(rowPixels, block[0]), s.blockDataSize)

	rows := s.imageHeight
	if rows == 0 {
		rows = v[1]
	}
	stride := Vector3{s.blockDataSize, rowBytes, c.mul(divCeil(rows, block[1]), rowBytes)}
	offset := Vector3{
		c.mul(s.skip[0]/block[0], stride[0]),
		c.mul(s.skip[1]/block[1], stride[1]),
		c.mul(s.skip[2]/block[2], stride[2]),
	}

	last := rowBytes
	if d := Dimensions[S](); d > 1 {
		last = c.mul(stride[d-1], divCeil(v[d-1], block[d-1]))
	}
	return layoutResult[S](&c, offset, stride, last, isEmpty(size))
}

// checked does layout arithmetic on non-negative ints and remembers whether
// any step overflowed. Overflowed results saturate at math.MaxInt.
type checked struct {
	overflow bool
}

func (c *checked) mul(a, b int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		c.overflow = true
		return math.MaxInt
	}
	return int(lo)
}

func (c *checked) add(a, b int) int {
	if a > math.MaxInt-b {
		c.overflow = true
		return math.MaxInt
	}
	return a + b
}

func (c *checked) alignUp(n, alignment int) int {
	return c.add(n, alignment-1) / alignment * alignment
}

// layoutResult assembles the data properties. The total stays zero for an
// empty size and saturates when any step overflowed.
func layoutResult[S Size](c *checked, offset, stride Vector3, last int, empty bool) (DataProperties[S], bool) {
	p := DataProperties[S]{
		Offset: truncate[S](offset),
		Stride: truncate[S](stride),
	}
	begin := 0
	for _, o := range offset[:Dimensions[S]()] {
		begin = c.add(begin, o)
	}
	if !empty {
		p.TotalSize = c.add(begin, last)
	}
	if c.overflow {
		p.TotalSize = math.MaxInt
		return p, false
	}
	return p, true
}

// divCeil divides non-negative n by positive d, rounding up.
func divCeil(n, d int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/d + 1
}

func hasNegative(v Vector3) bool {
	return v[0] < 0 || v[1] < 0 || v[2] < 0
}
