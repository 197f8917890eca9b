package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/gl"
	"github.com/gogpu/pixel/internal/enumcheck"
	"github.com/gogpu/pixel/webgpu"
)

// backend describes the native counterparts of the generic formats for one
// graphics API.
type backend interface {
	Describe(f pixel.PixelFormat) string
	DescribeCompressed(f pixel.CompressedPixelFormat) string
	// Check verifies that the mapping tables cover exactly the generic
	// enumerations.
	Check() error
}

// scanSlack is how far past the last enumerator Check probes.
const scanSlack = 256

func newRegistry() *gpucontext.Registry[backend] {
	r := gpucontext.NewRegistry[backend](gpucontext.WithPriority("webgpu", "gl"))
	r.Register("gl", func() backend { return glBackend{} })
	r.Register("webgpu", func() backend { return webgpuBackend{} })
	return r
}

type glBackend struct{}

func (glBackend) Describe(f pixel.PixelFormat) string {
	native, err := gl.FormatFor(f)
	if err != nil {
		return "-"
	}
	return native.String()
}

func (glBackend) DescribeCompressed(f pixel.CompressedPixelFormat) string {
	native, err := gl.CompressedPixelFormatFor(f)
	if err != nil {
		return "-"
	}
	return native.String()
}

func (glBackend) Check() error {
	err := checkTable(pixel.NumPixelFormats, func(code uint32) bool {
		_, err := gl.FormatFor(pixel.PixelFormat(code))
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("gl pixel formats: %w", err)
	}
	err = checkTable(pixel.NumCompressedPixelFormats, func(code uint32) bool {
		_, err := gl.CompressedPixelFormatFor(pixel.CompressedPixelFormat(code))
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("gl compressed pixel formats: %w", err)
	}
	return nil
}

type webgpuBackend struct{}

func (webgpuBackend) Describe(f pixel.PixelFormat) string {
	tf, err := webgpu.TextureFormatFor(f)
	if err != nil {
		return "-"
	}
	return webgpu.Format(tf).String()
}

func (webgpuBackend) DescribeCompressed(f pixel.CompressedPixelFormat) string {
	tf, err := webgpu.CompressedTextureFormatFor(f)
	if err != nil {
		return "-"
	}
	feature, _ := webgpu.RequiredFeature(f)
	return fmt.Sprintf("%v (requires %v)", webgpu.CompressedFormat(tf), feature)
}

// Check counts unsupported entries as handled: they are explicit in the
// tables, only out-of-range values are rejected as invalid.
func (webgpuBackend) Check() error {
	err := checkTable(pixel.NumPixelFormats, func(code uint32) bool {
		_, err := webgpu.TextureFormatFor(pixel.PixelFormat(code))
		return !errors.Is(err, pixel.ErrInvalidArgument)
	})
	if err != nil {
		return fmt.Errorf("webgpu pixel formats: %w", err)
	}
	err = checkTable(pixel.NumCompressedPixelFormats, func(code uint32) bool {
		_, err := webgpu.CompressedTextureFormatFor(pixel.CompressedPixelFormat(code))
		return !errors.Is(err, pixel.ErrInvalidArgument)
	})
	if err != nil {
		return fmt.Errorf("webgpu compressed pixel formats: %w", err)
	}
	return nil
}

func checkTable(count int, handled func(code uint32) bool) error {
	n, err := enumcheck.Scan(1, uint32(count)+scanSlack, handled)
	if err != nil {
		return err
	}
	if n != count {
		return fmt.Errorf("%w: %d of %d enumerators mapped", enumcheck.ErrNotContiguous, n, count)
	}
	return nil
}
