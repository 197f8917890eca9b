// Package glstate tracks the GL pixel pack and unpack storage state.
//
// GL applies glPixelStorei parameters to every subsequent transfer, so a
// renderer switching between images of different layouts has to keep the
// driver state in sync. PixelStorageState caches what was last set and only
// issues PixelStorei for parameters that differ.
//
// The package drives a golang.org/x/mobile/gl Context, which needs cgo and
// the GLES headers on linux. Build with CGO_ENABLED=0 when only the
// bookkeeping is needed.
package glstate

import (
	"fmt"

	"github.com/gogpu/pixel"
	mobilegl "golang.org/x/mobile/gl"
)

// PixelStorer is the GL entry point used by PixelStorageState. It is
// satisfied by golang.org/x/mobile/gl.Context.
type PixelStorer interface {
	PixelStorei(pname mobilegl.Enum, param int32)
}

var _ PixelStorer = mobilegl.Context(nil)

// Desktop GL parameters not present in the ES headers.
const (
	packSkipImages   mobilegl.Enum = 0x806B
	packImageHeight  mobilegl.Enum = 0x806C
	unpackBlockW     mobilegl.Enum = 0x9127
	unpackBlockH     mobilegl.Enum = 0x9128
	unpackBlockD     mobilegl.Enum = 0x9129
	unpackBlockBytes mobilegl.Enum = 0x912A
	packBlockW       mobilegl.Enum = 0x912B
	packBlockH       mobilegl.Enum = 0x912C
	packBlockD       mobilegl.Enum = 0x912D
	packBlockBytes   mobilegl.Enum = 0x912E
)

// Target selects the GL flavor whose parameters are available.
type Target uint8

const (
	// TargetDesktop is desktop OpenGL 4.2 or newer.
	TargetDesktop Target = iota
	// TargetES is OpenGL ES 3.0, which has no pack image height, pack skip
	// images and compressed block parameters.
	TargetES
)

func (t Target) String() string {
	switch t {
	case TargetDesktop:
		return "Desktop"
	case TargetES:
		return "ES"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

// StateOption configures a PixelStorageState during creation.
type StateOption func(*stateOptions)

type stateOptions struct {
	target Target
}

// WithTarget sets the GL flavor. The default is TargetDesktop.
func WithTarget(t Target) StateOption {
	return func(o *stateOptions) {
		o.target = t
	}
}

// parameters lists the pname of each storage parameter of one direction.
// A zero pname is not available on the target.
type parameters struct {
	alignment, rowLength, imageHeight mobilegl.Enum
	skip                              [3]mobilegl.Enum
	blockSize                         [3]mobilegl.Enum
	blockDataSize                     mobilegl.Enum
}

var (
	unpackDesktop = parameters{
		alignment:     mobilegl.UNPACK_ALIGNMENT,
		rowLength:     mobilegl.UNPACK_ROW_LENGTH,
		imageHeight:   mobilegl.UNPACK_IMAGE_HEIGHT,
		skip:          [3]mobilegl.Enum{mobilegl.UNPACK_SKIP_PIXELS, mobilegl.UNPACK_SKIP_ROWS, mobilegl.UNPACK_SKIP_IMAGES},
		blockSize:     [3]mobilegl.Enum{unpackBlockW, unpackBlockH, unpackBlockD},
		blockDataSize: unpackBlockBytes,
	}
	packDesktop = parameters{
		alignment:     mobilegl.PACK_ALIGNMENT,
		rowLength:     mobilegl.PACK_ROW_LENGTH,
		imageHeight:   packImageHeight,
		skip:          [3]mobilegl.Enum{mobilegl.PACK_SKIP_PIXELS, mobilegl.PACK_SKIP_ROWS, packSkipImages},
		blockSize:     [3]mobilegl.Enum{packBlockW, packBlockH, packBlockD},
		blockDataSize: packBlockBytes,
	}
	unpackES = parameters{
		alignment:   mobilegl.UNPACK_ALIGNMENT,
		rowLength:   mobilegl.UNPACK_ROW_LENGTH,
		imageHeight: mobilegl.UNPACK_IMAGE_HEIGHT,
		skip:        [3]mobilegl.Enum{mobilegl.UNPACK_SKIP_PIXELS, mobilegl.UNPACK_SKIP_ROWS, mobilegl.UNPACK_SKIP_IMAGES},
	}
	packES = parameters{
		alignment: mobilegl.PACK_ALIGNMENT,
		rowLength: mobilegl.PACK_ROW_LENGTH,
		skip:      [3]mobilegl.Enum{mobilegl.PACK_SKIP_PIXELS, mobilegl.PACK_SKIP_ROWS, 0},
	}
)

// disengaged marks a cached value as unknown so the next apply sets it.
const disengaged = -1

// cache holds the last values set for one direction.
type cache struct {
	alignment, rowLength, imageHeight int32
	skip                              [3]int32
	blockSize                         [3]int32
	blockDataSize                     int32
}

// glDefaults is the state of a fresh GL context.
var glDefaults = cache{alignment: 4}

var disengagedCache = cache{
	alignment:     disengaged,
	rowLength:     disengaged,
	imageHeight:   disengaged,
	skip:          [3]int32{disengaged, disengaged, disengaged},
	blockSize:     [3]int32{disengaged, disengaged, disengaged},
	blockDataSize: disengaged,
}

// PixelStorageState caches the pack and unpack pixel storage state of one GL
// context. It is not safe for concurrent use, like the context it tracks.
type PixelStorageState struct {
	gl     PixelStorer
	target Target

	packParams, unpackParams parameters
	pack, unpack             cache
}

// NewPixelStorageState creates a state tracker for a fresh context, whose
// parameters are at their GL defaults.
func NewPixelStorageState(gl PixelStorer, opts ...StateOption) *PixelStorageState {
	var o stateOptions
	for _, opt := range opts {
		opt(&o)
	}
	s := &PixelStorageState{
		gl:           gl,
		target:       o.target,
		packParams:   packDesktop,
		unpackParams: unpackDesktop,
		pack:         glDefaults,
		unpack:       glDefaults,
	}
	if o.target == TargetES {
		s.packParams, s.unpackParams = packES, unpackES
	}
	return s
}

// Target returns the GL flavor the state was created for.
func (s *PixelStorageState) Target() Target { return s.target }

// Reset forgets the cached state, so the next apply sets every parameter.
// Call it after foreign code touched the context.
func (s *PixelStorageState) Reset() {
	s.pack = disengagedCache
	s.unpack = disengagedCache
}

// ApplyUnpack makes storage the current unpack state, used by texture
// uploads.
func (s *PixelStorageState) ApplyUnpack(storage pixel.Storage) error {
	return s.apply("ApplyUnpack", &s.unpackParams, &s.unpack, storage)
}

// ApplyPack makes storage the current pack state, used by pixel reads.
func (s *PixelStorageState) ApplyPack(storage pixel.Storage) error {
	return s.apply("ApplyPack", &s.packParams, &s.pack, storage)
}

// ApplyCompressedUnpack makes storage the current unpack state including
// the compressed block parameters.
func (s *PixelStorageState) ApplyCompressedUnpack(storage pixel.CompressedStorage) error {
	return s.applyCompressed("ApplyCompressedUnpack", &s.unpackParams, &s.unpack, storage)
}

// ApplyCompressedPack makes storage the current pack state including the
// compressed block parameters.
func (s *PixelStorageState) ApplyCompressedPack(storage pixel.CompressedStorage) error {
	return s.applyCompressed("ApplyCompressedPack", &s.packParams, &s.pack, storage)
}

func (s *PixelStorageState) apply(fn string, p *parameters, c *cache, storage pixel.Storage) error {
	skip := storage.Skip()
	if err := s.set(fn, p.alignment, &c.alignment, storage.Alignment(), 4); err != nil {
		return err
	}
	if err := s.set(fn, p.rowLength, &c.rowLength, storage.RowLength(), 0); err != nil {
		return err
	}
	if err := s.set(fn, p.imageHeight, &c.imageHeight, storage.ImageHeight(), 0); err != nil {
		return err
	}
	for i := range skip {
		if err := s.set(fn, p.skip[i], &c.skip[i], skip[i], 0); err != nil {
			return err
		}
	}
	return nil
}

func (s *PixelStorageState) applyCompressed(fn string, p *parameters, c *cache, storage pixel.CompressedStorage) error {
	if err := s.apply(fn, p, c, storage.Storage); err != nil {
		return err
	}
	block := storage.CompressedBlockSize()
	for i := range block {
		if err := s.set(fn, p.blockSize[i], &c.blockSize[i], block[i], 0); err != nil {
			return err
		}
	}
	return s.set(fn, p.blockDataSize, &c.blockDataSize, storage.CompressedBlockDataSize(), 0)
}

// set issues PixelStorei when value differs from the cached one. A
// parameter missing on the target only accepts its default value.
func (s *PixelStorageState) set(fn string, pname mobilegl.Enum, cached *int32, value, def int) error {
	if pname == 0 {
		if value != def {
			return fmt.Errorf("glstate: %s(): parameter with value %d is not available on %v: %w", fn, value, s.target, pixel.ErrInvalidArgument)
		}
		return nil
	}
	v := int32(value)
	if *cached == v {
		return nil
	}
	s.gl.PixelStorei(pname, v)
	*cached = v
	pixel.Logger().Debug("glstate: pixel storage changed", "pname", fmt.Sprintf("%#x", uint32(pname)), "value", v)
	return nil
}
