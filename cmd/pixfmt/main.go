// Command pixfmt lists the generic pixel formats with their native
// counterparts and prints the data layout of an image for a given storage.
//
//	pixfmt -list
//	pixfmt -backend gl -format RGB8Unorm -size 75x75 -skip 25x25
//	pixfmt -format Bc1RGBAUnorm -size 10x10
//	pixfmt -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixel"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("pixfmt: %v", err)
	}
}

type config struct {
	backend     string
	list        bool
	check       bool
	verbose     bool
	lang        string
	format      string
	size        string
	alignment   int
	rowLength   int
	imageHeight int
	skip        string
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("pixfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.backend, "backend", "", "native backend to describe (gl, webgpu, best); all when empty")
	fs.BoolVar(&cfg.list, "list", false, "list all generic formats")
	fs.BoolVar(&cfg.check, "check", false, "verify the mapping tables")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.StringVar(&cfg.lang, "lang", "en", "language for number formatting")
	fs.StringVar(&cfg.format, "format", "", "generic format name")
	fs.StringVar(&cfg.size, "size", "", "image size, WxH or WxHxD")
	fs.IntVar(&cfg.alignment, "align", 4, "row alignment")
	fs.IntVar(&cfg.rowLength, "row-length", 0, "row length in pixels")
	fs.IntVar(&cfg.imageHeight, "image-height", 0, "image height in rows")
	fs.StringVar(&cfg.skip, "skip", "", "skipped pixels, rows and images, XxYxZ")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.verbose {
		pixel.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer pixel.SetLogger(nil)
	}

	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("invalid -lang: %w", err)
	}
	p := message.NewPrinter(tag)

	registry := newRegistry()
	names, err := selectBackends(registry, cfg.backend)
	if err != nil {
		return err
	}

	switch {
	case cfg.check:
		return checkBackends(p, stdout, registry, names)
	case cfg.list:
		return list(stdout, registry, names)
	case cfg.format != "":
		return describe(p, stdout, registry, names, cfg)
	}
	fs.Usage()
	return errors.New("one of -list, -check or -format is required")
}

func selectBackends(r *gpucontext.Registry[backend], name string) ([]string, error) {
	available := r.Available()
	slices.Sort(available)
	switch {
	case name == "":
		return available, nil
	case name == "best":
		return []string{r.BestName()}, nil
	case !r.Has(name):
		return nil, fmt.Errorf("unknown backend %q, available: %s", name, strings.Join(available, ", "))
	}
	return []string{name}, nil
}

func checkBackends(p *message.Printer, w io.Writer, r *gpucontext.Registry[backend], names []string) error {
	var errs []error
	for _, name := range names {
		if err := r.Get(name).Check(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		p.Fprintf(w, "%s: %d formats, %d compressed formats ok\n", name, pixel.NumPixelFormats, pixel.NumCompressedPixelFormats)
	}
	return errors.Join(errs...)
}

func list(w io.Writer, r *gpucontext.Registry[backend], names []string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "FORMAT\tSIZE\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for f := range pixel.PixelFormats() {
		size, _ := pixel.PixelSize(f)
		fmt.Fprintf(tw, "%v\t%d", f, size)
		for _, name := range names {
			fmt.Fprintf(tw, "\t%s", r.Get(name).Describe(f))
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "FORMAT\tBLOCK\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for f := range pixel.CompressedPixelFormats() {
		block, _ := pixel.CompressedBlockSize(f)
		dataSize, _ := pixel.CompressedBlockDataSize(f)
		fmt.Fprintf(tw, "%v\t%dx%d/%dB", f, block[0], block[1], dataSize)
		for _, name := range names {
			fmt.Fprintf(tw, "\t%s", r.Get(name).DescribeCompressed(f))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func describe(p *message.Printer, w io.Writer, r *gpucontext.Registry[backend], names []string, cfg config) error {
	size, err := parseVector(cfg.size, 1)
	if err != nil {
		return fmt.Errorf("invalid -size: %w", err)
	}
	skip := [3]int{}
	if cfg.skip != "" {
		v, err := parseVector(cfg.skip, 0)
		if err != nil {
			return fmt.Errorf("invalid -skip: %w", err)
		}
		copy(skip[:], v)
	}
	opts := []pixel.StorageOption{
		pixel.WithAlignment(cfg.alignment),
		pixel.WithRowLength(cfg.rowLength),
		pixel.WithImageHeight(cfg.imageHeight),
		pixel.WithSkip(pixel.Vector3(skip)),
	}

	if f, err := pixel.ParsePixelFormat(cfg.format); err == nil {
		storage, err := pixel.NewStorage(opts...)
		if err != nil {
			return err
		}
		pixelSize, _ := pixel.PixelSize(f)
		p.Fprintf(w, "format: %v, %d bytes per pixel\n", f, pixelSize)
		for _, name := range names {
			fmt.Fprintf(w, "%s: %s\n", name, r.Get(name).Describe(f))
		}
		return printLayout(p, w, size, func(s []int) (layout, error) {
			return imageLayout(storage, f, s)
		})
	}

	f, err := pixel.ParseCompressedPixelFormat(cfg.format)
	if err != nil {
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	storage, err := pixel.CompressedStorageFor(f, opts...)
	if err != nil {
		return err
	}
	block := storage.CompressedBlockSize()
	p.Fprintf(w, "format: %v, %dx%dx%d blocks of %d bytes\n", f, block[0], block[1], block[2], storage.CompressedBlockDataSize())
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s\n", name, r.Get(name).DescribeCompressed(f))
	}
	return printLayout(p, w, size, func(s []int) (layout, error) {
		return compressedImageLayout(storage, f, s)
	})
}

// layout is a DataProperties flattened to the dimension count of the size.
type layout struct {
	offset, stride []int
	begin, total   int
}

func printLayout(p *message.Printer, w io.Writer, size []int, compute func([]int) (layout, error)) error {
	l, err := compute(size)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "offset: %v\nstride: %v\n", l.offset, l.stride)
	p.Fprintf(w, "begin: %d bytes\ntotal size: %d bytes\n", l.begin, l.total)
	return nil
}

func imageLayout(storage pixel.Storage, f pixel.PixelFormat, size []int) (layout, error) {
	switch len(size) {
	case 1:
		v, err := pixel.NewImageView(storage, f, pixel.Vector1(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	case 2:
		v, err := pixel.NewImageView(storage, f, pixel.Vector2(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	default:
		v, err := pixel.NewImageView(storage, f, pixel.Vector3(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	}
}

func compressedImageLayout(storage pixel.CompressedStorage, f pixel.CompressedPixelFormat, size []int) (layout, error) {
	switch len(size) {
	case 1:
		v, err := pixel.NewCompressedImageView(storage, f, pixel.Vector1(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	case 2:
		v, err := pixel.NewCompressedImageView(storage, f, pixel.Vector2(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	default:
		v, err := pixel.NewCompressedImageView(storage, f, pixel.Vector3(size), nil)
		if err != nil {
			return layout{}, err
		}
		return flatten(v.DataProperties()), nil
	}
}

func flatten[S pixel.Size](props pixel.DataProperties[S]) layout {
	d := pixel.Dimensions[S]()
	offset, stride := pixel.Pad(props.Offset), pixel.Pad(props.Stride)
	return layout{
		offset: offset[:d:d],
		stride: stride[:d:d],
		begin:  props.Begin(),
		total:  props.TotalSize,
	}
}

// parseVector parses "X", "XxY" or "XxYxZ". Components must be at least lowest.
func parseVector(s string, lowest int) ([]int, error) {
	if s == "" {
		return nil, errors.New("empty value")
	}
	parts := strings.Split(s, "x")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%q has more than three components", s)
	}
	v := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < lowest {
			return nil, fmt.Errorf("component %d of %q is below %d", i, s, lowest)
		}
		v[i] = n
	}
	return v, nil
}
