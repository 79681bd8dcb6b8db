package layout

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphwiz/pkg/cache"
	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/observability"
)

// Format is an output image format.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	// FormatPDF is converted from SVG with rsvg-convert (librsvg).
	FormatPDF Format = "pdf"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatJPG, FormatPDF}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJPG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if s == "jpeg" {
		f = FormatJPG
	}
	if !slices.Contains(Formats(), f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", s, Formats())
	}
	return f, nil
}

// Engine is a Graphviz layout engine.
type Engine string

// Supported engines.
const (
	EngineDot       Engine = "dot"
	EngineNeato     Engine = "neato"
	EngineFdp       Engine = "fdp"
	EngineSfdp      Engine = "sfdp"
	EngineCirco     Engine = "circo"
	EngineTwopi     Engine = "twopi"
	EngineOsage     Engine = "osage"
	EnginePatchwork Engine = "patchwork"
)

// Engines returns all supported engines.
func Engines() []Engine {
	return []Engine{EngineDot, EngineNeato, EngineFdp, EngineSfdp, EngineCirco, EngineTwopi, EngineOsage, EnginePatchwork}
}

// ParseEngine validates an engine name. The empty string selects dot.
func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return EngineDot, nil
	}
	e := Engine(s)
	if !slices.Contains(Engines(), e) {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown layout engine %q (want one of %v)", s, Engines())
	}
	return e, nil
}

// Options configures [Render].
type Options struct {
	Format Format // defaults to svg
	Engine Engine // defaults to dot

	// Responsive replaces the fixed size of SVG output with a viewBox so the
	// image scales with its container.
	Responsive bool

	// Cache, when set, is consulted before running Graphviz and filled
	// afterwards. Cache failures are reported to the observability hooks and
	// otherwise ignored.
	Cache cache.Cache
	// Keyer builds the cache keys; nil uses the default keyer.
	Keyer cache.Keyer
	// TTL of new cache entries; zero stores without expiry.
	TTL time.Duration
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if o.Engine == "" {
		o.Engine = EngineDot
	}
	if o.Keyer == nil {
		o.Keyer = cache.NewDefaultKeyer()
	}
	return o
}

// Render lays out the DOT source with Graphviz and returns the image bytes.
func Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if _, err := ParseEngine(string(opts.Engine)); err != nil {
		return nil, err
	}

	key := opts.Keyer.LayoutKey(cache.Hash([]byte(dot)), cache.LayoutKeyOpts{
		Engine:     string(opts.Engine),
		Format:     string(opts.Format),
		Responsive: opts.Responsive,
	})
	if opts.Cache != nil {
		if data, ok, err := opts.Cache.Get(ctx, key); err == nil && ok {
			return data, nil
		}
	}

	observability.Pipeline().OnLayoutStart(ctx, string(opts.Engine), string(opts.Format))
	start := time.Now()
	data, err := render(ctx, dot, opts)
	observability.Pipeline().OnLayoutComplete(ctx, string(opts.Engine), string(opts.Format), len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		_ = opts.Cache.Set(ctx, key, data, opts.TTL)
	}
	return data, nil
}

func render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	if opts.Format == FormatPDF {
		svgOpts := opts
		svgOpts.Format = FormatSVG
		svg, err := render(ctx, dot, svgOpts)
		if err != nil {
			return nil, err
		}
		return ToPDF(ctx, svg)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(opts.Engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDOT, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format(opts.Format), &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s with %s", opts.Format, opts.Engine)
	}
	if opts.Format == FormatSVG && opts.Responsive {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// Validate parses the DOT source without laying it out.
func Validate(dot string) error {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDOT, err, "parse DOT")
	}
	return g.Close()
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
