// Package layout turns DOT text into images with Graphviz.
//
// # Overview
//
// Graphviz runs in-process through [github.com/goccy/go-graphviz], so no
// system installation is needed for SVG, PNG and JPG output. PDF output is
// converted from SVG by rsvg-convert from librsvg, which must be on PATH.
//
//	text := dot.RenderDigraph(g)
//	svg, err := layout.Render(ctx, text, layout.Options{Format: layout.FormatSVG})
//
// # Engines
//
// [Options.Engine] picks the Graphviz layout program: dot for hierarchies,
// neato and fdp for spring models, sfdp for large graphs, circo, twopi, osage
// and patchwork for the rest. Only dot draws clusters and honors lhead and
// ltail.
//
// # Caching
//
// Layout is by far the slowest step. With [Options.Cache] set, results are
// stored under a key derived from the DOT source, the engine and the format,
// so repeated renders of an unchanged graph return immediately.
//
// # Errors
//
// Malformed DOT yields an error with code INVALID_DOT, unknown formats and
// engines INVALID_FORMAT and INVALID_INPUT, and a missing rsvg-convert
// UNSUPPORTED (see package errors).
package layout
