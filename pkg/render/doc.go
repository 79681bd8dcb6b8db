// Package render groups the output stages of graphwiz.
//
// # Overview
//
// Rendering happens in two steps, each in its own subpackage:
//
//   - [dot] turns a finished graph into Graphviz DOT text. It is pure,
//     deterministic and has no dependencies beyond package graph.
//   - [layout] runs Graphviz (embedded through WebAssembly) on DOT text and
//     returns SVG, PNG, JPG or PDF bytes, optionally through a cache.
//
// For example:
//
//	text := dot.RenderDigraph(g)
//	svg, err := layout.Render(ctx, text, layout.Options{Format: layout.FormatSVG})
//
// # Format Conversion
//
// PDF output is produced from SVG with the external rsvg-convert tool (from
// librsvg); see [layout.ToPDF].
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/graphwiz/pkg/render/dot
// [layout]: https://pkg.go.dev/github.com/matzehuels/graphwiz/pkg/render/layout
// [layout.ToPDF]: https://pkg.go.dev/github.com/matzehuels/graphwiz/pkg/render/layout#ToPDF
package render
