// Package pkg provides the libraries behind graphwiz.
//
// # Overview
//
// graphwiz builds Graphviz graphs through a scoped builder API and renders
// them as DOT text. The pkg directory is organized as:
//
//  1. [graph] - entity store and scoped builders (nodes, edges, clusters, subgraphs)
//  2. [render] - DOT text ([render/dot]) and Graphviz layout ([render/layout])
//  3. [manifest] - declarative TOML, JSON and YAML graph descriptions
//  4. [cache] - file, Redis and no-op caches for rendered layouts
//  5. [server] - HTTP render service
//  6. [attrs], [errors], [observability], [buildinfo] - shared support
//
// # Architecture
//
// The typical data flow:
//
//	Manifest file or HTTP body
//	         ↓
//	    [manifest] package (decode, validate references)
//	         ↓
//	    [graph] package (builders, finished *Graph)
//	         ↓
//	    [render/dot] package (DOT text)
//	         ↓
//	    [render/layout] package (Graphviz: SVG/PNG/JPG/PDF, cached)
//
// # Quick Start
//
//	b := graph.NewBuilder()
//	a := b.NewNode("a")
//	box := b.WithCluster("box", func(sb *graph.SubgraphBuilder) {
//	    sb.NewNode("c")
//	})
//	b.NewEdge(a, box)
//	fmt.Println(dot.RenderDigraph(b.Build()))
package pkg
