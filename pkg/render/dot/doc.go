// Package dot renders finished graphs as Graphviz DOT text.
//
// # Usage
//
// Build a graph with package graph, then pick one of the entrypoints:
//
//	g := b.Build()
//	text := dot.RenderDigraph(g)
//
// [Render] takes [Options] directly; [RenderGraph], [RenderDigraph],
// [RenderStrictGraph] and [RenderStrictDigraph] cover the four combinations.
//
// # Output
//
// Every scope becomes a block: the root as "digraph {" (or "graph {", with a
// "strict " prefix when requested) and each cluster or subgraph as
// "subgraph <name> {". Inside a block, lines are indented four spaces and
// appear in this order: the scope's own attributes, its nodes, its edges, and
// its child scopes. Entities are named after their kind and id, for example
// node_07 or cluster_12, with ids zero-padded to the width of the largest id
// in the graph. Cluster names start with "cluster", which is what makes
// Graphviz draw them as boxes.
//
// Edges whose endpoint was a cluster or subgraph carry lhead or ltail
// attributes naming that scope, which Graphviz uses to clip the edge at the
// scope's border (the graph's compound attribute is set by the builder).
//
// # Limitations
//
// Attribute values are written between double quotes as-is. A value containing
// a double quote produces invalid DOT; HTML-like labels are not supported.
package dot
