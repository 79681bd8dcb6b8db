// Package manifest describes graphs declaratively and builds them.
//
// # Format
//
// A manifest is a tree of scopes. The top level is the root graph and every
// scope may hold defaults, attributes, nodes, nested scopes and edges. TOML,
// JSON and YAML carry the same structure; in TOML:
//
//	directed = true
//
//	[defaults.node]
//	style = "filled"
//
//	[[nodes]]
//	id = "a"
//
//	[[scopes]]
//	kind = "cluster"
//	id = "box"
//
//	  [[scopes.nodes]]
//	  id = "c"
//	  attrs = { shape = "circle" }
//
//	[[edges]]
//	from = "box"
//	to = "a"
//
// Node labels default to the node id, cluster labels to the cluster id.
// Defaults are keyed by kind: node, edge, cluster or subgraph. Scopes inherit
// their parent's defaults as they were when the scope was declared.
//
// # References
//
// Ids are global. Edge endpoints may name a node, another edge (the new edge
// continues where that one ends) or a scope (the edge is clipped at the
// scope's border). Because each scope is built as nodes, child scopes, then
// edges, an edge may reference anything declared before it in that order.
//
// # Errors
//
// [Decode] rejects syntax errors and unknown keys with INVALID_MANIFEST.
// [Manifest.Build] reports bad or duplicate ids and attribute names as
// INVALID_MANIFEST, unresolved endpoints as INVALID_REFERENCE, and scope
// endpoints without any node as EMPTY_ENDPOINT. Error messages locate the
// offending entry, for example `cluster "box" edges[1] to: unknown id "x"`.
package manifest
