// Package graph builds labeled, nested graphs for rendering as Graphviz DOT.
//
// # Overview
//
// A graph is made of four kinds of entities: nodes, edges, clusters and
// subgraphs (see [Kind]). Every entity is identified by an [Entity], a small
// comparable value that carries its kind and an id unique within the graph.
// Attributes are plain string maps attached to each entity.
//
// Graphs are never assembled directly. [NewBuilder] returns a [RootBuilder];
// every builder implements [Builder] and creates entities in its own scope.
// [RootBuilder.Build] returns the finished, immutable [Graph], which package
// render/dot turns into text.
//
//	b := graph.NewBuilder()
//	a := b.NewNode("a")
//	c := b.NewNode("c")
//	b.NewEdge(a, c)
//	g := b.Build()
//
// # Scopes
//
// NewCluster and NewSubgraph return a [SubgraphBuilder] for the new scope.
// Builders share one store and only one may be used at a time: the parent
// panics with [ErrBuilderBorrowed] until the child's Build is called. The
// WithCluster and WithSubgraph helpers finalize the child on every exit path:
//
//	box := b.WithCluster("box", func(sb *graph.SubgraphBuilder) {
//	    sb.NewNode("inside")
//	})
//
// # Defaults
//
// Each builder keeps per-kind default attributes (see [Builder.DefaultsMut])
// that seed every entity it creates. A child builder starts from a copy of
// its parent's defaults; later changes on either side stay local.
// Attributes themselves are not scoped: any builder can read or modify any
// entity's attributes.
//
// # Edges
//
// [Builder.NewEdge] accepts endpoints of any kind. Edge endpoints chain: the
// new edge continues from where the referenced edge points. Cluster and
// subgraph endpoints are replaced by a representative node (the first node
// found depth-first in creation order); the root's compound attribute is set
// to "true" and the scope is kept so the renderer can emit lhead or ltail.
// An endpoint scope without any node makes NewEdge panic with
// [ErrEmptyEndpoint].
//
// # Errors
//
// Construction never returns errors. Misuse (foreign entities, using a
// borrowed or finalized builder, empty compound endpoints) panics with an
// error wrapping one of the sentinel values of this package.
//
// # Concurrency
//
// Builders are not safe for concurrent use. A finished [Graph] is read-only
// and may be shared between goroutines.
package graph
