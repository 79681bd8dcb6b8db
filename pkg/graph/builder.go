package graph

import (
	"fmt"

	"github.com/matzehuels/graphwiz/pkg/attrs"
)

// Builder creates entities within one scope: the root graph, a cluster, or a
// subgraph. [RootBuilder] and [SubgraphBuilder] both implement it.
//
// All builders of a graph share one store, and only one of them may be used
// at a time. Opening a child scope with NewSubgraph or NewCluster hands the
// write lease to the returned builder; the creator panics with
// [ErrBuilderBorrowed] until the child is finalized with Build.
type Builder interface {
	// Entity returns the scope this builder adds to.
	Entity() Entity

	// NewNode creates a node in this scope with the given label.
	NewNode(label string) Entity
	// NewNodeWith is NewNode followed by merging extra into the node's
	// attributes, overriding defaults.
	NewNodeWith(label string, extra Attributes) Entity

	// NewEdge creates an edge in this scope from head to tail.
	//
	// Endpoints may be of any kind. An edge endpoint chains: NewEdge(ab, cd)
	// for edges a->b and c->d connects b to c. A cluster or subgraph
	// endpoint is replaced by its representative node, the graph's compound
	// attribute is set, and the scope is remembered for lhead/ltail. NewEdge
	// panics with [ErrEmptyEndpoint] if such a scope holds no node at all.
	NewEdge(head, tail Entity) Entity
	// NewEdgeWith is NewEdge followed by merging extra into the edge's
	// attributes.
	NewEdgeWith(head, tail Entity, extra Attributes) Entity

	// NewSubgraph opens a plain subgraph in this scope. The returned builder
	// holds the write lease: it must be finalized with Build, or this
	// builder stays locked and its own Build panics with
	// [ErrBuilderBorrowed]. WithSubgraph does this automatically.
	NewSubgraph() *SubgraphBuilder
	// NewSubgraphWith is NewSubgraph followed by merging extra into the
	// subgraph's attributes.
	NewSubgraphWith(extra Attributes) *SubgraphBuilder
	// NewCluster opens a cluster with the given label in this scope. As with
	// NewSubgraph, the returned builder must be finalized with Build before
	// this builder can be used again.
	NewCluster(label string) *SubgraphBuilder
	// NewClusterWith is NewCluster followed by merging extra into the
	// cluster's attributes.
	NewClusterWith(label string, extra Attributes) *SubgraphBuilder

	// WithSubgraph opens a subgraph, passes it to fn, and finalizes it on
	// every exit path of fn, panics included.
	WithSubgraph(fn func(*SubgraphBuilder)) Entity
	// WithCluster is the cluster counterpart of WithSubgraph.
	WithCluster(label string, fn func(*SubgraphBuilder)) Entity

	// Defaults returns a copy of this scope's defaults for kind, or nil if
	// none were set.
	Defaults(kind Kind) Attributes
	// DefaultsMut returns this scope's defaults for kind, creating them on
	// first use. Child scopes start from a copy of their parent's defaults.
	DefaultsMut(kind Kind) Attributes

	// Attributes returns a copy of any entity's attributes.
	Attributes(e Entity) Attributes
	// AttributesMut returns any entity's attributes for modification,
	// regardless of which builder created it. The map is live until the
	// root builder's Build; writes after that no longer reach the graph.
	AttributesMut(e Entity) Attributes

	// Representative reports the node that would stand in for e if e were
	// used as an edge endpoint.
	Representative(e Entity) (Entity, bool)
}

// RootBuilder builds the top-level graph. Obtain one with [NewBuilder].
type RootBuilder struct {
	*scope
}

// SubgraphBuilder builds a cluster or subgraph. It holds the write lease of
// the shared graph until Build is called.
type SubgraphBuilder struct {
	*scope
}

var (
	_ Builder = (*RootBuilder)(nil)
	_ Builder = (*SubgraphBuilder)(nil)
)

// NewBuilder returns a builder for a new, empty graph.
func NewBuilder() *RootBuilder {
	g := newGraph()
	return &RootBuilder{scope: &scope{
		graph:    g,
		entity:   root,
		members:  g.scopes[root],
		defaults: Defaults{},
	}}
}

// Build finalizes the graph and returns it. Calling Build again returns the
// same graph. It panics with [ErrBuilderBorrowed] if a child builder is open.
func (b *RootBuilder) Build() *Graph {
	if !b.closed {
		b.check()
		b.closed = true
		b.graph.seal()
	}
	return b.graph
}

// Build finalizes the scope, returns the write lease to the parent builder,
// and returns the scope's entity. Calling Build again returns the same
// entity. It panics with [ErrBuilderBorrowed] if a child builder is open.
func (b *SubgraphBuilder) Build() Entity {
	if !b.closed {
		b.check()
		b.close()
	}
	return b.entity
}

// scope carries what both builder variants share: the store, the scope
// entity with its member list, the scoped defaults, and the lease links.
type scope struct {
	graph    *Graph
	entity   Entity
	members  *Members
	defaults Defaults

	parent *scope
	child  *scope
	closed bool
}

func (s *scope) check() {
	if s.closed {
		panic(fmt.Errorf("%w: %s", ErrBuilderClosed, s.entity))
	}
	if s.child != nil {
		panic(fmt.Errorf("%w: %s is still open", ErrBuilderBorrowed, s.child.entity))
	}
}

func (s *scope) close() {
	s.closed = true
	if s.parent != nil {
		s.parent.child = nil
	}
}

// release closes the scope together with any descendants left open.
func (s *scope) release() {
	if s.child != nil {
		s.child.release()
	}
	if !s.closed {
		s.close()
	}
}

func (s *scope) Entity() Entity { return s.entity }

func (s *scope) NewNode(label string) Entity {
	s.check()
	e := s.graph.newNode(label, s.defaults)
	s.members.Nodes = append(s.members.Nodes, e)
	return e
}

func (s *scope) NewNodeWith(label string, extra Attributes) Entity {
	e := s.NewNode(label)
	s.graph.attributes[e].Merge(extra)
	return e
}

func (s *scope) NewEdge(head, tail Entity) Entity {
	s.check()
	e := s.graph.newEdge(head, tail, s.defaults)
	s.members.Edges = append(s.members.Edges, e)
	return e
}

func (s *scope) NewEdgeWith(head, tail Entity, extra Attributes) Entity {
	e := s.NewEdge(head, tail)
	s.graph.attributes[e].Merge(extra)
	return e
}

func (s *scope) NewSubgraph() *SubgraphBuilder {
	return s.open(KindSubgraph, "", nil)
}

func (s *scope) NewSubgraphWith(extra Attributes) *SubgraphBuilder {
	return s.open(KindSubgraph, "", extra)
}

func (s *scope) NewCluster(label string) *SubgraphBuilder {
	return s.open(KindCluster, label, nil)
}

func (s *scope) NewClusterWith(label string, extra Attributes) *SubgraphBuilder {
	return s.open(KindCluster, label, extra)
}

func (s *scope) open(kind Kind, label string, extra Attributes) *SubgraphBuilder {
	s.check()
	e := s.graph.register(kind, s.defaults)
	s.members.Subgraphs = append(s.members.Subgraphs, e)

	a := s.graph.attributes[e]
	if kind == KindCluster {
		a[attrs.Label] = label
	}
	a.Merge(extra)

	child := &scope{
		graph:    s.graph,
		entity:   e,
		members:  s.graph.scopes[e],
		defaults: s.defaults.Clone(),
		parent:   s,
	}
	s.child = child
	return &SubgraphBuilder{scope: child}
}

func (s *scope) WithSubgraph(fn func(*SubgraphBuilder)) Entity {
	return run(s.NewSubgraph(), fn)
}

func (s *scope) WithCluster(label string, fn func(*SubgraphBuilder)) Entity {
	return run(s.NewCluster(label), fn)
}

func run(b *SubgraphBuilder, fn func(*SubgraphBuilder)) Entity {
	defer b.release()
	fn(b)
	return b.entity
}

func (s *scope) Defaults(kind Kind) Attributes {
	s.check()
	if a, ok := s.defaults[kind]; ok {
		return a.Clone()
	}
	return nil
}

func (s *scope) DefaultsMut(kind Kind) Attributes {
	s.check()
	a, ok := s.defaults[kind]
	if !ok {
		a = Attributes{}
		s.defaults[kind] = a
	}
	return a
}

func (s *scope) Attributes(e Entity) Attributes {
	s.check()
	return s.graph.Attributes(e)
}

func (s *scope) AttributesMut(e Entity) Attributes {
	s.check()
	return s.graph.attrs(e)
}

func (s *scope) Representative(e Entity) (Entity, bool) {
	s.check()
	return s.graph.Representative(e)
}
