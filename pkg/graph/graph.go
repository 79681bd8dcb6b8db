package graph

import (
	"errors"
	"fmt"

	"github.com/matzehuels/graphwiz/pkg/attrs"
)

var (
	// ErrUnknownEntity is the panic cause when an entity is used with a graph
	// that did not issue it. Entities are only obtained from builders, so this
	// indicates a programming error.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrEmptyEndpoint is the panic cause when an edge endpoint is a cluster
	// or subgraph without any node in its subtree. Such an edge has no valid
	// node-level form. Use [Builder.Representative] to check beforehand.
	ErrEmptyEndpoint = errors.New("compound edge endpoint contains no nodes")

	// ErrBuilderClosed is the panic cause when a builder is used after Build.
	ErrBuilderClosed = errors.New("builder already built")

	// ErrBuilderBorrowed is the panic cause when a builder is used while a
	// child builder created from it is still open.
	ErrBuilderBorrowed = errors.New("builder is borrowed by an open child builder")
)

// Graph stores every entity of a graph, its attributes, the membership of
// each cluster and subgraph, and the resolved endpoints of each edge.
//
// A Graph is obtained from [RootBuilder.Build] and is immutable from then on:
// Build detaches the attribute maps handed out by [Builder.AttributesMut],
// and all exported methods return copies. It is safe for concurrent readers.
type Graph struct {
	attributes map[Entity]Attributes
	scopes     map[Entity]*Members
	edges      map[Entity]EdgeInfo
	latest     uint32
}

func newGraph() *Graph {
	return &Graph{
		attributes: map[Entity]Attributes{root: {}},
		scopes:     map[Entity]*Members{root: {}},
		edges:      make(map[Entity]EdgeInfo),
	}
}

// seal replaces every attribute map with a private copy, so that maps
// returned by AttributesMut no longer reach the graph.
func (g *Graph) seal() {
	for e, a := range g.attributes {
		g.attributes[e] = a.Clone()
	}
}

// Root returns the implicit top-level scope (id 0).
func (g *Graph) Root() Entity { return root }

// MaxID returns the highest id issued, 0 for a graph without entities.
func (g *Graph) MaxID() uint32 { return g.latest }

// Count returns the number of entities of the given kind. The root scope is
// not counted.
func (g *Graph) Count(kind Kind) int {
	n := 0
	for e := range g.attributes {
		if e.kind == kind && e != root {
			n++
		}
	}
	return n
}

// Attributes returns a copy of the entity's attributes.
// It panics with [ErrUnknownEntity] if the entity does not belong to g.
func (g *Graph) Attributes(e Entity) Attributes {
	return g.attrs(e).Clone()
}

// Members returns a copy of the direct children of a cluster, subgraph, or
// the root. It panics with [ErrUnknownEntity] for any other entity.
func (g *Graph) Members(e Entity) Members {
	return g.members(e).clone()
}

// Edge returns the resolved endpoints of an edge.
// It panics with [ErrUnknownEntity] if e is not an edge of g.
func (g *Graph) Edge(e Entity) EdgeInfo {
	info, ok := g.edges[e]
	if !ok {
		panic(unknown(e))
	}
	return info
}

// Representative returns the node that stands in for a scope when the scope
// is used as an edge endpoint: its first node, or else the first
// representative found among its child scopes in creation order. Nodes
// represent themselves. ok is false when the subtree holds no node.
func (g *Graph) Representative(e Entity) (Entity, bool) {
	switch e.kind {
	case KindNode:
		g.attrs(e)
		return e, true
	case KindCluster, KindSubgraph:
		return g.locate(e)
	default:
		g.attrs(e)
		return Entity{}, false
	}
}

func (g *Graph) attrs(e Entity) Attributes {
	a, ok := g.attributes[e]
	if !ok {
		panic(unknown(e))
	}
	return a
}

func (g *Graph) members(e Entity) *Members {
	m, ok := g.scopes[e]
	if !ok {
		panic(unknown(e))
	}
	return m
}

func unknown(e Entity) error {
	return fmt.Errorf("%w: %s", ErrUnknownEntity, e)
}

// register allocates the next id and seeds the attributes from defaults.
func (g *Graph) register(kind Kind, defaults Defaults) Entity {
	g.latest++
	e := Entity{kind: kind, id: g.latest}
	g.attributes[e] = defaults[kind].Clone()
	if kind.IsScope() {
		g.scopes[e] = &Members{}
	}
	return e
}

func (g *Graph) newNode(label string, defaults Defaults) Entity {
	e := g.register(KindNode, defaults)
	g.attributes[e][attrs.Label] = label
	return e
}

// endpoint is one resolved side of an edge.
type endpoint struct {
	node     Entity
	scope    Entity
	hasScope bool
}

func (g *Graph) newEdge(head, tail Entity, defaults Defaults) Entity {
	h := g.resolve(head, true)
	t := g.resolve(tail, false)
	if h.hasScope || t.hasScope {
		g.attributes[root][attrs.Compound] = "true"
	}

	e := g.register(KindEdge, defaults)
	g.edges[e] = EdgeInfo{
		HeadNode:     h.node,
		TailNode:     t.node,
		headScope:    h.scope,
		tailScope:    t.scope,
		hasHeadScope: h.hasScope,
		hasTailScope: t.hasScope,
	}
	return e
}

// resolve maps an endpoint to a node. An edge used as the head continues
// from that edge's tail; used as the tail it continues from its head, so
// that edge(ab, cd) connects b to c. Stored edges are already resolved to
// nodes, which makes chains of any length a single lookup.
func (g *Graph) resolve(e Entity, head bool) endpoint {
	switch e.kind {
	case KindNode:
		g.attrs(e)
		return endpoint{node: e}
	case KindEdge:
		info := g.Edge(e)
		if head {
			return endpoint{node: info.TailNode, scope: info.tailScope, hasScope: info.hasTailScope}
		}
		return endpoint{node: info.HeadNode, scope: info.headScope, hasScope: info.hasHeadScope}
	case KindCluster, KindSubgraph:
		n, ok := g.locate(e)
		if !ok {
			panic(fmt.Errorf("%w: %s", ErrEmptyEndpoint, e))
		}
		return endpoint{node: n, scope: e, hasScope: true}
	default:
		panic(unknown(e))
	}
}

func (g *Graph) locate(e Entity) (Entity, bool) {
	m := g.members(e)
	if len(m.Nodes) > 0 {
		return m.Nodes[0], true
	}
	for _, sub := range m.Subgraphs {
		if n, ok := g.locate(sub); ok {
			return n, true
		}
	}
	return Entity{}, false
}
