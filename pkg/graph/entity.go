package graph

import (
	"maps"
	"strconv"
)

// Kind identifies one of the four kinds of graph entities.
//
// Clusters and subgraphs are kept apart so that each can carry its own
// default attributes (see [Builder.DefaultsMut]). Graphviz draws a cluster as
// a box around its members; a plain subgraph only groups them.
type Kind int

const (
	// KindNode is a single vertex.
	KindNode Kind = iota
	// KindEdge connects two nodes, possibly on behalf of compound endpoints.
	KindEdge
	// KindCluster is a subgraph that Graphviz renders as a box.
	KindCluster
	// KindSubgraph is a grouping scope without visual representation.
	KindSubgraph
)

var kindNames = [...]string{
	KindNode:     "node",
	KindEdge:     "edge",
	KindCluster:  "cluster",
	KindSubgraph: "subgraph",
}

// String returns the lowercase kind name, which is also the prefix used for
// entity names in DOT output.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsScope reports whether entities of this kind own members (clusters and
// subgraphs).
func (k Kind) IsScope() bool { return k == KindCluster || k == KindSubgraph }

// Kinds returns all kinds in declaration order.
func Kinds() []Kind { return []Kind{KindNode, KindEdge, KindCluster, KindSubgraph} }

// Entity is an opaque, comparable identifier for a graph element.
//
// Entities are cheap to copy and hold no reference to the graph that issued
// them. The zero value is the root subgraph, which only the graph itself uses.
type Entity struct {
	kind Kind
	id   uint32
}

// Kind returns the entity's kind.
func (e Entity) Kind() Kind { return e.kind }

// ID returns the entity's numeric id, unique across the whole graph.
func (e Entity) ID() uint32 { return e.id }

// String returns an unpadded name such as "node_3". Rendered output pads ids;
// see package render/dot.
func (e Entity) String() string {
	return e.kind.String() + "_" + strconv.FormatUint(uint64(e.id), 10)
}

// root is the implicit top-level scope.
var root = Entity{kind: KindSubgraph, id: 0}

// Attributes maps attribute names to values. See package attrs for the known
// DOT attribute names.
type Attributes map[string]string

// Clone returns a shallow copy. Cloning nil returns an empty, non-nil map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Merge copies every entry of other into a, overwriting existing keys.
func (a Attributes) Merge(other Attributes) {
	maps.Copy(a, other)
}

// Defaults holds per-kind default attributes used to seed new entities.
type Defaults map[Kind]Attributes

// Clone deep-copies the defaults so that the copy can be changed without
// affecting the original.
func (d Defaults) Clone() Defaults {
	out := make(Defaults, len(d))
	for k, attrs := range d {
		out[k] = attrs.Clone()
	}
	return out
}

// Members lists the direct children of a cluster or subgraph in creation
// order.
type Members struct {
	Nodes     []Entity
	Edges     []Entity
	Subgraphs []Entity
}

func (m *Members) clone() Members {
	return Members{
		Nodes:     append([]Entity(nil), m.Nodes...),
		Edges:     append([]Entity(nil), m.Edges...),
		Subgraphs: append([]Entity(nil), m.Subgraphs...),
	}
}

// EdgeInfo records the node-level endpoints an edge was resolved to.
//
// HeadNode and TailNode are always nodes. When a side was given as a cluster
// or subgraph, the corresponding scope is kept so renderers can emit lhead
// and ltail.
type EdgeInfo struct {
	HeadNode Entity
	TailNode Entity

	headScope    Entity
	tailScope    Entity
	hasHeadScope bool
	hasTailScope bool
}

// HeadSubgraph returns the cluster or subgraph the head side was resolved
// from, if any.
func (i EdgeInfo) HeadSubgraph() (Entity, bool) { return i.headScope, i.hasHeadScope }

// TailSubgraph returns the cluster or subgraph the tail side was resolved
// from, if any.
func (i EdgeInfo) TailSubgraph() (Entity, bool) { return i.tailScope, i.hasTailScope }
