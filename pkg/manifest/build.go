package manifest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/graph"
)

// Built is a manifest turned into a graph.
type Built struct {
	Graph *graph.Graph

	ids   map[string]graph.Entity
	names map[graph.Entity]string
}

// Entity returns the entity declared with id.
func (b *Built) Entity(id string) (graph.Entity, bool) {
	e, ok := b.ids[id]
	return e, ok
}

// ID returns the manifest id of e, if it was declared with one.
func (b *Built) ID(e graph.Entity) (string, bool) {
	id, ok := b.names[e]
	return id, ok
}

// IDs returns all declared ids in sorted order.
func (b *Built) IDs() []string {
	return slices.Sorted(maps.Keys(b.ids))
}

// Count returns the number of entities in the graph, the root excluded.
func (b *Built) Count() int {
	n := 0
	for _, k := range graph.Kinds() {
		n += b.Graph.Count(k)
	}
	return n
}

// Build validates the manifest and constructs its graph.
//
// Each scope is built in a fixed order: defaults and attributes, nodes, child
// scopes in declaration order, then edges. Ids are global, so an edge can
// reference anything declared before it in that order, including the scope
// it is declared in. Invalid ids, duplicates, unknown references and
// cluster or subgraph endpoints without any node are reported as errors
// from package errors; the builder is never asked to do something that
// would make it panic.
func (m *Manifest) Build() (*Built, error) {
	bb := &builder{
		ids:   make(map[string]graph.Entity),
		names: make(map[graph.Entity]string),
	}
	root := graph.NewBuilder()
	if err := bb.scope(root, &m.Scope, "root"); err != nil {
		return nil, err
	}
	return &Built{Graph: root.Build(), ids: bb.ids, names: bb.names}, nil
}

// Validate reports the first problem [Manifest.Build] would report.
func (m *Manifest) Validate() error {
	_, err := m.Build()
	return err
}

type builder struct {
	ids   map[string]graph.Entity
	names map[graph.Entity]string
}

func (bb *builder) declare(id string, e graph.Entity) {
	bb.ids[id] = e
	bb.names[e] = id
}

// claim checks an id before the entity exists.
func (bb *builder) claim(id, where string) error {
	if err := errors.ValidateID(id); err != nil {
		return fmt.Errorf("%s: %w", where, err)
	}
	if prev, ok := bb.ids[id]; ok {
		return errors.New(errors.ErrCodeInvalidManifest, "%s: duplicate id %q (already used by a %s)", where, id, prev.Kind())
	}
	return nil
}

func (bb *builder) scope(b graph.Builder, s *Scope, where string) error {
	for _, name := range slices.Sorted(maps.Keys(s.Defaults)) {
		kind, ok := parseKind(name)
		if !ok {
			return errors.New(errors.ErrCodeInvalidManifest, "%s: defaults for unknown kind %q", where, name)
		}
		if err := checkAttributes(s.Defaults[name], where+" defaults."+name); err != nil {
			return err
		}
		b.DefaultsMut(kind).Merge(s.Defaults[name])
	}
	if err := checkAttributes(s.Attrs, where+" attrs"); err != nil {
		return err
	}
	b.AttributesMut(b.Entity()).Merge(s.Attrs)

	for i, n := range s.Nodes {
		nw := fmt.Sprintf("%s nodes[%d]", where, i)
		if err := bb.claim(n.ID, nw); err != nil {
			return err
		}
		if err := checkAttributes(n.Attrs, nw); err != nil {
			return err
		}
		label := n.Label
		if label == "" {
			label = n.ID
		}
		if err := errors.ValidateAttributeValue(attrs.Label, label); err != nil {
			return fmt.Errorf("%s: %w", nw, err)
		}
		bb.declare(n.ID, b.NewNodeWith(label, n.Attrs))
	}

	for i := range s.Scopes {
		if err := bb.child(b, &s.Scopes[i], fmt.Sprintf("%s scopes[%d]", where, i)); err != nil {
			return err
		}
	}

	for i, e := range s.Edges {
		ew := fmt.Sprintf("%s edges[%d]", where, i)
		if e.ID != "" {
			if err := bb.claim(e.ID, ew); err != nil {
				return err
			}
		}
		from, err := bb.endpoint(b, e.From, ew+" from")
		if err != nil {
			return err
		}
		to, err := bb.endpoint(b, e.To, ew+" to")
		if err != nil {
			return err
		}
		if err := checkAttributes(e.Attrs, ew); err != nil {
			return err
		}
		edge := b.NewEdgeWith(from, to, e.Attrs)
		if e.ID != "" {
			bb.declare(e.ID, edge)
		}
	}
	return nil
}

func (bb *builder) child(parent graph.Builder, d *ScopeDecl, where string) error {
	if err := bb.claim(d.ID, where); err != nil {
		return err
	}
	if d.Kind != KindCluster && d.Kind != KindSubgraph {
		return errors.New(errors.ErrCodeInvalidManifest, "%s: unknown scope kind %q (want %s or %s)", where, d.Kind, KindCluster, KindSubgraph)
	}
	where = fmt.Sprintf("%s %q", d.Kind, d.ID)

	var sb *graph.SubgraphBuilder
	switch d.Kind {
	case KindCluster:
		label := d.Label
		if label == "" {
			label = d.ID
		}
		if err := errors.ValidateAttributeValue(attrs.Label, label); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		sb = parent.NewCluster(label)
	case KindSubgraph:
		if err := errors.ValidateAttributeValue(attrs.Label, d.Label); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		sb = parent.NewSubgraph()
		if d.Label != "" {
			sb.AttributesMut(sb.Entity())[attrs.Label] = d.Label
		}
	}
	defer sb.Build()

	bb.declare(d.ID, sb.Entity())
	return bb.scope(sb, &d.Scope, where)
}

func (bb *builder) endpoint(b graph.Builder, ref, where string) (graph.Entity, error) {
	if ref == "" {
		return graph.Entity{}, errors.New(errors.ErrCodeInvalidReference, "%s: missing endpoint", where)
	}
	e, ok := bb.ids[ref]
	if !ok {
		return graph.Entity{}, errors.New(errors.ErrCodeInvalidReference, "%s: unknown id %q", where, ref)
	}
	if e.Kind().IsScope() {
		if _, ok := b.Representative(e); !ok {
			return graph.Entity{}, errors.New(errors.ErrCodeEmptyEndpoint, "%s: %s %q contains no nodes", where, e.Kind(), ref)
		}
	}
	return e, nil
}

func parseKind(name string) (graph.Kind, bool) {
	for _, k := range graph.Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

func checkAttributes(a graph.Attributes, where string) error {
	for _, k := range slices.Sorted(maps.Keys(a)) {
		if err := errors.ValidateAttributeKey(k); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if err := errors.ValidateAttributeValue(k, a[k]); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}
	return nil
}
