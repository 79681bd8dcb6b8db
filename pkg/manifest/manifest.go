package manifest

import (
	"github.com/matzehuels/graphwiz/pkg/graph"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
)

// Manifest is a declarative graph description. The top level is the root
// scope; Directed and Strict select the DOT flavor and fall back to the
// caller's defaults when unset.
type Manifest struct {
	Directed *bool `json:"directed,omitempty" toml:"directed" yaml:"directed,omitempty"`
	Strict   *bool `json:"strict,omitempty" toml:"strict" yaml:"strict,omitempty"`

	Scope `yaml:",inline"`
}

// Scope is the content of the root, a cluster, or a subgraph.
type Scope struct {
	// Defaults maps a kind name (node, edge, cluster, subgraph) to default
	// attributes for entities of that kind created in this scope.
	Defaults map[string]graph.Attributes `json:"defaults,omitempty" toml:"defaults" yaml:"defaults,omitempty"`
	// Attrs are set on the scope itself.
	Attrs graph.Attributes `json:"attrs,omitempty" toml:"attrs" yaml:"attrs,omitempty"`

	Nodes  []Node      `json:"nodes,omitempty" toml:"nodes" yaml:"nodes,omitempty"`
	Scopes []ScopeDecl `json:"scopes,omitempty" toml:"scopes" yaml:"scopes,omitempty"`
	Edges  []Edge      `json:"edges,omitempty" toml:"edges" yaml:"edges,omitempty"`
}

// Node declares a node. The label defaults to the id.
type Node struct {
	ID    string           `json:"id" toml:"id" yaml:"id"`
	Label string           `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	Attrs graph.Attributes `json:"attrs,omitempty" toml:"attrs" yaml:"attrs,omitempty"`
}

// Edge declares an edge. From and To reference nodes, edges or scopes
// declared earlier; the id is only needed to chain other edges onto this one.
type Edge struct {
	ID    string           `json:"id,omitempty" toml:"id" yaml:"id,omitempty"`
	From  string           `json:"from" toml:"from" yaml:"from"`
	To    string           `json:"to" toml:"to" yaml:"to"`
	Attrs graph.Attributes `json:"attrs,omitempty" toml:"attrs" yaml:"attrs,omitempty"`
}

// Scope kinds accepted in [ScopeDecl].
const (
	KindCluster  = "cluster"
	KindSubgraph = "subgraph"
)

// ScopeDecl declares a nested cluster or subgraph. The label of a cluster
// defaults to its id.
type ScopeDecl struct {
	Kind  string `json:"kind" toml:"kind" yaml:"kind"`
	ID    string `json:"id" toml:"id" yaml:"id"`
	Label string `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`

	Scope `yaml:",inline"`
}

// RenderOptions returns the DOT options requested by the manifest, using
// defaults for fields it leaves unset.
func (m *Manifest) RenderOptions(defaults dot.Options) dot.Options {
	opts := defaults
	if m.Directed != nil {
		opts.Directed = *m.Directed
	}
	if m.Strict != nil {
		opts.Strict = *m.Strict
	}
	return opts
}
