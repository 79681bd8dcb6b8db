package dot

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/graph"
)

const indent = "    "

// Options selects the flavor of the DOT document.
type Options struct {
	// Directed emits a digraph with "->" edges. When false, a graph with
	// "--" edges is emitted.
	Directed bool
	// Strict prefixes the keyword with "strict", making Graphviz merge
	// parallel edges.
	Strict bool
}

// Keyword returns the document keyword for the options, e.g. "strict digraph".
func (o Options) Keyword() string {
	kw := "graph"
	if o.Directed {
		kw = "digraph"
	}
	if o.Strict {
		kw = "strict " + kw
	}
	return kw
}

// Arrow returns the edge operator for the options.
func (o Options) Arrow() string {
	if o.Directed {
		return "->"
	}
	return "--"
}

// RenderGraph renders g as an undirected graph.
func RenderGraph(g *graph.Graph) string {
	return Render(g, Options{})
}

// RenderDigraph renders g as a directed graph.
func RenderDigraph(g *graph.Graph) string {
	return Render(g, Options{Directed: true})
}

// RenderStrictGraph renders g as a strict undirected graph.
func RenderStrictGraph(g *graph.Graph) string {
	return Render(g, Options{Strict: true})
}

// RenderStrictDigraph renders g as a strict directed graph.
func RenderStrictDigraph(g *graph.Graph) string {
	return Render(g, Options{Directed: true, Strict: true})
}

// Render converts a finished graph to DOT text.
//
// The output is deterministic: scopes list their attributes, nodes, edges and
// child scopes in that order, members appear in creation order, and attribute
// keys are sorted. Lines are joined with "\n" without a trailing newline.
func Render(g *graph.Graph, opts Options) string {
	r := renderer{
		g:     g,
		arrow: opts.Arrow(),
		width: len(strconv.FormatUint(uint64(g.MaxID()), 10)),
	}
	r.group(opts.Keyword()+" {", g.Root(), 0)
	return strings.Join(r.lines, "\n")
}

// Name returns the identifier used for e in the output of [Render]: the kind
// followed by the id, zero-padded to the width of the highest id in g.
func Name(g *graph.Graph, e graph.Entity) string {
	width := len(strconv.FormatUint(uint64(g.MaxID()), 10))
	return name(e, width)
}

func name(e graph.Entity, width int) string {
	return fmt.Sprintf("%s_%0*d", e.Kind(), width, e.ID())
}

type renderer struct {
	g     *graph.Graph
	arrow string
	width int
	lines []string
}

func (r *renderer) emit(depth int, line string) {
	r.lines = append(r.lines, strings.Repeat(indent, depth)+line)
}

func (r *renderer) group(header string, scope graph.Entity, depth int) {
	r.emit(depth, header)
	for _, a := range attributeList(r.g.Attributes(scope)) {
		r.emit(depth+1, a)
	}

	m := r.g.Members(scope)
	for _, n := range m.Nodes {
		r.emit(depth+1, r.node(n))
	}
	for _, e := range m.Edges {
		r.emit(depth+1, r.edge(e))
	}
	for _, sub := range m.Subgraphs {
		r.group("subgraph "+name(sub, r.width)+" {", sub, depth+1)
	}
	r.emit(depth, "}")
}

func (r *renderer) node(n graph.Entity) string {
	list := attributeList(r.g.Attributes(n))
	return name(n, r.width) + " [" + strings.Join(list, ", ") + "]"
}

func (r *renderer) edge(e graph.Entity) string {
	info := r.g.Edge(e)
	list := attributeList(r.g.Attributes(e))
	if sg, ok := info.HeadSubgraph(); ok {
		list = append(list, attribute(attrs.LHead, name(sg, r.width)))
	}
	if sg, ok := info.TailSubgraph(); ok {
		list = append(list, attribute(attrs.LTail, name(sg, r.width)))
	}
	return fmt.Sprintf("%s %s %s [%s]",
		name(info.HeadNode, r.width), r.arrow, name(info.TailNode, r.width),
		strings.Join(list, ", "))
}

func attributeList(a graph.Attributes) []string {
	list := make([]string, 0, len(a))
	for _, k := range slices.Sorted(maps.Keys(a)) {
		list = append(list, attribute(k, a[k]))
	}
	return list
}

// attribute formats one key="value" pair. Quotes inside the value are not
// escaped.
func attribute(key, value string) string {
	return key + `="` + value + `"`
}
