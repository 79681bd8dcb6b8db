package dot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/graph"
)

// example builds the two-node graph with a cluster used throughout the docs.
func example() *graph.Graph {
	b := graph.NewBuilder()
	nd := b.DefaultsMut(graph.KindNode)
	nd[attrs.FillColor] = "lavender"
	nd[attrs.Style] = "filled"

	a := b.NewNode("a")
	n := b.NewNode("b")
	ab := b.NewEdge(a, n)
	b.AttributesMut(ab)[attrs.Style] = "dotted"

	cl := b.NewCluster("box")
	c := cl.NewNodeWith("c", graph.Attributes{
		attrs.Shape:     "circle",
		attrs.FillColor: "cornflowerblue",
	})
	cl.Build()

	b.NewEdge(c, a)
	b.NewEdge(c, n)
	return b.Build()
}

func TestRenderExample(t *testing.T) {
	want := strings.Join([]string{
		`digraph {`,
		`    node_1 [fillcolor="lavender", label="a", style="filled"]`,
		`    node_2 [fillcolor="lavender", label="b", style="filled"]`,
		`    node_1 -> node_2 [style="dotted"]`,
		`    node_5 -> node_1 []`,
		`    node_5 -> node_2 []`,
		`    subgraph cluster_4 {`,
		`        label="box"`,
		`        node_5 [fillcolor="cornflowerblue", label="c", shape="circle", style="filled"]`,
		`    }`,
		`}`,
	}, "\n")

	if got := RenderDigraph(example()); got != want {
		t.Errorf("RenderDigraph() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNestedClusters(t *testing.T) {
	b := graph.NewBuilder()
	b.DefaultsMut(graph.KindNode)[attrs.Style] = "filled"

	front := b.NewCluster("front end")
	code := front.NewNodeWith("source code", graph.Attributes{attrs.FillColor: "#c3ffd8"})
	ast := front.NewNodeWith("AST", graph.Attributes{attrs.FillColor: "yellow"})
	front.NewEdgeWith(code, ast, graph.Attributes{attrs.Label: "parsing"})
	front.Build()

	middle := b.NewCluster("middle end")
	ir := middle.NewNodeWith("IR", graph.Attributes{attrs.FillColor: "salmon", attrs.Shape: "diamond"})
	middle.NewEdgeWith(ast, ir, graph.Attributes{attrs.Label: "lowering", attrs.Style: "dotted"})
	middle.Build()

	want := strings.Join([]string{
		`digraph {`,
		`    subgraph cluster_1 {`,
		`        label="front end"`,
		`        node_2 [fillcolor="#c3ffd8", label="source code", style="filled"]`,
		`        node_3 [fillcolor="yellow", label="AST", style="filled"]`,
		`        node_2 -> node_3 [label="parsing"]`,
		`    }`,
		`    subgraph cluster_5 {`,
		`        label="middle end"`,
		`        node_6 [fillcolor="salmon", label="IR", shape="diamond", style="filled"]`,
		`        node_3 -> node_6 [label="lowering", style="dotted"]`,
		`    }`,
		`}`,
	}, "\n")

	if got := RenderDigraph(b.Build()); got != want {
		t.Errorf("RenderDigraph() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCompound(t *testing.T) {
	b := graph.NewBuilder()
	box := b.WithCluster("box", func(sb *graph.SubgraphBuilder) { sb.NewNode("x") })
	y := b.NewNode("y")
	b.NewEdge(box, y)
	b.NewEdgeWith(y, box, graph.Attributes{attrs.Color: "red"})

	want := strings.Join([]string{
		`digraph {`,
		`    compound="true"`,
		`    node_3 [label="y"]`,
		`    node_2 -> node_3 [lhead="cluster_1"]`,
		`    node_3 -> node_2 [color="red", ltail="cluster_1"]`,
		`    subgraph cluster_1 {`,
		`        label="box"`,
		`        node_2 [label="x"]`,
		`    }`,
		`}`,
	}, "\n")

	if got := RenderDigraph(b.Build()); got != want {
		t.Errorf("RenderDigraph() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLHeadBeforeLTail(t *testing.T) {
	b := graph.NewBuilder()
	left := b.WithSubgraph(func(sb *graph.SubgraphBuilder) { sb.NewNode("l") })
	right := b.WithSubgraph(func(sb *graph.SubgraphBuilder) { sb.NewNode("r") })
	b.NewEdge(left, right)

	got := RenderGraph(b.Build())
	want := `    node_2 -- node_4 [lhead="subgraph_1", ltail="subgraph_3"]`
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
}

func TestRenderKeywords(t *testing.T) {
	b := graph.NewBuilder()
	a := b.NewNode("a")
	b.NewEdge(a, a)
	g := b.Build()

	tests := []struct {
		name   string
		render func(*graph.Graph) string
		header string
		edge   string
	}{
		{"graph", RenderGraph, "graph {", "node_1 -- node_1"},
		{"digraph", RenderDigraph, "digraph {", "node_1 -> node_1"},
		{"strict graph", RenderStrictGraph, "strict graph {", "node_1 -- node_1"},
		{"strict digraph", RenderStrictDigraph, "strict digraph {", "node_1 -> node_1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.render(g)
			if first, _, _ := strings.Cut(got, "\n"); first != tt.header {
				t.Errorf("header = %q, want %q", first, tt.header)
			}
			if !strings.Contains(got, tt.edge) {
				t.Errorf("output missing %q:\n%s", tt.edge, got)
			}
		})
	}
}

func TestRenderPadding(t *testing.T) {
	b := graph.NewBuilder()
	var nodes []graph.Entity
	for i := range 10 {
		nodes = append(nodes, b.NewNode(fmt.Sprint(i)))
	}
	g := b.Build()
	got := RenderGraph(g)

	for _, want := range []string{"node_01 [", "node_09 [", "node_10 ["} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := Name(g, nodes[0]); n != "node_01" {
		t.Errorf("Name() = %q, want node_01", n)
	}
}

func TestRenderEmpty(t *testing.T) {
	g := graph.NewBuilder().Build()
	if got := RenderGraph(g); got != "graph {\n}" {
		t.Errorf("RenderGraph() = %q", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := example()
	first := RenderDigraph(g)
	for range 5 {
		if got := RenderDigraph(g); got != first {
			t.Fatalf("render changed between calls:\n%s\n---\n%s", first, got)
		}
	}
	if strings.HasSuffix(first, "\n") {
		t.Error("output should not end with a newline")
	}
}

func TestRenderDoesNotEscape(t *testing.T) {
	b := graph.NewBuilder()
	b.NewNode(`say "hi"`)
	got := RenderGraph(b.Build())
	if !strings.Contains(got, `label="say "hi""`) {
		t.Errorf("unexpected quoting:\n%s", got)
	}
}
