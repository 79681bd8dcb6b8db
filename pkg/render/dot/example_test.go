package dot_test

import (
	"fmt"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/graph"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
)

func ExampleRenderDigraph() {
	b := graph.NewBuilder()
	b.DefaultsMut(graph.KindNode)[attrs.Shape] = "box"

	parse := b.NewNode("parse")
	stages := b.WithCluster("backend", func(sb *graph.SubgraphBuilder) {
		lower := sb.NewNode("lower")
		emit := sb.NewNode("emit")
		sb.NewEdge(lower, emit)
	})
	b.NewEdgeWith(parse, stages, graph.Attributes{attrs.Label: "ast"})

	fmt.Println(dot.RenderDigraph(b.Build()))
	// Output:
	// digraph {
	//     compound="true"
	//     node_1 [label="parse", shape="box"]
	//     node_1 -> node_3 [label="ast", ltail="cluster_2"]
	//     subgraph cluster_2 {
	//         label="backend"
	//         node_3 [label="lower", shape="box"]
	//         node_4 [label="emit", shape="box"]
	//         node_3 -> node_4 []
	//     }
	// }
}

func ExampleOptions_Keyword() {
	fmt.Println(dot.Options{}.Keyword())
	fmt.Println(dot.Options{Directed: true, Strict: true}.Keyword())
	// Output:
	// graph
	// strict digraph
}
