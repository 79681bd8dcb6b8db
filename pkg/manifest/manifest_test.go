package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/graph"
	"github.com/matzehuels/graphwiz/pkg/observability"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
)

func golden(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "example.dot"))
	if err != nil {
		t.Fatal(err)
	}
	return strings.TrimSuffix(string(data), "\n")
}

func TestReadFileAllFormats(t *testing.T) {
	want := golden(t)
	for _, name := range []string{"example.toml", "example.json", "example.yaml"} {
		t.Run(name, func(t *testing.T) {
			m, err := ReadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			b, err := m.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			got := dot.Render(b.Graph, m.RenderOptions(dot.Options{}))
			if got != want {
				t.Errorf("render =\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestBuiltIDs(t *testing.T) {
	_, b, err := LoadFile(context.Background(), filepath.Join("testdata", "example.toml"))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a", "ab", "b", "box", "c"}
	if got := b.IDs(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("IDs() = %v, want %v", got, want)
	}

	box, ok := b.Entity("box")
	if !ok || box.Kind() != graph.KindCluster {
		t.Fatalf("Entity(box) = %v, %v", box, ok)
	}
	if id, ok := b.ID(box); !ok || id != "box" {
		t.Errorf("ID(box) = %q, %v", id, ok)
	}
	if _, ok := b.Entity("nope"); ok {
		t.Error("Entity(nope) should not exist")
	}
	if b.Count() != 7 {
		t.Errorf("Count() = %d, want 7", b.Count())
	}
}

func TestRenderOptions(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name     string
		m        Manifest
		defaults dot.Options
		want     dot.Options
	}{
		{"unset keeps defaults", Manifest{}, dot.Options{Directed: true}, dot.Options{Directed: true}},
		{"explicit false", Manifest{Directed: &no}, dot.Options{Directed: true}, dot.Options{}},
		{"strict", Manifest{Strict: &yes}, dot.Options{}, dot.Options{Strict: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.RenderOptions(tt.defaults); got != tt.want {
				t.Errorf("RenderOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func decodeTOML(t *testing.T, src string) *Manifest {
	t.Helper()
	m, err := Decode(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return m
}

func TestBuildChainsAndCompound(t *testing.T) {
	m := decodeTOML(t, `
[[nodes]]
id = "a"
[[nodes]]
id = "b"
[[nodes]]
id = "c"
[[nodes]]
id = "d"

[[scopes]]
kind = "subgraph"
id = "group"
label = "ignored by dot"
  [[scopes.nodes]]
  id = "x"

[[edges]]
id = "ab"
from = "a"
to = "b"
[[edges]]
id = "cd"
from = "c"
to = "d"
[[edges]]
id = "bc"
from = "ab"
to = "cd"
[[edges]]
id = "into"
from = "a"
to = "group"
`)
	b, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := b.Graph

	bc, _ := b.Entity("bc")
	nb, _ := b.Entity("b")
	nc, _ := b.Entity("c")
	if info := g.Edge(bc); info.HeadNode != nb || info.TailNode != nc {
		t.Errorf("bc = %v -> %v, want b -> c", info.HeadNode, info.TailNode)
	}

	into, _ := b.Entity("into")
	group, _ := b.Entity("group")
	x, _ := b.Entity("x")
	info := g.Edge(into)
	if sg, ok := info.TailSubgraph(); info.TailNode != x || !ok || sg != group {
		t.Errorf("into = %+v", info)
	}
	if g.Attributes(g.Root())[attrs.Compound] != "true" {
		t.Error("compound should be set")
	}
	if g.Attributes(group)[attrs.Label] != "ignored by dot" {
		t.Error("subgraph label should be kept as an attribute")
	}
}

func TestBuildScopeDefaultsAndAttrs(t *testing.T) {
	m := decodeTOML(t, `
[defaults.node]
shape = "box"
[defaults.cluster]
style = "rounded"
[attrs]
rankdir = "LR"

[[scopes]]
kind = "cluster"
id = "inner"
  [scopes.defaults.node]
  shape = "circle"
  [scopes.attrs]
  bgcolor = "grey"
  [[scopes.nodes]]
  id = "in"

[[nodes]]
id = "out"
label = "Outside"
`)
	b, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := b.Graph

	if got := g.Attributes(g.Root())[attrs.RankDir]; got != "LR" {
		t.Errorf("root rankdir = %q", got)
	}
	inner, _ := b.Entity("inner")
	ia := g.Attributes(inner)
	if ia[attrs.Style] != "rounded" || ia[attrs.BgColor] != "grey" || ia[attrs.Label] != "inner" {
		t.Errorf("cluster attributes = %v", ia)
	}
	in, _ := b.Entity("in")
	if got := g.Attributes(in)[attrs.Shape]; got != "circle" {
		t.Errorf("inner node shape = %q, want circle", got)
	}
	out, _ := b.Entity("out")
	oa := g.Attributes(out)
	if oa[attrs.Shape] != "box" || oa[attrs.Label] != "Outside" {
		t.Errorf("outer node attributes = %v", oa)
	}
}

func TestBuildEdgeToEnclosingScope(t *testing.T) {
	m := decodeTOML(t, `
[[nodes]]
id = "a"
[[scopes]]
kind = "cluster"
id = "box"
  [[scopes.nodes]]
  id = "x"
  [[scopes.edges]]
  from = "box"
  to = "a"
`)
	b, err := m.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	box, _ := b.Entity("box")
	edges := b.Graph.Members(box).Edges
	if len(edges) != 1 {
		t.Fatalf("box edges = %v", edges)
	}
	if sg, ok := b.Graph.Edge(edges[0]).HeadSubgraph(); !ok || sg != box {
		t.Errorf("HeadSubgraph = %v, %v", sg, ok)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
		msg  string
	}{
		{
			name: "duplicate id",
			src:  "[[nodes]]\nid = \"a\"\n[[nodes]]\nid = \"a\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  `duplicate id "a"`,
		},
		{
			name: "duplicate across kinds",
			src:  "[[nodes]]\nid = \"a\"\n[[scopes]]\nkind = \"cluster\"\nid = \"a\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  "already used by a node",
		},
		{
			name: "missing id",
			src:  "[[nodes]]\nlabel = \"x\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  "root nodes[0]",
		},
		{
			name: "bad id",
			src:  "[[nodes]]\nid = \"a b\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  "invalid id",
		},
		{
			name: "unknown scope kind",
			src:  "[[scopes]]\nkind = \"box\"\nid = \"s\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  `unknown scope kind "box"`,
		},
		{
			name: "unknown defaults kind",
			src:  "[defaults.graph]\ncolor = \"red\"\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  `unknown kind "graph"`,
		},
		{
			name: "bad attribute key",
			src:  "[[nodes]]\nid = \"a\"\nattrs = { \"font size\" = \"12\" }\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  "invalid attribute name",
		},
		{
			name: "quote in value",
			src:  "[[nodes]]\nid = \"a\"\nlabel = 'say \"hi\"'\n",
			code: errors.ErrCodeInvalidManifest,
			msg:  "double quotes",
		},
		{
			name: "unknown endpoint",
			src:  "[[nodes]]\nid = \"a\"\n[[edges]]\nfrom = \"a\"\nto = \"zz\"\n",
			code: errors.ErrCodeInvalidReference,
			msg:  `root edges[0] to: unknown id "zz"`,
		},
		{
			name: "missing endpoint",
			src:  "[[nodes]]\nid = \"a\"\n[[edges]]\nfrom = \"a\"\n",
			code: errors.ErrCodeInvalidReference,
			msg:  "missing endpoint",
		},
		{
			name: "node declared in later sibling",
			src: `[[scopes]]
kind = "cluster"
id = "box"
  [[scopes.nodes]]
  id = "x"
  [[scopes.edges]]
  from = "x"
  to = "late"
[[scopes]]
kind = "subgraph"
id = "b2"
  [[scopes.nodes]]
  id = "late"
`,
			code: errors.ErrCodeInvalidReference,
			msg:  `cluster "box" edges[0] to: unknown id "late"`,
		},
		{
			name: "empty cluster endpoint",
			src:  "[[nodes]]\nid = \"a\"\n[[scopes]]\nkind = \"cluster\"\nid = \"empty\"\n[[edges]]\nfrom = \"a\"\nto = \"empty\"\n",
			code: errors.ErrCodeEmptyEndpoint,
			msg:  `cluster "empty" contains no nodes`,
		},
		{
			name: "nested empty subgraph endpoint",
			src: `[[scopes]]
kind = "subgraph"
id = "outer"
  [[scopes.scopes]]
  kind = "subgraph"
  id = "inner"
[[edges]]
from = "outer"
to = "outer"
`,
			code: errors.ErrCodeEmptyEndpoint,
			msg:  "contains no nodes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := decodeTOML(t, tt.src)
			err := m.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err, tt.msg)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format Format
		code   errors.Code
	}{
		{"toml syntax", "nodes = [", FormatTOML, errors.ErrCodeInvalidManifest},
		{"toml unknown key", "[[nodes]]\nid = \"a\"\ncolour = \"red\"\n", FormatTOML, errors.ErrCodeInvalidManifest},
		{"json unknown key", `{"nodez": []}`, FormatJSON, errors.ErrCodeInvalidManifest},
		{"json trailing", `{} {}`, FormatJSON, errors.ErrCodeInvalidManifest},
		{"json type", `{"nodes": {}}`, FormatJSON, errors.ErrCodeInvalidManifest},
		{"yaml unknown key", "nodes:\n  - id: a\n    shape: box\n", FormatYAML, errors.ErrCodeInvalidManifest},
		{"yaml syntax", "nodes: [", FormatYAML, errors.ErrCodeInvalidManifest},
		{"unknown format", "{}", Format("xml"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML} {
		m, err := Decode(strings.NewReader(""), f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		b, err := m.Build()
		if err != nil {
			t.Fatalf("%s: Build: %v", f, err)
		}
		if got := dot.RenderGraph(b.Graph); got != "graph {\n}" {
			t.Errorf("%s: render = %q", f, got)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"graph.toml", FormatTOML, false},
		{"dir/graph.JSON", FormatJSON, false},
		{"graph.yaml", FormatYAML, false},
		{"graph.yml", FormatYAML, false},
		{"graph.dot", "", true},
		{"graph", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		ct      string
		want    Format
		wantErr bool
	}{
		{"application/toml", FormatTOML, false},
		{"application/json; charset=utf-8", FormatJSON, false},
		{"application/x-yaml", FormatYAML, false},
		{"text/yaml", FormatYAML, false},
		{"text/plain", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromContentType(tt.ct)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromContentType(%q) = %q, %v", tt.ct, got, err)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("FormatFromContentType(%q) code = %s", tt.ct, errors.GetCode(err))
		}
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, _, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile() error = %v, want FILE_NOT_FOUND", err)
	}
}

type loadHooks struct {
	observability.NoopPipelineHooks
	sources  []string
	entities []int
	errs     []error
}

func (h *loadHooks) OnLoadComplete(_ context.Context, source string, entities int, _ time.Duration, err error) {
	h.sources = append(h.sources, source)
	h.entities = append(h.entities, entities)
	h.errs = append(h.errs, err)
}

func TestLoadReportsToHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	hooks := &loadHooks{}
	observability.SetPipelineHooks(hooks)

	ctx := context.Background()
	if _, _, err := Load(ctx, "inline", strings.NewReader("[[nodes]]\nid = \"a\"\n"), FormatTOML); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(ctx, "broken", strings.NewReader("[[edges]]\nfrom = \"a\"\nto = \"b\"\n"), FormatTOML); err == nil {
		t.Fatal("expected error")
	}

	if len(hooks.sources) != 2 || hooks.sources[0] != "inline" || hooks.sources[1] != "broken" {
		t.Fatalf("sources = %v", hooks.sources)
	}
	if hooks.entities[0] != 1 || hooks.errs[0] != nil {
		t.Errorf("first load = %d entities, err %v", hooks.entities[0], hooks.errs[0])
	}
	if hooks.errs[1] == nil {
		t.Error("second load should report its error")
	}
}

func TestExampleManifests(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example manifests")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			if _, _, err := LoadFile(context.Background(), path); err != nil {
				t.Errorf("LoadFile(%s): %v", path, err)
			}
		})
	}
}
