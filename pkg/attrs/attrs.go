// Package attrs names the DOT attributes understood by Graphviz.
//
// Attribute keys in package graph are plain strings, so any key can be used;
// these constants only save typing the literals:
//
//	b.DefaultsMut(graph.KindNode)[attrs.Shape] = "box"
//
// Graphviz is case sensitive: [Damping], [K], [TBBalance] and the *URL
// attributes keep their mixed-case spelling.
package attrs

import (
	"slices"
	"strings"
)

// All returns every known attribute name, sorted.
func All() []string {
	out := slices.Clone(all)
	slices.Sort(out)
	return out
}

// Known reports whether name is a known attribute.
func Known(name string) bool {
	return slices.Contains(all, name)
}

// Match returns the sorted attribute names containing substr, ignoring case.
// An empty substr matches everything.
func Match(substr string) []string {
	substr = strings.ToLower(substr)
	var out []string
	for _, name := range All() {
		if strings.Contains(strings.ToLower(name), substr) {
			out = append(out, name)
		}
	}
	return out
}
