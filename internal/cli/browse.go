package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/pkg/attrs"
	"github.com/matzehuels/graphwiz/pkg/graph"
	"github.com/matzehuels/graphwiz/pkg/manifest"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <manifest>",
		Short: "Explore a manifest's scopes interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, built, err := manifest.LoadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(built),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(c.out),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}
}

// treeRow is one visible line of the scope tree.
type treeRow struct {
	entity graph.Entity
	depth  int
}

// BrowseModel is the bubbletea model for the scope tree browser.
type BrowseModel struct {
	built     *manifest.Built
	collapsed map[graph.Entity]bool
	rows      []treeRow
	Cursor    int
	Offset    int
	Height    int
}

func newBrowseModel(b *manifest.Built) BrowseModel {
	m := BrowseModel{
		built:     b,
		collapsed: make(map[graph.Entity]bool),
		Height:    15,
	}
	m.rows = m.flatten()
	return m
}

// flatten lists the visible entities depth-first in render order.
func (m BrowseModel) flatten() []treeRow {
	g := m.built.Graph
	var rows []treeRow
	var walk func(scope graph.Entity, depth int)
	walk = func(scope graph.Entity, depth int) {
		rows = append(rows, treeRow{entity: scope, depth: depth})
		if m.collapsed[scope] {
			return
		}
		mem := g.Members(scope)
		for _, n := range mem.Nodes {
			rows = append(rows, treeRow{entity: n, depth: depth + 1})
		}
		for _, e := range mem.Edges {
			rows = append(rows, treeRow{entity: e, depth: depth + 1})
		}
		for _, sub := range mem.Subgraphs {
			walk(sub, depth+1)
		}
	}
	walk(g.Root(), 0)
	return rows
}

// Selected returns the entity under the cursor.
func (m BrowseModel) Selected() graph.Entity {
	return m.rows[m.Cursor].entity
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-len(m.rows))
		case "end", "G":
			m.move(len(m.rows))
		case "enter", " ":
			e := m.Selected()
			if e.Kind().IsScope() {
				m.collapsed[e] = !m.collapsed[e]
				m.rows = m.flatten()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta rows and keeps it inside the window.
func (m *BrowseModel) move(delta int) {
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.rows)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scopes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.rows))
	for i := m.Offset; i < end; i++ {
		row := m.rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", row.depth) + m.marker(row.entity) + m.title(row.entity)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if row.entity.Kind() == graph.KindEdge {
			b.WriteString(listDimStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(m.details(m.Selected()))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))
	return b.String()
}

func (m BrowseModel) marker(e graph.Entity) string {
	if !e.Kind().IsScope() {
		return ""
	}
	if m.collapsed[e] {
		return "+ "
	}
	return "- "
}

// title names e by its manifest id, falling back to its DOT name.
func (m BrowseModel) title(e graph.Entity) string {
	g := m.built.Graph
	if e == g.Root() {
		return "root"
	}
	if e.Kind() == graph.KindEdge {
		info := g.Edge(e)
		return m.name(info.HeadNode) + " → " + m.name(info.TailNode)
	}
	return e.Kind().String() + " " + m.name(e)
}

func (m BrowseModel) name(e graph.Entity) string {
	if id, ok := m.built.ID(e); ok {
		return id
	}
	return dot.Name(m.built.Graph, e)
}

// details lists the attributes of e, including lhead and ltail for edges.
func (m BrowseModel) details(e graph.Entity) string {
	g := m.built.Graph
	a := g.Attributes(e)
	if e.Kind() == graph.KindEdge {
		info := g.Edge(e)
		if sg, ok := info.HeadSubgraph(); ok {
			a[attrs.LHead] = m.name(sg)
		}
		if sg, ok := info.TailSubgraph(); ok {
			a[attrs.LTail] = m.name(sg)
		}
	}

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(dot.Name(g, e)))
	b.WriteString("\n")
	if len(a) == 0 {
		b.WriteString(listDimStyle.Render("  no attributes"))
		b.WriteString("\n")
	}
	for _, k := range slices.Sorted(maps.Keys(a)) {
		b.WriteString("  " + listDimStyle.Render(k+" =") + " " + StyleValue.Render(a[k]) + "\n")
	}
	return b.String()
}
