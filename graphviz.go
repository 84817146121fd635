package fsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the machine for visualization.
// Every registered state is a node; the current state is highlighted, the previous
// state is shaded, and the last transition is drawn as an edge.
func (m *Machine[C]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	current, previous := stateName(m.current), stateName(m.previous)

	names := make(g.Slice[g.String], 0, len(m.registry))
	for _, s := range m.registry {
		names.Push(stateName(s))
	}

	names.SortBy(cmp.Cmp)

	for name := range names.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", name))

		switch {
		case m.current != nil && name == current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case m.previous != nil && name == previous:
			attrs.Push("fillcolor=\"#d3d3d3\"")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", name, attrs.Join(", ")))
	}

	if m.previous != nil && m.current != nil {
		b.WriteByte('\n')
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" last \", color=\"#2e8b57\"];\n", previous, current))
	}

	b.WriteString("\n  subgraph cluster_legend {\n")
	b.WriteString("    label = \"Legend\";\n")
	b.WriteString("    style = dashed;\n")
	b.WriteString(`    key [label=<
      <table border="0" cellpadding="4" cellspacing="0" cellborder="0">
        <tr><td align="right">●</td><td>Registered state</td></tr>
        <tr><td align="right"><font color="green">◎</font></td><td>Current state</td></tr>
        <tr><td align="right"><font color="gray">●</font></td><td>Previous state</td></tr>
        <tr><td align="right"><font color="seagreen">→</font></td><td>Last transition</td></tr>
      </table>
    >, shape=none];`)

	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}
