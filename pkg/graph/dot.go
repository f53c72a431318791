package graph

import (
	"fmt"
	"strings"

	"github.com/petrijr/regular/pkg/definition"
)

// Dot produces a Graphviz digraph for def.
func Dot(def definition.Definition) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph \"%s\" {\n", EscapeLabel(def.Name)))
	sb.WriteString("rankdir=\"LR\"\n")
	sb.WriteString("node [shape=circle]\n")

	acc := accepting(def)
	for _, st := range def.States {
		name := EscapeLabel(st)
		attrs := []string{fmt.Sprintf("label=\"%s\"", name)}
		if acc[st] {
			attrs = append(attrs, "shape=doublecircle")
		}
		if def.Dead != "" && st == def.Dead {
			attrs = append(attrs, "style=\"dashed\"")
		}
		sb.WriteString(fmt.Sprintf("\"%s\" [%s];\n", name, strings.Join(attrs, ", ")))
	}

	for _, e := range edges(def) {
		sb.WriteString(fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];\n",
			EscapeLabel(def.States[e.from]), EscapeLabel(def.States[e.to]), EscapeLabel(e.label)))
	}

	sb.WriteString(" init [label=\"\", shape=point];\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]\n", EscapeLabel(def.Start)))
	sb.WriteString("}\n")
	return sb.String()
}

// EscapeLabel escapes special characters in a DOT string.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}
