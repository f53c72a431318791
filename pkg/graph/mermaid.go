package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/petrijr/regular/pkg/definition"
)

// Mermaid produces a Mermaid flowchart for def.
//
// Node identifiers are derived from the declaration index, so state names
// never need sanitizing; names only appear in quoted labels.
func Mermaid(def definition.Definition) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	acc := accepting(def)
	sb.WriteString("    start_(( ))\n")
	if i := slices.Index(def.States, def.Start); i >= 0 {
		sb.WriteString(fmt.Sprintf("    start_ --> %s\n", mermaidID(i)))
	}

	for i, st := range def.States {
		opener, closer := "((", "))"
		if acc[st] {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(i), opener, escapeMermaid(st), closer))
	}

	for _, e := range edges(def) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", mermaidID(e.from), escapeMermaid(e.label), mermaidID(e.to)))
	}

	if i := slices.Index(def.States, def.Dead); def.Dead != "" && i >= 0 {
		sb.WriteString("    classDef dead stroke-dasharray: 5 5;\n")
		sb.WriteString(fmt.Sprintf("    class %s dead;\n", mermaidID(i)))
	}

	return sb.String()
}

func mermaidID(i int) string {
	return fmt.Sprintf("s%d", i)
}

// escapeMermaid replaces characters that end a quoted Mermaid label.
func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
