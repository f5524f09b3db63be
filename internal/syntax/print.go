package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of t to w, one node per line, with the
// trivia flags the multiline classifier looks at.
func Fprint(w io.Writer, t *Tree) error {
	return fprintNode(w, t, t.Root, 0)
}

func fprintNode(w io.Writer, t *Tree, n *Node, depth int) error {
	var flags []string
	if n.HasLeadingTrivia() {
		flags = append(flags, "leading")
	}
	if n.HasTrailingTrivia() {
		flags = append(flags, "trailing")
	}
	if n.HasStructuredTrivia() {
		flags = append(flags, "structured")
	}
	if !Transparent(n) {
		flags = append(flags, "opaque")
	}

	line := fmt.Sprintf("%s%s %q", strings.Repeat("  ", depth), n.Kind, t.Text(n))
	if len(flags) > 0 {
		line += " [" + strings.Join(flags, " ") + "]"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := fprintNode(w, t, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
