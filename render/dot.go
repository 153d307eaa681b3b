// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/lvgrad/topo"
	"github.com/katalvlaran/lvgrad/value"
)

// DOT builds the diagram of root's dependency closure.
// Complexity: O(V+E) over the closure.
func DOT(root value.Node, opts ...Option) *dot.Graph {
	cfg := newConfig(opts...)

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", cfg.rankDir)

	// Operands precede results in a topological order, so every edge source
	// is already in elems when the edge is emitted.
	elems := make(map[value.ID]dot.Node)
	for _, n := range topo.Linearize(root) {
		elem := g.Node(strconv.Itoa(int(n.ID()))).
			Attr("shape", "record").
			Attr("label", label(n, cfg.names))
		elems[n.ID()] = elem

		for _, operand := range n.Operands() {
			g.Edge(elems[operand.ID()], elem)
		}
	}

	return g
}

// WriteDOT writes the DOT text of root's dependency closure to w.
func WriteDOT(w io.Writer, root value.Node, opts ...Option) error {
	if _, err := io.WriteString(w, DOT(root, opts...).String()); err != nil {
		return fmt.Errorf("render: WriteDOT: %w", err)
	}

	return nil
}

// recordEscaper escapes the characters that are structural inside a quoted
// record label.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"{", `\{`,
	"}", `\}`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
)

// label formats the quoted record label of n. Names are escaped so they stay
// a single field; the " | " separators are emitted as-is.
func label(n value.Node, names map[value.ID]string) dot.Literal {
	text := n.String()
	if name, ok := names[n.ID()]; ok {
		text = recordEscaper.Replace(name) + " | " + text
	}

	return dot.Literal(`"` + text + `"`)
}
