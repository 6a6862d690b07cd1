package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/behollister/quadtree"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed lists each locally stored circle in the node labels.
	// When false, only a circle count is shown.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format. Node ids are quadrant
// paths from the root; nodes holding circles parked above a subdivision
// are drawn dashed with a grey fill. Render the result with [RenderSVG].
func ToDOT(t *quadtree.Tree, opts Options) string {
	w := &dotWriter{detailed: opts.Detailed}
	var root *quadtree.Node
	t.Walk(func(n *quadtree.Node) bool {
		root = n
		return false
	})
	if root != nil {
		w.walk(root, "root")
	}

	var buf bytes.Buffer
	buf.WriteString("digraph quadtree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")
	for _, line := range w.nodes {
		buf.WriteString(line)
	}
	buf.WriteString("\n")
	for _, line := range w.edges {
		buf.WriteString(line)
	}
	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	detailed bool
	nodes    []string
	edges    []string
}

func (w *dotWriter) walk(n *quadtree.Node, id string) {
	label := fmtLabel(n, id, w.detailed)
	attrs := fmtAttrs(n, label)
	w.nodes = append(w.nodes, fmt.Sprintf("  %q [%s];\n", id, strings.Join(attrs, ", ")))
	if n.IsLeaf() {
		return
	}
	for q := quadtree.NE; q <= quadtree.SE; q++ {
		childID := id + "/" + q.String()
		w.edges = append(w.edges, fmt.Sprintf("  %q -> %q [label=%q];\n", id, childID, q.String()))
		w.walk(n.Child(q), childID)
	}
}

func fmtLabel(n *quadtree.Node, id string, detailed bool) string {
	label := fmt.Sprintf("%s\n%v", id, n.Region())
	if !detailed {
		if len(n.Circles()) > 0 {
			label += fmt.Sprintf("\ncircles: %d", len(n.Circles()))
		}
		return label
	}
	for _, c := range n.Circles() {
		line := c.String()
		if c.MultiQuadrant() {
			line += " multi"
		}
		label += "\n" + line
	}
	return label
}

func fmtAttrs(n *quadtree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	for _, c := range n.Circles() {
		if c.MultiQuadrant() {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
			break
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
