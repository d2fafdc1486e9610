// Package graph renders the stack dependency graph in DOT or Mermaid
// format.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	"github.com/canopylabs/eks-observability/internal/stack"
)

// Format selects the rendering output.
type Format string

const (
	// FormatDOT outputs Graphviz DOT.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid for markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator renders dependency graphs from an assembled stack.
type Generator struct {
	// Format selects the output. Defaults to DOT.
	Format Format
}

// Generate renders the stack's dependency graph to w. Resources are drawn
// as boxes labeled with their CloudFormation type; post-deploy manifest
// nodes are dashed ellipses. Edges point from a node to what it depends on.
func (g *Generator) Generate(s *stack.Stack, w io.Writer) error {
	deps, err := s.Dependencies()
	if err != nil {
		return err
	}

	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")
	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	for _, res := range s.Resources() {
		graph.Node(res.Name).Label(res.Name + "\\n" + res.Type)
	}
	for _, m := range s.Manifests() {
		n := graph.Node(m.Name)
		n.Attr("shape", "ellipse")
		n.Attr("style", "dashed")
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range deps[name] {
			graph.Edge(graph.Node(name), graph.Node(dep))
		}
	}

	var rendered string
	if g.Format == FormatMermaid {
		rendered = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		rendered = graph.String()
	}

	_, err = io.WriteString(w, rendered)
	return err
}

// GenerateString renders the graph to a string.
func (g *Generator) GenerateString(s *stack.Stack) (string, error) {
	var sb strings.Builder
	if err := g.Generate(s, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
