package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canopylabs/eks-observability/infra"
	"github.com/canopylabs/eks-observability/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var (
		flags        stackFlags
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the dependency graph",
		Long: `Graph renders the stack's dependency graph, including the post-deploy
manifest nodes, as Graphviz DOT or Mermaid.

Examples:
    eksobs graph | dot -Tsvg -o stack.svg
    eksobs graph --format mermaid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(&flags, outputFormat, outputFile)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runGraph(flags *stackFlags, format, outputFile string) error {
	var gf graph.Format
	switch format {
	case "dot":
		gf = graph.FormatDOT
	case "mermaid":
		gf = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := flags.config()
	if err != nil {
		return err
	}
	s, err := infra.Build(cfg)
	if err != nil {
		return err
	}

	gen := &graph.Generator{Format: gf}
	if outputFile == "" {
		return gen.Generate(s, os.Stdout)
	}

	out, err := gen.GenerateString(s)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, []byte(out), 0644)
}
