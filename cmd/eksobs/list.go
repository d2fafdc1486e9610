package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/infra"
)

func newListCmd() *cobra.Command {
	var (
		flags        stackFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stack's resources",
		Long: `List displays every CloudFormation resource in the stack.

Examples:
    eksobs list
    eksobs list --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(&flags, outputFormat)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(flags *stackFlags, format string) error {
	cfg, err := flags.config()
	if err != nil {
		return err
	}
	s, err := infra.Build(cfg)
	if err != nil {
		return err
	}

	result := eksobservability.ListResult{Resources: s.Resources()}
	return outputListResult(result, format)
}

func outputListResult(result eksobservability.ListResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if len(result.Resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		fmt.Printf("Registered resources (%d):\n\n", len(result.Resources))
		for _, res := range result.Resources {
			fmt.Printf("  %s: %s\n", res.Name, res.Type)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
