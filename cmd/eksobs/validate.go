package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/infra"
	"github.com/canopylabs/eks-observability/internal/validation"
)

func newValidateCmd() *cobra.Command {
	var (
		flags        stackFlags
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the stack without emitting a template",
		Long: `Validate assembles the stack, resolves every dependency edge, checks the
graph for cycles and dangling references, and lints the synthesized
template with cfn-lint.

Examples:
    eksobs validate
    eksobs validate --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(&flags, outputFormat)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runValidate(flags *stackFlags, format string) error {
	result := validateStack(flags)

	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Printf("Stack valid: %d resources\n", result.Resources)
		}
		for _, w := range result.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateStack(flags *stackFlags) eksobservability.ValidateResult {
	cfg, err := flags.config()
	if err != nil {
		return eksobservability.ValidateResult{Errors: []string{err.Error()}}
	}

	s, err := infra.Build(cfg)
	if err != nil {
		return eksobservability.ValidateResult{Errors: []string{err.Error()}}
	}

	tmpl, err := s.Template()
	if err != nil {
		return eksobservability.ValidateResult{
			Resources: len(s.Resources()),
			Errors:    []string{err.Error()},
		}
	}

	var warnings []string
	if cfg.AZCount == 1 {
		warnings = append(warnings, "a single availability zone leaves the cluster without zone redundancy")
	}

	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return eksobservability.ValidateResult{
			Resources: len(s.Resources()),
			Errors:    []string{err.Error()},
			Warnings:  warnings,
		}
	}

	report, err := validation.LintTemplateBytes(data)
	if err != nil {
		return eksobservability.ValidateResult{
			Resources: len(s.Resources()),
			Errors:    []string{err.Error()},
			Warnings:  warnings,
		}
	}
	warnings = append(warnings, report.Warnings...)
	warnings = append(warnings, report.Informational...)

	return eksobservability.ValidateResult{
		Success:   report.Passed,
		Resources: len(s.Resources()),
		Errors:    report.Errors,
		Warnings:  warnings,
	}
}
