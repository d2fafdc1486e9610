package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canopylabs/eks-observability/infra"
)

// stackFlags binds the deployment parameters shared by the commands that
// assemble the stack.
type stackFlags struct {
	stackName      string
	account        string
	region         string
	azCount        int
	clusterName    string
	clusterVersion string
	workspaceAlias string
	scrapeConfig   string
}

func (f *stackFlags) register(cmd *cobra.Command) {
	defaults := infra.DefaultConfig()

	cmd.Flags().StringVar(&f.stackName, "stack-name", defaults.StackName, "CloudFormation stack name")
	cmd.Flags().StringVar(&f.account, "account", defaults.Account, "AWS account the Grafana role trusts")
	cmd.Flags().StringVar(&f.region, "region", defaults.Region, "AWS region for deploy hints")
	cmd.Flags().IntVar(&f.azCount, "az-count", defaults.AZCount, "Number of availability zones (1-8)")
	cmd.Flags().StringVar(&f.clusterName, "cluster-name", defaults.ClusterName, "EKS cluster name")
	cmd.Flags().StringVar(&f.clusterVersion, "cluster-version", defaults.ClusterVersion, "EKS control plane version")
	cmd.Flags().StringVar(&f.workspaceAlias, "workspace-alias", defaults.WorkspaceAlias, "Prometheus workspace alias")
	cmd.Flags().StringVar(&f.scrapeConfig, "scrape-config", "scrape-config.yaml", "Path to the scraper configuration file")
}

// config loads the scrape configuration file and assembles the stack config.
func (f *stackFlags) config() (infra.Config, error) {
	data, err := os.ReadFile(f.scrapeConfig)
	if err != nil {
		return infra.Config{}, fmt.Errorf("reading scrape config: %w", err)
	}

	return infra.Config{
		StackName:      f.stackName,
		Account:        f.account,
		Region:         f.region,
		AZCount:        f.azCount,
		ClusterName:    f.clusterName,
		ClusterVersion: f.clusterVersion,
		WorkspaceAlias: f.workspaceAlias,
		ScrapeConfig:   string(data),
	}, nil
}
