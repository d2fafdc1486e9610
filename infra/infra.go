// Package infra declares the EKS observability stack: a VPC, an EKS cluster
// with a fixed-size nodegroup, a managed Prometheus workspace fed by a
// managed scraper, the scraper's in-cluster access bindings, and a managed
// Grafana workspace for dashboards.
//
// Build assembles the whole dependency graph once; synthesis and deployment
// are the CLI's and CloudFormation's business.
package infra

import (
	"fmt"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/internal/stack"
)

// Config parameterizes the stack. The defaults describe the single
// deployment this repository exists for; only the scrape configuration is
// genuinely external input.
type Config struct {
	StackName string
	Account   string
	Region    string

	AZCount        int
	ClusterName    string
	ClusterVersion string
	WorkspaceAlias string

	// ScrapeConfig is the scrape-job configuration blob, passed to the
	// scraper verbatim. Its contents are never interpreted here.
	ScrapeConfig string
}

// DefaultConfig returns the fixed deployment parameters.
func DefaultConfig() Config {
	return Config{
		StackName:      "eks-observability",
		Account:        "111122223333",
		Region:         "us-west-2",
		AZCount:        3,
		ClusterName:    "obs-cluster",
		ClusterVersion: "1.31",
		WorkspaceAlias: "obs-metrics",
	}
}

// Build constructs the complete stack from the configuration.
func Build(cfg Config) (*stack.Stack, error) {
	if cfg.StackName == "" {
		return nil, fmt.Errorf("stack name must not be empty")
	}
	if cfg.ScrapeConfig == "" {
		return nil, fmt.Errorf("scrape configuration must not be empty")
	}

	s := stack.New(cfg.StackName,
		"EKS cluster with managed Prometheus metrics collection and Grafana dashboards")

	net, err := AddNetwork(s, NetworkConfig{AZCount: cfg.AZCount})
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	cluster := AddCluster(s, net, ClusterConfig{
		Name:    cfg.ClusterName,
		Version: cfg.ClusterVersion,
	})

	AddMonitoring(s, net, cluster, MonitoringConfig{
		WorkspaceAlias: cfg.WorkspaceAlias,
		ScrapeConfig:   cfg.ScrapeConfig,
	})

	AddScraperAccess(s)

	AddDashboard(s, DashboardConfig{
		Name:    cfg.StackName + "-dashboards",
		Account: cfg.Account,
	})

	return s, nil
}

// outputOf builds a stack output.
func outputOf(description string, value any) eksobservability.Output {
	return eksobservability.Output{Description: description, Value: value}
}
