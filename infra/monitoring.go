package infra

import (
	. "github.com/canopylabs/eks-observability/intrinsics"

	"github.com/canopylabs/eks-observability/internal/arn"
	"github.com/canopylabs/eks-observability/internal/stack"
	"github.com/canopylabs/eks-observability/resources/aps"
)

// MonitoringConfig names the metrics workspace and carries the scrape
// configuration blob.
type MonitoringConfig struct {
	WorkspaceAlias string
	ScrapeConfig   string
}

// Monitoring exposes the metrics workspace and scraper attributes needed by
// outputs and access bindings.
type Monitoring struct {
	WorkspaceArn   GetAtt
	ScraperRoleArn GetAtt
}

// AddMonitoring declares the managed Prometheus workspace and the managed
// scraper that pulls metrics from the cluster's private subnets into it.
// The scrape configuration blob is passed through verbatim; this stack never
// inspects it.
func AddMonitoring(s *stack.Stack, net *Network, cluster *Cluster, cfg MonitoringConfig) *Monitoring {
	s.Add("MetricsWorkspace", aps.Workspace{
		Alias: cfg.WorkspaceAlias,
	})

	workspaceArn := GetAtt{LogicalName: "MetricsWorkspace", Attribute: "Arn"}

	s.Add("Scraper", aps.Scraper{
		Alias: cfg.WorkspaceAlias + "-scraper",
		ScrapeConfiguration: aps.Scraper_ScrapeConfiguration{
			ConfigurationBlob: cfg.ScrapeConfig,
		},
		Source: aps.Scraper_Source{
			EksConfiguration: aps.Scraper_EksConfiguration{
				ClusterArn: cluster.Arn,
				SubnetIds:  net.PrivateSubnetIDs(),
			},
		},
		Destination: aps.Scraper_Destination{
			AmpConfiguration: aps.Scraper_AmpConfiguration{
				WorkspaceArn: workspaceArn,
			},
		},
	})

	scraperRoleArn := GetAtt{LogicalName: "Scraper", Attribute: "RoleArn"}

	s.AddOutput("MetricsWorkspaceArn", outputOf(
		"ARN of the managed Prometheus workspace", workspaceArn))
	s.AddOutput("MetricsEndpoint", outputOf(
		"Query endpoint of the managed Prometheus workspace",
		GetAtt{LogicalName: "MetricsWorkspace", Attribute: "PrometheusEndpoint"}))
	s.AddOutput("ScraperRoleArn", outputOf(
		"Execution role ARN generated for the scraper", scraperRoleArn))
	s.AddOutput("ScraperImportRoleArn", outputOf(
		"Scraper execution role ARN reshaped for identity-mapping import",
		arn.ImportableRoleArnExpr(scraperRoleArn)))

	return &Monitoring{
		WorkspaceArn:   workspaceArn,
		ScraperRoleArn: scraperRoleArn,
	}
}
