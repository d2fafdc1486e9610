package infra

import (
	. "github.com/canopylabs/eks-observability/intrinsics"

	"github.com/canopylabs/eks-observability/internal/stack"
	"github.com/canopylabs/eks-observability/resources/grafana"
	"github.com/canopylabs/eks-observability/resources/iam"
)

// DashboardConfig names the Grafana workspace and pins the account its
// execution role trusts.
type DashboardConfig struct {
	Name    string
	Account string
}

// AddDashboard declares the managed Grafana workspace with an execution role
// whose only permission is read access to the managed Prometheus service.
// The workspace authenticates users through AWS SSO and never touches the
// cluster.
func AddDashboard(s *stack.Stack, cfg DashboardConfig) {
	s.Add("DashboardWorkspaceRole", iam.Role{
		RoleName: Sub{String: "${AWS::StackName}-grafana-role"},
		AssumeRolePolicyDocument: PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				PolicyStatement{
					Effect:    "Allow",
					Principal: ServicePrincipal{"grafana.amazonaws.com"},
					Action:    "sts:AssumeRole",
					Condition: Json{
						StringEquals: Json{"aws:SourceAccount": cfg.Account},
					},
				},
			},
		},
		ManagedPolicyArns: Any(
			"arn:aws:iam::aws:policy/AmazonPrometheusQueryAccess",
		),
	})

	s.Add("DashboardWorkspace", grafana.Workspace{
		Name:                    cfg.Name,
		Description:             "Dashboards for cluster metrics",
		AccountAccessType:       "CURRENT_ACCOUNT",
		AuthenticationProviders: Any("AWS_SSO"),
		PermissionType:          "SERVICE_MANAGED",
		RoleArn:                 GetAtt{LogicalName: "DashboardWorkspaceRole", Attribute: "Arn"},
		DataSources:             Any("PROMETHEUS"),
		PluginAdminEnabled:      true,
	})

	s.AddOutput("DashboardEndpoint", outputOf(
		"URL of the Grafana workspace",
		GetAtt{LogicalName: "DashboardWorkspace", Attribute: "Endpoint"}))
}
