// Package grafana provides the Amazon Managed Grafana CloudFormation
// resource type for the dashboarding workspace.
package grafana

// Workspace represents an AWS::Grafana::Workspace resource.
type Workspace struct {
	Name                    string
	Description             string
	AccountAccessType       string
	AuthenticationProviders []any
	PermissionType          string
	RoleArn                 any
	DataSources             []any
	PluginAdminEnabled      bool
}

// ResourceType returns the CloudFormation type.
func (Workspace) ResourceType() string { return "AWS::Grafana::Workspace" }
