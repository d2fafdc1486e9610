// Package aps provides the Amazon Managed Service for Prometheus
// CloudFormation resource types: the metrics workspace and the managed
// scraper that feeds it.
package aps

// Workspace represents an AWS::APS::Workspace resource.
type Workspace struct {
	Alias string
	Tags  []any
}

// ResourceType returns the CloudFormation type.
func (Workspace) ResourceType() string { return "AWS::APS::Workspace" }

// Scraper represents an AWS::APS::Scraper resource. The scraper pulls
// metrics from the source EKS cluster and remote-writes them into the
// destination workspace. AWS provisions the scraper's execution role; its
// ARN surfaces as the RoleArn attribute.
type Scraper struct {
	Alias               string
	ScrapeConfiguration Scraper_ScrapeConfiguration
	Source              Scraper_Source
	Destination         Scraper_Destination
	Tags                []any
}

// ResourceType returns the CloudFormation type.
func (Scraper) ResourceType() string { return "AWS::APS::Scraper" }

// Scraper_ScrapeConfiguration carries the scrape-job configuration blob,
// passed through to the scraper verbatim.
type Scraper_ScrapeConfiguration struct {
	ConfigurationBlob string
}

// Scraper_Source identifies the EKS cluster the scraper collects from.
type Scraper_Source struct {
	EksConfiguration Scraper_EksConfiguration
}

// Scraper_EksConfiguration places the scraper in the cluster's network.
type Scraper_EksConfiguration struct {
	ClusterArn       any
	SubnetIds        []any
	SecurityGroupIds []any
}

// Scraper_Destination identifies the workspace the scraper writes to.
type Scraper_Destination struct {
	AmpConfiguration Scraper_AmpConfiguration
}

// Scraper_AmpConfiguration references the destination workspace by ARN.
type Scraper_AmpConfiguration struct {
	WorkspaceArn any
}
