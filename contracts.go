// Package eksobservability declares an EKS observability stack in native Go:
// a VPC, an EKS cluster with a fixed-size nodegroup, an Amazon Managed
// Prometheus workspace with an attached scraper, a managed Grafana workspace,
// and the access bindings that let the scraper read cluster metrics.
//
// Resources are plain Go structs:
//
//	var Workspace = aps.Workspace{
//	    Alias: "demo-monitoring",
//	}
//
// The eksobs CLI assembles them into a stack and synthesizes a CloudFormation
// template plus the in-cluster access manifests. Deployment is delegated to
// CloudFormation (aws cloudformation deploy).
package eksobservability

// Resource is implemented by every CloudFormation resource struct in
// resources/. The returned string is the CloudFormation type, e.g.
// "AWS::APS::Workspace".
type Resource interface {
	ResourceType() string
}

// Template is a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// ResourceDef is a single resource in the CloudFormation template.
type ResourceDef struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

// Output is a CloudFormation stack output.
type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
	Export      *struct {
		Name string `json:"Name" yaml:"Name"`
	} `json:"Export,omitempty" yaml:"Export,omitempty"`
}

// SynthResult is the JSON output from `eksobs synth`.
type SynthResult struct {
	Success   bool     `json:"success"`
	Template  Template `json:"template,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ValidateResult is the JSON output from `eksobs validate`.
type ValidateResult struct {
	Success   bool     `json:"success"`
	Resources int      `json:"resources"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ListResult is the JSON output from `eksobs list`.
type ListResult struct {
	Resources []ListResource `json:"resources"`
}

// ListResource is a single resource in the list output.
type ListResource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
