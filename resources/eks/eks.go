// Package eks provides the Amazon EKS CloudFormation resource types used by
// the stack: the cluster control plane and its managed nodegroup.
package eks

// Cluster represents an AWS::EKS::Cluster resource.
type Cluster struct {
	Name               any
	Version            string
	RoleArn            any
	ResourcesVpcConfig Cluster_ResourcesVpcConfig
	Logging            Cluster_Logging
	Tags               []any
}

// ResourceType returns the CloudFormation type.
func (Cluster) ResourceType() string { return "AWS::EKS::Cluster" }

// Cluster_ResourcesVpcConfig defines subnet placement and endpoint access for
// the control plane.
type Cluster_ResourcesVpcConfig struct {
	SubnetIds             []any
	SecurityGroupIds      []any
	EndpointPublicAccess  bool
	EndpointPrivateAccess bool
}

// Cluster_Logging wraps the control-plane log stream selection.
type Cluster_Logging struct {
	ClusterLogging Cluster_ClusterLogging
}

// Cluster_ClusterLogging lists the enabled control-plane log types.
type Cluster_ClusterLogging struct {
	EnabledTypes []any
}

// Cluster_LoggingTypeConfig names a single control-plane log stream.
type Cluster_LoggingTypeConfig struct {
	Type_ string `json:"Type"`
}

// Nodegroup represents an AWS::EKS::Nodegroup resource.
type Nodegroup struct {
	ClusterName   any
	NodegroupName any
	NodeRole      any
	Subnets       []any
	InstanceTypes []any
	AmiType       string
	CapacityType  string
	ScalingConfig Nodegroup_ScalingConfig
	Labels        map[string]any
	Tags          map[string]any
}

// ResourceType returns the CloudFormation type.
func (Nodegroup) ResourceType() string { return "AWS::EKS::Nodegroup" }

// Nodegroup_ScalingConfig fixes the nodegroup size.
type Nodegroup_ScalingConfig struct {
	MinSize     int
	MaxSize     int
	DesiredSize int
}
