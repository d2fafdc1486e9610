package infra

import (
	. "github.com/canopylabs/eks-observability/intrinsics"

	"github.com/canopylabs/eks-observability/internal/stack"
	"github.com/canopylabs/eks-observability/resources/ec2"
	"github.com/canopylabs/eks-observability/resources/eks"
	"github.com/canopylabs/eks-observability/resources/iam"
)

// ClusterConfig pins the cluster identity and control-plane version.
type ClusterConfig struct {
	Name    string
	Version string
}

// Cluster exposes the cluster's handle and ARN for downstream resources.
type Cluster struct {
	Ref Ref
	Arn GetAtt
}

// AddCluster declares the EKS control plane in the network's private subnets
// together with its IAM roles and a single-node managed nodegroup.
//
// The control plane streams the api, authenticator and audit logs; endpoint
// access is enabled both publicly and privately so the scraper can reach the
// API from inside the VPC while operators reach it from outside.
func AddCluster(s *stack.Stack, net *Network, cfg ClusterConfig) *Cluster {
	s.Add("ClusterRole", iam.Role{
		RoleName: Sub{String: "${AWS::StackName}-cluster-role"},
		AssumeRolePolicyDocument: PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				PolicyStatement{
					Effect:    "Allow",
					Principal: ServicePrincipal{"eks.amazonaws.com"},
					Action:    "sts:AssumeRole",
				},
			},
		},
		ManagedPolicyArns: Any(
			"arn:aws:iam::aws:policy/AmazonEKSClusterPolicy",
		),
	})

	controlPlaneSG := s.Add("ControlPlaneSecurityGroup", ec2.SecurityGroup{
		GroupDescription: "Security group for EKS control plane communication",
		VpcId:            net.VPC,
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-control-plane-sg"}},
		},
	})

	cluster := s.Add("Cluster", eks.Cluster{
		Name:    cfg.Name,
		Version: cfg.Version,
		RoleArn: GetAtt{LogicalName: "ClusterRole", Attribute: "Arn"},
		ResourcesVpcConfig: eks.Cluster_ResourcesVpcConfig{
			SubnetIds:             net.PrivateSubnetIDs(),
			SecurityGroupIds:      Any(controlPlaneSG),
			EndpointPublicAccess:  true,
			EndpointPrivateAccess: true,
		},
		Logging: eks.Cluster_Logging{
			ClusterLogging: eks.Cluster_ClusterLogging{
				EnabledTypes: []any{
					eks.Cluster_LoggingTypeConfig{Type_: "api"},
					eks.Cluster_LoggingTypeConfig{Type_: "authenticator"},
					eks.Cluster_LoggingTypeConfig{Type_: "audit"},
				},
			},
		},
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}"}},
		},
	})

	s.Add("NodeRole", iam.Role{
		RoleName: Sub{String: "${AWS::StackName}-node-role"},
		AssumeRolePolicyDocument: PolicyDocument{
			Version: "2012-10-17",
			Statement: []any{
				PolicyStatement{
					Effect:    "Allow",
					Principal: ServicePrincipal{"ec2.amazonaws.com"},
					Action:    "sts:AssumeRole",
				},
			},
		},
		ManagedPolicyArns: Any(
			"arn:aws:iam::aws:policy/AmazonEKSWorkerNodePolicy",
			"arn:aws:iam::aws:policy/AmazonEKS_CNI_Policy",
			"arn:aws:iam::aws:policy/AmazonEC2ContainerRegistryReadOnly",
		),
	})

	// Fixed capacity: exactly one m5.large node, no autoscaling.
	s.Add("Nodegroup", eks.Nodegroup{
		ClusterName:   cluster,
		NodegroupName: Sub{String: "${AWS::StackName}-nodes"},
		NodeRole:      GetAtt{LogicalName: "NodeRole", Attribute: "Arn"},
		Subnets:       net.PrivateSubnetIDs(),
		InstanceTypes: Any("m5.large"),
		AmiType:       "AL2_x86_64",
		CapacityType:  "ON_DEMAND",
		ScalingConfig: eks.Nodegroup_ScalingConfig{
			MinSize:     1,
			MaxSize:     1,
			DesiredSize: 1,
		},
	})

	s.AddOutput("ClusterName", outputOf("Name of the EKS cluster", cluster))
	s.AddOutput("ClusterArn", outputOf("ARN of the EKS cluster",
		GetAtt{LogicalName: "Cluster", Attribute: "Arn"}))

	return &Cluster{
		Ref: cluster,
		Arn: GetAtt{LogicalName: "Cluster", Attribute: "Arn"},
	}
}
