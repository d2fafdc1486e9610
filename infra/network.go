package infra

import (
	"fmt"

	. "github.com/canopylabs/eks-observability/intrinsics"

	"github.com/canopylabs/eks-observability/internal/stack"
	"github.com/canopylabs/eks-observability/resources/ec2"
)

// NetworkConfig sizes the network tier.
type NetworkConfig struct {
	// AZCount is the number of availability zones to span, between 1 and 8.
	AZCount int

	// CidrBlock is the VPC address space. Defaults to 10.0.0.0/16.
	CidrBlock string
}

// Network exposes the pieces of the network tier that later resources place
// themselves into.
type Network struct {
	VPC            Ref
	PublicSubnets  []Ref
	PrivateSubnets []Ref
}

// PrivateSubnetIDs returns the refs of the private (egress-capable) subnets,
// in availability-zone order. This is the subnet list handed to the cluster
// and the scraper.
func (n *Network) PrivateSubnetIDs() []any {
	ids := make([]any, len(n.PrivateSubnets))
	for i, ref := range n.PrivateSubnets {
		ids[i] = ref
	}
	return ids
}

// AddNetwork declares the VPC with a public and a private subnet tier per
// availability zone. Public subnets route through an internet gateway;
// private subnets route through a single NAT gateway in the first public
// subnet, which is what makes them egress-capable. DNS support and DNS
// hostnames are always on; the cluster and scraper both need name
// resolution inside the VPC.
func AddNetwork(s *stack.Stack, cfg NetworkConfig) (*Network, error) {
	if cfg.AZCount < 1 {
		return nil, fmt.Errorf("availability zone count must be at least 1, got %d", cfg.AZCount)
	}
	// The /24-per-tier CIDR plan below overlaps past 8 zones.
	if cfg.AZCount > 8 {
		return nil, fmt.Errorf("availability zone count must be at most 8, got %d", cfg.AZCount)
	}
	cidr := cfg.CidrBlock
	if cidr == "" {
		cidr = "10.0.0.0/16"
	}

	net := &Network{}

	net.VPC = s.Add("Vpc", ec2.VPC{
		CidrBlock:          cidr,
		EnableDnsHostnames: true,
		EnableDnsSupport:   true,
		InstanceTenancy:    "default",
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-vpc"}},
		},
	})

	igw := s.Add("InternetGateway", ec2.InternetGateway{
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-igw"}},
		},
	})

	s.Add("VpcGatewayAttachment", ec2.VPCGatewayAttachment{
		VpcId:             net.VPC,
		InternetGatewayId: igw,
	})

	for i := 0; i < cfg.AZCount; i++ {
		az := Select{Index: i, List: GetAZs{}}
		suffix := azSuffix(i)

		public := s.Add("PublicSubnet"+suffix, ec2.Subnet{
			VpcId:               net.VPC,
			CidrBlock:           fmt.Sprintf("10.0.%d.0/24", i+1),
			AvailabilityZone:    az,
			MapPublicIpOnLaunch: true,
			Tags: []any{
				Tag{Key: "Name", Value: Sub{String: fmt.Sprintf("${AWS::StackName}-public-%s", suffix)}},
				Tag{Key: "kubernetes.io/role/elb", Value: "1"},
			},
		})
		net.PublicSubnets = append(net.PublicSubnets, public)

		private := s.Add("PrivateSubnet"+suffix, ec2.Subnet{
			VpcId:            net.VPC,
			CidrBlock:        fmt.Sprintf("10.0.%d.0/24", i+10),
			AvailabilityZone: az,
			Tags: []any{
				Tag{Key: "Name", Value: Sub{String: fmt.Sprintf("${AWS::StackName}-private-%s", suffix)}},
				Tag{Key: "kubernetes.io/role/internal-elb", Value: "1"},
			},
		})
		net.PrivateSubnets = append(net.PrivateSubnets, private)
	}

	s.Add("NatGatewayEip", ec2.EIP{
		Domain: "vpc",
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-nat-eip"}},
		},
	})
	s.DependsOn("NatGatewayEip", "VpcGatewayAttachment")

	nat := s.Add("NatGateway", ec2.NatGateway{
		AllocationId: GetAtt{LogicalName: "NatGatewayEip", Attribute: "AllocationId"},
		SubnetId:     net.PublicSubnets[0],
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-nat"}},
		},
	})

	publicRT := s.Add("PublicRouteTable", ec2.RouteTable{
		VpcId: net.VPC,
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-public-rt"}},
		},
	})
	s.Add("PublicRoute", ec2.Route{
		RouteTableId:         publicRT,
		DestinationCidrBlock: "0.0.0.0/0",
		GatewayId:            igw,
	})
	// A route to an internet gateway is only valid once the gateway is
	// attached.
	s.DependsOn("PublicRoute", "VpcGatewayAttachment")

	privateRT := s.Add("PrivateRouteTable", ec2.RouteTable{
		VpcId: net.VPC,
		Tags: []any{
			Tag{Key: "Name", Value: Sub{String: "${AWS::StackName}-private-rt"}},
		},
	})
	s.Add("PrivateRoute", ec2.Route{
		RouteTableId:         privateRT,
		DestinationCidrBlock: "0.0.0.0/0",
		NatGatewayId:         nat,
	})

	for i := 0; i < cfg.AZCount; i++ {
		suffix := azSuffix(i)
		s.Add("PublicSubnet"+suffix+"RouteTableAssociation", ec2.SubnetRouteTableAssociation{
			SubnetId:     net.PublicSubnets[i],
			RouteTableId: publicRT,
		})
		s.Add("PrivateSubnet"+suffix+"RouteTableAssociation", ec2.SubnetRouteTableAssociation{
			SubnetId:     net.PrivateSubnets[i],
			RouteTableId: privateRT,
		})
	}

	return net, nil
}

// azSuffix names per-zone resources A, B, C, ...
func azSuffix(i int) string {
	return string(rune('A' + i))
}
