// Package ec2 provides the Amazon EC2 CloudFormation resource types used by
// the stack's network tier.
package ec2

// VPC represents an AWS::EC2::VPC resource.
type VPC struct {
	CidrBlock          any
	EnableDnsHostnames bool
	EnableDnsSupport   bool
	InstanceTenancy    string
	Tags               []any
}

// ResourceType returns the CloudFormation type.
func (VPC) ResourceType() string { return "AWS::EC2::VPC" }

// Subnet represents an AWS::EC2::Subnet resource.
type Subnet struct {
	VpcId               any
	CidrBlock           any
	AvailabilityZone    any
	MapPublicIpOnLaunch bool
	Tags                []any
}

// ResourceType returns the CloudFormation type.
func (Subnet) ResourceType() string { return "AWS::EC2::Subnet" }

// InternetGateway represents an AWS::EC2::InternetGateway resource.
type InternetGateway struct {
	Tags []any
}

// ResourceType returns the CloudFormation type.
func (InternetGateway) ResourceType() string { return "AWS::EC2::InternetGateway" }

// VPCGatewayAttachment represents an AWS::EC2::VPCGatewayAttachment resource.
type VPCGatewayAttachment struct {
	VpcId             any
	InternetGatewayId any
}

// ResourceType returns the CloudFormation type.
func (VPCGatewayAttachment) ResourceType() string { return "AWS::EC2::VPCGatewayAttachment" }

// EIP represents an AWS::EC2::EIP resource.
type EIP struct {
	Domain string
	Tags   []any
}

// ResourceType returns the CloudFormation type.
func (EIP) ResourceType() string { return "AWS::EC2::EIP" }

// NatGateway represents an AWS::EC2::NatGateway resource.
type NatGateway struct {
	AllocationId any
	SubnetId     any
	Tags         []any
}

// ResourceType returns the CloudFormation type.
func (NatGateway) ResourceType() string { return "AWS::EC2::NatGateway" }

// RouteTable represents an AWS::EC2::RouteTable resource.
type RouteTable struct {
	VpcId any
	Tags  []any
}

// ResourceType returns the CloudFormation type.
func (RouteTable) ResourceType() string { return "AWS::EC2::RouteTable" }

// Route represents an AWS::EC2::Route resource.
type Route struct {
	RouteTableId         any
	DestinationCidrBlock string
	GatewayId            any
	NatGatewayId         any
}

// ResourceType returns the CloudFormation type.
func (Route) ResourceType() string { return "AWS::EC2::Route" }

// SubnetRouteTableAssociation represents an
// AWS::EC2::SubnetRouteTableAssociation resource.
type SubnetRouteTableAssociation struct {
	SubnetId     any
	RouteTableId any
}

// ResourceType returns the CloudFormation type.
func (SubnetRouteTableAssociation) ResourceType() string {
	return "AWS::EC2::SubnetRouteTableAssociation"
}

// SecurityGroup represents an AWS::EC2::SecurityGroup resource.
type SecurityGroup struct {
	GroupDescription     string
	VpcId                any
	SecurityGroupIngress []any
	SecurityGroupEgress  []any
	Tags                 []any
}

// ResourceType returns the CloudFormation type.
func (SecurityGroup) ResourceType() string { return "AWS::EC2::SecurityGroup" }
