// Package iam provides the AWS IAM CloudFormation resource types used by the
// stack's roles.
package iam

// Role represents an AWS::IAM::Role resource. The stack's roles carry
// managed policies only, so inline policies are not modeled.
type Role struct {
	RoleName                 any
	Description              string
	AssumeRolePolicyDocument any
	ManagedPolicyArns        []any
	Tags                     []any
}

// ResourceType returns the CloudFormation type.
func (Role) ResourceType() string { return "AWS::IAM::Role" }
