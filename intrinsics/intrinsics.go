// Package intrinsics provides the CloudFormation intrinsic functions used by
// this stack.
//
// The core intrinsic types come from cloudformation-schema-go; IAM policy
// document types are defined here.
//
//	Ref{LogicalName: "Vpc"}               → {"Ref": "Vpc"}
//	GetAtt{LogicalName: "Cluster", Attribute: "Arn"}
//	                                      → {"Fn::GetAtt": ["Cluster", "Arn"]}
//	Sub{String: "${AWS::StackName}-vpc"}  → {"Fn::Sub": "${AWS::StackName}-vpc"}
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Select represents a CloudFormation Fn::Select intrinsic function.
	Select = intrinsics.Select

	// Split represents a CloudFormation Fn::Split intrinsic function.
	Split = intrinsics.Split

	// GetAZs represents a CloudFormation Fn::GetAZs intrinsic function.
	GetAZs = intrinsics.GetAZs

	// Tag represents a CloudFormation resource tag.
	Tag = intrinsics.Tag
)

// Pseudo-parameters predefined by CloudFormation, available in every template.
var (
	// AWS_ACCOUNT_ID returns the AWS account ID the stack is created in.
	AWS_ACCOUNT_ID = intrinsics.AWS_ACCOUNT_ID

	// AWS_PARTITION returns the partition the resource is in.
	AWS_PARTITION = intrinsics.AWS_PARTITION

	// AWS_REGION returns the AWS Region the stack is created in.
	AWS_REGION = intrinsics.AWS_REGION

	// AWS_STACK_NAME returns the name of the stack.
	AWS_STACK_NAME = intrinsics.AWS_STACK_NAME
)

// Any creates a []any slice from the given items. Use for fields typed as
// []any that accept mixed values and intrinsics.
func Any(items ...any) []any {
	return items
}
