// Package arn reshapes the scraper's generated execution-role ARN into a
// form the cluster's identity-mapping accepts.
//
// The managed scraper surfaces a service-linked role ARN with intermediate
// path segments:
//
//	arn:aws:iam::123:role/aws-service-role/aps.amazonaws.com/AWSServiceRoleForAmazonPrometheusScraper_x
//
// The identity-mapping import rejects the intermediate segments, so the
// service prefix is recombined with the final segment:
//
//	arn:aws:iam::123:role/AWSServiceRoleForAmazonPrometheusScraper_x
package arn

import (
	"fmt"
	"strings"

	"github.com/canopylabs/eks-observability/intrinsics"
)

// ImportableRoleArn strips the intermediate path segments from a generated
// role ARN. The input must contain at least one path separator; anything
// else is not a role ARN and is rejected rather than silently reshaped.
func ImportableRoleArn(raw string) (string, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("unexpected role ARN shape (no path segments): %q", raw)
	}
	return parts[0] + "/" + parts[len(parts)-1], nil
}

// ImportableRoleArnExpr is the intrinsic form of ImportableRoleArn, for role
// ARNs only known at deploy time. The generated scraper role ARN always has
// three path segments, so the final segment sits at index 3 of the split.
func ImportableRoleArnExpr(roleArn any) intrinsics.Join {
	split := intrinsics.Split{Delimiter: "/", Source: roleArn}
	return intrinsics.Join{
		Delimiter: "/",
		Values: []any{
			intrinsics.Select{Index: 0, List: split},
			intrinsics.Select{Index: 3, List: split},
		},
	}
}
