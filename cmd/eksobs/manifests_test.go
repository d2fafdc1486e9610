package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunManifests_WritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	roleArn := "arn:aws:iam::111122223333:role/aws-service-role/aps.amazonaws.com/AWSServiceRoleForAmazonPrometheusScraper_abc"

	require.NoError(t, runManifests(roleArn, dir))

	access, err := os.ReadFile(filepath.Join(dir, "aps-collector-access.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(access), "kind: ClusterRole")
	assert.Contains(t, string(access), "aps-collector-role")

	authPatch, err := os.ReadFile(filepath.Join(dir, "aws-auth-patch.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(authPatch), "aws-auth")
	// The intermediate path segments must be gone from the mapped role.
	assert.Contains(t, string(authPatch),
		"arn:aws:iam::111122223333:role/AWSServiceRoleForAmazonPrometheusScraper_abc")
	assert.NotContains(t, string(authPatch), "aws-service-role")
}

func TestRunManifests_RejectsMalformedArn(t *testing.T) {
	err := runManifests("not-an-arn", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected role ARN shape")
}
