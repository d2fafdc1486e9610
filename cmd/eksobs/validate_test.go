package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScrapeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scrape-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("global: {}\n"), 0644))
	return path
}

func defaultTestFlags(t *testing.T) stackFlags {
	t.Helper()
	return stackFlags{
		stackName:      "demo",
		account:        "111122223333",
		region:         "us-west-2",
		azCount:        3,
		clusterName:    "demo-cluster",
		clusterVersion: "1.31",
		workspaceAlias: "demo-metrics",
		scrapeConfig:   writeScrapeConfig(t),
	}
}

func TestValidateStack_Success(t *testing.T) {
	flags := defaultTestFlags(t)

	result := validateStack(&flags)

	assert.True(t, result.Success, "errors: %v", result.Errors)
	assert.Greater(t, result.Resources, 0)
	// The synthesized template passes the cfn-lint run with no error-level
	// findings.
	assert.Empty(t, result.Errors)
}

func TestValidateStack_SingleZoneWarns(t *testing.T) {
	flags := defaultTestFlags(t)
	flags.azCount = 1

	result := validateStack(&flags)

	require.True(t, result.Success)

	var found bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "single availability zone") {
			found = true
		}
	}
	assert.True(t, found, "warnings: %v", result.Warnings)
}

func TestValidateStack_BadConfigFails(t *testing.T) {
	flags := defaultTestFlags(t)
	flags.azCount = 12

	result := validateStack(&flags)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
}

func TestValidateStack_MissingScrapeConfigFails(t *testing.T) {
	flags := defaultTestFlags(t)
	flags.scrapeConfig = filepath.Join(t.TempDir(), "absent.yaml")

	result := validateStack(&flags)

	assert.False(t, result.Success)
}
