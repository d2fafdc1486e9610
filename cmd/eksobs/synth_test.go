package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/infra"
)

func testInfraConfig() infra.Config {
	cfg := infra.DefaultConfig()
	cfg.ScrapeConfig = "global:\n  scrape_interval: 30s\n"
	return cfg
}

func TestSynthesize_Success(t *testing.T) {
	result := synthesize(testInfraConfig())

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Resources)
	assert.Contains(t, result.Resources, "Cluster")
	assert.Contains(t, result.Resources, "Scraper")
}

func TestSynthesize_InvalidConfig(t *testing.T) {
	cfg := testInfraConfig()
	cfg.AZCount = 0

	result := synthesize(cfg)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "availability zone count")
}

func TestOutputSynthResult_JSONFile(t *testing.T) {
	result := synthesize(testInfraConfig())
	require.True(t, result.Success)

	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, outputSynthResult(result, "json", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var tmpl eksobservability.Template
	require.NoError(t, json.Unmarshal(data, &tmpl))
	assert.Equal(t, "2010-09-09", tmpl.AWSTemplateFormatVersion)
	assert.Contains(t, tmpl.Resources, "Vpc")
}

func TestOutputSynthResult_YAMLFile(t *testing.T) {
	result := synthesize(testInfraConfig())
	require.True(t, result.Success)

	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, outputSynthResult(result, "yaml", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "2010-09-09", decoded["AWSTemplateFormatVersion"])
}

func TestOutputSynthResult_UnknownFormat(t *testing.T) {
	result := synthesize(testInfraConfig())
	err := outputSynthResult(result, "toml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestOutputSynthResult_FailurePropagates(t *testing.T) {
	result := eksobservability.SynthResult{Success: false, Errors: []string{"boom"}}
	err := outputSynthResult(result, "json", "")
	require.Error(t, err)
}

func TestStackFlags_Config(t *testing.T) {
	dir := t.TempDir()
	scrapePath := filepath.Join(dir, "scrape-config.yaml")
	require.NoError(t, os.WriteFile(scrapePath, []byte("global: {}\n"), 0644))

	flags := stackFlags{
		stackName:      "demo",
		account:        "111122223333",
		region:         "us-east-1",
		azCount:        2,
		clusterName:    "demo-cluster",
		clusterVersion: "1.31",
		workspaceAlias: "demo-metrics",
		scrapeConfig:   scrapePath,
	}

	cfg, err := flags.config()
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.StackName)
	assert.Equal(t, 2, cfg.AZCount)
	assert.Equal(t, "global: {}\n", cfg.ScrapeConfig)
}

func TestStackFlags_ConfigMissingScrapeFile(t *testing.T) {
	flags := stackFlags{scrapeConfig: filepath.Join(t.TempDir(), "absent.yaml")}
	_, err := flags.config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scrape config")
}
