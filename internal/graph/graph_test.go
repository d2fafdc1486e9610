package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopylabs/eks-observability/internal/stack"
	"github.com/canopylabs/eks-observability/intrinsics"
)

type fakeCluster struct {
	Name string
}

func (fakeCluster) ResourceType() string { return "AWS::EKS::Cluster" }

type fakeScraper struct {
	ClusterArn intrinsics.GetAtt
}

func (fakeScraper) ResourceType() string { return "AWS::APS::Scraper" }

func testStack(t *testing.T) *stack.Stack {
	t.Helper()
	s := stack.New("test", "test stack")
	s.Add("Cluster", fakeCluster{Name: "demo"})
	s.Add("Scraper", fakeScraper{
		ClusterArn: intrinsics.GetAtt{LogicalName: "Cluster", Attribute: "Arn"},
	})
	s.AddManifest("AccessBindings", "Cluster", "Scraper")
	return s
}

func TestGenerator_DOT(t *testing.T) {
	gen := &Generator{Format: FormatDOT}
	out, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "Cluster")
	assert.Contains(t, out, "AWS::EKS::Cluster")
	assert.Contains(t, out, "Scraper")
	assert.Contains(t, out, "AccessBindings")
	assert.Contains(t, out, "->")
}

func TestGenerator_DOT_ManifestStyledDashed(t *testing.T) {
	gen := &Generator{}
	out, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)

	assert.Contains(t, out, "dashed")
	assert.Contains(t, out, "ellipse")
}

func TestGenerator_Mermaid(t *testing.T) {
	gen := &Generator{Format: FormatMermaid}
	out, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "Cluster")
	assert.Contains(t, out, "AccessBindings")
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := &Generator{Format: FormatDOT}

	first, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)
	second, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_DefaultsToDOT(t *testing.T) {
	gen := &Generator{}
	out, err := gen.GenerateString(testStack(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph"))
}
