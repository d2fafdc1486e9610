package infra

import (
	"github.com/canopylabs/eks-observability/internal/stack"
)

// Manifest node names used in the dependency graph and by the manifests
// CLI command.
const (
	CollectorAccessManifest = "ApsCollectorAccess"
	AwsAuthMappingManifest  = "AwsAuthScraperMapping"
)

// AddScraperAccess declares the in-cluster access bindings as graph nodes.
//
// The bindings themselves (a read-only ClusterRole, its binding to the
// collector user, and the aws-auth entry mapping the scraper's execution
// role onto that user) are rendered by internal/manifest and applied
// through the cluster's administrative API after deployment. They are
// declared here with dependencies on both the cluster and the scraper, so
// the computed ordering can never place them before either exists: the
// scraper only authenticates once its execution role is mapped, and the
// role only exists once the scraper does.
func AddScraperAccess(s *stack.Stack) {
	s.AddManifest(CollectorAccessManifest, "Cluster", "Scraper")
	s.AddManifest(AwsAuthMappingManifest, "Cluster", "Scraper")
}
