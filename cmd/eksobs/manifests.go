package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/canopylabs/eks-observability/internal/arn"
	"github.com/canopylabs/eks-observability/internal/manifest"
)

func newManifestsCmd() *cobra.Command {
	var (
		scraperRoleArn string
		outputDir      string
	)

	cmd := &cobra.Command{
		Use:   "manifests",
		Short: "Generate the in-cluster access manifests",
		Long: `Manifests generates the documents that grant the metrics scraper read
access to the cluster: a ClusterRole with its binding, and an aws-auth
patch mapping the scraper's execution role onto the collector user.

The scraper role ARN comes from the deployed stack's ScraperRoleArn output;
its intermediate path segments are stripped before mapping.

Examples:
    eksobs manifests --scraper-role-arn arn:aws:iam::111122223333:role/aws-service-role/aps.amazonaws.com/AWSServiceRoleForAmazonPrometheusScraper_abc
    kubectl apply -f aps-collector-access.yaml
    kubectl patch configmap/aws-auth -n kube-system --patch-file aws-auth-patch.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifests(scraperRoleArn, outputDir)
		},
	}

	cmd.Flags().StringVar(&scraperRoleArn, "scraper-role-arn", "", "Scraper execution role ARN from the stack outputs")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the manifests to")
	_ = cmd.MarkFlagRequired("scraper-role-arn")

	return cmd
}

func runManifests(scraperRoleArn, outputDir string) error {
	imported, err := arn.ImportableRoleArn(scraperRoleArn)
	if err != nil {
		return err
	}

	access, err := manifest.RenderAccess()
	if err != nil {
		return err
	}
	authPatch, err := manifest.RenderAwsAuthPatch(imported)
	if err != nil {
		return err
	}

	accessPath := filepath.Join(outputDir, "aps-collector-access.yaml")
	if err := os.WriteFile(accessPath, access, 0644); err != nil {
		return err
	}
	authPath := filepath.Join(outputDir, "aws-auth-patch.yaml")
	if err := os.WriteFile(authPath, authPatch, 0644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\nWrote %s\n\nApply with:\n  kubectl apply -f %s\n  kubectl patch configmap/aws-auth -n kube-system --patch-file %s\n",
		accessPath, authPath, accessPath, authPath)
	return nil
}
