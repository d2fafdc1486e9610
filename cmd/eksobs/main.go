// Command eksobs synthesizes the EKS observability stack: a CloudFormation
// template for the VPC, cluster, managed Prometheus workspace, scraper and
// Grafana workspace, plus the in-cluster manifests that grant the scraper
// read access.
//
// Usage:
//
//	eksobs synth                        Generate CloudFormation template
//	eksobs manifests --scraper-role-arn Generate in-cluster access manifests
//	eksobs graph                        Render the dependency graph
//	eksobs version                      Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eksobs",
		Short: "Synthesize the EKS observability stack",
		Long: `eksobs declares an EKS cluster with managed Prometheus metrics collection
and Grafana dashboards as native Go structs, and synthesizes them into a
CloudFormation template.

Typical flow:

    eksobs synth -o template.json
    aws cloudformation deploy --template-file template.json --stack-name eks-observability --capabilities CAPABILITY_NAMED_IAM
    eksobs manifests --scraper-role-arn "$(aws cloudformation describe-stacks ... ScraperRoleArn)"
    kubectl apply -f aps-collector-access.yaml
    kubectl patch configmap/aws-auth -n kube-system --patch-file aws-auth-patch.yaml`,
	}

	rootCmd.AddCommand(
		newSynthCmd(),
		newManifestsCmd(),
		newGraphCmd(),
		newListCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("eksobs %s\n", getVersion())
		},
	}
}
