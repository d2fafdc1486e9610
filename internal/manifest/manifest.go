// Package manifest builds the in-cluster authorization documents for the
// metrics scraper: a read-only ClusterRole, its binding to the collector
// user, and the aws-auth identity-mapping entry that maps the scraper's
// execution role onto that user.
package manifest

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// Fixed identities used by the scraper's cluster access.
const (
	CollectorRoleName    = "aps-collector-role"
	CollectorBindingName = "aps-collector-user-role-binding"
	CollectorUser        = "aps-collector-user"
	CollectorGroup       = "aps-collector-group"
)

var readVerbs = []string{"get", "list", "watch", "describe"}

// CollectorClusterRole grants the scraper read access to the core and
// networking resources it discovers scrape targets from, plus the /metrics
// non-resource endpoint.
func CollectorClusterRole() *rbacv1.ClusterRole {
	return &rbacv1.ClusterRole{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "rbac.authorization.k8s.io/v1",
			Kind:       "ClusterRole",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: CollectorRoleName,
		},
		Rules: []rbacv1.PolicyRule{
			{
				APIGroups: []string{""},
				Resources: []string{
					"nodes", "nodes/proxy", "nodes/metrics",
					"services", "endpoints", "pods", "configmaps",
				},
				Verbs: readVerbs,
			},
			{
				APIGroups: []string{"discovery.k8s.io"},
				Resources: []string{"endpointslices"},
				Verbs:     readVerbs,
			},
			{
				APIGroups: []string{"networking.k8s.io"},
				Resources: []string{"ingresses"},
				Verbs:     readVerbs,
			},
			{
				NonResourceURLs: []string{"/metrics"},
				Verbs:           []string{"get"},
			},
		},
	}
}

// CollectorClusterRoleBinding binds the collector role to the collector user.
func CollectorClusterRoleBinding() *rbacv1.ClusterRoleBinding {
	return &rbacv1.ClusterRoleBinding{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "rbac.authorization.k8s.io/v1",
			Kind:       "ClusterRoleBinding",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: CollectorBindingName,
		},
		Subjects: []rbacv1.Subject{
			{
				APIGroup: "rbac.authorization.k8s.io",
				Kind:     "User",
				Name:     CollectorUser,
			},
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: "rbac.authorization.k8s.io",
			Kind:     "ClusterRole",
			Name:     CollectorRoleName,
		},
	}
}

// RoleMapping is a single mapRoles entry in the aws-auth ConfigMap.
type RoleMapping struct {
	RoleArn  string   `json:"rolearn"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}

// ScraperRoleMapping maps the imported scraper execution role onto the
// collector user.
func ScraperRoleMapping(importedRoleArn string) RoleMapping {
	return RoleMapping{
		RoleArn:  importedRoleArn,
		Username: CollectorUser,
		Groups:   []string{CollectorGroup},
	}
}

// RenderAccess renders the ClusterRole and ClusterRoleBinding as a
// multi-document YAML stream ready for kubectl apply.
func RenderAccess() ([]byte, error) {
	role, err := yaml.Marshal(CollectorClusterRole())
	if err != nil {
		return nil, fmt.Errorf("marshaling cluster role: %w", err)
	}
	binding, err := yaml.Marshal(CollectorClusterRoleBinding())
	if err != nil {
		return nil, fmt.Errorf("marshaling cluster role binding: %w", err)
	}

	out := append([]byte{}, role...)
	out = append(out, []byte("---\n")...)
	out = append(out, binding...)
	return out, nil
}

// RenderAwsAuthPatch renders an aws-auth ConfigMap fragment carrying the
// scraper's identity-mapping entry, ready for kubectl patch.
func RenderAwsAuthPatch(importedRoleArn string) ([]byte, error) {
	mapRoles, err := yaml.Marshal([]RoleMapping{ScraperRoleMapping(importedRoleArn)})
	if err != nil {
		return nil, fmt.Errorf("marshaling role mapping: %w", err)
	}

	cm := &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "aws-auth",
			Namespace: "kube-system",
		},
		Data: map[string]string{
			"mapRoles": string(mapRoles),
		},
	}

	return yaml.Marshal(cm)
}
