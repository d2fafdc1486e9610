// Package stack assembles declared resources into a CloudFormation template.
//
// A Stack is a one-shot registry: resources are added under logical names,
// dependency edges are derived from the Ref/Fn::GetAtt references in their
// serialized properties, and Template() emits the resources in a
// deterministic order. In-cluster manifests that must be applied after
// deployment are tracked as graph nodes with explicit dependencies so the
// ordering constraint stays visible and checkable.
package stack

import (
	"errors"
	"fmt"
	"sort"

	eksobservability "github.com/canopylabs/eks-observability"
	"github.com/canopylabs/eks-observability/internal/serialize"
	"github.com/canopylabs/eks-observability/intrinsics"
)

// Manifest is a post-deploy artifact applied through the cluster's
// administrative API rather than CloudFormation. It participates in the
// dependency graph only.
type Manifest struct {
	Name      string
	DependsOn []string
}

// Stack is the complete declarative unit handed to CloudFormation.
type Stack struct {
	name        string
	description string

	names     []string // insertion order
	resources map[string]eksobservability.Resource
	dependsOn map[string][]string // explicit DependsOn edges

	outputNames []string
	outputs     map[string]eksobservability.Output

	manifests []Manifest

	errs []error
}

// New creates an empty stack.
func New(name, description string) *Stack {
	return &Stack{
		name:        name,
		description: description,
		resources:   make(map[string]eksobservability.Resource),
		dependsOn:   make(map[string][]string),
		outputs:     make(map[string]eksobservability.Output),
	}
}

// Name returns the stack name.
func (s *Stack) Name() string { return s.name }

// Add registers a resource under its logical name and returns a Ref to it.
// Errors (duplicate names, unserializable values) are collected and surfaced
// by Template().
func (s *Stack) Add(name string, res eksobservability.Resource) intrinsics.Ref {
	if _, exists := s.resources[name]; exists {
		s.errs = append(s.errs, fmt.Errorf("duplicate resource name: %s", name))
		return intrinsics.Ref{LogicalName: name}
	}
	s.names = append(s.names, name)
	s.resources[name] = res
	return intrinsics.Ref{LogicalName: name}
}

// DependsOn declares an explicit ordering edge that is not visible as a
// property reference. It is emitted as DependsOn in the template.
func (s *Stack) DependsOn(name string, deps ...string) {
	s.dependsOn[name] = append(s.dependsOn[name], deps...)
}

// AddOutput registers a stack output.
func (s *Stack) AddOutput(name string, out eksobservability.Output) {
	if _, exists := s.outputs[name]; exists {
		s.errs = append(s.errs, fmt.Errorf("duplicate output name: %s", name))
		return
	}
	s.outputNames = append(s.outputNames, name)
	s.outputs[name] = out
}

// AddManifest registers a post-deploy manifest node with its dependencies.
func (s *Stack) AddManifest(name string, deps ...string) {
	s.manifests = append(s.manifests, Manifest{Name: name, DependsOn: deps})
}

// Manifests returns the registered manifest nodes in declaration order.
func (s *Stack) Manifests() []Manifest {
	return s.manifests
}

// Resources returns logical name and CloudFormation type for every resource,
// sorted by name.
func (s *Stack) Resources() []eksobservability.ListResource {
	list := make([]eksobservability.ListResource, 0, len(s.resources))
	for name, res := range s.resources {
		list = append(list, eksobservability.ListResource{
			Name: name,
			Type: res.ResourceType(),
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Dependencies returns the dependency edges for every node: implicit edges
// derived from property references plus explicit DependsOn edges, with
// manifest nodes included. Each entry lists the nodes the key depends on,
// sorted and de-duplicated.
func (s *Stack) Dependencies() (map[string][]string, error) {
	deps := make(map[string][]string, len(s.resources)+len(s.manifests))

	for name, res := range s.resources {
		props, err := serialize.Properties(res)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}
		set := make(map[string]bool)
		collectRefs(props, s.resources, set)
		for _, dep := range s.dependsOn[name] {
			if _, exists := s.resources[dep]; !exists {
				return nil, fmt.Errorf("%s depends on undeclared resource %s", name, dep)
			}
			set[dep] = true
		}
		deps[name] = sortedKeys(set)
	}

	for _, m := range s.manifests {
		set := make(map[string]bool)
		for _, dep := range m.DependsOn {
			if _, exists := s.resources[dep]; !exists {
				return nil, fmt.Errorf("manifest %s depends on undeclared resource %s", m.Name, dep)
			}
			set[dep] = true
		}
		deps[m.Name] = sortedKeys(set)
	}

	return deps, nil
}

// Order returns every node, resources and manifests both, topologically sorted
// so that dependencies come first. Ties break alphabetically, which keeps the
// order stable across runs.
func (s *Stack) Order() ([]string, error) {
	deps, err := s.Dependencies()
	if err != nil {
		return nil, err
	}
	return topologicalSort(deps)
}

// Template builds the CloudFormation template.
func (s *Stack) Template() (*eksobservability.Template, error) {
	if len(s.errs) > 0 {
		return nil, errors.Join(s.errs...)
	}

	// Validates references and rejects cycles before serializing.
	if _, err := s.Order(); err != nil {
		return nil, err
	}

	template := &eksobservability.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              s.description,
		Resources:                make(map[string]eksobservability.ResourceDef, len(s.resources)),
	}

	for _, name := range s.names {
		res := s.resources[name]
		props, err := serialize.Properties(res)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", name, err)
		}

		def := eksobservability.ResourceDef{
			Type:       res.ResourceType(),
			Properties: props,
		}
		if explicit := s.dependsOn[name]; len(explicit) > 0 {
			set := make(map[string]bool)
			for _, dep := range explicit {
				set[dep] = true
			}
			def.DependsOn = sortedKeys(set)
		}
		template.Resources[name] = def
	}

	if len(s.outputs) > 0 {
		template.Outputs = make(map[string]eksobservability.Output, len(s.outputs))
		for _, name := range s.outputNames {
			out := s.outputs[name]
			value, err := serialize.Value(out.Value)
			if err != nil {
				return nil, fmt.Errorf("serializing output %s: %w", name, err)
			}
			out.Value = value
			template.Outputs[name] = out
		}
	}

	return template, nil
}

// collectRefs walks serialized properties and records references to
// registered resources.
func collectRefs(value any, resources map[string]eksobservability.Resource, out map[string]bool) {
	switch v := value.(type) {
	case map[string]any:
		if ref, ok := v["Ref"].(string); ok && len(v) == 1 {
			if _, exists := resources[ref]; exists {
				out[ref] = true
			}
			return
		}
		if att, ok := v["Fn::GetAtt"].([]any); ok && len(v) == 1 && len(att) > 0 {
			if name, ok := att[0].(string); ok {
				if _, exists := resources[name]; exists {
					out[name] = true
				}
			}
			return
		}
		for _, val := range v {
			collectRefs(val, resources, out)
		}
	case []any:
		for _, elem := range v {
			collectRefs(elem, resources, out)
		}
	}
}

// topologicalSort runs Kahn's algorithm over the dependency map. The ready
// queue is kept sorted for determinism.
func topologicalSort(deps map[string][]string) ([]string, error) {
	dependents := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range deps {
		inDegree[name] = 0
	}
	for name, nodeDeps := range deps {
		for _, dep := range nodeDeps {
			dependents[dep] = append(dependents[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, dependent := range dependents[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(deps) {
		var stuck []string
		for name, degree := range inDegree {
			if degree > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("circular dependency involving: %v", stuck)
	}

	return result, nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
