// Package graphfile loads the serialized evaluated graph produced by the
// makefile front end.
package graphfile

import (
	"os"
	"sort"

	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the graph file format version this loader accepts.
const supportedVersion = "1"

var _ ports.GraphLoader = (*Loader)(nil)

// Loader implements ports.GraphLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads a graph file and returns the dependency graph plus the
// evaluator view of its variable, environment and export sections.
func (l *Loader) Load(path string) (*domain.Graph, ports.Evaluator, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the CLI user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrGraphParseFailed.Error()), "path", path)
	}
	if file.Version != "" && file.Version != supportedVersion {
		return nil, nil, zerr.With(domain.ErrGraphVersion, "version", file.Version)
	}

	graph, err := buildGraph(&file)
	if err != nil {
		return nil, nil, err
	}
	return graph, newEvaluator(&file), nil
}

// buildGraph materializes the node map into a shared-structure DAG.
// Dependency names without a node definition become implicit leaf nodes,
// the same way make treats plain source files.
func buildGraph(file *File) (*domain.Graph, error) {
	graph := domain.NewGraph()
	nodes := make(map[string]*domain.BuildNode, len(file.Nodes))

	lookup := func(name string) *domain.BuildNode {
		if n, ok := nodes[name]; ok {
			return n
		}
		n := &domain.BuildNode{Output: domain.NewInternedString(name)}
		nodes[name] = n
		return n
	}

	// First pass: create every declared node so edges can share pointers.
	names := make([]string, 0, len(file.Nodes))
	for name := range file.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lookup(name)
	}

	// Second pass: attach commands and edges.
	for _, name := range names {
		dto := file.Nodes[name]
		node := nodes[name]
		node.IsPhony = dto.Phony
		for _, c := range dto.Commands {
			node.Commands = append(node.Commands, &domain.Command{
				Cmd:         c.Cmd,
				IgnoreError: c.IgnoreError,
				Echo:        c.Echo,
			})
		}
		for _, dep := range dto.Deps {
			node.Deps = append(node.Deps, lookup(dep))
		}
		for _, dep := range dto.OrderOnly {
			node.OrderOnlys = append(node.OrderOnlys, lookup(dep))
		}
	}

	for _, n := range nodes {
		if err := graph.AddNode(n); err != nil {
			return nil, zerr.With(err, "target", n.Output.String())
		}
	}

	graph.BuildAll = file.BuildAll
	for _, target := range file.Targets {
		n, ok := nodes[target]
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", target)
		}
		graph.Roots = append(graph.Roots, n)
	}
	return graph, nil
}

// evaluator is the read-only ports.Evaluator view over a graph file.
type evaluator struct {
	vars      map[string]string
	envVars   []string
	exports   []domain.Export
	makefiles []string
}

func newEvaluator(file *File) *evaluator {
	ev := &evaluator{
		vars:      file.Variables,
		envVars:   file.EnvVars,
		makefiles: file.Makefiles,
	}
	if ev.vars == nil {
		ev.vars = map[string]string{}
	}
	for _, e := range file.Exports {
		ev.exports = append(ev.exports, domain.Export{Name: e.Name, Export: e.Export})
	}
	return ev
}

// EvalVar returns the expanded value of a variable, or "" when unset.
func (e *evaluator) EvalVar(name string) string {
	return e.vars[name]
}

// UsedEnvVars returns the referenced environment variable names.
func (e *evaluator) UsedEnvVars() []string {
	return e.envVars
}

// Exports returns the export/unset directives in declaration order.
func (e *evaluator) Exports() []domain.Export {
	return e.exports
}

// Makefiles returns the makefiles read during evaluation, in read order.
func (e *evaluator) Makefiles() []string {
	return e.makefiles
}
