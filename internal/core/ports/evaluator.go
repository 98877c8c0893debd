package ports

import "go.trai.ch/ninjify/internal/core/domain"

// Evaluator exposes the results of the upstream makefile evaluation that
// the generator needs beyond the dependency graph itself: variable values,
// the environment variables referenced during evaluation, the export list
// for the launcher script, and the makefiles read.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// EvalVar returns the expanded value of a variable, or "" when unset.
	EvalVar(name string) string

	// UsedEnvVars returns the names of the environment variables the
	// evaluator recorded as referenced during evaluation.
	UsedEnvVars() []string

	// Exports returns the export/unset directives for the launcher
	// script, in declaration order.
	Exports() []domain.Export

	// Makefiles returns the paths of all makefiles read during
	// evaluation, in read order.
	Makefiles() []string
}

// GraphLoader loads a serialized evaluated graph.
type GraphLoader interface {
	// Load reads a graph file and returns the graph together with the
	// evaluator view of its variable and environment sections.
	Load(path string) (*domain.Graph, Evaluator, error)
}
