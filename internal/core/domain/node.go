// Package domain contains the core value types of the ninja generator.
package domain

// Command is a single shell command attached to a build node.
type Command struct {
	// Cmd is the raw shell command text, with all make variables already
	// expanded by the upstream evaluator.
	Cmd string

	// IgnoreError marks a command whose failure must not abort the
	// remaining commands of the node (a "-" prefixed recipe line).
	IgnoreError bool

	// Echo marks a command the user asked to see verbatim (no "@" prefix).
	// Echoed commands are never turned into progress descriptions.
	Echo bool
}

// BuildNode is one target of the evaluated dependency graph.
//
// Nodes form a DAG reachable from a root list. The same node may be
// referenced by any number of parents, so consumers must treat traversal
// as idempotent per output name. BuildNode is read-only after the graph
// is loaded.
type BuildNode struct {
	// Output is the target name. It is globally unique within a graph.
	Output InternedString

	// Commands are the recipe lines, in execution order.
	Commands []*Command

	// Deps are the hard prerequisites, in declaration order.
	Deps []*BuildNode

	// OrderOnlys are the order-only prerequisites, in declaration order.
	OrderOnlys []*BuildNode

	// IsPhony marks a target declared .PHONY upstream.
	IsPhony bool
}

// Export records an environment variable the evaluator marked for export
// (or, with Export=false, for removal) in the launcher script.
type Export struct {
	Name   string
	Export bool
}

// Graph is the evaluated dependency graph handed over by the front end.
type Graph struct {
	// Roots are the goal targets of the original invocation.
	Roots []*BuildNode

	// BuildAll reports whether the invocation asked for the default
	// "build everything" goal, in which case no default line is emitted.
	BuildAll bool

	nodes map[InternedString]*BuildNode
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[InternedString]*BuildNode),
	}
}

// AddNode registers a node under its output name.
// Adding a second node with the same output name is an error.
func (g *Graph) AddNode(n *BuildNode) error {
	if _, ok := g.nodes[n.Output]; ok {
		return ErrDuplicateTarget
	}
	g.nodes[n.Output] = n
	return nil
}

// Node returns the node with the given output name, or nil.
func (g *Graph) Node(name InternedString) *BuildNode {
	return g.nodes[name]
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}
