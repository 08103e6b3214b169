package dag

import "sync"

// Graph is a set of named nodes and the dependencies between them.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
}

// node is un-exported so callers work with string IDs only.
type node struct {
	id string
	// deps holds the nodes this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the nodes that depend on this node (successors).
	dependents map[string]*node
}

// CycleError reports the node at which a dependency cycle was found.
type CycleError struct {
	Node string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "cycle detected involving node '" + e.Node + "'"
}
