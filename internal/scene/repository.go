// Package scene holds node tables and the scenes and documents that own them.
package scene

import (
	"sort"

	"github.com/inamate/inamate/canvas-go/internal/node"
)

// Repository is a node table keyed by node id. It is not safe for concurrent
// mutation; one editing session owns it at a time.
type Repository struct {
	nodes map[string]node.Node
}

func NewRepository() *Repository {
	return &Repository{nodes: make(map[string]node.Node)}
}

// Insert stores n under its id and reports whether a node with that id was
// replaced.
func (r *Repository) Insert(n node.Node) bool {
	_, replaced := r.nodes[n.NodeID()]
	r.nodes[n.NodeID()] = n
	return replaced
}

func (r *Repository) Get(id string) (node.Node, bool) {
	n, ok := r.nodes[id]
	return n, ok
}

func (r *Repository) Has(id string) bool {
	_, ok := r.nodes[id]
	return ok
}

// Remove deletes a node from the table. Children are not removed with it.
func (r *Repository) Remove(id string) (node.Node, bool) {
	n, ok := r.nodes[id]
	if ok {
		delete(r.nodes, id)
	}
	return n, ok
}

func (r *Repository) Len() int { return len(r.nodes) }

// IDs returns the stored ids in sorted order.
func (r *Repository) IDs() []string {
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
