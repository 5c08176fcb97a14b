package scene

import (
	"encoding/json"

	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// Scene is one page of a document: root child ids plus the table that owns
// every node reachable from them.
type Scene struct {
	ID              string
	Name            string
	Transform       geom.AffineTransform
	Children        []string
	Nodes           *Repository
	BackgroundColor *paint.Color
}

func New(id, name string) *Scene {
	return &Scene{
		ID:        id,
		Name:      name,
		Transform: geom.Identity(),
		Children:  []string{},
		Nodes:     NewRepository(),
	}
}

func (s *Scene) Node(id string) (node.Node, bool) {
	return s.Nodes.Get(id)
}

// ChildrenOf resolves the children of a container-like node. Ids missing from
// the table are skipped.
func (s *Scene) ChildrenOf(id string) []node.Node {
	n, ok := s.Nodes.Get(id)
	if !ok {
		return nil
	}
	return s.resolve(node.Children(n))
}

func (s *Scene) resolve(ids []string) []node.Node {
	out := make([]node.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := s.Nodes.Get(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// Walk visits the scene depth first in paint order, parents before children.
// Returning false from fn skips that node's children. Each node is visited at
// most once even if the child lists form a cycle.
func (s *Scene) Walk(fn func(n node.Node, depth int) bool) {
	seen := make(map[string]bool)
	var visit func(ids []string, depth int)
	visit = func(ids []string, depth int) {
		for _, n := range s.resolve(ids) {
			if seen[n.NodeID()] {
				continue
			}
			seen[n.NodeID()] = true
			if fn(n, depth) {
				visit(node.Children(n), depth+1)
			}
		}
	}
	visit(s.Children, 0)
}

// Document is an ordered set of scenes plus document-level resources.
// Bitmaps and Properties are passed through without interpretation.
type Document struct {
	Version      string
	Scenes       []*Scene
	EntrySceneID string
	Bitmaps      map[string]json.RawMessage
	Properties   map[string]json.RawMessage

	// Detached holds nodes no scene reaches.
	Detached *Repository
}

func NewDocument(version string) *Document {
	return &Document{
		Version:    version,
		Bitmaps:    map[string]json.RawMessage{},
		Properties: map[string]json.RawMessage{},
		Detached:   NewRepository(),
	}
}

func (d *Document) Scene(id string) (*Scene, bool) {
	for _, s := range d.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// EntryScene returns the scene named by EntrySceneID, or the first scene when
// there is no entry. It returns nil for a document without scenes.
func (d *Document) EntryScene() *Scene {
	if s, ok := d.Scene(d.EntrySceneID); ok {
		return s
	}
	if len(d.Scenes) > 0 {
		return d.Scenes[0]
	}
	return nil
}

// Node looks id up in every scene and then in the detached table.
func (d *Document) Node(id string) (node.Node, bool) {
	for _, s := range d.Scenes {
		if n, ok := s.Nodes.Get(id); ok {
			return n, true
		}
	}
	if d.Detached != nil {
		return d.Detached.Get(id)
	}
	return nil, false
}

func (d *Document) NodeCount() int {
	count := 0
	for _, s := range d.Scenes {
		count += s.Nodes.Len()
	}
	if d.Detached != nil {
		count += d.Detached.Len()
	}
	return count
}
