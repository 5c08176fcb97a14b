package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/inamate/canvas-go/internal/node"
)

func group(id string, children ...string) *node.GroupNode {
	return &node.GroupNode{Base: node.Base{ID: id, Active: true}, Children: children, Opacity: 1}
}

func rect(id string) *node.RectangleNode {
	return &node.RectangleNode{Base: node.Base{ID: id, Active: true}, Opacity: 1}
}

func TestRepository(t *testing.T) {
	r := NewRepository()
	assert.False(t, r.Insert(rect("b")))
	assert.False(t, r.Insert(rect("a")))
	assert.True(t, r.Insert(rect("a")))
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"a", "b"}, r.IDs())

	n, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, node.KindRectangle, n.Kind())

	_, ok = r.Remove("a")
	assert.True(t, ok)
	_, ok = r.Remove("a")
	assert.False(t, ok)
	assert.False(t, r.Has("a"))
	assert.Equal(t, 1, r.Len())
}

func TestSceneWalk(t *testing.T) {
	s := New("s", "Page")
	s.Children = []string{"g", "missing", "c"}
	for _, n := range []node.Node{group("g", "a", "b"), rect("a"), rect("b"), rect("c")} {
		s.Nodes.Insert(n)
	}

	type visit struct {
		id    string
		depth int
	}
	var got []visit
	s.Walk(func(n node.Node, depth int) bool {
		got = append(got, visit{n.NodeID(), depth})
		return true
	})
	assert.Equal(t, []visit{{"g", 0}, {"a", 1}, {"b", 1}, {"c", 0}}, got)

	t.Run("skip children", func(t *testing.T) {
		var ids []string
		s.Walk(func(n node.Node, depth int) bool {
			ids = append(ids, n.NodeID())
			return false
		})
		assert.Equal(t, []string{"g", "c"}, ids)
	})

	t.Run("children of", func(t *testing.T) {
		kids := s.ChildrenOf("g")
		require.Len(t, kids, 2)
		assert.Equal(t, "a", kids[0].NodeID())
		assert.Nil(t, s.ChildrenOf("nope"))
	})
}

func TestSceneWalkCycle(t *testing.T) {
	s := New("s", "Page")
	s.Children = []string{"x"}
	s.Nodes.Insert(group("x", "y"))
	s.Nodes.Insert(group("y", "x"))

	count := 0
	s.Walk(func(node.Node, int) bool {
		count++
		return true
	})
	assert.Equal(t, 2, count)
}

func TestDocument(t *testing.T) {
	d := NewDocument("1")
	assert.Nil(t, d.EntryScene())

	first := New("first", "One")
	first.Nodes.Insert(rect("a"))
	second := New("second", "Two")
	second.Nodes.Insert(rect("b"))
	d.Scenes = []*Scene{first, second}
	d.Detached.Insert(rect("orphan"))

	assert.Equal(t, "first", d.EntryScene().ID)
	d.EntrySceneID = "second"
	assert.Equal(t, "second", d.EntryScene().ID)

	for _, id := range []string{"a", "b", "orphan"} {
		_, ok := d.Node(id)
		assert.True(t, ok, id)
	}
	_, ok := d.Node("zzz")
	assert.False(t, ok)
	assert.Equal(t, 3, d.NodeCount())

	s, ok := d.Scene("second")
	require.True(t, ok)
	assert.True(t, s.Transform.IsIdentity())
}
