package engine

import (
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// SceneGraph is the render-ready state of one scene.
// This is the retained scene graph - it persists between frames and is rebuilt when the document changes.
type SceneGraph struct {
	Root      *SceneNode
	NodesById map[string]*SceneNode
	Dirty     bool // needs rebuild
}

// SceneNode is a resolved node ready for rendering.
// All transforms are computed and opacity is inherited from ancestors.
type SceneNode struct {
	ID   string
	Kind node.Kind

	// Transform state
	WorldTransform geom.AffineTransform // parent * local
	LocalTransform geom.AffineTransform

	// Inherited/resolved properties
	Opacity float64 // inherited * local
	Blend   paint.BlendMode
	Visible bool

	// Hierarchy
	Parent   *SceneNode
	Children []*SceneNode

	// Clip is set on containers that clip their children to Path.
	Clip bool

	// Render data, in local coordinates
	Path        string
	Fill        paint.Paint
	Stroke      paint.Paint
	StrokeWidth float64
	StrokeAlign paint.StrokeAlign
	StrokeDash  []float64
	Effect      paint.FilterEffect
	Size        geom.Size

	Text     *TextRun
	ImageRef string
	Error    string

	// Hit testing
	Bounds      geom.Rect // axis-aligned bounding box in world space, children included
	ShapeBounds geom.Rect // the node's own extent in world space
}

// TextRun is the content of a text span node.
type TextRun struct {
	Text          string
	Style         node.TextStyle
	Align         node.TextAlign
	AlignVertical node.TextAlignVertical
}

// NewSceneGraph creates an empty scene graph.
func NewSceneGraph() *SceneGraph {
	return &SceneGraph{
		NodesById: make(map[string]*SceneNode),
		Dirty:     true,
	}
}

// drawable reports whether the node emits its own draw command.
func (n *SceneNode) drawable() bool {
	return n.Path != "" || n.Text != nil || n.ImageRef != "" || n.Error != ""
}
