package engine

import (
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/geometry"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/scene"
)

// BuildSceneGraph builds a render-ready scene graph from a scene.
// Inactive nodes are left out, except error placeholders which are always shown.
func BuildSceneGraph(s *scene.Scene) *SceneGraph {
	sg := NewSceneGraph()
	if s == nil {
		return sg
	}

	root := &SceneNode{
		ID:             s.ID,
		Kind:           node.KindGroup,
		LocalTransform: s.Transform,
		WorldTransform: s.Transform,
		Opacity:        1.0,
		Visible:        true,
	}
	sg.Root = root

	for _, childID := range s.Children {
		child, ok := s.Node(childID)
		if !ok {
			continue
		}
		if sn := buildNode(s, child, root, sg); sn != nil {
			root.Children = append(root.Children, sn)
			root.Bounds = root.Bounds.Union(sn.Bounds)
		}
	}

	sg.Dirty = false
	return sg
}

// buildNode recursively resolves n and its children. A node reached twice
// through a cyclic child list is built only the first time.
func buildNode(s *scene.Scene, n node.Node, parent *SceneNode, sg *SceneGraph) *SceneNode {
	if _, seen := sg.NodesById[n.NodeID()]; seen {
		return nil
	}
	if !n.IsActive() && n.Kind() != node.KindError {
		return nil
	}

	local := node.Transform(n)
	world := parent.WorldTransform.Multiply(local)

	sn := &SceneNode{
		ID:             n.NodeID(),
		Kind:           n.Kind(),
		LocalTransform: local,
		WorldTransform: world,
		Opacity:        parent.Opacity * node.Opacity(n),
		Blend:          node.Blend(n),
		Visible:        true,
		Parent:         parent,
	}
	resolve(sn, n)

	// Register before children so cycles terminate.
	sg.NodesById[sn.ID] = sn
	sn.ShapeBounds = world.TransformRect(localBounds(sn))
	sn.Bounds = sn.ShapeBounds

	for _, childID := range node.Children(n) {
		child, ok := s.Node(childID)
		if !ok {
			continue
		}
		if cn := buildNode(s, child, sn, sg); cn != nil {
			sn.Children = append(sn.Children, cn)

			// Expand bounds to include children
			if !cn.Bounds.IsEmpty() {
				sn.Bounds = sn.Bounds.Union(cn.Bounds)
			}
		}
	}

	return sn
}

// resolve copies the render data of n into sn.
func resolve(sn *SceneNode, n node.Node) {
	switch v := n.(type) {
	case *node.ErrorNode:
		sn.Size = v.Size
		sn.Path = geometry.RectPathData(v.Size, 0, 0, 0, 0)
		sn.Error = v.Error

	case *node.GroupNode:
		// Children only.

	case *node.ContainerNode:
		sn.Size = v.Size
		sn.Path = rectPath(v.Size, v.CornerRadius)
		sn.Clip = v.Clip
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect

	case *node.RectangleNode:
		sn.Size = v.Size
		sn.Path = rectPath(v.Size, v.CornerRadius)
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect

	case *node.EllipseNode:
		sn.Size = v.Size
		sn.Path = geometry.EllipsePathData(v.Size)
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect

	case *node.PolygonNode:
		resolvePolygon(sn, v)

	case *node.RegularPolygonNode:
		sn.Size = v.Size
		resolvePolygon(sn, v.ToPolygon())

	case *node.RegularStarPolygonNode:
		sn.Size = v.Size
		resolvePolygon(sn, v.ToPolygon())

	case *node.LineNode:
		sn.Size = geom.Size{Width: v.Size.Width}
		sn.Path = geometry.LinePathData(v.Size.Width)
		sn.Stroke = v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign(), v.StrokeDashArray

	case *node.TextSpanNode:
		sn.Size = v.Size
		sn.Text = &TextRun{
			Text:          v.Text,
			Style:         v.TextStyle,
			Align:         v.TextAlign,
			AlignVertical: v.TextAlignVertical,
		}
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeAlign = v.StrokeAlign
		if v.StrokeWidth != nil {
			sn.StrokeWidth = *v.StrokeWidth
		}

	case *node.PathNode:
		sn.Path = v.Data
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect

	case *node.BooleanOperationNode:
		// The operands are drawn as they are; combining them is left to the renderer.
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect

	case *node.ImageNode:
		sn.Size = v.Size
		sn.Path = rectPath(v.Size, v.CornerRadius)
		sn.ImageRef = v.Ref
		sn.Fill, sn.Stroke = v.Fill, v.Stroke
		sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = v.StrokeWidth, v.StrokeAlign, v.StrokeDashArray
		sn.Effect = v.Effect
	}
}

func resolvePolygon(sn *SceneNode, p *node.PolygonNode) {
	sn.Path = p.PathData()
	sn.Fill, sn.Stroke = p.Fill, p.Stroke
	sn.StrokeWidth, sn.StrokeAlign, sn.StrokeDash = p.StrokeWidth, p.StrokeAlign, p.StrokeDashArray
	sn.Effect = p.Effect
}

func rectPath(size geom.Size, r node.RectangularCornerRadius) string {
	return geometry.RectPathData(size, r.TL, r.TR, r.BR, r.BL)
}

// localBounds returns the node's own extent in local coordinates, ignoring children.
func localBounds(sn *SceneNode) geom.Rect {
	switch {
	case sn.Kind == node.KindLine:
		// A line has no height of its own; give it the stroke's.
		return geom.Rect{Y: -sn.StrokeWidth / 2, Width: sn.Size.Width, Height: sn.StrokeWidth}
	case sn.Text != nil || sn.ImageRef != "" || sn.Error != "":
		return geom.RectAtOrigin(sn.Size)
	case sn.Path != "":
		b, err := geometry.PathBounds(sn.Path)
		if err != nil {
			return geom.RectAtOrigin(sn.Size)
		}
		return b
	default:
		return geom.Rect{}
	}
}
