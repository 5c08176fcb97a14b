// Package node is the canonical node model of a canvas document: a closed set
// of thirteen node kinds sharing a common identity header.
//
// Container-like nodes (groups, containers, boolean operations) refer to their
// children by id. Children are resolved through the node table that owns them,
// never embedded.
package node

import (
	"fmt"

	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// Kind identifies a node variant.
type Kind int

const (
	KindError Kind = iota
	KindGroup
	KindContainer
	KindRectangle
	KindEllipse
	KindPolygon
	KindRegularPolygon
	KindRegularStarPolygon
	KindLine
	KindTextSpan
	KindPath
	KindBooleanOperation
	KindImage
)

var kindNames = [...]string{
	KindError:              "error",
	KindGroup:              "group",
	KindContainer:          "container",
	KindRectangle:          "rectangle",
	KindEllipse:            "ellipse",
	KindPolygon:            "polygon",
	KindRegularPolygon:     "regular_polygon",
	KindRegularStarPolygon: "regular_star_polygon",
	KindLine:               "line",
	KindTextSpan:           "text_span",
	KindPath:               "path",
	KindBooleanOperation:   "boolean_operation",
	KindImage:              "image",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is implemented by the pointer types of every variant in this package
// and by nothing else.
type Node interface {
	NodeID() string
	NodeName() string
	IsActive() bool
	Kind() Kind
	sealed()
}

// Base is the identity header common to all nodes.
type Base struct {
	ID     string
	Name   string
	Active bool
}

func (b *Base) NodeID() string   { return b.ID }
func (b *Base) NodeName() string { return b.Name }
func (b *Base) IsActive() bool   { return b.Active }
func (b *Base) sealed()          {}

func (*ErrorNode) Kind() Kind              { return KindError }
func (*GroupNode) Kind() Kind              { return KindGroup }
func (*ContainerNode) Kind() Kind          { return KindContainer }
func (*RectangleNode) Kind() Kind          { return KindRectangle }
func (*EllipseNode) Kind() Kind            { return KindEllipse }
func (*PolygonNode) Kind() Kind            { return KindPolygon }
func (*RegularPolygonNode) Kind() Kind     { return KindRegularPolygon }
func (*RegularStarPolygonNode) Kind() Kind { return KindRegularStarPolygon }
func (*LineNode) Kind() Kind               { return KindLine }
func (*TextSpanNode) Kind() Kind           { return KindTextSpan }
func (*PathNode) Kind() Kind               { return KindPath }
func (*BooleanOperationNode) Kind() Kind   { return KindBooleanOperation }
func (*ImageNode) Kind() Kind              { return KindImage }

// Transform returns the local transform of any node.
func Transform(n Node) geom.AffineTransform {
	switch v := n.(type) {
	case *ErrorNode:
		return v.Transform
	case *GroupNode:
		return v.Transform
	case *ContainerNode:
		return v.Transform
	case *RectangleNode:
		return v.Transform
	case *EllipseNode:
		return v.Transform
	case *PolygonNode:
		return v.Transform
	case *RegularPolygonNode:
		return v.Transform
	case *RegularStarPolygonNode:
		return v.Transform
	case *LineNode:
		return v.Transform
	case *TextSpanNode:
		return v.Transform
	case *PathNode:
		return v.Transform
	case *BooleanOperationNode:
		return v.Transform
	case *ImageNode:
		return v.Transform
	default:
		return geom.Identity()
	}
}

// Opacity returns the layer opacity of any node.
func Opacity(n Node) float64 {
	switch v := n.(type) {
	case *ErrorNode:
		return v.Opacity
	case *GroupNode:
		return v.Opacity
	case *ContainerNode:
		return v.Opacity
	case *RectangleNode:
		return v.Opacity
	case *EllipseNode:
		return v.Opacity
	case *PolygonNode:
		return v.Opacity
	case *RegularPolygonNode:
		return v.Opacity
	case *RegularStarPolygonNode:
		return v.Opacity
	case *LineNode:
		return v.Opacity
	case *TextSpanNode:
		return v.Opacity
	case *PathNode:
		return v.Opacity
	case *BooleanOperationNode:
		return v.Opacity
	case *ImageNode:
		return v.Opacity
	default:
		return 1
	}
}

// Blend returns the blend mode of any node. Error nodes composite normally.
func Blend(n Node) paint.BlendMode {
	switch v := n.(type) {
	case *GroupNode:
		return v.BlendMode
	case *ContainerNode:
		return v.BlendMode
	case *RectangleNode:
		return v.BlendMode
	case *EllipseNode:
		return v.BlendMode
	case *PolygonNode:
		return v.BlendMode
	case *RegularPolygonNode:
		return v.BlendMode
	case *RegularStarPolygonNode:
		return v.BlendMode
	case *LineNode:
		return v.BlendMode
	case *TextSpanNode:
		return v.BlendMode
	case *PathNode:
		return v.BlendMode
	case *BooleanOperationNode:
		return v.BlendMode
	case *ImageNode:
		return v.BlendMode
	default:
		return paint.BlendNormal
	}
}

// Children returns the ordered child ids of container-like nodes and nil for
// every other kind.
func Children(n Node) []string {
	switch v := n.(type) {
	case *GroupNode:
		return v.Children
	case *ContainerNode:
		return v.Children
	case *BooleanOperationNode:
		return v.Children
	default:
		return nil
	}
}
