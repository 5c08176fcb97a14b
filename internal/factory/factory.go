// Package factory creates new, canonically defaulted nodes for authoring.
package factory

import (
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

var (
	DefaultSize = geom.Size{Width: 100, Height: 100}

	DefaultFill   = paint.White
	DefaultStroke = paint.Black
)

const (
	DefaultStrokeWidth = 1.0
	DefaultStrokeAlign = paint.StrokeAlignInside
	DefaultOpacity     = 1.0

	DefaultPolygonPoints   = 3
	DefaultStarPoints      = 5
	DefaultStarInnerRadius = 0.4
	DefaultTextFontFamily  = "Arial"
	DefaultTextFontSize    = 16.0
	DefaultTextSpanHeight  = 20.0
)

// Factory holds no state besides its id source, so one Factory can serve many
// documents.
type Factory struct {
	ids IDGenerator
}

// New returns a Factory drawing ids from ids. A nil generator falls back to
// TypeIDGenerator with the node prefix.
func New(ids IDGenerator) *Factory {
	if ids == nil {
		ids = TypeIDGenerator{}
	}
	return &Factory{ids: ids}
}

func (f *Factory) base() node.Base {
	return node.Base{ID: f.ids.NewID(), Active: true}
}

func (f *Factory) CreateRectangle() *node.RectangleNode {
	return &node.RectangleNode{
		Base:         f.base(),
		Transform:    geom.Identity(),
		Size:         DefaultSize,
		CornerRadius: node.ZeroCornerRadius(),
		Fill:         paint.Solid(DefaultFill),
		Stroke:       paint.Solid(DefaultStroke),
		StrokeWidth:  DefaultStrokeWidth,
		StrokeAlign:  DefaultStrokeAlign,
		Opacity:      DefaultOpacity,
		BlendMode:    paint.BlendNormal,
	}
}

func (f *Factory) CreateEllipse() *node.EllipseNode {
	return &node.EllipseNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Size:        DefaultSize,
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

// CreateLine returns a line of the default width and zero height.
func (f *Factory) CreateLine() *node.LineNode {
	return &node.LineNode{
		Base:            f.base(),
		Transform:       geom.Identity(),
		Size:            geom.Size{Width: DefaultSize.Width},
		Stroke:          paint.Solid(DefaultStroke),
		StrokeWidth:     DefaultStrokeWidth,
		DataStrokeAlign: DefaultStrokeAlign,
		Opacity:         DefaultOpacity,
		BlendMode:       paint.BlendNormal,
	}
}

// CreateTextSpan returns an empty span with black text and no stroke.
func (f *Factory) CreateTextSpan() *node.TextSpanNode {
	return &node.TextSpanNode{
		Base:      f.base(),
		Transform: geom.Identity(),
		Size:      geom.Size{Width: DefaultSize.Width, Height: DefaultTextSpanHeight},
		TextStyle: node.TextStyle{
			TextDecoration: node.TextDecorationNone,
			FontFamily:     DefaultTextFontFamily,
			FontSize:       DefaultTextFontSize,
			FontWeight:     node.DefaultFontWeight,
			TextTransform:  node.TextTransformNone,
		},
		TextAlign:         node.TextAlignLeft,
		TextAlignVertical: node.TextAlignTop,
		Fill:              paint.Solid(DefaultStroke),
		StrokeAlign:       DefaultStrokeAlign,
		Opacity:           DefaultOpacity,
		BlendMode:         paint.BlendNormal,
	}
}

func (f *Factory) CreateGroup() *node.GroupNode {
	return &node.GroupNode{
		Base:      f.base(),
		Transform: geom.Identity(),
		Children:  []string{},
		Opacity:   DefaultOpacity,
		BlendMode: paint.BlendNormal,
	}
}

// CreateContainer returns a clipping container without a border.
func (f *Factory) CreateContainer() *node.ContainerNode {
	return &node.ContainerNode{
		Base:         f.base(),
		Transform:    geom.Identity(),
		Size:         DefaultSize,
		CornerRadius: node.ZeroCornerRadius(),
		Children:     []string{},
		Fill:         paint.Solid(DefaultFill),
		StrokeWidth:  DefaultStrokeWidth,
		StrokeAlign:  DefaultStrokeAlign,
		Opacity:      DefaultOpacity,
		BlendMode:    paint.BlendNormal,
		Clip:         true,
	}
}

func (f *Factory) CreatePath() *node.PathNode {
	return &node.PathNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

func (f *Factory) CreatePolygon() *node.PolygonNode {
	return &node.PolygonNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Points:      []geom.Point{},
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

// CreateRegularPolygon returns a triangle.
func (f *Factory) CreateRegularPolygon() *node.RegularPolygonNode {
	return &node.RegularPolygonNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Size:        DefaultSize,
		PointCount:  DefaultPolygonPoints,
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

// CreateRegularStarPolygon returns a five-pointed star.
func (f *Factory) CreateRegularStarPolygon() *node.RegularStarPolygonNode {
	return &node.RegularStarPolygonNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Size:        DefaultSize,
		PointCount:  DefaultStarPoints,
		InnerRadius: DefaultStarInnerRadius,
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

func (f *Factory) CreateBooleanOperation(op node.BooleanOp) *node.BooleanOperationNode {
	return &node.BooleanOperationNode{
		Base:        f.base(),
		Transform:   geom.Identity(),
		Op:          op,
		Children:    []string{},
		Fill:        paint.Solid(DefaultFill),
		Stroke:      paint.Solid(DefaultStroke),
		StrokeWidth: DefaultStrokeWidth,
		StrokeAlign: DefaultStrokeAlign,
		Opacity:     DefaultOpacity,
		BlendMode:   paint.BlendNormal,
	}
}

func (f *Factory) CreateImage() *node.ImageNode {
	return &node.ImageNode{
		Base:         f.base(),
		Transform:    geom.Identity(),
		Size:         DefaultSize,
		CornerRadius: node.ZeroCornerRadius(),
		Fill:         paint.Solid(DefaultFill),
		Stroke:       paint.Solid(DefaultStroke),
		StrokeWidth:  DefaultStrokeWidth,
		StrokeAlign:  DefaultStrokeAlign,
		Opacity:      DefaultOpacity,
		BlendMode:    paint.BlendNormal,
	}
}
