package node

import (
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/geometry"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// RectangularCornerRadius holds one radius per corner. Radii are not limited
// to half the shorter side here; that is left to whoever draws the shape.
type RectangularCornerRadius struct {
	TL float64 `json:"tl"`
	TR float64 `json:"tr"`
	BL float64 `json:"bl"`
	BR float64 `json:"br"`
}

func ZeroCornerRadius() RectangularCornerRadius {
	return RectangularCornerRadius{}
}

// AllCorners returns a uniform radius.
func AllCorners(v float64) RectangularCornerRadius {
	return RectangularCornerRadius{TL: v, TR: v, BL: v, BR: v}
}

func (r RectangularCornerRadius) IsZero() bool {
	return r.TL == 0 && r.TR == 0 && r.BL == 0 && r.BR == 0
}

func (r RectangularCornerRadius) IsUniform() bool {
	return r.TL == r.TR && r.TL == r.BL && r.TL == r.BR
}

// BooleanOp is the path operation a BooleanOperationNode applies to its children.
type BooleanOp int

const (
	BooleanUnion BooleanOp = iota
	BooleanIntersection
	BooleanDifference
	BooleanXor
)

func (op BooleanOp) String() string {
	switch op {
	case BooleanUnion:
		return "union"
	case BooleanIntersection:
		return "intersection"
	case BooleanDifference:
		return "difference"
	case BooleanXor:
		return "xor"
	default:
		return "unknown"
	}
}

// ErrorNode stands in for content that could not be interpreted, so that the
// rest of the document still renders.
type ErrorNode struct {
	Base
	Transform geom.AffineTransform
	Size      geom.Size
	Error     string
	Opacity   float64
}

func (n *ErrorNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

type GroupNode struct {
	Base
	Transform geom.AffineTransform
	Children  []string
	Opacity   float64
	BlendMode paint.BlendMode
}

// ContainerNode is a sized frame with its own fill and children. Stroke is nil
// when the container has no border.
type ContainerNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	CornerRadius    RectangularCornerRadius
	Children        []string
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
	Clip            bool
}

func (n *ContainerNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

type RectangleNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	CornerRadius    RectangularCornerRadius
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

func (n *RectangleNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

// EllipseNode is an ellipse inscribed in the box (0, 0, width, height).
type EllipseNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

func (n *EllipseNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

// PolygonNode is a closed polygon through Points, in local coordinates.
// Self-intersecting point lists are accepted.
type PolygonNode struct {
	Base
	Transform       geom.AffineTransform
	Points          []geom.Point
	CornerRadius    float64
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

// PathData returns the polygon outline as closed path data.
func (n *PolygonNode) PathData() string {
	return geometry.PolygonPathData(n.Points)
}

// RegularPolygonNode stores only its parameters. The vertices are derived on
// demand by ToPolygon.
type RegularPolygonNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	PointCount      int
	CornerRadius    float64
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

func (n *RegularPolygonNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

// ToPolygon returns an equivalent PolygonNode with the same identity and style.
func (n *RegularPolygonNode) ToPolygon() *PolygonNode {
	return &PolygonNode{
		Base:            n.Base,
		Transform:       n.Transform,
		Points:          geometry.RegularPolygon(n.Size, n.PointCount),
		CornerRadius:    n.CornerRadius,
		Fill:            n.Fill,
		Stroke:          n.Stroke,
		StrokeWidth:     n.StrokeWidth,
		StrokeAlign:     n.StrokeAlign,
		StrokeDashArray: cloneDash(n.StrokeDashArray),
		Opacity:         n.Opacity,
		BlendMode:       n.BlendMode,
		Effect:          n.Effect,
	}
}

// RegularStarPolygonNode is a star with PointCount spikes. InnerRadius is the
// ratio of the inner vertex radius to the outer one.
type RegularStarPolygonNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	PointCount      int
	InnerRadius     float64
	CornerRadius    float64
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

func (n *RegularStarPolygonNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

func (n *RegularStarPolygonNode) ToPolygon() *PolygonNode {
	return &PolygonNode{
		Base:            n.Base,
		Transform:       n.Transform,
		Points:          geometry.RegularStar(n.Size, n.PointCount, n.InnerRadius),
		CornerRadius:    n.CornerRadius,
		Fill:            n.Fill,
		Stroke:          n.Stroke,
		StrokeWidth:     n.StrokeWidth,
		StrokeAlign:     n.StrokeAlign,
		StrokeDashArray: cloneDash(n.StrokeDashArray),
		Opacity:         n.Opacity,
		BlendMode:       n.BlendMode,
		Effect:          n.Effect,
	}
}

// LineNode is a horizontal line of length Size.Width. Size.Height is ignored.
type LineNode struct {
	Base
	Transform geom.AffineTransform
	Size      geom.Size
	Stroke    paint.Paint
	// DataStrokeAlign is carried for ToPath; a line itself always strokes centered.
	DataStrokeAlign paint.StrokeAlign
	StrokeWidth     float64
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
}

func (n *LineNode) Rect() geom.Rect { return geom.RectAtOrigin(geom.Size{Width: n.Size.Width}) }

// StrokeAlign is always StrokeAlignCenter for lines, whatever DataStrokeAlign holds.
func (n *LineNode) StrokeAlign() paint.StrokeAlign {
	return paint.StrokeAlignCenter
}

// ToPath converts the line into a PathNode. The stored alignment is applied here.
func (n *LineNode) ToPath() *PathNode {
	return &PathNode{
		Base:            n.Base,
		Transform:       n.Transform,
		Data:            geometry.LinePathData(n.Size.Width),
		Stroke:          n.Stroke,
		StrokeWidth:     n.StrokeWidth,
		StrokeAlign:     n.DataStrokeAlign,
		StrokeDashArray: cloneDash(n.StrokeDashArray),
		Opacity:         n.Opacity,
		BlendMode:       n.BlendMode,
	}
}

// TextSpanNode is a single-style block of plain text laid out in Size.
type TextSpanNode struct {
	Base
	Transform         geom.AffineTransform
	Size              geom.Size
	Text              string
	TextStyle         TextStyle
	TextAlign         TextAlign
	TextAlignVertical TextAlignVertical
	Fill              paint.Paint
	Stroke            paint.Paint
	StrokeWidth       *float64
	StrokeAlign       paint.StrokeAlign
	Opacity           float64
	BlendMode         paint.BlendMode
}

func (n *TextSpanNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

// PathNode draws SVG path data. Data is stored verbatim and not validated.
type PathNode struct {
	Base
	Transform       geom.AffineTransform
	Fill            paint.Paint
	Data            string
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

type BooleanOperationNode struct {
	Base
	Transform       geom.AffineTransform
	Op              BooleanOp
	Children        []string
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
}

// ImageNode draws the bitmap named by Ref into its box.
type ImageNode struct {
	Base
	Transform       geom.AffineTransform
	Size            geom.Size
	CornerRadius    RectangularCornerRadius
	Fill            paint.Paint
	Stroke          paint.Paint
	StrokeWidth     float64
	StrokeAlign     paint.StrokeAlign
	StrokeDashArray []float64
	Opacity         float64
	BlendMode       paint.BlendMode
	Effect          paint.FilterEffect
	Ref             string
}

func (n *ImageNode) Rect() geom.Rect { return geom.RectAtOrigin(n.Size) }

func cloneDash(d []float64) []float64 {
	if d == nil {
		return nil
	}
	return append([]float64(nil), d...)
}
