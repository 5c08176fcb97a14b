package ingest

import (
	"fmt"
	"strings"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/geometry"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

const (
	DefaultFontFamily = "Inter"
	DefaultFontSize   = 14.0

	unknownNodeName = "Unknown Node"
)

var errorNodeSize = geom.Size{Width: 100, Height: 100}

func (c *converter) convertNode(key string, n document.Node) (node.Node, error) {
	switch v := n.(type) {
	case *document.ContainerNode:
		return c.container(key, v)
	case *document.TextNode:
		return c.text(key, v)
	case *document.VectorNode:
		return c.vector(key, v)
	case *document.PathNode:
		return c.path(key, v)
	case *document.EllipseNode:
		return c.ellipse(key, v)
	case *document.RectangleNode:
		return c.rectangle(key, v)
	case *document.UnknownNode:
		return c.unknown(key, v)
	default:
		return nil, fmt.Errorf("convert node %s: unsupported type %T", key, n)
	}
}

func base(h *document.NodeHeader) node.Base {
	return node.Base{ID: h.ID, Name: h.Name, Active: h.Active}
}

func transform(h *document.NodeHeader) geom.AffineTransform {
	return geom.NewAffineTransform(h.Left, h.Top, h.Rotation)
}

func (c *converter) size(key string, h *document.NodeHeader, width, height []byte) (geom.Size, error) {
	w, err := c.length(key, h.ID, "width", width)
	if err != nil {
		return geom.Size{}, err
	}
	hh, err := c.length(key, h.ID, "height", height)
	if err != nil {
		return geom.Size{}, err
	}
	return geom.Size{Width: w, Height: hh}, nil
}

func (c *converter) cornerRadius(key, nodeID string, raw []byte) (node.RectangularCornerRadius, error) {
	r, err := document.DecodeCornerRadius(raw)
	if err != nil {
		return node.ZeroCornerRadius(), c.anomaly(key, nodeID, "cornerRadius", err)
	}
	if r == nil {
		return node.ZeroCornerRadius(), nil
	}
	return *r, nil
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

func (c *converter) container(key string, src *document.ContainerNode) (node.Node, error) {
	h := src.Header()
	size, err := c.size(key, h, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	radius, err := c.cornerRadius(key, h.ID, src.CornerRadius)
	if err != nil {
		return nil, err
	}
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	var stroke paint.Paint
	strokeWidth := 0.0
	if src.Border != nil && src.Border.BorderColor != nil {
		stroke = paint.Solid(Color(*src.Border.BorderColor))
		strokeWidth = valueOr(src.Border.BorderWidth, 0)
	}

	return &node.ContainerNode{
		Base:         base(h),
		Transform:    transform(h),
		Size:         size,
		CornerRadius: radius,
		Children:     append([]string{}, src.Children...),
		Fill:         fill,
		Stroke:       stroke,
		StrokeWidth:  strokeWidth,
		StrokeAlign:  paint.StrokeAlignInside,
		Opacity:      h.Opacity,
		BlendMode:    paint.BlendNormal,
		Clip:         true,
	}, nil
}

func (c *converter) text(key string, src *document.TextNode) (node.Node, error) {
	h := src.Header()
	size, err := c.size(key, h, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	weight, werr := node.NewFontWeight(src.FontWeight)
	if werr != nil {
		if err := c.anomaly(key, h.ID, "fontWeight", werr); err != nil {
			return nil, err
		}
		weight = node.DefaultFontWeight
	}

	family := DefaultFontFamily
	if src.FontFamily != nil {
		family = *src.FontFamily
	}

	return &node.TextSpanNode{
		Base:      base(h),
		Transform: transform(h),
		Size:      size,
		Text:      src.Text,
		TextStyle: node.TextStyle{
			TextDecoration: src.TextDecoration,
			FontFamily:     family,
			FontSize:       valueOr(src.FontSize, DefaultFontSize),
			FontWeight:     weight,
			LetterSpacing:  src.LetterSpacing,
			LineHeight:     src.LineHeight,
			TextTransform:  node.TextTransformNone,
		},
		TextAlign:         src.TextAlign,
		TextAlignVertical: src.TextAlignVertical,
		Fill:              fill,
		StrokeAlign:       paint.StrokeAlignInside,
		Opacity:           h.Opacity,
		BlendMode:         paint.BlendNormal,
	}, nil
}

// vector joins the d strings of every path into one path.
func (c *converter) vector(key string, src *document.VectorNode) (node.Node, error) {
	h := src.Header()
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	parts := make([]string, len(src.Paths))
	for i, p := range src.Paths {
		parts[i] = p.D
	}

	return &node.PathNode{
		Base:        base(h),
		Transform:   transform(h),
		Fill:        fill,
		Data:        strings.Join(parts, " "),
		Stroke:      paint.Solid(paint.Black),
		StrokeWidth: 0,
		StrokeAlign: paint.StrokeAlignInside,
		Opacity:     h.Opacity,
		BlendMode:   paint.BlendNormal,
	}, nil
}

func (c *converter) path(key string, src *document.PathNode) (node.Node, error) {
	h := src.Header()
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	data := ""
	if src.VectorNetwork != nil {
		vn := vectorNetwork(src.VectorNetwork)
		d, verr := vn.PathData()
		if verr != nil {
			if err := c.anomaly(key, h.ID, "vectorNetwork", verr); err != nil {
				return nil, err
			}
		}
		data = d
	}

	return &node.PathNode{
		Base:        base(h),
		Transform:   transform(h),
		Fill:        fill,
		Data:        data,
		Stroke:      paint.Solid(paint.Black),
		StrokeWidth: valueOr(src.StrokeWidth, 0),
		StrokeAlign: paint.StrokeAlignInside,
		Opacity:     h.Opacity,
		BlendMode:   paint.BlendNormal,
	}, nil
}

func vectorNetwork(src *document.VectorNetwork) geometry.VectorNetwork {
	vn := geometry.VectorNetwork{
		Vertices: make([]geom.Point, len(src.Vertices)),
		Segments: make([]geometry.Segment, len(src.Segments)),
	}
	for i, v := range src.Vertices {
		vn.Vertices[i] = geom.Point{X: v.P[0], Y: v.P[1]}
	}
	for i, s := range src.Segments {
		vn.Segments[i] = geometry.Segment{
			A:  s.A,
			B:  s.B,
			TA: geom.Point{X: s.TA[0], Y: s.TA[1]},
			TB: geom.Point{X: s.TB[0], Y: s.TB[1]},
		}
	}
	return vn
}

func (c *converter) ellipse(key string, src *document.EllipseNode) (node.Node, error) {
	h := src.Header()
	size, err := c.size(key, h, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	return &node.EllipseNode{
		Base:        base(h),
		Transform:   transform(h),
		Size:        size,
		Fill:        fill,
		Stroke:      paint.Solid(paint.Black),
		StrokeWidth: valueOr(src.StrokeWidth, 0),
		StrokeAlign: paint.StrokeAlignInside,
		Opacity:     h.Opacity,
		BlendMode:   paint.BlendNormal,
	}, nil
}

func (c *converter) rectangle(key string, src *document.RectangleNode) (node.Node, error) {
	h := src.Header()
	size, err := c.size(key, h, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	radius, err := c.cornerRadius(key, h.ID, src.CornerRadius)
	if err != nil {
		return nil, err
	}
	fill, err := c.fill(key, h.ID, h.Fill)
	if err != nil {
		return nil, err
	}

	return &node.RectangleNode{
		Base:         base(h),
		Transform:    transform(h),
		Size:         size,
		CornerRadius: radius,
		Fill:         fill,
		Stroke:       paint.Solid(paint.Black),
		StrokeWidth:  valueOr(src.StrokeWidth, 0),
		StrokeAlign:  paint.StrokeAlignInside,
		Opacity:      h.Opacity,
		BlendMode:    paint.BlendNormal,
	}, nil
}

// unknown substitutes an inactive placeholder for a node whose type is not
// recognized. The source id is kept; the map key stands in when it is absent.
func (c *converter) unknown(key string, src *document.UnknownNode) (node.Node, error) {
	id := src.ID
	if id == "" {
		id = key
	}
	name := src.Name
	if name == "" {
		name = unknownNodeName
	}

	cause := fmt.Errorf("%q: %w", src.Type, ErrUnknownNodeType)
	if err := c.anomaly(key, id, "type", cause); err != nil {
		return nil, err
	}

	return &node.ErrorNode{
		Base:      node.Base{ID: id, Name: name, Active: false},
		Transform: geom.Identity(),
		Size:      errorNodeSize,
		Error:     "Unknown node: " + string(src.Type),
		Opacity:   1.0,
	}, nil
}
