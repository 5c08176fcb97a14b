package ingest

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

const fixture = `{
	"version": "0.0.1",
	"document": {
		"bitmaps": {"img": {"url": "a.png"}},
		"properties": {},
		"entry_scene_id": "main",
		"scenes": {
			"main": {"id": "main", "name": "Page", "type": "scene", "children": ["frame"],
				"backgroundColor": {"r": 10, "g": 20, "b": 30, "a": 0.5}}
		},
		"nodes": {
			"frame": {
				"type": "container", "id": "frame", "name": "Frame",
				"left": 5, "top": 6, "width": 800, "height": 600, "cornerRadius": 12,
				"border": {"borderWidth": 3, "borderColor": {"r": 255, "g": 0, "b": 0, "a": 1}},
				"fill": {"type": "solid", "color": {"r": 1, "g": 2, "b": 3, "a": 1}},
				"children": ["card", "dot", "label", "icon", "curve"]
			},
			"card": {
				"type": "rectangle", "id": "card", "name": "Card",
				"left": 10, "top": 20, "width": 200, "height": 100, "strokeWidth": 2,
				"cornerRadius": [1, 2, 3, 4],
				"fill": {"type": "linear_gradient",
					"transform": [[2, 0, 10], [0, 3, 20]],
					"stops": [
						{"offset": 0, "color": {"r": 255, "g": 0, "b": 0, "a": 1}},
						{"offset": 1, "color": {"r": 0, "g": 0, "b": 255, "a": 0.5}}
					]}
			},
			"dot": {"type": "ellipse", "id": "dot", "name": "Dot", "width": 50, "height": 40, "rotation": 45, "opacity": 0.5},
			"label": {"type": "text", "id": "label", "name": "Label", "text": "Hi",
				"width": 120, "height": 30, "fontSize": 18, "fontWeight": 700, "lineHeight": 1.5,
				"textAlign": "right", "textAlignVertical": "bottom", "textDecoration": "underline"},
			"icon": {"type": "vector", "id": "icon", "name": "Icon", "active": false,
				"paths": [{"d": "M0 0 L1 1", "fillRule": "nonzero", "fill": "fill"}, {"d": "M2 2 L3 3", "fillRule": "nonzero", "fill": "fill"}]},
			"curve": {"type": "path", "id": "curve", "name": "Curve", "strokeWidth": 4,
				"vectorNetwork": {
					"vertices": [{"p": [0, 0]}, {"p": [100, 0]}],
					"segments": [{"a": 0, "b": 1, "ta": [10, 5], "tb": [-10, 5]}]
				}},
			"note": {"type": "sticky-note", "id": "note", "color": "yellow"}
		}
	}
}`

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func parseFixture(t *testing.T) *Result {
	t.Helper()
	res, err := NewParser(quiet()).Parse([]byte(fixture))
	require.NoError(t, err)
	return res
}

func TestParseDocument(t *testing.T) {
	res := parseFixture(t)
	doc := res.Document

	assert.Equal(t, "0.0.1", doc.Version)
	assert.Equal(t, "main", doc.EntrySceneID)
	assert.JSONEq(t, `{"url": "a.png"}`, string(doc.Bitmaps["img"]))

	require.Len(t, doc.Scenes, 1)
	s := doc.Scenes[0]
	assert.Equal(t, "Page", s.Name)
	assert.Equal(t, []string{"frame"}, s.Children)
	assert.True(t, s.Transform.IsIdentity())
	require.NotNil(t, s.BackgroundColor)
	assert.Equal(t, paint.Color{R: 10, G: 20, B: 30, A: 127}, *s.BackgroundColor)
	assert.Equal(t, 6, s.Nodes.Len())

	assert.Equal(t, []string{"note"}, doc.Detached.IDs())
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, Diagnostic{NodeID: "note", Field: "type", Message: `"sticky-note": unknown node type`}, res.Diagnostics[0])
}

func TestConvertRectangle(t *testing.T) {
	doc := parseFixture(t).Document
	n, ok := doc.Node("card")
	require.True(t, ok)

	want := &node.RectangleNode{
		Base:         node.Base{ID: "card", Name: "Card", Active: true},
		Transform:    geom.NewAffineTransform(10, 20, 0),
		Size:         geom.Size{Width: 200, Height: 100},
		CornerRadius: node.RectangularCornerRadius{TL: 1, TR: 2, BL: 3, BR: 4},
		Fill: paint.LinearGradientPaint{
			Transform: geom.AffineTransform{2, 0, 0, 3, 10, 20},
			Stops: []paint.GradientStop{
				{Offset: 0, Color: paint.Color{R: 255, A: 255}},
				{Offset: 1, Color: paint.Color{B: 255, A: 127}},
			},
			Opacity: 1,
		},
		Stroke:      paint.Solid(paint.Black),
		StrokeWidth: 2,
		StrokeAlign: paint.StrokeAlignInside,
		Opacity:     1,
		BlendMode:   paint.BlendNormal,
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("rectangle mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertContainer(t *testing.T) {
	doc := parseFixture(t).Document
	n, ok := doc.Node("frame")
	require.True(t, ok)
	c, ok := n.(*node.ContainerNode)
	require.True(t, ok)

	assert.Equal(t, geom.Size{Width: 800, Height: 600}, c.Size)
	assert.Equal(t, node.AllCorners(12), c.CornerRadius)
	assert.Equal(t, paint.Solid(paint.Color{R: 255, A: 255}), c.Stroke)
	assert.Equal(t, 3.0, c.StrokeWidth)
	assert.Equal(t, paint.Solid(paint.Color{R: 1, G: 2, B: 3, A: 255}), c.Fill)
	assert.True(t, c.Clip)
	assert.Equal(t, []string{"card", "dot", "label", "icon", "curve"}, c.Children)
	assert.Equal(t, geom.Point{X: 5, Y: 6}, c.Transform.Translation())
}

func TestConvertContainerWithoutBorder(t *testing.T) {
	data := `{"version": "1", "document": {"bitmaps": {}, "properties": {}, "scenes": {}, "nodes": {
		"plain": {"type": "container", "id": "plain", "name": "P", "children": []},
		"widthless": {"type": "container", "id": "widthless", "name": "W", "children": [],
			"border": {"borderColor": {"r": 0, "g": 0, "b": 0, "a": 1}}},
		"colorless": {"type": "container", "id": "colorless", "name": "C", "children": [],
			"border": {"borderWidth": 4}}
	}}}`
	res, err := NewParser(quiet()).Parse([]byte(data))
	require.NoError(t, err)

	n, _ := res.Document.Node("plain")
	assert.Nil(t, n.(*node.ContainerNode).Stroke)
	assert.Equal(t, 0.0, n.(*node.ContainerNode).StrokeWidth)
	assert.True(t, n.(*node.ContainerNode).CornerRadius.IsZero())

	n, _ = res.Document.Node("widthless")
	assert.Equal(t, paint.Solid(paint.Black), n.(*node.ContainerNode).Stroke)
	assert.Equal(t, 0.0, n.(*node.ContainerNode).StrokeWidth)

	n, _ = res.Document.Node("colorless")
	assert.Nil(t, n.(*node.ContainerNode).Stroke)
	assert.Equal(t, 0.0, n.(*node.ContainerNode).StrokeWidth)
}

func TestConvertEllipse(t *testing.T) {
	doc := parseFixture(t).Document
	n, _ := doc.Node("dot")
	e, ok := n.(*node.EllipseNode)
	require.True(t, ok)

	assert.Equal(t, geom.Size{Width: 50, Height: 40}, e.Size)
	assert.Equal(t, 0.5, e.Opacity)
	assert.Equal(t, 0.0, e.StrokeWidth)
	assert.Equal(t, paint.Solid(paint.Black), e.Stroke)
	assert.Equal(t, paint.Solid(paint.Transparent), e.Fill)
	assert.InDelta(t, geom.NewAffineTransform(0, 0, 45)[0], e.Transform[0], 1e-12)
}

func TestConvertText(t *testing.T) {
	doc := parseFixture(t).Document
	n, _ := doc.Node("label")
	text, ok := n.(*node.TextSpanNode)
	require.True(t, ok)

	assert.Equal(t, "Hi", text.Text)
	assert.Equal(t, DefaultFontFamily, text.TextStyle.FontFamily)
	assert.Equal(t, 18.0, text.TextStyle.FontSize)
	assert.Equal(t, node.FontWeight(700), text.TextStyle.FontWeight)
	assert.False(t, text.TextStyle.Italic)
	require.NotNil(t, text.TextStyle.LineHeight)
	assert.Equal(t, 1.5, *text.TextStyle.LineHeight)
	assert.Nil(t, text.TextStyle.LetterSpacing)
	assert.Equal(t, node.TextDecorationUnderline, text.TextStyle.TextDecoration)
	assert.Equal(t, node.TextAlignRight, text.TextAlign)
	assert.Equal(t, node.TextAlignBottom, text.TextAlignVertical)
	assert.Nil(t, text.Stroke)
	assert.Nil(t, text.StrokeWidth)
	assert.Equal(t, paint.StrokeAlignInside, text.StrokeAlign)
}

func TestConvertVectorAndPath(t *testing.T) {
	doc := parseFixture(t).Document

	n, _ := doc.Node("icon")
	icon, ok := n.(*node.PathNode)
	require.True(t, ok)
	assert.Equal(t, "M0 0 L1 1 M2 2 L3 3", icon.Data)
	assert.False(t, icon.IsActive())
	assert.Equal(t, 0.0, icon.StrokeWidth)

	n, _ = doc.Node("curve")
	curve, ok := n.(*node.PathNode)
	require.True(t, ok)
	assert.Equal(t, "M0 0 C10 5,90 5,100 0", curve.Data)
	assert.Equal(t, 4.0, curve.StrokeWidth)
	assert.Equal(t, paint.Solid(paint.Black), curve.Stroke)
}

func TestConvertUnknownNode(t *testing.T) {
	doc := parseFixture(t).Document
	n, ok := doc.Node("note")
	require.True(t, ok)

	want := &node.ErrorNode{
		Base:      node.Base{ID: "note", Name: "Unknown Node", Active: false},
		Transform: geom.Identity(),
		Size:      geom.Size{Width: 100, Height: 100},
		Error:     "Unknown node: sticky-note",
		Opacity:   1,
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("error node mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownNodeKeepsMapKeyWithoutID(t *testing.T) {
	data := `{"version": "1", "document": {"bitmaps": {}, "properties": {}, "scenes": {},
		"nodes": {"k1": {"type": "widget", "name": "Widget"}}}}`
	res, err := NewParser(quiet()).Parse([]byte(data))
	require.NoError(t, err)

	n, ok := res.Document.Node("k1")
	require.True(t, ok)
	assert.Equal(t, "Widget", n.NodeName())
	assert.Equal(t, node.KindError, n.Kind())
}

func TestResolveFill(t *testing.T) {
	red := document.RGBA{R: 255, A: 1}
	rows := [2][3]float64{{1, 0, 5}, {0, 1, 7}}

	tests := []struct {
		name    string
		fill    *document.Fill
		want    paint.Paint
		wantErr error
	}{
		{"absent", nil, paint.Solid(paint.Transparent), nil},
		{"solid", &document.Fill{Type: "solid", Color: &red}, paint.Solid(paint.Color{R: 255, A: 255}), nil},
		{"solid without color", &document.Fill{Type: "solid"}, paint.Solid(paint.Transparent), nil},
		{"radial without transform", &document.Fill{Type: "radial_gradient", Stops: []document.GradientStop{{Offset: 0.5, Color: red}}},
			paint.RadialGradientPaint{
				Transform: geom.Identity(),
				Stops:     []paint.GradientStop{{Offset: 0.5, Color: paint.Color{R: 255, A: 255}}},
				Opacity:   1,
			}, nil},
		{"linear with transform", &document.Fill{Type: "linear_gradient", Transform: &rows},
			paint.LinearGradientPaint{Transform: geom.Translate(5, 7), Stops: []paint.GradientStop{}, Opacity: 1}, nil},
		{"unknown", &document.Fill{Type: "pattern"}, paint.Solid(paint.Transparent), ErrUnknownFill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFill(tt.fill)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("paint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorTruncatesAlpha(t *testing.T) {
	assert.Equal(t, uint8(127), Color(document.RGBA{A: 0.5}).A)
	assert.Equal(t, uint8(255), Color(document.RGBA{A: 1}).A)
	assert.Equal(t, uint8(0), Color(document.RGBA{A: 0}).A)
}

// anomalies holds one node per recoverable problem.
const anomalies = `{
	"version": "1",
	"document": {
		"bitmaps": {}, "properties": {}, "scenes": {},
		"nodes": {
			"a": {"type": "rectangle", "id": "a", "name": "A", "width": "fill", "height": 10},
			"b": {"type": "rectangle", "id": "b", "name": "B", "cornerRadius": [1, 2]},
			"c": {"type": "text", "id": "c", "name": "C", "text": "", "fontWeight": 1200},
			"d": {"type": "ellipse", "id": "d", "name": "D", "fill": {"type": "pattern"}},
			"e": {"type": "path", "id": "e", "name": "E",
				"vectorNetwork": {"vertices": [{"p": [0, 0]}], "segments": [{"a": 0, "b": 3, "ta": [0, 0], "tb": [0, 0]}]}},
			"f": {"type": "frame", "id": "f"}
		}
	}
}`

func TestLenientAbsorbsAnomalies(t *testing.T) {
	var logs bytes.Buffer
	p := NewParser(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	assert.Equal(t, Lenient, p.Mode())

	res, err := p.Parse([]byte(anomalies))
	require.NoError(t, err)

	fields := make(map[string]string)
	for _, d := range res.Diagnostics {
		fields[d.NodeID] = d.Field
	}
	assert.Equal(t, map[string]string{
		"a": "width",
		"b": "cornerRadius",
		"c": "fontWeight",
		"d": "fill",
		"e": "vectorNetwork",
		"f": "type",
	}, fields)
	assert.Equal(t, 6, bytes.Count(logs.Bytes(), []byte("absorbed content anomaly")))

	doc := res.Document
	n, _ := doc.Node("a")
	assert.Equal(t, geom.Size{Width: 0, Height: 10}, n.(*node.RectangleNode).Size)
	n, _ = doc.Node("b")
	assert.True(t, n.(*node.RectangleNode).CornerRadius.IsZero())
	n, _ = doc.Node("c")
	assert.Equal(t, node.DefaultFontWeight, n.(*node.TextSpanNode).TextStyle.FontWeight)
	n, _ = doc.Node("d")
	assert.Equal(t, paint.Solid(paint.Transparent), n.(*node.EllipseNode).Fill)
	n, _ = doc.Node("e")
	assert.Equal(t, "", n.(*node.PathNode).Data)
	n, _ = doc.Node("f")
	assert.Equal(t, node.KindError, n.Kind())
}

func TestStrictRejectsAnomalies(t *testing.T) {
	tests := []struct {
		name string
		node string
		path string
		err  error
	}{
		{"non-numeric width", `{"type": "rectangle", "id": "a", "name": "A", "width": "fill"}`, "document.nodes.x.width", document.ErrNonNumericLength},
		{"corner radius shape", `{"type": "rectangle", "id": "a", "name": "A", "cornerRadius": {"tl": 1}}`, "document.nodes.x.cornerRadius", document.ErrCornerRadiusShape},
		{"font weight", `{"type": "text", "id": "a", "name": "A", "text": "", "fontWeight": 0}`, "document.nodes.x.fontWeight", node.ErrFontWeightRange},
		{"unknown fill", `{"type": "ellipse", "id": "a", "name": "A", "fill": {"type": "noise"}}`, "document.nodes.x.fill", ErrUnknownFill},
		{"unknown node", `{"type": "frame"}`, "document.nodes.x.type", ErrUnknownNodeType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"version": "1", "document": {"bitmaps": {}, "properties": {}, "scenes": {}, "nodes": {"x": ` + tt.node + `}}}`
			res, err := NewParser(WithMode(Strict), quiet()).Parse([]byte(data))
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, document.ErrMalformed)
			assert.ErrorIs(t, err, tt.err)

			var se *document.StructuralError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.path, se.Path)
		})
	}
}

func TestStructuralErrorsPassThrough(t *testing.T) {
	_, err := Parse([]byte(`{"version": "1"}`))
	assert.ErrorIs(t, err, document.ErrMalformed)
}

func TestSceneClaiming(t *testing.T) {
	data := `{
		"version": "1",
		"document": {
			"bitmaps": {}, "properties": {},
			"entry_scene_id": "z",
			"scenes": {
				"a": {"id": "a", "name": "A", "type": "scene", "children": ["shared", "loop1"]},
				"z": {"id": "z", "name": "Z", "type": "scene", "children": ["shared"]}
			},
			"nodes": {
				"shared": {"type": "rectangle", "id": "shared", "name": "S"},
				"loop1": {"type": "container", "id": "loop1", "name": "L1", "children": ["loop2"]},
				"loop2": {"type": "container", "id": "loop2", "name": "L2", "children": ["loop1", "gone"]},
				"lonely": {"type": "ellipse", "id": "lonely", "name": "O"}
			}
		}
	}`
	res, err := NewParser(quiet()).Parse([]byte(data))
	require.NoError(t, err)
	doc := res.Document

	require.Len(t, doc.Scenes, 2)
	assert.Equal(t, "z", doc.Scenes[0].ID)
	assert.Equal(t, "a", doc.Scenes[1].ID)
	assert.Equal(t, "z", doc.EntryScene().ID)

	assert.Equal(t, []string{"shared"}, doc.Scenes[0].Nodes.IDs())
	assert.Equal(t, []string{"loop1", "loop2"}, doc.Scenes[1].Nodes.IDs())
	assert.Equal(t, []string{"lonely"}, doc.Detached.IDs())
	assert.Equal(t, 4, doc.NodeCount())
}

func TestParseSampleFile(t *testing.T) {
	data, err := document.NewSampleFile().Encode()
	require.NoError(t, err)

	res, err := NewParser(quiet()).Parse(data)
	require.NoError(t, err)

	entry := res.Document.EntryScene()
	require.NotNil(t, entry)
	assert.Equal(t, 6, entry.Nodes.Len())
	assert.Equal(t, 0, res.Document.Detached.Len())

	// The title's height is "auto".
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "height", res.Diagnostics[0].Field)
}
