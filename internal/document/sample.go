package document

import (
	"encoding/json"

	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/typeid"
)

const SampleVersion = "0.0.1-beta.1+20250303"

// NewSampleFile builds a small document exercising every recognized node type.
func NewSampleFile() *CanvasFile {
	sceneID := typeid.NewSceneID()
	frameID := typeid.NewNodeID()
	rectID := typeid.NewNodeID()
	ellipseID := typeid.NewNodeID()
	titleID := typeid.NewNodeID()
	curveID := typeid.NewNodeID()
	iconID := typeid.NewNodeID()

	header := func(t NodeType, id, name string, left, top float64) NodeHeader {
		h := defaultHeader()
		h.Type, h.ID, h.Name, h.Left, h.Top = t, id, name, left, top
		return h
	}
	solid := func(r, g, b uint8) *Fill {
		return &Fill{Type: FillSolid, Color: &RGBA{R: r, G: g, B: b, A: 1}}
	}
	num := func(v float64) json.RawMessage {
		b, _ := json.Marshal(v)
		return b
	}

	frame := &ContainerNode{
		NodeHeader:   header(NodeTypeContainer, frameID, "Frame", 40, 40),
		Width:        num(800),
		Height:       num(600),
		Children:     []string{rectID, ellipseID, titleID, curveID, iconID},
		CornerRadius: num(12),
		Border:       &Border{BorderWidth: ptr(2.0), BorderColor: &RGBA{R: 22, G: 33, B: 62, A: 1}},
	}
	frame.Fill = solid(26, 26, 46)

	rect := &RectangleNode{
		NodeHeader:   header(NodeTypeRectangle, rectID, "Card", 160, 160),
		Width:        num(200),
		Height:       num(120),
		StrokeWidth:  ptr(2.0),
		CornerRadius: json.RawMessage(`[8, 8, 0, 0]`),
	}
	rect.Fill = &Fill{
		Type: FillLinearGradient,
		Stops: []GradientStop{
			{Offset: 0, Color: RGBA{R: 233, G: 69, B: 96, A: 1}},
			{Offset: 1, Color: RGBA{R: 15, G: 52, B: 96, A: 1}},
		},
	}

	ellipse := &EllipseNode{
		NodeHeader: header(NodeTypeEllipse, ellipseID, "Dot", 500, 200),
		Width:      num(120),
		Height:     num(120),
	}
	ellipse.Fill = solid(0, 210, 255)
	ellipse.Rotation = 15

	title := &TextNode{
		NodeHeader:        header(NodeTypeText, titleID, "Title", 160, 60),
		Width:             num(400),
		Height:            json.RawMessage(`"auto"`),
		Text:              "Hello, canvas",
		TextAlign:         node.TextAlignCenter,
		TextAlignVertical: node.TextAlignMiddle,
		FontSize:          ptr(32.0),
		FontWeight:        700,
	}
	title.Fill = solid(255, 255, 255)

	curve := &PathNode{
		NodeHeader: header(NodeTypePath, curveID, "Curve", 160, 360),
		Width:      num(300),
		Height:     num(100),
		VectorNetwork: &VectorNetwork{
			Vertices: []Vertex{{P: [2]float64{0, 100}}, {P: [2]float64{150, 0}}, {P: [2]float64{300, 100}}},
			Segments: []Segment{
				{A: 0, B: 1, TA: [2]float64{0, -60}, TB: [2]float64{-60, 0}},
				{A: 1, B: 2, TA: [2]float64{60, 0}, TB: [2]float64{0, -60}},
			},
		},
		StrokeWidth: ptr(4.0),
	}

	icon := &VectorNode{
		NodeHeader: header(NodeTypeVector, iconID, "Icon", 600, 400),
		Width:      num(24),
		Height:     num(24),
		Paths: []Path{
			{D: "M12 2 L22 22 L2 22 Z", FillRule: "nonzero", Fill: "fill"},
		},
	}
	icon.Fill = solid(255, 200, 87)

	return &CanvasFile{
		Version: SampleVersion,
		Document: Document{
			Bitmaps:    map[string]json.RawMessage{},
			Properties: map[string]json.RawMessage{},
			Nodes: map[string]Node{
				frameID:   frame,
				rectID:    rect,
				ellipseID: ellipse,
				titleID:   title,
				curveID:   curve,
				iconID:    icon,
			},
			Scenes: map[string]Scene{
				sceneID: {
					ID:              sceneID,
					Name:            "Scene 1",
					Type:            "scene",
					Children:        []string{frameID},
					BackgroundColor: &RGBA{R: 245, G: 245, B: 245, A: 1},
				},
			},
			EntrySceneID: &sceneID,
		},
	}
}

// Encode serializes the file back to JSON.
func (f *CanvasFile) Encode() ([]byte, error) {
	return json.Marshal(f)
}

func ptr[T any](v T) *T { return &v }
