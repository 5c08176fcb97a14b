package engine

import (
	"encoding/json"

	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op          string      `json:"op"`                    // Operation: "path", "text", "image", "error", "save", "restore", "clip"
	ObjectID    string      `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64   `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        string      `json:"path,omitempty"`        // SVG path data, local coordinates
	Fill        *PaintSpec  `json:"fill,omitempty"`        // nil when nothing is filled
	Stroke      *PaintSpec  `json:"stroke,omitempty"`      // nil when nothing is stroked
	StrokeWidth float64     `json:"strokeWidth,omitempty"` // Stroke width
	StrokeAlign string      `json:"strokeAlign,omitempty"`
	StrokeDash  []float64   `json:"strokeDash,omitempty"`
	Opacity     float64     `json:"opacity"` // Global alpha
	Blend       string      `json:"blend,omitempty"`
	Effect      *EffectSpec `json:"effect,omitempty"`
	Width       float64     `json:"width,omitempty"`
	Height      float64     `json:"height,omitempty"`
	Text        *TextSpec   `json:"text,omitempty"`
	ImageRef    string      `json:"imageRef,omitempty"` // Bitmap id for image lookup
	Message     string      `json:"message,omitempty"`  // Error placeholder text
}

// PaintSpec is the wire form of a paint.
type PaintSpec struct {
	Type      string     `json:"type"`
	Color     string     `json:"color,omitempty"` // #rrggbbaa
	Stops     []StopSpec `json:"stops,omitempty"`
	Transform []float64  `json:"transform,omitempty"`
	Ref       string     `json:"ref,omitempty"`
	Fit       string     `json:"fit,omitempty"`
	Opacity   float64    `json:"opacity"`
}

type StopSpec struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

type EffectSpec struct {
	Type   string  `json:"type"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Blur   float64 `json:"blur,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Color  string  `json:"color,omitempty"`
}

type TextSpec struct {
	Content       string   `json:"content"`
	FontFamily    string   `json:"fontFamily"`
	FontSize      float64  `json:"fontSize"`
	FontWeight    uint32   `json:"fontWeight"`
	Italic        bool     `json:"italic,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	Decoration    string   `json:"decoration"`
	Transform     string   `json:"textTransform"`
	Align         string   `json:"align"`
	AlignVertical string   `json:"alignVertical"`
}

// CompileDrawCommands generates a draw command buffer from a scene graph.
// Commands are in painter's order (back to front).
func CompileDrawCommands(sg *SceneGraph) []DrawCommand {
	if sg == nil || sg.Root == nil {
		return nil
	}

	var commands []DrawCommand
	for _, child := range sg.Root.Children {
		compileNode(child, &commands)
	}
	return commands
}

// compileNode recursively generates draw commands for a node and its children.
func compileNode(n *SceneNode, commands *[]DrawCommand) {
	if n == nil || !n.Visible {
		return
	}

	if n.drawable() {
		*commands = append(*commands, drawCommand(n))
	}

	if len(n.Children) == 0 {
		return
	}

	// Containers clip their children to their own outline
	hasClip := n.Clip && n.Path != ""
	if hasClip {
		*commands = append(*commands,
			DrawCommand{Op: "save"},
			DrawCommand{
				Op:        "clip",
				ObjectID:  n.ID,
				Transform: n.WorldTransform.ToSlice(),
				Path:      n.Path,
			},
		)
	}

	for _, child := range n.Children {
		compileNode(child, commands)
	}

	if hasClip {
		*commands = append(*commands, DrawCommand{Op: "restore"})
	}
}

func drawCommand(n *SceneNode) DrawCommand {
	cmd := DrawCommand{
		Op:        "path",
		ObjectID:  n.ID,
		Transform: n.WorldTransform.ToSlice(),
		Path:      n.Path,
		Fill:      paintSpec(n.Fill),
		Opacity:   n.Opacity,
		Effect:    effectSpec(n.Effect),
	}
	if n.Blend != paint.BlendNormal {
		cmd.Blend = n.Blend.String()
	}
	if stroke := paintSpec(n.Stroke); stroke != nil && n.StrokeWidth > 0 {
		cmd.Stroke = stroke
		cmd.StrokeWidth = n.StrokeWidth
		cmd.StrokeAlign = n.StrokeAlign.String()
		cmd.StrokeDash = n.StrokeDash
	}

	switch {
	case n.Error != "":
		cmd.Op = "error"
		cmd.Message = n.Error
		cmd.Width, cmd.Height = n.Size.Width, n.Size.Height
	case n.Text != nil:
		cmd.Op = "text"
		cmd.Path = ""
		cmd.Text = textSpec(n.Text)
		cmd.Width, cmd.Height = n.Size.Width, n.Size.Height
	case n.ImageRef != "":
		cmd.Op = "image"
		cmd.ImageRef = n.ImageRef
		cmd.Width, cmd.Height = n.Size.Width, n.Size.Height
	}
	return cmd
}

// paintSpec returns nil for paints that cannot produce coverage.
func paintSpec(p paint.Paint) *PaintSpec {
	if !paint.IsVisible(p) {
		return nil
	}
	switch v := p.(type) {
	case paint.SolidPaint:
		return &PaintSpec{Type: v.Kind(), Color: v.Color.Hex(), Opacity: v.Opacity}
	case paint.LinearGradientPaint:
		return &PaintSpec{Type: v.Kind(), Stops: stopSpecs(v.Stops), Transform: v.Transform.ToSlice(), Opacity: v.Opacity}
	case paint.RadialGradientPaint:
		return &PaintSpec{Type: v.Kind(), Stops: stopSpecs(v.Stops), Transform: v.Transform.ToSlice(), Opacity: v.Opacity}
	case paint.ImagePaint:
		return &PaintSpec{Type: v.Kind(), Ref: v.Ref, Fit: v.Fit.String(), Transform: v.Transform.ToSlice(), Opacity: v.Opacity}
	default:
		return nil
	}
}

func stopSpecs(stops []paint.GradientStop) []StopSpec {
	out := make([]StopSpec, len(stops))
	for i, s := range stops {
		out[i] = StopSpec{Offset: s.Offset, Color: s.Color.Hex()}
	}
	return out
}

func effectSpec(e paint.FilterEffect) *EffectSpec {
	switch v := e.(type) {
	case paint.DropShadow:
		return &EffectSpec{Type: v.EffectName(), DX: v.DX, DY: v.DY, Blur: v.Blur, Color: v.Color.Hex()}
	case paint.GaussianBlur:
		return &EffectSpec{Type: v.EffectName(), Radius: v.Radius}
	case paint.BackdropBlur:
		return &EffectSpec{Type: v.EffectName(), Radius: v.Radius}
	default:
		return nil
	}
}

func textSpec(t *TextRun) *TextSpec {
	return &TextSpec{
		Content:       t.Text,
		FontFamily:    t.Style.FontFamily,
		FontSize:      t.Style.FontSize,
		FontWeight:    t.Style.FontWeight.Value(),
		Italic:        t.Style.Italic,
		LineHeight:    t.Style.LineHeight,
		LetterSpacing: t.Style.LetterSpacing,
		Decoration:    t.Style.TextDecoration.String(),
		Transform:     t.Style.TextTransform.String(),
		Align:         t.Align.String(),
		AlignVertical: t.AlignVertical.String(),
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// HitTest performs a hit test on the scene graph at the given point.
// Returns the ID of the topmost (frontmost) object containing the point, or empty string.
// Error placeholders are never hit.
func HitTest(sg *SceneGraph, x, y float64) string {
	if sg == nil || sg.Root == nil {
		return ""
	}

	// Traverse in reverse order (front to back) to get topmost hit
	return hitTestNode(sg.Root, geom.Point{X: x, Y: y})
}

// hitTestNode recursively tests a node and its children.
// Children are tested first (they're on top in painter's order).
func hitTestNode(n *SceneNode, p geom.Point) string {
	if n == nil || !n.Visible {
		return ""
	}

	// A clipping container hides whatever of its children lies outside it
	if n.Clip && !n.ShapeBounds.Contains(p) {
		return ""
	}

	// Test children first (front to back = reverse order)
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := hitTestNode(n.Children[i], p); hit != "" {
			return hit
		}
	}

	if n.Kind == node.KindError || !n.drawable() {
		return ""
	}
	if !n.ShapeBounds.IsEmpty() && n.ShapeBounds.Contains(p) {
		return n.ID
	}
	return ""
}

// GetSelectionBounds returns the combined bounding box of the given object IDs.
func GetSelectionBounds(sg *SceneGraph, objectIDs []string) geom.Rect {
	if sg == nil || len(objectIDs) == 0 {
		return geom.Rect{}
	}

	var result geom.Rect
	for _, id := range objectIDs {
		n, ok := sg.NodesById[id]
		if !ok || n.Bounds.IsEmpty() {
			continue
		}
		result = result.Union(n.Bounds)
	}
	return result
}

// RectToJSON serializes a Rect to JSON.
func RectToJSON(r geom.Rect) string {
	data, _ := json.Marshal(r)
	return string(data)
}
