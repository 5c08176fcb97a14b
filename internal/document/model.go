// Package document is the external canvas file format: a loosely typed schema
// that mirrors the JSON closely, plus a structural decoder for it.
//
// Values whose shape varies between producers (sizes, corner radii) are kept
// as raw JSON here and interpreted during ingestion.
package document

import (
	"encoding/json"

	"github.com/inamate/inamate/canvas-go/internal/node"
)

type CanvasFile struct {
	Version  string   `json:"version"`
	Document Document `json:"document"`
}

type Document struct {
	Bitmaps      map[string]json.RawMessage `json:"bitmaps"`
	Properties   map[string]json.RawMessage `json:"properties"`
	Nodes        map[string]Node            `json:"nodes"`
	Scenes       map[string]Scene           `json:"scenes"`
	EntrySceneID *string                    `json:"entry_scene_id,omitempty"`
}

type Scene struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Children        []string          `json:"children"`
	BackgroundColor *RGBA             `json:"backgroundColor,omitempty"`
	Guides          []json.RawMessage `json:"guides,omitempty"`
	Constraints     map[string]string `json:"constraints,omitempty"`
}

type NodeType string

const (
	NodeTypeContainer NodeType = "container"
	NodeTypeText      NodeType = "text"
	NodeTypeVector    NodeType = "vector"
	NodeTypePath      NodeType = "path"
	NodeTypeEllipse   NodeType = "ellipse"
	NodeTypeRectangle NodeType = "rectangle"
)

// Node is one entry of Document.Nodes: *ContainerNode, *TextNode, *VectorNode,
// *PathNode, *EllipseNode, *RectangleNode or *UnknownNode.
type Node interface {
	Header() *NodeHeader
}

// NodeHeader holds the fields every recognized node kind carries.
type NodeHeader struct {
	Type     NodeType `json:"type"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Active   bool     `json:"active"`
	Locked   bool     `json:"locked"`
	Opacity  float64  `json:"opacity"`
	Rotation float64  `json:"rotation"`
	ZIndex   int      `json:"zIndex"`
	Position *string  `json:"position,omitempty"`
	Left     float64  `json:"left"`
	Top      float64  `json:"top"`
	Fill     *Fill    `json:"fill,omitempty"`
}

func (h *NodeHeader) Header() *NodeHeader { return h }

// defaultHeader is applied before decoding so absent fields keep these values.
func defaultHeader() NodeHeader {
	return NodeHeader{
		Active:   true,
		Locked:   false,
		Opacity:  1.0,
		Rotation: 0,
		ZIndex:   0,
	}
}

type ContainerNode struct {
	NodeHeader
	Width              json.RawMessage            `json:"width,omitempty"`
	Height             json.RawMessage            `json:"height,omitempty"`
	Children           []string                   `json:"children"`
	Expanded           *bool                      `json:"expanded,omitempty"`
	Border             *Border                    `json:"border,omitempty"`
	Style              map[string]json.RawMessage `json:"style,omitempty"`
	CornerRadius       json.RawMessage            `json:"cornerRadius,omitempty"`
	Padding            json.RawMessage            `json:"padding,omitempty"`
	Layout             *string                    `json:"layout,omitempty"`
	Direction          *string                    `json:"direction,omitempty"`
	MainAxisAlignment  *string                    `json:"mainAxisAlignment,omitempty"`
	CrossAxisAlignment *string                    `json:"crossAxisAlignment,omitempty"`
	MainAxisGap        *float64                   `json:"mainAxisGap,omitempty"`
	CrossAxisGap       *float64                   `json:"crossAxisGap,omitempty"`
}

type TextNode struct {
	NodeHeader
	Right             *float64                   `json:"right,omitempty"`
	Bottom            *float64                   `json:"bottom,omitempty"`
	Width             json.RawMessage            `json:"width,omitempty"`
	Height            json.RawMessage            `json:"height,omitempty"`
	Style             map[string]json.RawMessage `json:"style,omitempty"`
	Text              string                     `json:"text"`
	TextAlign         node.TextAlign             `json:"textAlign"`
	TextAlignVertical node.TextAlignVertical     `json:"textAlignVertical"`
	TextDecoration    node.TextDecoration        `json:"textDecoration"`
	LineHeight        *float64                   `json:"lineHeight,omitempty"`
	LetterSpacing     *float64                   `json:"letterSpacing,omitempty"`
	FontSize          *float64                   `json:"fontSize,omitempty"`
	FontFamily        *string                    `json:"fontFamily,omitempty"`
	FontWeight        int                        `json:"fontWeight"`
}

// VectorNode carries ready-made SVG path strings.
type VectorNode struct {
	NodeHeader
	Width  json.RawMessage `json:"width,omitempty"`
	Height json.RawMessage `json:"height,omitempty"`
	Paths  []Path          `json:"paths,omitempty"`
}

// PathNode describes its outline as a vector network.
type PathNode struct {
	NodeHeader
	Width         json.RawMessage `json:"width,omitempty"`
	Height        json.RawMessage `json:"height,omitempty"`
	VectorNetwork *VectorNetwork  `json:"vectorNetwork,omitempty"`
	StrokeWidth   *float64        `json:"strokeWidth,omitempty"`
}

type EllipseNode struct {
	NodeHeader
	Width       json.RawMessage   `json:"width,omitempty"`
	Height      json.RawMessage   `json:"height,omitempty"`
	StrokeWidth *float64          `json:"strokeWidth,omitempty"`
	StrokeCap   *string           `json:"strokeCap,omitempty"`
	Effects     []json.RawMessage `json:"effects,omitempty"`
}

type RectangleNode struct {
	NodeHeader
	Width        json.RawMessage   `json:"width,omitempty"`
	Height       json.RawMessage   `json:"height,omitempty"`
	StrokeWidth  *float64          `json:"strokeWidth,omitempty"`
	StrokeCap    *string           `json:"strokeCap,omitempty"`
	Effects      []json.RawMessage `json:"effects,omitempty"`
	CornerRadius json.RawMessage   `json:"cornerRadius,omitempty"`
}

// UnknownNode is a node whose type tag is not recognized. Only the tag is
// required; ID and Name are picked up when they happen to be strings.
type UnknownNode struct {
	NodeHeader
	Raw json.RawMessage `json:"-"`
}

func (n *UnknownNode) MarshalJSON() ([]byte, error) {
	if len(n.Raw) > 0 {
		return n.Raw, nil
	}
	return json.Marshal(n.NodeHeader)
}

// Fill is a tagged paint: "solid", "linear_gradient" or "radial_gradient".
type Fill struct {
	Type  string         `json:"type"`
	Color *RGBA          `json:"color,omitempty"`
	ID    *string        `json:"id,omitempty"`
	Stops []GradientStop `json:"stops,omitempty"`
	// Transform rows are [[a, c, tx], [b, d, ty]].
	Transform *[2][3]float64 `json:"transform,omitempty"`
}

const (
	FillSolid          = "solid"
	FillLinearGradient = "linear_gradient"
	FillRadialGradient = "radial_gradient"
)

type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  RGBA    `json:"color"`
}

// RGBA is a color with 8-bit channels and a unit alpha.
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

type Border struct {
	BorderWidth *float64 `json:"borderWidth,omitempty"`
	BorderColor *RGBA    `json:"borderColor,omitempty"`
	BorderStyle *string  `json:"borderStyle,omitempty"`
}

type Path struct {
	D        string `json:"d"`
	FillRule string `json:"fillRule"`
	Fill     string `json:"fill"`
}

type VectorNetwork struct {
	Vertices []Vertex  `json:"vertices"`
	Segments []Segment `json:"segments"`
}

type Vertex struct {
	P [2]float64 `json:"p"`
}

// Segment joins vertices A and B. TA and TB are tangents relative to them.
type Segment struct {
	A  int        `json:"a"`
	B  int        `json:"b"`
	TA [2]float64 `json:"ta"`
	TB [2]float64 `json:"tb"`
}
