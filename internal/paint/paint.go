// Package paint defines fill and stroke sources and the compositing styles
// a node can carry: colors, gradients, image paints, stroke alignment,
// blend modes and the single filter effect slot.
package paint

import (
	"fmt"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

// RGBA builds a color from 8-bit channels and a unit alpha in [0, 1].
// Alpha is truncated, not rounded, to 8 bits.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: uint8(min(max(a, 0), 1) * 255)}
}

// Hex returns the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// GradientStop is one color stop of a gradient. Offset runs from 0 (start) to 1 (end).
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  Color   `json:"color"`
}

// BoxFit controls how an image paint is fitted into the node box.
type BoxFit int

const (
	BoxFitContain BoxFit = iota
	BoxFitCover
	BoxFitFill
	BoxFitNone
)

func (f BoxFit) String() string {
	switch f {
	case BoxFitContain:
		return "contain"
	case BoxFitCover:
		return "cover"
	case BoxFitFill:
		return "fill"
	case BoxFitNone:
		return "none"
	default:
		return fmt.Sprintf("BoxFit(%d)", int(f))
	}
}

// Paint is a fill or stroke source: one of SolidPaint, LinearGradientPaint,
// RadialGradientPaint or ImagePaint.
type Paint interface {
	// Kind names the variant ("solid", "linear_gradient", "radial_gradient", "image").
	Kind() string
	isPaint()
}

type SolidPaint struct {
	Color   Color
	Opacity float64
}

type LinearGradientPaint struct {
	Transform geom.AffineTransform
	Stops     []GradientStop
	Opacity   float64
}

type RadialGradientPaint struct {
	Transform geom.AffineTransform
	Stops     []GradientStop
	Opacity   float64
}

// ImagePaint fills with an external bitmap referenced by Ref.
type ImagePaint struct {
	Transform geom.AffineTransform
	Ref       string
	Fit       BoxFit
	Opacity   float64
}

func (SolidPaint) Kind() string          { return "solid" }
func (LinearGradientPaint) Kind() string { return "linear_gradient" }
func (RadialGradientPaint) Kind() string { return "radial_gradient" }
func (ImagePaint) Kind() string          { return "image" }

func (SolidPaint) isPaint()          {}
func (LinearGradientPaint) isPaint() {}
func (RadialGradientPaint) isPaint() {}
func (ImagePaint) isPaint()          {}

// Solid returns an opaque solid paint of the given color.
func Solid(c Color) SolidPaint {
	return SolidPaint{Color: c, Opacity: 1.0}
}

// IsVisible reports whether painting with p can produce any coverage.
// A nil paint means "no paint".
func IsVisible(p Paint) bool {
	switch v := p.(type) {
	case nil:
		return false
	case SolidPaint:
		return v.Opacity > 0 && v.Color.A > 0
	case LinearGradientPaint:
		return v.Opacity > 0 && len(v.Stops) > 0
	case RadialGradientPaint:
		return v.Opacity > 0 && len(v.Stops) > 0
	case ImagePaint:
		return v.Opacity > 0 && v.Ref != ""
	default:
		return false
	}
}
