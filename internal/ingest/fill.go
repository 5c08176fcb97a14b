package ingest

import (
	"fmt"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/paint"
)

// Color converts a file color. Alpha is truncated to 8 bits.
func Color(c document.RGBA) paint.Color {
	return paint.RGBA(c.R, c.G, c.B, c.A)
}

// ResolveFill turns an optional file fill into a paint.
//
// An absent fill, or a solid fill without a color, resolves to transparent
// black. Gradients keep their stops in order; a missing gradient transform is
// the identity. An unrecognized fill type resolves to transparent black and
// returns ErrUnknownFill so the caller can record or reject it.
func ResolveFill(f *document.Fill) (paint.Paint, error) {
	transparent := paint.Solid(paint.Transparent)
	if f == nil {
		return transparent, nil
	}

	switch f.Type {
	case document.FillSolid:
		if f.Color == nil {
			return transparent, nil
		}
		return paint.Solid(Color(*f.Color)), nil
	case document.FillLinearGradient:
		return paint.LinearGradientPaint{
			Transform: gradientTransform(f),
			Stops:     stops(f.Stops),
			Opacity:   1.0,
		}, nil
	case document.FillRadialGradient:
		return paint.RadialGradientPaint{
			Transform: gradientTransform(f),
			Stops:     stops(f.Stops),
			Opacity:   1.0,
		}, nil
	default:
		return transparent, fmt.Errorf("%q: %w", f.Type, ErrUnknownFill)
	}
}

func gradientTransform(f *document.Fill) geom.AffineTransform {
	if f.Transform == nil {
		return geom.Identity()
	}
	return geom.FromRows(*f.Transform)
}

func stops(in []document.GradientStop) []paint.GradientStop {
	out := make([]paint.GradientStop, len(in))
	for i, s := range in {
		out[i] = paint.GradientStop{Offset: s.Offset, Color: Color(s.Color)}
	}
	return out
}
