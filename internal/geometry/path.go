package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// kappa is the bezier handle length for a quarter circle of radius 1:
// 4 * (sqrt(2) - 1) / 3.
const kappa = 0.5522847498

// num formats a coordinate in the shortest form that round-trips.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PolygonPathData returns a closed path through the given points.
func PolygonPathData(points []geom.Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%s %s", cmd, num(p.X), num(p.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// RectPathData returns a rectangle at the local origin. Corner radii are given as
// top-left, top-right, bottom-right, bottom-left and are limited to half the
// shorter side when drawn.
func RectPathData(size geom.Size, tl, tr, br, bl float64) string {
	w, h := size.Width, size.Height
	limit := min(w, h) / 2
	clamp := func(r float64) float64 { return max(0, min(r, limit)) }
	tl, tr, br, bl = clamp(tl), clamp(tr), clamp(br), clamp(bl)

	if tl == 0 && tr == 0 && br == 0 && bl == 0 {
		return PolygonPathData([]geom.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%s 0", num(tl))
	fmt.Fprintf(&b, " L%s 0", num(w-tr))
	if tr > 0 {
		k := tr * kappa
		fmt.Fprintf(&b, " C%s 0,%s %s,%s %s", num(w-tr+k), num(w), num(tr-k), num(w), num(tr))
	}
	fmt.Fprintf(&b, " L%s %s", num(w), num(h-br))
	if br > 0 {
		k := br * kappa
		fmt.Fprintf(&b, " C%s %s,%s %s,%s %s", num(w), num(h-br+k), num(w-br+k), num(h), num(w-br), num(h))
	}
	fmt.Fprintf(&b, " L%s %s", num(bl), num(h))
	if bl > 0 {
		k := bl * kappa
		fmt.Fprintf(&b, " C%s %s,0 %s,0 %s", num(bl-k), num(h), num(h-bl+k), num(h-bl))
	}
	fmt.Fprintf(&b, " L0 %s", num(tl))
	if tl > 0 {
		k := tl * kappa
		fmt.Fprintf(&b, " C0 %s,%s 0,%s 0", num(tl-k), num(tl-k), num(tl))
	}
	b.WriteString(" Z")
	return b.String()
}

// EllipsePathData returns an ellipse inscribed in a box at the local origin,
// approximated by four cubic curves.
func EllipsePathData(size geom.Size) string {
	rx, ry := size.Width/2, size.Height/2
	cx, cy := rx, ry
	kx, ky := rx*kappa, ry*kappa

	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s", num(cx+rx), num(cy))
	fmt.Fprintf(&b, " C%s %s,%s %s,%s %s", num(cx+rx), num(cy+ky), num(cx+kx), num(cy+ry), num(cx), num(cy+ry))
	fmt.Fprintf(&b, " C%s %s,%s %s,%s %s", num(cx-kx), num(cy+ry), num(cx-rx), num(cy+ky), num(cx-rx), num(cy))
	fmt.Fprintf(&b, " C%s %s,%s %s,%s %s", num(cx-rx), num(cy-ky), num(cx-kx), num(cy-ry), num(cx), num(cy-ry))
	fmt.Fprintf(&b, " C%s %s,%s %s,%s %s", num(cx+kx), num(cy-ry), num(cx+rx), num(cy-ky), num(cx+rx), num(cy))
	b.WriteString(" Z")
	return b.String()
}

// LinePathData returns a horizontal line of the given length from the local origin.
func LinePathData(length float64) string {
	return fmt.Sprintf("M0 0 L%s 0", num(length))
}
