// Package geometry derives concrete geometry from parametric shape descriptions:
// regular polygons, stars and vector networks. Everything here is a pure function
// of its inputs; nothing is cached on the nodes.
package geometry

import (
	"math"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// RegularPolygon returns the vertices of a regular polygon with n points fitted
// into a box of the given size, in increasing-angle order.
//
// Even point counts get a flat top edge; odd point counts put one vertex at the top.
// n below 3 yields nil.
func RegularPolygon(size geom.Size, n int) []geom.Point {
	if n < 3 {
		return nil
	}

	cx, cy := size.Width/2, size.Height/2
	r := min(size.Width, size.Height) / 2

	offset := -math.Pi / 2
	if n%2 == 0 {
		offset = math.Pi / float64(n)
	}

	points := make([]geom.Point, n)
	for i := range points {
		theta := float64(i)/float64(n)*2*math.Pi + offset
		points[i] = geom.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return points
}

// RegularStar returns the 2n vertices of a star with n spikes fitted into a box of
// the given size. Points alternate outer/inner starting at the top outer point.
// innerRatio scales the outer radius to get the inner one.
func RegularStar(size geom.Size, n int, innerRatio float64) []geom.Point {
	if n < 3 {
		return nil
	}

	cx, cy := size.Width/2, size.Height/2
	outer := min(cx, cy)
	inner := outer * innerRatio
	step := math.Pi / float64(n)
	start := -math.Pi / 2

	points := make([]geom.Point, 2*n)
	for i := range points {
		angle := start + float64(i)*step
		r := outer
		if i%2 == 1 {
			r = inner
		}
		points[i] = geom.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return points
}
