package geometry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

var ErrVertexIndex = errors.New("segment references a missing vertex")

// Segment is one curve of a vector network. A and B index the start and end
// vertices; TA and TB are tangent handles relative to those vertices.
type Segment struct {
	A  int
	B  int
	TA geom.Point
	TB geom.Point
}

// VectorNetwork is a curve graph: vertices plus segments between them.
type VectorNetwork struct {
	Vertices []geom.Point
	Segments []Segment
}

// Validate checks that every segment refers to existing vertices.
func (vn VectorNetwork) Validate() error {
	for i, s := range vn.Segments {
		if s.A < 0 || s.A >= len(vn.Vertices) || s.B < 0 || s.B >= len(vn.Vertices) {
			return fmt.Errorf("segment %d (%d -> %d) with %d vertices: %w", i, s.A, s.B, len(vn.Vertices), ErrVertexIndex)
		}
	}
	return nil
}

// PathData reconstructs the network as a single open contour: one move to the
// start of the first segment (or the origin when there are no segments), then one
// cubic per segment in listed order.
//
// Segments are assumed to be in draw order. A network with disconnected pieces is
// drawn with a curve bridging each gap; use PathDataSplit to start a new subpath
// instead. An empty vertex list yields "".
func (vn VectorNetwork) PathData() (string, error) {
	return vn.pathData(false)
}

// PathDataSplit is PathData, except that a segment which does not start where the
// previous one ended begins a new subpath with its own move command.
func (vn VectorNetwork) PathDataSplit() (string, error) {
	return vn.pathData(true)
}

func (vn VectorNetwork) pathData(split bool) (string, error) {
	if len(vn.Vertices) == 0 {
		return "", nil
	}
	if err := vn.Validate(); err != nil {
		return "", err
	}

	start := geom.Point{}
	if len(vn.Segments) > 0 {
		start = vn.Vertices[vn.Segments[0].A]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s", num(start.X), num(start.Y))

	prev := -1
	if len(vn.Segments) > 0 {
		prev = vn.Segments[0].A
	}
	for _, seg := range vn.Segments {
		a := vn.Vertices[seg.A]
		end := vn.Vertices[seg.B]
		if split && seg.A != prev {
			fmt.Fprintf(&b, " M%s %s", num(a.X), num(a.Y))
		}
		c1 := a.Add(seg.TA)
		c2 := end.Add(seg.TB)
		fmt.Fprintf(&b, " C%s %s,%s %s,%s %s",
			num(c1.X), num(c1.Y), num(c2.X), num(c2.Y), num(end.X), num(end.Y))
		prev = seg.B
	}

	return b.String(), nil
}
