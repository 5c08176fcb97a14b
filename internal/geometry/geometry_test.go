package geometry

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

const tolerance = 1e-9

func TestRegularPolygon(t *testing.T) {
	sizes := []geom.Size{{Width: 100, Height: 100}, {Width: 200, Height: 80}, {Width: 30, Height: 90}}

	for _, size := range sizes {
		for n := 3; n <= 12; n++ {
			points := RegularPolygon(size, n)
			require.Len(t, points, n)

			center := geom.Point{X: size.Width / 2, Y: size.Height / 2}
			r := min(size.Width, size.Height) / 2
			for _, p := range points {
				assert.InDelta(t, r, p.Distance(center), tolerance)
			}
		}
	}

	t.Run("odd count puts a vertex at the top", func(t *testing.T) {
		points := RegularPolygon(geom.Size{Width: 100, Height: 100}, 3)
		assert.InDelta(t, 50, points[0].X, tolerance)
		assert.InDelta(t, 0, points[0].Y, tolerance)
	})

	t.Run("even count has a flat top edge", func(t *testing.T) {
		points := RegularPolygon(geom.Size{Width: 100, Height: 100}, 4)
		minY := points[0].Y
		for _, p := range points {
			minY = min(minY, p.Y)
		}
		top := 0
		for _, p := range points {
			if math.Abs(p.Y-minY) < tolerance {
				top++
			}
		}
		assert.Equal(t, 2, top)
	})

	t.Run("fewer than three points", func(t *testing.T) {
		assert.Nil(t, RegularPolygon(geom.Size{Width: 10, Height: 10}, 2))
	})
}

func TestRegularStar(t *testing.T) {
	size := geom.Size{Width: 120, Height: 60}
	center := geom.Point{X: 60, Y: 30}
	outer := 30.0

	for n := 3; n <= 9; n++ {
		for _, ratio := range []float64{0.1, 0.4, 0.75} {
			points := RegularStar(size, n, ratio)
			require.Len(t, points, 2*n)

			for i, p := range points {
				want := outer
				if i%2 == 1 {
					want = outer * ratio
				}
				assert.InDelta(t, want, p.Distance(center), tolerance, "n=%d i=%d", n, i)
			}
		}
	}

	points := RegularStar(size, 5, 0.4)
	assert.InDelta(t, 60, points[0].X, tolerance)
	assert.InDelta(t, 0, points[0].Y, tolerance)
}

func TestVectorNetworkPathData(t *testing.T) {
	t.Run("connected chain", func(t *testing.T) {
		vn := VectorNetwork{
			Vertices: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
			Segments: []Segment{
				{A: 0, B: 1, TA: geom.Point{X: 10, Y: 5}, TB: geom.Point{X: -10, Y: 5}},
				{A: 1, B: 2, TA: geom.Point{X: 0, Y: 20}, TB: geom.Point{X: 0, Y: -20}},
			},
		}

		d, err := vn.PathData()
		require.NoError(t, err)
		assert.Equal(t, "M0 0 C10 5,90 5,100 0 C100 20,100 80,100 100", d)
		assert.Equal(t, 1, strings.Count(d, "M"))
		assert.Equal(t, 2, strings.Count(d, "C"))

		split, err := vn.PathDataSplit()
		require.NoError(t, err)
		assert.Equal(t, d, split)
	})

	t.Run("empty vertices", func(t *testing.T) {
		d, err := VectorNetwork{}.PathData()
		require.NoError(t, err)
		assert.Empty(t, d)
	})

	t.Run("vertices without segments start at the origin", func(t *testing.T) {
		d, err := VectorNetwork{Vertices: []geom.Point{{X: 5, Y: 5}}}.PathData()
		require.NoError(t, err)
		assert.Equal(t, "M0 0", d)
	})

	t.Run("out of range vertex index", func(t *testing.T) {
		vn := VectorNetwork{
			Vertices: []geom.Point{{X: 0, Y: 0}},
			Segments: []Segment{{A: 0, B: 3}},
		}
		_, err := vn.PathData()
		assert.ErrorIs(t, err, ErrVertexIndex)
	})
}

// Disconnected pieces are bridged by a curve rather than a new move command.
// PathData keeps that behaviour; PathDataSplit starts a new subpath instead.
func TestVectorNetworkDisconnectedComponentsAreBridged(t *testing.T) {
	vn := VectorNetwork{
		Vertices: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 50, Y: 50}, {X: 60, Y: 50}},
		Segments: []Segment{
			{A: 0, B: 1},
			{A: 2, B: 3},
		},
	}

	d, err := vn.PathData()
	require.NoError(t, err)
	assert.Equal(t, "M0 0 C0 0,10 0,10 0 C50 50,60 50,60 50", d)

	split, err := vn.PathDataSplit()
	require.NoError(t, err)
	assert.Equal(t, "M0 0 C0 0,10 0,10 0 M50 50 C50 50,60 50,60 50", split)
}

func TestShapePathData(t *testing.T) {
	assert.Equal(t, "M0 0 L10 0 L10 20 L0 20 Z", RectPathData(geom.Size{Width: 10, Height: 20}, 0, 0, 0, 0))
	assert.Equal(t, "M0 0 L25 0", LinePathData(25))
	assert.Equal(t, "", PolygonPathData(nil))
	assert.Equal(t, "M1 2 L3 4 L5 6 Z", PolygonPathData([]geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}))

	rounded := RectPathData(geom.Size{Width: 100, Height: 50}, 10, 10, 10, 10)
	assert.True(t, strings.HasPrefix(rounded, "M10 0 L90 0 C"))
	assert.Equal(t, 4, strings.Count(rounded, "C"))

	bounds, err := PathBounds(rounded)
	require.NoError(t, err)
	assert.InDelta(t, 100, bounds.Width, tolerance)
	assert.InDelta(t, 50, bounds.Height, tolerance)

	ellipse, err := PathBounds(EllipsePathData(geom.Size{Width: 40, Height: 20}))
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 40, Height: 20}, ellipse)
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want geom.Rect
	}{
		{"empty", "", geom.Rect{}},
		{"absolute lines", "M10 10 L30 10 L30 40 Z", geom.Rect{X: 10, Y: 10, Width: 20, Height: 30}},
		{"relative lines", "m10 10 l20 0 l0 30 z", geom.Rect{X: 10, Y: 10, Width: 20, Height: 30}},
		{"implicit line-to after move", "M0 0 10 10 20 0", geom.Rect{Width: 20, Height: 10}},
		{"horizontal and vertical", "M5 5 H15 V25 h-10 v-5", geom.Rect{X: 5, Y: 5, Width: 10, Height: 20}},
		{"cubic control points", "M0 0 C0 -10,10 -10,10 0", geom.Rect{Y: -10, Width: 10, Height: 10}},
		{"quadratic", "M0 0 Q5 10 10 0", geom.Rect{Width: 10, Height: 10}},
		{"compact numbers", "M1.5.5L-2-2", geom.Rect{X: -2, Y: -2, Width: 3.5, Height: 2.5}},
		{"exponent", "M0 0 L1e2 2E1", geom.Rect{Width: 100, Height: 20}},
		{"arc end point", "M0 0 A5 5 0 0 1 10 10", geom.Rect{Width: 10, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathBounds(tt.d)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, tolerance)
			assert.InDelta(t, tt.want.Y, got.Y, tolerance)
			assert.InDelta(t, tt.want.Width, got.Width, tolerance)
			assert.InDelta(t, tt.want.Height, got.Height, tolerance)
		})
	}

	t.Run("syntax errors", func(t *testing.T) {
		for _, d := range []string{"10 10", "M10", "M0 0 Z 5 5", "M0 0 X1 1"} {
			_, err := PathBounds(d)
			assert.ErrorIs(t, err, ErrPathSyntax, d)
		}
	})
}
