package geometry

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

var ErrPathSyntax = errors.New("invalid path data")

// PathBounds returns the local bounding box of SVG path data. Curve control
// points are included, so the box may be larger than the drawn outline. Arcs
// contribute their end points only.
func PathBounds(d string) (geom.Rect, error) {
	sc := pathScanner{s: d}

	var (
		points     []geom.Point
		cur, start geom.Point
		cmd        byte
	)
	add := func(ps ...geom.Point) { points = append(points, ps...) }

	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		if c, ok := sc.letter(); ok {
			cmd = c
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return geom.Rect{}, fmt.Errorf("%w: expected command at offset %d", ErrPathSyntax, sc.i)
		}

		rel := cmd >= 'a' && cmd <= 'z'
		at := func(x, y float64) geom.Point {
			if rel {
				return geom.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return geom.Point{X: x, Y: y}
		}

		switch cmd {
		case 'Z', 'z':
			cur = start
			continue
		}

		args, err := sc.numbers(argCount(cmd))
		if err != nil {
			return geom.Rect{}, err
		}

		switch cmd {
		case 'M', 'm':
			cur = at(args[0], args[1])
			start = cur
			add(cur)
			// further coordinate pairs are implicit line-tos
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l', 'T', 't':
			cur = at(args[0], args[1])
			add(cur)
		case 'H':
			cur.X = args[0]
			add(cur)
		case 'h':
			cur.X += args[0]
			add(cur)
		case 'V':
			cur.Y = args[0]
			add(cur)
		case 'v':
			cur.Y += args[0]
			add(cur)
		case 'C', 'c':
			c1, c2, end := at(args[0], args[1]), at(args[2], args[3]), at(args[4], args[5])
			add(c1, c2, end)
			cur = end
		case 'S', 's', 'Q', 'q':
			c, end := at(args[0], args[1]), at(args[2], args[3])
			add(c, end)
			cur = end
		case 'A', 'a':
			cur = at(args[5], args[6])
			add(cur)
		default:
			return geom.Rect{}, fmt.Errorf("%w: unknown command %q", ErrPathSyntax, cmd)
		}
	}

	return geom.BoundsOf(points), nil
}

func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	default:
		return 0
	}
}

type pathScanner struct {
	s string
	i int
}

func (sc *pathScanner) done() bool { return sc.i >= len(sc.s) }

func (sc *pathScanner) skipSeparators() {
	for !sc.done() {
		switch sc.s[sc.i] {
		case ' ', '\t', '\n', '\r', ',':
			sc.i++
		default:
			return
		}
	}
}

func (sc *pathScanner) letter() (byte, bool) {
	c := sc.s[sc.i]
	if (c >= 'a' && c <= 'z' && c != 'e') || (c >= 'A' && c <= 'Z' && c != 'E') {
		sc.i++
		return c, true
	}
	return 0, false
}

func (sc *pathScanner) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for k := range out {
		sc.skipSeparators()
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// number reads one SVG number: sign, digits, fraction and exponent. "1.5.5" is
// read as 1.5 followed by .5, as SVG allows.
func (sc *pathScanner) number() (float64, error) {
	begin := sc.i
	if !sc.done() && (sc.s[sc.i] == '+' || sc.s[sc.i] == '-') {
		sc.i++
	}
	digits := sc.digits()
	if !sc.done() && sc.s[sc.i] == '.' {
		sc.i++
		digits += sc.digits()
	}
	if digits == 0 {
		sc.i = begin
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrPathSyntax, begin)
	}
	if !sc.done() && (sc.s[sc.i] == 'e' || sc.s[sc.i] == 'E') {
		mark := sc.i
		sc.i++
		if !sc.done() && (sc.s[sc.i] == '+' || sc.s[sc.i] == '-') {
			sc.i++
		}
		if sc.digits() == 0 {
			sc.i = mark
		}
	}

	v, err := strconv.ParseFloat(sc.s[begin:sc.i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPathSyntax, err)
	}
	return v, nil
}

func (sc *pathScanner) digits() int {
	n := 0
	for !sc.done() && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' {
		sc.i++
		n++
	}
	return n
}
