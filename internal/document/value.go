package document

import (
	"encoding/json"
	"errors"

	"github.com/inamate/inamate/canvas-go/internal/node"
)

var (
	ErrCornerRadiusShape = errors.New("corner radius must be a number or an array of four numbers")
	ErrNonNumericLength  = errors.New("length is not a number")
)

// DecodeCornerRadius interprets a cornerRadius value.
//
//	absent or null   -> nil, nil
//	10               -> all four corners 10
//	[tl, tr, bl, br] -> per corner; non-numeric entries count as 0
//	anything else    -> nil, ErrCornerRadiusShape
//
// The caller decides whether ErrCornerRadiusShape is fatal.
func DecodeCornerRadius(raw json.RawMessage) (*node.RectangularCornerRadius, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch kindOf(raw) {
	case "null":
		return nil, nil
	case "number":
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, ErrCornerRadiusShape
		}
		r := node.AllCorners(v)
		return &r, nil
	case "array":
		var values []json.RawMessage
		if err := json.Unmarshal(raw, &values); err != nil || len(values) != 4 {
			return nil, ErrCornerRadiusShape
		}
		c := make([]float64, 4)
		for i, v := range values {
			_ = json.Unmarshal(v, &c[i])
		}
		return &node.RectangularCornerRadius{TL: c[0], TR: c[1], BL: c[2], BR: c[3]}, nil
	default:
		return nil, ErrCornerRadiusShape
	}
}

// DecodeLength interprets a width or height. Only literal numbers are
// understood; sizing keywords, objects and null yield 0 and
// ErrNonNumericLength. An absent value is 0 without error.
func DecodeLength(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	if kindOf(raw) != "number" {
		return 0, ErrNonNumericLength
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, ErrNonNumericLength
	}
	return v, nil
}
