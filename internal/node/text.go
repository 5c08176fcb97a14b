package node

import (
	"errors"
	"fmt"
)

var ErrFontWeightRange = errors.New("font weight must be between 1 and 1000")

// FontWeight is a CSS/OpenType weight class in [1, 1000].
type FontWeight uint32

const DefaultFontWeight FontWeight = 400

// NewFontWeight validates v. Out-of-range values return ErrFontWeightRange.
func NewFontWeight(v int) (FontWeight, error) {
	if v < 1 || v > 1000 {
		return 0, fmt.Errorf("%d: %w", v, ErrFontWeightRange)
	}
	return FontWeight(v), nil
}

func (w FontWeight) Value() uint32 { return uint32(w) }

// TextStyle is the single style applied to a whole text span.
type TextStyle struct {
	TextDecoration TextDecoration
	FontFamily     string
	FontSize       float64
	FontWeight     FontWeight
	Italic         bool
	LetterSpacing  *float64
	LineHeight     *float64
	TextTransform  TextTransform
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

type TextAlignVertical int

const (
	TextAlignTop TextAlignVertical = iota
	TextAlignMiddle
	TextAlignBottom
)

type TextDecoration int

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
	TextDecorationOverline
	TextDecorationLineThrough
)

type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize
)

var (
	textAlignNames         = []string{"left", "right", "center", "justify"}
	textAlignVerticalNames = []string{"top", "center", "bottom"}
	textDecorationNames    = []string{"none", "underline", "overline", "line-through"}
	textTransformNames     = []string{"none", "uppercase", "lowercase", "capitalize"}
)

func (a TextAlign) String() string         { return enumName(textAlignNames, int(a)) }
func (a TextAlignVertical) String() string { return enumName(textAlignVerticalNames, int(a)) }
func (d TextDecoration) String() string    { return enumName(textDecorationNames, int(d)) }
func (t TextTransform) String() string     { return enumName(textTransformNames, int(t)) }

func (a TextAlign) MarshalText() ([]byte, error)         { return []byte(a.String()), nil }
func (a TextAlignVertical) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (d TextDecoration) MarshalText() ([]byte, error)    { return []byte(d.String()), nil }
func (t TextTransform) MarshalText() ([]byte, error)     { return []byte(t.String()), nil }

func (a *TextAlign) UnmarshalText(b []byte) error {
	i, err := parseEnum("text align", textAlignNames, string(b))
	*a = TextAlign(i)
	return err
}

func (a *TextAlignVertical) UnmarshalText(b []byte) error {
	i, err := parseEnum("vertical text align", textAlignVerticalNames, string(b))
	*a = TextAlignVertical(i)
	return err
}

func (d *TextDecoration) UnmarshalText(b []byte) error {
	i, err := parseEnum("text decoration", textDecorationNames, string(b))
	*d = TextDecoration(i)
	return err
}

func (t *TextTransform) UnmarshalText(b []byte) error {
	i, err := parseEnum("text transform", textTransformNames, string(b))
	*t = TextTransform(i)
	return err
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%d", i)
}

func parseEnum(what string, names []string, s string) (int, error) {
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}
