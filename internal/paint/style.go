package paint

import "fmt"

// StrokeAlign is where a stroke sits relative to the outline.
type StrokeAlign int

const (
	StrokeAlignInside StrokeAlign = iota
	StrokeAlignCenter
	StrokeAlignOutside
)

func (a StrokeAlign) String() string {
	switch a {
	case StrokeAlignInside:
		return "inside"
	case StrokeAlignCenter:
		return "center"
	case StrokeAlignOutside:
		return "outside"
	default:
		return fmt.Sprintf("StrokeAlign(%d)", int(a))
	}
}

// BlendMode selects how a node is composited onto what is beneath it.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity

	// BlendPassThrough means the group is not isolated: children composite as if
	// ungrouped. Consumers that do not model group isolation treat it as BlendNormal.
	BlendPassThrough
)

var blendModeNames = [...]string{
	BlendNormal:      "normal",
	BlendMultiply:    "multiply",
	BlendScreen:      "screen",
	BlendOverlay:     "overlay",
	BlendDarken:      "darken",
	BlendLighten:     "lighten",
	BlendColorDodge:  "color-dodge",
	BlendColorBurn:   "color-burn",
	BlendHardLight:   "hard-light",
	BlendSoftLight:   "soft-light",
	BlendDifference:  "difference",
	BlendExclusion:   "exclusion",
	BlendHue:         "hue",
	BlendSaturation:  "saturation",
	BlendColor:       "color",
	BlendLuminosity:  "luminosity",
	BlendPassThrough: "pass-through",
}

// BlendModes lists every blend mode in declaration order.
func BlendModes() []BlendMode {
	modes := make([]BlendMode, len(blendModeNames))
	for i := range modes {
		modes[i] = BlendMode(i)
	}
	return modes
}

func (m BlendMode) String() string {
	if m >= 0 && int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// Composite returns the mode a non-isolating compositor should use.
func (m BlendMode) Composite() BlendMode {
	if m == BlendPassThrough {
		return BlendNormal
	}
	return m
}

// ParseBlendMode maps a CSS mix-blend-mode keyword (or "pass-through") to a BlendMode.
func ParseBlendMode(s string) (BlendMode, bool) {
	for i, name := range blendModeNames {
		if name == s {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

// FilterEffect is the single post-process effect a node may carry:
// DropShadow, GaussianBlur or BackdropBlur. A nil FilterEffect means none.
type FilterEffect interface {
	EffectName() string
	isEffect()
}

// DropShadow mirrors <feDropShadow>: offset, blur radius and color.
type DropShadow struct {
	DX    float64
	DY    float64
	Blur  float64
	Color Color
}

// GaussianBlur mirrors <feGaussianBlur>.
type GaussianBlur struct {
	Radius float64
}

// BackdropBlur blurs what is behind the node, like CSS backdrop-filter: blur().
type BackdropBlur struct {
	Radius float64
}

func (DropShadow) EffectName() string   { return "drop-shadow" }
func (GaussianBlur) EffectName() string { return "gaussian-blur" }
func (BackdropBlur) EffectName() string { return "backdrop-blur" }

func (DropShadow) isEffect()   {}
func (GaussianBlur) isEffect() {}
func (BackdropBlur) isEffect() {}
