package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBA(t *testing.T) {
	assert.Equal(t, Color{255, 0, 0, 255}, RGBA(255, 0, 0, 1))
	assert.Equal(t, Color{1, 2, 3, 127}, RGBA(1, 2, 3, 0.5))
	assert.Equal(t, uint8(0), RGBA(0, 0, 0, -1).A)
	assert.Equal(t, uint8(255), RGBA(0, 0, 0, 4).A)
	assert.Equal(t, "#ff000080", Color{255, 0, 0, 128}.Hex())
}

func TestBlendModes(t *testing.T) {
	modes := BlendModes()
	assert.Len(t, modes, 17)

	seen := map[string]bool{}
	for _, m := range modes {
		name := m.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		parsed, ok := ParseBlendMode(name)
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}

	_, ok := ParseBlendMode("plus-lighter")
	assert.False(t, ok)
}

func TestPassThroughCompositesAsNormal(t *testing.T) {
	assert.NotEqual(t, BlendNormal, BlendPassThrough)
	assert.Equal(t, BlendNormal, BlendPassThrough.Composite())
	assert.Equal(t, BlendMultiply, BlendMultiply.Composite())
}

func TestIsVisible(t *testing.T) {
	assert.False(t, IsVisible(nil))
	assert.False(t, IsVisible(Solid(Transparent)))
	assert.True(t, IsVisible(Solid(Black)))
	assert.False(t, IsVisible(LinearGradientPaint{Opacity: 1}))
	assert.True(t, IsVisible(RadialGradientPaint{Opacity: 1, Stops: []GradientStop{{0, White}}}))
	assert.False(t, IsVisible(ImagePaint{Opacity: 1}))
}

func TestFilterEffectNames(t *testing.T) {
	effects := []FilterEffect{DropShadow{}, GaussianBlur{}, BackdropBlur{}}
	names := make([]string, 0, len(effects))
	for _, e := range effects {
		names = append(names, e.EffectName())
	}
	assert.Equal(t, []string{"drop-shadow", "gaussian-blur", "backdrop-blur"}, names)
}
