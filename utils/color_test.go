package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	r, g, b, err := HexToRGB("#F59E0B")
	require.NoError(t, err)
	assert.Equal(t, 245, r)
	assert.Equal(t, 158, g)
	assert.Equal(t, 11, b)

	// Leading '#' is optional.
	r, g, b, err = HexToRGB("1E3A8A")
	require.NoError(t, err)
	assert.Equal(t, 30, r)
	assert.Equal(t, 58, g)
	assert.Equal(t, 138, b)
}

func TestHexToRGBInvalid(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GGGGGG", "not-a-color", "#F59E0B0"} {
		_, _, _, err := HexToRGB(hex)
		assert.Error(t, err, "hex %q", hex)
	}
}

func TestHexToHSLKnownColor(t *testing.T) {
	hsl, err := HexToHSL("#F59E0B")
	require.NoError(t, err)
	assert.InDelta(t, 37.7, hsl.H, 0.1)
	assert.InDelta(t, 92.1, hsl.S, 0.1)
	assert.InDelta(t, 50.2, hsl.L, 0.1)
	assert.Equal(t, "38 92% 50%", hsl.String())
}

func TestHexToHSLRanges(t *testing.T) {
	for _, hex := range []string{
		"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF",
		"#F59E0B", "#1E3A8A", "#808080", "#ABCDEF", "#010203",
	} {
		hsl, err := HexToHSL(hex)
		require.NoError(t, err, "hex %q", hex)
		assert.GreaterOrEqual(t, hsl.H, 0.0, "hue of %q", hex)
		assert.Less(t, hsl.H, 360.0, "hue of %q", hex)
		assert.GreaterOrEqual(t, hsl.S, 0.0, "saturation of %q", hex)
		assert.LessOrEqual(t, hsl.S, 100.0, "saturation of %q", hex)
		assert.GreaterOrEqual(t, hsl.L, 0.0, "lightness of %q", hex)
		assert.LessOrEqual(t, hsl.L, 100.0, "lightness of %q", hex)
	}
}

func TestHexToHSLAchromatic(t *testing.T) {
	hsl, err := HexToHSL("#808080")
	require.NoError(t, err)
	assert.Zero(t, hsl.H)
	assert.Zero(t, hsl.S)
	assert.InDelta(t, 50.2, hsl.L, 0.1)
}

func TestGradientString(t *testing.T) {
	assert.Equal(t,
		"linear-gradient(to right, #F59E0B, #1E3A8A)",
		GradientString("#F59E0B", "#1E3A8A", "to right"))

	// Empty direction falls back.
	assert.Equal(t,
		"linear-gradient(to right, #F59E0B, #1E3A8A)",
		GradientString("#F59E0B", "#1E3A8A", ""))
}

func TestThemeCSS(t *testing.T) {
	css := ThemeCSS("#F59E0B", "#1E3A8A", "to right", "#F59E0B", "#1E3A8A")

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}\n"))
	assert.Contains(t, css, "--color-primary: #F59E0B;")
	assert.Contains(t, css, "--color-secondary: #1E3A8A;")
	assert.Contains(t, css, "--brand-gradient: linear-gradient(to right, #F59E0B, #1E3A8A);")
	assert.Contains(t, css, "--primary: 38 92% 50%;")
	assert.Contains(t, css, "--accent: 38 92% 50%;")
}

func TestThemeCSSInvalidColorFallsBack(t *testing.T) {
	css := ThemeCSS("nonsense", "#1E3A8A", "to right", "#F59E0B", "#1E3A8A")
	assert.Contains(t, css, "--color-primary: #F59E0B;")
	assert.Contains(t, css, "--color-secondary: #1E3A8A;")
}
