package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL holds a color as hue (degrees, [0,360)), saturation and lightness
// (percent, [0,100]).
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToRGB parses a 6-digit hex color, with or without the leading '#'.
func HexToRGB(hex string) (int, int, int, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}

// HexToHSL converts a hex color using the standard max/min channel algorithm.
func HexToHSL(hex string) (HSL, error) {
	ri, gi, bi, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}

	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return HSL{H: math.Mod(h, 360), S: s * 100, L: l * 100}, nil
}

// String renders the space-separated triple used by CSS theme variables,
// e.g. "38 96% 50%".
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", int(math.Round(c.H))%360, int(math.Round(c.S)), int(math.Round(c.L)))
}

// GradientString builds the brand linear-gradient declaration.
func GradientString(primary, secondary, direction string) string {
	if direction == "" {
		direction = "to right"
	}
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", direction, primary, secondary)
}

// ThemeCSS renders the :root block of custom properties the storefront applies
// on every load: raw hex values, the gradient, and HSL triples for the UI
// component library. Invalid colors fall back to the provided defaults.
func ThemeCSS(primary, secondary, direction, defaultPrimary, defaultSecondary string) string {
	if _, err := HexToHSL(primary); err != nil {
		primary = defaultPrimary
	}
	if _, err := HexToHSL(secondary); err != nil {
		secondary = defaultSecondary
	}

	primaryHSL, _ := HexToHSL(primary)
	secondaryHSL, _ := HexToHSL(secondary)

	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", secondary)
	fmt.Fprintf(&b, "  --brand-gradient: %s;\n", GradientString(primary, secondary, direction))
	fmt.Fprintf(&b, "  --primary: %s;\n", primaryHSL)
	fmt.Fprintf(&b, "  --secondary: %s;\n", secondaryHSL)
	fmt.Fprintf(&b, "  --accent: %s;\n", primaryHSL)
	b.WriteString("}\n")
	return b.String()
}
