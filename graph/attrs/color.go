package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors is a representative subset of the W3C/X11 palette, lower-case
// keyed.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"purple":  "#800080",
	"teal":    "#008080",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"none":    "transparent",
	"invisible": "transparent",
}

var (
	reRGB = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	reHSV = regexp.MustCompile(`(?i)^hsv\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)\s*\)$`)
	reHSL = regexp.MustCompile(`(?i)^hsl\(\s*([\d.]+)\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*\)$`)
)

// ValidateColor normalises raw into "#rrggbb" or "#rrggbbaa", or the literal
// "transparent" for none/invisible. Accepted forms (spec §6.1): named
// colour, #rrggbb, #rgb, rgb(...), hsv(...), hsl(...).
func ValidateColor(raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	if hex, ok := namedColors[lower]; ok {
		if hex == "transparent" {
			return Value{Kind: KindColor, Str: "transparent"}, nil
		}
		return Value{Kind: KindColor, Str: hex}, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a valid hex color", ErrInvalidValue, raw)
		}
		return Value{Kind: KindColor, Str: c.Hex()}, nil
	}

	if m := reRGB.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return Value{}, fmt.Errorf("%w: %q has an out-of-range channel", ErrInvalidValue, raw)
		}
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		return Value{Kind: KindColor, Str: c.Hex()}, nil
	}

	if m := reHSV.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sv, _ := strconv.ParseFloat(m[2], 64)
		v, _ := strconv.ParseFloat(m[3], 64)
		c := colorful.Hsv(math.Mod(h, 360), clamp01(sv), clamp01(v))
		return Value{Kind: KindColor, Str: c.Hex()}, nil
	}

	if m := reHSL.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sl, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		c := colorful.Hsl(math.Mod(h, 360), clamp01(sl/100), clamp01(l/100))
		return Value{Kind: KindColor, Str: c.Hex()}, nil
	}

	return Value{}, fmt.Errorf("%w: %q is not a valid color", ErrInvalidValue, raw)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func expandShortHex(s string) string {
	if len(s) == 4 { // "#rgb"
		return fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	return s
}
