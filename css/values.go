package css

// ParseColor maps a color Token to an RGB triple, per §4.7: named
// idents (at least black, white, red, green, blue, grey) and
// #RRGGBB hash tokens. #RGB (3-digit) is unattested in the source and
// is left unsupported — see DESIGN.md open question (e). Unknown
// values fall back to fallback.
func ParseColor(tok Token, fallback RGB) RGB {
	switch tok.Type {
	case IdentToken:
		if rgb, ok := namedColors[tok.Value]; ok {
			return rgb
		}
		return fallback
	case HashToken:
		if rgb, ok := parseHexRGB(tok.Value); ok {
			return rgb
		}
		return fallback
	default:
		return fallback
	}
}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

var namedColors = map[string]RGB{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"blue":  {0, 0, 255},
	"grey":  {128, 128, 128},
	"gray":  {128, 128, 128},
}

func parseHexRGB(s string) (RGB, bool) {
	if len(s) != 6 {
		return RGB{}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		v[i] = hi<<4 | lo
	}
	return RGB{v[0], v[1], v[2]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
