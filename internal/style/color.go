package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts #RGB, #RRGGBB and #AARRGGBB (alpha first).
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("color %q must start with #", s)
	}

	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return nil, fmt.Errorf("color %q: %q is not a hex digit", s, r)
		}
	}

	alpha := uint8(0xff)
	hex := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("color %q: bad alpha: %w", s, err)
		}
		alpha = uint8(a)
		hex = "#" + s[3:]
	}
	if len(hex) != 4 && len(hex) != 7 {
		return nil, fmt.Errorf("color %q: want #RGB, #RRGGBB or #AARRGGBB", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// FormatColor renders c as #RRGGBB, or #AARRGGBB when it is not opaque.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}
