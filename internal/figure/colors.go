package figure

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors covers the CSS names used by the category table and markers.
var namedColors = map[string]string{
	"red":    "ff0000",
	"orange": "ffa500",
	"yellow": "ffff00",
	"green":  "008000",
	"purple": "800080",
	"blue":   "0000ff",
	"black":  "000000",
	"white":  "ffffff",
}

// ParseColor accepts a CSS color name or a #rgb / #rrggbb hex string. Unknown
// values render black.
func ParseColor(css string) drawing.Color {
	v := strings.ToLower(strings.TrimSpace(css))
	if hex, ok := namedColors[v]; ok {
		return drawing.ColorFromHex(hex)
	}

	v = strings.TrimPrefix(v, "#")
	if !isHex(v) || (len(v) != 3 && len(v) != 6) {
		return drawing.ColorBlack
	}
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	return drawing.ColorFromHex(v)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
