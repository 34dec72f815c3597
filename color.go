package meshviewer

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// NamedColors are the color names accepted by ParseColor.
var NamedColors = map[string]drawing.Color{
	"white":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":      {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"red":        {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	"green":      {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	"lightgreen": {R: 0x90, G: 0xee, B: 0x90, A: 0xff},
	"orange":     {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
	"gray":       {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"lightgray":  {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	"darkgray":   {R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff},
	"blue":       {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"yellow":     {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	"purple":     {R: 0x80, G: 0x00, B: 0x80, A: 0xff},
}

// ParseColor accepts a name from NamedColors or a hex triplet such as "#90ee90" or "fa0".
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := NamedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("unknown color %q", s)
	}
	if strings.Trim(hex, "0123456789abcdef") != "" {
		return drawing.Color{}, fmt.Errorf("parse color %q: not a hex triplet", s)
	}
	return drawing.ColorFromHex(hex), nil
}

// ParseColors parses every entry of names with ParseColor.
func ParseColors(names []string) ([]drawing.Color, error) {
	colors := make([]drawing.Color, 0, len(names))
	for _, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
