package render

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

var ErrBadColor = errors.New("unrecognized color")

// namedColors covers the matplotlib-style names the CLI accepts.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
}

// ParseColor accepts a known color name or a "#rrggbb" hex triplet.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	if len(name) == 7 && name[0] == '#' {
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(name[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return color.RGBA{}, ErrBadColor
			}
			rgb[i] = uint8(v)
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	}

	return color.RGBA{}, ErrBadColor
}
