package drawable

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor reads a color attribute: named colors, the #rgb and
// #rrggbb hexadecimal forms, and rgb(r, g, b). "none" and the empty
// string yield a nil color, meaning the painting function is
// disabled (or inherited); this is not the same as black.
func parseColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "", "none":
		return nil, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		r, g, b, err := parseColorNum(v)
		if err != nil {
			return nil, err
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if cs := strings.TrimPrefix(v, "rgb("); cs != v {
		cs = strings.TrimSuffix(cs, ")")
		vals := splitOnCommaOrSpace(cs)
		if len(vals) != 3 {
			return nil, errParamMismatch
		}
		var cvals [3]uint8
		for i, val := range vals {
			n, err := strconv.ParseUint(strings.TrimSpace(val), 10, 8)
			if err != nil {
				return nil, err
			}
			cvals[i] = uint8(n)
		}
		return color.NRGBA{R: cvals[0], G: cvals[1], B: cvals[2], A: 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q", v)
}

// parseColorNum reads a hexadecimal color string, e.g. #FBD9BD
func parseColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	var t uint64
	if len(colorStr) != 6 {
		if len(colorStr) != 3 {
			return 0, 0, 0, fmt.Errorf("invalid hex color %q", colorStr)
		}
		// duplicate characters in case of a 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	}
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]}} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}
