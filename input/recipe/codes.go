package recipe

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/fontpack/core/bmfont"
)

// codes lists the character codes selected by a group, in the order range,
// chars, codes. A code selected twice within a group is an error.
func (grp Group) codes() ([]uint16, error) {
	var codes []uint16
	add := func(c int) error {
		if c < 0 || c >= bmfont.MaxChars {
			return fmt.Errorf("char code %d outside of the 16-bit code space", c)
		}
		codes = append(codes, uint16(c))
		return nil
	}
	if grp.Range != "" {
		from, to, err := ParseRange(grp.Range)
		if err != nil {
			return nil, err
		}
		for c := from; c <= to; c++ {
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range grp.Chars {
		if err := add(int(r)); err != nil {
			return nil, err
		}
	}
	for _, c := range grp.Codes {
		if err := add(c); err != nil {
			return nil, err
		}
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("group selects no characters")
	}
	return codes, nil
}

// ParseRange parses "from-to" with decimal or 0x-prefixed hex bounds,
// inclusive on both ends.
func ParseRange(s string) (from, to int, err error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		hi = lo
	}
	if from, err = parseCode(lo); err != nil {
		return 0, 0, err
	}
	if to, err = parseCode(hi); err != nil {
		return 0, 0, err
	}
	if from > to {
		return 0, 0, fmt.Errorf("empty char range %q", s)
	}
	return from, to, nil
}

func parseCode(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad char code %q", s)
	}
	return int(n), nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" (the '#' is optional).
func ParseColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", hex)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
