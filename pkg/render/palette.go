package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Colors used across the figures.
var (
	Blue       = mustHex("#0072B2")
	Vermillion = mustHex("#D55E00")

	TabBlue   = mustHex("#1f77b4")
	TabRed    = mustHex("#d62728")
	TabGreen  = mustHex("#2ca02c")
	TabPurple = mustHex("#9467bd")
	TabOrange = mustHex("#ff7f0e")

	PaleBlue   = mustHex("#aec7e8")
	PaleOrange = mustHex("#ffbb78")
	PaleGreen  = mustHex("#98df8a")

	TintBlue = mustHex("#eeeeff")
	TintRed  = mustHex("#ffeeee")

	Ink     = mustHex("#333333")
	Gray    = mustHex("#808080")
	Mist    = mustHex("#f0f0f0")
	Paper   = mustHex("#f9f9f9")
	DarkRed = mustHex("#a00000")
	Green   = mustHex("#008000")
	Red     = mustHex("#ff0000")
	Black   = color.NRGBA{A: 0xff}
	White   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Hex parses a "#rrggbb" or "#rrggbbaa" color.
func Hex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns c with its opacity set to a in [0, 1].
func Alpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a = min(max(a, 0), 1)
	n.A = uint8(a*255 + 0.5)
	return n
}

// Cycle returns the i-th color of the categorical cycle.
func Cycle(i int) color.NRGBA {
	cycle := [...]color.NRGBA{TabRed, TabGreen, TabPurple, TabBlue, TabOrange}
	return cycle[((i%len(cycle))+len(cycle))%len(cycle)]
}
