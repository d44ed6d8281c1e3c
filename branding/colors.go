package branding

import (
	"image/color"
	"strconv"
	"strings"
)

var DefaultFrameColor = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 255}
var DefaultTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var cardColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var noLogoColor = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 255}

// ParseColor reads "#rrggbb" (the # is optional). Anything else yields defaultColor.
func ParseColor(param string, defaultColor color.RGBA) color.RGBA {
	param = strings.TrimPrefix(strings.TrimSpace(param), "#")
	if len(param) != 6 {
		return defaultColor
	}

	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return defaultColor
	}

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

type Options struct {
	FrameColor color.RGBA
	// GradientColor is the end colour of a diagonal gradient. Nil draws a solid frame.
	GradientColor *color.RGBA
	TextColor     color.RGBA
	Caption       string
	ShowFrame     bool
}

func NewOptions(frameColor string, gradientColor string, textColor string, caption string, showFrame bool) Options {
	opts := Options{
		FrameColor: ParseColor(frameColor, DefaultFrameColor),
		TextColor:  ParseColor(textColor, DefaultTextColor),
		Caption:    strings.TrimSpace(caption),
		ShowFrame:  showFrame,
	}
	if gradientColor != "" {
		// An unparseable gradient end is treated as a solid frame
		sentinel := color.RGBA{}
		c := ParseColor(gradientColor, sentinel)
		if c != sentinel {
			opts.GradientColor = &c
		}
	}
	return opts
}
