// Package render produces deterministic template collateral: poster and
// invitation canvases, text overlays, post-processing and QR codes. Remote
// providers are never consulted here; everything draws locally.
package render

import (
	"image/color"
	"strings"
)

// Scheme is the themed palette driving template rendering and overlays.
type Scheme struct {
	Primary        color.NRGBA
	Secondary      color.NRGBA
	Accent         color.NRGBA
	Background     color.NRGBA
	Text           color.NRGBA
	GradientTop    color.NRGBA
	GradientBottom color.NRGBA
}

var schemes = map[string]Scheme{
	"cyberpunk": {
		Primary:        color.NRGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff},
		Secondary:      color.NRGBA{R: 0x1a, G: 0x1a, B: 0x3a, A: 0xff},
		Accent:         color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
		Background:     color.NRGBA{R: 0x0d, G: 0x0d, B: 0x21, A: 0xff},
		Text:           color.NRGBA{R: 0xe0, G: 0xff, B: 0xff, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x0a, G: 0x0a, B: 0x1a, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x2d, G: 0x0a, B: 0x4e, A: 0xff},
	},
	"elegant": {
		Primary:        color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Secondary:      color.NRGBA{R: 0x2c, G: 0x2c, B: 0x34, A: 0xff},
		Accent:         color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff},
		Background:     color.NRGBA{R: 0x12, G: 0x12, B: 0x18, A: 0xff},
		Text:           color.NRGBA{R: 0xf5, G: 0xf0, B: 0xe1, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x1a, G: 0x1a, B: 0x22, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x2e, G: 0x26, B: 0x14, A: 0xff},
	},
	"minimalistic": {
		Primary:        color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		Secondary:      color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		Accent:         color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
		Background:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:           color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		GradientTop:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GradientBottom: color.NRGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff},
	},
	"vibrant": {
		Primary:        color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
		Secondary:      color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff},
		Accent:         color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
		Background:     color.NRGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
		Text:           color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GradientTop:    color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
	},
	"professional": {
		Primary:        color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		Secondary:      color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff},
		Accent:         color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
		Background:     color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		Text:           color.NRGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x1a, G: 0x25, B: 0x30, A: 0xff},
	},
	"nature": {
		Primary:        color.NRGBA{R: 0x1e, G: 0x4d, B: 0x2b, A: 0xff},
		Secondary:      color.NRGBA{R: 0x2e, G: 0x6b, B: 0x3e, A: 0xff},
		Accent:         color.NRGBA{R: 0xa3, G: 0xc5, B: 0x85, A: 0xff},
		Background:     color.NRGBA{R: 0x14, G: 0x35, B: 0x1e, A: 0xff},
		Text:           color.NRGBA{R: 0xea, G: 0xf4, B: 0xe2, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x1e, G: 0x4d, B: 0x2b, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x0e, G: 0x26, B: 0x15, A: 0xff},
	},
	"artistic": {
		Primary:        color.NRGBA{R: 0x6c, G: 0x3a, B: 0x83, A: 0xff},
		Secondary:      color.NRGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
		Accent:         color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff},
		Background:     color.NRGBA{R: 0x4a, G: 0x23, B: 0x5e, A: 0xff},
		Text:           color.NRGBA{R: 0xfd, G: 0xf2, B: 0xe9, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x6c, G: 0x3a, B: 0x83, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x2c, G: 0x0f, B: 0x3a, A: 0xff},
	},
	"tech": {
		Primary:        color.NRGBA{R: 0x0f, G: 0x20, B: 0x27, A: 0xff},
		Secondary:      color.NRGBA{R: 0x20, G: 0x3a, B: 0x43, A: 0xff},
		Accent:         color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff},
		Background:     color.NRGBA{R: 0x0a, G: 0x19, B: 0x1f, A: 0xff},
		Text:           color.NRGBA{R: 0xe0, G: 0xf7, B: 0xfa, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x0f, G: 0x20, B: 0x27, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x29, G: 0x53, B: 0x5e, A: 0xff},
	},
	"royal": {
		Primary:        color.NRGBA{R: 0x3b, G: 0x1f, B: 0x5e, A: 0xff},
		Secondary:      color.NRGBA{R: 0x55, G: 0x2d, B: 0x80, A: 0xff},
		Accent:         color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff},
		Background:     color.NRGBA{R: 0x2a, G: 0x15, B: 0x45, A: 0xff},
		Text:           color.NRGBA{R: 0xf5, G: 0xec, B: 0xd7, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x3b, G: 0x1f, B: 0x5e, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x1a, G: 0x0b, B: 0x2e, A: 0xff},
	},
	"modern": {
		Primary:        color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff},
		Secondary:      color.NRGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff},
		Accent:         color.NRGBA{R: 0xff, G: 0x57, B: 0x22, A: 0xff},
		Background:     color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
		Text:           color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
		GradientTop:    color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		GradientBottom: color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	},
	"classic": {
		Primary:        color.NRGBA{R: 0x5d, G: 0x1a, B: 0x1a, A: 0xff},
		Secondary:      color.NRGBA{R: 0x7a, G: 0x28, B: 0x28, A: 0xff},
		Accent:         color.NRGBA{R: 0xc9, G: 0xa2, B: 0x27, A: 0xff},
		Background:     color.NRGBA{R: 0xf8, G: 0xf1, B: 0xe3, A: 0xff},
		Text:           color.NRGBA{R: 0x3e, G: 0x2b, B: 0x1f, A: 0xff},
		GradientTop:    color.NRGBA{R: 0xfb, G: 0xf6, B: 0xec, A: 0xff},
		GradientBottom: color.NRGBA{R: 0xea, G: 0xdd, B: 0xc5, A: 0xff},
	},
	"festive": {
		Primary:        color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
		Secondary:      color.NRGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff},
		Accent:         color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
		Background:     color.NRGBA{R: 0x96, G: 0x28, B: 0x1b, A: 0xff},
		Text:           color.NRGBA{R: 0xff, G: 0xf8, B: 0xe7, A: 0xff},
		GradientTop:    color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x5e, G: 0x14, B: 0x0e, A: 0xff},
	},
}

// SchemeFor resolves the palette for a theme, falling back to the
// professional palette.
func SchemeFor(theme string) Scheme {
	if s, ok := schemes[strings.ToLower(strings.TrimSpace(theme))]; ok {
		return s
	}
	return schemes["professional"]
}

// darkBackground reports whether text drawn over the palette background
// needs light treatment.
func (s Scheme) darkBackground() bool {
	lum := 0.299*float64(s.Background.R) + 0.587*float64(s.Background.G) + 0.114*float64(s.Background.B)
	return lum < 128
}
