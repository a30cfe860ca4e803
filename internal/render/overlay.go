package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"eventstudio/internal/domain/event"
)

const (
	topBandHeight    = 300
	bottomBandHeight = 400
	bandFadeHeight   = 100
)

// Overlay composes event text over generated background art and returns the
// finished poster at the standard poster size. The background is resized with
// Lanczos regardless of its source dimensions.
func Overlay(background image.Image, req event.Request) *image.NRGBA {
	scheme := SchemeFor(req.Theme)
	canvas := imaging.Resize(background, PosterWidth, PosterHeight, imaging.Lanczos)

	overlayTint := withAlpha(scheme.Primary, 0x96)
	drawFadeBand(canvas, image.Rect(0, 0, PosterWidth, topBandHeight), overlayTint, false)
	drawFadeBand(canvas, image.Rect(0, PosterHeight-bottomBandHeight, PosterWidth, PosterHeight), overlayTint, true)

	fonts := PosterFonts(PosterWidth)
	shadowOffsets := []image.Point{{X: 4, Y: 4}, {X: 3, Y: 3}, {X: 2, Y: 2}}
	titleStyle := textStyle{
		Color:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Shadow:      color.NRGBA{A: 0xb4},
		Shadows:     shadowOffsets,
		Stroke:      color.NRGBA{A: 0xdc},
		StrokeWidth: 2,
	}

	y := 130
	titleLines := wrapText(fonts.Title, strings.ToUpper(req.EventName), PosterWidth-120)
	if len(titleLines) > 2 {
		titleLines = titleLines[:2]
	}
	for _, line := range titleLines {
		drawCenteredText(canvas, fonts.Title, y, titleStyle, line)
		y += lineHeight(fonts.Title)
	}
	subtitleStyle := textStyle{
		Color:   scheme.Accent,
		Shadow:  color.NRGBA{A: 0xb4},
		Shadows: shadowOffsets[1:],
	}
	drawCenteredText(canvas, fonts.Subtitle, y+20, subtitleStyle, templateTitleCaser.String(req.EventType)+" Event")

	detailStyle := textStyle{
		Color:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Shadow:  color.NRGBA{A: 0xa0},
		Shadows: shadowOffsets[1:],
	}
	y = PosterHeight - bottomBandHeight + 90
	for _, detail := range []string{req.Date + "  |  " + req.Time, req.Venue} {
		lines := wrapText(fonts.Detail, detail, PosterWidth-240)
		for _, line := range lines {
			drawDetailBox(canvas, fonts, line, y, scheme)
			drawCenteredText(canvas, fonts.Detail, y, detailStyle, line)
			y += lineHeight(fonts.Detail) + 26
		}
	}

	ctaText := "RESERVE YOUR SPOT"
	ctaWidth := textWidth(fonts.CTA, ctaText) + 100
	ctaRect := image.Rect((PosterWidth-ctaWidth)/2, PosterHeight-120, (PosterWidth+ctaWidth)/2, PosterHeight-50)
	fillRect(canvas, ctaRect, scheme.Accent)
	strokeRect(canvas, ctaRect, 3, withAlpha(scheme.Text, 0xc8))
	drawCenteredText(canvas, fonts.CTA, ctaRect.Min.Y+48, textStyle{Color: scheme.Primary}, ctaText)

	return canvas
}

// drawDetailBox paints the contrast box behind one centered detail line.
func drawDetailBox(canvas *image.NRGBA, fonts FontSet, line string, baseline int, scheme Scheme) {
	w := textWidth(fonts.Detail, line)
	h := lineHeight(fonts.Detail)
	box := image.Rect(
		(PosterWidth-w)/2-24, baseline-h+8,
		(PosterWidth+w)/2+24, baseline+16,
	)
	fillRect(canvas, box, withAlpha(scheme.Primary, 0x82))
	fillRect(canvas, image.Rect(box.Min.X, box.Min.Y, box.Min.X+4, box.Max.Y), scheme.Accent)
	fillRect(canvas, image.Rect(box.Max.X-4, box.Min.Y, box.Max.X, box.Max.Y), scheme.Accent)
}

// drawFadeBand fills rect with the tint, fading out over bandFadeHeight rows
// on the edge facing the canvas middle.
func drawFadeBand(canvas *image.NRGBA, rect image.Rectangle, tint color.NRGBA, fadeAtTop bool) {
	height := rect.Dy()
	for row := 0; row < height; row++ {
		alpha := tint.A
		var edgeDist int
		if fadeAtTop {
			edgeDist = row
		} else {
			edgeDist = height - 1 - row
		}
		if edgeDist < bandFadeHeight {
			alpha = uint8(float64(tint.A) * float64(edgeDist) / float64(bandFadeHeight))
		}
		rowRect := image.Rect(rect.Min.X, rect.Min.Y+row, rect.Max.X, rect.Min.Y+row+1)
		fillRect(canvas, rowRect, withAlpha(tint, alpha))
	}
}
