package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func fillVerticalGradient(dst *image.NRGBA, top, bottom color.NRGBA) {
	bounds := dst.Bounds()
	height := bounds.Dy()
	if height <= 1 {
		draw.Draw(dst, bounds, image.NewUniform(top), image.Point{}, draw.Src)
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		t := float64(y-bounds.Min.Y) / float64(height-1)
		row := color.NRGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		rowRect := image.Rect(bounds.Min.X, y, bounds.Max.X, y+1)
		draw.Draw(dst, rowRect, image.NewUniform(row), image.Point{}, draw.Src)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func fillRect(dst *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

func strokeRect(dst *image.NRGBA, rect image.Rectangle, thickness int, c color.NRGBA) {
	fillRect(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thickness), c)
	fillRect(dst, image.Rect(rect.Min.X, rect.Max.Y-thickness, rect.Max.X, rect.Max.Y), c)
	fillRect(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thickness, rect.Max.Y), c)
	fillRect(dst, image.Rect(rect.Max.X-thickness, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	uniform := image.NewUniform(c)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				rect := image.Rect(cx+dx, cy+dy, cx+dx+1, cy+dy+1)
				draw.Draw(dst, rect.Intersect(dst.Bounds()), uniform, image.Point{}, draw.Over)
			}
		}
	}
}

func fillTriangle(dst *image.NRGBA, p0, p1, p2 image.Point, c color.NRGBA) {
	minX := min3(p0.X, p1.X, p2.X)
	maxX := max3(p0.X, p1.X, p2.X)
	minY := min3(p0.Y, p1.Y, p2.Y)
	maxY := max3(p0.Y, p1.Y, p2.Y)
	uniform := image.NewUniform(c)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if inTriangle(image.Pt(x, y), p0, p1, p2) {
				rect := image.Rect(x, y, x+1, y+1)
				draw.Draw(dst, rect.Intersect(dst.Bounds()), uniform, image.Point{}, draw.Over)
			}
		}
	}
}

func inTriangle(p, a, b, c image.Point) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b image.Point) int {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func min3(a, b, c int) int { return min(min(a, b), c) }
func max3(a, b, c int) int { return max(max(a, b), c) }

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Round()
}

func drawText(dst *image.NRGBA, face font.Face, x, y int, c color.NRGBA, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// textStyle bundles the treatments applied per drawn line.
type textStyle struct {
	Color   color.NRGBA
	Shadow  color.NRGBA
	Shadows []image.Point
	Stroke  color.NRGBA
	// StrokeWidth 0 disables the outline.
	StrokeWidth int
}

// drawStyledText renders one line at a baseline, shadows first, then the
// stroke as offset draws, then the fill.
func drawStyledText(dst *image.NRGBA, face font.Face, x, y int, style textStyle, s string) {
	for _, off := range style.Shadows {
		drawText(dst, face, x+off.X, y+off.Y, style.Shadow, s)
	}
	if style.StrokeWidth > 0 {
		w := style.StrokeWidth
		for dy := -w; dy <= w; dy++ {
			for dx := -w; dx <= w; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawText(dst, face, x+dx, y+dy, style.Stroke, s)
			}
		}
	}
	drawText(dst, face, x, y, style.Color, s)
}

// drawCenteredText renders one styled line horizontally centered at the given
// baseline and returns the line's width.
func drawCenteredText(dst *image.NRGBA, face font.Face, y int, style textStyle, s string) int {
	w := textWidth(face, s)
	x := (dst.Bounds().Dx() - w) / 2
	drawStyledText(dst, face, x, y, style, s)
	return w
}

// wrapText splits s into lines not exceeding maxWidth at word boundaries.
// A single overlong word becomes its own line rather than being broken.
func wrapText(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if textWidth(face, candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
