package render

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"eventstudio/internal/domain/event"
)

// Canvas dimensions for locally rendered collateral.
const (
	PosterWidth      = 1200
	PosterHeight     = 1600
	BackgroundSize   = 1024
	InvitationWidth  = 1240
	InvitationHeight = 1754
)

var templateTitleCaser = cases.Title(language.English)

// Renderer draws template posters and invitations. Decoration placement is
// the only randomized part and flows through the injected source so tests can
// fix the seed.
type Renderer struct {
	rng *rand.Rand
}

// NewRenderer builds a renderer; a nil source gets a time-seeded one.
func NewRenderer(rng *rand.Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Renderer{rng: rng}
}

// Background draws a decorated gradient canvas with no text, used as the
// template tier for poster backgrounds and invitation design art.
func (r *Renderer) Background(theme string, width, height int) *image.NRGBA {
	scheme := SchemeFor(theme)
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillVerticalGradient(canvas, scheme.GradientTop, scheme.GradientBottom)
	r.scatterShapes(canvas, scheme)
	r.cornerAccents(canvas, scheme)
	return canvas
}

// Poster draws the full deterministic poster template with title, details and
// call to action.
func (r *Renderer) Poster(req event.Request) *image.NRGBA {
	scheme := SchemeFor(req.Theme)
	canvas := image.NewNRGBA(image.Rect(0, 0, PosterWidth, PosterHeight))
	fillVerticalGradient(canvas, scheme.GradientTop, scheme.GradientBottom)
	r.scatterShapes(canvas, scheme)

	// Header band anchors the title block against the busy decoration layer.
	headerBand := image.Rect(0, PosterHeight/10, PosterWidth, PosterHeight/10+220)
	fillRect(canvas, headerBand, withAlpha(scheme.Primary, 0xb4))
	fillRect(canvas, image.Rect(0, headerBand.Max.Y, PosterWidth, headerBand.Max.Y+6), scheme.Accent)

	fonts := PosterFonts(PosterWidth)
	style := textStyle{
		Color:   scheme.Text,
		Shadow:  color.NRGBA{A: 0xa0},
		Shadows: []image.Point{{X: 3, Y: 3}, {X: 2, Y: 2}},
	}

	y := headerBand.Min.Y + 90
	for _, line := range wrapText(fonts.Title, strings.ToUpper(req.EventName), PosterWidth-160) {
		drawCenteredText(canvas, fonts.Title, y, style, line)
		y += lineHeight(fonts.Title)
	}
	y = headerBand.Max.Y + 110
	drawCenteredText(canvas, fonts.Subtitle, y, style, templateTitleCaser.String(req.EventType)+" Event")

	detailStyle := style
	detailStyle.Color = scheme.Text
	y = PosterHeight/2 + 60
	for _, line := range []string{
		"DATE  " + req.Date,
		"TIME  " + req.Time,
		"VENUE  " + req.Venue,
	} {
		for _, wrapped := range wrapText(fonts.Detail, line, PosterWidth-200) {
			drawCenteredText(canvas, fonts.Detail, y, detailStyle, wrapped)
			y += lineHeight(fonts.Detail) + 18
		}
	}

	// CTA banner near the foot of the canvas.
	ctaText := "RESERVE YOUR SPOT"
	ctaWidth := textWidth(fonts.CTA, ctaText) + 120
	ctaRect := image.Rect((PosterWidth-ctaWidth)/2, PosterHeight-260, (PosterWidth+ctaWidth)/2, PosterHeight-160)
	fillRect(canvas, ctaRect, scheme.Accent)
	ctaStyle := textStyle{Color: scheme.Primary}
	drawCenteredText(canvas, fonts.CTA, ctaRect.Min.Y+65, ctaStyle, ctaText)

	organizerStyle := textStyle{Color: withAlpha(scheme.Text, 0xc8)}
	drawCenteredText(canvas, fonts.Footer, PosterHeight-80, organizerStyle, "Presented by "+req.Organizer())

	r.cornerAccents(canvas, scheme)
	return canvas
}

// Invitation draws the dedicated invitation card template. Layout variants
// shift the text column; classic keeps everything centered.
func (r *Renderer) Invitation(req event.Request) *image.NRGBA {
	scheme := SchemeFor(req.Theme)
	canvas := image.NewNRGBA(image.Rect(0, 0, InvitationWidth, InvitationHeight))
	fillVerticalGradient(canvas, scheme.GradientTop, scheme.GradientBottom)

	// Double decorative border.
	outer := image.Rect(40, 40, InvitationWidth-40, InvitationHeight-40)
	inner := outer.Inset(24)
	strokeRect(canvas, outer, 6, scheme.Accent)
	strokeRect(canvas, inner, 2, withAlpha(scheme.Accent, 0xa0))

	fonts := InvitationFonts(InvitationWidth)
	textCol := scheme.Text
	if !scheme.darkBackground() {
		textCol = scheme.Primary
	}
	base := textStyle{Color: textCol}
	accent := textStyle{Color: scheme.Accent}

	centered := req.LayoutVariant != "split"
	leftMargin := 140
	if req.LayoutVariant == "split" {
		// Side band carries the accent; text hangs off the band.
		band := image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+70, inner.Max.Y)
		fillRect(canvas, band, withAlpha(scheme.Accent, 0x50))
		leftMargin = inner.Min.X + 120
	}

	drawLine := func(face fontFaceKey, y int, style textStyle, s string) int {
		f := fonts.face(face)
		for _, line := range wrapText(f, s, InvitationWidth-2*leftMargin) {
			if centered {
				drawCenteredText(canvas, f, y, style, line)
			} else {
				drawStyledText(canvas, f, leftMargin, y, style, line)
			}
			y += lineHeight(f) + 10
		}
		return y
	}

	y := 300
	y = drawLine(faceHeader, y, accent, "YOU ARE CORDIALLY INVITED")
	y += 60
	y = drawLine(faceTitle, y, base, req.EventName)
	y += 40
	y = drawLine(faceSubtitle, y, base, templateTitleCaser.String(req.EventType)+" Event")
	y += 120

	y = drawLine(faceBody, y, base, req.Date+" at "+req.Time)
	y += 20
	y = drawLine(faceBody, y, base, req.Venue)
	y += 100
	if req.DressCode != "" {
		y = drawLine(faceDetail, y, base, "Dress Code: "+req.DressCode)
		y += 20
	}
	y = drawLine(faceDetail, y, base, rsvpTemplateLine(req))
	y += 140
	drawLine(faceFooter, y, accent, "Hosted by "+req.Organizer())

	return canvas
}

func rsvpTemplateLine(req event.Request) string {
	switch {
	case req.RSVPEmail != "" && req.RSVPDeadline != "":
		return "RSVP by " + req.RSVPDeadline + ": " + req.RSVPEmail
	case req.RSVPEmail != "":
		return "RSVP: " + req.RSVPEmail
	case req.RSVPDeadline != "":
		return "Please respond by " + req.RSVPDeadline
	default:
		return "Kindly confirm your attendance"
	}
}

// scatterShapes layers 8 to 15 translucent primitives behind the text
// regions.
func (r *Renderer) scatterShapes(canvas *image.NRGBA, scheme Scheme) {
	bounds := canvas.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	count := 8 + r.rng.Intn(8)
	for i := 0; i < count; i++ {
		size := 40 + r.rng.Intn(140)
		x := r.rng.Intn(width)
		y := r.rng.Intn(height)
		tint := scheme.Secondary
		if i%2 == 0 {
			tint = scheme.Accent
		}
		c := withAlpha(tint, uint8(30+r.rng.Intn(50)))
		switch i % 3 {
		case 0:
			fillCircle(canvas, x, y, size/2, c)
		case 1:
			fillRect(canvas, image.Rect(x, y, x+size, y+size), c)
		default:
			fillTriangle(canvas,
				image.Pt(x, y+size),
				image.Pt(x+size/2, y),
				image.Pt(x+size, y+size), c)
		}
	}
}

func (r *Renderer) cornerAccents(canvas *image.NRGBA, scheme Scheme) {
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	length, thickness, margin := w/8, 8, 30
	c := scheme.Accent
	fillRect(canvas, image.Rect(margin, margin, margin+length, margin+thickness), c)
	fillRect(canvas, image.Rect(margin, margin, margin+thickness, margin+length), c)
	fillRect(canvas, image.Rect(w-margin-length, h-margin-thickness, w-margin, h-margin), c)
	fillRect(canvas, image.Rect(w-margin-thickness, h-margin-length, w-margin, h-margin), c)
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// fontFaceKey selects a face out of a FontSet by role.
type fontFaceKey int

const (
	faceTitle fontFaceKey = iota
	faceSubtitle
	faceHeader
	faceBody
	faceDetail
	faceFooter
)

func (f FontSet) face(key fontFaceKey) font.Face {
	switch key {
	case faceTitle:
		return f.Title
	case faceSubtitle:
		return f.Subtitle
	case faceHeader:
		return f.Header
	case faceBody:
		return f.Body
	case faceDetail:
		return f.Detail
	default:
		return f.Footer
	}
}
