package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrCoreSize = 512
	qrBorder   = 40
)

var (
	qrForeground = color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	qrBackground = color.NRGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
)

// RSVPPayload builds the mail-action string encoded into the RSVP QR code.
func RSVPPayload(rsvpEmail, eventName, date string) string {
	return fmt.Sprintf("mailto:%s?subject=RSVP: %s&body=I would like to confirm my attendance for %s on %s.",
		rsvpEmail, eventName, eventName, date)
}

// RSVPQR renders a styled high-redundancy QR code for an RSVP mailto link.
func RSVPQR(rsvpEmail, eventName, date string) (*image.NRGBA, error) {
	code, err := qrcode.New(RSVPPayload(rsvpEmail, eventName, date), qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("render: build qr: %w", err)
	}
	code.ForegroundColor = qrForeground
	code.BackgroundColor = qrBackground
	core := imaging.Clone(code.Image(qrCoreSize))

	total := qrCoreSize + 2*qrBorder
	canvas := image.NewNRGBA(image.Rect(0, 0, total, total))
	fillRect(canvas, canvas.Bounds(), qrBackground)
	canvas = imaging.Paste(canvas, core, image.Pt(qrBorder, qrBorder))

	drawQRCornerTicks(canvas, qrForeground)
	return canvas, nil
}

// drawQRCornerTicks frames the quiet zone with short corner marks.
func drawQRCornerTicks(canvas *image.NRGBA, c color.NRGBA) {
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	length, thickness, margin := 36, 6, 10
	// top-left
	fillRect(canvas, image.Rect(margin, margin, margin+length, margin+thickness), c)
	fillRect(canvas, image.Rect(margin, margin, margin+thickness, margin+length), c)
	// top-right
	fillRect(canvas, image.Rect(w-margin-length, margin, w-margin, margin+thickness), c)
	fillRect(canvas, image.Rect(w-margin-thickness, margin, w-margin, margin+length), c)
	// bottom-left
	fillRect(canvas, image.Rect(margin, h-margin-thickness, margin+length, h-margin), c)
	fillRect(canvas, image.Rect(margin, h-margin-length, margin+thickness, h-margin), c)
	// bottom-right
	fillRect(canvas, image.Rect(w-margin-length, h-margin-thickness, w-margin, h-margin), c)
	fillRect(canvas, image.Rect(w-margin-thickness, h-margin-length, w-margin, h-margin), c)
}
