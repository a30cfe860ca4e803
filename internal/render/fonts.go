package render

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font files are probed in ladder order; rendering must keep working on
// minimal containers, so the bitmap fallback face is always available.
var fontPathLadder = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

var (
	fontOnce   sync.Once
	loadedFont *opentype.Font
)

func systemFont() *opentype.Font {
	fontOnce.Do(func() {
		for _, path := range fontPathLadder {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			parsed, err := opentype.Parse(data)
			if err != nil {
				continue
			}
			loadedFont = parsed
			return
		}
	})
	return loadedFont
}

// faceAt returns a face at the requested pixel size, degrading to the fixed
// bitmap face when no system font could be loaded.
func faceAt(size float64) font.Face {
	parsed := systemFont()
	if parsed == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// FontSet holds the faces used across one rendered canvas.
type FontSet struct {
	Title    font.Face
	Subtitle font.Face
	Header   font.Face
	Body     font.Face
	Detail   font.Face
	Footer   font.Face
	CTA      font.Face
}

// PosterFonts scales faces from the canvas width.
func PosterFonts(width int) FontSet {
	base := float64(width) / 18
	return FontSet{
		Title:    faceAt(base * 2.2),
		Subtitle: faceAt(base * 1.3),
		Detail:   faceAt(base * 0.9),
		Body:     faceAt(base * 0.9),
		CTA:      faceAt(base * 0.7),
		Header:   faceAt(base),
		Footer:   faceAt(base * 0.6),
	}
}

// InvitationFonts uses a tighter ratio than posters; invitation cards carry
// far more text per canvas.
func InvitationFonts(width int) FontSet {
	base := float64(width) / 30
	return FontSet{
		Title:    faceAt(base * 2.5),
		Subtitle: faceAt(base * 1.2),
		Header:   faceAt(base * 0.9),
		Body:     faceAt(base * 0.7),
		Detail:   faceAt(base * 0.6),
		Footer:   faceAt(base * 0.5),
		CTA:      faceAt(base * 0.8),
	}
}
