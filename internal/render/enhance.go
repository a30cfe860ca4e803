package render

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// EnhanceOptions selects the post-processing tier. Crisp mode keeps the image
// closer to the source; the default tier pushes contrast and applies the
// filmic treatments. Background art additionally scales the adjustments by
// theme family.
type EnhanceOptions struct {
	Crisp      bool
	Theme      string
	Background bool
}

// Enhance runs the ordered post-processing chain over a generated image and
// returns the result in NRGBA.
func Enhance(src image.Image, opts EnhanceOptions) *image.NRGBA {
	img := upscaleMin(src, BackgroundSize)
	img = imaging.Sharpen(img, 0.8)

	contrast, saturation, brightness := 12.0, 8.0, 3.0
	if opts.Crisp {
		contrast, saturation, brightness = 6.0, 3.0, 1.0
	}
	if opts.Background {
		scale := themeFamilyScale(opts.Theme)
		contrast *= scale
		saturation *= scale
	}
	img = imaging.AdjustContrast(img, contrast)
	img = imaging.AdjustSaturation(img, saturation)
	img = imaging.AdjustBrightness(img, brightness)

	if !opts.Crisp {
		// Filmic pass: S-curve tone map, light grain, soft vignette.
		img = imaging.AdjustSigmoid(img, 0.5, 6.0)
		applyGrain(img, 4)
		applyVignette(img, 0.12)
	}

	sharpenSigma := 1.0
	if opts.Crisp {
		sharpenSigma = 1.2
	}
	return imaging.Sharpen(img, sharpenSigma)
}

// upscaleMin resizes so the shorter side reaches at least minSide, never
// downscaling.
func upscaleMin(src image.Image, minSide int) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	short := w
	if h < short {
		short = h
	}
	if short >= minSide || short == 0 {
		return imaging.Clone(src)
	}
	scale := float64(minSide) / float64(short)
	return imaging.Resize(src, int(float64(w)*scale+0.5), int(float64(h)*scale+0.5), imaging.Lanczos)
}

// themeFamilyScale tiers background adjustments: neon and graphic themes take
// stronger treatment, understated themes take less.
func themeFamilyScale(theme string) float64 {
	switch theme {
	case "tech", "cyberpunk", "vibrant", "festive":
		return 1.4
	case "elegant", "professional", "minimalistic", "classic":
		return 0.6
	default:
		return 1.0
	}
}

// applyGrain adds deterministic luminance noise in place. A coordinate hash
// keeps output stable across runs so identical inputs produce identical
// bytes.
func applyGrain(img *image.NRGBA, amplitude int) {
	bounds := img.Bounds()
	span := amplitude*2 + 1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			h := uint32(x)*0x9e3779b1 ^ uint32(y)*0x85ebca77
			h ^= h >> 13
			h *= 0xc2b2ae35
			h ^= h >> 16
			noise := int(h%uint32(span)) - amplitude
			i := img.PixOffset(x, y)
			for ch := 0; ch < 3; ch++ {
				img.Pix[i+ch] = clamp8(int(img.Pix[i+ch]) + noise)
			}
		}
	}
}

// applyVignette darkens toward the corners, strength being the maximum
// fraction removed at the farthest corner.
func applyVignette(img *image.NRGBA, strength float64) {
	bounds := img.Bounds()
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	maxDist := math.Hypot(float64(bounds.Dx())/2, float64(bounds.Dy())/2)
	if maxDist == 0 {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			factor := 1 - strength*dist*dist
			i := img.PixOffset(x, y)
			for ch := 0; ch < 3; ch++ {
				img.Pix[i+ch] = clamp8(int(float64(img.Pix[i+ch]) * factor))
			}
		}
	}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
