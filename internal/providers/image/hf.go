package image

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"eventstudio/internal/infra"
	"eventstudio/internal/providers/hf"
)

// ModelFallbacks is the ranked list of hosted diffusion models tried after
// the theme-preferred model.
var ModelFallbacks = []string{
	"black-forest-labs/FLUX.1-schnell",
	"stabilityai/stable-diffusion-xl-base-1.0",
	"runwayml/stable-diffusion-v1-5",
}

var modelTags = map[string]string{
	"black-forest-labs/FLUX.1-schnell":         "flux-1-schnell",
	"stabilityai/stable-diffusion-xl-base-1.0": "stable-diffusion-xl",
	"runwayml/stable-diffusion-v1-5":           "stable-diffusion-v1-5",
}

const (
	diffusionSteps    = 50
	diffusionGuidance = 8.5
)

// PreferredModel ranks a model first based on the request theme. Painterly
// and photoreal themes render better on the SDXL checkpoint; graphic themes
// favor the faster rectified-flow model.
func PreferredModel(theme string) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "elegant", "professional", "nature", "classic", "royal":
		return "stabilityai/stable-diffusion-xl-base-1.0"
	default:
		return "black-forest-labs/FLUX.1-schnell"
	}
}

// ModelTag maps a model identifier to the short provenance tag reported to
// clients.
func ModelTag(model string) string {
	if tag, ok := modelTags[model]; ok {
		return tag
	}
	if idx := strings.LastIndex(model, "/"); idx >= 0 {
		model = model[idx+1:]
	}
	return strings.ToLower(model)
}

// HFGenerator is the second image tier. It walks a ranked model list, probing
// each model's status first and skipping definitively unavailable ones.
type HFGenerator struct {
	client *hf.Client
	logger *infra.Logger
}

var _ Generator = (*HFGenerator)(nil)

// NewHFGenerator wraps a configured inference client.
func NewHFGenerator(client *hf.Client, logger *infra.Logger) *HFGenerator {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &HFGenerator{client: client, logger: logger}
}

// Name implements Generator.
func (g *HFGenerator) Name() string { return "hf-inference" }

// Available implements Generator.
func (g *HFGenerator) Available(ctx context.Context) bool {
	return g.client != nil && g.client.HasCredentials()
}

// Generate implements Generator. Models are tried in ranked order; the first
// model to return bytes wins and its short name becomes the provenance tag.
func (g *HFGenerator) Generate(ctx context.Context, req Request) (*Asset, error) {
	if !g.Available(ctx) {
		return nil, hf.ErrMissingToken
	}
	var lastErr error
	for _, model := range g.rankedModels(req.Theme) {
		if !g.client.ProbeModel(ctx, model) {
			g.logger.Info().Str("model", model).Msg("image: skipping unavailable model")
			continue
		}
		data, err := g.client.GenerateImage(ctx, hf.ImageRequest{
			Model:          model,
			Prompt:         req.Prompt,
			NegativePrompt: req.NegativePrompt,
			Steps:          diffusionSteps,
			GuidanceScale:  diffusionGuidance,
			Width:          req.Width,
			Height:         req.Height,
		})
		if err != nil {
			g.logger.Warn().Str("model", model).Err(err).Msg("image: model failed, trying next")
			lastErr = err
			continue
		}
		return &Asset{Data: data, ModelTag: ModelTag(model)}, nil
	}
	if lastErr == nil {
		lastErr = errors.New("image: no inference model available")
	}
	return nil, lastErr
}

// ModelStatuses probes every known model for the status endpoint.
func (g *HFGenerator) ModelStatuses(ctx context.Context) map[string]bool {
	out := make(map[string]bool, len(ModelFallbacks))
	available := g.Available(ctx)
	for _, model := range ModelFallbacks {
		out[ModelTag(model)] = available && g.client.ProbeModel(ctx, model)
	}
	return out
}

func (g *HFGenerator) rankedModels(theme string) []string {
	preferred := PreferredModel(theme)
	models := make([]string, 0, len(ModelFallbacks)+1)
	models = append(models, preferred)
	for _, m := range ModelFallbacks {
		if m != preferred {
			models = append(models, m)
		}
	}
	return models
}
