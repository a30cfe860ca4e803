package image

import (
	"context"
	"fmt"

	"eventstudio/internal/providers/groq"
)

const groqModelTag = "dall-e-3-premium"

// GroqGenerator is the first image tier, backed by the hosted high-level
// image endpoint.
type GroqGenerator struct {
	client *groq.Client
}

var _ Generator = (*GroqGenerator)(nil)

// NewGroqGenerator wraps a configured client.
func NewGroqGenerator(client *groq.Client) *GroqGenerator {
	return &GroqGenerator{client: client}
}

// Name implements Generator.
func (g *GroqGenerator) Name() string { return "groq-images" }

// Available implements Generator. The endpoint has no cheap probe, so
// availability is the static credential check.
func (g *GroqGenerator) Available(ctx context.Context) bool {
	return g.client != nil && g.client.HasCredentials()
}

// Generate implements Generator. The endpoint only offers fixed square sizes,
// so the requested dimensions select the closest supported size and callers
// resize afterwards.
func (g *GroqGenerator) Generate(ctx context.Context, req Request) (*Asset, error) {
	if !g.Available(ctx) {
		return nil, groq.ErrMissingAPIKey
	}
	asset, err := g.client.GenerateImage(ctx, groq.ImageRequest{
		Prompt:  req.Prompt,
		Size:    closestSquareSize(req.Width, req.Height),
		Quality: "hd",
	})
	if err != nil {
		return nil, fmt.Errorf("image: groq generate: %w", err)
	}
	return &Asset{Data: asset.Data, ModelTag: groqModelTag}, nil
}

func closestSquareSize(width, height int) string {
	longest := width
	if height > longest {
		longest = height
	}
	switch {
	case longest <= 256:
		return "256x256"
	case longest <= 512:
		return "512x512"
	default:
		return "1024x1024"
	}
}
