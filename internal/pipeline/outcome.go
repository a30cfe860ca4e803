package pipeline

import (
	"context"

	imgprov "eventstudio/internal/providers/image"
)

// firstSuccessful walks the image tiers in order and returns the first asset
// produced. The boolean is false when every tier was unavailable or failed;
// callers then fall through to the template tier.
func (s *Service) firstSuccessful(ctx context.Context, req imgprov.Request) (*imgprov.Asset, bool) {
	for _, gen := range s.imageGens {
		if !gen.Available(ctx) {
			s.logger.Debug().Str("provider", gen.Name()).Msg("pipeline: provider unavailable, skipping")
			continue
		}
		asset, err := gen.Generate(ctx, req)
		if err != nil {
			s.logger.Warn().Str("provider", gen.Name()).Err(err).Msg("pipeline: provider failed, trying next tier")
			continue
		}
		s.logger.Info().
			Str("provider", gen.Name()).
			Str("model", asset.ModelTag).
			Msg("pipeline: image generated")
		return asset, true
	}
	return nil, false
}
