package pipeline

import (
	"context"
	"fmt"
	"image"

	"eventstudio/internal/domain/event"
	"eventstudio/internal/prompts"
	imgprov "eventstudio/internal/providers/image"
	"eventstudio/internal/render"
)

// GeneratePoster produces either raw background art or a finished poster with
// text overlay, depending on the requested generation type.
func (s *Service) GeneratePoster(ctx context.Context, req event.Request) event.PosterResult {
	prompt := prompts.PosterPrompt(req)
	fullMode := req.GenerationType != string(event.GenerationBackground)

	asset, ok := s.firstSuccessful(ctx, imgprov.Request{
		Prompt:         prompt,
		NegativePrompt: prompts.NegativePrompt(),
		Width:          render.BackgroundSize,
		Height:         render.BackgroundSize,
		Theme:          req.Theme,
	})

	var (
		final    image.Image
		modelTag string
	)
	if ok {
		decoded, err := render.DecodeImage(asset.Data)
		if err != nil {
			s.logger.Warn().Err(err).Msg("pipeline: undecodable provider image, using template")
			ok = false
		} else {
			enhanced := render.Enhance(decoded, render.EnhanceOptions{
				Crisp:      req.CrispMode,
				Theme:      req.Theme,
				Background: !fullMode,
			})
			modelTag = asset.ModelTag
			if fullMode {
				final = render.Overlay(enhanced, req)
				modelTag += "+text_overlay"
			} else {
				final = enhanced
			}
		}
	}
	if !ok {
		modelTag = ModelTagTemplate
		if fullMode {
			final = s.renderer.Poster(req)
		} else {
			final = s.renderer.Background(req.Theme, render.BackgroundSize, render.BackgroundSize)
		}
	}

	data, err := render.EncodePNG(final)
	if err != nil {
		// Local encoding of an in-memory canvas; failure here is a defect,
		// not a provider condition.
		return event.PosterResult{
			PromptUsed: prompt,
			Status:     event.StatusError,
			ModelUsed:  modelTag,
		}
	}
	bounds := final.Bounds()
	return event.PosterResult{
		ImageURL:   render.DataURL(data),
		PromptUsed: prompt,
		Status:     event.StatusSuccess,
		ModelUsed:  modelTag,
		Dimensions: fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		FileSize:   humanSize(len(data)),
	}
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
