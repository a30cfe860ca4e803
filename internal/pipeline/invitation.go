package pipeline

import (
	"context"

	"eventstudio/internal/domain/event"
	"eventstudio/internal/prompts"
	imgprov "eventstudio/internal/providers/image"
	"eventstudio/internal/providers/text"
	"eventstudio/internal/render"
)

// GenerateInvitation produces the invitation bundle: prose, a formatted
// presentation, background art, and a QR code when an RSVP address exists.
func (s *Service) GenerateInvitation(ctx context.Context, req event.Request) event.InvitationResult {
	prose, proseTag := s.invitationProse(ctx, req)
	formatted := formatInvitation(prose, req)

	background, designTag := s.invitationDesign(ctx, req)

	modelTag := proseTag
	if designTag != "" && designTag != proseTag {
		modelTag = proseTag + "+" + designTag
	}

	result := event.InvitationResult{
		InvitationText:      prose,
		FormattedInvitation: formatted,
		DesignBackground:    background,
		TextComponents:      invitationComponents(req),
		Status:              event.StatusSuccess,
		ModelUsed:           modelTag,
	}

	if req.RSVPEmail != "" {
		qr, err := render.RSVPQR(req.RSVPEmail, req.EventName, req.Date)
		if err == nil {
			if data, encErr := render.EncodePNG(qr); encErr == nil {
				result.QRCodeURL = render.DataURL(data)
			}
		} else {
			s.logger.Warn().Err(err).Msg("pipeline: qr generation failed")
		}
	}
	return result
}

func (s *Service) invitationProse(ctx context.Context, req event.Request) (prose, tag string) {
	if s.textAvailable() {
		raw, err := s.textGen.Complete(ctx, text.Request{
			Kind:   text.KindInvitation,
			System: prompts.InvitationSystemInstruction(),
			Prompt: prompts.InvitationPrompt(req),
		})
		if err == nil && raw != "" {
			return normalizeBlock(raw), s.textGen.ModelTag()
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("pipeline: invitation completion failed, using template")
		}
	}
	return templateInvitation(req), ModelTagTemplate
}

// invitationDesign returns the background art data URL plus its provenance
// tag. Provider art goes through the background enhancement pass; the
// template tier renders the dedicated invitation canvas instead.
func (s *Service) invitationDesign(ctx context.Context, req event.Request) (dataURL, tag string) {
	asset, ok := s.firstSuccessful(ctx, imgprov.Request{
		Prompt:         prompts.InvitationDesignPrompt(req),
		NegativePrompt: prompts.NegativePrompt(),
		Width:          render.BackgroundSize,
		Height:         render.BackgroundSize,
		Theme:          req.Theme,
	})
	if ok {
		if decoded, err := render.DecodeImage(asset.Data); err == nil {
			enhanced := render.Enhance(decoded, render.EnhanceOptions{
				Crisp:      req.CrispMode,
				Theme:      req.Theme,
				Background: true,
			})
			if data, encErr := render.EncodePNG(enhanced); encErr == nil {
				return render.DataURL(data), asset.ModelTag
			}
		} else {
			s.logger.Warn().Err(err).Msg("pipeline: undecodable invitation art, using template")
		}
	}
	card := s.renderer.Invitation(req)
	data, err := render.EncodePNG(card)
	if err != nil {
		return "", ModelTagTemplate
	}
	return render.DataURL(data), ModelTagTemplate
}
