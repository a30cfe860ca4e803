package pipeline

import (
	"context"

	"eventstudio/internal/domain/event"
	"eventstudio/internal/prompts"
	"eventstudio/internal/providers/text"
)

// GenerateEmail produces the marketing email. The chat provider is tried
// first; any failure falls back to the deterministic template, and the result
// always reports success with provenance.
func (s *Service) GenerateEmail(ctx context.Context, req event.Request) event.EmailResult {
	if s.textAvailable() {
		raw, err := s.textGen.Complete(ctx, text.Request{
			Kind:   text.KindEmail,
			System: prompts.EmailSystemInstruction(),
			Prompt: prompts.EmailPrompt(req),
		})
		if err == nil {
			subject, body := parseEmail(raw)
			if subject != "" && body != "" {
				return event.EmailResult{
					Subject:   subject,
					Body:      body,
					Status:    event.StatusSuccess,
					ModelUsed: s.textGen.ModelTag(),
				}
			}
			s.logger.Warn().Msg("pipeline: completion missing subject/body, using template")
		} else {
			s.logger.Warn().Err(err).Msg("pipeline: email completion failed, using template")
		}
	}

	subject, body := templateEmail(req, s.rng)
	return event.EmailResult{
		Subject:   subject,
		Body:      formatEmailBody(body),
		Status:    event.StatusSuccess,
		ModelUsed: ModelTagTemplate,
	}
}
