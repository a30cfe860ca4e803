package prompts

import (
	"strings"
	"testing"

	"eventstudio/internal/domain/event"
)

func normalizedRequest() event.Request {
	req := event.Request{
		EventName: "Tech Fest 2025",
		EventType: "tech",
		Date:      "March 15, 2025",
		Time:      "10:00 AM",
		Venue:     "Hall A, Innovation Center",
		Theme:     "cyberpunk",
		Tone:      "enthusiastic",
	}
	req.Normalize()
	return req
}

func TestPosterPromptComposesFragments(t *testing.T) {
	req := normalizedRequest()
	prompt := PosterPrompt(req)
	for _, want := range []string{
		"Tech Fest 2025",
		"neon noir aesthetic",
		"technology conference poster",
		"photorealistic",
		"50mm prime lens",
		"masterpiece",
		"no text or letters",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "\n") || strings.Contains(prompt, "  ") {
		t.Error("prompt whitespace not collapsed")
	}
}

func TestPosterPromptUnknownThemeUsesDefault(t *testing.T) {
	req := normalizedRequest()
	req.Theme = "steampunk"
	prompt := PosterPrompt(req)
	if !strings.Contains(prompt, "corporate event poster excellence") {
		t.Error("unknown theme should use professional fragment")
	}
}

func TestPosterPromptMaterialAccentOptional(t *testing.T) {
	req := normalizedRequest()
	req.MaterialAccent = "metallic"
	if !strings.Contains(PosterPrompt(req), "brushed metal") {
		t.Error("material accent fragment missing")
	}
	req.MaterialAccent = "none"
	if strings.Contains(PosterPrompt(req), "brushed metal") {
		t.Error("none accent must add no fragment")
	}
}

func TestEmailPromptCarriesBrief(t *testing.T) {
	req := normalizedRequest()
	req.KeyPoints = []string{"AI workshops"}
	prompt := EmailPrompt(req)
	for _, want := range []string{
		"EVENT: Tech Fest 2025",
		"DATE: March 15, 2025",
		"VENUE: Hall A, Innovation Center",
		"• AI workshops",
		"ORGANIZER: Event Organizing Team",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEmailPromptDefaultKeyPoints(t *testing.T) {
	prompt := EmailPrompt(normalizedRequest())
	if !strings.Contains(prompt, "networking opportunities") {
		t.Error("expected stock highlights when no key points given")
	}
}

func TestEmailSystemInstructionPinsContract(t *testing.T) {
	instr := EmailSystemInstruction()
	if !strings.Contains(instr, "SUBJECT:") || !strings.Contains(instr, "BODY:") {
		t.Fatal("system instruction must pin the output contract")
	}
}

func TestRSVPLine(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		email    string
		want     string
	}{
		{"both", "March 10", "rsvp@x.com", "Kindly respond by March 10 to rsvp@x.com"},
		{"deadline only", "March 10", "", "Please RSVP by March 10"},
		{"email only", "", "rsvp@x.com", "RSVP to: rsvp@x.com"},
		{"neither", "", "", "Your presence is requested - please confirm attendance"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := event.Request{RSVPDeadline: tc.deadline, RSVPEmail: tc.email}
			if got := RSVPLine(req); got != tc.want {
				t.Fatalf("RSVPLine = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInvitationPromptIncludesEtiquette(t *testing.T) {
	req := normalizedRequest()
	req.RSVPEmail = "rsvp@x.com"
	prompt := InvitationPrompt(req)
	if !strings.Contains(prompt, "RSVP to: rsvp@x.com") {
		t.Error("prompt missing rsvp line")
	}
	if !strings.Contains(prompt, "DRESS CODE: Elegant Attire") {
		t.Error("prompt missing default dress code")
	}
}

func TestInvitationDesignPromptUsesDesignThemes(t *testing.T) {
	req := normalizedRequest()
	req.Theme = "royal"
	prompt := InvitationDesignPrompt(req)
	if !strings.Contains(prompt, "crown elements") {
		t.Error("royal design fragment missing")
	}
	req.Theme = "cyberpunk"
	if !strings.Contains(InvitationDesignPrompt(req), "gold foil embossing") {
		t.Error("unknown design theme should use elegant fragment")
	}
}

func TestNegativePromptCollapsed(t *testing.T) {
	np := NegativePrompt()
	if !strings.Contains(np, "watermark") || strings.Contains(np, "\n") {
		t.Fatalf("unexpected negative prompt: %q", np)
	}
}
