// Package prompts maps structured event data to the natural-language prompts
// sent to the chat-completion and image-generation providers. All builders are
// pure functions of the request; the same input always produces the same
// prompt.
package prompts

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"eventstudio/internal/domain/event"
)

var titleCaser = cases.Title(language.English)

// ThemeFragment returns the visual-style fragment for a theme, defaulting to
// the professional fragment for unrecognized themes.
func ThemeFragment(theme string) string {
	return lookup(themeFragments, theme, themeFragments[defaultThemeKey])
}

// EventTypeFragment returns the contextual fragment for an event type.
func EventTypeFragment(eventType string) string {
	return lookup(eventTypeFragments, eventType, defaultEventTypeFragment)
}

// ToneGuide returns the register/voice fragment for a tone.
func ToneGuide(tone string) string {
	return lookup(toneGuides, tone, defaultToneGuide)
}

// NegativePrompt covers universally undesired artifacts for image generation.
func NegativePrompt() string {
	return collapse(negativePromptText)
}

// PosterPrompt assembles the image-generation prompt for a poster background.
func PosterPrompt(req event.Request) string {
	parts := []string{
		fmt.Sprintf("Professional event poster design for %q,", req.EventName),
		EventTypeFragment(req.EventType) + ",",
		ThemeFragment(req.Theme) + ",",
		lookup(realismFragments, req.Realism, realismFragments[defaultRealismKey]) + ",",
		lookup(cameraFragments, req.CameraStyle, cameraFragments[defaultCameraKey]) + ",",
	}
	if material := materialFragments[req.MaterialAccent]; material != "" {
		parts = append(parts, material+",")
	}
	if extra := strings.TrimSpace(req.AdditionalInstructions); extra != "" {
		parts = append(parts, extra+",")
	}
	parts = append(parts,
		qualityEnhancers+",",
		"perfect visual hierarchy and composition, attractive compelling imagery,",
		"professional graphic design excellence, no text or letters",
	)
	return collapse(strings.Join(parts, " "))
}

// InvitationDesignPrompt assembles the image prompt for an invitation card
// background.
func InvitationDesignPrompt(req event.Request) string {
	themeDesc := lookup(designThemeFragments, req.Theme, designThemeFragments[defaultDesignThemeKey])
	prompt := fmt.Sprintf(`Create a premium professional invitation card design for a %s event.
		EVENT: %s DESIGN STYLE: %s EVENT ELEMENTS: %s
		KEY DETAILS: Date: %s, Time: %s, Venue: %s
		DESIGN REQUIREMENTS: premium luxury invitation card design, elegant and
		sophisticated layout, professional typography with clear hierarchy, appropriate
		color scheme for the theme, high-quality visual elements, perfect balance and
		composition, no text overlay needed, 3D realistic rendering with proper
		lighting, award-winning design quality.`,
		req.EventType, req.EventName, themeDesc, EventTypeFragment(req.EventType),
		req.Date, req.Time, req.Venue)
	return collapse(prompt)
}

// EmailSystemInstruction is the fixed system message for email generation. It
// pins the strict SUBJECT:/BODY: output contract the parser relies on.
func EmailSystemInstruction() string {
	return collapse(`You are a senior event marketing strategist and professional
		copywriter with 15+ years of experience. You specialize in creating compelling,
		conversion-optimized email content for events.
		CRITICAL FORMATTING RULES:
		- ALWAYS format your response EXACTLY as: SUBJECT: [catchy subject line] BODY: [professional email body]
		- The email body should be properly structured with clear sections
		- Use professional formatting with appropriate spacing
		- Include a strong call-to-action
		- Make it engaging and persuasive
		- Maintain the specified tone throughout`)
}

// EmailPrompt assembles the user message for email generation.
func EmailPrompt(req event.Request) string {
	var sb strings.Builder
	sb.WriteString("Create a PROFESSIONAL GRADE event email that drives registrations and engagement.\n\n")
	sb.WriteString("EVENT BRIEF:\n")
	fmt.Fprintf(&sb, "- EVENT: %s\n", req.EventName)
	fmt.Fprintf(&sb, "- TYPE: %s - %s\n", titleCaser.String(req.EventType), lookup(eventLanguage, req.EventType, defaultEventLanguage))
	fmt.Fprintf(&sb, "- DATE: %s\n", req.Date)
	fmt.Fprintf(&sb, "- TIME: %s\n", req.Time)
	fmt.Fprintf(&sb, "- VENUE: %s\n", req.Venue)
	fmt.Fprintf(&sb, "- TARGET: %s\n", req.TargetAudience)
	fmt.Fprintf(&sb, "- TONE: %s - %s\n", titleCaser.String(req.Tone), ToneGuide(req.Tone))
	fmt.Fprintf(&sb, "- ORGANIZER: %s\n", req.Organizer())
	contact := req.ContactInfo
	if contact == "" {
		contact = "Please reply to this email for inquiries"
	}
	fmt.Fprintf(&sb, "- CONTACT: %s\n\n", contact)
	sb.WriteString(keyPointsBlock(req.KeyPoints))
	sb.WriteString("\n\nPROFESSIONAL REQUIREMENTS:\n")
	sb.WriteString("1. SUBJECT LINE: Must be compelling, under 60 characters, creates curiosity or urgency\n")
	sb.WriteString("2. OPENING: Strong hook that grabs attention immediately\n")
	sb.WriteString("3. VALUE PROPOSITION: Clear benefits and what attendees will gain\n")
	sb.WriteString("4. EVENT DETAILS: Well-organized, easy to scan information\n")
	sb.WriteString("5. CALL-TO-ACTION: Clear, compelling, and repeated\n")
	sb.WriteString("6. CLOSING: Professional sign-off with contact information\n\n")
	fmt.Fprintf(&sb, "TONE & STYLE: %s\n", ToneGuide(req.Tone))
	fmt.Fprintf(&sb, "AUDIENCE: Speaking to %s\n\n", req.TargetAudience)
	sb.WriteString("Make this email impossible to ignore and highly likely to drive registrations.")
	return sb.String()
}

// InvitationSystemInstruction is the fixed system message for invitation
// prose.
func InvitationSystemInstruction() string {
	return collapse(`You are a luxury event planner and professional invitation writer
		with expertise in creating exquisite, high-end invitations for prestigious
		events. Create invitations that convey exclusivity and importance, use elegant
		sophisticated language, maintain perfect formatting and structure, include all
		essential details beautifully, create a sense of anticipation and excitement,
		and use proper invitation etiquette. Use elegant spacing and structure, include
		proper salutation and closing, make details easy to read and beautiful.`)
}

// InvitationPrompt assembles the user message for invitation prose.
func InvitationPrompt(req event.Request) string {
	toneDesc := lookup(invitationToneGuides, req.Tone, defaultInvitationToneGuide)
	special := req.SpecialInstructions
	if special == "" {
		special = "An unforgettable experience awaits"
	}
	var sb strings.Builder
	sb.WriteString("Create an EXQUISITE and PROFESSIONAL event invitation worthy of a high-profile gathering.\n\n")
	sb.WriteString("EVENT ESSENCE:\n")
	fmt.Fprintf(&sb, "- EVENT: %s\n", req.EventName)
	fmt.Fprintf(&sb, "- TYPE: %s Event\n", titleCaser.String(req.EventType))
	fmt.Fprintf(&sb, "- DATE: %s\n", req.Date)
	fmt.Fprintf(&sb, "- TIME: %s\n", req.Time)
	fmt.Fprintf(&sb, "- VENUE: %s\n", req.Venue)
	fmt.Fprintf(&sb, "- DRESS CODE: %s\n", DressCode(req))
	fmt.Fprintf(&sb, "- RSVP: %s\n", RSVPLine(req))
	fmt.Fprintf(&sb, "- ORGANIZER: %s\n", req.Organizer())
	fmt.Fprintf(&sb, "- SPECIAL NOTES: %s\n", special)
	fmt.Fprintf(&sb, "- TONE: %s\n\n", toneDesc)
	sb.WriteString(collapse(`PREMIUM REQUIREMENTS: elegant opening with a grand
		salutation, beautiful presentation of the event name and purpose, artfully
		organized essential details, sophisticated response request, warm yet
		professional closing, perfect spacing and luxury presentation. Create an
		invitation that makes recipients feel honored to be invited and excited to
		attend.`))
	return sb.String()
}

// RSVPLine renders the response-request sentence from whichever RSVP fields
// are present.
func RSVPLine(req event.Request) string {
	switch {
	case req.RSVPDeadline != "" && req.RSVPEmail != "":
		return fmt.Sprintf("Kindly respond by %s to %s", req.RSVPDeadline, req.RSVPEmail)
	case req.RSVPDeadline != "":
		return fmt.Sprintf("Please RSVP by %s", req.RSVPDeadline)
	case req.RSVPEmail != "":
		return fmt.Sprintf("RSVP to: %s", req.RSVPEmail)
	default:
		return "Your presence is requested - please confirm attendance"
	}
}

// DressCode returns the requested dress code or the stock default.
func DressCode(req event.Request) string {
	if req.DressCode != "" {
		return req.DressCode
	}
	return "Elegant Attire"
}

func keyPointsBlock(points []string) string {
	if len(points) == 0 {
		return "KEY HIGHLIGHTS:\n" +
			"• Valuable learning and networking opportunities\n" +
			"• Expert insights and practical knowledge\n" +
			"• Memorable experiences and connections"
	}
	var sb strings.Builder
	sb.WriteString("KEY HIGHLIGHTS & BENEFITS:")
	for _, p := range points {
		sb.WriteString("\n• ")
		sb.WriteString(p)
	}
	return sb.String()
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v
	}
	return fallback
}

// collapse normalizes all runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
