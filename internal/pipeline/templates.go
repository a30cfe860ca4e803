package pipeline

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"eventstudio/internal/domain/event"
	"eventstudio/internal/prompts"
)

var pipelineTitleCaser = cases.Title(language.English)

// Subject templates per tone; %s is the event name. The chooser draws from
// the injected randomness source so tests can pin the pick.
var subjectTemplates = map[string][]string{
	"formal": {
		"You're Invited: %s",
		"Join Us for %s",
		"Official Invitation: %s",
	},
	"casual": {
		"Don't Miss %s!",
		"%s is Almost Here!",
		"Save Your Spot at %s",
	},
	"enthusiastic": {
		"%s is Going to Be Amazing!",
		"Get Ready for %s!",
		"Last Chance to Join %s!",
	},
	"informative": {
		"%s: Everything You Need to Know",
		"Registration Open: %s",
		"%s - Details Inside",
	},
	"fun": {
		"Guess What? %s is Coming!",
		"%s: Be There or Miss Out!",
		"The Countdown to %s Begins!",
	},
}

func chooseSubject(req event.Request, rng *rand.Rand) string {
	candidates, ok := subjectTemplates[req.Tone]
	if !ok {
		candidates = subjectTemplates["formal"]
	}
	return fmt.Sprintf(candidates[rng.Intn(len(candidates))], req.EventName)
}

// templateEmail renders the deterministic email used when no chat provider
// answered.
func templateEmail(req event.Request, rng *rand.Rand) (subject, body string) {
	subject = chooseSubject(req, rng)

	audience := req.TargetAudience
	if audience == "" {
		audience = "valued guests"
	}
	contact := req.ContactInfo
	if contact == "" {
		contact = "Please reply to this email for inquiries"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear %s,\n\n", pipelineTitleCaser.String(audience))
	fmt.Fprintf(&sb, "We are delighted to invite you to %s, a %s event crafted with you in mind.\n\n",
		req.EventName, pipelineTitleCaser.String(req.EventType))
	sb.WriteString("Event Details:\n")
	fmt.Fprintf(&sb, "Date: %s\n", req.Date)
	fmt.Fprintf(&sb, "Time: %s\n", req.Time)
	fmt.Fprintf(&sb, "Venue: %s\n\n", req.Venue)
	if len(req.KeyPoints) > 0 {
		sb.WriteString("What to expect:\n")
		for _, p := range req.KeyPoints {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Seats are limited, so we encourage you to confirm your attendance early. ")
	sb.WriteString("We would be honored to have you with us.\n\n")
	fmt.Fprintf(&sb, "Contact: %s\n\n", contact)
	fmt.Fprintf(&sb, "Warm regards,\n%s", req.Organizer())
	return subject, sb.String()
}

// templateInvitation renders the deterministic invitation prose.
func templateInvitation(req event.Request) string {
	var sb strings.Builder
	sb.WriteString("You Are Cordially Invited\n\n")
	fmt.Fprintf(&sb, "%s\n", req.EventName)
	fmt.Fprintf(&sb, "A %s Event\n\n", pipelineTitleCaser.String(req.EventType))
	fmt.Fprintf(&sb, "Join us on %s at %s\n", req.Date, req.Time)
	fmt.Fprintf(&sb, "%s\n\n", req.Venue)
	fmt.Fprintf(&sb, "Dress Code: %s\n", prompts.DressCode(req))
	fmt.Fprintf(&sb, "%s\n", prompts.RSVPLine(req))
	if req.SpecialInstructions != "" {
		fmt.Fprintf(&sb, "\n%s\n", req.SpecialInstructions)
	}
	return sb.String()
}

const invitationClosing = "We look forward to celebrating with you."

// formatInvitation normalizes provider or template prose into the final
// presentation: trimmed lines, collapsed blank runs, and an enforced closing
// with the organizer's signature.
func formatInvitation(prose string, req event.Request) string {
	body := normalizeBlock(prose)
	if !strings.Contains(strings.ToLower(body), "look forward") {
		body += "\n\n" + invitationClosing
	}
	signature := "Warm regards,"
	if !strings.Contains(body, req.Organizer()) {
		body += "\n\n" + signature + "\n" + req.Organizer()
	}
	return body
}

// normalizeBlock trims per-line trailing space and collapses runs of three or
// more newlines into paragraph breaks.
func normalizeBlock(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return out
}

// formatEmailBody normalizes an email body for presentation and capitalizes
// the first letter of every paragraph. Applied to provider and template
// output alike.
func formatEmailBody(s string) string {
	paragraphs := strings.Split(normalizeBlock(s), "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = capitalizeFirst(p)
	}
	return strings.Join(paragraphs, "\n\n")
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
