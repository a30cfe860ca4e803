package pipeline

import (
	"strings"

	"eventstudio/internal/domain/event"
	"eventstudio/internal/prompts"
)

// parseEmail splits a completion into subject and body using the
// SUBJECT:/BODY: contract. Completions that ignore the contract degrade to
// first-line-as-subject rather than failing.
func parseEmail(raw string) (subject, body string) {
	upper := strings.ToUpper(raw)
	subjIdx := strings.Index(upper, "SUBJECT:")
	bodyIdx := strings.Index(upper, "BODY:")
	if subjIdx >= 0 && bodyIdx > subjIdx {
		subject = strings.TrimSpace(raw[subjIdx+len("SUBJECT:") : bodyIdx])
		body = strings.TrimSpace(raw[bodyIdx+len("BODY:"):])
		return subject, formatEmailBody(body)
	}
	lines := strings.SplitN(strings.TrimSpace(raw), "\n", 2)
	subject = strings.TrimSpace(strings.TrimPrefix(lines[0], "Subject:"))
	if len(lines) > 1 {
		body = formatEmailBody(lines[1])
	}
	return subject, body
}

// invitationComponents extracts the structural fields clients edit
// downstream. Parsed values come from the request rather than fuzzy-matching
// prose; the prose is presentation, the request is truth.
func invitationComponents(req event.Request) map[string]string {
	return map[string]string{
		"title":      req.EventName,
		"event_type": req.EventType,
		"date":       req.Date,
		"time":       req.Time,
		"venue":      req.Venue,
		"dress_code": prompts.DressCode(req),
		"rsvp":       prompts.RSVPLine(req),
		"organizer":  req.Organizer(),
	}
}
