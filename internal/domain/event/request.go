package event

import (
	"strings"
)

// EventType categorizes the kind of gathering being promoted.
type EventType string

const (
	TypeWorkshop    EventType = "workshop"
	TypeConference  EventType = "conference"
	TypeSocial      EventType = "social"
	TypeSports      EventType = "sports"
	TypeCultural    EventType = "cultural"
	TypeTech        EventType = "tech"
	TypeSeminar     EventType = "seminar"
	TypeCompetition EventType = "competition"
)

// Theme names the visual style driving color schemes and prompt fragments.
type Theme string

const (
	ThemeCyberpunk    Theme = "cyberpunk"
	ThemeElegant      Theme = "elegant"
	ThemeMinimalistic Theme = "minimalistic"
	ThemeVibrant      Theme = "vibrant"
	ThemeProfessional Theme = "professional"
	ThemeNature       Theme = "nature"
	ThemeArtistic     Theme = "artistic"
	ThemeTech         Theme = "tech"
)

// Tone controls the register of generated copy.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneInformative  Tone = "informative"
	ToneFun          Tone = "fun"
)

// GenerationType discriminates poster output modes.
type GenerationType string

const (
	GenerationBackground GenerationType = "background"
	GenerationFullPoster GenerationType = "full_poster"
)

// Request is the normalized structured input shared by every generation
// pipeline. The core treats it as read-only after Normalize.
type Request struct {
	EventName      string   `json:"event_name"`
	EventType      string   `json:"event_type"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Venue          string   `json:"venue"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Theme          string   `json:"theme,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	KeyPoints      []string `json:"key_points,omitempty"`

	OrganizerName       string `json:"organizer_name,omitempty"`
	ContactInfo         string `json:"contact_info,omitempty"`
	RSVPEmail           string `json:"rsvp_email,omitempty"`
	RSVPDeadline        string `json:"rsvp_deadline,omitempty"`
	DressCode           string `json:"dress_code,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`

	ColorScheme            string `json:"color_scheme,omitempty"`
	AdditionalInstructions string `json:"additional_instructions,omitempty"`

	CrispMode      bool   `json:"crisp_mode,omitempty"`
	Realism        string `json:"realism,omitempty"`
	CameraStyle    string `json:"camera_style,omitempty"`
	MaterialAccent string `json:"material_accent,omitempty"`
	LayoutVariant  string `json:"layout_variant,omitempty"`
	GenerationType string `json:"generation_type,omitempty"`
}

// Normalize trims free-text fields, lower-cases enum-adjacent strings and
// applies defaults. Unrecognized theme/tone/type values are kept as-is; every
// downstream lookup table carries its own default branch so the core never
// rejects them.
func (r *Request) Normalize() {
	r.EventName = strings.TrimSpace(r.EventName)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Venue = strings.TrimSpace(r.Venue)
	r.TargetAudience = strings.TrimSpace(r.TargetAudience)
	r.OrganizerName = strings.TrimSpace(r.OrganizerName)
	r.ContactInfo = strings.TrimSpace(r.ContactInfo)
	r.RSVPEmail = strings.TrimSpace(r.RSVPEmail)
	r.RSVPDeadline = strings.TrimSpace(r.RSVPDeadline)
	r.DressCode = strings.TrimSpace(r.DressCode)
	r.SpecialInstructions = strings.TrimSpace(r.SpecialInstructions)

	r.EventType = normalizeEnum(r.EventType, "")
	r.Theme = normalizeEnum(r.Theme, string(ThemeProfessional))
	r.Tone = normalizeEnum(r.Tone, string(ToneFormal))
	r.Realism = normalizeEnum(r.Realism, "high")
	r.CameraStyle = normalizeEnum(r.CameraStyle, "prime")
	r.MaterialAccent = normalizeEnum(r.MaterialAccent, "none")
	r.LayoutVariant = normalizeEnum(r.LayoutVariant, "classic")
	r.GenerationType = normalizeEnum(r.GenerationType, string(GenerationFullPoster))

	points := r.KeyPoints[:0]
	for _, p := range r.KeyPoints {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	r.KeyPoints = points
}

// Validate reports the missing required fields. Validation happens once at the
// HTTP boundary; pipelines assume a valid request.
func (r *Request) Validate() []string {
	var missing []string
	if r.EventName == "" {
		missing = append(missing, "event_name")
	}
	if r.EventType == "" {
		missing = append(missing, "event_type")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.Time == "" {
		missing = append(missing, "time")
	}
	if r.Venue == "" {
		missing = append(missing, "venue")
	}
	return missing
}

// Organizer returns the organizer name or the stock fallback used across
// templates.
func (r *Request) Organizer() string {
	if r.OrganizerName != "" {
		return r.OrganizerName
	}
	return "Event Organizing Team"
}

func normalizeEnum(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
