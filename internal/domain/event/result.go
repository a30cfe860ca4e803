package event

// Status values reported in result envelopes. Pipelines template around every
// provider failure, so StatusError only ever surfaces for defects outside the
// generation core.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// EmailResult is the envelope returned by the email pipeline.
type EmailResult struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	ModelUsed string `json:"model_used"`
}

// PosterResult is the envelope returned by the poster pipeline. ImageURL is an
// inline data URL so the core has no filesystem dependency.
type PosterResult struct {
	ImageURL   string `json:"image_url"`
	PromptUsed string `json:"prompt_used"`
	Status     string `json:"status"`
	ModelUsed  string `json:"model_used"`
	Dimensions string `json:"dimensions,omitempty"`
	FileSize   string `json:"file_size,omitempty"`
}

// InvitationResult is the envelope returned by the invitation pipeline.
// QRCodeURL is empty when no RSVP email was supplied. TextComponents is the
// structural breakdown of the invitation for downstream editing.
type InvitationResult struct {
	InvitationText      string            `json:"invitation_text"`
	FormattedInvitation string            `json:"formatted_invitation"`
	DesignBackground    string            `json:"design_background,omitempty"`
	QRCodeURL           string            `json:"qr_code_url,omitempty"`
	TextComponents      map[string]string `json:"text_components,omitempty"`
	Status              string            `json:"status"`
	ModelUsed           string            `json:"model_used"`
}
