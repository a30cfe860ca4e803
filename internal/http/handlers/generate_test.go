package handlers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventstudio/internal/adapter/repo"
	"eventstudio/internal/pipeline"
)

func templateOnlyApp() *App {
	svc := pipeline.New(pipeline.Options{Rand: rand.New(rand.NewSource(11))})
	return NewApp(svc, nil, nil, nil, nil)
}

const validBody = `{
	"event_name": "Tech Fest 2025",
	"event_type": "tech",
	"date": "March 15, 2025",
	"time": "10:00 AM",
	"venue": "Hall A, Innovation Center",
	"theme": "cyberpunk",
	"rsvp_email": "rsvp@techfest.example"
}`

func TestGenerateEmailEndpoint(t *testing.T) {
	app := templateOnlyApp()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-email", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	app.GenerateEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Subject   string `json:"subject"`
		Body      string `json:"body"`
		Status    string `json:"status"`
		ModelUsed string `json:"model_used"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" || resp.ModelUsed != pipeline.ModelTagTemplate {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if !strings.Contains(resp.Body, "Hall A, Innovation Center") {
		t.Fatalf("body missing venue: %q", resp.Body)
	}
}

func TestGenerateEmailRejectsMissingFields(t *testing.T) {
	app := templateOnlyApp()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-email",
		strings.NewReader(`{"event_name": "X"}`))
	rec := httptest.NewRecorder()
	app.GenerateEmail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "event_type") {
		t.Fatalf("missing fields not reported: %s", rec.Body)
	}
}

func TestGenerateEmailRejectsMalformedJSON(t *testing.T) {
	app := templateOnlyApp()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-email", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	app.GenerateEmail(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGeneratePosterEndpoint(t *testing.T) {
	app := templateOnlyApp()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-poster", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	app.GeneratePoster(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		ImageURL   string `json:"image_url"`
		Dimensions string `json:"dimensions"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" || resp.Dimensions != "1200x1600" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if !strings.HasPrefix(resp.ImageURL, "data:image/png;base64,") {
		t.Fatal("expected inline data url")
	}
}

func TestGenerateInvitationEndpoint(t *testing.T) {
	app := templateOnlyApp()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-invitation", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	app.GenerateInvitation(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		FormattedInvitation string `json:"formatted_invitation"`
		QRCodeURL           string `json:"qr_code_url"`
		Status              string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" || resp.QRCodeURL == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

type recordingHistory struct {
	saved chan string
}

func (h *recordingHistory) Save(_ context.Context, generationType string, _, _ any) error {
	h.saved <- generationType
	return nil
}

func (h *recordingHistory) Recent(context.Context, int) ([]repo.HistoryEntry, error) {
	return nil, nil
}

func TestGenerateRecordsHistoryInBackground(t *testing.T) {
	history := &recordingHistory{saved: make(chan string, 1)}
	svc := pipeline.New(pipeline.Options{Rand: rand.New(rand.NewSource(11))})
	app := NewApp(svc, nil, nil, history, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-email", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	app.GenerateEmail(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	select {
	case got := <-history.saved:
		if got != "email" {
			t.Fatalf("history save type = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("history save not observed")
	}
}
