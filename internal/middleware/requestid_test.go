package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDEchoesValidInboundID(t *testing.T) {
	inbound := uuid.NewString()
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", inbound)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != inbound {
		t.Fatalf("context id = %q, want inbound %q", seen, inbound)
	}
	if rec.Header().Get("X-Request-ID") != inbound {
		t.Fatalf("response id = %q, want inbound %q", rec.Header().Get("X-Request-ID"), inbound)
	}
}

func TestRequestIDReplacesMalformedInboundID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
	}{
		{"missing", ""},
		{"garbage", "not-a-uuid"},
		{"injection attempt", "abc\ndef"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set("X-Request-ID", tc.inbound)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get("X-Request-ID")
			if got == tc.inbound {
				t.Fatalf("malformed id %q was echoed", tc.inbound)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("minted id %q is not a uuid: %v", got, err)
			}
		})
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
