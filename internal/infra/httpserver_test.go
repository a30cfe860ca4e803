package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerFloorsWriteTimeout(t *testing.T) {
	cfg := &Config{
		Port:             "8080",
		HTTPReadTimeout:  15 * time.Second,
		HTTPWriteTimeout: 30 * time.Second,
		HTTPIdleTimeout:  60 * time.Second,
	}
	s := NewHTTPServer(cfg, http.NotFoundHandler())
	if s.server.WriteTimeout != minWriteTimeout {
		t.Fatalf("WriteTimeout = %v, want floor %v", s.server.WriteTimeout, minWriteTimeout)
	}
}

func TestNewHTTPServerKeepsGenerousWriteTimeout(t *testing.T) {
	cfg := &Config{
		Port:             "8080",
		HTTPWriteTimeout: 10 * time.Minute,
	}
	s := NewHTTPServer(cfg, http.NotFoundHandler())
	if s.server.WriteTimeout != 10*time.Minute {
		t.Fatalf("WriteTimeout = %v, want configured 10m", s.server.WriteTimeout)
	}
}
