package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventstudio/internal/providers/hf"
)

func TestPreferredModel(t *testing.T) {
	tests := []struct {
		theme string
		want  string
	}{
		{"elegant", "stabilityai/stable-diffusion-xl-base-1.0"},
		{"professional", "stabilityai/stable-diffusion-xl-base-1.0"},
		{"cyberpunk", "black-forest-labs/FLUX.1-schnell"},
		{"tech", "black-forest-labs/FLUX.1-schnell"},
		{"", "black-forest-labs/FLUX.1-schnell"},
	}
	for _, tc := range tests {
		if got := PreferredModel(tc.theme); got != tc.want {
			t.Errorf("PreferredModel(%q) = %q, want %q", tc.theme, got, tc.want)
		}
	}
}

func TestModelTag(t *testing.T) {
	if got := ModelTag("stabilityai/stable-diffusion-xl-base-1.0"); got != "stable-diffusion-xl" {
		t.Fatalf("ModelTag = %q", got)
	}
	if got := ModelTag("someorg/Custom-Model"); got != "custom-model" {
		t.Fatalf("ModelTag fallback = %q", got)
	}
}

func TestHFGeneratorSkipsUnavailableModel(t *testing.T) {
	preferred := PreferredModel("cyberpunk")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/status/"):
			if strings.Contains(r.URL.Path, preferred) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		case strings.HasPrefix(r.URL.Path, "/models/"):
			if strings.Contains(r.URL.Path, preferred) {
				t.Errorf("generated against model whose probe said unavailable")
			}
			w.Write([]byte("png-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := hf.NewClient(hf.Options{
		APIToken: "hf_token",
		BaseURL:  server.URL,
		Sleep:    func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	gen := NewHFGenerator(client, nil)

	asset, err := gen.Generate(context.Background(), Request{Prompt: "poster", Theme: "cyberpunk"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(asset.Data) != "png-bytes" {
		t.Fatalf("unexpected data: %q", asset.Data)
	}
	if asset.ModelTag != "stable-diffusion-xl" {
		t.Fatalf("unexpected tag: %q", asset.ModelTag)
	}
}

func TestHFGeneratorUnavailableWithoutToken(t *testing.T) {
	client, err := hf.NewClient(hf.Options{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	gen := NewHFGenerator(client, nil)
	if gen.Available(context.Background()) {
		t.Fatal("expected unavailable without token")
	}
	if _, err := gen.Generate(context.Background(), Request{Prompt: "p"}); err == nil {
		t.Fatal("expected error without token")
	}
}
