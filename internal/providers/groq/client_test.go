package groq

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasCredentials(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"valid", "gsk_live_abc123", true},
		{"empty", "", false},
		{"wrong prefix", "sk-abc123", false},
		{"whitespace only", "   ", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(Options{APIKey: tc.key})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if got := client.HasCredentials(); got != tc.want {
				t.Fatalf("HasCredentials = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompleteParsesChoice(t *testing.T) {
	var captured chatPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer gsk_test" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  SUBJECT: Hello\nBODY: World  "}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(Options{APIKey: "gsk_test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	text, err := client.Complete(context.Background(), ChatRequest{
		System:      "system text",
		Prompt:      "user text",
		Temperature: 0.8,
		TopP:        0.9,
		MaxTokens:   1500,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "SUBJECT: Hello\nBODY: World" {
		t.Fatalf("unexpected completion: %q", text)
	}
	if captured.Temperature != 0.8 || captured.TopP != 0.9 || captured.MaxTokens != 1500 {
		t.Fatalf("sampling parameters not forwarded: %+v", captured)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
}

func TestCompleteWithoutCredentials(t *testing.T) {
	client, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Complete(context.Background(), ChatRequest{Prompt: "hi"}); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
	}))
	defer server.Close()

	client, err := NewClient(Options{APIKey: "gsk_bad", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Complete(context.Background(), ChatRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateImageInlinePayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"b64_json": encoded}},
		})
	}))
	defer server.Close()

	client, err := NewClient(Options{APIKey: "gsk_test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	asset, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "poster", Quality: "hd"})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(asset.Data) != "png-bytes" {
		t.Fatalf("unexpected asset data: %q", asset.Data)
	}
}

func TestGenerateImageDownloadsURL(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/images/generations", func(w http.ResponseWriter, r *http.Request) {
		var payload imagePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload.Size != "1024x1024" {
			t.Errorf("expected default size, got %q", payload.Size)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"url": server.URL + "/asset.png"}},
		})
	})
	mux.HandleFunc("/asset.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("downloaded-bytes"))
	})

	client, err := NewClient(Options{APIKey: "gsk_test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	asset, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "poster"})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(asset.Data) != "downloaded-bytes" {
		t.Fatalf("unexpected asset data: %q", asset.Data)
	}
	if asset.Format != "image/png" {
		t.Fatalf("unexpected format: %q", asset.Format)
	}
}
