package hf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, serverURL string, slept *[]time.Duration) *Client {
	t.Helper()
	client, err := NewClient(Options{
		APIToken: "hf_test_token",
		BaseURL:  serverURL,
		Sleep: func(d time.Duration) {
			if slept != nil {
				*slept = append(*slept, d)
			}
		},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestGenerateImageRetriesWhileModelLoads(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	var slept []time.Duration
	client := testClient(t, server.URL, &slept)

	data, err := client.GenerateImage(context.Background(), ImageRequest{
		Model:  "stabilityai/stable-diffusion-xl-base-1.0",
		Prompt: "poster background",
	})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected payload: %q", data)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	want := []time.Duration{15 * time.Second, 30 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(slept))
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("sleep %d: expected %v, got %v", i, want[i], slept[i])
		}
	}
}

func TestGenerateImageGivesUpAfterLoadingRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.GenerateImage(context.Background(), ImageRequest{Model: "m", Prompt: "p"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateImageRateLimitCooldownOnce(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	var slept []time.Duration
	client := testClient(t, server.URL, &slept)

	_, err := client.GenerateImage(context.Background(), ImageRequest{Model: "m", Prompt: "p"})
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	if calls != 2 {
		t.Fatalf("expected exactly one cooldown retry, got %d calls", calls)
	}
	if len(slept) != 1 || slept[0] != 30*time.Second {
		t.Fatalf("expected single 30s cooldown, got %v", slept)
	}
}

func TestGenerateImageSimplifiedRetryDropsTuning(t *testing.T) {
	var payloads []inferencePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p inferencePayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		payloads = append(payloads, p)
		if len(payloads) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid parameters"}`))
			return
		}
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.GenerateImage(context.Background(), ImageRequest{
		Model:          "m",
		Prompt:         "p",
		NegativePrompt: "blurry",
		Steps:          50,
		GuidanceScale:  8.5,
		Width:          1024,
		Height:         1024,
	})
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(payloads))
	}
	if payloads[0].Parameters.NumInferenceSteps != 50 {
		t.Fatalf("first attempt lost steps: %+v", payloads[0].Parameters)
	}
	second := payloads[1].Parameters
	if second.NumInferenceSteps != 0 || second.Width != 0 || second.Height != 0 {
		t.Fatalf("simplified retry kept tuning parameters: %+v", second)
	}
	if second.NegativePrompt != "blurry" {
		t.Fatalf("simplified retry dropped negative prompt: %+v", second)
	}
}

func TestGenerateImageRequiresToken(t *testing.T) {
	client, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.HasCredentials() {
		t.Fatal("expected no credentials")
	}
	if _, err := client.GenerateImage(context.Background(), ImageRequest{Model: "m", Prompt: "p"}); err != ErrMissingToken {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestProbeModel(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"available", http.StatusOK, true},
		{"missing", http.StatusNotFound, false},
		{"ambiguous", http.StatusInternalServerError, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()
			client := testClient(t, server.URL, nil)
			if got := client.ProbeModel(context.Background(), "some/model"); got != tc.want {
				t.Fatalf("ProbeModel = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProbeModelNetworkErrorAssumesAvailable(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:1", nil)
	if !client.ProbeModel(context.Background(), "some/model") {
		t.Fatal("network error should assume availability")
	}
}
