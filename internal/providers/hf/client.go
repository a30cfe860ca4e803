package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eventstudio/internal/infra"
)

// Sentinel errors for the failure classes callers branch on.
var (
	ErrMissingToken = errors.New("hf: api token is required")
	ErrModelLoading = errors.New("hf: model is still loading")
	ErrRateLimited  = errors.New("hf: rate limited")
)

// StatusError carries the HTTP status for failures outside the retryable
// classes.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hf: status %d: %s", e.Code, e.Body)
}

// Options configures the Hugging Face inference client. Zero values get
// production defaults; tests inject Sleep to make backoff instantaneous.
type Options struct {
	APIToken          string
	BaseURL           string
	HTTPClient        *http.Client
	Logger            *infra.Logger
	RequestTimeout    time.Duration
	ProbeTimeout      time.Duration
	MaxLoadingRetries int
	LoadingBackoff    time.Duration
	RateLimitCooldown time.Duration
	TimeoutRetries    int
	TimeoutBackoff    time.Duration
	Sleep             func(time.Duration)
}

// Client calls hosted inference endpoints for text-to-image models and owns
// the per-failure-class retry policy.
type Client struct {
	apiToken          string
	baseURL           string
	httpClient        *http.Client
	probeClient       *http.Client
	logger            *infra.Logger
	maxLoadingRetries int
	loadingBackoff    time.Duration
	rateLimitCooldown time.Duration
	timeoutRetries    int
	timeoutBackoff    time.Duration
	sleep             func(time.Duration)
}

// ImageRequest captures one text-to-image invocation.
type ImageRequest struct {
	Model          string
	Prompt         string
	NegativePrompt string
	Steps          int
	GuidanceScale  float64
	Width          int
	Height         int
}

type inferencePayload struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceParameters struct {
	NumInferenceSteps int     `json:"num_inference_steps,omitempty"`
	GuidanceScale     float64 `json:"guidance_scale,omitempty"`
	Width             int     `json:"width,omitempty"`
	Height            int     `json:"height,omitempty"`
	NegativePrompt    string  `json:"negative_prompt,omitempty"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

// NewClient constructs a client with production defaults.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	probeTimeout := opts.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = 10 * time.Second
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	maxLoading := opts.MaxLoadingRetries
	if maxLoading <= 0 {
		maxLoading = 3
	}
	loadingBackoff := opts.LoadingBackoff
	if loadingBackoff <= 0 {
		loadingBackoff = 15 * time.Second
	}
	cooldown := opts.RateLimitCooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	timeoutRetries := opts.TimeoutRetries
	if timeoutRetries <= 0 {
		timeoutRetries = 2
	}
	timeoutBackoff := opts.TimeoutBackoff
	if timeoutBackoff <= 0 {
		timeoutBackoff = 5 * time.Second
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiToken:          strings.TrimSpace(opts.APIToken),
		baseURL:           baseURL,
		httpClient:        httpClient,
		probeClient:       &http.Client{Timeout: probeTimeout},
		logger:            logger,
		maxLoadingRetries: maxLoading,
		loadingBackoff:    loadingBackoff,
		rateLimitCooldown: cooldown,
		timeoutRetries:    timeoutRetries,
		timeoutBackoff:    timeoutBackoff,
		sleep:             sleep,
	}, nil
}

// HasCredentials reports whether a token is configured.
func (c *Client) HasCredentials() bool {
	return c.apiToken != ""
}

// ProbeModel performs a lightweight availability check against the model's
// status endpoint. Only a definitive 404 marks the model unavailable; network
// errors and other statuses assume availability so a flaky probe never blocks
// a generation attempt.
func (c *Client) ProbeModel(ctx context.Context, model string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status/"+model, nil)
	if err != nil {
		return true
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	resp, err := c.probeClient.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		c.logger.Debug().Str("model", model).Msg("hf: model status probe returned 404")
		return false
	}
	return true
}

// GenerateImage runs one text-to-image request, applying the retry policy per
// failure class: model-loading 503s get linear backoff, a rate limit gets one
// cooldown retry, a timed-out request gets two fixed-delay retries, and any
// other HTTP failure gets a single retry with simplified parameters before the
// error is surfaced.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingToken
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return nil, errors.New("hf: model is required")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, errors.New("hf: prompt is required")
	}

	cooledDown := false
	timeoutsLeft := c.timeoutRetries
	simplified := false
	payload := buildPayload(req, false)

	for attempt := 1; ; attempt++ {
		data, err := c.invoke(ctx, model, payload)
		if err == nil {
			return data, nil
		}
		switch {
		case errors.Is(err, ErrModelLoading):
			if attempt >= c.maxLoadingRetries {
				return nil, fmt.Errorf("hf: model %s still loading after %d attempts: %w", model, attempt, ErrModelLoading)
			}
			delay := c.loadingBackoff * time.Duration(attempt)
			c.logger.Info().
				Str("model", model).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("hf: model loading, backing off")
			c.sleep(delay)
		case errors.Is(err, ErrRateLimited):
			if cooledDown {
				return nil, err
			}
			cooledDown = true
			c.logger.Warn().
				Str("model", model).
				Dur("cooldown", c.rateLimitCooldown).
				Msg("hf: rate limited, cooling down")
			c.sleep(c.rateLimitCooldown)
		case isTimeout(err):
			if timeoutsLeft <= 0 {
				return nil, fmt.Errorf("hf: model %s timed out: %w", model, err)
			}
			timeoutsLeft--
			c.logger.Warn().
				Str("model", model).
				Int("retries_left", timeoutsLeft).
				Msg("hf: request timed out, retrying")
			c.sleep(c.timeoutBackoff)
		default:
			if simplified {
				return nil, err
			}
			simplified = true
			payload = buildPayload(req, true)
			c.logger.Warn().
				Str("model", model).
				Err(err).
				Msg("hf: request failed, retrying with simplified parameters")
		}
	}
}

func buildPayload(req ImageRequest, simplified bool) inferencePayload {
	p := inferencePayload{
		Inputs: strings.TrimSpace(req.Prompt),
		Parameters: inferenceParameters{
			NumInferenceSteps: req.Steps,
			GuidanceScale:     req.GuidanceScale,
			Width:             req.Width,
			Height:            req.Height,
			NegativePrompt:    strings.TrimSpace(req.NegativePrompt),
		},
		Options: inferenceOptions{WaitForModel: true, UseCache: false},
	}
	if simplified {
		// Strip the tuning knobs that most often trip stricter endpoints and
		// let the model fall back to its server-side defaults.
		p.Parameters = inferenceParameters{NegativePrompt: p.Parameters.NegativePrompt}
	}
	return p
}

func (c *Client) invoke(ctx context.Context, model string, payload inferencePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("hf: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("hf: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("hf: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hf: read response: %w", err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if len(raw) == 0 {
			return nil, errors.New("hf: empty image response")
		}
		return raw, nil
	case http.StatusServiceUnavailable:
		return nil, ErrModelLoading
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(raw), 200)}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// The default transport reports client-side timeouts as plain url.Errors.
	return strings.Contains(err.Error(), "Client.Timeout exceeded")
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
