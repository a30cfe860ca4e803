// Package text adapts chat-completion clients to the generator contract the
// copy pipelines consume. Sampling parameters are fixed per content kind so
// prompt builders stay free of provider tuning.
package text

import (
	"context"

	"eventstudio/internal/providers/groq"
)

// Kind selects the sampling profile for a completion.
type Kind string

const (
	KindEmail      Kind = "email"
	KindInvitation Kind = "invitation"
)

// Request is the provider-agnostic completion input.
type Request struct {
	Kind   Kind
	System string
	Prompt string
}

// Generator is the contract every text backend satisfies.
type Generator interface {
	Available() bool
	Complete(ctx context.Context, req Request) (string, error)
	// ModelTag is the provenance identifier reported to clients.
	ModelTag() string
}

type samplingProfile struct {
	temperature float64
	topP        float64
	maxTokens   int
}

// Email copy samples hotter than invitation prose; invitations favor a
// steadier register.
var samplingProfiles = map[Kind]samplingProfile{
	KindEmail:      {temperature: 0.8, topP: 0.9, maxTokens: 1500},
	KindInvitation: {temperature: 0.7, topP: 0.9, maxTokens: 1200},
}

// GroqGenerator backs the generator contract with the chat-completion client.
type GroqGenerator struct {
	client *groq.Client
}

var _ Generator = (*GroqGenerator)(nil)

// NewGroqGenerator wraps a configured client.
func NewGroqGenerator(client *groq.Client) *GroqGenerator {
	return &GroqGenerator{client: client}
}

// Available implements Generator.
func (g *GroqGenerator) Available() bool {
	return g.client != nil && g.client.HasCredentials()
}

// ModelTag implements Generator.
func (g *GroqGenerator) ModelTag() string {
	return g.client.ChatModel()
}

// Complete implements Generator.
func (g *GroqGenerator) Complete(ctx context.Context, req Request) (string, error) {
	profile, ok := samplingProfiles[req.Kind]
	if !ok {
		profile = samplingProfiles[KindEmail]
	}
	return g.client.Complete(ctx, groq.ChatRequest{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: profile.temperature,
		TopP:        profile.topP,
		MaxTokens:   profile.maxTokens,
	})
}
