// Package image adapts the concrete provider clients to a single generator
// contract the pipelines iterate over. Adapters never fall back between each
// other; tier ordering and the template fallback live in the pipeline layer.
package image

import "context"

// Request is the provider-agnostic image generation input.
type Request struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	Theme          string
}

// Asset is a generated image plus the provenance tag reported to clients.
type Asset struct {
	Data     []byte
	ModelTag string
}

// Generator is the contract every image backend satisfies.
type Generator interface {
	// Available reports whether the backend is worth attempting at all.
	Available(ctx context.Context) bool
	// Generate produces one image or an error; callers treat any error as a
	// signal to move to the next tier.
	Generate(ctx context.Context, req Request) (*Asset, error)
	// Name identifies the backend in logs and status reports.
	Name() string
}
