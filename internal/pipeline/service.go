// Package pipeline orchestrates collateral generation: provider tiers first,
// deterministic templates last. Every pipeline returns a populated result
// with provenance; provider failures degrade the output, never the request.
package pipeline

import (
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"eventstudio/internal/infra"
	imgprov "eventstudio/internal/providers/image"
	"eventstudio/internal/providers/text"
	"eventstudio/internal/render"
)

// ModelTagTemplate marks collateral produced by the local template tier.
const ModelTagTemplate = "premium-template"

// Options wires a Service. Text may be nil when no chat provider is
// configured; Images are the ordered generation tiers.
type Options struct {
	Text     text.Generator
	Images   []imgprov.Generator
	Renderer *render.Renderer
	Rand     *rand.Rand
	Logger   *infra.Logger
}

// Service owns the three generation pipelines.
type Service struct {
	textGen   text.Generator
	imageGens []imgprov.Generator
	renderer  *render.Renderer
	rng       *rand.Rand
	logger    *infra.Logger
}

// New builds a Service, defaulting the renderer and randomness source.
func New(opts Options) *Service {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(rng)
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Service{
		textGen:   opts.Text,
		imageGens: opts.Images,
		renderer:  renderer,
		rng:       rng,
		logger:    logger,
	}
}

func (s *Service) textAvailable() bool {
	return s.textGen != nil && s.textGen.Available()
}
