package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tagalog-nlp-api/pkg/nlp"
)

// ErrModelUnavailable reports that a syntax-requiring analysis could not
// run because no model is configured or the model failed.
var ErrModelUnavailable = errors.New("syntax-capable model unavailable")

// Model status values reported by the health endpoints.
const (
	ModelStatusLoaded      = "loaded"
	ModelStatusUnavailable = "unavailable"
)

// TaggingService selects between the model-backed provider and the lexicon
// fallback. The game components depend on it through the nlp.Provider
// interface and never see which variant answered; the source of each
// analysis is reported separately for the frontend.
type TaggingService struct {
	primary  nlp.Provider
	fallback nlp.Provider
}

// NewTaggingService creates the service. primary may be nil when no model
// endpoint is configured or the model failed its startup health check;
// every request then uses the fallback.
func NewTaggingService(primary, fallback nlp.Provider) *TaggingService {
	if primary == nil {
		log.Printf("tagging service: no model provider, all requests use the %s tagger", fallback.Name())
	}
	return &TaggingService{primary: primary, fallback: fallback}
}

// Name reports the active provider's name.
func (s *TaggingService) Name() string {
	return s.active().Name()
}

// HasSyntax reports whether the active provider produces syntax output.
func (s *TaggingService) HasSyntax() bool {
	return s.active().HasSyntax()
}

// Analyze tags sentence with the model, falling back to the lexicon when
// the model errors. Model errors are logged and never propagate; the
// fallback itself cannot fail.
func (s *TaggingService) Analyze(ctx context.Context, sentence string) (*nlp.Analysis, error) {
	analysis, _, err := s.AnalyzeWithSource(ctx, sentence)
	return analysis, err
}

// AnalyzeWithSource is Analyze plus the name of the provider that produced
// the result.
func (s *TaggingService) AnalyzeWithSource(ctx context.Context, sentence string) (*nlp.Analysis, string, error) {
	if s.primary != nil {
		analysis, err := s.primary.Analyze(ctx, sentence)
		if err == nil {
			return analysis, s.primary.Name(), nil
		}
		log.Printf("tagging service: %s failed for %q, falling back: %v", s.primary.Name(), sentence, err)
	}
	analysis, err := s.fallback.Analyze(ctx, sentence)
	return analysis, s.fallback.Name(), err
}

// AnalyzeSyntax tags sentence with the model only and never falls back.
// Callers that grade dependency structure use this instead of Analyze:
// lexicon output has no syntax, so degrading silently would turn a model
// outage into a wrong verdict about the learner's sentence.
func (s *TaggingService) AnalyzeSyntax(ctx context.Context, sentence string) (*nlp.Analysis, error) {
	if s.primary == nil {
		return nil, ErrModelUnavailable
	}
	analysis, err := s.primary.Analyze(ctx, sentence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return analysis, nil
}

// ModelStatus reports whether the model-backed provider is in use.
func (s *TaggingService) ModelStatus() string {
	if s.primary != nil {
		return ModelStatusLoaded
	}
	return ModelStatusUnavailable
}

func (s *TaggingService) active() nlp.Provider {
	if s.primary != nil {
		return s.primary
	}
	return s.fallback
}
