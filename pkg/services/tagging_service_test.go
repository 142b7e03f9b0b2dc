package services

import (
	"context"
	"errors"
	"testing"

	"tagalog-nlp-api/pkg/nlp"
)

// stubProvider serves canned analyses in tests.
type stubProvider struct {
	name     string
	syntax   bool
	analysis *nlp.Analysis
	err      error
	calls    int
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) HasSyntax() bool { return s.syntax }

func (s *stubProvider) Analyze(_ context.Context, _ string) (*nlp.Analysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func TestTaggingServiceUsesPrimary(t *testing.T) {
	primary := &stubProvider{
		name:     "calamancy",
		syntax:   true,
		analysis: &nlp.Analysis{Tokens: []nlp.Token{{Index: 0, Text: "bahay", POS: "NOUN", Head: -1}}},
	}
	fallback := &stubProvider{name: "fallback"}
	svc := NewTaggingService(primary, fallback)

	analysis, source, err := svc.AnalyzeWithSource(context.Background(), "bahay")
	if err != nil {
		t.Fatalf("AnalyzeWithSource returned error: %v", err)
	}
	if source != "calamancy" {
		t.Errorf("Expected source 'calamancy', got %q", source)
	}
	if len(analysis.Tokens) != 1 {
		t.Errorf("Expected 1 token, got %d", len(analysis.Tokens))
	}
	if fallback.calls != 0 {
		t.Errorf("Fallback should not be called, got %d calls", fallback.calls)
	}

	if svc.ModelStatus() != ModelStatusLoaded {
		t.Errorf("Expected model status 'loaded', got %q", svc.ModelStatus())
	}
	if !svc.HasSyntax() {
		t.Error("Expected syntax support from the primary provider")
	}
}

func TestTaggingServiceFallsBackOnError(t *testing.T) {
	primary := &stubProvider{name: "calamancy", syntax: true, err: errors.New("model crashed")}
	fallback := &stubProvider{
		name:     "fallback",
		analysis: &nlp.Analysis{Tokens: []nlp.Token{{Index: 0, Text: "bahay", POS: "NOUN", Head: -1}}},
	}
	svc := NewTaggingService(primary, fallback)

	analysis, source, err := svc.AnalyzeWithSource(context.Background(), "bahay")
	if err != nil {
		t.Fatalf("Expected fallback result, got error: %v", err)
	}
	if source != "fallback" {
		t.Errorf("Expected source 'fallback', got %q", source)
	}
	if len(analysis.Tokens) != 1 {
		t.Errorf("Expected 1 token from fallback, got %d", len(analysis.Tokens))
	}
}

func TestAnalyzeSyntaxDoesNotFallBack(t *testing.T) {
	primary := &stubProvider{name: "calamancy", syntax: true, err: errors.New("model crashed")}
	fallback := &stubProvider{
		name:     "fallback",
		analysis: &nlp.Analysis{Tokens: []nlp.Token{{Index: 0, Text: "bahay", POS: "NOUN", Head: -1}}},
	}
	svc := NewTaggingService(primary, fallback)

	if _, err := svc.AnalyzeSyntax(context.Background(), "bahay"); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable from failing model, got %v", err)
	}
	if fallback.calls != 0 {
		t.Errorf("Fallback must not serve syntax requests, got %d calls", fallback.calls)
	}
}

func TestAnalyzeSyntaxWithoutModel(t *testing.T) {
	svc := NewTaggingService(nil, &stubProvider{name: "fallback"})

	if _, err := svc.AnalyzeSyntax(context.Background(), "bahay"); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Expected ErrModelUnavailable without a model, got %v", err)
	}
}

func TestAnalyzeSyntaxUsesPrimary(t *testing.T) {
	primary := &stubProvider{
		name:     "calamancy",
		syntax:   true,
		analysis: &nlp.Analysis{Tokens: []nlp.Token{{Index: 0, Text: "bahay", POS: "NOUN", Dep: "root", Head: 0}}},
	}
	svc := NewTaggingService(primary, &stubProvider{name: "fallback"})

	analysis, err := svc.AnalyzeSyntax(context.Background(), "bahay")
	if err != nil {
		t.Fatalf("AnalyzeSyntax returned error: %v", err)
	}
	if len(analysis.Tokens) != 1 || analysis.Tokens[0].Dep != "root" {
		t.Errorf("Unexpected analysis: %+v", analysis)
	}
}

func TestTaggingServiceNoPrimary(t *testing.T) {
	fallback := &stubProvider{name: "fallback", analysis: &nlp.Analysis{}}
	svc := NewTaggingService(nil, fallback)

	if svc.ModelStatus() != ModelStatusUnavailable {
		t.Errorf("Expected model status 'unavailable', got %q", svc.ModelStatus())
	}
	if svc.HasSyntax() {
		t.Error("Expected no syntax support without a model")
	}
	if svc.Name() != "fallback" {
		t.Errorf("Expected active name 'fallback', got %q", svc.Name())
	}

	_, source, err := svc.AnalyzeWithSource(context.Background(), "bahay")
	if err != nil {
		t.Fatalf("AnalyzeWithSource returned error: %v", err)
	}
	if source != "fallback" {
		t.Errorf("Expected source 'fallback', got %q", source)
	}
}
