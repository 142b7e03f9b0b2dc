package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tagalog-nlp-api/pkg/nlp"
	"tagalog-nlp-api/pkg/tagset"
)

// SentenceAnalysis is the structural breakdown attached to a usage verdict.
type SentenceAnalysis struct {
	HasVerb        bool   `json:"hasVerb"`
	HasNoun        bool   `json:"hasNoun"`
	HasSubject     bool   `json:"hasSubject"`
	HasPredicate   bool   `json:"hasPredicate"`
	TargetWordRole string `json:"targetWordRole,omitempty"`
}

// SentenceUsageResult is the verdict for a learner-written sentence.
type SentenceUsageResult struct {
	IsCorrect bool              `json:"isCorrect"`
	Feedback  string            `json:"feedback"`
	Analysis  *SentenceAnalysis `json:"analysis,omitempty"`
}

// UsageVerifier checks whether a learner used a target word in a
// structurally complete sentence. This is a heuristic check: a verb, a
// noun and a parse-tree-connected target word pass it; it is not a grammar
// checker.
type UsageVerifier struct {
	provider nlp.Provider
	table    *tagset.Table
}

// syntaxAnalyzer is implemented by providers that can report a model
// failure instead of degrading to fallback output. The dependency checks
// below are meaningless over fallback tokens, so the verifier must see the
// failure rather than grade syntax-less output.
type syntaxAnalyzer interface {
	AnalyzeSyntax(ctx context.Context, sentence string) (*nlp.Analysis, error)
}

// NewUsageVerifier creates a UsageVerifier over the given provider and table.
func NewUsageVerifier(provider nlp.Provider, table *tagset.Table) *UsageVerifier {
	return &UsageVerifier{provider: provider, table: table}
}

// VerifySentenceUsage runs the ordered checks from the original game:
// model availability, minimum length, target-word presence (surface or
// lemma), verb+noun structural completeness, and target significance in
// the dependency tree. The first failing check decides the feedback.
func (v *UsageVerifier) VerifySentenceUsage(ctx context.Context, targetWord, sentence string) SentenceUsageResult {
	if !v.provider.HasSyntax() {
		log.Printf("sentence verification: syntax-capable model unavailable (provider %s)", v.provider.Name())
		return SentenceUsageResult{IsCorrect: false, Feedback: feedbackModelUnavailable}
	}

	targetWord = strings.ToLower(strings.TrimSpace(targetWord))
	sentence = strings.TrimSpace(sentence)

	if len([]rune(sentence)) < 5 {
		return SentenceUsageResult{IsCorrect: false, Feedback: feedbackTooShort}
	}

	analysis, err := v.analyzeSyntax(ctx, sentence)
	if err != nil {
		log.Printf("sentence verification: provider failed for %q: %v", sentence, err)
		return SentenceUsageResult{IsCorrect: false, Feedback: feedbackModelUnavailable}
	}

	// The target word may appear inflected; the lemma counts as a match.
	target := -1
	for i, tok := range analysis.Tokens {
		if strings.EqualFold(tok.Text, targetWord) || (tok.Lemma != "" && strings.EqualFold(tok.Lemma, targetWord)) {
			target = i
			break
		}
	}
	if target < 0 {
		return SentenceUsageResult{
			IsCorrect: false,
			Feedback:  fmt.Sprintf(feedbackWordMissingFmt, targetWord),
		}
	}

	counts := make(map[tagset.Category]int)
	for _, tok := range analysis.Tokens {
		if cat, ok := v.table.Resolve(tok.POS, tok.Tag); ok {
			counts[cat]++
		}
	}

	hasVerb := counts[tagset.Verb] > 0
	hasNoun := counts[tagset.Noun] > 0 || counts[tagset.Propn] > 0

	targetTok := analysis.Tokens[target]
	significant := targetTok.Dep != "" || len(nlp.Children(analysis.Tokens, targetTok.Index)) > 0

	result := SentenceUsageResult{
		Analysis: &SentenceAnalysis{
			HasVerb:        hasVerb,
			HasNoun:        hasNoun,
			HasSubject:     hasDep(analysis.Tokens, "nsubj"),
			HasPredicate:   hasDep(analysis.Tokens, "root"),
			TargetWordRole: targetTok.Dep,
		},
	}

	result.IsCorrect = hasVerb && hasNoun && significant

	switch {
	case result.IsCorrect:
		result.Feedback = successFeedback(targetTok.Dep)
	case !hasVerb:
		result.Feedback = feedbackNoVerb
	case !hasNoun:
		result.Feedback = feedbackNoNoun
	case !significant:
		result.Feedback = feedbackNotIntegrated
	default:
		result.Feedback = feedbackGenericFail
	}
	return result
}

func (v *UsageVerifier) analyzeSyntax(ctx context.Context, sentence string) (*nlp.Analysis, error) {
	if sa, ok := v.provider.(syntaxAnalyzer); ok {
		return sa.AnalyzeSyntax(ctx, sentence)
	}
	return v.provider.Analyze(ctx, sentence)
}

func hasDep(tokens []nlp.Token, dep string) bool {
	for _, t := range tokens {
		if t.Dep == dep {
			return true
		}
	}
	return false
}
