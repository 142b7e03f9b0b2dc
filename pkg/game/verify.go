package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	"tagalog-nlp-api/pkg/nlp"
	"tagalog-nlp-api/pkg/tagset"
)

// VerificationResult reports whether a selected POS label was correct for a
// word in a sentence.
type VerificationResult struct {
	Word        string `json:"word"`
	Selected    string `json:"selected"`
	Correct     string `json:"correct"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// Verifier re-derives the correct POS label for a word and checks a
// learner's selected answer against it.
type Verifier struct {
	provider nlp.Provider
	table    *tagset.Table
}

// NewVerifier creates a Verifier over the given provider and table.
func NewVerifier(provider nlp.Provider, table *tagset.Table) *Verifier {
	return &Verifier{provider: provider, table: table}
}

// Verify locates word in sentence (first case-insensitive surface match
// whose category resolves against the active table) and compares the
// canonical label to selected. Returns nil when no occurrence of the word
// carries a supported tag or the provider failed; the caller maps nil to a
// user-facing error.
func (v *Verifier) Verify(ctx context.Context, word, sentence, selected string) *VerificationResult {
	analysis, err := v.provider.Analyze(ctx, sentence)
	if err != nil {
		log.Printf("answer verification: provider failed for %q: %v", sentence, err)
		return nil
	}

	for _, tok := range analysis.Tokens {
		if !strings.EqualFold(tok.Text, word) {
			continue
		}
		cat, ok := v.table.Resolve(tok.POS, tok.Tag)
		if !ok {
			// A later occurrence of the same surface form may still
			// carry a supported tag.
			log.Printf("answer verification: skipping %q with unsupported tag %q/%q", word, tok.POS, tok.Tag)
			continue
		}
		correct, _ := v.table.Label(cat)
		return &VerificationResult{
			Word:        word,
			Selected:    selected,
			Correct:     correct,
			IsCorrect:   selected == correct,
			Explanation: fmt.Sprintf("Ang '%s' ay isang %s.", word, strings.ToLower(correct)),
		}
	}

	log.Printf("answer verification: no taggable occurrence of %q in %q", word, sentence)
	return nil
}
