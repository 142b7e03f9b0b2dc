// Package nlp defines the tagging provider interface and its two
// implementations: a remote calamanCy model sidecar and the static lexicon
// fallback. Everything above this package depends only on the Provider
// interface, not on which variant is active.
package nlp

import "context"

// Token is a single analyzed token as produced by a tagging provider.
// Lemma, Dep, Head and Morph are only populated by syntax-capable providers.
type Token struct {
	Index int               `json:"index"`
	Text  string            `json:"text"`
	Lemma string            `json:"lemma,omitempty"`
	POS   string            `json:"pos"`
	Tag   string            `json:"tag,omitempty"`
	Dep   string            `json:"dep,omitempty"`
	Head  int               `json:"head"`
	Morph map[string]string `json:"morph,omitempty"`
}

// Entity is a named entity detected in a sentence.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Analysis is the full result of tagging one sentence.
type Analysis struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"entities,omitempty"`
}

// Provider tags Tagalog sentences. Implementations must be safe for
// concurrent use and stateless across calls.
type Provider interface {
	// Name identifies the provider in responses and logs.
	Name() string
	// HasSyntax reports whether the provider produces lemmas, dependency
	// relations, morphology and entities. The lexicon fallback does not.
	HasSyntax() bool
	// Analyze tags sentence and returns the token stream. Callers treat
	// any error as "model unavailable" and fall back.
	Analyze(ctx context.Context, sentence string) (*Analysis, error)
}

// Children returns the indices of tokens whose head is the token at index.
// Providers that do not emit dependency information use Head = -1, which
// never matches.
func Children(tokens []Token, index int) []int {
	var out []int
	for _, t := range tokens {
		if t.Head == index && t.Index != index {
			out = append(out, t.Index)
		}
	}
	return out
}
