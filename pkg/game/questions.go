// Package game implements the learning-game logic on top of a tagging
// provider: multiple-choice question generation, answer verification,
// sentence-usage verification and the word bank for the Make a Sentence
// exercise.
package game

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	"tagalog-nlp-api/pkg/nlp"
	"tagalog-nlp-api/pkg/tagset"
)

// Question is a single multiple-choice item. Field names are the frontend
// contract.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// maxDistractors caps the number of wrong options per question; the real
// limit is table size minus one.
const maxDistractors = 3

// Generator builds multiple-choice POS questions from a tagged sentence.
// It is intentionally non-deterministic; tests pass a seeded source.
type Generator struct {
	table *tagset.Table
	mu    sync.Mutex
	rng   *rand.Rand
}

// NewGenerator creates a Generator over the active category table.
func NewGenerator(table *tagset.Table, src rand.Source) *Generator {
	return &Generator{
		table: table,
		rng:   rand.New(src),
	}
}

// Generate builds at most desiredCount questions for sentence from its
// token stream. Tokens whose resolved category is not in the table are not
// question candidates. Repeated surface forms are distinct candidates.
func (g *Generator) Generate(sentence string, tokens []nlp.Token, desiredCount int) []Question {
	if strings.TrimSpace(sentence) == "" {
		log.Printf("question generator: empty sentence provided")
		return nil
	}
	if desiredCount <= 0 {
		return nil
	}

	type candidate struct {
		token    nlp.Token
		category tagset.Category
	}

	var candidates []candidate
	for _, tok := range tokens {
		if cat, ok := g.table.Resolve(tok.POS, tok.Tag); ok {
			candidates = append(candidates, candidate{token: tok, category: cat})
		}
	}
	if len(candidates) == 0 {
		log.Printf("question generator: no tokens with known POS tags in %q", sentence)
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Uniform sample without replacement when there are more candidates
	// than requested.
	if len(candidates) > desiredCount {
		g.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:desiredCount]
	}

	labels := g.table.Labels()
	questions := make([]Question, 0, len(candidates))
	for i, c := range candidates {
		correct, _ := g.table.Label(c.category)

		// Distractors: labels other than the correct one, sampled
		// uniformly without replacement.
		pool := make([]string, 0, len(labels)-1)
		for _, l := range labels {
			if l != correct {
				pool = append(pool, l)
			}
		}
		g.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		n := maxDistractors
		if len(pool) < n {
			n = len(pool)
		}

		options := append([]string{correct}, pool[:n]...)
		g.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, Question{
			ID:            i + 1,
			Question:      fmt.Sprintf("Anong parte ng pangungusap ang '%s' sa '%s'?", c.token.Text, sentence),
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   g.explain(c.token, correct),
		})
	}
	return questions
}

// explain composes the explanation sentence for a token, appending
// grammatical clauses when the model supplied morphology or a dependency
// role.
func (g *Generator) explain(tok nlp.Token, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ang '%s' ay isang %s.", tok.Text, strings.ToLower(label))

	for _, feature := range morphFeatureOrder {
		value, ok := tok.Morph[feature]
		if !ok {
			continue
		}
		if clause, ok := morphPhrases[feature][value]; ok {
			b.WriteString(" ")
			b.WriteString(clause)
		}
	}
	if clause, ok := depPhrases[tok.Dep]; ok {
		b.WriteString(" ")
		b.WriteString(clause)
	}
	return b.String()
}
