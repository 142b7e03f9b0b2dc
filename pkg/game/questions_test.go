package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"tagalog-nlp-api/pkg/nlp"
	"tagalog-nlp-api/pkg/tagset"
)

func lexiconTokens(t *testing.T, sentence string) []nlp.Token {
	t.Helper()
	analysis, err := nlp.NewLexiconProvider().Analyze(context.Background(), sentence)
	if err != nil {
		t.Fatalf("lexicon analyze failed: %v", err)
	}
	return analysis.Tokens
}

func assertQuestionInvariants(t *testing.T, q Question, tableSize int) {
	t.Helper()

	wantOptions := 4
	if tableSize < wantOptions {
		wantOptions = tableSize
	}
	if len(q.Options) != wantOptions {
		t.Errorf("Question %d: expected %d options, got %d", q.ID, wantOptions, len(q.Options))
	}

	seen := make(map[string]bool)
	found := false
	for _, opt := range q.Options {
		if seen[opt] {
			t.Errorf("Question %d: duplicate option %q", q.ID, opt)
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			found = true
		}
	}
	if !found {
		t.Errorf("Question %d: correct answer %q not among options %v", q.ID, q.CorrectAnswer, q.Options)
	}

	if q.Question == "" || q.Explanation == "" {
		t.Errorf("Question %d: empty prompt or explanation", q.ID)
	}
}

func TestGenerateBoundedByTaggedWords(t *testing.T) {
	table := tagset.CoreTable()
	gen := NewGenerator(table, rand.NewSource(1))

	sentence := "Kumain siya ng mansanas."
	questions := gen.Generate(sentence, lexiconTokens(t, sentence), 5)

	// Four lexicon-tagged words, so desiredCount=5 yields exactly 4.
	if len(questions) != 4 {
		t.Fatalf("Expected 4 questions, got %d", len(questions))
	}
	for _, q := range questions {
		assertQuestionInvariants(t, q, table.Size())
	}
}

func TestGenerateAtMostDesiredCount(t *testing.T) {
	table := tagset.CoreTable()
	gen := NewGenerator(table, rand.NewSource(2))

	sentence := "Ang batang lalaki ay nag-aaral ng mabuti para sa kanyang pagsusulit."
	tokens := lexiconTokens(t, sentence)

	for _, count := range []int{1, 2, 3, 5, 50} {
		questions := gen.Generate(sentence, tokens, count)
		if len(questions) > count {
			t.Errorf("desiredCount=%d: got %d questions", count, len(questions))
		}
		for _, q := range questions {
			assertQuestionInvariants(t, q, table.Size())
		}
	}
}

func TestGenerateEmptySentence(t *testing.T) {
	gen := NewGenerator(tagset.CoreTable(), rand.NewSource(3))

	if qs := gen.Generate("", nil, 5); len(qs) != 0 {
		t.Errorf("Expected no questions for empty sentence, got %d", len(qs))
	}
	if qs := gen.Generate("   ", nil, 5); len(qs) != 0 {
		t.Errorf("Expected no questions for blank sentence, got %d", len(qs))
	}
}

func TestGenerateNoEligibleTokens(t *testing.T) {
	gen := NewGenerator(tagset.CoreTable(), rand.NewSource(4))

	tokens := []nlp.Token{
		{Index: 0, Text: "zzz", POS: "X"},
		{Index: 1, Text: "?!", POS: "PUNCT"}, // not in the core table
	}
	if qs := gen.Generate("zzz ?!", tokens, 5); len(qs) != 0 {
		t.Errorf("Expected no questions when no token resolves, got %d", len(qs))
	}
}

func TestGenerateShufflesCorrectAnswerPosition(t *testing.T) {
	table := tagset.CoreTable()
	gen := NewGenerator(table, rand.NewSource(5))

	sentence := "Kumain siya ng mansanas."
	tokens := lexiconTokens(t, sentence)

	positions := make(map[int]int)
	for i := 0; i < 200; i++ {
		questions := gen.Generate(sentence, tokens, 1)
		if len(questions) != 1 {
			t.Fatalf("Expected 1 question, got %d", len(questions))
		}
		for idx, opt := range questions[0].Options {
			if opt == questions[0].CorrectAnswer {
				positions[idx]++
			}
		}
	}

	// Statistical property: over many trials the correct answer must not
	// be pinned to a single slot.
	if len(positions) < 2 {
		t.Errorf("Correct answer position looks fixed: %v", positions)
	}
}

func TestGenerateSmallTableLimitsOptions(t *testing.T) {
	// The extended table has 15 possible distractors per question, but
	// options stay capped at 4.
	table := tagset.ExtendedTable()
	gen := NewGenerator(table, rand.NewSource(6))

	sentence := "Kumain siya ng mansanas."
	questions := gen.Generate(sentence, lexiconTokens(t, sentence), 5)

	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("Expected 4 options with the extended table, got %d", len(q.Options))
		}
	}
}

func TestGenerateFineTagWinsOverCoarse(t *testing.T) {
	table := tagset.ExtendedTable()
	gen := NewGenerator(table, rand.NewSource(7))

	tokens := []nlp.Token{
		{Index: 0, Text: "Maria", POS: "NOUN", Tag: "PROPN", Head: -1},
	}
	questions := gen.Generate("Si Maria ay kumanta.", tokens, 1)
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	want, _ := table.Label(tagset.Propn)
	if questions[0].CorrectAnswer != want {
		t.Errorf("Expected fine tag to win: got %q, want %q", questions[0].CorrectAnswer, want)
	}
}

func TestExplanationIncludesGrammaticalClauses(t *testing.T) {
	table := tagset.ExtendedTable()
	gen := NewGenerator(table, rand.NewSource(8))

	tokens := []nlp.Token{
		{
			Index: 0,
			Text:  "Kumain",
			POS:   "VERB",
			Dep:   "root",
			Head:  0,
			Morph: map[string]string{"Aspect": "Perf", "Voice": "Act"},
		},
	}
	questions := gen.Generate("Kumain siya.", tokens, 1)
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	expl := questions[0].Explanation
	for _, clause := range []string{
		"Ang 'Kumain' ay isang",
		morphPhrases["Aspect"]["Perf"],
		morphPhrases["Voice"]["Act"],
		depPhrases["root"],
	} {
		if !strings.Contains(expl, clause) {
			t.Errorf("Explanation missing clause %q: %s", clause, expl)
		}
	}
}
