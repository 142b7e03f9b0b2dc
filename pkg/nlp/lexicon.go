package nlp

import (
	"context"
	"strings"
)

// tagalogLexicon maps lowercase Tagalog word forms to coarse POS codes.
// Hand-curated: common pronouns, conjugation forms of frequent verbs,
// everyday nouns, adjectives, adverbs, determiners, markers, particles,
// plus conjunctions and numerals for the extended tagset. Whole-word exact
// match only; no morphological analysis.
var tagalogLexicon = map[string]string{
	// Pronouns (Panghalip)
	"ako": "PRON", "ikaw": "PRON", "ka": "PRON", "siya": "PRON", "kami": "PRON",
	"tayo": "PRON", "kayo": "PRON", "sila": "PRON", "niya": "PRON", "nila": "PRON",
	"ko": "PRON", "mo": "PRON", "namin": "PRON", "natin": "PRON", "ninyo": "PRON",
	"akin": "PRON", "iyo": "PRON", "kanya": "PRON", "amin": "PRON", "kanila": "PRON",

	// Verbs (Pandiwa) by conjugation form
	"kumain": "VERB", "kumakain": "VERB", "kakain": "VERB", "kinain": "VERB",
	"uminom": "VERB", "umiinom": "VERB", "iinom": "VERB", "ininom": "VERB",
	"magluto": "VERB", "nagluluto": "VERB", "magluluto": "VERB", "niluto": "VERB",
	"bumili": "VERB", "bumibili": "VERB", "bibili": "VERB", "binili": "VERB",
	"tumakbo": "VERB", "tumatakbo": "VERB", "tatakbo": "VERB", "tumakbong": "VERB",
	"magbasa": "VERB", "nagbabasa": "VERB", "magbabasa": "VERB", "binasa": "VERB",
	"matulog": "VERB", "natutulog": "VERB", "matutulog": "VERB", "natulog": "VERB",
	"maglaro": "VERB", "naglalaro": "VERB", "maglalaro": "VERB", "nilaro": "VERB",
	"pumunta": "VERB", "pumupunta": "VERB", "pupunta": "VERB", "nagpunta": "VERB",
	"nag-aaral": "VERB", "mag-aaral": "VERB", "nag-aral": "VERB", "inilagay": "VERB",

	// Nouns (Pangngalan)
	"bahay": "NOUN", "paaralan": "NOUN", "kotse": "NOUN", "mesa": "NOUN",
	"silya": "NOUN", "libro": "NOUN", "pagkain": "NOUN", "tubig": "NOUN",
	"lalaki": "NOUN", "babae": "NOUN", "bata": "NOUN", "magulang": "NOUN",
	"guro": "NOUN", "kaibigan": "NOUN", "lungsod": "NOUN", "bansa": "NOUN",
	"mansanas": "NOUN", "pera": "NOUN", "oras": "NOUN", "araw": "NOUN",
	"bulaklak": "NOUN", "hardin": "NOUN", "pagsusulit": "NOUN", "sahod": "NOUN",
	"tindahan": "NOUN", "hayop": "NOUN", "puno": "NOUN", "dagat": "NOUN",

	// Adjectives (Pang-uri)
	"maganda": "ADJ", "mabait": "ADJ", "masaya": "ADJ", "malungkot": "ADJ",
	"mataas": "ADJ", "mababa": "ADJ", "malaki": "ADJ", "maliit": "ADJ",
	"masarap": "ADJ", "mainit": "ADJ", "malamig": "ADJ",
	"matalino": "ADJ", "matamis": "ADJ", "bagong": "ADJ", "matatag": "ADJ",

	// Adverbs (Pang-abay)
	"mabilis": "ADV", "mabagal": "ADV", "kanina": "ADV", "bukas": "ADV",
	"kahapon": "ADV", "ngayon": "ADV", "palagi": "ADV", "minsan": "ADV",
	"tuwing": "ADV", "lagi": "ADV", "dito": "ADV", "doon": "ADV",
	"agad": "ADV", "taun-taon": "ADV", "araw-araw": "ADV", "madalas": "ADV",

	// Determiners (Pantukoy)
	"ang": "DET", "mga": "DET", "ito": "DET", "iyon": "DET", "yung": "DET",

	// Prepositions / markers (Pang-ukol)
	"sa": "ADP", "ng": "ADP", "para": "ADP", "mula": "ADP", "tungkol": "ADP",
	"hanggang": "ADP", "dahil": "ADP",

	// Particles (Panghikayat)
	"ay": "PART", "ba": "PART", "na": "PART", "pa": "PART", "raw": "PART", "daw": "PART",
	"lamang": "PART", "lang": "PART", "din": "PART", "rin": "PART", "pala": "PART",

	// Conjunctions (extended tagset only; dropped by Resolve under core)
	"at": "CCONJ", "o": "CCONJ", "ngunit": "CCONJ", "pero": "CCONJ",
	"kung": "SCONJ", "kapag": "SCONJ", "sapagkat": "SCONJ", "bagaman": "SCONJ",
	"habang": "SCONJ", "upang": "SCONJ",

	// Numerals (extended tagset only)
	"isa": "NUM", "dalawa": "NUM", "tatlo": "NUM", "apat": "NUM", "lima": "NUM",
	"anim": "NUM", "pito": "NUM", "walo": "NUM", "siyam": "NUM", "sampu": "NUM",
}

// terminalPunct is stripped from word edges before lexicon lookup.
const terminalPunct = ".,!?"

// LexiconProvider is the last-resort POS tagger used when the model service
// is unavailable or errors. It never fails, but unmatched words are silently
// dropped from its output.
type LexiconProvider struct{}

// NewLexiconProvider creates the dictionary-backed fallback provider.
func NewLexiconProvider() *LexiconProvider {
	return &LexiconProvider{}
}

// Name identifies the provider in responses and logs.
func (p *LexiconProvider) Name() string {
	return "fallback"
}

// HasSyntax reports that the lexicon produces no lemmas, dependencies,
// morphology or entities.
func (p *LexiconProvider) HasSyntax() bool {
	return false
}

// Analyze tags sentence against the static lexicon. Words not found in the
// lexicon do not appear in the output; they never become question
// candidates.
func (p *LexiconProvider) Analyze(_ context.Context, sentence string) (*Analysis, error) {
	analysis := &Analysis{}
	for _, word := range strings.Fields(sentence) {
		clean := strings.ToLower(strings.Trim(word, terminalPunct))
		if clean == "" {
			continue
		}
		pos, ok := tagalogLexicon[clean]
		if !ok {
			continue
		}
		analysis.Tokens = append(analysis.Tokens, Token{
			Index: len(analysis.Tokens),
			Text:  strings.Trim(word, terminalPunct),
			POS:   pos,
			Head:  -1,
		})
	}
	return analysis, nil
}

// LexiconSize returns the number of word forms in the fallback lexicon.
func LexiconSize() int {
	return len(tagalogLexicon)
}
