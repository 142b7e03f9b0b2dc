// Package tagset defines the part-of-speech category tables used by the
// learning games. A table maps Universal Dependencies POS codes to the
// Filipino labels shown to learners. Two tables exist: the 8-tag core set
// used by the original multiple-choice game, and the 16-tag extended set
// matching the richer tocylog model. Exactly one table is active per
// deployment, chosen by the POS_TAGSET config value.
package tagset

import "fmt"

// Category is a coarse POS category code (e.g. "NOUN", "VERB").
type Category string

// Core category codes shared by both tables.
const (
	Pron Category = "PRON"
	Verb Category = "VERB"
	Adv  Category = "ADV"
	Adj  Category = "ADJ"
	Noun Category = "NOUN"
	Adp  Category = "ADP"
	Det  Category = "DET"
	Part Category = "PART"
)

// Extended-only category codes.
const (
	Propn Category = "PROPN"
	Aux   Category = "AUX"
	Num   Category = "NUM"
	Cconj Category = "CCONJ"
	Sconj Category = "SCONJ"
	Intj  Category = "INTJ"
	Punct Category = "PUNCT"
	Sym   Category = "SYM"
)

// Table is an immutable mapping from category codes to learner-facing
// labels. The code order is fixed so that option sampling is reproducible
// under a seeded random source.
type Table struct {
	name   string
	codes  []Category
	labels map[Category]string
}

// CoreTable returns the 8-tag table used by the original POS game.
func CoreTable() *Table {
	return &Table{
		name: "core",
		codes: []Category{
			Pron, Verb, Adv, Adj, Noun, Adp, Det, Part,
		},
		labels: map[Category]string{
			Pron: "Panghalip (Pronoun)",
			Verb: "Pandiwa (Verb)",
			Adv:  "Pang-Abay (Adverb)",
			Adj:  "Pang-Uri (Adjective)",
			Noun: "Pangngalan (Noun)",
			Adp:  "Pang-ukol (Preposition)",
			Det:  "Pantukoy (Determiner)",
			Part: "Panghikayat (Particle)",
		},
	}
}

// ExtendedTable returns the 16-tag table matching the tocylog model output.
func ExtendedTable() *Table {
	return &Table{
		name: "extended",
		codes: []Category{
			Pron, Verb, Adv, Adj, Noun, Adp, Det, Part,
			Propn, Aux, Num, Cconj, Sconj, Intj, Punct, Sym,
		},
		labels: map[Category]string{
			Pron:  "Panghalip (Pronoun)",
			Verb:  "Pandiwa (Verb)",
			Adv:   "Pang-Abay (Adverb)",
			Adj:   "Pang-Uri (Adjective)",
			Noun:  "Pangngalan (Noun)",
			Adp:   "Pang-ukol (Preposition)",
			Det:   "Pantukoy (Determiner)",
			Part:  "Panghikayat (Particle)",
			Propn: "Pangngalang Pantangi (Proper Noun)",
			Aux:   "Katulong na Pandiwa (Auxiliary)",
			Num:   "Pamilang (Number)",
			Cconj: "Pang-ugnay (Coordinating Conjunction)",
			Sconj: "Pang-ugnay na Pansakop (Subordinating Conjunction)",
			Intj:  "Pandamdam (Interjection)",
			Punct: "Bantas (Punctuation)",
			Sym:   "Simbolo (Symbol)",
		},
	}
}

// ByName returns the table for a configured tagset name.
func ByName(name string) (*Table, error) {
	switch name {
	case "core", "":
		return CoreTable(), nil
	case "extended":
		return ExtendedTable(), nil
	default:
		return nil, fmt.Errorf("unknown tagset %q (want \"core\" or \"extended\")", name)
	}
}

// Name returns the table's configured name.
func (t *Table) Name() string {
	return t.name
}

// Size returns the number of categories in the table.
func (t *Table) Size() int {
	return len(t.codes)
}

// Codes returns the category codes in fixed order.
func (t *Table) Codes() []Category {
	out := make([]Category, len(t.codes))
	copy(out, t.codes)
	return out
}

// Contains reports whether code is a category of this table.
func (t *Table) Contains(code Category) bool {
	_, ok := t.labels[code]
	return ok
}

// Label returns the learner-facing label for code.
func (t *Table) Label(code Category) (string, bool) {
	label, ok := t.labels[code]
	return label, ok
}

// Labels returns all labels in the table's fixed code order.
func (t *Table) Labels() []string {
	out := make([]string, 0, len(t.codes))
	for _, code := range t.codes {
		out = append(out, t.labels[code])
	}
	return out
}

// Resolve picks the category for a (coarse, fine) tag pair. The fine tag
// wins when it names a category in this table, otherwise the coarse tag is
// used. The second return is false when neither tag is a known category;
// such tokens are not eligible for question generation.
func (t *Table) Resolve(pos, fineTag string) (Category, bool) {
	if fineTag != "" && t.Contains(Category(fineTag)) {
		return Category(fineTag), true
	}
	if t.Contains(Category(pos)) {
		return Category(pos), true
	}
	return "", false
}
