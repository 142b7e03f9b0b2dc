package game

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// WordEntry is a vocabulary item for the Make a Sentence game.
type WordEntry struct {
	Word             string   `json:"word"`
	Description      string   `json:"description"`
	ExampleSentences []string `json:"exampleSentences,omitempty"`
}

// Grade tiers for the word bank and sentence pools.
const (
	GradeG12 = "G1_2"
	GradeG34 = "G3_4"
	GradeG56 = "G5_6"
)

// gradeFiles maps grade tiers to word-bank file names under WORD_BANK_DIR.
var gradeFiles = map[string]string{
	GradeG12: "grade_level_1-2_words.json",
	GradeG34: "grade_level_3-4_words.json",
	GradeG56: "grade_level_5-6_words.json",
}

// sampleSentences are the built-in sentence pools per difficulty for the
// POS game when no custom sentence is supplied.
var sampleSentences = map[string][]string{
	"easy": {
		"Ako ay masaya ngayon.",
		"Kumain siya ng mansanas.",
		"Maganda ang bulaklak sa hardin.",
		"Mabilis tumakbo ang bata.",
		"Malaki ang bahay nila.",
	},
	"medium": {
		"Ang batang lalaki ay nag-aaral ng mabuti para sa kanyang pagsusulit.",
		"Inilagay ko ang mga libro sa ibabaw ng mesa.",
		"Ang mga manggagawa ay nagprotesta dahil sa mababang sahod.",
		"Binili niya ang bagong kotse mula sa tindahan kahapon.",
		"Hindi namin alam kung saan nagpunta ang aming mga kaibigan.",
	},
	"hard": {
		"Ako si Thomas Edison, at ako ay nag-aaral ng agham sa paaralan.",
		"Ang mga estudyante na nagtapos nang may karangalan ay tumanggap ng mga parangal mula sa pangulo ng unibersidad.",
		"Kahit na malakas ang ulan, nagpatuloy pa rin sila sa kanilang paglalakbay patungo sa malayong probinsya.",
		"Maraming turista ang bumabalik taun-taon sa magandang isla dahil sa mababait na mga tao at masasarap na pagkain.",
		"Bagaman maliit lamang ang kaniyang negosyo, nakapagbigay pa rin siya ng trabaho sa maraming tao sa kanilang komunidad.",
	},
}

// defaultWords seed the word bank when no word files are found.
var defaultWords = []WordEntry{
	{Word: "Bayanihan", Description: "Pagtulong ng maraming tao sa isa't isa upang matapos ang isang gawain"},
	{Word: "Pagmamahal", Description: "Malalim na pakiramdam ng malasakit at pagpapahalaga"},
	{Word: "Kalayaan", Description: "Katayuan ng pagiging malaya o hindi nakatali sa limitasyon"},
	{Word: "Matatag", Description: "Malakas at hindi madaling masira o matumba"},
	{Word: "Kalikasan", Description: "Ang natural na kapaligiran at lahat ng buhay na nilalang"},
	{Word: "Kasiyahan", Description: "Masayang pakiramdam o kalagayan"},
	{Word: "Pakikipagkapwa", Description: "Pakikitungo sa ibang tao bilang kapantay"},
	{Word: "Pagtitiwala", Description: "Pananalig sa kakayahan o katapatan ng ibang tao"},
	{Word: "Kahusayan", Description: "Kagalingan o kahigitan sa isang larangan"},
	{Word: "Katatagan", Description: "Lakas ng loob sa harap ng mga hamon"},
	{Word: "Mapagkumbaba", Description: "Walang kayabangan; mahinahon"},
	{Word: "Mapagbigay", Description: "Bukas-palad o handang tumulong"},
}

// WordBank holds the per-tier vocabulary lists and the difficulty sentence
// pools. The admin import endpoint appends entries at runtime, so access is
// guarded.
type WordBank struct {
	mu    sync.RWMutex
	words map[string][]WordEntry
	rng   *rand.Rand
}

// NewWordBank loads per-grade word files from dir, falling back to the
// built-in defaults for tiers without a file.
func NewWordBank(dir string, src rand.Source) *WordBank {
	wb := &WordBank{
		words: make(map[string][]WordEntry),
		rng:   rand.New(src),
	}
	for grade, file := range gradeFiles {
		path := filepath.Join(dir, file)
		entries, err := loadWordFile(path)
		if err != nil {
			log.Printf("word bank: %s unavailable (%v), using built-in defaults", path, err)
			entries = defaultWords
		}
		wb.words[grade] = entries
	}
	return wb
}

func loadWordFile(path string) ([]WordEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []WordEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("malformed word file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("word file %s is empty", path)
	}
	return entries, nil
}

// Words returns a shuffled copy of the word list for grade. Unknown grades
// get the G3_4 list.
func (wb *WordBank) Words(grade string) []WordEntry {
	wb.mu.RLock()
	entries, ok := wb.words[grade]
	if !ok {
		entries = wb.words[GradeG34]
	}
	out := make([]WordEntry, len(entries))
	copy(out, entries)
	wb.mu.RUnlock()

	wb.mu.Lock()
	wb.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	wb.mu.Unlock()
	return out
}

// Add appends entries to the word list for grade. Entries without a word
// are skipped; the number of stored entries is returned.
func (wb *WordBank) Add(grade string, entries []WordEntry) int {
	if _, ok := gradeFiles[grade]; !ok {
		grade = GradeG34
	}
	added := 0
	wb.mu.Lock()
	defer wb.mu.Unlock()
	for _, e := range entries {
		if strings.TrimSpace(e.Word) == "" {
			continue
		}
		wb.words[grade] = append(wb.words[grade], e)
		added++
	}
	return added
}

// RandomSentence picks a sentence from the difficulty pool; unknown
// difficulties use the medium pool.
func (wb *WordBank) RandomSentence(difficulty string) string {
	pool, ok := sampleSentences[strings.ToLower(difficulty)]
	if !ok {
		pool = sampleSentences["medium"]
	}
	wb.mu.Lock()
	defer wb.mu.Unlock()
	return pool[wb.rng.Intn(len(pool))]
}

// RandomExampleSentence picks a random example sentence from the grade's
// word entries, for rounds keyed by grade instead of difficulty. Returns
// false when the tier has no example sentences.
func (wb *WordBank) RandomExampleSentence(grade string) (string, bool) {
	wb.mu.RLock()
	entries := wb.words[grade]
	var pool []string
	for _, e := range entries {
		pool = append(pool, e.ExampleSentences...)
	}
	wb.mu.RUnlock()

	if len(pool) == 0 {
		return "", false
	}
	wb.mu.Lock()
	defer wb.mu.Unlock()
	return pool[wb.rng.Intn(len(pool))], true
}
