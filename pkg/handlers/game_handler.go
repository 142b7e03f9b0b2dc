package handlers

import (
	"log"
	"net/http"
	"time"

	"tagalog-nlp-api/pkg/game"
	"tagalog-nlp-api/pkg/services"
	"tagalog-nlp-api/pkg/tagset"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler serves the POS game and the Make a Sentence exercise.
type GameHandler struct {
	tagging           *services.TaggingService
	generator         *game.Generator
	verifier          *game.Verifier
	usageVerifier     *game.UsageVerifier
	wordBank          *game.WordBank
	questionsPerRound int
}

// NewGameHandler wires the game components over the tagging service.
func NewGameHandler(tagging *services.TaggingService, table *tagset.Table, generator *game.Generator, wordBank *game.WordBank, questionsPerRound int) *GameHandler {
	return &GameHandler{
		tagging:           tagging,
		generator:         generator,
		verifier:          game.NewVerifier(tagging, table),
		usageVerifier:     game.NewUsageVerifier(tagging, table),
		wordBank:          wordBank,
		questionsPerRound: questionsPerRound,
	}
}

// GetPOSGame returns a game round: a sentence (custom, by grade, or by
// difficulty) and its generated questions.
func (h *GameHandler) GetPOSGame(c *gin.Context) {
	difficulty := c.DefaultQuery("difficulty", "medium")
	grade := c.Query("grade")
	sentence := c.Query("sentence")

	switch {
	case sentence != "":
		log.Printf("pos-game: using custom sentence %q", sentence)
	case grade != "":
		if s, ok := h.wordBank.RandomExampleSentence(grade); ok {
			sentence = s
			log.Printf("pos-game: selected %s sentence %q", grade, sentence)
			break
		}
		fallthrough
	default:
		sentence = h.wordBank.RandomSentence(difficulty)
		log.Printf("pos-game: selected random %s sentence %q", difficulty, sentence)
	}

	h.respondWithRound(c, sentence, gin.H{"difficulty": difficulty})
}

// CustomGame builds a round from a learner-provided sentence.
func (h *GameHandler) CustomGame(c *gin.Context) {
	var req struct {
		Sentence string `json:"sentence" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a sentence")
		return
	}

	log.Printf("custom-game: sentence %q", req.Sentence)
	h.respondWithRound(c, req.Sentence, gin.H{"custom": true})
}

func (h *GameHandler) respondWithRound(c *gin.Context, sentence string, extra gin.H) {
	analysis, source, err := h.tagging.AnalyzeWithSource(c.Request.Context(), sentence)
	if err != nil {
		log.Printf("game round: analysis failed for %q: %v", sentence, err)
		respondError(c, http.StatusInternalServerError, "Error generating game data. Please try again.")
		return
	}

	questions := h.generator.Generate(sentence, analysis.Tokens, h.questionsPerRound)
	if len(questions) == 0 {
		respondError(c, http.StatusBadRequest, "Unable to generate questions from this sentence. Please try another sentence.")
		return
	}

	response := gin.H{
		"round_id":  uuid.NewString(),
		"sentence":  sentence,
		"questions": questions,
		"source":    source,
		"timestamp": time.Now().Unix(),
	}
	for k, v := range extra {
		response[k] = v
	}
	c.JSON(http.StatusOK, response)
}

// VerifyAnswer checks a selected POS label for a word in a sentence.
func (h *GameHandler) VerifyAnswer(c *gin.Context) {
	var req struct {
		Word     string `json:"word" binding:"required"`
		Sentence string `json:"sentence" binding:"required"`
		Selected string `json:"selected" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide word, sentence, and selected answer")
		return
	}

	log.Printf("verify: word %q in sentence %q", req.Word, req.Sentence)

	result := h.verifier.Verify(c.Request.Context(), req.Word, req.Sentence, req.Selected)
	if result == nil {
		respondError(c, http.StatusBadRequest, "Unable to verify answer. Please try again.")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSentenceWords returns the shuffled word list for the Make a Sentence
// game.
func (h *GameHandler) GetSentenceWords(c *gin.Context) {
	grade := c.DefaultQuery("grade", game.GradeG34)
	words := h.wordBank.Words(grade)

	c.JSON(http.StatusOK, gin.H{
		"words": words,
		"count": len(words),
		"grade": grade,
	})
}

// VerifySentenceUsage checks a learner-written sentence for a target word.
func (h *GameHandler) VerifySentenceUsage(c *gin.Context) {
	var req struct {
		Word     string `json:"word" binding:"required"`
		Sentence string `json:"sentence" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide both word and sentence")
		return
	}

	log.Printf("make-sentence: verifying word %q in %q", req.Word, req.Sentence)

	result := h.usageVerifier.VerifySentenceUsage(c.Request.Context(), req.Word, req.Sentence)
	c.JSON(http.StatusOK, gin.H{
		"word":      req.Word,
		"sentence":  req.Sentence,
		"isCorrect": result.IsCorrect,
		"feedback":  result.Feedback,
		"analysis":  result.Analysis,
	})
}
