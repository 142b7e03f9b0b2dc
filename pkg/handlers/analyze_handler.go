package handlers

import (
	"log"
	"net/http"

	"tagalog-nlp-api/pkg/services"
	"tagalog-nlp-api/pkg/tagset"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler exposes raw token analysis and the health endpoint.
type AnalyzeHandler struct {
	tagging   *services.TaggingService
	table     *tagset.Table
	modelName string
}

// NewAnalyzeHandler creates the handler over the tagging service.
func NewAnalyzeHandler(tagging *services.TaggingService, table *tagset.Table, modelName string) *AnalyzeHandler {
	return &AnalyzeHandler{tagging: tagging, table: table, modelName: modelName}
}

// tokenView is the per-token JSON shape of the analyze endpoint.
type tokenView struct {
	Text        string            `json:"text"`
	POS         string            `json:"pos"`
	Description string            `json:"description"`
	Lemma       string            `json:"lemma,omitempty"`
	Dep         string            `json:"dep,omitempty"`
	Morph       map[string]string `json:"morph,omitempty"`
}

// Analyze tags a sentence and returns the labeled token list.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req struct {
		Sentence string `json:"sentence" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide a sentence")
		return
	}

	log.Printf("analyze: sentence %q", req.Sentence)

	analysis, source, err := h.tagging.AnalyzeWithSource(c.Request.Context(), req.Sentence)
	if err != nil {
		log.Printf("analyze: failed for %q: %v", req.Sentence, err)
		respondError(c, http.StatusInternalServerError, "Error analyzing text. Please try again.")
		return
	}

	tokens := make([]tokenView, 0, len(analysis.Tokens))
	for _, tok := range analysis.Tokens {
		description := tok.POS
		if cat, ok := h.table.Resolve(tok.POS, tok.Tag); ok {
			description, _ = h.table.Label(cat)
		}
		tokens = append(tokens, tokenView{
			Text:        tok.Text,
			POS:         tok.POS,
			Description: description,
			Lemma:       tok.Lemma,
			Dep:         tok.Dep,
			Morph:       tok.Morph,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sentence": req.Sentence,
		"tokens":   tokens,
		"method":   source,
	})
}

// HealthCheck reports service and model status.
func (h *AnalyzeHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"service":            "Tagalog NLP API",
		"model":              h.modelName,
		"model_status":       h.tagging.ModelStatus(),
		"tagset":             h.table.Name(),
		"pos_tags_available": h.table.Codes(),
	})
}
