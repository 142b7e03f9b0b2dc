package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strings"

	config "tagalog-nlp-api/configs"
	"tagalog-nlp-api/pkg/game"
	"tagalog-nlp-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// AdminHandler serves operator endpoints: deployment status and word-bank
// import.
type AdminHandler struct {
	cfg      *config.Config
	tagging  *services.TaggingService
	wordBank *game.WordBank
}

// NewAdminHandler creates the handler.
func NewAdminHandler(cfg *config.Config, tagging *services.TaggingService, wordBank *game.WordBank) *AdminHandler {
	return &AdminHandler{cfg: cfg, tagging: tagging, wordBank: wordBank}
}

// GetHealthStatus reports deployment configuration for operators.
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"environment":    h.cfg.Environment,
		"model_endpoint": h.cfg.ModelEndpoint != "",
		"model_status":   h.tagging.ModelStatus(),
		"tagset":         h.cfg.Tagset,
	})
}

// ImportWordBank uploads word entries from an .xlsx or .csv file into a
// grade tier. Expected columns: word, description, example sentences
// (one per remaining column). The first row is treated as a header when
// its first cell is "word".
func (h *AdminHandler) ImportWordBank(c *gin.Context) {
	grade := c.DefaultPostForm("grade", game.GradeG34)

	file, fileHeader, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Please attach a word file")
		return
	}
	defer file.Close()

	var rows [][]string
	name := strings.ToLower(fileHeader.Filename)
	switch {
	case strings.HasSuffix(name, ".xlsx"):
		f, err := excelize.OpenReader(file)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Failed to read the Excel file")
			return
		}
		defer f.Close()
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to read rows from the Excel sheet")
			return
		}
	case strings.HasSuffix(name, ".csv"):
		rows, err = csv.NewReader(file).ReadAll()
		if err != nil {
			respondError(c, http.StatusBadRequest, "Failed to parse the CSV file")
			return
		}
	default:
		respondError(c, http.StatusBadRequest, "Unsupported file type. Upload .xlsx or .csv.")
		return
	}

	entries := parseWordRows(rows)
	if len(entries) == 0 {
		respondError(c, http.StatusBadRequest, "No word entries found in the file")
		return
	}

	added := h.wordBank.Add(grade, entries)
	log.Printf("word bank import: added %d entries to %s from %s", added, grade, fileHeader.Filename)

	c.JSON(http.StatusOK, gin.H{
		"imported": added,
		"grade":    grade,
	})
}

func parseWordRows(rows [][]string) []game.WordEntry {
	var entries []game.WordEntry
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "word") {
			continue
		}
		entry := game.WordEntry{Word: strings.TrimSpace(row[0])}
		if entry.Word == "" {
			continue
		}
		if len(row) > 1 {
			entry.Description = strings.TrimSpace(row[1])
		}
		for _, cell := range row[2:] {
			if s := strings.TrimSpace(cell); s != "" {
				entry.ExampleSentences = append(entry.ExampleSentences, s)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
