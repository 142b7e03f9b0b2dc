package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tagalog-nlp-api/pkg/nlp"
)

// ConversationTurn is one user/bot exchange in a session log.
type ConversationTurn struct {
	User     string       `json:"user"`
	Bot      string       `json:"bot"`
	Entities []nlp.Entity `json:"entities,omitempty"`
}

// ConversationSession holds the per-learner practice state. Sessions are
// explicit objects keyed by ID; there is no process-wide conversation
// state.
type ConversationSession struct {
	ID        string             `json:"id"`
	Points    int                `json:"points"`
	Level     int                `json:"level"`
	Streak    int                `json:"streak"`
	Log       []ConversationTurn `json:"conversation"`
	CreatedAt time.Time          `json:"created_at"`
}

// pointsPerEntity and pointsPerLevel drive the lightweight gamification.
const (
	pointsPerEntity = 10
	pointsPerLevel  = 50
)

var greetingTriggers = []string{
	"kamusta", "kumusta", "musta", "magandang araw",
	"magandang umaga", "magandang hapon", "magandang gabi",
	"hello", "hi",
}

var greetingReplies = []string{
	"Magandang araw! Kamusta ka?",
	"Kumusta! Anong balita?",
	"Mabuti, salamat. Ikaw, kamusta?",
	"Ayos lang ako. Kamusta ka rin?",
}

var fallbackPrompts = []string{
	"Hmm, hindi ko masyadong nakuha. Pwede bang ulitin gamit ang mas simpleng salita?",
	"Pasensya, medyo nalito ako. Maaari mo bang ipaliwanag pa?",
	"Medyo hindi ko naintindihan. Pahingi ng halimbawa?",
}

// Entity-triggered follow-up templates, keyed by entity label group.
var personTemplates = []string{
	"Nabanggit mo si '%s' (%s). Pwede mo bang ikuwento sino siya?",
	"'%s' (%s)? Paano kayo nagkakilala?",
	"Si '%s' (%s) pala! Ano ang pinakanatatandaan mong karanasan kasama siya?",
	"Nabanggit mo si '%s' (%s). Anong papel niya sa buhay mo?",
}

var locationTemplates = []string{
	"Binanggit mo ang lugar na '%s' (%s). Ano ang karanasan mo roon?",
	"Ah, sa '%s' (%s)! Ano ang pinakagusto mo sa lugar na 'yan?",
	"Uy, '%s' (%s)! May espesyal bang alaala ka ro'n?",
	"Sa '%s' (%s)? Ang saya siguro ro'n! Ano ang una mong naiisip kapag naririnig mo ang lugar na 'yan?",
}

var orgTemplates = []string{
	"Ay, '%s' (%s)! Ano ang ginawa mo o natutunan sa lugar na ito?",
	"Ay, '%s' (%s)! Anong koneksyon mo sa organisasyong ito?",
	"Uy, '%s' (%s)! May kwento ka ba tungkol dito?",
	"'%s' (%s)? Paano mo sila nakilala o nalaman?",
}

const genericEntityTemplate = "Nabanggit mo ang '%s' (%s). Pwede mo bang dagdagan ang detalye?"

// ChatReply is the result of one conversation turn.
type ChatReply struct {
	SessionID string       `json:"session_id"`
	Reply     string       `json:"reply"`
	Parts     []string     `json:"parts"`
	Entities  []nlp.Entity `json:"entities"`
	Points    int          `json:"points"`
	Level     int          `json:"level"`
}

// ConversationSummary is the end-of-session report.
type ConversationSummary struct {
	SessionID    string             `json:"session_id"`
	Points       int                `json:"points"`
	Level        int                `json:"level"`
	Entities     []nlp.Entity       `json:"entities"`
	Conversation []ConversationTurn `json:"conversation"`
}

// ConversationService runs the entity-triggered chat practice loop. All
// session state lives in the service's session map behind a lock.
type ConversationService struct {
	provider nlp.Provider

	mu       sync.RWMutex
	sessions map[string]*ConversationSession

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewConversationService creates the service over the tagging provider.
func NewConversationService(provider nlp.Provider, src rand.Source) *ConversationService {
	return &ConversationService{
		provider: provider,
		sessions: make(map[string]*ConversationSession),
		rng:      rand.New(src),
	}
}

// Respond produces the bot reply for message within the session. An empty
// sessionID starts a new session; the assigned ID is returned in the reply.
func (s *ConversationService) Respond(ctx context.Context, sessionID, message string) ChatReply {
	session := s.session(sessionID)
	parts, entities := s.generateParts(ctx, message)
	reply := strings.Join(parts, " ")

	s.mu.Lock()
	session.Log = append(session.Log, ConversationTurn{User: message, Bot: reply, Entities: entities})
	if len(entities) > 0 {
		session.Points += len(entities) * pointsPerEntity
		session.Streak++
	} else {
		session.Streak = 0
	}
	session.Level = 1 + session.Points/pointsPerLevel
	points, level := session.Points, session.Level
	s.mu.Unlock()

	return ChatReply{
		SessionID: session.ID,
		Reply:     reply,
		Parts:     parts,
		Entities:  entities,
		Points:    points,
		Level:     level,
	}
}

// Summary reports the session's accumulated entities and log. ok is false
// for unknown sessions.
func (s *ConversationService) Summary(sessionID string) (ConversationSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ConversationSummary{}, false
	}

	var entities []nlp.Entity
	for _, turn := range session.Log {
		entities = append(entities, turn.Entities...)
	}
	logCopy := make([]ConversationTurn, len(session.Log))
	copy(logCopy, session.Log)

	return ConversationSummary{
		SessionID:    session.ID,
		Points:       session.Points,
		Level:        session.Level,
		Entities:     entities,
		Conversation: logCopy,
	}, true
}

// Reset discards a session. Resetting an unknown session is a no-op.
func (s *ConversationService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *ConversationService) session(id string) *ConversationSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}
	session := &ConversationSession{
		ID:        uuid.NewString(),
		Level:     1,
		CreatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

func (s *ConversationService) generateParts(ctx context.Context, message string) ([]string, []nlp.Entity) {
	lower := strings.ToLower(message)
	for _, greet := range greetingTriggers {
		if strings.Contains(lower, greet) {
			return []string{s.pick(greetingReplies)}, nil
		}
	}

	analysis, err := s.provider.Analyze(ctx, message)
	if err != nil {
		log.Printf("conversation: provider failed for %q: %v", message, err)
		return []string{s.pick(fallbackPrompts)}, nil
	}

	var parts []string
	for _, ent := range analysis.Entities {
		parts = append(parts, s.entityPrompt(ent))
	}
	if len(parts) == 0 {
		return []string{s.pick(fallbackPrompts)}, nil
	}
	return parts, analysis.Entities
}

func (s *ConversationService) entityPrompt(ent nlp.Entity) string {
	var template string
	switch ent.Label {
	case "PER", "PERSON":
		template = s.pick(personTemplates)
	case "LOC", "GPE":
		template = s.pick(locationTemplates)
	case "ORG":
		template = s.pick(orgTemplates)
	default:
		template = genericEntityTemplate
	}
	return fmt.Sprintf(template, ent.Text, ent.Label)
}

func (s *ConversationService) pick(options []string) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return options[s.rng.Intn(len(options))]
}
