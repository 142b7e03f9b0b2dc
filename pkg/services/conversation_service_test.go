package services

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"tagalog-nlp-api/pkg/nlp"
)

func newChatService(entities []nlp.Entity) *ConversationService {
	provider := &stubProvider{
		name:     "calamancy",
		syntax:   true,
		analysis: &nlp.Analysis{Entities: entities},
	}
	return NewConversationService(provider, rand.NewSource(1))
}

func TestRespondGreeting(t *testing.T) {
	svc := newChatService(nil)

	reply := svc.Respond(context.Background(), "", "Kamusta ka?")
	if reply.SessionID == "" {
		t.Fatal("Expected a session ID to be assigned")
	}

	found := false
	for _, greeting := range greetingReplies {
		if reply.Reply == greeting {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a greeting reply, got %q", reply.Reply)
	}
	if len(reply.Entities) != 0 {
		t.Errorf("Greetings should not report entities, got %v", reply.Entities)
	}
}

func TestRespondEntityTemplates(t *testing.T) {
	testCases := []struct {
		entity   nlp.Entity
		fragment string
	}{
		{nlp.Entity{Text: "Jose", Label: "PER"}, "Jose"},
		{nlp.Entity{Text: "Maynila", Label: "LOC"}, "Maynila"},
		{nlp.Entity{Text: "DepEd", Label: "ORG"}, "DepEd"},
		{nlp.Entity{Text: "Lunes", Label: "DATE"}, "Lunes"},
	}

	for _, tc := range testCases {
		svc := newChatService([]nlp.Entity{tc.entity})
		reply := svc.Respond(context.Background(), "", "May kwento ako tungkol diyan.")

		if !strings.Contains(reply.Reply, tc.fragment) {
			t.Errorf("Entity %v: reply %q does not mention the entity", tc.entity, reply.Reply)
		}
		if !strings.Contains(reply.Reply, tc.entity.Label) {
			t.Errorf("Entity %v: reply %q does not mention the label", tc.entity, reply.Reply)
		}
		if reply.Points != pointsPerEntity {
			t.Errorf("Entity %v: expected %d points, got %d", tc.entity, pointsPerEntity, reply.Points)
		}
	}
}

func TestRespondFallbackPrompt(t *testing.T) {
	svc := newChatService(nil)

	reply := svc.Respond(context.Background(), "", "Walang laman ito.")
	found := false
	for _, prompt := range fallbackPrompts {
		if reply.Reply == prompt {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a fallback prompt, got %q", reply.Reply)
	}
	if reply.Points != 0 {
		t.Errorf("Expected no points without entities, got %d", reply.Points)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newChatService([]nlp.Entity{{Text: "Cebu", Label: "LOC"}})

	a := svc.Respond(context.Background(), "", "Pumunta ako sa Cebu.")
	b := svc.Respond(context.Background(), "", "Pumunta ako sa Cebu.")

	if a.SessionID == b.SessionID {
		t.Fatal("Expected distinct sessions for empty session IDs")
	}

	// A second turn in session A accumulates points there only.
	a2 := svc.Respond(context.Background(), a.SessionID, "Bumalik ako sa Cebu.")
	if a2.Points != 2*pointsPerEntity {
		t.Errorf("Expected %d points after two entity turns, got %d", 2*pointsPerEntity, a2.Points)
	}

	summaryB, ok := svc.Summary(b.SessionID)
	if !ok {
		t.Fatal("Expected session B to exist")
	}
	if summaryB.Points != pointsPerEntity {
		t.Errorf("Session B points leaked: expected %d, got %d", pointsPerEntity, summaryB.Points)
	}
}

func TestSummaryAndReset(t *testing.T) {
	svc := newChatService([]nlp.Entity{{Text: "Rizal", Label: "PER"}})

	reply := svc.Respond(context.Background(), "", "Sino si Rizal?")

	summary, ok := svc.Summary(reply.SessionID)
	if !ok {
		t.Fatal("Expected summary for live session")
	}
	if len(summary.Conversation) != 1 {
		t.Errorf("Expected 1 logged turn, got %d", len(summary.Conversation))
	}
	if len(summary.Entities) != 1 || summary.Entities[0].Text != "Rizal" {
		t.Errorf("Unexpected entities in summary: %v", summary.Entities)
	}

	svc.Reset(reply.SessionID)
	if _, ok := svc.Summary(reply.SessionID); ok {
		t.Error("Expected summary to fail after reset")
	}

	// Resetting twice is a no-op.
	svc.Reset(reply.SessionID)
}

func TestLevelProgression(t *testing.T) {
	svc := newChatService([]nlp.Entity{
		{Text: "Jose", Label: "PER"},
		{Text: "Maynila", Label: "LOC"},
		{Text: "DepEd", Label: "ORG"},
	})

	var sessionID string
	var last ChatReply
	for i := 0; i < 2; i++ {
		last = svc.Respond(context.Background(), sessionID, "Si Jose ay taga-Maynila at nagtatrabaho sa DepEd.")
		sessionID = last.SessionID
	}

	// 6 entities at 10 points each crosses the 50-point level threshold.
	if last.Points != 60 {
		t.Errorf("Expected 60 points, got %d", last.Points)
	}
	if last.Level != 2 {
		t.Errorf("Expected level 2, got %d", last.Level)
	}
}
