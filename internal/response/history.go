package response

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultHistorySize bounds how many concurrent sessions keep history in
// memory before the least recently used one is evicted.
const defaultHistorySize = 128

// systemPrompt seeds every new session.
const systemPrompt = "You are a helpful assistant called Verbi. " +
	"Keep your answers short and suitable for being spoken aloud."

// ConversationStore holds per-session conversation history, bounded by an
// LRU cache so long-running processes do not grow without limit.
type ConversationStore struct {
	cache *lru.Cache[string, []Message]
}

// NewConversationStore creates a store bounded to the default session count.
func NewConversationStore() (*ConversationStore, error) {
	cache, err := lru.New[string, []Message](defaultHistorySize)
	if err != nil {
		return nil, err
	}

	return &ConversationStore{cache: cache}, nil
}

// Get returns the history for sessionID, seeding it with the system prompt
// on first use.
func (s *ConversationStore) Get(sessionID string) []Message {
	if messages, ok := s.cache.Get(sessionID); ok {
		return messages
	}

	seeded := []Message{{Role: RoleSystem, Content: systemPrompt}}
	s.cache.Add(sessionID, seeded)

	return seeded
}

// Append adds messages to the session's history.
func (s *ConversationStore) Append(sessionID string, messages ...Message) {
	history := s.Get(sessionID)
	s.cache.Add(sessionID, append(history, messages...))
}

// Reset drops the session's history.
func (s *ConversationStore) Reset(sessionID string) {
	s.cache.Remove(sessionID)
}

// Len returns the number of sessions currently held.
func (s *ConversationStore) Len() int {
	return s.cache.Len()
}
