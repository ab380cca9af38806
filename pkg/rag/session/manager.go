package session

import (
	"github.com/bibincs/hackathonchatbot/internal/repository/memory"
	"github.com/bibincs/hackathonchatbot/pkg/rag/itinerary"
	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// Manager handles session operations
type Manager struct {
	sessionRepo *memory.SessionRepository
}

// NewManager creates a new session manager
func NewManager(sessionRepo *memory.SessionRepository) *Manager {
	return &Manager{sessionRepo: sessionRepo}
}

// LoadOrCreate retrieves or creates an in-memory session. A fresh session
// starts with the three itinerary buckets present and Dining as the working
// category. The returned value is a copy: mutations only stick after Save,
// so a failed turn leaves the stored session untouched.
func (m *Manager) LoadOrCreate(sessionID string) *store.Session {
	sess, found := m.sessionRepo.Get(sessionID)
	if !found {
		return &store.Session{
			ID:              sessionID,
			CurrentCategory: store.CategoryDining,
			Itinerary:       itinerary.New(),
		}
	}
	return cloneSession(sess)
}

// Save persists session state
func (m *Manager) Save(session *store.Session) {
	m.sessionRepo.Save(cloneSession(session))
}

// Clear destroys a session
func (m *Manager) Clear(sessionID string) {
	m.sessionRepo.Delete(sessionID)
}

func cloneSession(sess *store.Session) *store.Session {
	clone := *sess

	clone.History = make([]store.ChatMessage, len(sess.History))
	copy(clone.History, sess.History)

	clone.Itinerary = make(map[string][]store.ItineraryEntry, len(sess.Itinerary))
	for category, bucket := range sess.Itinerary {
		entries := make([]store.ItineraryEntry, len(bucket))
		copy(entries, bucket)
		clone.Itinerary[category] = entries
	}

	return &clone
}
