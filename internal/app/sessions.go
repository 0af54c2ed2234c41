package app

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/bmiles/minesweeper-agent/internal/play"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*play.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*play.Session)}
}

func (st *sessionStore) put(s *play.Session) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	id := hex.EncodeToString(buf)

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return id
}

func (st *sessionStore) get(id string) (*play.Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}
