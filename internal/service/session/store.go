// Package session holds per-session draft state. Sessions live in memory
// only; a restart resets everything to defaults.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"mockshot/internal/domain/models"
)

// ErrNotFound means the session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session owns the two mock drafts for one generator session.
type Session struct {
	ID        string              `json:"id"`
	Chat      models.ChatDraft    `json:"chat"`
	Trading   models.TradingDraft `json:"trading"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (s *Session) clone() *Session {
	out := *s
	out.Chat = s.Chat.Clone()
	out.Trading = s.Trading.Clone()
	return &out
}

type entry struct {
	s   *Session
	exp time.Time
}

// Store is a TTL-bounded in-memory session table. Expired entries are
// dropped lazily on access.
type Store struct {
	mu  sync.RWMutex
	m   map[string]*entry
	ttl time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{m: make(map[string]*entry), ttl: ttl}
}

// Create registers a new session seeded with default drafts.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Chat:      models.DefaultChatDraft(),
		Trading:   models.DefaultTradingDraft(),
		CreatedAt: time.Now(),
	}
	st.mu.Lock()
	st.m[s.ID] = &entry{s: s, exp: time.Now().Add(st.ttl)}
	st.mu.Unlock()
	return s.clone()
}

// Get returns a snapshot copy of the session.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	e, ok := st.m[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		st.mu.Lock()
		delete(st.m, id)
		st.mu.Unlock()
		return nil, ErrNotFound
	}
	return e.s.clone(), nil
}

// Update stages fn against a copy of the session under the store lock and
// commits it only on success, so a failed update never leaves partial state.
// The TTL is refreshed on every successful update.
func (st *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(st.m, id)
		return nil, ErrNotFound
	}
	staged := e.s.clone()
	if err := fn(staged); err != nil {
		return nil, err
	}
	e.s = staged
	e.exp = time.Now().Add(st.ttl)
	return staged.clone(), nil
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.m, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions (expired entries included until
// their next access).
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.m)
}
