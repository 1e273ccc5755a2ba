package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	cart "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/clock"
)

// ErrSessionNotFound indicates the session id is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 2 * time.Hour

// Store keeps session states in memory. Nothing survives a restart.
// Each session is driven by one visitor, but the HTTP server may serve
// several visitors at once, so access is serialized.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	clock    clock.Clock
	ttl      time.Duration
}

type entry struct {
	state    State
	lastSeen time.Time
}

// NewStore creates an empty Store. A non-positive ttl uses DefaultTTL.
func NewStore(clk clock.Clock, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		clock:    clk,
		ttl:      ttl,
	}
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, State) {
	id := uuid.NewString()
	st := New(cart.NewSequenceGenerator(""))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{state: st, lastSeen: s.clock.Now()}
	return id, st
}

// Get returns the current state and refreshes the session's idle timer.
func (s *Store) Get(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.live(id)
	if err != nil {
		return State{}, err
	}
	e.lastSeen = s.clock.Now()
	return e.state, nil
}

// Update replaces the session's state with fn(current) atomically.
func (s *Store) Update(id string, fn func(State) State) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.live(id)
	if err != nil {
		return State{}, err
	}
	e.state = fn(e.state)
	e.lastSeen = s.clock.Now()
	return e.state, nil
}

// Delete forgets the session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Sweep drops every expired session and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	n := 0
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len is the number of sessions held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// live must be called with mu held.
func (s *Store) live(id string) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(e, s.clock.Now()) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastSeen) >= s.ttl
}
