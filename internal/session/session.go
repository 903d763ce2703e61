// Package session holds the tab-scoped authentication state that gates the
// investor material. One Store exists per tab-equivalent unit; it is never
// shared across tabs and never visible server-side.
package session

import (
	"encoding/json"

	"github.com/leasemint/dataroom/internal/i18n"
)

// StorageKey is the single key under which the session is persisted.
const StorageKey = "vc_auth_state"

// State is the persisted session layout.
type State struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	Lang            i18n.Language `json:"lang,omitempty"`
}

// Storage is the persistence backend for a session. Implementations map to
// tab-scoped stores; a failing backend must only ever degrade the session to
// "not authenticated", never surface an error to the user.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Store owns the session state for one tab. Mutations happen synchronously
// on the calling goroutine; the portal's event model never races them.
type Store struct {
	storage Storage
	state   State
	loaded  bool
}

// NewStore creates a Store over the given backend. The session starts
// unauthenticated until Load has run.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads a previously persisted session. An absent key, malformed
// payload, or storage failure all silently leave the initial unauthenticated
// state in place. Persistence writes are refused until Load has completed so
// a default state can never clobber a real persisted session during startup.
func (s *Store) Load() {
	defer func() { s.loaded = true }()

	raw, err := s.storage.Get(StorageKey)
	if err != nil || raw == "" {
		return
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return
	}
	// An authenticated session without a language is malformed; ignore it.
	if st.IsAuthenticated && !st.Lang.Valid() {
		return
	}
	s.state = st
}

// Login marks the session authenticated for the given language and persists
// it. The in-memory state is updated before the write so readers observe the
// login even when the backend fails.
func (s *Store) Login(lang i18n.Language) {
	if !s.loaded {
		return
	}
	s.state = State{IsAuthenticated: true, Lang: lang}
	s.persist()
}

// Logout resets the session and removes the persisted copy.
func (s *Store) Logout() {
	if !s.loaded {
		return
	}
	s.state = State{}
	_ = s.storage.Remove(StorageKey)
}

// Current returns the session state as observed right now.
func (s *Store) Current() State {
	return s.state
}

// Authenticated reports whether the session is authenticated for the given
// language.
func (s *Store) Authenticated(lang i18n.Language) bool {
	return s.state.IsAuthenticated && s.state.Lang == lang
}

func (s *Store) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		return
	}
	_ = s.storage.Set(StorageKey, string(data))
}
