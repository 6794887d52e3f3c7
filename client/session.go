package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"javaconnect/internal/models"
)

// sessionKey is the single storage key the session is kept under.
const sessionKey = "current_user"

// Session is the logged-in user plus their bearer token.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Storage persists the serialized session. Implementations must be safe for
// use from a single SessionStore; the store does its own locking.
type Storage interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// MemoryStorage keeps the session in memory. Used in tests and short-lived
// tools.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (m *MemoryStorage) Read(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStorage persists sessions under a directory, one file per key.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStorage) Read(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (f *FileStorage) Write(key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o600)
}

func (f *FileStorage) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// SessionStore is the single accessor for login state. Components read the
// session through Current and react to changes through Subscribe; nothing
// else touches the underlying storage.
type SessionStore struct {
	mu          sync.Mutex
	storage     Storage
	current     *Session
	subscribers map[int]chan *Session
	nextSubID   int
}

// NewSessionStore creates a store backed by the given storage and loads any
// previously persisted session.
func NewSessionStore(storage Storage) *SessionStore {
	s := &SessionStore{
		storage:     storage,
		subscribers: make(map[int]chan *Session),
	}
	if raw, ok, err := storage.Read(sessionKey); err == nil && ok {
		var session Session
		if json.Unmarshal(raw, &session) == nil && session.Token != "" {
			s.current = &session
		}
	}
	return s
}

// Current returns the active session, or nil when logged out.
func (s *SessionStore) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsLoggedIn reports whether a session with a token is active.
func (s *SessionStore) IsLoggedIn() bool {
	session := s.Current()
	return session != nil && session.Token != ""
}

// Set stores the session and notifies subscribers.
func (s *SessionStore) Set(session *Session) {
	s.mu.Lock()
	s.current = session
	if raw, err := json.Marshal(session); err == nil {
		_ = s.storage.Write(sessionKey, raw)
	}
	s.notifyLocked(session)
	s.mu.Unlock()
}

// Clear removes the session and notifies subscribers with nil.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.current = nil
	_ = s.storage.Delete(sessionKey)
	s.notifyLocked(nil)
	s.mu.Unlock()
}

// Subscribe returns a channel that receives every session change and a cancel
// function that must be called when the subscriber is done. Slow subscribers
// drop notifications rather than block the store.
func (s *SessionStore) Subscribe() (<-chan *Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan *Session, 4)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *SessionStore) notifyLocked(session *Session) {
	for _, ch := range s.subscribers {
		select {
		case ch <- session:
		default:
		}
	}
}
