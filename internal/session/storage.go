package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/openpulse/console-go/internal/types"
)

// StorageKey namespaces the persisted session document.
const StorageKey = "platform-console-auth"

// State is the only part of a session that survives restarts.
// Authentication status is always recomputed by CheckAuth, never trusted
// from storage.
type State struct {
	Token string           `json:"token,omitempty"`
	User  *types.Principal `json:"user,omitempty"`
}

// Storage persists the session document between process runs.
type Storage interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// FileStorage keeps the session document as a JSON file. Writes go through
// a temp file and rename so a crash never leaves a torn document.
type FileStorage struct {
	path string
}

// NewFileStorage stores the session under dir, using the namespaced key as
// the file name.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}
}

func (f *FileStorage) Load() (State, error) {
	var st State
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt document is treated as no session.
		return State{}, nil
	}
	return st, nil
}

func (f *FileStorage) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is the in-process implementation used by tests and by
// callers that opt out of persistence.
type MemoryStorage struct {
	mu sync.Mutex
	st State
	ok bool
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Load() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		return State{}, nil
	}
	return m.st, nil
}

func (m *MemoryStorage) Save(st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st, m.ok = st, true
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st, m.ok = State{}, false
	return nil
}
