package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when payload format changes.
const schemaVersion uint16 = 1

// Digest identifies chapter content by its SHA-256 hash.
type Digest [sha256.Size]byte

// Key hashes chapter content into a cache key.
func Key(content string) Digest {
	return sha256.Sum256([]byte(content))
}

// Store keeps scrubbed chapter content on disk, keyed by content digest.
// Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// payload is the msgpack-encoded cache entry.
type payload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	ContentHash Digest
	Scrubbed    string
}

// Open initializes a store at the standard cache location for app.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt initializes a store rooted at dir.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key Digest) string {
	// Подкаталог "chapters" — для удобства читаемости/очистки.
	return filepath.Join(s.dir, "chapters", hex.EncodeToString(key[:])+".mp")
}

// Put writes the scrubbed content for key atomically.
func (s *Store) Put(key Digest, scrubbed string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload{Schema: schemaVersion, ContentHash: key, Scrubbed: scrubbed}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get returns the scrubbed content for key, if cached under the current
// schema.
func (s *Store) Get(key Digest) (string, bool, error) {
	if s == nil {
		return "", false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	var pl payload
	if err := msgpack.NewDecoder(f).Decode(&pl); err != nil {
		return "", false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if pl.Schema != schemaVersion || pl.ContentHash != key {
		return "", false, nil
	}
	return pl.Scrubbed, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (s *Store) DropAll() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := s.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(s.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(s.dir, 0o755)
}
