package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

const (
	lockRetryInterval = 10 * time.Millisecond
	lockTimeout       = 2 * time.Second

	// A lock file older than this belongs to a crashed process and is
	// taken over.
	lockStaleAfter = 10 * time.Second
)

// FileStore keeps all scores in a single JSON file. The file maps grid
// size (as a string key, matching the schema of the other implementations)
// to a list of entries.
//
// Appends are read-modify-write under a sibling lock file so that several
// frontend instances sharing one store cannot corrupt it. The data file
// itself is replaced atomically via rename.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON file at path. The file
// is created lazily on the first Add.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Add appends an entry under the given grid size and rewrites the file.
func (fs *FileStore) Add(size int, e Entry) error {
	unlock, err := fs.lock()
	if err != nil {
		return err
	}
	defer unlock()

	scores, err := fs.load()
	if err != nil {
		return err
	}

	key := strconv.Itoa(size)
	scores[key] = append(scores[key], e)
	sortEntries(scores[key])

	return fs.write(scores)
}

// Get returns the entries for a grid size, best first. A missing file is
// an empty store, not an error.
func (fs *FileStore) Get(size int) ([]Entry, error) {
	scores, err := fs.load()
	if err != nil {
		return nil, err
	}
	entries := scores[strconv.Itoa(size)]
	sortEntries(entries)
	return entries, nil
}

// Sizes returns the grid sizes with at least one recorded score, ascending.
func (fs *FileStore) Sizes() ([]int, error) {
	scores, err := fs.load()
	if err != nil {
		return nil, err
	}

	sizes := make([]int, 0, len(scores))
	for key, entries := range scores {
		if len(entries) == 0 {
			continue
		}
		size, err := strconv.Atoi(key)
		if err != nil {
			// Foreign key written by another implementation; skip it
			// rather than failing the whole listing.
			continue
		}
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes, nil
}

// load reads the whole store. A missing file yields an empty map.
func (fs *FileStore) load() (map[string][]Entry, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	scores := map[string][]Entry{}
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("failed to parse score file: %w", err)
	}
	return scores, nil
}

// write replaces the store file atomically.
func (fs *FileStore) write(scores map[string][]Entry) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create score directory: %w", err)
	}

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	data = append(data, '\n')

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace score file: %w", err)
	}
	return nil
}

// lock acquires the single-writer lock by exclusively creating a sibling
// lock file. It returns the release function.
func (fs *FileStore) lock() (func(), error) {
	lockPath := fs.path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create score directory: %w", err)
	}

	deadline := time.Now().Add(lockTimeout)
	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lock file: %w", err)
		}

		// Lock held by someone else. Break stale locks from crashed
		// processes, otherwise wait and retry.
		if info, statErr := os.Stat(lockPath); statErr == nil {
			if time.Since(info.ModTime()) > lockStaleAfter {
				os.Remove(lockPath)
				continue
			}
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockRetryInterval)
	}
}
