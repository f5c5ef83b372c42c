// Package scores persists high-score entries to a JSON file shared with
// the other implementations of this game. Entries are keyed by grid size
// and ranked by move count, then elapsed time.
package scores

import (
	"errors"
	"sort"
	"time"
)

// DateLayout is the timestamp format stored in the shared file.
const DateLayout = "2006-01-02 15:04:05"

var ErrLockTimeout = errors.New("timed out waiting for score store lock")

// Entry is one finished game. Entries are never mutated after creation.
type Entry struct {
	Moves int     `json:"moves"`
	Time  float64 `json:"time"` // seconds
	Date  string  `json:"date"`
}

// NewEntry builds an entry for a game finished now.
func NewEntry(moves int, elapsed time.Duration) Entry {
	return Entry{
		Moves: moves,
		Time:  elapsed.Seconds(),
		Date:  time.Now().Format(DateLayout),
	}
}

// Store is the high-score persistence contract.
type Store interface {
	// Add appends an entry under the given grid size.
	Add(size int, e Entry) error

	// Get returns the entries for a grid size, best first.
	Get(size int) ([]Entry, error)

	// Sizes returns the grid sizes that have recorded scores, ascending.
	Sizes() ([]int, error)
}

// sortEntries orders entries best-first: fewest moves, ties broken by time.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Moves != entries[j].Moves {
			return entries[i].Moves < entries[j].Moves
		}
		return entries[i].Time < entries[j].Time
	})
}
