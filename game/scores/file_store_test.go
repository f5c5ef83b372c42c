package scores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "highscores.json"))
}

func TestFileStore_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.Get(4)
	require.NoError(t, err)
	assert.Empty(t, entries)

	sizes, err := store.Sizes()
	require.NoError(t, err)
	assert.Empty(t, sizes)
}

func TestFileStore_AddAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(4, Entry{Moves: 120, Time: 95.5, Date: "2026-08-24 10:00:00"}))
	require.NoError(t, store.Add(4, Entry{Moves: 80, Time: 200.0, Date: "2026-08-24 10:05:00"}))
	require.NoError(t, store.Add(4, Entry{Moves: 80, Time: 150.0, Date: "2026-08-24 10:10:00"}))
	require.NoError(t, store.Add(3, Entry{Moves: 30, Time: 20.0, Date: "2026-08-24 10:15:00"}))

	entries, err := store.Get(4)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ranked by moves first, then time.
	assert.Equal(t, 80, entries[0].Moves)
	assert.Equal(t, 150.0, entries[0].Time)
	assert.Equal(t, 80, entries[1].Moves)
	assert.Equal(t, 200.0, entries[1].Time)
	assert.Equal(t, 120, entries[2].Moves)

	sizes, err := store.Sizes()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, sizes)
}

func TestFileStore_SharedSchema(t *testing.T) {
	// The on-disk layout is a map of stringified grid size to entries; it
	// must stay readable by the other implementations sharing the file.
	store := newTestStore(t)
	require.NoError(t, store.Add(4, Entry{Moves: 10, Time: 5.0, Date: "2026-08-24 10:00:00"}))

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var onDisk map[string][]map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, "4")
	require.Len(t, onDisk["4"], 1)
	assert.EqualValues(t, 10, onDisk["4"][0]["moves"])
	assert.EqualValues(t, 5.0, onDisk["4"][0]["time"])
	assert.Equal(t, "2026-08-24 10:00:00", onDisk["4"][0]["date"])
}

func TestFileStore_PreservesForeignKeys(t *testing.T) {
	store := newTestStore(t)

	// Another implementation may have written keys we don't recognize.
	seed := `{"4": [{"moves": 50, "time": 30.0, "date": "2026-01-01 00:00:00"}], "custom": []}`
	require.NoError(t, os.WriteFile(store.path, []byte(seed), 0644))

	require.NoError(t, store.Add(4, Entry{Moves: 40, Time: 25.0, Date: "2026-08-24 10:00:00"}))

	entries, err := store.Get(4)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 40, entries[0].Moves)

	sizes, err := store.Sizes()
	require.NoError(t, err)
	assert.Equal(t, []int{4}, sizes)
}

func TestFileStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0644))

	_, err := store.Get(4)
	assert.Error(t, err)

	err = store.Add(4, NewEntry(10, 0))
	assert.Error(t, err)
}

func TestFileStore_ConcurrentAppends(t *testing.T) {
	store := newTestStore(t)

	const writers = 8
	const perWriter = 5

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				errs <- store.Add(4, Entry{Moves: 100 + w, Time: float64(i), Date: "2026-08-24 10:00:00"})
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := store.Get(4)
	require.NoError(t, err)
	assert.Len(t, entries, writers*perWriter, "no appends may be lost under concurrency")
}

func TestFileStore_LockReleasedAfterAdd(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Add(4, NewEntry(10, 0)))

	_, err := os.Stat(store.path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock file must be removed after Add")
}

func TestFileStore_StaleLockTakeover(t *testing.T) {
	store := newTestStore(t)
	lockPath := store.path + ".lock"
	require.NoError(t, os.WriteFile(lockPath, []byte("12345\n"), 0644))

	// Backdate the lock so it counts as stale.
	old := time.Now().Add(-2 * lockStaleAfter)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	require.NoError(t, store.Add(4, NewEntry(10, 0)))

	entries, err := store.Get(4)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
