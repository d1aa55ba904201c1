package dataset

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Snapshot is one loaded, normalized, validated dataset kept for the session
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Table    *Table
}

// Loader provides a read-through memoized load of the dataset file.
// Concurrent first loads are collapsed into a single read.
type Loader struct {
	path  string
	group singleflight.Group

	mu   sync.RWMutex
	snap *Snapshot
}

// NewLoader creates a loader for one dataset file path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the cached snapshot, reading and validating the file on the
// first call. A failed load is not cached so a fixed file can be retried.
func (l *Loader) Load() (*Snapshot, error) {
	l.mu.RLock()
	snap := l.snap
	l.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	v, err, _ := l.group.Do("load", func() (interface{}, error) {
		return l.read()
	})
	if err != nil {
		return nil, err
	}

	snap = v.(*Snapshot)
	l.mu.Lock()
	if l.snap == nil {
		l.snap = snap
	} else {
		snap = l.snap
	}
	l.mu.Unlock()

	return snap, nil
}

// Reload drops the cached snapshot and loads the file again
func (l *Loader) Reload() (*Snapshot, error) {
	l.mu.Lock()
	l.snap = nil
	l.mu.Unlock()
	return l.Load()
}

// Loaded reports whether a snapshot is cached
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap != nil
}

func (l *Loader) read() (*Snapshot, error) {
	table, err := NewDataReader(l.path).ReadTable()
	if err != nil {
		return nil, err
	}

	Normalize(table)
	if err := Validate(table); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now(),
		Table:    table,
	}
	log.Printf("[Loader] Dataset snapshot %s loaded (%d rows, %d columns)", snap.ID, table.RowCount(), len(table.Headers))
	return snap, nil
}
