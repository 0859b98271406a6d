package foreststore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

// ErrEmptyName is returned when a forest is stored without a name.
var ErrEmptyName = errors.New("forest name must not be empty")

// Snapshot is a stored forest together with the facts computed when it was
// stored. Forest must be treated as read-only.
type Snapshot struct {
	Name     string      `json:"name"`
	Forest   tree.Forest `json:"-"`
	Stats    tree.Stats  `json:"stats"`
	StoredAt time.Time   `json:"storedAt"`
}

// Store is an in-memory collection of named forest snapshots.
type Store struct {
	forests sync.Map // Key: forest name, Value: *Snapshot
	now     func() time.Time
}

// New creates a new, empty forest store.
func New() *Store {
	return &Store{now: time.Now}
}

// Put stores forest under name, replacing any previous snapshot.
func (s *Store) Put(ctx context.Context, name string, forest tree.Forest) (*Snapshot, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	snap := &Snapshot{
		Name:     name,
		Forest:   forest,
		Stats:    tree.StatsOf(forest),
		StoredAt: s.now().UTC(),
	}
	_, replaced := s.forests.Swap(name, snap)
	ctxlog.FromContext(ctx).Debug("Forest stored.", "name", name, "nodes", snap.Stats.Nodes, "replaced", replaced)
	return snap, nil
}

// Get returns the snapshot stored under name.
func (s *Store) Get(ctx context.Context, name string) (*Snapshot, bool) {
	v, ok := s.forests.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Snapshot), true
}

// Delete removes the snapshot stored under name and reports whether there
// was one.
func (s *Store) Delete(ctx context.Context, name string) bool {
	_, ok := s.forests.LoadAndDelete(name)
	if ok {
		ctxlog.FromContext(ctx).Debug("Forest deleted.", "name", name)
	}
	return ok
}

// List returns every snapshot ordered by name.
func (s *Store) List(ctx context.Context) []*Snapshot {
	snaps := []*Snapshot{}
	s.forests.Range(func(_, v any) bool {
		snaps = append(snaps, v.(*Snapshot))
		return true
	})
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })
	return snaps
}
