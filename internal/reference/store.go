package reference

import "sync/atomic"

// Store holds the current catalog snapshot.
// スナップショット自体は不変なので、読み手はロックなしで安全に参照できる。
// リロードはポインタの差し替えのみで行う。
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store primed with the given snapshot.
func NewStore(initial *Catalog) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Replace swaps in a new snapshot atomically.
func (s *Store) Replace(catalog *Catalog) {
	s.current.Store(catalog)
}
