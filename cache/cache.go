// Package cache implements the bounded transposition set the solver uses
// to avoid re-exploring canonical positions it has already visited
// (§4.4). It is a strict LRU: Has promotes a hit to most-recently-used,
// and Add evicts the least-recently-used key once the set is full.
package cache

import (
	"container/list"
	"sync"

	"github.com/pbnjay/memory"
)

// DefaultMaxSize is used when a Solver does not override the transposition
// cache size (§4.4).
const DefaultMaxSize = 1_000_000

// averageKeyBytes is a rough estimate of a canonical_id string's encoded
// length, used only to size the cache relative to system memory.
const averageKeyBytes = 200

// Set is a bounded, strictly-ordered LRU set of canonical position keys.
// A Set is owned by exactly one Solver; the mutex exists so a concurrent
// diagnostics goroutine can safely read Len while the search goroutine
// mutates the set (§4.5 "Diagnostics").
type Set struct {
	mu      sync.Mutex
	maxSize int
	order   *list.List
	index   map[string]*list.Element
}

// New returns an empty Set bounded at maxSize entries. maxSize <= 0 means
// DefaultMaxSize.
func New(maxSize int) *Set {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Set{
		maxSize: maxSize,
		order:   list.New(),
		index:   make(map[string]*list.Element, maxSize),
	}
}

// NewSizedToMemory returns a Set whose capacity is derived from the
// system's total RAM, mirroring the way the teacher's
// endgame/negamax.TranspositionTable.Reset sizes itself off
// memory.TotalMemory() rather than hardcoding a cache size. fraction is
// the portion of total memory the cache may occupy, e.g. 0.25.
func NewSizedToMemory(fraction float64) *Set {
	total := memory.TotalMemory()
	if total == 0 {
		return New(DefaultMaxSize)
	}
	budget := float64(total) * fraction
	size := int(budget / averageKeyBytes)
	if size < 1 {
		size = 1
	}
	if size > DefaultMaxSize*64 {
		size = DefaultMaxSize * 64
	}
	return New(size)
}

// Has reports whether key is present. A hit refreshes key to
// most-recently-used (§4.4).
func (s *Set) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.index[key]
	if !ok {
		return false
	}
	s.order.MoveToFront(el)
	return true
}

// Add inserts key as most-recently-used. If key is already present it is
// only refreshed. If inserting a new key would exceed maxSize, the
// least-recently-used key is evicted first (§4.4).
func (s *Set) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.index[key]; ok {
		s.order.MoveToFront(el)
		return
	}

	el := s.order.PushFront(key)
	s.index[key] = el

	if s.order.Len() > s.maxSize {
		oldest := s.order.Back()
		if oldest != nil {
			s.order.Remove(oldest)
			delete(s.index, oldest.Value.(string))
		}
	}
}

// Len reports the current number of entries.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
