// Package index builds and holds the term -> bitset inverted index over a
// corpus, per spec.md §4.2.
package index

import (
	"context"
	"fmt"
	"sync"

	"github.com/xflash-panda/hangman-engine/pkg/bitset"
	"github.com/xflash-panda/hangman-engine/pkg/parallel"
	"github.com/xflash-panda/hangman-engine/pkg/term"
)

// Index is a read-only (after Build returns) mapping from Term to the
// bitset of corpus positions matching that term.
type Index struct {
	capacity uint
	terms    map[term.Term]*bitset.Set
}

// entry pairs a shared bitset with the lock that serializes Set calls on it
// during Build; see spec.md §5 ("set(i) on a shared bitset must be
// internally serialized").
type entry struct {
	mu  sync.Mutex
	set *bitset.Set
}

// Build indexes corpus, partitioning the word range across threads
// goroutines via parallel.PeachIndexed. Returns an Index whose bitsets have
// capacity len(corpus).
func Build(ctx context.Context, corpus []string, threads int) (*Index, error) {
	capacity := uint(len(corpus))

	shared := &sync.Map{} // term.Term -> *entry

	getOrInsert := func(t term.Term) *entry {
		if v, ok := shared.Load(t); ok {
			return v.(*entry)
		}
		e := &entry{set: bitset.New(capacity)}
		actual, _ := shared.LoadOrStore(t, e)
		return actual.(*entry)
	}

	err := parallel.PeachIndexed(ctx, corpus, threads, func(_ context.Context, i int, word string) error {
		bit := uint(i)
		runes := []rune(word)

		lengthEntry := getOrInsert(term.Length(uint(len(runes))))
		lengthEntry.mu.Lock()
		lengthEntry.set.Set(bit)
		lengthEntry.mu.Unlock()

		for pos, c := range runes {
			posEntry := getOrInsert(term.Position(uint(pos), c))
			posEntry.mu.Lock()
			posEntry.set.Set(bit)
			posEntry.mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index: build: %w", err)
	}

	terms := make(map[term.Term]*bitset.Set)
	shared.Range(func(key, value any) bool {
		terms[key.(term.Term)] = value.(*entry).set
		return true
	})

	return &Index{capacity: capacity, terms: terms}, nil
}

// Capacity returns the corpus cardinality the Index was built with.
func (ix *Index) Capacity() uint {
	return ix.capacity
}

// Get returns the bitset for term t, or nil if t has zero matches. The
// returned bitset is owned by the Index and must be treated as read-only
// unless cloned.
func (ix *Index) Get(t term.Term) *bitset.Set {
	return ix.terms[t]
}

