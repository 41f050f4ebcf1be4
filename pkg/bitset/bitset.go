// Package bitset provides a fixed-capacity bit vector used by the index and
// the set-algebra evaluator to represent subsets of a corpus.
package bitset

import (
	"errors"
	"fmt"

	bbbitset "github.com/bits-and-blooms/bitset"
)

// ErrCapacityMismatch is returned when a binary operation is attempted
// between two Sets of differing capacity.
var ErrCapacityMismatch = errors.New("bitset: capacity mismatch")

// Set is a fixed-capacity bit vector. The zero value is not usable; construct
// one with New. Sets combined by And/Or/AndNot must share the same capacity.
type Set struct {
	capacity uint
	bits     *bbbitset.BitSet
}

// New returns an empty Set with the given logical capacity.
func New(capacity uint) *Set {
	return &Set{
		capacity: capacity,
		bits:     bbbitset.New(capacity),
	}
}

// Capacity returns the logical size the Set was constructed with.
func (s *Set) Capacity() uint {
	return s.capacity
}

// Full returns a Set of the given capacity with every bit set.
func Full(capacity uint) *Set {
	s := New(capacity)
	for i := uint(0); i < capacity; i++ {
		s.bits.Set(i)
	}
	return s
}

// Set flips bit i to 1. i must satisfy 0 <= i < Capacity(); out-of-range
// indices are a programmer error and panic, rather than growing the set as
// the underlying library would.
func (s *Set) Set(i uint) *Set {
	s.checkBounds(i)
	s.bits.Set(i)
	return s
}

// Test reports whether bit i is set.
func (s *Set) Test(i uint) bool {
	if i >= s.capacity {
		return false
	}
	return s.bits.Test(i)
}

func (s *Set) checkBounds(i uint) {
	if i >= s.capacity {
		panic(fmt.Sprintf("bitset: index %d out of range for capacity %d", i, s.capacity))
	}
}

// Cardinality returns the number of set bits (popcount).
func (s *Set) Cardinality() uint {
	return s.bits.Count()
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{
		capacity: s.capacity,
		bits:     s.bits.Clone(),
	}
}

// And mutates the receiver to the intersection of s and other, and returns
// the receiver. Both must have the same capacity.
func (s *Set) And(other *Set) (*Set, error) {
	if err := s.requireSameCapacity(other); err != nil {
		return nil, err
	}
	s.bits.InPlaceIntersection(other.bits)
	return s, nil
}

// Or mutates the receiver to the union of s and other, and returns the
// receiver. Both must have the same capacity.
func (s *Set) Or(other *Set) (*Set, error) {
	if err := s.requireSameCapacity(other); err != nil {
		return nil, err
	}
	s.bits.InPlaceUnion(other.bits)
	return s, nil
}

// AndNot mutates the receiver to s minus other (s AND NOT other), and
// returns the receiver. Both must have the same capacity.
func (s *Set) AndNot(other *Set) (*Set, error) {
	if err := s.requireSameCapacity(other); err != nil {
		return nil, err
	}
	s.bits.InPlaceDifference(other.bits)
	return s, nil
}

func (s *Set) requireSameCapacity(other *Set) error {
	if s.capacity != other.capacity {
		return fmt.Errorf("%w: %d != %d", ErrCapacityMismatch, s.capacity, other.capacity)
	}
	return nil
}

// Iter returns the indices of set bits in ascending order. It is a snapshot;
// behavior under concurrent mutation of s is undefined.
func (s *Set) Iter() []uint {
	out := make([]uint, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// Equal reports whether s and other have the same capacity and the same set
// bits.
func (s *Set) Equal(other *Set) bool {
	if s.capacity != other.capacity {
		return false
	}
	return s.bits.Equal(other.bits)
}
