package setalgebra

import "github.com/xflash-panda/hangman-engine/pkg/bitset"

// BitsetLike is the capability Evaluate needs from a leaf value: a fixed
// universe size, immutable iteration, and independent copies to combine
// without mutating a caller's index bitset. pkg/bitset.Set satisfies it via
// WrapBitset; test fixtures may supply their own implementation to exercise
// the evaluator against literal int sets, per spec.md §8's evaluator
// scenarios.
type BitsetLike interface {
	Capacity() uint
	Clone() BitsetLike
	And(other BitsetLike) (BitsetLike, error)
	Or(other BitsetLike) (BitsetLike, error)
	AndNot(other BitsetLike) (BitsetLike, error)
	Iter() []uint
}

// bitsetAdapter lets a *bitset.Set satisfy BitsetLike without changing that
// package's fluent, capacity-checked API.
type bitsetAdapter struct {
	set *bitset.Set
}

// WrapBitset adapts a *bitset.Set into a BitsetLike leaf value.
func WrapBitset(s *bitset.Set) BitsetLike {
	return bitsetAdapter{set: s}
}

// Unwrap returns the underlying *bitset.Set, or nil if b was not produced by
// WrapBitset.
func Unwrap(b BitsetLike) *bitset.Set {
	if a, ok := b.(bitsetAdapter); ok {
		return a.set
	}
	return nil
}

func (a bitsetAdapter) Capacity() uint { return a.set.Capacity() }

func (a bitsetAdapter) Clone() BitsetLike { return bitsetAdapter{set: a.set.Clone()} }

func (a bitsetAdapter) And(other BitsetLike) (BitsetLike, error) {
	o, ok := other.(bitsetAdapter)
	if !ok {
		return nil, errIncompatibleBitsetLike
	}
	result, err := a.set.Clone().And(o.set)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{set: result}, nil
}

func (a bitsetAdapter) Or(other BitsetLike) (BitsetLike, error) {
	o, ok := other.(bitsetAdapter)
	if !ok {
		return nil, errIncompatibleBitsetLike
	}
	result, err := a.set.Clone().Or(o.set)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{set: result}, nil
}

func (a bitsetAdapter) AndNot(other BitsetLike) (BitsetLike, error) {
	o, ok := other.(bitsetAdapter)
	if !ok {
		return nil, errIncompatibleBitsetLike
	}
	result, err := a.set.Clone().AndNot(o.set)
	if err != nil {
		return nil, err
	}
	return bitsetAdapter{set: result}, nil
}

func (a bitsetAdapter) Iter() []uint { return a.set.Iter() }
