package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/hangman-engine/pkg/bitset"
)

func TestSetAndTest(t *testing.T) {
	s := bitset.New(8)
	assert.False(t, s.Test(3))
	s.Set(3)
	assert.True(t, s.Test(3))
	assert.False(t, s.Test(4))
}

func TestCardinalityAndIter(t *testing.T) {
	s := bitset.New(10)
	s.Set(1).Set(4).Set(7)
	assert.EqualValues(t, 3, s.Cardinality())
	assert.Equal(t, []uint{1, 4, 7}, s.Iter())
}

func TestClone(t *testing.T) {
	a := bitset.New(4)
	a.Set(1)
	b := a.Clone()
	b.Set(2)
	assert.False(t, a.Test(2))
	assert.True(t, b.Test(1))
}

func TestAndOrAndNot(t *testing.T) {
	a := bitset.New(8)
	a.Set(1).Set(2).Set(3)
	b := bitset.New(8)
	b.Set(2).Set(3).Set(4)

	inter, err := a.Clone().And(b)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, inter.Iter())

	union, err := a.Clone().Or(b)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4}, union.Iter())

	diff, err := a.Clone().AndNot(b)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, diff.Iter())
}

func TestCapacityMismatch(t *testing.T) {
	a := bitset.New(4)
	b := bitset.New(8)
	_, err := a.And(b)
	assert.ErrorIs(t, err, bitset.ErrCapacityMismatch)
}

func TestFull(t *testing.T) {
	f := bitset.Full(5)
	assert.EqualValues(t, 5, f.Cardinality())
	for i := uint(0); i < 5; i++ {
		assert.True(t, f.Test(i))
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	s := bitset.New(4)
	assert.Panics(t, func() { s.Set(10) })
}
