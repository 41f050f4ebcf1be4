package setalgebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sa "github.com/xflash-panda/hangman-engine/pkg/setalgebra"
)

func TestNormalizeDedupsIntersectChildren(t *testing.T) {
	got := sa.Normalize(sa.Intersect(sa.Atom("a"), sa.Atom("b"), sa.Atom("a")))
	want := sa.Intersect(sa.Atom("a"), sa.Atom("b"))
	assert.True(t, sa.Equal(want, got), "got %v", got)
}

func TestNormalizeSortsByRankStably(t *testing.T) {
	got := sa.Normalize(sa.Union(sa.Atom("z"), sa.Intersect(sa.Atom("x"), sa.Atom("y")), sa.Universe()))
	want := sa.Union(sa.Universe(), sa.Intersect(sa.Atom("x"), sa.Atom("y")), sa.Atom("z"))
	assert.True(t, sa.Equal(want, got), "got %v", got)
}

func TestNormalizeLeavesComplementAlone(t *testing.T) {
	expr := sa.Complement(sa.Union(sa.Atom("a"), sa.Atom("b")))
	got := sa.Normalize(expr)
	assert.True(t, sa.Equal(expr, got), "got %v", got)
}

func TestNormalizePreservesSubtractMinuend(t *testing.T) {
	got := sa.Normalize(sa.Subtract(sa.Atom("x"), sa.Atom("c"), sa.Atom("a"), sa.Atom("b")))
	assert.Equal(t, "x", got.Children[0].Key[len("atom:"):])
	assert.Len(t, got.Children, 4)
}
