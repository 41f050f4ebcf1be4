package setalgebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sa "github.com/xflash-panda/hangman-engine/pkg/setalgebra"
)

func TestEqualSentinelsAndLeaves(t *testing.T) {
	assert.True(t, sa.Equal(sa.Empty(), sa.Empty()))
	assert.True(t, sa.Equal(sa.Universe(), sa.Universe()))
	assert.False(t, sa.Equal(sa.Empty(), sa.Universe()))
	assert.True(t, sa.Equal(sa.Atom("a"), sa.Atom("a")))
	assert.False(t, sa.Equal(sa.Atom("a"), sa.Atom("b")))
}

func TestEqualIsOrderSensitiveForChildren(t *testing.T) {
	assert.False(t, sa.Equal(
		sa.Intersect(sa.Atom("a"), sa.Atom("b")),
		sa.Intersect(sa.Atom("b"), sa.Atom("a")),
	))
}

func TestIntersectPanicsOnNoChildren(t *testing.T) {
	assert.Panics(t, func() { sa.Intersect() })
}

func TestUnionPanicsOnNoChildren(t *testing.T) {
	assert.Panics(t, func() { sa.Union() })
}

func TestSubtractAllowsZeroSubtrahends(t *testing.T) {
	e := sa.Subtract(sa.Atom("a"))
	assert.Len(t, e.Children, 1)
}
