package gamestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/hangman-engine/pkg/gamestate"
	"github.com/xflash-panda/hangman-engine/pkg/referee"
	"github.com/xflash-panda/hangman-engine/pkg/setalgebra"
	"github.com/xflash-panda/hangman-engine/pkg/term"
)

type fakeReferee struct {
	length  uint
	guessed []rune
	wrong   map[rune]struct{}
}

func (f *fakeReferee) SecretWordLength() uint             { return f.length }
func (f *fakeReferee) GuessedSoFar() []rune                { return f.guessed }
func (f *fakeReferee) IncorrectlyGuessedLetters() map[rune]struct{} { return f.wrong }
func (f *fakeReferee) IncorrectlyGuessedWords() map[string]struct{} { return nil }
func (f *fakeReferee) AllGuessedLetters() map[rune]struct{} { return nil }
func (f *fakeReferee) MakeGuess(referee.Guess)              {}
func (f *fakeReferee) Status() referee.Status               { return referee.KeepGuessing }
func (f *fakeReferee) CurrentScore() float64                { return 0 }

func TestFromRefereeExtractsKnownAndExcluded(t *testing.T) {
	ref := &fakeReferee{
		length:  3,
		guessed: []rune{'C', referee.Mystery, 'T'},
		wrong:   map[rune]struct{}{'X': {}, 'B': {}},
	}
	s := gamestate.FromReferee(ref)
	assert.EqualValues(t, 3, s.Length)
	require.Len(t, s.Known, 2)
	assert.Equal(t, gamestate.KnownPosition{Index: 0, Char: 'C'}, s.Known[0])
	assert.Equal(t, gamestate.KnownPosition{Index: 2, Char: 'T'}, s.Known[1])
	assert.Equal(t, []rune{'B', 'X'}, s.Excluded)
}

func TestFingerprintStableAndDistinguishing(t *testing.T) {
	s1 := gamestate.State{Length: 3, Excluded: []rune{'B', 'X'}, Known: []gamestate.KnownPosition{{Index: 0, Char: 'C'}}}
	s2 := gamestate.State{Length: 3, Excluded: []rune{'B', 'X'}, Known: []gamestate.KnownPosition{{Index: 0, Char: 'C'}}}
	s3 := gamestate.State{Length: 3, Excluded: []rune{'B', 'Y'}, Known: []gamestate.KnownPosition{{Index: 0, Char: 'C'}}}

	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())
	assert.NotEqual(t, s1.Fingerprint(), s3.Fingerprint())
}

func TestFingerprintContainsSentinels(t *testing.T) {
	s := gamestate.State{Length: 3}
	fp := s.Fingerprint()
	assert.Contains(t, fp, "￾")
	assert.Contains(t, fp, "￿")
}

func TestQueryBuildsExpectedExpression(t *testing.T) {
	s := gamestate.State{
		Length:   3,
		Known:    []gamestate.KnownPosition{{Index: 0, Char: 'C'}},
		Excluded: []rune{'X'},
	}
	got := s.Query()
	want := setalgebra.Intersect(
		setalgebra.TermLeaf(term.Length(3)),
		setalgebra.TermLeaf(term.Position(0, 'C')),
		setalgebra.Complement(setalgebra.Union(
			setalgebra.TermLeaf(term.Position(0, 'X')),
			setalgebra.TermLeaf(term.Position(1, 'X')),
			setalgebra.TermLeaf(term.Position(2, 'X')),
		)),
	)
	assert.True(t, setalgebra.Equal(want, got))
}

func TestQueryNoExcludedLettersOmitsComplement(t *testing.T) {
	s := gamestate.State{Length: 3, Known: []gamestate.KnownPosition{{Index: 1, Char: 'A'}}}
	got := s.Query()
	want := setalgebra.Intersect(
		setalgebra.TermLeaf(term.Length(3)),
		setalgebra.TermLeaf(term.Position(1, 'A')),
	)
	assert.True(t, setalgebra.Equal(want, got))
}
