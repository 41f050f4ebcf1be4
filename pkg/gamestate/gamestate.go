// Package gamestate derives a canonical view of a game in progress from a
// referee.Referee — its fingerprint for cache lookups and its set-algebra
// query for candidate evaluation — per spec.md §6.2 and §4.9.
package gamestate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xflash-panda/hangman-engine/pkg/referee"
	"github.com/xflash-panda/hangman-engine/pkg/setalgebra"
	"github.com/xflash-panda/hangman-engine/pkg/term"
)

// Field separator sentinels for the fingerprint grammar. Both are Unicode
// noncharacters, guaranteed never to appear in well-formed corpus text.
const (
	fs = '\uFFFE'
	rs = '\uFFFF'
)

// KnownPosition is a single revealed (index, letter) pair.
type KnownPosition struct {
	Index uint
	Char  rune
}

// State is the referee-visible information relevant to guess selection:
// secret length, revealed positions, and excluded (wrongly-guessed)
// letters.
type State struct {
	Length   uint
	Known    []KnownPosition // ascending by Index
	Excluded []rune          // sorted ascending
}

// FromReferee reads ref's current, referee-visible state.
func FromReferee(ref referee.Referee) State {
	length := ref.SecretWordLength()
	revealed := ref.GuessedSoFar()

	known := make([]KnownPosition, 0, len(revealed))
	for i, c := range revealed {
		if c != referee.Mystery {
			known = append(known, KnownPosition{Index: uint(i), Char: c})
		}
	}

	wrong := ref.IncorrectlyGuessedLetters()
	excluded := make([]rune, 0, len(wrong))
	for c := range wrong {
		excluded = append(excluded, c)
	}
	sort.Slice(excluded, func(i, j int) bool { return excluded[i] < excluded[j] })

	return State{Length: length, Known: known, Excluded: excluded}
}

// Fingerprint renders the canonical, stable cache key for s: two game
// states yield equal fingerprints iff they imply the same
// (length, excluded letters, revealed positions), per spec.md §6.2.
func (s State) Fingerprint() string {
	var b strings.Builder
	b.WriteRune(fs)
	b.WriteString(strconv.FormatUint(uint64(s.Length), 10))
	b.WriteRune(rs)

	b.WriteRune(fs)
	for _, c := range s.Excluded {
		b.WriteRune(c)
	}
	b.WriteRune(rs)

	b.WriteRune(fs)
	for _, k := range s.Known {
		b.WriteRune(fs)
		b.WriteString(strconv.FormatUint(uint64(k.Index), 10))
		b.WriteRune(rs)
		b.WriteRune(fs)
		b.WriteRune(k.Char)
		b.WriteRune(rs)
	}
	b.WriteRune(rs)

	return b.String()
}

// Query builds the set-algebra expression that selects every candidate word
// consistent with s:
//
//	Intersect( Length(L),
//	           Intersect(Position(i, c_i) for each known),
//	           Complement(Union(Position(i, x) for each excluded letter x
//	              and every position i in [0, L))) )
func (s State) Query() *setalgebra.Expr {
	clauses := []*setalgebra.Expr{setalgebra.TermLeaf(term.Length(s.Length))}

	for _, k := range s.Known {
		clauses = append(clauses, setalgebra.TermLeaf(term.Position(k.Index, k.Char)))
	}

	if len(s.Excluded) > 0 {
		var excludedPositions []*setalgebra.Expr
		for i := uint(0); i < s.Length; i++ {
			for _, x := range s.Excluded {
				excludedPositions = append(excludedPositions, setalgebra.TermLeaf(term.Position(i, x)))
			}
		}
		if len(excludedPositions) > 0 {
			clauses = append(clauses, setalgebra.Complement(setalgebra.Union(excludedPositions...)))
		}
	}

	return setalgebra.Intersect(clauses...)
}
