// Package strategy implements the guess-selection loop over a corpus,
// index, and cache, per spec.md §4.9.
package strategy

import (
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/xflash-panda/hangman-engine/pkg/bitset"
	"github.com/xflash-panda/hangman-engine/pkg/gamestate"
	"github.com/xflash-panda/hangman-engine/pkg/index"
	"github.com/xflash-panda/hangman-engine/pkg/lucache"
	"github.com/xflash-panda/hangman-engine/pkg/referee"
	"github.com/xflash-panda/hangman-engine/pkg/sampler"
	"github.com/xflash-panda/hangman-engine/pkg/setalgebra"
	"github.com/xflash-panda/hangman-engine/pkg/term"
)

const (
	// DefaultSampleSize matches the CLI's -s default.
	DefaultSampleSize = 65536
	// DefaultCacheSize matches the CLI's -c default.
	DefaultCacheSize = 512
	// DefaultTargetCharP matches the CLI's -p default.
	DefaultTargetCharP = 0.7
)

// ErrNoCandidateWords is returned when a corpus has no word left that has
// not already been guessed wrong, so even the failure-mode fallback cannot
// produce a guess.
var ErrNoCandidateWords = errors.New("strategy: no usable corpus word remains")

// distribution is what gets cached per fingerprint: the full candidate word
// list (in ascending corpus-index order — this is exactly the set spec.md
// §6.2 says the fingerprint is equivalent up to), the sample drawn from it,
// and the sample's per-character occurrence counts.
type distribution struct {
	Candidates  []string
	Sample      []string
	Occurrences map[rune]int
	// order records each distinct character's first-encounter position
	// scanning Sample in order, so the "iterator's encounter order" ties
	// in step 4 of spec.md §4.9 are resolved deterministically.
	order []rune
}

// Strategy holds the state a running game's guesses are selected against:
// the corpus, its index, and a cache of fingerprint -> distribution.
type Strategy struct {
	words       []string
	idx         *index.Index
	cache       *lucache.Cache[string, distribution]
	sampleSize  int
	targetCharP float64
}

// Option configures a Strategy.
type Option func(*options)

type options struct {
	sampleSize  int
	cacheSize   int
	targetCharP float64
}

// WithSampleSize overrides DefaultSampleSize.
func WithSampleSize(n int) Option {
	return func(o *options) { o.sampleSize = n }
}

// WithCacheSize overrides DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithTargetCharP overrides DefaultTargetCharP.
func WithTargetCharP(p float64) Option {
	return func(o *options) { o.targetCharP = p }
}

// New builds a Strategy over words and idx (idx must have been built from
// words, in the same order). Returns InvalidConfig-wrapped errors,
// aggregated via multierror, if any option value is out of range.
func New(words []string, idx *index.Index, opts ...Option) (*Strategy, error) {
	o := &options{
		sampleSize:  DefaultSampleSize,
		cacheSize:   DefaultCacheSize,
		targetCharP: DefaultTargetCharP,
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := validate(o); err != nil {
		return nil, err
	}

	return &Strategy{
		words:       words,
		idx:         idx,
		cache:       lucache.New[string, distribution](o.cacheSize),
		sampleSize:  o.sampleSize,
		targetCharP: o.targetCharP,
	}, nil
}

// ErrInvalidConfig wraps every validation failure from New.
var ErrInvalidConfig = errors.New("strategy: invalid config")

func validate(o *options) error {
	var result *multierror.Error
	if o.sampleSize < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: sample size must be >= 1, got %d", ErrInvalidConfig, o.sampleSize))
	}
	if o.cacheSize < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: cache size must be >= 1, got %d", ErrInvalidConfig, o.cacheSize))
	}
	if o.targetCharP < 0 || o.targetCharP > 1 {
		result = multierror.Append(result, fmt.Errorf("%w: target char probability must be in [0,1], got %f", ErrInvalidConfig, o.targetCharP))
	}
	return result.ErrorOrNil()
}

// NextGuess computes the next guess for game, per spec.md §4.9.
func (s *Strategy) NextGuess(game referee.Referee) (referee.Guess, error) {
	state := gamestate.FromReferee(game)
	fp := state.Fingerprint()

	dist, hit := s.cache.Fetch(fp)
	if !hit {
		built, err := s.buildDistribution(state)
		if err != nil {
			return referee.Guess{}, err
		}
		dist = built
		s.cache.Store(fp, dist)
	}

	if len(dist.Candidates) == 0 {
		return s.fallbackGuess(game)
	}

	if len(dist.Sample) == 1 {
		return s.wordGuess(game, dist.Candidates)
	}
	return s.letterGuess(game, dist)
}

func (s *Strategy) buildDistribution(state gamestate.State) (distribution, error) {
	universe := bitsetWrap(bitset.Full(s.idx.Capacity()))
	cfg := setalgebra.Config{
		Universe: universe,
		Resolve:  s.resolveTerm,
	}

	result, err := setalgebra.Evaluate(state.Query(), cfg)
	if err != nil {
		return distribution{}, fmt.Errorf("strategy: evaluate candidates: %w", err)
	}

	indices := result.Iter()
	candidates := make([]string, len(indices))
	for i, idx := range indices {
		candidates[i] = s.words[idx]
	}

	sample := sampler.UniformSample(s.sampleSize, candidates)
	occurrences := sampler.CharacterOccurrences(sample)

	return distribution{
		Candidates:  candidates,
		Sample:      sample,
		Occurrences: occurrences,
		order:       encounterOrder(sample),
	}, nil
}

func (s *Strategy) resolveTerm(payload any) (setalgebra.BitsetLike, error) {
	t, ok := payload.(term.Term)
	if !ok {
		return nil, fmt.Errorf("strategy: unexpected query leaf payload %T", payload)
	}
	set := s.idx.Get(t)
	if set == nil {
		set = bitset.New(s.idx.Capacity())
	}
	return bitsetWrap(set), nil
}

func bitsetWrap(b *bitset.Set) setalgebra.BitsetLike { return setalgebra.WrapBitset(b) }

// wordGuess returns the first candidate not already guessed as a wrong
// word, per spec.md §4.9 step 3.
func (s *Strategy) wordGuess(game referee.Referee, candidates []string) (referee.Guess, error) {
	wrong := game.IncorrectlyGuessedWords()
	for _, w := range candidates {
		if _, bad := wrong[w]; !bad {
			return referee.GuessWord(w), nil
		}
	}
	return s.fallbackGuess(game)
}

// letterGuess implements spec.md §4.9 step 4.
func (s *Strategy) letterGuess(game referee.Referee, dist distribution) (referee.Guess, error) {
	guessedLetters := game.AllGuessedLetters()
	target := float64(len(dist.Sample)) * s.targetCharP

	// A tie in |value - target| is broken by keeping the later candidate in
	// encounter order (<=, not <): e.g. corpus [CAB,CAR,CAT,CUT,CATS,CROW,
	// CROWN] with target_char_p=0.5, after T is revealed the remaining
	// candidates are CAT/CUT, target=1, and A and U both occur once — the
	// spec's worked end-to-end scenario requires U, the later of the two.
	var best rune
	haveBest := false
	bestDiff := 0.0
	for _, c := range dist.order {
		if _, already := guessedLetters[c]; already {
			continue
		}
		diff := target - float64(dist.Occurrences[c])
		if diff < 0 {
			diff = -diff
		}
		if !haveBest || diff <= bestDiff {
			best = c
			bestDiff = diff
			haveBest = true
		}
	}
	if !haveBest {
		return s.fallbackGuess(game)
	}
	return referee.GuessLetter(best), nil
}

// fallbackGuess implements spec.md §4.9's failure mode: the candidate
// bitset (or the sample built from it) was empty, or every candidate and
// every letter has already been exhausted. Returns an unguessed corpus
// word, smallest index first.
func (s *Strategy) fallbackGuess(game referee.Referee) (referee.Guess, error) {
	wrong := game.IncorrectlyGuessedWords()
	for _, w := range s.words {
		if _, bad := wrong[w]; !bad {
			return referee.GuessWord(w), nil
		}
	}
	return referee.Guess{}, ErrNoCandidateWords
}

// encounterOrder returns each distinct character in sample, in the order it
// is first seen scanning sample's words in order and, within a word, its
// runes in order.
func encounterOrder(sample []string) []rune {
	seen := make(map[rune]bool)
	var order []rune
	for _, w := range sample {
		for _, c := range w {
			if !seen[c] {
				seen[c] = true
				order = append(order, c)
			}
		}
	}
	return order
}
