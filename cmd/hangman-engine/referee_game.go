package main

import (
	"github.com/xflash-panda/hangman-engine/pkg/referee"
)

// playReferee is a self-play referee.Referee driven by a known secret word
// and a wrong-guess budget, used by the batch runner to score Strategy's
// play against its own corpus.
type playReferee struct {
	secret  []rune
	guessed []rune
	tries   int

	wrongLetters map[rune]struct{}
	wrongWords   map[string]struct{}
	allLetters   map[rune]struct{}
}

func newPlayReferee(secret string, tries int) *playReferee {
	s := []rune(secret)
	guessed := make([]rune, len(s))
	for i := range guessed {
		guessed[i] = referee.Mystery
	}
	return &playReferee{
		secret:       s,
		guessed:      guessed,
		tries:        tries,
		wrongLetters: make(map[rune]struct{}),
		wrongWords:   make(map[string]struct{}),
		allLetters:   make(map[rune]struct{}),
	}
}

func (p *playReferee) SecretWordLength() uint { return uint(len(p.secret)) }

func (p *playReferee) GuessedSoFar() []rune { return p.guessed }

func (p *playReferee) IncorrectlyGuessedLetters() map[rune]struct{} { return p.wrongLetters }

func (p *playReferee) IncorrectlyGuessedWords() map[string]struct{} { return p.wrongWords }

func (p *playReferee) AllGuessedLetters() map[rune]struct{} { return p.allLetters }

func (p *playReferee) CurrentScore() float64 {
	return float64(len(p.wrongLetters) + len(p.wrongWords))
}

func (p *playReferee) MakeGuess(g referee.Guess) {
	switch g.Kind {
	case referee.KindLetter:
		p.allLetters[g.Letter] = struct{}{}
		hit := false
		for i, c := range p.secret {
			if c == g.Letter {
				p.guessed[i] = c
				hit = true
			}
		}
		if !hit {
			p.wrongLetters[g.Letter] = struct{}{}
		}
	case referee.KindWord:
		if g.Word == string(p.secret) {
			for i, c := range p.secret {
				p.guessed[i] = c
			}
			return
		}
		p.wrongWords[g.Word] = struct{}{}
	}
}

func (p *playReferee) Status() referee.Status {
	revealed := true
	for _, c := range p.guessed {
		if c == referee.Mystery {
			revealed = false
			break
		}
	}
	if revealed {
		return referee.Won
	}
	if len(p.wrongLetters)+len(p.wrongWords) >= p.tries {
		return referee.Lost
	}
	return referee.KeepGuessing
}
