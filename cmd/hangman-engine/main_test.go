package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/hangman-engine/pkg/index"
	"github.com/xflash-panda/hangman-engine/pkg/referee"
	"github.com/xflash-panda/hangman-engine/pkg/strategy"
)

func TestApplyFileConfigOnlyFillsUnsetFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("games", "7"))

	games, tries := 3, 99
	cfg := &fileConfig{Games: &games, Tries: &tries}

	f := &flags{games: 1, tries: 5}
	applyFileConfig(cmd, f, cfg)

	assert.Equal(t, 1, f.games, "explicit flag must win over config file")
	assert.Equal(t, 99, f.tries, "unset flag should take the config file value")
}

func TestPlayGameReachesTerminalStatus(t *testing.T) {
	wordsCorpus := []string{"CAB", "CAR", "CAT", "CUT", "CATS", "CROW", "CROWN"}
	ix, err := index.Build(context.Background(), wordsCorpus, 2)
	require.NoError(t, err)
	strat, err := strategy.New(wordsCorpus, ix, strategy.WithTargetCharP(0.5))
	require.NoError(t, err)

	status, score, err := playGame(strat, "CAT", 5)
	require.NoError(t, err)
	assert.Equal(t, referee.Won, status)
	assert.GreaterOrEqual(t, score, float64(0))
}

func TestPlayRefereeLosesAfterTriesExhausted(t *testing.T) {
	ref := newPlayReferee("CAT", 1)
	ref.MakeGuess(referee.GuessLetter('Z'))
	assert.Equal(t, referee.Lost, ref.Status())
}

func TestPlayRefereeWinsOnCorrectWordGuess(t *testing.T) {
	ref := newPlayReferee("CAT", 5)
	ref.MakeGuess(referee.GuessWord("CAT"))
	assert.Equal(t, referee.Won, ref.Status())
}
