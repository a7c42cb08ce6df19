package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotto/internal/models"
)

func TestPrizeFor_DefaultLadder(t *testing.T) {
	cfg := models.DefaultGameConfig()
	const jackpot = 35_000_000

	want := map[int]int64{6: jackpot, 5: 50_000, 4: 1_000, 3: 50, 2: 2, 1: 0, 0: 0}
	for matches, prize := range want {
		got, _ := prizeFor(cfg, jackpot, matches)
		assert.Equal(t, prize, got, "matches=%d", matches)
	}
}

func TestPrizeFor_NonIncreasing(t *testing.T) {
	for _, selectCount := range []int{1, 2, 4, 6, 8, 10} {
		cfg := models.DefaultGameConfig()
		cfg.SelectCount = selectCount
		cfg.TotalNumbers = 80

		prev, _ := prizeFor(cfg, cfg.MinJackpot, selectCount)
		for matches := selectCount - 1; matches >= 0; matches-- {
			got, _ := prizeFor(cfg, cfg.MinJackpot, matches)
			require.LessOrEqual(t, got, prev, "selectCount=%d matches=%d", selectCount, matches)
			prev = got
		}
	}
}

func TestPrizeFor_RelativeOffsets(t *testing.T) {
	cfg := models.DefaultGameConfig()
	cfg.SelectCount = 8
	cfg.TotalNumbers = 70

	cases := []struct {
		matches int
		prize   int64
		outcome models.Outcome
	}{
		{8, cfg.MinJackpot, models.OutcomeJackpot},
		{7, 50_000, models.OutcomeWin},
		{6, 1_000, models.OutcomeWin},
		{5, 50, models.OutcomeWin},
		{4, cfg.TicketPrice, models.OutcomeFreePlay},
		{3, 0, models.OutcomeLose},
		{0, 0, models.OutcomeLose},
	}
	for _, tc := range cases {
		prize, outcome := prizeFor(cfg, cfg.MinJackpot, tc.matches)
		assert.Equal(t, tc.prize, prize, "matches=%d", tc.matches)
		assert.Equal(t, tc.outcome, outcome, "matches=%d", tc.matches)
	}
}

func TestPrizeFor_SmallGamesPayOnZeroMatches(t *testing.T) {
	cases := []struct {
		selectCount int
		prize       int64
		outcome     models.Outcome
	}{
		{1, 50_000, models.OutcomeWin},
		{2, 1_000, models.OutcomeWin},
		{3, 50, models.OutcomeWin},
		{4, 2, models.OutcomeFreePlay},
		{5, 0, models.OutcomeLose},
	}
	for _, tc := range cases {
		cfg := models.DefaultGameConfig()
		cfg.SelectCount = tc.selectCount

		prize, outcome := prizeFor(cfg, cfg.MinJackpot, 0)
		assert.Equal(t, tc.prize, prize, "selectCount=%d", tc.selectCount)
		assert.Equal(t, tc.outcome, outcome, "selectCount=%d", tc.selectCount)
	}
}

func TestPrizeLadder(t *testing.T) {
	e := newTestEngine(t, models.DefaultGameConfig(), WithJackpot(12_345_678))

	tiers := e.PrizeLadder()
	require.Len(t, tiers, 5)
	assert.Equal(t, models.PrizeTier{Matches: 6, Prize: 12_345_678, Label: "Jackpot (match 6)", Outcome: models.OutcomeJackpot}, tiers[0])
	assert.Equal(t, models.PrizeTier{Matches: 5, Prize: 50_000, Label: "Match 5 of 6", Outcome: models.OutcomeWin}, tiers[1])
	assert.Equal(t, models.PrizeTier{Matches: 2, Prize: 2, Label: "Free play (match 2)", Outcome: models.OutcomeFreePlay}, tiers[4])
}

func TestPrizeLadder_SmallGame(t *testing.T) {
	cfg := models.DefaultGameConfig()
	cfg.SelectCount = 3
	e := newTestEngine(t, cfg)

	tiers := e.PrizeLadder()
	require.Len(t, tiers, 4)
	assert.Equal(t, 3, tiers[0].Matches)
	assert.Equal(t, 2, tiers[1].Matches)
	assert.Equal(t, 1, tiers[2].Matches)
	assert.Equal(t, models.PrizeTier{Matches: 0, Prize: 50, Label: "Match 0 of 3", Outcome: models.OutcomeWin}, tiers[3])
}

func TestPrizeLadder_FreePlayDroppedWithoutTicketPrice(t *testing.T) {
	cfg := models.DefaultGameConfig()
	cfg.SelectCount = 4
	cfg.TicketPrice = 0
	e := newTestEngine(t, cfg)

	tiers := e.PrizeLadder()
	require.Len(t, tiers, 4)
	assert.Equal(t, 1, tiers[3].Matches)
}
