package engine

import (
	"fmt"

	"lotto/internal/models"
)

// Fixed payouts for the tiers below the jackpot, indexed by how many
// numbers short of a full match the ticket is.
const (
	prizeOneShort   int64 = 50_000
	prizeTwoShort   int64 = 1_000
	prizeThreeShort int64 = 50
)

// prizeFor resolves the payout for a match count against the current jackpot.
// Tiers are offsets from a full match, so in games of four or fewer numbers
// a ticket with no matches still sits on a paying rung.
func prizeFor(cfg models.GameConfig, jackpot int64, matches int) (int64, models.Outcome) {
	switch cfg.SelectCount - matches {
	case 0:
		return jackpot, models.OutcomeJackpot
	case 1:
		return prizeOneShort, models.OutcomeWin
	case 2:
		return prizeTwoShort, models.OutcomeWin
	case 3:
		return prizeThreeShort, models.OutcomeWin
	case 4:
		// Pays back the stake as a free play credit.
		if cfg.TicketPrice == 0 {
			return 0, models.OutcomeLose
		}
		return cfg.TicketPrice, models.OutcomeFreePlay
	default:
		return 0, models.OutcomeLose
	}
}

// Ladder lists every paying tier of cfg, best first, with the top tier
// valued at jackpot.
func Ladder(cfg models.GameConfig, jackpot int64) []models.PrizeTier {
	tiers := make([]models.PrizeTier, 0, 5)
	for short := 0; short <= 4; short++ {
		matches := cfg.SelectCount - short
		if matches < 0 {
			break
		}
		prize, outcome := prizeFor(cfg, jackpot, matches)
		if prize == 0 && short > 0 {
			continue
		}
		tiers = append(tiers, models.PrizeTier{
			Matches: matches,
			Prize:   prize,
			Label:   tierLabel(cfg, matches, outcome),
			Outcome: outcome,
		})
	}
	return tiers
}

func tierLabel(cfg models.GameConfig, matches int, outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeJackpot:
		return fmt.Sprintf("Jackpot (match %d)", matches)
	case models.OutcomeFreePlay:
		return fmt.Sprintf("Free play (match %d)", matches)
	default:
		return fmt.Sprintf("Match %d of %d", matches, cfg.SelectCount)
	}
}
