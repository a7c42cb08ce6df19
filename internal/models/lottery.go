package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a GameConfig cannot back a game.
var ErrInvalidConfig = errors.New("invalid game config")

// Upper bounds on the fields that size per-engine allocations.
const (
	MaxSelectCount = 1_000
	MaxHistorySize = 1_000
)

// GameConfig is the fixed rule set of a game. It does not change for the
// lifetime of an engine.
type GameConfig struct {
	TotalNumbers     int   `json:"totalNumbers" mapstructure:"total_numbers"`
	SelectCount      int   `json:"selectCount" mapstructure:"select_count"`
	MinJackpot       int64 `json:"minJackpot" mapstructure:"min_jackpot"`
	JackpotIncrement int64 `json:"jackpotIncrement" mapstructure:"jackpot_increment"`
	HistorySize      int   `json:"historySize" mapstructure:"history_size"`
	TicketPrice      int64 `json:"ticketPrice" mapstructure:"ticket_price"`
}

// DefaultGameConfig returns the classic 6-of-50 game.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TotalNumbers:     50,
		SelectCount:      6,
		MinJackpot:       10_000_000,
		JackpotIncrement: 5_000_000,
		HistorySize:      5,
		TicketPrice:      2,
	}
}

// Validate reports whether the config describes a playable game.
func (c GameConfig) Validate() error {
	switch {
	case c.SelectCount < 1:
		return fmt.Errorf("%w: select count must be at least 1, got %d", ErrInvalidConfig, c.SelectCount)
	case c.SelectCount > MaxSelectCount:
		return fmt.Errorf("%w: select count must be at most %d, got %d", ErrInvalidConfig, MaxSelectCount, c.SelectCount)
	case c.TotalNumbers < c.SelectCount:
		return fmt.Errorf("%w: pool of %d cannot supply %d numbers", ErrInvalidConfig, c.TotalNumbers, c.SelectCount)
	case c.HistorySize < 1:
		return fmt.Errorf("%w: history size must be at least 1, got %d", ErrInvalidConfig, c.HistorySize)
	case c.HistorySize > MaxHistorySize:
		return fmt.Errorf("%w: history size must be at most %d, got %d", ErrInvalidConfig, MaxHistorySize, c.HistorySize)
	case c.MinJackpot < 0, c.JackpotIncrement < 0, c.TicketPrice < 0:
		return fmt.Errorf("%w: money amounts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Outcome classifies a draw for display.
type Outcome string

const (
	OutcomeJackpot  Outcome = "jackpot"
	OutcomeWin      Outcome = "win"
	OutcomeFreePlay Outcome = "free_play"
	OutcomeLose     Outcome = "lose"
)

// DrawResult is the immutable record of one completed draw.
type DrawResult struct {
	WinningNumbers []int     `json:"winningNumbers"` // ascending
	PlayerNumbers  []int     `json:"playerNumbers"`  // in pick order
	Matches        int       `json:"matches"`
	Prize          int64     `json:"prize"`
	Outcome        Outcome   `json:"outcome"`
	JackpotAfter   int64     `json:"jackpotAfter"`
	DrawnAt        time.Time `json:"drawnAt"`
}

// PrizeTier is one rung of the prize ladder. For the top tier Prize holds
// the jackpot value at the time the ladder was read.
type PrizeTier struct {
	Matches int     `json:"matches"`
	Prize   int64   `json:"prize"`
	Label   string  `json:"label"`
	Outcome Outcome `json:"outcome"`
}

// GameState is everything a renderer needs after a state change.
type GameState struct {
	Selection    []int        `json:"selection"`
	Ready        bool         `json:"ready"`
	Jackpot      int64        `json:"jackpot"`
	History      []DrawResult `json:"history"`
	SelectCount  int          `json:"selectCount"`
	TotalNumbers int          `json:"totalNumbers"`
}
