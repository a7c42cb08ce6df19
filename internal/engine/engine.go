// Package engine holds the rules of the number-picking lottery: the
// player's selection, the draw, the prize ladder, the jackpot and the
// bounded draw history. It performs no I/O; callers render what it returns.
package engine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"lotto/internal/models"
)

var (
	// ErrInvalidState is returned by Play when the selection is not complete.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument is returned for numbers outside the pool.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Engine is one independent game. All methods are safe for concurrent use;
// operations on the same engine are serialised.
type Engine struct {
	mu sync.Mutex

	cfg       models.GameConfig
	rnd       RandomSource
	now       func() time.Time
	selection []int
	jackpot   int64
	history   *history
}

// Option customises an Engine at construction.
type Option func(*Engine) error

// WithRandomSource replaces the default math/rand source.
func WithRandomSource(src RandomSource) Option {
	return func(e *Engine) error {
		if src == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidArgument)
		}
		e.rnd = src
		return nil
	}
}

// WithClock sets the function used to timestamp draws.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidArgument)
		}
		e.now = now
		return nil
	}
}

// WithJackpot starts the game with a jackpot other than the configured minimum.
func WithJackpot(amount int64) Option {
	return func(e *Engine) error {
		if amount < 0 {
			return fmt.Errorf("%w: jackpot must not be negative, got %d", ErrInvalidArgument, amount)
		}
		e.jackpot = amount
		return nil
	}
}

// New creates an engine with an empty selection, no history and the
// jackpot at its minimum.
func New(cfg models.GameConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:       cfg,
		rnd:       MathSource{},
		now:       time.Now,
		selection: make([]int, 0, cfg.SelectCount),
		jackpot:   cfg.MinJackpot,
		history:   newHistory(cfg.HistorySize),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ToggleSelection removes number from the selection if present, otherwise
// appends it when there is room. Adding to a full selection is ignored.
// It returns the resulting selection and whether it is ready to play.
func (e *Engine) ToggleSelection(number int) ([]int, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if number < 1 || number > e.cfg.TotalNumbers {
		return nil, false, fmt.Errorf("%w: number %d outside 1..%d", ErrInvalidArgument, number, e.cfg.TotalNumbers)
	}

	if idx := slices.Index(e.selection, number); idx >= 0 {
		e.selection = slices.Delete(e.selection, idx, idx+1)
	} else if len(e.selection) < e.cfg.SelectCount {
		e.selection = append(e.selection, number)
	}
	return e.selectionLocked(), e.readyLocked(), nil
}

// QuickPick replaces the selection with a random full ticket, kept in draw order.
func (e *Engine) QuickPick() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.selection = drawDistinct(e.rnd, e.cfg.TotalNumbers, e.cfg.SelectCount)
	return e.selectionLocked()
}

// Clear empties the selection.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.selection = e.selection[:0]
}

// Play draws the winning numbers for the current selection, pays out,
// records the draw and resets the selection. Nothing changes if the
// selection is not complete.
func (e *Engine) Play() (models.DrawResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.readyLocked() {
		return models.DrawResult{}, fmt.Errorf("%w: %d of %d numbers selected", ErrInvalidState, len(e.selection), e.cfg.SelectCount)
	}

	winning := drawDistinct(e.rnd, e.cfg.TotalNumbers, e.cfg.SelectCount)
	slices.Sort(winning)

	matches := 0
	for _, n := range e.selection {
		if _, found := slices.BinarySearch(winning, n); found {
			matches++
		}
	}
	prize, outcome := prizeFor(e.cfg, e.jackpot, matches)

	if matches == e.cfg.SelectCount {
		e.jackpot = e.cfg.MinJackpot
	} else {
		e.jackpot += e.cfg.JackpotIncrement
	}

	result := models.DrawResult{
		WinningNumbers: winning,
		PlayerNumbers:  e.selectionLocked(),
		Matches:        matches,
		Prize:          prize,
		Outcome:        outcome,
		JackpotAfter:   e.jackpot,
		DrawnAt:        e.now(),
	}
	e.history.push(result)
	e.selection = e.selection[:0]

	return cloneResult(result), nil
}

// Selection returns a copy of the current selection in pick order.
func (e *Engine) Selection() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectionLocked()
}

// Ready reports whether the selection is complete.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readyLocked()
}

// Jackpot returns the current jackpot.
func (e *Engine) Jackpot() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.jackpot
}

// History returns past draws, most recent first.
func (e *Engine) History() []models.DrawResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.list()
}

// Config returns the rules the engine was built with. They never change, so
// no lock is taken.
func (e *Engine) Config() models.GameConfig {
	return e.cfg
}

// PrizeLadder returns the paying tiers, best first, with the jackpot tier
// valued at the current jackpot.
func (e *Engine) PrizeLadder() []models.PrizeTier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Ladder(e.cfg, e.jackpot)
}

// State returns a consistent snapshot of the whole game.
func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.GameState{
		Selection:    e.selectionLocked(),
		Ready:        e.readyLocked(),
		Jackpot:      e.jackpot,
		History:      e.history.list(),
		SelectCount:  e.cfg.SelectCount,
		TotalNumbers: e.cfg.TotalNumbers,
	}
}

func (e *Engine) selectionLocked() []int {
	return append(make([]int, 0, len(e.selection)), e.selection...)
}

func (e *Engine) readyLocked() bool {
	return len(e.selection) == e.cfg.SelectCount
}
