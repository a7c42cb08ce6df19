package services

import (
	"sync"
	"time"

	"github.com/google/logger"

	"lotto/internal/engine"
	"lotto/internal/models"
)

// LotterySession holds the game of a single user/tenant.
type LotterySession struct {
	Engine       *engine.Engine
	LastActivity time.Time
}

// LotteryService manages one independent game per tenant.
type LotteryService struct {
	mu       sync.RWMutex
	sessions map[string]*LotterySession // Key: tenantID

	cfg  models.GameConfig
	opts []engine.Option
	now  func() time.Time
}

// NewLotteryService creates a service whose sessions all play by cfg.
// opts are applied to every session's engine, so any random source passed
// in must be safe for concurrent use.
func NewLotteryService(cfg models.GameConfig, opts ...engine.Option) (*LotteryService, error) {
	// Build one engine up front so a bad config or option fails here rather
	// than on a tenant's first request.
	if _, err := engine.New(cfg, opts...); err != nil {
		return nil, err
	}
	return &LotteryService{
		sessions: make(map[string]*LotterySession),
		cfg:      cfg,
		opts:     opts,
		now:      time.Now,
	}, nil
}

// Config returns the rules every session plays by.
func (s *LotteryService) Config() models.GameConfig {
	return s.cfg
}

// getSession returns a session for a tenant, creating one if it doesn't exist.
func (s *LotteryService) getSession(tenantID string) (*LotterySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[tenantID]
	if !exists {
		e, err := engine.New(s.cfg, s.opts...)
		if err != nil {
			return nil, err
		}
		session = &LotterySession{Engine: e}
		s.sessions[tenantID] = session
		logger.Infof("Started session for tenant: %s", tenantID)
	}
	session.LastActivity = s.now()
	return session, nil
}

// GetState returns the full game state for a tenant.
func (s *LotteryService) GetState(tenantID string) (models.GameState, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return models.GameState{}, err
	}
	return session.Engine.State(), nil
}

// GetHistory returns a tenant's past draws, most recent first.
func (s *LotteryService) GetHistory(tenantID string) ([]models.DrawResult, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return nil, err
	}
	return session.Engine.History(), nil
}

// GetPrizeLadder returns the paying tiers valued at the tenant's jackpot.
func (s *LotteryService) GetPrizeLadder(tenantID string) ([]models.PrizeTier, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return nil, err
	}
	return session.Engine.PrizeLadder(), nil
}

// ToggleNumber selects or deselects a number for a tenant.
func (s *LotteryService) ToggleNumber(tenantID string, number int) (models.GameState, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return models.GameState{}, err
	}
	if _, _, err := session.Engine.ToggleSelection(number); err != nil {
		return models.GameState{}, err
	}
	return session.Engine.State(), nil
}

// QuickPick fills a tenant's selection with random numbers.
func (s *LotteryService) QuickPick(tenantID string) (models.GameState, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return models.GameState{}, err
	}
	session.Engine.QuickPick()
	return session.Engine.State(), nil
}

// ClearSelection empties a tenant's selection.
func (s *LotteryService) ClearSelection(tenantID string) (models.GameState, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return models.GameState{}, err
	}
	session.Engine.Clear()
	return session.Engine.State(), nil
}

// Play performs the draw for a tenant's current selection.
func (s *LotteryService) Play(tenantID string) (models.DrawResult, error) {
	session, err := s.getSession(tenantID)
	if err != nil {
		return models.DrawResult{}, err
	}

	result, err := session.Engine.Play()
	if err != nil {
		return models.DrawResult{}, err
	}
	logger.Infof("tenant %s drew %v against %v: %d matches, prize %d (%s)",
		tenantID, result.WinningNumbers, result.PlayerNumbers, result.Matches, result.Prize, result.Outcome)
	return result, nil
}

// CleanUpInactiveSessions removes sessions idle for longer than maxIdle and
// returns how many were removed.
func (s *LotteryService) CleanUpInactiveSessions(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for tenantID, session := range s.sessions {
		if now.Sub(session.LastActivity) > maxIdle {
			logger.Infof("Removing inactive session for tenant: %s", tenantID)
			delete(s.sessions, tenantID)
			removed++
		}
	}
	return removed
}

// ClearSession removes all data associated with a specific tenant.
func (s *LotteryService) ClearSession(tenantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tenantID)
	logger.Infof("Cleared session for tenant: %s", tenantID)
}

// SessionCount returns the number of live sessions.
func (s *LotteryService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
