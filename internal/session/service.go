// Package session keeps one slot engine per player and publishes what happens to them.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/logger"
	"github.com/osse101/FairSlots_Go/internal/metrics"
	"github.com/osse101/FairSlots_Go/internal/repository"
	"github.com/osse101/FairSlots_Go/internal/slots"
)

// Service defines the interface for session operations
type Service interface {
	Open(ctx context.Context, playerID string) (domain.Snapshot, error)
	Snapshot(ctx context.Context, playerID string) (domain.Snapshot, error)
	Spin(ctx context.Context, playerID string) (*domain.SpinResult, error)
	AdjustBet(ctx context.Context, playerID string, delta decimal.Decimal) (domain.Snapshot, error)
	SetMinBet(ctx context.Context, playerID string) (domain.Snapshot, error)
	SetMaxBet(ctx context.Context, playerID string) (domain.Snapshot, error)
	RearmJackpots(ctx context.Context, now time.Time) (int, error)
	JackpotHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error)
	Paytable() []domain.Symbol
	Count() int
}

// Publisher publishes events without blocking the caller on delivery
type Publisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Paytable is the payout table shared by every session
type Paytable interface {
	slots.SymbolTable
	Symbols() []domain.Symbol
}

// Config holds the dependencies of the session service
type Config struct {
	Table    Paytable
	Settings slots.Settings
	Store    repository.JackpotStore
	// Publisher may be nil, in which case no events are published
	Publisher Publisher
	CacheSize int
	TTL       time.Duration
	Locale    string
	Clock     slots.Clock
	NewSeed   slots.SeedSource
}

type service struct {
	cfg    Config
	cache  *expirable.LRU[string, *slots.Engine]
	openMu sync.Mutex
}

// NewService creates a new session service
func NewService(cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	onEvict := func(playerID string, _ *slots.Engine) {
		metrics.ActiveSessions.Dec()
		logger.FromContext(context.Background()).Debug(LogMsgSessionEvicted, "player_id", playerID)
	}

	return &service{
		cfg:   cfg,
		cache: expirable.NewLRU[string, *slots.Engine](cfg.CacheSize, onEvict, cfg.TTL),
	}
}

// Open returns the player's session, creating it with the persisted jackpot claim if needed
func (s *service) Open(ctx context.Context, playerID string) (domain.Snapshot, error) {
	if playerID == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPlayerID)
	}
	log := logger.FromContext(ctx).With("player_id", playerID)

	s.openMu.Lock()
	defer s.openMu.Unlock()

	if engine, ok := s.cache.Get(playerID); ok {
		s.refresh(playerID, engine)
		log.Debug(LogMsgSessionResumed)
		return engine.Snapshot(), nil
	}

	lastWin, err := s.cfg.Store.LastJackpotWin(ctx, playerID)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", ErrMsgLoadJackpotClaim, err)
	}

	engine, err := slots.NewEngine(slots.EngineConfig{
		PlayerID:       playerID,
		Table:          s.cfg.Table,
		Settings:       s.cfg.Settings,
		Claims:         s.cfg.Store,
		Clock:          s.cfg.Clock,
		NewSeed:        s.cfg.NewSeed,
		Locale:         s.cfg.Locale,
		LastJackpotWin: lastWin,
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", ErrMsgCreateEngine, err)
	}

	s.cache.Add(playerID, engine)
	metrics.ActiveSessions.Inc()

	snapshot := engine.Snapshot()
	log.Info(LogMsgSessionOpened, "jackpot_state", snapshot.JackpotState, "seed_hash", snapshot.SeedHash)
	return snapshot, nil
}

// Snapshot returns the observable state of an open session
func (s *service) Snapshot(_ context.Context, playerID string) (domain.Snapshot, error) {
	engine, err := s.get(playerID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return engine.Snapshot(), nil
}

// Spin resolves a spin and publishes it for reveal and settlement
func (s *service) Spin(ctx context.Context, playerID string) (*domain.SpinResult, error) {
	engine, err := s.get(playerID)
	if err != nil {
		return nil, err
	}

	result, err := engine.Spin(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgSpinFailed, "player_id", playerID, "error", err)
		return nil, err
	}
	s.touch(playerID, engine)

	if s.cfg.Publisher != nil {
		requestID, _ := logger.RequestIDFromContext(ctx)
		s.cfg.Publisher.PublishWithRetry(ctx, event.NewSpinCompletedEvent(*result, requestID))
		if result.Outcome.Kind == domain.OutcomeJackpotWin {
			s.cfg.Publisher.PublishWithRetry(ctx, event.NewJackpotClaimedEvent(*result))
		}
	}
	return result, nil
}

// AdjustBet moves the bet by delta within the configured range
func (s *service) AdjustBet(ctx context.Context, playerID string, delta decimal.Decimal) (domain.Snapshot, error) {
	return s.changeBet(playerID, func(e *slots.Engine) (decimal.Decimal, error) { return e.AdjustBet(ctx, delta) })
}

// SetMinBet sets the bet to the configured minimum
func (s *service) SetMinBet(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return s.changeBet(playerID, func(e *slots.Engine) (decimal.Decimal, error) { return e.SetMinBet(ctx) })
}

// SetMaxBet sets the bet to the configured maximum
func (s *service) SetMaxBet(ctx context.Context, playerID string) (domain.Snapshot, error) {
	return s.changeBet(playerID, func(e *slots.Engine) (decimal.Decimal, error) { return e.SetMaxBet(ctx) })
}

func (s *service) changeBet(playerID string, apply func(*slots.Engine) (decimal.Decimal, error)) (domain.Snapshot, error) {
	engine, err := s.get(playerID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if _, err := apply(engine); err != nil {
		return domain.Snapshot{}, err
	}
	s.touch(playerID, engine)
	return engine.Snapshot(), nil
}

// RearmJackpots applies the daily re-arm to every live session and returns how many changed.
// Sessions that are mid-spin are skipped; their spin re-arms them.
func (s *service) RearmJackpots(ctx context.Context, now time.Time) (int, error) {
	rearmed := 0
	for _, engine := range s.cache.Values() {
		if err := ctx.Err(); err != nil {
			return rearmed, err
		}
		if !engine.RearmJackpot(now) {
			continue
		}
		rearmed++
		if s.cfg.Publisher != nil {
			snapshot := engine.Snapshot()
			s.cfg.Publisher.PublishWithRetry(ctx, event.NewJackpotRearmedEvent(snapshot.PlayerID, snapshot.JackpotAmount, now.UTC()))
		}
	}

	logger.FromContext(ctx).Info(LogMsgJackpotsRearmed, "count", rearmed, "sessions", s.cache.Len())
	return rearmed, nil
}

// JackpotHistory returns the player's past jackpot claims, newest first
func (s *service) JackpotHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPlayerID)
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: "+ErrMsgHistoryLimitRange, domain.ErrInvalidInput, MaxHistoryLimit)
	}

	history, err := s.cfg.Store.ClaimHistory(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadJackpotHistory, err)
	}
	return history, nil
}

// Paytable returns the symbols of the shared payout table
func (s *service) Paytable() []domain.Symbol {
	return s.cfg.Table.Symbols()
}

// Count returns the number of live sessions
func (s *service) Count() int {
	return s.cache.Len()
}

func (s *service) get(playerID string) (*slots.Engine, error) {
	engine, ok := s.cache.Get(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, playerID)
	}
	return engine, nil
}

// touch restarts the TTL of a session after activity on engine
func (s *service) touch(playerID string, engine *slots.Engine) bool {
	s.openMu.Lock()
	defer s.openMu.Unlock()
	return s.refresh(playerID, engine)
}

// refresh re-adds engine only while it is still the cached session for
// playerID. An engine evicted mid-operation, or replaced by a later Open,
// stays out of the cache. Caller must hold openMu.
func (s *service) refresh(playerID string, engine *slots.Engine) bool {
	current, ok := s.cache.Peek(playerID)
	if !ok || current != engine {
		return false
	}
	s.cache.Add(playerID, engine)
	return true
}
