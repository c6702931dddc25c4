package slots

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/fairness"
	"github.com/osse101/FairSlots_Go/internal/paytable"
)

// Seeds whose evaluation line at dayOne (nonce 1773576000000) lands on a known symbol
const (
	seedGCVLine     = "seed-1110" // 3,3,3
	seedJackpotLine = "seed-578"  // 4,4,4
	seedPiLine      = "seed-377"  // 1,1,1
	seedRGCVLine    = "seed-2618" // 0,0,0
	seedNoWin       = "seed-0"    // 3,0,5
)

// Seed whose evaluation line at dayTwo (nonce 1773653400000) is 4,4,4
const seedJackpotLineDayTwo = "seed-336"

func newTestEngine(t *testing.T, clock *testClock, claims ClaimRecorder, seeds ...string) *Engine {
	t.Helper()
	cfg := EngineConfig{
		PlayerID: "player-1",
		Table:    paytable.Default(),
		Settings: DefaultSettings(),
		Clock:    clock.Now,
		NewSeed:  seedSequence(seeds...),
	}
	if claims != nil {
		cfg.Claims = claims
	}
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func TestNewEngine_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr error
	}{
		{"missing player", func(c *EngineConfig) { c.PlayerID = "" }, domain.ErrInvalidInput},
		{"missing table", func(c *EngineConfig) { c.Table = nil }, domain.ErrInvalidPaytable},
		{"bad settings", func(c *EngineConfig) { c.Settings.MinBet = dec("0") }, domain.ErrInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := EngineConfig{PlayerID: "p", Table: paytable.Default(), Settings: DefaultSettings()}
			tt.mutate(&cfg)
			_, err := NewEngine(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("seed failure", func(t *testing.T) {
		cfg := EngineConfig{
			PlayerID: "p",
			Table:    paytable.Default(),
			Settings: DefaultSettings(),
			NewSeed:  func() (string, error) { return "", errors.New("no entropy") },
		}
		_, err := NewEngine(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgGenerateSeed)
	})
}

func TestNewEngine_LogsCreation(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	newTestEngine(t, newTestClock(dayOne), nil, seedNoWin)

	assert.Contains(t, buf.String(), LogMsgEngineCreated)
	assert.Contains(t, buf.String(), "player_id=player-1")
}

func TestEngine_InitialSnapshot(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedNoWin)
	snap := e.Snapshot()

	assert.Equal(t, "player-1", snap.PlayerID)
	assertDecimal(t, "100", snap.Credit)
	assertDecimal(t, "0.5", snap.Bet)
	assertDecimal(t, "50", snap.JackpotAmount)
	assert.False(t, snap.IsSpinning)
	assert.Equal(t, MsgNoWin, snap.LastMessage)
	assert.Equal(t, domain.JackpotArmed, snap.JackpotState)
	assert.Equal(t, fairness.HashSeed(seedNoWin), snap.SeedHash)
}

func TestEngine_Spin_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		seed        string
		wantKind    domain.OutcomeKind
		wantSymbol  int
		wantPayout  string
		wantCredit  string
		wantJackpot string
		wantMessage string
	}{
		{"no win", seedNoWin, domain.OutcomeNoWin, domain.NoSymbol, "0", "99.5", "50.025", "Try Again!"},
		{"GCV times ten", seedGCVLine, domain.OutcomeSymbolWin, 3, "4.5", "104", "50.025", "Winner! +4.50 Pi"},
		{"RGCV times five", seedRGCVLine, domain.OutcomeSymbolWin, 0, "2.25", "101.75", "50.025", "Winner! +2.25 Pi"},
		{"jackpot symbol", seedJackpotLine, domain.OutcomeJackpotWin, 4, "50.025", "149.525", "50", "JACKPOT! +50.03 Pi"},
		{"pi jackpot", seedPiLine, domain.OutcomeJackpotWin, 1, "50.025", "149.525", "50", "JACKPOT! +50.03 Pi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, newTestClock(dayOne), nil, tt.seed, "next-seed")
			res, err := e.Spin(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantKind, res.Outcome.Kind)
			assert.Equal(t, tt.wantSymbol, res.Outcome.SymbolID)
			assertDecimal(t, tt.wantPayout, res.Payout)
			assertDecimal(t, tt.wantCredit, res.CreditAfter)
			assertDecimal(t, tt.wantJackpot, res.JackpotAfter)
			assertDecimal(t, "0.5", res.Bet)
			assertDecimal(t, "0.025", res.JackpotContribution)
			assert.Equal(t, tt.wantMessage, res.Message)

			snap := e.Snapshot()
			assertDecimal(t, tt.wantCredit, snap.Credit)
			assertDecimal(t, tt.wantJackpot, snap.JackpotAmount)
			assert.Equal(t, tt.wantMessage, snap.LastMessage)
		})
	}
}

func TestEngine_Spin_ResultIsVerifiable(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedGCVLine, "next-seed")
	res, err := e.Spin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, seedGCVLine, res.Seed)
	assert.Equal(t, dayOne.UnixMilli(), res.Nonce)
	assert.Equal(t, fairness.Commitment(seedGCVLine, dayOne.UnixMilli()), res.Commitment)
	assert.Equal(t, fairness.Hash(seedGCVLine, dayOne.UnixMilli()), res.Hash)
	assert.Equal(t, [3]int{3, 3, 3}, res.EvaluationLine)
	assert.Equal(t, res.Grid.Line(), res.EvaluationLine)
	assert.NotEqual(t, [16]byte{}, [16]byte(res.SpinID))
	assert.True(t, res.ResolvedAt.Equal(dayOne))

	ok, err := fairness.Verify(res.Seed, res.Nonce, 9, res.Grid)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, fairness.HashSeed("next-seed"), res.NextSeedHash)
	assert.Equal(t, res.NextSeedHash, e.Snapshot().SeedHash, "seed rotated after the spin")
}

func TestEngine_Spin_SeedNeverReused(t *testing.T) {
	clock := newTestClock(dayOne)
	e, err := NewEngine(EngineConfig{
		PlayerID: "player-1",
		Table:    paytable.Default(),
		Settings: DefaultSettings(),
		Clock:    clock.Now,
	})
	require.NoError(t, err)

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		res, err := e.Spin(context.Background())
		require.NoError(t, err)
		_, dup := seen[res.Seed]
		require.False(t, dup)
		seen[res.Seed] = struct{}{}
	}
}

func TestEngine_Spin_JackpotExclusivity(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedJackpotLine, seedPiLine, "after")

	first, err := e.Spin(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeJackpotWin, first.Outcome.Kind)
	assertDecimal(t, "149.525", first.CreditAfter)
	assert.Equal(t, domain.JackpotClaimed, e.Snapshot().JackpotState)

	second, err := e.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeJackpotUnavailable, second.Outcome.Kind)
	assertDecimal(t, "0", second.Payout)
	assertDecimal(t, "149.025", second.CreditAfter, "only the bet is deducted")
	assertDecimal(t, "50.025", second.JackpotAfter)
	assert.Equal(t, MsgJackpotUnavailable, second.Message)
}

func TestEngine_Spin_JackpotResetFromYesterday(t *testing.T) {
	yesterday := dayOne.Add(-24 * time.Hour)
	e, err := NewEngine(EngineConfig{
		PlayerID:       "player-1",
		Table:          paytable.Default(),
		Settings:       DefaultSettings(),
		Clock:          newTestClock(dayOne).Now,
		NewSeed:        seedSequence(seedJackpotLine),
		LastJackpotWin: &yesterday,
	})
	require.NoError(t, err)

	before := e.Snapshot()
	assert.Equal(t, domain.JackpotArmed, before.JackpotState)
	assertDecimal(t, "50", before.JackpotAmount)

	res, err := e.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeJackpotWin, res.Outcome.Kind)
	assertDecimal(t, "50.025", res.Payout)
}

func TestEngine_Spin_JackpotRearmsAcrossMidnight(t *testing.T) {
	clock := newTestClock(dayOne)
	e := newTestEngine(t, clock, nil, seedJackpotLine, seedJackpotLineDayTwo, "after")

	_, err := e.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.JackpotClaimed, e.Snapshot().JackpotState)

	clock.Set(dayTwo)
	snap := e.Snapshot()
	assert.Equal(t, domain.JackpotArmed, snap.JackpotState)
	assertDecimal(t, "50", snap.JackpotAmount)

	res, err := e.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeJackpotWin, res.Outcome.Kind)
	assertDecimal(t, "50.025", res.Payout)
	assertDecimal(t, "199.05", res.CreditAfter)
}

func TestEngine_Spin_InsufficientFunds(t *testing.T) {
	settings := DefaultSettings()
	settings.InitialCredit = dec("0.25")
	e, err := NewEngine(EngineConfig{
		PlayerID: "player-1",
		Table:    paytable.Default(),
		Settings: settings,
		Clock:    newTestClock(dayOne).Now,
		NewSeed:  seedSequence(seedGCVLine),
	})
	require.NoError(t, err)
	before := e.Snapshot()

	res, err := e.Spin(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	after := e.Snapshot()
	assert.Equal(t, before, after, "no mutation on insufficient funds")
	assert.False(t, after.IsSpinning)
}

func TestEngine_Spin_PersistsJackpotClaim(t *testing.T) {
	claims := new(MockClaimRecorder)
	claims.On("RecordJackpotWin", mock.Anything, "player-1", dayOne).Return(nil).Once()

	e := newTestEngine(t, newTestClock(dayOne), claims, seedJackpotLine)
	res, err := e.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeJackpotWin, res.Outcome.Kind)

	claims.AssertExpectations(t)
}

func TestEngine_Spin_NoPersistenceForOtherOutcomes(t *testing.T) {
	claims := new(MockClaimRecorder)
	e := newTestEngine(t, newTestClock(dayOne), claims, seedGCVLine, seedNoWin)

	_, err := e.Spin(context.Background())
	require.NoError(t, err)
	_, err = e.Spin(context.Background())
	require.NoError(t, err)

	claims.AssertNotCalled(t, "RecordJackpotWin", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Spin_PersistenceFailureAbortsSpin(t *testing.T) {
	claims := new(MockClaimRecorder)
	claims.On("RecordJackpotWin", mock.Anything, "player-1", dayOne).Return(errors.New("connection refused"))

	e := newTestEngine(t, newTestClock(dayOne), claims, seedJackpotLine)
	before := e.Snapshot()

	res, err := e.Spin(context.Background())
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPersistJackpotClaim)

	after := e.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, domain.JackpotArmed, after.JackpotState)
}

func TestEngine_Spin_SeedFailureLeavesNoClaim(t *testing.T) {
	claims := new(MockClaimRecorder)
	calls := 0
	e, err := NewEngine(EngineConfig{
		PlayerID: "player-1",
		Table:    paytable.Default(),
		Settings: DefaultSettings(),
		Claims:   claims,
		Clock:    newTestClock(dayOne).Now,
		NewSeed: func() (string, error) {
			calls++
			if calls > 1 {
				return "", errors.New("entropy unavailable")
			}
			return seedJackpotLine, nil
		},
	})
	require.NoError(t, err)
	before := e.Snapshot()

	res, err := e.Spin(context.Background())
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgGenerateSeed)

	claims.AssertNotCalled(t, "RecordJackpotWin", mock.Anything, mock.Anything, mock.Anything)
	after := e.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, domain.JackpotArmed, after.JackpotState)
	assert.Nil(t, after.LastJackpotWin)
}

func TestEngine_Spin_RejectsConcurrentSpin(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	claims := new(MockClaimRecorder)
	claims.On("RecordJackpotWin", mock.Anything, "player-1", dayOne).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()

	e := newTestEngine(t, newTestClock(dayOne), claims, seedJackpotLine)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = e.Spin(context.Background())
	}()

	<-started
	_, err := e.Spin(context.Background())
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)

	bet, err := e.AdjustBet(context.Background(), dec("1"))
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)
	assertDecimal(t, "0.5", bet)

	_, err = e.SetMaxBet(context.Background())
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)

	assert.False(t, e.RearmJackpot(dayTwo))

	snap := e.Snapshot()
	assert.True(t, snap.IsSpinning)
	assertDecimal(t, "100", snap.Credit, "no intermediate state is observable")

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)

	snap = e.Snapshot()
	assert.False(t, snap.IsSpinning)
	assertDecimal(t, "149.525", snap.Credit)
}

func TestEngine_BetOperations(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedNoWin)
	ctx := context.Background()

	bet, err := e.AdjustBet(ctx, dec("0.5"))
	require.NoError(t, err)
	assertDecimal(t, "1", bet)

	bet, err = e.AdjustBet(ctx, dec("-50"))
	require.NoError(t, err)
	assertDecimal(t, "0.5", bet)

	bet, err = e.SetMaxBet(ctx)
	require.NoError(t, err)
	assertDecimal(t, "10", bet)

	bet, err = e.SetMinBet(ctx)
	require.NoError(t, err)
	assertDecimal(t, "0.5", bet)
	assertDecimal(t, "0.5", e.Snapshot().Bet)
}

func TestEngine_SpinUsesStagedBet(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedGCVLine)
	_, err := e.SetMaxBet(context.Background())
	require.NoError(t, err)

	res, err := e.Spin(context.Background())
	require.NoError(t, err)
	assertDecimal(t, "10", res.Bet)
	assertDecimal(t, "90", res.Payout)
	assertDecimal(t, "180", res.CreditAfter)
	assertDecimal(t, "50.5", res.JackpotAfter)
}

func TestEngine_RearmJackpot(t *testing.T) {
	e := newTestEngine(t, newTestClock(dayOne), nil, seedJackpotLine)
	_, err := e.Spin(context.Background())
	require.NoError(t, err)

	assert.False(t, e.RearmJackpot(dayOne))
	assert.True(t, e.RearmJackpot(dayTwo))
	assert.False(t, e.RearmJackpot(dayTwo))
}

func TestEngine_Conservation(t *testing.T) {
	settings := DefaultSettings()
	settings.InitialCredit = dec("1000")
	e, err := NewEngine(EngineConfig{
		PlayerID: "player-1",
		Table:    paytable.Default(),
		Settings: settings,
		Clock:    newTestClock(dayOne).Now,
		NewSeed:  countingSeeds(),
	})
	require.NoError(t, err)

	maxPayout := dec("0.5").Mul(dec("10")).Mul(settings.EffectiveBetRate)
	credit := e.Snapshot().Credit
	for i := 0; i < 200; i++ {
		res, err := e.Spin(context.Background())
		require.NoError(t, err)

		assert.True(t, res.CreditAfter.Equal(credit.Sub(res.Bet).Add(res.Payout)), "spin %d", i)
		if res.Outcome.Kind != domain.OutcomeJackpotWin {
			assert.True(t, res.Payout.LessThanOrEqual(maxPayout), "spin %d", i)
		}
		assert.True(t, res.JackpotAfter.GreaterThanOrEqual(settings.InitialJackpot))
		credit = res.CreditAfter
	}
}
