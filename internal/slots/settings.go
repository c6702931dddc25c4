package slots

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// Settings holds the monetary constants of one game
type Settings struct {
	InitialCredit           decimal.Decimal
	MinBet                  decimal.Decimal
	MaxBet                  decimal.Decimal
	BetStep                 decimal.Decimal
	InitialJackpot          decimal.Decimal
	JackpotContributionRate decimal.Decimal
	HouseEdge               decimal.Decimal
	EffectiveBetRate        decimal.Decimal
	CurrencyLabel           string
}

// DefaultSettings returns the stock game settings
func DefaultSettings() Settings {
	return Settings{
		InitialCredit:           decimal.RequireFromString(DefaultInitialCredit),
		MinBet:                  decimal.RequireFromString(DefaultMinBet),
		MaxBet:                  decimal.RequireFromString(DefaultMaxBet),
		BetStep:                 decimal.RequireFromString(DefaultBetStep),
		InitialJackpot:          decimal.RequireFromString(DefaultInitialJackpot),
		JackpotContributionRate: decimal.RequireFromString(DefaultJackpotContributionRate),
		HouseEdge:               decimal.RequireFromString(DefaultHouseEdge),
		EffectiveBetRate:        decimal.RequireFromString(DefaultEffectiveBetRate),
		CurrencyLabel:           DefaultCurrencyLabel,
	}
}

// Validate checks the settings for internal consistency
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value decimal.Decimal
	}{
		{SettingMinBet, s.MinBet},
		{SettingMaxBet, s.MaxBet},
		{SettingBetStep, s.BetStep},
		{SettingInitialJackpot, s.InitialJackpot},
		{SettingEffectiveBetRate, s.EffectiveBetRate},
	}
	for _, p := range positive {
		if !p.value.IsPositive() {
			return fmt.Errorf("%w: "+ErrMsgSettingNotPositive, domain.ErrInvalidSettings, p.name)
		}
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{SettingInitialCredit, s.InitialCredit},
		{SettingJackpotContributionRate, s.JackpotContributionRate},
		{SettingHouseEdge, s.HouseEdge},
	}
	for _, r := range rates {
		if r.value.IsNegative() {
			return fmt.Errorf("%w: "+ErrMsgSettingNegative, domain.ErrInvalidSettings, r.name)
		}
	}

	if s.MaxBet.LessThan(s.MinBet) {
		return fmt.Errorf("%w: "+ErrMsgBetRangeInverted, domain.ErrInvalidSettings, s.MaxBet, s.MinBet)
	}
	if s.EffectiveBetRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: "+ErrMsgRateAboveOne, domain.ErrInvalidSettings, SettingEffectiveBetRate)
	}

	total := s.EffectiveBetRate.Add(s.HouseEdge).Add(s.JackpotContributionRate)
	if total.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSettings, ErrMsgRatesExceedBet)
	}
	return nil
}

// ClampBet limits a bet to [MinBet, MaxBet]
func (s Settings) ClampBet(bet decimal.Decimal) decimal.Decimal {
	if bet.LessThan(s.MinBet) {
		return s.MinBet
	}
	if bet.GreaterThan(s.MaxBet) {
		return s.MaxBet
	}
	return bet
}
