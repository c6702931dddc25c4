package slots

// Default game settings, as decimal strings
const (
	DefaultInitialCredit           = "100"
	DefaultMinBet                  = "0.5"
	DefaultMaxBet                  = "10"
	DefaultBetStep                 = "0.5"
	DefaultInitialJackpot          = "50"
	DefaultJackpotContributionRate = "0.05"
	DefaultHouseEdge               = "0.05"
	DefaultEffectiveBetRate        = "0.9"
	DefaultCurrencyLabel           = "Pi"
)

// MoneyDisplayPlaces is the number of decimal places shown in result messages
const MoneyDisplayPlaces = 2

// ============================================================================
// Result Messages
// ============================================================================

const (
	MsgSymbolWin          = "Winner! +%.2f %s"
	MsgJackpotWin         = "JACKPOT! +%.2f %s"
	MsgJackpotUnavailable = "Jackpot already won today! Try again tomorrow."
	MsgNoWin              = "Try Again!"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgCreditBelowBet      = "credit %s is below bet %s"
	ErrMsgNilPaytable         = "engine requires a payout table"
	ErrMsgEmptyPlayerID       = "engine requires a player id"
	ErrMsgPersistJackpotClaim = "failed to persist jackpot claim"
	ErrMsgGenerateSeed        = "failed to generate seed"
	ErrMsgDeriveGrid          = "failed to derive grid"
	ErrMsgSettingNotPositive  = "%s must be greater than zero"
	ErrMsgSettingNegative     = "%s must not be negative"
	ErrMsgBetRangeInverted    = "max bet %s is below min bet %s"
	ErrMsgRatesExceedBet      = "effective bet rate, house edge and jackpot contribution exceed 1"
	ErrMsgRateAboveOne        = "%s must not exceed 1"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSpinResolved       = "Spin resolved"
	LogMsgSpinRejected       = "Spin rejected"
	LogMsgJackpotClaimed     = "Jackpot claimed"
	LogMsgJackpotRearmed     = "Jackpot re-armed for new day"
	LogMsgJackpotUnavailable = "Jackpot line hit after daily claim"
	LogMsgBetAdjusted        = "Bet adjusted"
	LogMsgEngineCreated      = "Slots engine created"
)

// ============================================================================
// Setting Names
// ============================================================================

const (
	SettingInitialCredit           = "initial credit"
	SettingMinBet                  = "min bet"
	SettingMaxBet                  = "max bet"
	SettingBetStep                 = "bet step"
	SettingInitialJackpot          = "initial jackpot"
	SettingJackpotContributionRate = "jackpot contribution rate"
	SettingHouseEdge               = "house edge"
	SettingEffectiveBetRate        = "effective bet rate"
)
