package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/database"
	"github.com/osse101/FairSlots_Go/internal/slots"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	Storage           string `validate:"oneof=postgres memory"`
	DBUser            string `validate:"required_if=Storage postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=Storage postgres"`
	DBPort            string `validate:"required_if=Storage postgres"`
	DBName            string `validate:"required_if=Storage postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	InitialCredit           decimal.Decimal
	MinBet                  decimal.Decimal
	MaxBet                  decimal.Decimal
	BetStep                 decimal.Decimal
	InitialJackpot          decimal.Decimal
	JackpotContributionRate decimal.Decimal
	HouseEdge               decimal.Decimal
	EffectiveBetRate        decimal.Decimal
	CurrencyLabel           string `validate:"required,max=16"`
	Locale                  string `validate:"required,bcp47_language_tag"`
	PaytablePath            string

	RevealDelay      time.Duration `validate:"min=0"`
	SessionCacheSize int           `validate:"min=1"`
	SessionTTL       time.Duration `validate:"gt=0"`

	EventMaxRetries     int           `validate:"min=1"`
	EventRetryDelay     time.Duration `validate:"gt=0"`
	EventDeadLetterPath string

	CORSAllowedOrigins []string
	TrustedProxies     []string
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv(EnvAPIKey, ""),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		Storage:           getEnv(EnvStorage, DefaultStorage),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLife),

		CurrencyLabel: getEnv(EnvCurrencyLabel, slots.DefaultCurrencyLabel),
		Locale:        getEnv(EnvLocale, DefaultLocale),
		PaytablePath:  getEnv(EnvPaytablePath, ""),

		RevealDelay:      getEnvAsDuration(EnvRevealDelay, DefaultRevealDelay),
		SessionCacheSize: getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),

		EventMaxRetries:     getEnvAsInt(EnvEventMaxRetries, DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration(EnvEventRetryDelay, DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),

		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	money := []struct {
		key  string
		def  string
		dest *decimal.Decimal
	}{
		{EnvInitialCredit, slots.DefaultInitialCredit, &cfg.InitialCredit},
		{EnvMinBet, slots.DefaultMinBet, &cfg.MinBet},
		{EnvMaxBet, slots.DefaultMaxBet, &cfg.MaxBet},
		{EnvBetStep, slots.DefaultBetStep, &cfg.BetStep},
		{EnvInitialJackpot, slots.DefaultInitialJackpot, &cfg.InitialJackpot},
		{EnvJackpotContributionRate, slots.DefaultJackpotContributionRate, &cfg.JackpotContributionRate},
		{EnvHouseEdge, slots.DefaultHouseEdge, &cfg.HouseEdge},
		{EnvEffectiveBetRate, slots.DefaultEffectiveBetRate, &cfg.EffectiveBetRate},
	}
	for _, m := range money {
		d, err := getEnvAsDecimal(m.key, m.def)
		if err != nil {
			return nil, err
		}
		*m.dest = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the consistency of the game settings
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	if err := c.GameSettings().Validate(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidSettings, err)
	}
	return nil
}

// GameSettings returns the monetary settings shared by every session
func (c *Config) GameSettings() slots.Settings {
	return slots.Settings{
		InitialCredit:           c.InitialCredit,
		MinBet:                  c.MinBet,
		MaxBet:                  c.MaxBet,
		BetStep:                 c.BetStep,
		InitialJackpot:          c.InitialJackpot,
		JackpotContributionRate: c.JackpotContributionRate,
		HouseEdge:               c.HouseEdge,
		EffectiveBetRate:        c.EffectiveBetRate,
		CurrencyLabel:           c.CurrencyLabel,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDecimal parses a money or rate variable. Invalid values are an error.
func getEnvAsDecimal(key, defaultValue string) (decimal.Decimal, error) {
	raw := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgInvalidDecimal+": %w", key, err)
	}
	return d, nil
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
