package config

import "time"

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults for values not set in the environment
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "fair-slots"
	DefaultVersion          = "dev"
	DefaultStorage          = StoragePostgres
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "fairslots"
	DefaultDBMaxConns       = 20
	DefaultDBMaxConnIdle    = 5 * time.Minute
	DefaultDBMaxConnLife    = 30 * time.Minute
	DefaultLocale           = "en"
	DefaultRevealDelay      = 3 * time.Second
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 24 * time.Hour
	DefaultEventMaxRetries  = 5
	DefaultEventRetryDelay  = 2 * time.Second
	DefaultDeadLetterPath   = "logs/event_deadletter.jsonl"
)

// Environment variable names
const (
	EnvPort                    = "PORT"
	EnvAPIKey                  = "API_KEY"
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
	EnvLogDir                  = "LOG_DIR"
	EnvEnvironment             = "ENVIRONMENT"
	EnvServiceName             = "SERVICE_NAME"
	EnvVersion                 = "VERSION"
	EnvStorage                 = "STORAGE"
	EnvDBUser                  = "DB_USER"
	EnvDBPassword              = "DB_PASSWORD"
	EnvDBHost                  = "DB_HOST"
	EnvDBPort                  = "DB_PORT"
	EnvDBName                  = "DB_NAME"
	EnvDBMaxConns              = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime       = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime       = "DB_MAX_CONN_LIFETIME"
	EnvInitialCredit           = "INITIAL_CREDIT"
	EnvMinBet                  = "MIN_BET"
	EnvMaxBet                  = "MAX_BET"
	EnvBetStep                 = "BET_STEP"
	EnvInitialJackpot          = "INITIAL_JACKPOT"
	EnvJackpotContributionRate = "JACKPOT_CONTRIBUTION_RATE"
	EnvHouseEdge               = "HOUSE_EDGE"
	EnvEffectiveBetRate        = "EFFECTIVE_BET_RATE"
	EnvCurrencyLabel           = "CURRENCY_LABEL"
	EnvLocale                  = "LOCALE"
	EnvPaytablePath            = "PAYTABLE_PATH"
	EnvRevealDelay             = "REVEAL_DELAY"
	EnvSessionCacheSize        = "SESSION_CACHE_SIZE"
	EnvSessionTTL              = "SESSION_TTL"
	EnvEventMaxRetries         = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay         = "EVENT_RETRY_DELAY"
	EnvDeadLetterPath          = "DEAD_LETTER_PATH"
	EnvCORSAllowedOrigins      = "CORS_ALLOWED_ORIGINS"
	EnvTrustedProxies          = "TRUSTED_PROXIES"
	EnvSchemaVersion           = "ENV_SCHEMA_VERSION"
)

// Error messages
const (
	ErrMsgInvalidPort     = "invalid PORT value"
	ErrMsgInvalidDecimal  = "invalid %s value"
	ErrMsgAPIKeyRequired  = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidSettings = "invalid game settings"
)
