package fairness

// Derivation parameters
const (
	// SliceHexChars is the number of hex characters consumed per grid cell
	SliceHexChars = 8

	// SeedRandomBytes is the amount of crypto/rand entropy in every seed
	SeedRandomBytes = 16

	// BlockSeparator joins the commitment and the block counter when the digest is extended
	BlockSeparator = ":"
)

// Error messages
const (
	ErrMsgSymbolCountZero   = "symbol count must be at least 1"
	ErrMsgSeedEntropyFailed = "failed to read seed entropy"
	ErrMsgInvalidDigestHex  = "digest slice is not valid hex"
)
