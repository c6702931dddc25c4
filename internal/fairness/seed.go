package fairness

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

var seedSequence atomic.Uint64

// NewSeed returns a fresh spin seed: random bytes, the high-resolution clock and a
// process-wide sequence number, so two calls never return the same value.
func NewSeed() (string, error) {
	buf := make([]byte, SeedRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgSeedEntropyFailed, err)
	}

	seq := seedSequence.Add(1)
	return hex.EncodeToString(buf) +
		strconv.FormatInt(time.Now().UnixNano(), 36) +
		strconv.FormatUint(seq, 36), nil
}

// HashSeed returns the hex SHA-256 of a seed, published before the seed itself is revealed
func HashSeed(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
