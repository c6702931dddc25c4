// Package fairness derives spin outcomes from a seed and nonce so that any
// player can recompute the grid after the seed has been revealed.
package fairness

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// CellCount is the number of grid cells filled per spin
const CellCount = domain.ReelCount * domain.PositionsPerReel

// Commitment concatenates the seed and the decimal nonce
func Commitment(seed string, nonce int64) string {
	return seed + strconv.FormatInt(nonce, 10)
}

// Digest returns at least minChars hex characters for a commitment.
// Block 0 is SHA-256(commitment); block i is SHA-256(commitment + ":" + i).
func Digest(commitment string, minChars int) string {
	var b strings.Builder
	for block := 0; b.Len() < minChars; block++ {
		input := commitment
		if block > 0 {
			input = commitment + BlockSeparator + strconv.Itoa(block)
		}
		sum := sha256.Sum256([]byte(input))
		b.WriteString(hex.EncodeToString(sum[:]))
	}
	return b.String()
}

// Hash is the hex SHA-256 of the commitment, the value shown to players
func Hash(seed string, nonce int64) string {
	sum := sha256.Sum256([]byte(Commitment(seed, nonce)))
	return hex.EncodeToString(sum[:])
}

// DeriveGrid maps (seed, nonce) to a grid of symbol indices in [0, symbolCount).
// Cell k takes hex characters [8k, 8k+8) of the digest, reduced modulo symbolCount,
// filled reel by reel.
func DeriveGrid(seed string, nonce int64, symbolCount int) (domain.SpinGrid, error) {
	var grid domain.SpinGrid
	if symbolCount < 1 {
		return grid, fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, ErrMsgSymbolCountZero)
	}

	digest := Digest(Commitment(seed, nonce), CellCount*SliceHexChars)
	n := uint64(symbolCount)

	for k := 0; k < CellCount; k++ {
		slice := digest[k*SliceHexChars : (k+1)*SliceHexChars]
		value, err := strconv.ParseUint(slice, 16, 32)
		if err != nil {
			return grid, fmt.Errorf("%s: %w", ErrMsgInvalidDigestHex, err)
		}
		grid[k/domain.PositionsPerReel][k%domain.PositionsPerReel] = int(value % n)
	}

	return grid, nil
}

// Verify recomputes the grid for (seed, nonce) and compares it with a claimed grid
func Verify(seed string, nonce int64, symbolCount int, claimed domain.SpinGrid) (bool, error) {
	grid, err := DeriveGrid(seed, nonce, symbolCount)
	if err != nil {
		return false, err
	}
	return grid == claimed, nil
}
