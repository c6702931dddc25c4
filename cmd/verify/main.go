// Command verify recomputes a spin from its revealed seed and nonce so a
// player can check the grid they were shown without trusting the server.
//
// Usage:
//
//	verify -seed <seed> -nonce <unix-millis> [-grid 3,3,3,3,3,4,7,3,5] [-paytable table.json]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/fairness"
	"github.com/osse101/FairSlots_Go/internal/paytable"
	"github.com/osse101/FairSlots_Go/internal/slots"
)

type report struct {
	Commitment     string                `json:"commitment"`
	Hash           string                `json:"hash"`
	Grid           domain.SpinGrid       `json:"grid"`
	EvaluationLine [domain.ReelCount]int `json:"evaluation_line"`
	Outcome        domain.WinOutcome     `json:"outcome"`
	Valid          *bool                 `json:"valid,omitempty"`
}

func main() {
	seed := flag.String("seed", "", "revealed spin seed")
	nonce := flag.Int64("nonce", 0, "spin nonce in unix milliseconds")
	gridFlag := flag.String("grid", "", "grid shown to the player, nine comma-separated indices in reel order")
	tablePath := flag.String("paytable", "", "payout table JSON (default table when empty)")
	flag.Parse()

	if *seed == "" || *nonce <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*seed, *nonce, *gridFlag, *tablePath); err != nil {
		fmt.Fprintf(os.Stderr, "verify: %v\n", err)
		os.Exit(1)
	}
}

func run(seed string, nonce int64, gridFlag, tablePath string) error {
	table, err := paytable.Load(tablePath)
	if err != nil {
		return err
	}

	grid, err := fairness.DeriveGrid(seed, nonce, table.Len())
	if err != nil {
		return err
	}

	r := report{
		Commitment:     fairness.Commitment(seed, nonce),
		Hash:           fairness.Hash(seed, nonce),
		Grid:           grid,
		EvaluationLine: grid.Line(),
		Outcome:        slots.Evaluate(grid, table),
	}

	if gridFlag != "" {
		claimed, err := parseGrid(gridFlag)
		if err != nil {
			return err
		}
		valid := claimed == grid
		r.Valid = &valid
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}

	if r.Valid != nil && !*r.Valid {
		return errors.New("grid does not match the seed and nonce")
	}
	return nil
}

func parseGrid(s string) (domain.SpinGrid, error) {
	var grid domain.SpinGrid
	parts := strings.Split(s, ",")
	if len(parts) != fairness.CellCount {
		return grid, fmt.Errorf("grid needs %d values, got %d", fairness.CellCount, len(parts))
	}
	for k, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid, fmt.Errorf("grid value %d: %w", k, err)
		}
		grid[k/domain.PositionsPerReel][k%domain.PositionsPerReel] = v
	}
	return grid, nil
}
