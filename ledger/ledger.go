package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/debtor/settle"
)

// ErrMalformedRecord is returned when a ledger record fails to decode. The
// whole read is aborted; no partial balances are returned.
var ErrMalformedRecord = errors.New("ledger: malformed record")

// Entry is one historical payment: from paid to the given amount.
type Entry struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amt"`
}

// Stats summarizes one read for reporting.
type Stats struct {
	// Entries is the number of ledger records read.
	Entries int

	// Unsettled is the number of participants with a non-zero balance.
	Unsettled int

	// AbsTotal is Σ|balance| over the unsettled participants — twice the
	// value that has to change hands.
	AbsTotal int64
}

// ReadBalances streams line-delimited JSON entries from r and folds them
// into net balances.
//
// Steps:
//  1. Decode entries one at a time (json.Decoder handles the framing);
//     any decode failure aborts with ErrMalformedRecord wrapped with the
//     record number.
//  2. Fold: payer −= amt, receiver += amt, starting from zero.
//  3. Drop participants whose balance folded back to zero.
//  4. Sort the remainder by participant ID for a deterministic planning
//     order regardless of record order.
//
// Complexity: O(E + P log P) for E entries and P participants.
func ReadBalances(r io.Reader) ([]settle.Balance, Stats, error) {
	var stats Stats

	positions := make(map[string]int64)
	dec := json.NewDecoder(r)
	for {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, Stats{}, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, stats.Entries+1, err)
		}
		positions[e.From] -= e.Amount
		positions[e.To] += e.Amount
		stats.Entries++
	}

	balances := make([]settle.Balance, 0, len(positions))
	for id, amt := range positions {
		if amt == 0 {
			continue
		}
		balances = append(balances, settle.Balance{ID: id, Amount: amt})
		stats.AbsTotal += abs64(amt)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].ID < balances[j].ID })
	stats.Unsettled = len(balances)

	return balances, stats, nil
}

// WriteTransfers emits one JSON object per line, mirroring the input shape.
func WriteTransfers(w io.Writer, transfers []settle.Transfer) error {
	enc := json.NewEncoder(w)
	for _, t := range transfers {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("ledger: encode transfer: %w", err)
		}
	}

	return nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
