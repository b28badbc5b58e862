package settle

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for planning.
var (
	// ErrTooManyBalances is returned when exact planning is requested on
	// more unsettled balances than the 64-bit subset encoding supports.
	ErrTooManyBalances = errors.New("settle: exact planning supports fewer than 64 unsettled balances")

	// ErrNotZeroSum is returned when the elimination search finds no
	// opposite-sign partner while balances remain. Unreachable for a
	// correctly formed zero-sum block.
	ErrNotZeroSum = errors.New("settle: balances do not sum to zero")

	// ErrUnknownMode is returned by Solve for an unrecognized Mode.
	ErrUnknownMode = errors.New("settle: unknown planning mode")
)

const (
	// ExactCapacity is the hard input bound of the exact planner: the
	// subset encoding is 64 bits wide, so exact mode rejects inputs with
	// ExactCapacity or more unsettled balances.
	ExactCapacity = 64

	// DefaultExactLimit is the unsettled-balance count up to which
	// ModeAuto still picks the exact planner. Beyond it the O(3^n) DP is
	// no longer worth the wait and auto mode approximates instead.
	DefaultExactLimit = 20

	// ApproxEdgeCap is the fixed capacity of every inter-participant edge
	// in the approximate planner's network. A single settlement larger
	// than this saturates the direct edge and routes through extra hops
	// (warned about, still emitted).
	ApproxEdgeCap = 1_000_000_000
)

// Balance is one participant's net position: positive means the participant
// owes the pool, negative means the pool owes the participant.
type Balance struct {
	ID     string
	Amount int64
}

// Transfer is one emitted repayment of a strictly positive amount.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amt"`
}

// normalize flips a transfer whose internally signed amount came out
// negative, so that every emitted amount is positive.
func (t *Transfer) normalize() {
	if t.Amount < 0 {
		t.From, t.To = t.To, t.From
		t.Amount = -t.Amount
	}
}

// Mode selects the planning strategy.
type Mode int

const (
	// ModeAuto plans exactly up to DefaultExactLimit balances, then
	// falls back to the approximate planner with a warning.
	ModeAuto Mode = iota

	// ModeExact always runs the exact planner (may be slow; fails above
	// the encoding capacity).
	ModeExact

	// ModeApprox always runs the flow-based planner.
	ModeApprox
)

// Options configures planning.
type Options struct {
	// Mode selects exact, approximate, or size-based automatic routing.
	Mode Mode

	// Logger receives progress and quality warnings. nil disables logging.
	Logger *zap.Logger

	// Parallel plans independent zero-sum blocks concurrently in exact
	// mode. Output is identical to the sequential plan.
	Parallel bool
}

// Option is a functional override for Options.
type Option func(*Options)

// WithMode selects the planning strategy.
func WithMode(m Mode) Option { return func(o *Options) { o.Mode = m } }

// WithLogger attaches a logger for progress and quality warnings.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithParallel enables concurrent per-block exact planning.
func WithParallel() Option { return func(o *Options) { o.Parallel = true } }

// DefaultOptions returns production-safe defaults: automatic routing, no
// logging, sequential planning.
func DefaultOptions() Options {
	return Options{Mode: ModeAuto, Logger: zap.NewNop()}
}

// normalize fills the defaults a zero-valued Options is missing.
func (o *Options) normalize() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// unsettled filters out zero balances, preserving input order. A zero
// balance settles itself with the empty transfer set.
func unsettled(balances []Balance) []Balance {
	live := make([]Balance, 0, len(balances))
	for _, b := range balances {
		if b.Amount != 0 {
			live = append(live, b)
		}
	}

	return live
}
