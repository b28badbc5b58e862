// Command debtor reads a payment ledger and prints the transfers that
// settle everyone's net balance.
//
//	debtor [-exact|-approx] [-v [-v ...]] LEDGER
//
// The ledger is line-delimited JSON, one payment per line:
//
//	{"from":"alice","to":"bob","amt":25}
//
// Settlement transfers are printed to stdout in the same shape; diagnostics
// go to stderr. By default the planner is chosen by input size; -exact
// forces the minimum-transfer plan (slow on large inputs), -approx forces
// the flow heuristic. Repeat -v to raise verbosity (warn → info → debug).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/debtor/ledger"
	"github.com/katalvlaran/debtor/settle"
)

// verbosity implements flag.Value as a repeatable boolean counter, so that
// -v -v raises the level twice.
type verbosity int

func (v *verbosity) String() string { return strconv.Itoa(int(*v)) }

func (v *verbosity) IsBoolFlag() bool { return true }

func (v *verbosity) Set(string) error {
	*v++

	return nil
}

func main() {
	var (
		exact   bool
		approx  bool
		verbose verbosity
	)
	flag.BoolVar(&exact, "exact", false, "guarantee an exact solution (may be slow)")
	flag.BoolVar(&approx, "approx", false, "guarantee a fast solution (may be suboptimal)")
	flag.Var(&verbose, "v", "increase the level of verbosity (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-exact|-approx] [-v [-v ...]] LEDGER\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if exact && approx {
		fatal("conflicting modes: -exact and -approx are mutually exclusive")
	}

	logger := newLogger(int(verbose))
	defer func() { _ = logger.Sync() }()

	// Step 1: fold the ledger into net balances.
	path := flag.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fatal("open ledger: %v", err)
	}
	start := time.Now()
	balances, stats, err := ledger.ReadBalances(f)
	_ = f.Close()
	if err != nil {
		fatal("read ledger: %v", err)
	}
	logger.Info("ledger read",
		zap.String("path", path),
		zap.Int("entries", stats.Entries),
		zap.Int("unsettled", stats.Unsettled),
		zap.Int64("abs_total", stats.AbsTotal),
		zap.Duration("took", time.Since(start)))

	// Step 2: plan the repayments.
	opts := settle.DefaultOptions()
	opts.Logger = logger
	switch {
	case exact:
		opts.Mode = settle.ModeExact
	case approx:
		opts.Mode = settle.ModeApprox
	}

	start = time.Now()
	transfers, err := settle.Solve(balances, opts)
	if err != nil {
		if errors.Is(err, settle.ErrTooManyBalances) {
			fatal("exact mode doesn't support ledgers with %d or more unsettled balances; use -approx instead",
				settle.ExactCapacity)
		}
		fatal("plan repayments: %v", err)
	}
	logger.Info("repayment plan computed",
		zap.Int("transfers", len(transfers)),
		zap.Duration("took", time.Since(start)))

	// Step 3: emit the plan.
	if err := ledger.WriteTransfers(os.Stdout, transfers); err != nil {
		fatal("write transfers: %v", err)
	}
}

// newLogger builds a console logger on stderr whose level follows the
// repeated -v count: warn by default, then info, then debug.
func newLogger(verbose int) *zap.Logger {
	level := zapcore.WarnLevel
	switch {
	case verbose == 1:
		level = zapcore.InfoLevel
	case verbose >= 2:
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fatal("build logger: %v", err)
	}

	return logger
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debtor: "+format+"\n", args...)
	os.Exit(1)
}
