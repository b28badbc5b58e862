// Package debtor settles net debts among a group of participants with as
// few monetary transfers as possible, given a ledger of pairwise payments.
//
// 🚀 What is debtor?
//
//	A small, deterministic settlement engine built from four pieces:
//		• bitset64 — immutable 64-bit subset values that double as dense DP table keys
//		• mzsp     — maximal zero-sum partitioning of signed balances (bitmask DP)
//		• flow     — min-cost max-flow solver with flow-path decomposition
//		• settle   — exact (branch-and-bound) and approximate (flow) transfer planners
//
// The exact planner guarantees the minimum transfer count per zero-sum block;
// the approximate planner trades that guarantee for polynomial time on large
// inputs. Both consume an ordered sequence of signed (participant, amount)
// balances and produce an ordered sequence of (from, to, amount) transfers.
//
// Reading a ledger file lives in the ledger package; the debtor CLI under
// cmd/debtor wires everything together:
//
//	debtor [-exact|-approx] [-v [-v ...]] LEDGER
//
// Ledger entries and emitted transfers share one line-delimited JSON shape:
//
//	{"from":"alice","to":"bob","amt":25}
//
// Dive into each package's doc.go for contracts, complexity and pitfalls.
//
//	go get github.com/katalvlaran/debtor
package debtor
