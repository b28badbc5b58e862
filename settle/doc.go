// Package settle turns a set of signed participant balances into a plan of
// positive-amount transfers that folds every balance to zero.
//
// Two planners are provided:
//
//   - PlanExact — guaranteed-minimum transfer count. The balances are first
//     split into the maximum number of zero-sum blocks (package mzsp, an
//     O(3^n) bitmask DP), then each block is settled by a branch-and-bound
//     search over pairwise eliminations with best-so-far pruning. The search
//     is exponential in block size, which is why it only ever runs per block;
//     the partitioning keeps blocks small in practice.
//
//   - PlanApprox — polynomial-time heuristic. The balances become a complete
//     unit-cost flow network (positive balances fed by a virtual source,
//     negative balances drained by a virtual sink); a min-cost max-flow solve
//     (package flow) biases toward few hops, and the flow paths decode back
//     into transfers. Total value moved is conserved; transfer-count
//     minimality is NOT guaranteed.
//
// Solve routes between the two: explicit ModeExact / ModeApprox, or ModeAuto
// which plans exactly up to DefaultExactLimit unsettled balances and
// approximates (with a warning) beyond it.
//
// All computation is synchronous and per-call: the DP tables and search
// state belong to one invocation and are discarded on return. The optional
// Parallel flag plans independent zero-sum blocks concurrently — safe
// because the tables are write-once and blocks are disjoint.
//
// Determinism: balances are processed in input order, the elimination search
// sorts by ascending absolute amount with input-order tie-breaks, and flow
// decoding follows deterministic arc order, so identical inputs always yield
// identical plans.
//
// Errors (sentinel):
//
//	– ErrTooManyBalances if exact planning is asked for ≥ 64 unsettled
//	  balances (the 64-bit subset encoding; the practical ceiling is the
//	  O(3^n) time factor, which ModeAuto respects).
//	– ErrNotZeroSum if the elimination search runs out of opposite-sign
//	  partners — unreachable for a genuinely zero-sum block; it signals a
//	  bug in block construction, not bad input.
//	– ErrUnknownMode for an unrecognized Options.Mode.
package settle
