package settle

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/debtor/bitset64"
	"github.com/katalvlaran/debtor/mzsp"
	"go.uber.org/zap"
)

// PlanExact computes a settlement with the provably minimum number of
// transfers.
//
// Steps:
//  1. Drop zero balances; reject inputs at or above ExactCapacity (O(n)).
//  2. Partition the remaining balances into the maximum number of zero-sum
//     blocks via the mzsp DP (O(3^n) time, O(2^n) space).
//  3. Settle each block independently with a branch-and-bound elimination
//     search (exponential in block size, pruned by the best plan so far).
//     Because no block contains a zero-sum proper subset, the per-block
//     minimum is also the global minimum.
//  4. Concatenate the block plans in block emission order and normalize
//     every transfer's sign.
//
// With opts.Parallel the per-block searches run concurrently; the result is
// byte-identical to the sequential plan.
func PlanExact(balances []Balance, opts Options) ([]Transfer, error) {
	opts.normalize()

	// 1) Zero balances settle themselves; everything else must fit the
	//    subset encoding.
	live := unsettled(balances)
	if len(live) >= ExactCapacity {
		return nil, ErrTooManyBalances
	}
	if len(live) == 0 {
		return nil, nil
	}

	// 2) Maximal zero-sum partitioning over the live amounts.
	amounts := make([]int64, len(live))
	for i, b := range live {
		amounts[i] = b.Amount
	}
	part, err := mzsp.Compute(amounts)
	if err != nil {
		return nil, err
	}

	blocks := make([]bitset64.Set, 0, part.Len())
	for {
		block, ok := part.Next()
		if !ok {
			break
		}
		blocks = append(blocks, block)
	}
	opts.Logger.Info("partitioned balances",
		zap.Int("unsettled", len(live)),
		zap.Int("blocks", len(blocks)))

	// 3) Per-block branch-and-bound, sequential or concurrent.
	plans := make([][]Transfer, len(blocks))
	if opts.Parallel {
		var g errgroup.Group
		for i, block := range blocks {
			i, block := i, block
			g.Go(func() error {
				var perr error
				plans[i], perr = planBlock(live, block)

				return perr
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, block := range blocks {
			if plans[i], err = planBlock(live, block); err != nil {
				return nil, err
			}
		}
	}

	// 4) Stitch the block plans together.
	var transfers []Transfer
	for _, p := range plans {
		transfers = append(transfers, p...)
	}

	return transfers, nil
}

// entry is one still-unsettled balance inside the elimination search. ord is
// the balance's original input position and breaks sorting ties, keeping the
// search fully deterministic.
type entry struct {
	id     string
	amount int64
	ord    int
}

// planEngine carries the branch-and-bound state for one zero-sum block.
// plan is the in-progress transfer prefix, shared across the recursion via
// append and truncate-on-return; each branch therefore sees exactly its own
// accumulated prefix.
type planEngine struct {
	plan     []Transfer
	best     []Transfer
	bestSize int
}

// planBlock settles the balances at block's member indices with the minimum
// number of transfers.
func planBlock(live []Balance, block bitset64.Set) ([]Transfer, error) {
	group := make([]entry, 0, block.Size())
	it := block.Elements()
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		group = append(group, entry{id: live[idx].ID, amount: live[idx].Amount, ord: idx})
	}

	e := &planEngine{bestSize: math.MaxInt}
	if err := e.search(group); err != nil {
		return nil, err
	}

	for i := range e.best {
		e.best[i].normalize()
	}

	return e.best, nil
}

// search explores eliminations of the smallest-magnitude remaining balance
// against every opposite-sign partner.
//
// At each node:
//   - A branch whose accumulated transfer count already reaches the best
//     known size cannot improve and is abandoned.
//   - An empty remainder is a complete settlement; it becomes the new
//     incumbent when strictly smaller.
//   - Otherwise the head (smallest |amount|, input-order tie-break) is
//     merged into each opposite-sign partner in turn: the partner absorbs
//     the head's amount, disappearing if the merge zeroes it exactly.
//     A same-sign pairing never reduces net imbalance and is not explored.
//
// The remaining slice is owned by the current call; sorting and reuse are
// safe because every branch builds a fresh remainder for its child.
func (e *planEngine) search(remaining []entry) error {
	// Best-so-far pruning.
	if len(e.plan) >= e.bestSize {
		return nil
	}

	// Complete settlement: record a strictly better incumbent.
	if len(remaining) == 0 {
		e.bestSize = len(e.plan)
		e.best = append(e.best[:0], e.plan...)

		return nil
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		ai, aj := abs64(remaining[i].amount), abs64(remaining[j].amount)
		if ai != aj {
			return ai < aj
		}

		return remaining[i].ord < remaining[j].ord
	})

	head := remaining[0]
	matched := false
	for j := 1; j < len(remaining); j++ {
		if sameSign(head.amount, remaining[j].amount) {
			continue
		}
		matched = true

		// Merge head into partner j: head is eliminated, the partner
		// keeps the residue (or vanishes on an exact cancel).
		next := make([]entry, 0, len(remaining)-1)
		for k := 1; k < len(remaining); k++ {
			if k != j {
				next = append(next, remaining[k])
				continue
			}
			if residue := remaining[j].amount + head.amount; residue != 0 {
				next = append(next, entry{id: remaining[j].id, amount: residue, ord: remaining[j].ord})
			}
		}

		e.plan = append(e.plan, Transfer{From: head.id, To: remaining[j].id, Amount: head.amount})
		err := e.search(next)
		e.plan = e.plan[:len(e.plan)-1]
		if err != nil {
			return err
		}
	}

	if !matched {
		// Balances remain but no partner has the opposite sign: the
		// block was not zero-sum, which block construction forbids.
		return ErrNotZeroSum
	}

	return nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func sameSign(a, b int64) bool { return (a > 0) == (b > 0) }
