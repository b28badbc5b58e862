package settle

import "go.uber.org/zap"

// Solve routes to the planner selected by opts.Mode.
//
//   - ModeExact:  PlanExact, whatever the input size (fails above capacity).
//   - ModeApprox: PlanApprox.
//   - ModeAuto:   PlanExact while the unsettled count stays within
//     DefaultExactLimit; beyond it the solution may be suboptimal, so a
//     warning is logged and PlanApprox runs instead.
func Solve(balances []Balance, opts Options) ([]Transfer, error) {
	opts.normalize()

	switch opts.Mode {
	case ModeExact:
		return PlanExact(balances, opts)

	case ModeApprox:
		return PlanApprox(balances, opts)

	case ModeAuto:
		if n := len(unsettled(balances)); n > DefaultExactLimit {
			opts.Logger.Warn("too many unsettled balances for exact planning, the solution may be approximate",
				zap.Int("unsettled", n),
				zap.Int("exact_limit", DefaultExactLimit))

			return PlanApprox(balances, opts)
		}

		return PlanExact(balances, opts)

	default:
		return nil, ErrUnknownMode
	}
}
