package account

import (
	"context"
	"fmt"

	"auth-gateway/internal/logger"
)

// step is one side-effecting action in a mutation plan. A best-effort
// step may fail without aborting the plan.
type step struct {
	name       string
	bestEffort bool
	run        func(ctx context.Context) error
}

// plan is an ordered list of steps. Ordering is part of the contract:
// callers declare dependent mutations first when a later failure must
// not leave them orphaned.
type plan struct {
	name  string
	steps []step
}

// execute runs the steps in declared order. The first failing
// non-best-effort step aborts the remainder; completed steps are not
// rolled back. Best-effort failures are logged and skipped.
func (p plan) execute(ctx context.Context) error {
	for _, s := range p.steps {
		err := s.run(ctx)
		if err == nil {
			continue
		}

		if s.bestEffort {
			logger.Warn("plan step failed, continuing", map[string]any{
				"plan":  p.name,
				"step":  s.name,
				"error": err.Error(),
			})
			continue
		}

		return fmt.Errorf("%s: %w", s.name, err)
	}

	return nil
}
