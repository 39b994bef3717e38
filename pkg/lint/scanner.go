package lint

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Scanner runs a fixed list of rules over a document.
//
// Output order is rule order, then line, then match within the line.
// Violations are never deduplicated: two rules flagging the same text both
// report it.
type Scanner struct {
	// Rules run in this order.
	Rules []Rule

	// Jobs bounds how many rules run concurrently. 0 means GOMAXPROCS,
	// 1 means sequential. Output order does not depend on Jobs.
	Jobs int
}

// NewScanner creates a scanner over the given rules.
func NewScanner(rules []Rule) *Scanner {
	return &Scanner{Rules: rules, Jobs: 1}
}

// Scan runs every rule over lines and concatenates their violations.
// Lines are never modified.
func (s *Scanner) Scan(ctx context.Context, lines []string) ([]Violation, error) {
	perRule := make([][]Violation, len(s.Rules))

	jobs := s.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	if jobs == 1 || len(s.Rules) < 2 {
		for idx, rule := range s.Rules {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scan cancelled: %w", err)
			}
			perRule[idx] = rule.Detect(lines)
		}
		return concat(perRule), nil
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(s.Rules)))

	for idx, rule := range s.Rules {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its own slot; no locking needed.
			perRule[idx] = rule.Detect(lines)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}

	return concat(perRule), nil
}

func concat(perRule [][]Violation) []Violation {
	total := 0
	for _, vs := range perRule {
		total += len(vs)
	}

	out := make([]Violation, 0, total)
	for _, vs := range perRule {
		out = append(out, vs...)
	}
	return out
}
