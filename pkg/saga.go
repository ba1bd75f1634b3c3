package pkg

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// Saga collects undo steps for a multi-write operation that has no
// surrounding transaction. Steps are undone in reverse order.
type Saga struct {
	compensations []compensation
}

func (s *Saga) AddCompensation(name string, fn func(ctx context.Context) error) {
	s.compensations = append(s.compensations, compensation{name: name, fn: fn})
}

// Compensate runs every registered undo step, even when some fail, and returns
// the combined compensation errors (nil if all succeeded).
func (s *Saga) Compensate(ctx context.Context) error {
	var err error
	for i := len(s.compensations) - 1; i >= 0; i-- {
		c := s.compensations[i]
		if cErr := c.fn(ctx); cErr != nil {
			err = multierr.Append(err, fmt.Errorf("compensate %s: %w", c.name, cErr))
		}
	}
	s.compensations = nil
	return err
}

func (s *Saga) Len() int {
	return len(s.compensations)
}
