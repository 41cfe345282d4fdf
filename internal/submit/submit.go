package submit

import (
	"context"
	"errors"

	"github.com/raphi011/stepper/internal/log"
	"github.com/raphi011/stepper/internal/wizard"
)

// Submitter delivers a finished form state.
type Submitter interface {
	Submit(ctx context.Context, state wizard.State) error
}

// Func adapts a function to Submitter.
type Func func(ctx context.Context, state wizard.State) error

func (f Func) Submit(ctx context.Context, state wizard.State) error {
	return f(ctx, state)
}

// Pipeline encodes the state once and delivers it to every target.
type Pipeline struct {
	Format  Format
	Targets []Target
}

// New creates a pipeline. format is validated with ParseFormat.
func New(format string, targets ...Target) (*Pipeline, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Pipeline{Format: f, Targets: targets}, nil
}

// Submit encodes state and delivers it to every target in order. All
// targets run; the first error is returned.
func (p *Pipeline) Submit(ctx context.Context, state wizard.State) error {
	data, err := Encode(state, p.Format)
	if err != nil {
		return err
	}

	l := log.FromContext(ctx)
	var first error
	for _, t := range p.Targets {
		if err := ctx.Err(); err != nil {
			return errors.Join(first, err)
		}
		l.Debug("deliver", "target", t, "format", p.Format, "bytes", len(data))
		if err := t.Deliver(ctx, data); err != nil {
			l.Debug("deliver failed", "target", t, "err", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
