package wizard

import (
	"context"
	"errors"
)

// ErrNoProvider is raised when the wizard context is consumed outside of
// a [Provide] scope.
var ErrNoProvider = errors.New("wizard: Use must be called within a wizard.Provide scope")

// operator is the non-generic view of a Controller that snapshots and
// scopes carry around.
type operator interface {
	UpdateFormState(partial State)
	GoToNextStep()
	GoToPreviousStep()
	Snapshot() Context
}

// Context is the read-only snapshot handed to renderers. It is a value:
// FormState is a private copy, so mutating it has no effect on the
// wizard. Use the methods to change state.
type Context struct {
	FormState        State
	CurrentStepIndex int
	StepCount        int
	StepID           string
	StepTitle        string
	IsFirstStep      bool
	IsLastStep       bool

	op operator
}

// UpdateFormState shallow-merges partial into the wizard's form state.
func (c Context) UpdateFormState(partial State) {
	c.owner().UpdateFormState(partial)
}

// GoToNextStep advances one step, or does nothing on the last step.
func (c Context) GoToNextStep() {
	c.owner().GoToNextStep()
}

// GoToPreviousStep goes back one step, or does nothing on the first step.
func (c Context) GoToPreviousStep() {
	c.owner().GoToPreviousStep()
}

// Refresh returns a fresh snapshot from the owning controller.
func (c Context) Refresh() Context {
	return c.owner().Snapshot()
}

// A zero Context was not produced by a controller; treat it like a
// missing provider so the bug surfaces where it happens.
func (c Context) owner() operator {
	if c.op == nil {
		panic(ErrNoProvider)
	}
	return c.op
}

type ctxKey struct{}

// Provide attaches the controller to ctx. Components below it can reach
// the wizard with [Use] or [FromContext].
func Provide[V any](ctx context.Context, c *Controller[V]) context.Context {
	return context.WithValue(ctx, ctxKey{}, operator(c))
}

// FromContext returns the current snapshot of the wizard attached to ctx.
// Returns ErrNoProvider if there is none.
func FromContext(ctx context.Context) (Context, error) {
	if ctx != nil {
		if op, ok := ctx.Value(ctxKey{}).(operator); ok && op != nil {
			return op.Snapshot(), nil
		}
	}
	return Context{}, ErrNoProvider
}

// Use is like FromContext but panics when no wizard is in scope.
func Use(ctx context.Context) Context {
	wc, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return wc
}
