package wizard

import (
	"slices"
	"sync"
)

// Controller owns the step list, the active step index and the form
// state. All mutations go through its methods; renderers only see
// [Context] snapshots.
//
// Subscribers are notified synchronously after every state change, in the
// order the changes were made. A subscriber may call back into the
// controller; the resulting notification is queued behind the current one.
type Controller[V any] struct {
	mu    sync.Mutex
	cfg   Config[V]
	state State
	index int

	subs       []subscription
	nextSubID  int
	pending    []Context
	delivering bool
}

type subscription struct {
	id int
	fn func(Context)
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	initial State
}

// WithInitialState seeds the form state instead of starting empty.
func WithInitialState(s State) Option {
	return func(o *options) {
		o.initial = s
	}
}

// New creates a controller for def, positioned on the first step with an
// empty form state.
func New[V any](def Definition[V], opts ...Option) *Controller[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[V]{
		cfg:   Normalize(def),
		state: o.initial.Clone(),
	}
}

// UpdateFormState shallow-merges partial into the form state: keys in
// partial overwrite existing keys of the same name, other keys are kept.
// No validation is performed.
func (c *Controller[V]) UpdateFormState(partial State) {
	c.commit(func() bool {
		c.state = c.state.Merge(partial)
		return true
	})
}

// GoToNextStep moves to the next step. On the last step it does nothing.
func (c *Controller[V]) GoToNextStep() {
	c.commit(func() bool {
		if c.index >= len(c.cfg.Steps)-1 {
			return false
		}
		c.index++
		return true
	})
}

// GoToPreviousStep moves to the previous step. On the first step it does
// nothing.
func (c *Controller[V]) GoToPreviousStep() {
	c.commit(func() bool {
		if c.index <= 0 {
			return false
		}
		c.index--
		return true
	})
}

// Reconfigure replaces the wizard definition. Form state is kept and the
// step index is clamped into the new step list.
func (c *Controller[V]) Reconfigure(def Definition[V]) {
	cfg := Normalize(def)
	c.commit(func() bool {
		c.cfg = cfg
		c.index = clamp(c.index, len(cfg.Steps))
		return true
	})
}

// Snapshot returns the current derived view of the wizard.
func (c *Controller[V]) Snapshot() Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Index returns the current step index.
func (c *Controller[V]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of steps.
func (c *Controller[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cfg.Steps)
}

// Steps returns a copy of the canonical step list.
func (c *Controller[V]) Steps() []Step[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.cfg.Steps)
}

// Current returns the active step. ok is false when there are no steps.
func (c *Controller[V]) Current() (step Step[V], ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index >= len(c.cfg.Steps) {
		return Step[V]{}, false
	}
	return c.cfg.Steps[c.index], true
}

// Header returns the header renderer, if one was configured.
func (c *Controller[V]) Header() (Renderer[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Header, c.cfg.Header != nil
}

// Footer returns the footer renderer, if one was configured.
func (c *Controller[V]) Footer() (Renderer[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Footer, c.cfg.Footer != nil
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change. The returned function removes the subscription.
func (c *Controller[V]) Subscribe(fn func(Context)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool { return s.id == id })
	}
}

// commit applies mutate under the lock and, if it changed anything,
// delivers the new snapshot to subscribers outside the lock. Re-entrant
// commits queue their snapshot for the outermost caller to deliver.
func (c *Controller[V]) commit(mutate func() bool) {
	c.mu.Lock()
	if !mutate() {
		c.mu.Unlock()
		return
	}
	c.pending = append(c.pending, c.snapshotLocked())
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	c.mu.Unlock()
	c.deliver()
}

// deliver drains the pending snapshots. If a subscriber panics the queue
// is dropped and delivery is released, so later commits notify again.
func (c *Controller[V]) deliver() {
	drained := false
	defer func() {
		if drained {
			return
		}
		c.mu.Lock()
		c.pending = nil
		c.delivering = false
		c.mu.Unlock()
	}()

	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.delivering = false
			c.mu.Unlock()
			drained = true
			return
		}
		snap := c.pending[0]
		c.pending = c.pending[1:]
		subs := slices.Clone(c.subs)
		c.mu.Unlock()

		for _, s := range subs {
			s.fn(snap)
		}
	}
}

func (c *Controller[V]) snapshotLocked() Context {
	n := len(c.cfg.Steps)
	wc := Context{
		FormState:        c.state.Clone(),
		CurrentStepIndex: c.index,
		StepCount:        n,
		IsFirstStep:      c.index == 0,
		IsLastStep:       c.index == n-1,
		op:               c,
	}
	if c.index < n {
		wc.StepID = c.cfg.Steps[c.index].ID
		wc.StepTitle = c.cfg.Steps[c.index].Title
	}
	return wc
}

func clamp(index, n int) int {
	if index > n-1 {
		index = n - 1
	}
	return max(index, 0)
}
