package wizard

// Frame is one full render of the wizard: optional header, the active
// step's body and optional footer, all drawn from the same snapshot.
type Frame[V any] struct {
	Context Context

	Header    V
	HasHeader bool

	Body    V
	HasBody bool
	// Key identifies the active step; when it changes the host should
	// treat Body as a new view rather than an update of the old one.
	Key       string
	DisplayID string

	Footer    V
	HasFooter bool
}

// Render calls the header, active step and footer renderers with a
// single snapshot.
func (c *Controller[V]) Render() Frame[V] {
	c.mu.Lock()
	wc := c.snapshotLocked()
	cfg := c.cfg
	idx := c.index
	c.mu.Unlock()

	f := Frame[V]{Context: wc}
	if cfg.Header != nil {
		f.Header, f.HasHeader = cfg.Header(wc), true
	}
	if idx < len(cfg.Steps) {
		step := cfg.Steps[idx]
		f.Key = step.Key()
		f.DisplayID = step.DisplayID()
		if step.Render != nil {
			f.Body, f.HasBody = step.Render(wc), true
		}
	}
	if cfg.Footer != nil {
		f.Footer, f.HasFooter = cfg.Footer(wc), true
	}
	return f
}
