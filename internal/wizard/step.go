package wizard

// Renderer draws one part of the wizard (header, step body or footer)
// from the current snapshot. V is whatever the host UI renders.
type Renderer[V any] func(Context) V

// Step describes one page of the wizard.
type Step[V any] struct {
	ID     string
	Title  string
	Render Renderer[V]
}

// Key identifies the step for the host UI so it can keep or remount the
// step's view. It is the ID, falling back to the Title.
func (s Step[V]) Key() string {
	if s.ID != "" {
		return s.ID
	}
	return s.Title
}

// DisplayID is the label used to identify the rendered step container.
// It prefers the Title and falls back to the ID.
func (s Step[V]) DisplayID() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// Definition is the configuration accepted by [New]: either a bare
// [Steps] list or a structured [Config].
type Definition[V any] interface {
	normalize() Config[V]
}

// Steps is the bare form of a wizard definition: an ordered list of
// steps without header or footer.
type Steps[V any] []Step[V]

func (s Steps[V]) normalize() Config[V] {
	return Config[V]{Steps: []Step[V](s)}
}

// Config is the structured form of a wizard definition and also the
// canonical representation every Definition normalizes to.
type Config[V any] struct {
	Header Renderer[V] // optional
	Steps  []Step[V]
	Footer Renderer[V] // optional
}

func (c Config[V]) normalize() Config[V] {
	return c
}

// Normalize resolves def into its canonical Config. The step slice is
// copied so later changes to the caller's slice are not observed.
func Normalize[V any](def Definition[V]) Config[V] {
	if def == nil {
		return Config[V]{}
	}
	cfg := def.normalize()
	cfg.Steps = append([]Step[V](nil), cfg.Steps...)
	return cfg
}
