// Package wizard implements the state controller behind multi-step forms.
//
// A [Controller] owns an ordered list of steps, the index of the active
// step and a merged [State] record. Renderers never touch that state
// directly: they receive a [Context] snapshot and call its operations
// ([Context.UpdateFormState], [Context.GoToNextStep],
// [Context.GoToPreviousStep]) which forward to the owning controller.
//
// # Configuration
//
// A wizard is configured with a [Definition], which is either a bare
// [Steps] list or a structured [Config] carrying optional header and
// footer renderers:
//
//	wizard.New[string](wizard.Steps[string]{s1, s2})
//	wizard.New[string](wizard.Config[string]{Header: h, Steps: []wizard.Step[string]{s1, s2}})
//
// Both forms are normalized once into a canonical [Config].
//
// # Navigation
//
// Navigation is clamped: moving past either end of the step list is a
// no-op, never an error. There is no terminal state; the renderer decides
// what finishing means (usually submitting on the last step).
//
// # Scope
//
// [Provide] attaches a controller to a [context.Context] so nested
// components can reach it with [Use] or [FromContext]. Calling [Use]
// without an enclosing [Provide] panics with [ErrNoProvider].
package wizard
