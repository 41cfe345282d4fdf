// Package steps provides the building blocks for wizard step pages.
//
// A [Form] is a step page made of fields ([TextField], [SelectField],
// [CheckboxField]). Field validation lives here: the wizard controller
// accepts whatever a form writes, so a form only calls UpdateFormState
// once every field validates.
package steps
