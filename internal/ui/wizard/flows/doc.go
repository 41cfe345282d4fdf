// Package flows provides complete wizards built on the framework and
// steps packages.
//
// Available flows:
//   - [NewSignup] / [SignupInteractive]: three-step account sign-up
//     (credentials, name, employment) that submits the merged state on
//     the last step.
package flows
