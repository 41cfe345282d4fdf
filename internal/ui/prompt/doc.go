// Package prompt provides simple interactive prompts.
//
// This package contains standalone interactive prompts for common
// user input scenarios. For multi-step flows, see the wizard packages.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
package prompt
