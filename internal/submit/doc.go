// Package submit delivers a finished wizard's form state.
//
// A [Pipeline] encodes the state once ([Encode], JSON or TOML) and hands
// the bytes to each of its targets in order:
//
//   - [WriterTarget]: any io.Writer, usually the stdout printer
//   - [FileTarget]: atomic write to a path
//   - [ClipboardTarget]: the system clipboard
//
// Every target runs even when an earlier one fails; the first error is
// returned.
package submit
