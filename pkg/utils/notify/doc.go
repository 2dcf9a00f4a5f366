// Package notify writes formatted diagnostics for CLI users.
//
// [WriteMessage] prefixes each message with a type-specific symbol and color:
// error (✗), warning (⚠) and success (✔). Color is dropped automatically when
// stdout is not a terminal or NO_COLOR is set. Diagnostics are meant for stderr so stdout stays
// reserved for generated output.
package notify
