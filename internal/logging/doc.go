// Package logger provides leveled logging for secnix CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings are always shown on stderr so that scripts capturing stdout
// (for example a pre-commit hook running "secnix check") never see
// diagnostic text mixed into the command output. Errors propagate as error
// values and are reported once, by the command entry point.
//
// Commands create a logger in their PersistentPreRun and pass it down to
// workflow functions.
package logger
