// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the raw argument list into an Invocation for the app package.
package cli
