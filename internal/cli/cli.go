// Package cli implements the rpgcard command-line interface.
//
// The CLI has a single real command, serve, which loads configuration,
// wires the cache backend, the GitHub client, and the optional analytics
// recorder, and runs the HTTP server until the process context is
// cancelled.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli
