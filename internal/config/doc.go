// Package config resolves the runtime configuration of the we command.
//
// Values are layered: built-in defaults, then an optional HCL file, then
// environment variables (optionally seeded from a .env file). The command
// line itself only carries the app name, so nothing here reads flags.
package config
