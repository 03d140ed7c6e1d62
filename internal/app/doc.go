// Package app contains the core application logic. It defines the main App
// struct and the dispatch step that turns a parsed command line into a
// repository creation request, decoupled from any specific entrypoint.
package app
