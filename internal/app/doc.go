// Package app contains the core application logic. It defines the App
// struct and its run lifecycle: report the parsed configuration, optionally
// check that it survives a serialization round trip, and dispatch the selected
// counting operation. It is decoupled from any specific entrypoint.
package app
