// Package app wires application dependencies for the CLI.
//
// Load resolves a Config from defaults, an optional YAML file and the
// environment. NewWire builds the metrics set and the services from it,
// exposing them via the Wire struct for commands to use.
package app
