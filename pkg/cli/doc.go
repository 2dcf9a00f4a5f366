// Package cli holds the command-line surface of mimegen.
//
//   - cli/cmd: Root command wiring the registry parser to the C table generator
package cli
