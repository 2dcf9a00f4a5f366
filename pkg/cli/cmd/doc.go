// Package cmd provides the command-line interface for mimegen.
//
// The root command takes no arguments: it reads mime.types from the working
// directory and prints the generated C table to stdout. Diagnostics go to stderr.
package cmd
