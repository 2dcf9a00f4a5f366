// Package tablegen turns the mime.types registry into a C lookup table.
//
// The service streams registry pairs into the ctable generator and writes the
// finished table in a single call, so a failure never leaves a partial table on
// the output. Extensions that repeat (compared case-insensitively, as the C
// consumer does) are reported as warnings and still emitted.
package tablegen
