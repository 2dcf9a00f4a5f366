// Package svc provides service layer components for mimegen.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the parser and generator packages.
//
// Subpackages:
//   - tablegen: Registry to C table generation with all-or-nothing output
package svc
