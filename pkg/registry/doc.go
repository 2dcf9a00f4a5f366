// Package registry reads nginx-style mime.types registries.
//
// A registry line holds a MIME type followed by the file extensions that map to it,
// optionally decorated with semicolons:
//
//	text/html html htm shtml;
//
// Key functionality:
//   - Parse: Stream (extension, MIME type) pairs from any reader in source order
//   - ParseLine: Split a single registry line
//   - Open: Open the registry file and stream its pairs
//
// Tokens are taken verbatim. Pairs are never sorted or deduplicated.
package registry
