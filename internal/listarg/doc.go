// Package listarg parses the single-token list literal accepted by --args,
// e.g. "['a','b']", into an ordered slice of strings.
//
// The token is treated as the right-hand side of a TOML assignment, so both
// single-quoted literal strings and double-quoted basic strings are accepted.
// Elements are normalized to NFC, the only form an HCL string can carry.
package listarg
