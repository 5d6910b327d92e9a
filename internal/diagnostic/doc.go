// Package diagnostic provides structured errors and warnings found while
// validating a transform registry configuration.
//
// Key capabilities:
//   - Error, warning and info severities with stable codes
//   - The config path each finding relates to
//   - Suggested replacements for misspelled values
package diagnostic
