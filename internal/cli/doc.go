// Package cli parses command-line arguments into an application
// configuration, producing usage text and typed exit errors.
package cli
