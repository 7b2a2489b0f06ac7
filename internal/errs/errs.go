// Package errs defines custom error types and utilities.
//
// Its purpose is to give every failure a single, consistent wire shape:
// clients always receive a JSON object with a human-readable `detail`
// field, while the status code and a machine-readable code stay internal
// to the server for logging and routing.
package errs
