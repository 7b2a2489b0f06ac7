// Package service contains the core business logic.
//
// It sits between handlers and repositories: handlers hand it validated
// input, it orchestrates lookups and translates outcomes into the errors
// and response shapes the HTTP layer returns.
package service
