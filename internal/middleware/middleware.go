// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, panic recovery, and
// translating every error into the API's wire shape.
package middleware
