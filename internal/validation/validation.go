// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules defined in struct tags
// (like the strict YYYY-MM-DD date format) and converts validation
// failures into the error shape the client understands.
package validation
