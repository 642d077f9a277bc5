// Package api implements the HTTP handlers for the flashcard JSON API.
//
// Error responses are plain text carrying a literal message such as
// `required argument "name" was missing`; success responses are JSON.
// Service errors are mapped to status codes in errors.go.
package api
