// Package postgres provides PostgreSQL implementations of the deck and score
// stores defined in the internal/store package, along with the embedded
// goose migrations that create their schema.
package postgres
