// Package memory implements the store interfaces in process memory.
// It is the default backend: decks and scores live for the lifetime of
// the process, with no eviction, expiry or persistence.
package memory
