// Package store defines interfaces for deck and score persistence.
// These interfaces abstract the underlying storage mechanism (process
// memory, Redis or PostgreSQL) from the service layer.
package store
