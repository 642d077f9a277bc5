// Package service contains the application use cases. DeckService
// coordinates the deck and score stores and the optional card generator,
// translating store errors into the service sentinels the API layer maps to
// HTTP status codes.
package service
