// Package generation defines the boundary between the application and LLM
// services that turn free-form study notes into flashcards. Implementations
// live under internal/platform (see the gemini package).
package generation
