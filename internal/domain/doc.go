// Package domain contains the core flashcard entities (decks, cards and
// scores) and the rules that keep them valid, independent of how they are
// stored or delivered.
package domain
