// Package main is the flashdeck command-line client. It lists decks and
// scores, creates decks from front|back text and runs practice sessions
// against a flashdeck server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
