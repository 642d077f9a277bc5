package main

import (
	"fmt"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newDecksCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List deck names in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			names, err := c.ListDecks(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newScoresCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "List recorded scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			scores, err := c.ListScores(cmd.Context())
			if err != nil {
				return err
			}
			for _, score := range scores {
				fmt.Fprintln(cmd.OutOrStdout(), formatScore(score))
			}
			return nil
		},
	}
}

func newShowCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a deck as front|back lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			cards, err := c.LoadDeck(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), domain.FormatCards(cards))
			return nil
		},
	}
}

// formatScore renders a score the way the start page lists it.
func formatScore(score domain.Score) string {
	return fmt.Sprintf("%s,%s: %d%%", score.Username, score.DeckName, score.Percentage)
}
