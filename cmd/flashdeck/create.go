package main

import (
	"fmt"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newCreateCmd(newClient clientFactory) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a deck from front|back lines",
		Long: `Create a deck from text with one card per line, formatted as front|back.
The text is read from --file, or from stdin when no file is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			c, err := newClient()
			if err != nil {
				return err
			}
			if err := checkNewDeckName(cmd, c, name); err != nil {
				return err
			}

			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			cards, err := domain.ParseCards(text)
			if err != nil {
				return deckTextError(err)
			}

			if err := c.SaveDeck(cmd.Context(), name, cards); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved deck %s (%d cards)\n", name, len(cards))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read cards from this file instead of stdin")
	return cmd
}
