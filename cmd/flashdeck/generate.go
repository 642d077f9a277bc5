package main

import (
	"fmt"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(newClient clientFactory) *cobra.Command {
	var (
		file string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Generate cards from notes",
		Long: `Ask the server to write flashcards from free-form notes read from --file
or stdin. The cards are printed as front|back lines and saved as NAME with --save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			c, err := newClient()
			if err != nil {
				return err
			}
			if save {
				if err := checkNewDeckName(cmd, c, name); err != nil {
					return err
				}
			}

			text, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			cards, err := c.GenerateDeck(cmd.Context(), text)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), domain.FormatCards(cards))

			if !save {
				return nil
			}
			if err := c.SaveDeck(cmd.Context(), name, cards); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved deck %s (%d cards)\n", name, len(cards))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read notes from this file instead of stdin")
	cmd.Flags().BoolVar(&save, "save", false, "save the generated cards as NAME")
	return cmd
}
