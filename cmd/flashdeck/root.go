package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/flashdeck/internal/client"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// clientFactory builds an API client from the resolved --server value.
type clientFactory func() (*client.Client, error)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLASHDECK")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "flashdeck",
		Short:         "Create, practice and score flashcard decks",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("server", client.DefaultBaseURL,
		"flashdeck server URL (env FLASHDECK_SERVER)")
	_ = v.BindPFlag("server", root.PersistentFlags().Lookup("server"))

	newClient := func() (*client.Client, error) {
		return client.New(v.GetString("server"))
	}

	root.AddCommand(
		newDecksCmd(newClient),
		newScoresCmd(newClient),
		newShowCmd(newClient),
		newCreateCmd(newClient),
		newPracticeCmd(newClient),
		newGenerateCmd(newClient),
	)
	return root
}

// readInput returns the contents of path, or of stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// deckTextError turns a card parsing error into the message shown on the
// create page.
func deckTextError(err error) error {
	var lineErr *domain.LineError
	switch {
	case errors.Is(err, domain.ErrEmptyDeckText):
		return errors.New("Flashcard data is empty! Please try again.")
	case errors.As(err, &lineErr):
		return fmt.Errorf("%s. Please try again.", lineErr.Error())
	default:
		return err
	}
}

// checkNewDeckName rejects empty names and names already on the server.
func checkNewDeckName(cmd *cobra.Command, c *client.Client, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("No flashdeck name! Please try again.")
	}
	names, err := c.ListDecks(cmd.Context())
	if err != nil {
		return err
	}
	for _, existing := range names {
		if existing == name {
			return errors.New("Flashdeck name already exists! Please try again.")
		}
	}
	return nil
}
