package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/practice"
	"github.com/spf13/cobra"
)

const practiceHelp = "[f]lip  [c]orrect  [i]ncorrect  [r]eset  [q]uit"

func newPracticeCmd(newClient clientFactory) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "practice NAME",
		Short: "Practice a deck and record the score",
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
			session, err := practice.NewSession(&domain.Deck{Name: args[0], Cards: cards})
			if err != nil {
				return err
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			finished, err := runPractice(session, in, out)
			if err != nil || !finished {
				return err
			}

			score, err := finishPractice(session, username, in, out)
			if err != nil {
				return err
			}
			if err := c.SaveScore(cmd.Context(), score.Username, score.DeckName, score.Percentage); err != nil {
				return err
			}
			fmt.Fprintln(out, formatScore(*score))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "user", "u", "", "name to record the score under")
	return cmd
}

// runPractice drives session from commands read from in. It reports false
// when the user quits before answering every card.
func runPractice(session *practice.Session, in *bufio.Scanner, out io.Writer) (bool, error) {
	fmt.Fprintln(out, session.DeckName())
	fmt.Fprintln(out, practiceHelp)

	for session.Practicing() {
		side, err := session.Current()
		if err != nil {
			return false, err
		}
		label := "back"
		if session.ShowingFront() {
			label = "front"
		}
		fmt.Fprintf(out, "Correct: %d | Incorrect: %d\n", session.CorrectCount(), session.IncorrectCount())
		fmt.Fprintf(out, "[%s] %s\n> ", label, side)

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return false, err
			}
			return false, errors.New("practice interrupted: input closed")
		}

		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "f", "flip":
			err = session.Flip()
		case "c", "correct":
			err = session.Correct()
		case "i", "incorrect":
			err = session.Incorrect()
		case "r", "reset":
			session.Reset()
		case "q", "quit":
			fmt.Fprintln(out, "Practice abandoned, no score saved.")
			return false, nil
		default:
			fmt.Fprintln(out, practiceHelp)
		}
		if err != nil {
			return false, err
		}
	}

	fmt.Fprintf(out, "Correct: %d | Incorrect: %d\n", session.CorrectCount(), session.IncorrectCount())
	fmt.Fprintln(out, "End of Quiz")
	return true, nil
}

// finishPractice builds the score, asking for a name until one is given
// when username is empty.
func finishPractice(session *practice.Session, username string, in *bufio.Scanner, out io.Writer) (*domain.Score, error) {
	prompted := false
	for {
		score, err := session.Finish(username)
		if !errors.Is(err, practice.ErrUsernameRequired) {
			return score, err
		}
		if prompted || username != "" {
			fmt.Fprintln(out, err)
		}
		fmt.Fprint(out, "Name: ")
		if !in.Scan() {
			return nil, err
		}
		username = strings.TrimSpace(in.Text())
		prompted = true
	}
}
