package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/service/study"
)

func newStudyCommand(rt *state) *cobra.Command {
	var (
		user, collectionID string
		size               int
		shuffle            bool
	)
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Run an interactive study session in the terminal",
		Long: `Shows each card's German word, reveals the translation on Enter and asks
whether you knew it. Answers: y (yes), n (no), b (back), q (quit).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := userContext(cmd.Context(), user)
			if err != nil {
				return err
			}
			cid, err := parseCollectionID(collectionID)
			if err != nil {
				return err
			}

			storage, err := rt.openStorage(ctx)
			if err != nil {
				return err
			}
			defer storage.Close()

			svc := study.NewService(rt.logger, storage.Collections, study.Options{
				DefaultSize: rt.cfg.Study.DefaultSessionSize,
				MaxSize:     rt.cfg.Study.MaxSessionSize,
			})
			session, err := svc.BuildSession(ctx, study.BuildSessionInput{CollectionID: cid, Size: size, Shuffle: shuffle})
			if errors.Is(err, study.ErrNothingToStudy) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to study: every word is mastered")
				return nil
			}
			if err != nil {
				return err
			}

			runSession(ctx, cmd, session)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "owner user id (UUID)")
	cmd.Flags().StringVar(&collectionID, "collection", "", "collection id (UUID)")
	cmd.Flags().IntVar(&size, "size", 0, "maximum number of cards; 0 uses the configured default")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the cards")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("collection")
	return cmd
}

func runSession(ctx context.Context, cmd *cobra.Command, session *study.Session) {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	readLine := func() (string, bool) {
		if !in.Scan() {
			return "", false
		}
		return strings.ToLower(strings.TrimSpace(in.Text())), true
	}

loop:
	for {
		card := session.Current()
		fmt.Fprintf(out, "\n[%d/%d] %s  (%s)\n", session.Position()+1, session.Len(), card.Word.Term, card.Word.Level)

		if !card.Answered {
			fmt.Fprint(out, "Enter to reveal, q to quit: ")
			line, ok := readLine()
			if !ok || line == "q" {
				break
			}
		}

		card = session.Flip()
		printBack(out, card)
		if card.Answered {
			fmt.Fprintf(out, "already answered: %s\n", verdict(card.Correct))
		}

		for {
			fmt.Fprint(out, "Did you know it? [y/n/b/q]: ")
			line, ok := readLine()
			if !ok {
				break loop
			}
			switch line {
			case "q":
				break loop
			case "b":
				if !session.Previous() {
					fmt.Fprintln(out, "already at the first card")
					continue
				}
				continue loop
			case "y", "j", "n":
				if card.Answered {
					if !session.Next() {
						break loop
					}
					continue loop
				}
				res := session.Answer(ctx, line != "n")
				switch {
				case res.Err != nil:
					fmt.Fprintf(out, "%s, but not saved: %v\n", verdict(res.Card.Correct), res.Err)
				case res.PreviousLevel != res.NewLevel:
					fmt.Fprintf(out, "%s: %s -> %s\n", verdict(res.Card.Correct), res.PreviousLevel, res.NewLevel)
				default:
					fmt.Fprintf(out, "%s: stays %s\n", verdict(res.Card.Correct), res.NewLevel)
				}
				if !session.Next() {
					break loop
				}
				continue loop
			default:
				fmt.Fprintln(out, "please answer y, n, b or q")
			}
		}
	}

	r := session.Result()
	fmt.Fprintf(out, "\nsession %s: %d correct, %d incorrect of %d cards (%d%%)\n",
		session.State(), r.Correct, r.Incorrect, r.Total, r.Percentage)
}

func printBack(out io.Writer, card study.Card) {
	fmt.Fprintf(out, "  -> %s\n", card.Word.Translation)
	for _, ex := range card.Word.Examples {
		if ex.Translation != "" {
			fmt.Fprintf(out, "     %s (%s)\n", ex.German, ex.Translation)
		} else {
			fmt.Fprintf(out, "     %s\n", ex.German)
		}
	}
}

func verdict(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
