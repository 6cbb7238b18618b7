package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-tictactoe/pkg/game"
)

// tictactoe play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Long: heredoc.Doc(`play starts a game against the engine in the terminal.
			Type the number of a free cell (0-8) to move, or "quit" to
			leave. Cross always moves first.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			h, _ := cmd.Flags().GetString("human")
			human, err := parsePlayer(h)
			if err != nil {
				return err
			}

			g, err := game.New(human)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := newRenderer(out, noColor(cmd))
			scanner := bufio.NewScanner(cmd.InOrStdin())

			for !g.Over() {
				if g.Turn() == g.Engine() {
					move, err := g.EngineMove()
					if err != nil {
						return err
					}
					logrus.Debugf("engine played %v", move)
					fmt.Fprintf(out, "engine plays %d\n", move.Index)
					continue
				}

				fmt.Fprint(out, r.board(g.Board()))
				fmt.Fprintf(out, "%s\nmove> ", r.status(g.Status()))
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "q" || input == "quit" {
					return nil
				}

				index, err := strconv.Atoi(input)
				if err != nil {
					fmt.Fprintln(out, r.errorf("not a cell number: %q", input))
					continue
				}
				if _, err := g.Play(index); err != nil {
					fmt.Fprintln(out, r.errorf("%v", err))
					continue
				}
			}

			fmt.Fprint(out, r.board(g.Board()))
			fmt.Fprintln(out, r.status(g.Status()))
			return nil
		},
	}

	cmd.Flags().String("human", "x", "Symbol played by the human, x or o")
	return cmd
}
