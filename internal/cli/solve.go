package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-tictactoe/pkg/minimax"
	"github.com/IlikeChooros/go-tictactoe/pkg/ttt"
)

// tictactoe solve
func Solve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve notation",
		Short: "Print the optimal move and the value of a position",
		Long: heredoc.Doc(`solve searches the given position and prints the best move
			for the side to move together with its value: +1 if Cross wins
			with perfect play, -1 if Circle wins and 0 for a draw.

			The side to move is inferred from the number of marks (Cross
			moves first) unless --player is given.`),
		Example: heredoc.Doc(`
			$ tictactoe solve xx1/1o1/o2
			$ tictactoe solve startpos --pv
			$ tictactoe solve 3/1x1/3 --player o --threads 4`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := ttt.FromNotation(args[0])
			if err != nil {
				return err
			}

			player := board.Turn()
			if p, _ := cmd.Flags().GetString("player"); p != "" {
				if player, err = parsePlayer(p); err != nil {
					return err
				}
			}

			threads, _ := cmd.Flags().GetInt("threads")
			searcher := minimax.NewSearcher().SetThreads(threads)
			listener := minimax.NewStatsListener()
			listener.
				OnRootMove(func(info minimax.RootMoveInfo) {
					logrus.Tracef("root move %v score %v, best %v", info.Move, info.Score, info.Best)
				}).
				OnStop(func(info minimax.SearchInfo) {
					logrus.Debugf("nodes %d leaves %d depth %d time %dms nps %d",
						info.Nodes, info.Leaves, info.Maxdepth, info.TimeMs, info.Nps)
				})
			searcher.SetListener(listener)

			result, err := searcher.Search(board, player)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := newRenderer(out, noColor(cmd))
			fmt.Fprint(out, r.board(board))
			if result.HasMove {
				fmt.Fprintf(out, "bestmove %d (%v)\n", result.Move.Index, result.Move.Player)
			} else {
				fmt.Fprintln(out, "bestmove none")
			}
			fmt.Fprintf(out, "score %v\nnodes %d\n", result.Score, searcher.Nodes())

			if showPv, _ := cmd.Flags().GetBool("pv"); showPv && result.HasMove {
				pv, _, err := searcher.Pv(board, player)
				if err != nil {
					return err
				}
				fmt.Fprint(out, "pv")
				for _, m := range pv {
					fmt.Fprintf(out, " %v", m)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().StringP("player", "p", "", "Side to move, x or o")
	cmd.Flags().Int("threads", 1, "Goroutines used to score the root moves")
	cmd.Flags().Bool("pv", false, "Print the principal variation")
	return cmd
}

func parsePlayer(s string) (ttt.Cell, error) {
	if len(s) != 1 {
		return ttt.Empty, fmt.Errorf("%w: %q, expected x or o", ttt.ErrInvalidPlayer, s)
	}
	return ttt.PlayerFromRune(rune(s[0]))
}
