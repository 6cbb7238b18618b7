package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-tictactoe/pkg/bench"
)

const SPIN = 14

// tictactoe arena
func Arena() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play the engine against another player many times",
		Long: heredoc.Doc(`arena plays a series of games between the minimax engine and
			an opponent (a random mover or the engine itself) on several
			workers, picking who moves first at random for every game,
			and prints the results.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			games, _ := cmd.Flags().GetUint("games")
			threads, _ := cmd.Flags().GetUint("threads")
			opponentName, _ := cmd.Flags().GetString("opponent")
			if cmd.Flag("seed").Changed {
				seed, _ := cmd.Flags().GetInt64("seed")
				bench.SetSeedGeneratorFn(func() int64 { return seed })
			}

			var opponent bench.Player
			switch opponentName {
			case "random":
				opponent = bench.NewRandomPlayer()
			case "minimax":
				opponent = bench.NewMinimaxPlayer()
			default:
				return fmt.Errorf("unknown opponent %q, expected random or minimax", opponentName)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			terminal := bench.NewTerminalListener(out)
			if noColor(cmd) {
				terminal.Plain()
			}

			arena := bench.NewVersusArena(bench.NewMinimaxPlayer(), opponent).WithContext(ctx)
			arena.Setup(games, threads)

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)
			s.Writer = os.Stderr
			s.Suffix = " playing games..."
			s.Start() // Start the ~working~ spinner.
			arena.Start(bench.NewArenaListener(&bench.LogListener{}, &spinnerListener{spinner: s}, terminal))
			err := arena.Wait()
			s.Stop()

			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return nil
		},
	}

	cmd.Flags().Uint("games", 100, "Number of games to play")
	cmd.Flags().Uint("threads", 2, "Number of workers")
	cmd.Flags().String("opponent", "random", "Opponent of the engine: random or minimax")
	cmd.Flags().Int64("seed", 0, "Seed for the random generators")
	return cmd
}

// Stops the spinner before the summary is printed
type spinnerListener struct {
	bench.DefaultListener
	spinner *spinner.Spinner
}

func (sl *spinnerListener) Clone() bench.ListenerLike {
	return &spinnerListener{spinner: sl.spinner}
}

func (sl *spinnerListener) OnFinishedGame(info bench.VersusWorkerInfo) {
	sl.spinner.Lock()
	sl.spinner.Suffix = fmt.Sprintf(" playing games... worker %d: %d/%d", info.WorkerID, info.FinishedGames, info.NGames)
	sl.spinner.Unlock()
}

func (sl *spinnerListener) Summary(info bench.VersusSummaryInfo) {
	sl.spinner.Stop()
}
