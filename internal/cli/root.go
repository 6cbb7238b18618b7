package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Perfect play tic-tac-toe engine",
		Long: heredoc.Doc(`tictactoe searches the whole tic-tac-toe game tree with
			minimax, so it never loses.

			Positions are written row by row from the top, rows separated
			by '/', 'x' and 'o' for the marks and a digit for a run of
			empty cells. The empty board is 3/3/3 (or "startpos"), and
			cells are numbered 0-8 row by row.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	root.AddCommand(Solve())
	root.AddCommand(Play())
	root.AddCommand(Arena())

	return root
}

func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("no-color")
	return v
}
