package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/IlikeChooros/go-tictactoe/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := tictactoe(); err != nil {
		logrus.Fatal(err)
	}
}

func tictactoe() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
