package main

import (
	"github.com/spf13/cobra"

	"gridwire/board"
	"gridwire/routing"
	"gridwire/view"
)

var viewCmd = &cobra.Command{
	Use:   "view <board.yaml>",
	Short: "Open a board design in the interactive viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := board.Load(args[0])
		if err != nil {
			return err
		}
		return view.New(b, routing.NewRouter()).Run()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
