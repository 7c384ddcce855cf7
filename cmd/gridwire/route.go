package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridwire/board"
	"gridwire/logging"
	"gridwire/render"
	"gridwire/routing"
)

var routeCmd = &cobra.Command{
	Use:   "route <board.yaml>",
	Short: "Route a board design and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		showOcc, _ := cmd.Flags().GetBool("show-occupancy")

		b, err := board.Load(args[0])
		if err != nil {
			return err
		}

		router := routing.NewRouter()
		router.SetLogger(logging.New(logging.ParseLevel(level)))
		routes := router.RouteAll(b)

		if showOcc {
			fmt.Fprint(cmd.OutOrStdout(), render.Board(b, routes, b.StaticOccupancy()))
		} else {
			fmt.Fprint(cmd.OutOrStdout(), render.Board(b, routes, nil))
		}

		for _, r := range routes {
			if r.Path.IsEmpty() {
				fmt.Fprintf(cmd.OutOrStdout(), "unrouted: %s (%s.%d -> %s.%d)\n",
					r.Connection.ID,
					r.Connection.From.Component, r.Connection.From.Port,
					r.Connection.To.Component, r.Connection.To.Port)
			}
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().Bool("show-occupancy", false, "Dot blocked cells under the rendering")
	rootCmd.AddCommand(routeCmd)
}
