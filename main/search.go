package main

import (
	"log/slog"

	"f1view/config"
	"f1view/service"

	"github.com/spf13/cobra"
)

func newSearchCmd(conf *config.Config, drivers *service.ServiceDrivers, log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search drivers by first, last or full name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showDrivers(conf, drivers.SearchDriversByName(args[0]), log)
		},
	}
}
