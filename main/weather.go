package main

import (
	"fmt"

	"f1view/config"
	"f1view/service"

	"github.com/spf13/cobra"
)

func newWeatherCmd(conf *config.Config, drivers *service.ServiceDrivers) *cobra.Command {
	return &cobra.Command{
		Use:   "weather [session]",
		Short: "Show the latest weather sample for a session",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session := conf.SessionKey
			if len(args) == 1 {
				session = args[0]
			}

			fmt.Println(drivers.WeatherReport(session))
		},
	}
}
