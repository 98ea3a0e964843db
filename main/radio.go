package main

import (
	"fmt"
	"strconv"

	"f1view/config"
	"f1view/service"

	"github.com/spf13/cobra"
)

func newRadioCmd(conf *config.Config, drivers *service.ServiceDrivers) *cobra.Command {
	return &cobra.Command{
		Use:   "radio <driver_number> [session]",
		Short: "List team radio recordings for a driver",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("driver number must be numeric: %w", err)
			}

			session := conf.SessionKey
			if len(args) == 2 {
				session = args[1]
			}

			fmt.Println(drivers.TeamRadioReport(number, session))
			return nil
		},
	}
}
