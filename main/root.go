package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"f1view/config"
	"f1view/models"
	"f1view/service"
	"f1view/web"

	"github.com/spf13/cobra"
)

func newRootCmd(conf *config.Config, drivers *service.ServiceDrivers, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "f1view",
		Short: "F1 driver information from the OpenF1 API",
		Long: "f1view looks up Formula 1 drivers on the OpenF1 API and opens an\n" +
			"HTML card for each match in the default browser. Run without\n" +
			"arguments for the interactive menu.",
		Run: func(cmd *cobra.Command, args []string) {
			runMenu(conf, drivers, log)
		},
	}

	root.AddCommand(newSearchCmd(conf, drivers, log))
	root.AddCommand(newLapsCmd(conf, drivers))
	root.AddCommand(newWeatherCmd(conf, drivers))
	root.AddCommand(newRadioCmd(conf, drivers))

	return root
}

func runMenu(conf *config.Config, drivers *service.ServiceDrivers, log *slog.Logger) {
	input := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nF1 Driver Information System")
		fmt.Println("1. Search for a driver")
		fmt.Println("2. Exit")
		fmt.Print("\nEnter your choice (1-2): ")

		if !input.Scan() {
			return
		}

		switch strings.TrimSpace(input.Text()) {
		case "1":
			fmt.Print("Enter driver name (e.g. 'Max' or 'Verstappen'): ")
			if !input.Scan() {
				return
			}
			name := strings.TrimSpace(input.Text())

			fmt.Printf("\nSearching for drivers with name '%s'...\n", name)
			showDrivers(conf, drivers.SearchDriversByName(name), log)

			fmt.Print("\nPress Enter to continue...")
			if !input.Scan() {
				return
			}
		case "2":
			fmt.Println("\nGoodbye!")
			return
		}
	}
}

func showDrivers(conf *config.Config, matched []models.Driver, log *slog.Logger) {
	if len(matched) == 0 {
		fmt.Println("No drivers found with that name")
		return
	}

	fmt.Printf("\nFound %d matching drivers:\n", len(matched))
	for _, driver := range matched {
		fmt.Printf("  #%d %s (%s)\n", driver.DriverNumber, driver.FullName(), driver.TeamName)

		page, err := web.DriverPage(driver)
		if err != nil {
			log.Error("Error rendering driver page", slog.String("error", err.Error()))
			continue
		}
		if conf.NoBrowser {
			continue
		}
		if err := web.OpenInBrowser(page); err != nil {
			log.Error("Error opening browser", slog.String("error", err.Error()))
			fmt.Println("You can view the driver information by copying the following HTML:")
			fmt.Println(page)
		}
	}
}
