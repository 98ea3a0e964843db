package main

import (
	"log/slog"
	"os"

	"f1view/config"
	"f1view/openf1"
	"f1view/service"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	} else {
		slog.Info("Successfull read .env")
	}
}

func main() {

	log := setupLogger()

	conf, err := config.New()
	if err != nil {
		log.Error("Error reading config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	openf1API := openf1.NewOpenF1API(conf.OpenF1URL)
	service := service.NewServiceDrivers(openf1API, conf.SessionKey)

	if err := newRootCmd(conf, service, log).Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(log)
	return log
}
