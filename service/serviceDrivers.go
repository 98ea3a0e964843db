package service

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"f1view/models"
)

type f1Storage interface {
	GetDrivers(sessionKey string) ([]models.Driver, error)
	GetLaps(sessionKey string, driverNumber int) ([]models.Lap, error)
	GetWeather(sessionKey string) ([]models.Weather, error)
	GetTeamRadio(sessionKey string, driverNumber int) ([]models.TeamRadio, error)
}

type ServiceDrivers struct {
	storage    f1Storage
	sessionKey string
}

// NewServiceDrivers wires the service to a storage backend. sessionKey
// selects which session's data is queried, normally "latest".
func NewServiceDrivers(storage f1Storage, sessionKey string) *ServiceDrivers {
	return &ServiceDrivers{storage, sessionKey}
}

// SearchDriversByName returns the drivers of the configured session whose
// first name, last name or full name contains the query, case-insensitive.
// Source order is preserved. A failed fetch logs and returns an empty list.
func (s *ServiceDrivers) SearchDriversByName(name string) []models.Driver {
	roster, err := s.storage.GetDrivers(s.sessionKey)
	if err != nil {
		slog.Error("Error fetching driver list", slog.String("error", err.Error()))
		return []models.Driver{}
	}

	query := strings.ToLower(name)
	matched := make([]models.Driver, 0, len(roster))
	for _, driver := range roster {
		if matchesName(driver, query) {
			matched = append(matched, driver)
		}
	}
	return matched
}

func (s *ServiceDrivers) GetDriverLapTimes(driverNumber int, sessionKey string) []models.Lap {
	laps, err := s.storage.GetLaps(sessionKey, driverNumber)
	if err != nil {
		slog.Error("Error fetching lap times", slog.String("error", err.Error()))
		return []models.Lap{}
	}
	return laps
}

func (s *ServiceDrivers) LapTimesReport(driverNumber int, sessionKey string) string {
	laps := s.GetDriverLapTimes(driverNumber, sessionKey)
	if len(laps) == 0 {
		return "No lap data for this driver"
	}
	return fmt.Sprintf("Lap times for driver #%d:\n%s", driverNumber, lapsToString(laps))
}

// WeatherReport describes the most recent weather sample of the session.
func (s *ServiceDrivers) WeatherReport(sessionKey string) string {
	samples, err := s.storage.GetWeather(sessionKey)
	if err != nil {
		slog.Error("Error fetching weather", slog.String("error", err.Error()))
		return "No weather data for this session"
	}
	if len(samples) == 0 {
		return "No weather data for this session"
	}

	latest := samples[len(samples)-1]
	report := fmt.Sprintf("Air %.1f°C | track %.1f°C | humidity %.0f%% | wind %.1f m/s at %d°",
		latest.AirTemperature, latest.TrackTemperature, latest.Humidity, latest.WindSpeed, latest.WindDirection)
	if latest.Rainfall > 0 {
		report += " | rain"
	}
	return report
}

func (s *ServiceDrivers) TeamRadioReport(driverNumber int, sessionKey string) string {
	messages, err := s.storage.GetTeamRadio(sessionKey, driverNumber)
	if err != nil {
		slog.Error("Error fetching team radio", slog.String("error", err.Error()))
		return "No team radio for this driver"
	}
	if len(messages) == 0 {
		return "No team radio for this driver"
	}
	return fmt.Sprintf("Team radio for driver #%d:\n%s", driverNumber, teamRadioToString(messages))
}

// ----------------------------------
//
//	helper functions
//
// ----------------------------------

func matchesName(driver models.Driver, query string) bool {
	return strings.Contains(strings.ToLower(driver.FirstName), query) ||
		strings.Contains(strings.ToLower(driver.LastName), query) ||
		strings.Contains(strings.ToLower(driver.FullName()), query)
}

func lapsToString(laps []models.Lap) string {
	message := new(strings.Builder)

	w := tabwriter.NewWriter(message, 2, 5, 1, ' ', tabwriter.AlignRight)
	for _, lap := range laps {
		if lap.IsPitOutLap {
			fmt.Fprintf(w, "%d |\t%s |\t pit out\n", lap.LapNumber, lapDurationToString(lap.LapDuration))
		} else {
			fmt.Fprintf(w, "%d |\t%s |\t %s  %s  %s\n", lap.LapNumber, lapDurationToString(lap.LapDuration),
				sectorToString(lap.DurationSector1), sectorToString(lap.DurationSector2), sectorToString(lap.DurationSector3))
		}
	}

	w.Flush()
	return message.String()
}

func lapDurationToString(seconds float64) string {
	if seconds == 0 {
		return "-"
	}
	mins := int(seconds) / 60
	return fmt.Sprintf("%d:%06.3f", mins, seconds-float64(mins*60))
}

func sectorToString(seconds float64) string {
	if seconds == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", seconds)
}

func teamRadioToString(messages []models.TeamRadio) string {
	message := new(strings.Builder)

	w := tabwriter.NewWriter(message, 2, 5, 1, ' ', tabwriter.AlignRight)
	for _, radio := range messages {
		fmt.Fprintf(w, "%s |\t %s\n", radio.Date, radio.RecordingURL)
	}

	w.Flush()
	return message.String()
}
