package models

// TeamRadio is one record of the OpenF1 team_radio endpoint.
type TeamRadio struct {
	Date         string `json:"date"`
	DriverNumber int    `json:"driver_number"`
	RecordingURL string `json:"recording_url"`
}
