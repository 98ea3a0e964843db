package models

import "strings"

// Driver is one record of the OpenF1 drivers endpoint. Every field may be
// missing or null at the source, in which case the zero value stands in.
type Driver struct {
	DriverNumber int    `json:"driver_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TeamName     string `json:"team_name"`
	TeamColour   string `json:"team_colour"`
	CountryCode  string `json:"country_code"`
	HeadshotURL  string `json:"headshot_url"`
}

// FullName is the display name, trimmed so a record with only one name
// field set does not carry a stray space.
func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
