package models

// Lap is one record of the OpenF1 laps endpoint. Durations are seconds;
// a zero duration means the timing data is not available for that lap.
type Lap struct {
	LapNumber       int     `json:"lap_number"`
	LapDuration     float64 `json:"lap_duration"`
	DurationSector1 float64 `json:"duration_sector_1"`
	DurationSector2 float64 `json:"duration_sector_2"`
	DurationSector3 float64 `json:"duration_sector_3"`
	StSpeed         float64 `json:"st_speed"`
	IsPitOutLap     bool    `json:"is_pit_out_lap"`
}
