package models

// Weather is one sample of the OpenF1 weather endpoint.
type Weather struct {
	AirTemperature   float64 `json:"air_temperature"`
	TrackTemperature float64 `json:"track_temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"wind_speed"`
	WindDirection    int     `json:"wind_direction"`
	Rainfall         int     `json:"rainfall"`
	Date             string  `json:"date"`
}
