package openf1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1view/temperrors"
)

const driversBody = `[
	{"driver_number": 44, "first_name": "Lewis", "last_name": "Hamilton",
	 "team_name": "Mercedes", "team_colour": "#00D2BE",
	 "country_code": "GBR", "headshot_url": "https://example.com/hamilton.jpg"},
	{"driver_number": 1, "first_name": "Max", "last_name": "Verstappen",
	 "team_name": "Red Bull Racing", "team_colour": "3671C6",
	 "country_code": "NED", "headshot_url": ""}
]`

func TestGetDrivers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers", r.URL.Path)
		assert.Equal(t, "latest", r.URL.Query().Get("session_key"))
		w.Write([]byte(driversBody))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	drivers, err := api.GetDrivers("latest")
	require.NoError(t, err)
	require.Len(t, drivers, 2)

	assert.Equal(t, 44, drivers[0].DriverNumber)
	assert.Equal(t, "Lewis", drivers[0].FirstName)
	assert.Equal(t, "Hamilton", drivers[0].LastName)
	assert.Equal(t, "Mercedes", drivers[0].TeamName)
	assert.Equal(t, "#00D2BE", drivers[0].TeamColour)
	assert.Equal(t, "GBR", drivers[0].CountryCode)
	assert.Equal(t, "Max Verstappen", drivers[1].FullName())
}

func TestGetDrivers_MissingFieldsDefaultToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"last_name": "Verstappen", "team_colour": null}]`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	drivers, err := api.GetDrivers("latest")
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	assert.Equal(t, 0, drivers[0].DriverNumber)
	assert.Equal(t, "", drivers[0].FirstName)
	assert.Equal(t, "", drivers[0].TeamColour)
	assert.Equal(t, "Verstappen", drivers[0].FullName())
}

func TestGetDrivers_EmptyRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	_, err := api.GetDrivers("latest")
	assert.ErrorIs(t, err, temperrors.ErrEmptyList)
}

func TestGetDrivers_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	_, err := api.GetDrivers("latest")
	assert.ErrorIs(t, err, temperrors.ErrBadStatus)
}

func TestGetDrivers_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	_, err := api.GetDrivers("latest")
	assert.Error(t, err)
}

func TestGetDrivers_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	api := NewOpenF1API(server.URL)
	_, err := api.GetDrivers("latest")
	assert.Error(t, err)
}

func TestGetLaps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/laps", r.URL.Path)
		assert.Equal(t, "9158", r.URL.Query().Get("session_key"))
		assert.Equal(t, "44", r.URL.Query().Get("driver_number"))
		w.Write([]byte(`[
			{"lap_number": 1, "lap_duration": null, "is_pit_out_lap": true},
			{"lap_number": 2, "lap_duration": 92.357,
			 "duration_sector_1": 28.1, "duration_sector_2": 34.2,
			 "duration_sector_3": 30.057, "st_speed": 311.4}
		]`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	laps, err := api.GetLaps("9158", 44)
	require.NoError(t, err)
	require.Len(t, laps, 2)

	assert.True(t, laps[0].IsPitOutLap)
	assert.Zero(t, laps[0].LapDuration)
	assert.Equal(t, 92.357, laps[1].LapDuration)
	assert.Equal(t, 30.057, laps[1].DurationSector3)
}

func TestGetWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		w.Write([]byte(`[
			{"air_temperature": 27.8, "track_temperature": 52.5,
			 "humidity": 58, "wind_speed": 2.1, "wind_direction": 136,
			 "rainfall": 0, "date": "2023-09-16T13:03:35.200000"}
		]`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	samples, err := api.GetWeather("9158")
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 27.8, samples[0].AirTemperature)
	assert.Equal(t, 136, samples[0].WindDirection)
}

func TestGetTeamRadio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team_radio", r.URL.Path)
		assert.Equal(t, "11", r.URL.Query().Get("driver_number"))
		w.Write([]byte(`[
			{"date": "2023-09-15T09:40:43.005000", "driver_number": 11,
			 "recording_url": "https://example.com/radio.mp3"}
		]`))
	}))
	defer server.Close()

	api := NewOpenF1API(server.URL)
	messages, err := api.GetTeamRadio("9158", 11)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "https://example.com/radio.mp3", messages[0].RecordingURL)
}
