package openf1

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"f1view/models"
	"f1view/temperrors"
)

// OpenF1API wraps the public OpenF1 REST API. One http.Client is reused
// across requests.
type OpenF1API struct {
	url    string
	client *http.Client
}

func NewOpenF1API(baseURL string) *OpenF1API {
	return &OpenF1API{url: baseURL, client: &http.Client{}}
}

func (api *OpenF1API) GetDrivers(sessionKey string) ([]models.Driver, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)

	var drivers []models.Driver
	if err := api.getRequest("drivers", params, &drivers); err != nil {
		return nil, fmt.Errorf("in drivers %w", err)
	}
	if len(drivers) == 0 {
		return nil, temperrors.ErrEmptyList
	}
	return drivers, nil
}

func (api *OpenF1API) GetLaps(sessionKey string, driverNumber int) ([]models.Lap, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)
	params.Set("driver_number", strconv.Itoa(driverNumber))

	var laps []models.Lap
	if err := api.getRequest("laps", params, &laps); err != nil {
		return nil, fmt.Errorf("in laps %w", err)
	}
	if len(laps) == 0 {
		return nil, temperrors.ErrEmptyList
	}
	return laps, nil
}

func (api *OpenF1API) GetWeather(sessionKey string) ([]models.Weather, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)

	var samples []models.Weather
	if err := api.getRequest("weather", params, &samples); err != nil {
		return nil, fmt.Errorf("in weather %w", err)
	}
	if len(samples) == 0 {
		return nil, temperrors.ErrEmptyList
	}
	return samples, nil
}

func (api *OpenF1API) GetTeamRadio(sessionKey string, driverNumber int) ([]models.TeamRadio, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)
	params.Set("driver_number", strconv.Itoa(driverNumber))

	var messages []models.TeamRadio
	if err := api.getRequest("team_radio", params, &messages); err != nil {
		return nil, fmt.Errorf("in team_radio %w", err)
	}
	if len(messages) == 0 {
		return nil, temperrors.ErrEmptyList
	}
	return messages, nil
}

func (api *OpenF1API) getRequest(endpoint string, params url.Values, out any) error {
	resp, err := api.client.Get(fmt.Sprintf("%s/%s?%s", api.url, endpoint, params.Encode()))
	if err != nil {
		return fmt.Errorf("error in getRequest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", temperrors.ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	slog.Info("OK get request", slog.String("endpoint", endpoint))
	return nil
}
