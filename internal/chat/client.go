// Package chat is the conversational side: a typed client for the query API
// and renderers that turn its JSON into markdown for a chat surface.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// Failure shapes the renderers translate to fixed messages. Everything else
// surfaces as its own error text.
var (
	ErrAPIUnreachable = errors.New("api unreachable")
	ErrAPITimeout     = errors.New("api timed out")
)

// DefaultTimeout bounds the wait on the query API. No retries.
const DefaultTimeout = 10 * time.Second

// Client calls the query API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout falls
// back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get performs one API call and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			if uerr.Timeout() {
				return fmt.Errorf("%w: %s", ErrAPITimeout, path)
			}
			return fmt.Errorf("%w: %v", ErrAPIUnreachable, uerr.Err)
		}
		return fmt.Errorf("api call %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr models.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health checks the API and its database.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := c.get(ctx, "/api/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cars lists the logged vehicles.
func (c *Client) Cars(ctx context.Context) (*models.CarsResponse, error) {
	var resp models.CarsResponse
	if err := c.get(ctx, "/api/cars", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TotalDistance reads the all-time distance in kilometers.
func (c *Client) TotalDistance(ctx context.Context) (*models.TotalDistanceResponse, error) {
	var resp models.TotalDistanceResponse
	if err := c.get(ctx, "/api/total-distance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatteryStatus reads the latest battery snapshot.
func (c *Client) BatteryStatus(ctx context.Context) (*models.BatteryStatusResponse, error) {
	var resp models.BatteryStatusResponse
	if err := c.get(ctx, "/api/battery-status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatteryHealth reads the degradation estimate.
func (c *Client) BatteryHealth(ctx context.Context) (*models.BatteryHealthResponse, error) {
	var resp models.BatteryHealthResponse
	if err := c.get(ctx, "/api/battery-health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Temperature reads temperature aggregates over the last hours.
func (c *Client) Temperature(ctx context.Context, hours int) (*models.TemperatureResponse, error) {
	params := url.Values{"hours": {strconv.Itoa(hours)}}
	var resp models.TemperatureResponse
	if err := c.get(ctx, "/api/temperature", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TirePressure reads the latest TPMS snapshot.
func (c *Client) TirePressure(ctx context.Context) (*models.TirePressureResponse, error) {
	var resp models.TirePressureResponse
	if err := c.get(ctx, "/api/tire-pressure", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CarState reads the current vehicle state.
func (c *Client) CarState(ctx context.Context) (*models.CarStateResponse, error) {
	var resp models.CarStateResponse
	if err := c.get(ctx, "/api/car-state", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DriveStats reads windowed drive aggregates.
func (c *Client) DriveStats(ctx context.Context, days int) (*models.DriveStatsResponse, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var resp models.DriveStatsResponse
	if err := c.get(ctx, "/api/drive-stats", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChargingStats reads windowed charging aggregates.
func (c *Client) ChargingStats(ctx context.Context, days int) (*models.ChargingStatsResponse, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var resp models.ChargingStatsResponse
	if err := c.get(ctx, "/api/charging-stats", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Efficiency reads the consumption derivation.
func (c *Client) Efficiency(ctx context.Context, days int) (*models.EfficiencyResponse, error) {
	params := url.Values{"days": {strconv.Itoa(days)}}
	var resp models.EfficiencyResponse
	if err := c.get(ctx, "/api/efficiency", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecentDrives reads the newest drives.
func (c *Client) RecentDrives(ctx context.Context, limit int) (*models.RecentDrivesResponse, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	var resp models.RecentDrivesResponse
	if err := c.get(ctx, "/api/recent-drives", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DrivesByDate reads drives in a resolved date range.
func (c *Client) DrivesByDate(ctx context.Context, start, end string) (*models.DrivesByDateResponse, error) {
	params := url.Values{"start_date": {start}, "end_date": {end}}
	var resp models.DrivesByDateResponse
	if err := c.get(ctx, "/api/drives-by-date", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DrivingJournal reads the synthesized journal for a resolved date range.
func (c *Client) DrivingJournal(ctx context.Context, start, end string) (*models.DrivingJournalResponse, error) {
	params := url.Values{"start_date": {start}, "end_date": {end}}
	var resp models.DrivingJournalResponse
	if err := c.get(ctx, "/api/driving-journal", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
