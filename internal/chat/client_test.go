package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/total-distance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_distance": 12345.6, "unit": "kilometer", "total_trips": 321}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.TotalDistance(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12345.6, resp.TotalDistance)
	assert.Equal(t, int64(321), resp.TotalTrips)
}

func TestClientPassesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-06-15", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{"period": {"start": "2024-06-01", "end": "2024-06-15"}, "entries": [], "summary": {}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.DrivingJournal(context.Background(), "2024-06-01", "2024-06-15")

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", resp.Period.Start)
}

func TestClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens on the URL anymore

	c := NewClient(srv.URL, time.Second)
	_, err := c.Health(context.Background())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPIUnreachable))
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Health(context.Background())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPITimeout))
}

func TestClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to list cars"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Cars(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to list cars")
	assert.False(t, errors.Is(err, ErrAPIUnreachable))
	assert.False(t, errors.Is(err, ErrAPITimeout))
}

func TestClientZeroTimeoutUsesDefault(t *testing.T) {
	c := NewClient("http://localhost:8000", 0)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}
