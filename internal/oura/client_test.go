// ABOUTME: Tests for the Oura API client against an httptest server.
// ABOUTME: Covers end_date padding, auth header, and the error taxonomy.
package oura

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

func newTestServer(t *testing.T, status int, body string) (*Client, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = append(captured, capturedRequest{Path: r.URL.Path, Query: r.URL.Query(), Header: r.Header.Clone()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Options{BaseURL: srv.URL, Token: "test-token"})
	require.NoError(t, err)
	return c, &captured
}

func day(y, m, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func TestFetchRangePadsEndDateForEveryFamily(t *testing.T) {
	for _, family := range models.AllMetricFamilies {
		t.Run(string(family), func(t *testing.T) {
			c, captured := newTestServer(t, http.StatusOK, `{"data": [], "next_token": null}`)

			_, err := FetchRange[json.RawMessage](context.Background(), c, family, day(2024, 2, 1), day(2024, 2, 3))
			require.NoError(t, err)

			require.Len(t, *captured, 1)
			req := (*captured)[0]
			assert.Equal(t, "/v2/usercollection/"+string(family), req.Path)
			assert.Equal(t, "2024-02-01", req.Query.Get("start_date"))
			assert.Equal(t, "2024-02-04", req.Query.Get("end_date"))
		})
	}
}

func TestFetchOneUsesNextDay(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{"data": []}`)

	_, err := FetchOne[models.DailySleep](context.Background(), c, models.FamilyDailySleep, day(2024, 12, 31))
	require.NoError(t, err)

	req := (*captured)[0]
	assert.Equal(t, "2024-12-31", req.Query.Get("start_date"))
	assert.Equal(t, "2025-01-01", req.Query.Get("end_date"))
}

func TestRequestHeaders(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{"data": []}`)

	_, err := c.DailyStress(context.Background(), dates.Single(day(2024, 2, 10)))
	require.NoError(t, err)

	h := (*captured)[0].Header
	assert.Equal(t, "Bearer test-token", h.Get("Authorization"))
	assert.Equal(t, "oura-cli", h.Get("User-Agent"))
	assert.NotEmpty(t, h.Get("X-Request-Id"))
}

func TestTypedFetchDecodesRecords(t *testing.T) {
	body := `{
		"data": [
			{"id": "a", "day": "2024-02-10", "score": 80, "contributors": {"deep_sleep": 90, "rem_sleep": 70}},
			{"id": "b", "day": "2024-02-11", "score": null}
		],
		"next_token": null
	}`
	c, _ := newTestServer(t, http.StatusOK, body)

	got, err := c.DailySleep(context.Background(), dates.Range{Start: day(2024, 2, 10), End: day(2024, 2, 10)})
	require.NoError(t, err)

	// The padded end date may bring back an extra day; it is returned as-is.
	require.Len(t, got, 2)
	assert.Equal(t, "2024-02-10", got[0].Day)
	require.NotNil(t, got[0].Score)
	assert.Equal(t, 80, *got[0].Score)
	assert.Equal(t, "deep_sleep", got[0].Contributors[0].Key)
	assert.Nil(t, got[1].Score)
}

func TestSleepPeriodsDecode(t *testing.T) {
	body := `{"data": [{
		"day": "2024-02-10",
		"type": "long_sleep",
		"bedtime_start": "2024-02-09T23:15:00+08:00",
		"bedtime_end": "2024-02-10T07:05:00+08:00",
		"total_sleep_duration": 25200,
		"average_heart_rate": 55.625,
		"average_breath": 14.5,
		"average_hrv": 42,
		"lowest_heart_rate": 48,
		"heart_rate": {"interval": 300, "items": [60, null]}
	}]}`
	c, _ := newTestServer(t, http.StatusOK, body)

	got, err := c.Sleep(context.Background(), dates.Single(day(2024, 2, 10)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLongSleep())
	assert.Equal(t, 25200, *got[0].TotalSleepDuration)
	assert.InDelta(t, 55.625, *got[0].AverageHeartRate, 0.0001)
	assert.Nil(t, got[0].DeepSleepDuration)
}

func TestUpstreamError(t *testing.T) {
	c, _ := newTestServer(t, http.StatusUnauthorized, `{"detail": "invalid token"}`)

	_, err := c.DailyReadiness(context.Background(), dates.Single(day(2024, 2, 10)))
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, `{"detail": "invalid token"}`, upstream.Body)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestUpstreamErrorWithoutStatusText(t *testing.T) {
	err := &UpstreamError{StatusCode: 502}
	assert.Equal(t, "Oura API returned 502", err.Error())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing data", `{"items": []}`},
		{"null data", `{"data": null}`},
		{"data not a list", `{"data": {"day": "2024-02-10"}}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, http.StatusOK, tt.body)
			_, err := c.DailyActivity(context.Background(), dates.Single(day(2024, 2, 10)))
			require.Error(t, err)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %T: %v", err, err)
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := New(Options{BaseURL: base, Token: "t"})
	require.NoError(t, err)

	_, err = c.DailySleep(context.Background(), dates.Single(day(2024, 2, 10)))
	require.Error(t, err)

	var transport *TransportError
	assert.True(t, errors.As(err, &transport), "expected TransportError, got %T", err)
	assert.Contains(t, err.Error(), "failed to reach Oura API")
}

func TestRawReturnsBodyVerbatim(t *testing.T) {
	body := `{"data": [{"day": "2024-02-10", "score": 77, "something_new": {"x": 1}}], "next_token": null}`
	c, captured := newTestServer(t, http.StatusOK, body)

	got, err := c.Raw(context.Background(), "daily_sleep", day(2024, 2, 10))
	require.NoError(t, err)

	assert.Equal(t, "2024-02-11", (*captured)[0].Query.Get("end_date"))

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(encoded))
}

func TestRawUnknownEndpointPassesThrough(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{"data": []}`)

	_, err := c.Raw(context.Background(), "workout", day(2024, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, "/v2/usercollection/workout", (*captured)[0].Path)
}

func TestRawRejectsInvalidJSON(t *testing.T) {
	c, _ := newTestServer(t, http.StatusOK, `not json`)

	_, err := c.Raw(context.Background(), "daily_sleep", day(2024, 2, 10))
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestRawRejectsTrailingData(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"trailing garbage", `{"data":[]} junk`, true},
		{"second value", `{"data":[]}{}`, true},
		{"trailing whitespace", "{\"data\":[]}\n  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, http.StatusOK, tt.body)
			_, err := c.Raw(context.Background(), "daily_sleep", day(2024, 2, 10))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr), "err = %v", err)
		})
	}
}

func TestRawRequiresEndpoint(t *testing.T) {
	c, captured := newTestServer(t, http.StatusOK, `{}`)
	_, err := c.Raw(context.Background(), "  ", day(2024, 2, 10))
	assert.Error(t, err)
	assert.Empty(t, *captured)
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.http.Timeout)

	c, err = New(Options{BaseURL: "https://example.test/"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", c.baseURL)

	_, err = New(Options{BaseURL: "::not a url"})
	assert.Error(t, err)
}

func TestQueryURL(t *testing.T) {
	c, err := New(Options{BaseURL: "https://example.test"})
	require.NoError(t, err)
	assert.Equal(t,
		"https://example.test/v2/usercollection/daily_sleep?end_date=2024-02-04&start_date=2024-02-01",
		c.QueryURL("daily_sleep", day(2024, 2, 1), day(2024, 2, 3)))
}
