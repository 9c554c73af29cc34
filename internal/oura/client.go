// ABOUTME: HTTP client for the Oura API v2 usercollection endpoints.
// ABOUTME: Pads end_date by one day to work around inconsistent range bounds.
package oura

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Oura API host.
	DefaultBaseURL = "https://api.ouraring.com"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	collectionPath = "/v2/usercollection/"
	userAgent      = "oura-cli"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Logger     *zap.Logger
	HTTPClient *http.Client
}

// Client issues one request per call. It does no caching and no retries.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a Client. Token may be empty for tests against local servers.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		token:   opts.Token,
		http:    httpClient,
		logger:  logger,
	}, nil
}

// envelope is the shape shared by every collection response. Data is a
// pointer so that a missing field can be told apart from an empty list.
type envelope[T any] struct {
	Data *[]T `json:"data"`
}

// FetchRange returns every record the server sends for [start, end].
//
// end_date is inclusive on some endpoints and exclusive on others, so it is
// always sent as end+1. The result may contain one day past end; callers key
// records by day rather than trusting position or count.
func FetchRange[T any](ctx context.Context, c *Client, family models.MetricFamily, start, end civil.Date) ([]T, error) {
	body, err := c.get(ctx, string(family), start, end)
	if err != nil {
		return nil, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Endpoint: string(family), Err: err}
	}
	if env.Data == nil {
		return nil, &DecodeError{Endpoint: string(family), Err: errors.New(`missing "data" array`)}
	}
	return *env.Data, nil
}

// FetchOne is FetchRange for a single day.
func FetchOne[T any](ctx context.Context, c *Client, family models.MetricFamily, day civil.Date) ([]T, error) {
	return FetchRange[T](ctx, c, family, day, day)
}

// DailySleep fetches daily sleep summaries.
func (c *Client) DailySleep(ctx context.Context, r dates.Range) ([]models.DailySleep, error) {
	return FetchRange[models.DailySleep](ctx, c, models.FamilyDailySleep, r.Start, r.End)
}

// DailyReadiness fetches daily readiness summaries.
func (c *Client) DailyReadiness(ctx context.Context, r dates.Range) ([]models.DailyReadiness, error) {
	return FetchRange[models.DailyReadiness](ctx, c, models.FamilyDailyReadiness, r.Start, r.End)
}

// DailyActivity fetches daily activity summaries.
func (c *Client) DailyActivity(ctx context.Context, r dates.Range) ([]models.DailyActivity, error) {
	return FetchRange[models.DailyActivity](ctx, c, models.FamilyDailyActivity, r.Start, r.End)
}

// DailyStress fetches daily stress summaries.
func (c *Client) DailyStress(ctx context.Context, r dates.Range) ([]models.DailyStress, error) {
	return FetchRange[models.DailyStress](ctx, c, models.FamilyDailyStress, r.Start, r.End)
}

// Sleep fetches individual sleep periods.
func (c *Client) Sleep(ctx context.Context, r dates.Range) ([]models.SleepPeriod, error) {
	return FetchRange[models.SleepPeriod](ctx, c, models.FamilySleep, r.Start, r.End)
}

// Raw fetches any usercollection endpoint for one day and returns the
// decoded body untouched.
func (c *Client) Raw(ctx context.Context, endpoint string, day civil.Date) (any, error) {
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, errors.New("missing endpoint")
	}

	body, err := c.get(ctx, endpoint, day, day)
	if err != nil {
		return nil, err
	}

	var out any
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&out); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &DecodeError{Endpoint: endpoint, Err: errors.New("unexpected data after JSON body")}
	}
	return out, nil
}

// QueryURL builds the request URL for an endpoint and inclusive range.
func (c *Client) QueryURL(endpoint string, start, end civil.Date) string {
	query := url.Values{}
	query.Set("start_date", dates.Format(start))
	query.Set("end_date", dates.Format(dates.NextDay(end)))
	return c.baseURL + collectionPath + url.PathEscape(endpoint) + "?" + query.Encode()
}

func (c *Client) get(ctx context.Context, endpoint string, start, end civil.Date) ([]byte, error) {
	fullURL := c.QueryURL(endpoint, start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)

	log := c.logger.With(zap.String("endpoint", endpoint), zap.String("request_id", requestID))
	log.Debug("oura request", zap.String("url", fullURL))

	began := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("oura request failed", zap.Error(err))
		return nil, &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug("oura response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(began)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}
