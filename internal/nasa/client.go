// Package nasa is a client for the APOD endpoint of the NASA open API.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cosmiccanvas/server/internal/config"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/remote"
)

const requestTimeout = 30 * time.Second

// apodDTO mirrors the APOD API response object.
type apodDTO struct {
	Date           string  `json:"date"`
	Title          string  `json:"title"`
	Explanation    string  `json:"explanation"`
	URL            string  `json:"url"`
	MediaType      string  `json:"media_type"`
	ThumbnailURL   *string `json:"thumbnail_url,omitempty"`
	Copyright      *string `json:"copyright,omitempty"`
	HDURL          *string `json:"hdurl,omitempty"`
	ServiceVersion *string `json:"service_version,omitempty"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *RateLimiter
}

// NewClient creates a client. A nil httpClient gets a default with the
// request timeout; an empty baseURL uses the real endpoint; a nil
// limiter disables rate limiting (tests).
func NewClient(httpClient *http.Client, baseURL string, limiter *RateLimiter) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	if baseURL == "" {
		baseURL = config.NasaBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, limiter: limiter}
}

// Get fetches a single day's picture. An empty date means today.
func (c *Client) Get(ctx context.Context, apiKey, date string) (model.Apod, error) {
	params := url.Values{}
	if date != "" {
		params.Set("date", date)
	}

	body, err := c.fetch(ctx, apiKey, params)
	if err != nil {
		return model.Apod{}, err
	}

	var dto apodDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return model.Apod{}, fmt.Errorf("decode apod: %w", err)
	}
	if dto.Date == "" {
		return model.Apod{}, remote.ErrEmptyResponse
	}
	return dto.toModel(), nil
}

// GetRange fetches all pictures between startDate and endDate inclusive.
func (c *Client) GetRange(ctx context.Context, apiKey, startDate, endDate string) ([]model.Apod, error) {
	params := url.Values{}
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	return c.fetchList(ctx, apiKey, params)
}

// GetCount fetches count randomly chosen pictures.
func (c *Client) GetCount(ctx context.Context, apiKey string, count int) ([]model.Apod, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	return c.fetchList(ctx, apiKey, params)
}

func (c *Client) fetchList(ctx context.Context, apiKey string, params url.Values) ([]model.Apod, error) {
	body, err := c.fetch(ctx, apiKey, params)
	if err != nil {
		return nil, err
	}

	var dtos []apodDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("decode apod list: %w", err)
	}
	if len(dtos) == 0 {
		return nil, remote.ErrEmptyResponse
	}

	apods := make([]model.Apod, 0, len(dtos))
	for _, dto := range dtos {
		apods = append(apods, dto.toModel())
	}
	return apods, nil
}

func (c *Client) fetch(ctx context.Context, apiKey string, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params.Set("api_key", apiKey)
	params.Set("thumbs", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, remote.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &remote.HTTPStatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrTransport, err)
	}
	if len(body) == 0 {
		return nil, remote.ErrEmptyResponse
	}
	return body, nil
}

func (d apodDTO) toModel() model.Apod {
	return model.Apod{
		Date:         d.Date,
		Title:        d.Title,
		Explanation:  d.Explanation,
		URL:          d.URL,
		MediaType:    d.MediaType,
		ThumbnailURL: d.ThumbnailURL,
		Copyright:    d.Copyright,
		HDURL:        d.HDURL,
	}
}
