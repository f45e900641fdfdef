package translate

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cosmiccanvas/server/internal/config"
	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/remote"
)

// Retry schedule for the keyless endpoint. 429s are expected under any
// sustained use, so the client backs off rather than giving up.
const (
	maxAttempts       = 5
	initialBackoff    = 2000 * time.Millisecond
	maxBackoff        = 60000 * time.Millisecond
	backoffMultiplier = 1.5

	// batchDelay is the pause between requests of a batch, long enough
	// to mostly stay under the endpoint's rate limit.
	batchDelay = 3000 * time.Millisecond

	attemptTimeout = 10 * time.Second
)

// Client translates via the keyless Google Translate endpoint. It keeps
// no state between calls.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Test hooks. sleep must honor ctx cancellation; jitter returns a
	// uniform value in [0,1).
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64
}

// NewClient creates a client. A nil httpClient gets a default with the
// per-attempt timeout; an empty baseURL uses the real endpoint.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: attemptTimeout}
	}
	if baseURL == "" {
		baseURL = config.TranslateBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sleep:      sleepCtx,
		jitter:     rand.Float64,
	}
}

func (c *Client) Name() string {
	return ProviderSimple
}

// Translate translates text into targetLang. An empty sourceLang lets
// the endpoint detect the source. On 429 or a transport error it
// retries up to maxAttempts with exponential backoff and jitter; any
// other non-2xx status is terminal.
func (c *Client) Translate(ctx context.Context, text, targetLang, sourceLang string) (model.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return model.Translation{}, ErrEmptyText
	}
	if sourceLang == "" {
		sourceLang = SourceAuto
	}

	reqURL := c.baseURL + "?client=dict-chrome-ex&sl=" + url.QueryEscape(sourceLang) +
		"&tl=" + url.QueryEscape(targetLang) + "&q=" + url.QueryEscape(text)

	backoff := initialBackoff
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		payload, status, err := c.fetch(ctx, reqURL)

		switch {
		case err != nil:
			// Transport failure: retried on the same schedule.
			if ctx.Err() != nil {
				return model.Translation{}, ctx.Err()
			}
			lastErr = err
			logger.Warn("translation request failed",
				"module", "translate", "action", "fetch", "resource", "translation", "result", "failed",
				"attempt", attempt, "error", err)

		case status == http.StatusTooManyRequests:
			lastErr = remote.ErrRateLimited
			logger.Warn("translation rate limited",
				"module", "translate", "action", "fetch", "resource", "translation", "result", "rate_limited",
				"attempt", attempt, "max_attempts", maxAttempts)

		case status < 200 || status >= 300:
			return model.Translation{}, &remote.HTTPStatusError{Code: status}

		default:
			translated, usedFallback := parsePayload(payload)
			if usedFallback {
				logger.Warn("translation parse degraded to fallback",
					"module", "translate", "action", "parse", "resource", "translation", "result", "parse_fallback",
					"target_lang", targetLang)
			}
			if strings.TrimSpace(translated) == "" {
				// Rather a missing translation than a blank caption.
				translated = text
			}
			return model.Translation{
				SourceText:     text,
				TranslatedText: translated,
				SourceLanguage: sourceLang,
				TargetLanguage: targetLang,
				CreatedAtMs:    time.Now().UnixMilli(),
			}, nil
		}

		if attempt < maxAttempts {
			if err := c.sleep(ctx, c.jittered(backoff)); err != nil {
				return model.Translation{}, err
			}
			backoff = nextBackoff(backoff)
		}
	}

	if lastErr == remote.ErrRateLimited {
		return model.Translation{}, remote.ErrRateLimited
	}
	return model.Translation{}, fmt.Errorf("%w: %v", remote.ErrTransport, lastErr)
}

// TranslateBatch translates texts one at a time with a fixed delay
// between requests. The first failure aborts the batch.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, targetLang, sourceLang string) ([]model.Translation, error) {
	results := make([]model.Translation, 0, len(texts))

	for i, text := range texts {
		if i > 0 {
			if err := c.sleep(ctx, batchDelay); err != nil {
				return nil, err
			}
		}

		t, err := c.Translate(ctx, text, targetLang, sourceLang)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}

	return results, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) (payload string, status int, err error) {
	reqCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", 0, err
	}
	// The endpoint blocks programmatic-looking clients.
	req.Header.Set("User-Agent", config.DesktopUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	return string(body), resp.StatusCode, nil
}

// nextBackoff grows the base delay by backoffMultiplier, capped.
// Jitter is applied per sleep, not folded into the base, so the
// schedule stays geometric.
func nextBackoff(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * backoffMultiplier)
	if next > maxBackoff {
		next = maxBackoff
	}
	return next
}

// jittered applies a multiplicative jitter in [0.75, 1.25).
func (c *Client) jittered(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.75 + 0.5*c.jitter()))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
