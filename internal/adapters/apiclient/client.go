package apiclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"travel_console/internal/adapters/observability"
	"travel_console/internal/domain"
)

const packagesPath = "/api/packages"

// APIError is a non-2xx answer from the packages API. Message holds the
// server's "error" field and is empty when the body carried none; Body keeps
// a trimmed prefix of the raw payload in that case.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("packages api: status %d: %s", e.Status, e.Message)
	case e.Body != "":
		return fmt.Sprintf("packages api: status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("packages api: status %d", e.Status)
}

type Client struct {
	base    string
	hc      *http.Client
	rl      *rate.Limiter
	retries int
}

// New builds a client for base (e.g. http://localhost:8080). rps bounds the
// outbound request rate; retries is how many extra attempts a transient
// failure gets (0 disables retrying).
func New(base string, rps, retries int) (*Client, error) {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return nil, errors.New("base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	if retries < 0 {
		retries = 0
	}
	return &Client{
		base:    base,
		hc:      &http.Client{Timeout: 20 * time.Second},
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		retries: retries,
	}, nil
}

func (c *Client) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var out struct {
		Packages []domain.Package `json:"packages"`
	}
	if err := c.do(ctx, http.MethodGet, nil, &out); err != nil {
		return nil, err
	}
	if out.Packages == nil {
		out.Packages = []domain.Package{}
	}
	return out.Packages, nil
}

func (c *Client) CreatePackage(ctx context.Context, in domain.PackageInput) (domain.Package, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return domain.Package{}, errors.Wrap(err, "encode package")
	}
	var out struct {
		Package domain.Package `json:"package"`
	}
	if err := c.do(ctx, http.MethodPost, body, &out); err != nil {
		return domain.Package{}, err
	}
	return out.Package, nil
}

// ---- Internals ----

// do performs one API call with client-side rate limiting and retries, then
// decodes a 2xx JSON body into out. POST is only retried on 429, where the
// server did not take the request; a 5xx may already have stored the row.
func (c *Client) do(ctx context.Context, method string, body []byte, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i <= c.retries; i++ {
		last := i == c.retries

		// build a fresh request each attempt
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.base+packagesPath, rd)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "travel-console/1.0")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(packagesPath, method, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = errors.Wrap(err, "packages api")
			if method == http.MethodGet && !last && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(packagesPath, method, resp.StatusCode, time.Since(start))

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return errors.Wrap(err, "decode packages api response")
		}

		apiErr := readAPIError(resp)
		wait := retryAfter(resp)
		resp.Body.Close()
		lastErr = apiErr

		if !retryable(method, resp.StatusCode) || last {
			return apiErr
		}
		if wait == 0 {
			wait = backoff(i)
		}
		if !sleepCtx(ctx, wait) {
			return ctx.Err()
		}
	}
	return lastErr
}

func retryable(method string, status int) bool {
	switch status {
	case http.StatusTooManyRequests:
		return true
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return method == http.MethodGet
	}
	return false
}

// readAPIError extracts {"error": "..."} from a failed response.
func readAPIError(resp *http.Response) *APIError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	e := &APIError{Status: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &body) == nil && body.Error != "" {
		e.Message = body.Error
	} else {
		e.Body = strings.TrimSpace(string(b))
	}
	return e
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns 200ms, 400ms, 800ms... plus up to 50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
