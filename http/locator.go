// Package http provides an HTTP-based implementation of plss.WellLocator
// against an ArcGIS-style feature layer query endpoint.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/plss"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for GIS requests.
const DefaultTimeout = 10 * time.Second

// DefaultRPS is the default request rate against the GIS endpoint.
const DefaultRPS = 2.0

// DefaultRetryDelays returns the backoff delays for GIS retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure WellLocator implements plss.WellLocator at compile time.
var _ plss.WellLocator = (*WellLocator)(nil)

// WellLocator looks up surface-hole coordinates by API number. It is safe
// for concurrent use: requests share one rate limiter and concurrent
// lookups of the same well share one request.
type WellLocator struct {
	client      *http.Client
	queryURL    string
	timeout     time.Duration
	limiter     *rate.Limiter
	retryDelays []time.Duration
	fields      Fields
	group       singleflight.Group
}

// Fields names the layer attributes holding the API number and the
// coordinate.
type Fields struct {
	API       string
	Latitude  string
	Longitude string
}

// Option configures a WellLocator.
type Option func(*WellLocator)

// WithTimeout sets the timeout for each HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(l *WellLocator) {
		l.timeout = d
	}
}

// WithRateLimit sets the maximum requests per second.
func WithRateLimit(rps float64) Option {
	return func(l *WellLocator) {
		l.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the delays between attempts after a transient
// failure. An empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(l *WellLocator) {
		l.retryDelays = delays
	}
}

// WithFields overrides the layer attribute names.
func WithFields(f Fields) Option {
	return func(l *WellLocator) {
		l.fields = f
	}
}

// NewWellLocator creates a WellLocator querying the feature layer at
// layerURL, e.g. "https://gis.example.com/arcgis/rest/services/Wells/MapServer/0".
func NewWellLocator(layerURL string, opts ...Option) *WellLocator {
	l := &WellLocator{
		queryURL:    strings.TrimSuffix(layerURL, "/") + "/query",
		timeout:     DefaultTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRPS), 1),
		retryDelays: DefaultRetryDelays(),
		fields:      Fields{API: "API", Latitude: "LATITUDE", Longitude: "LONGITUDE"},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// LocateWell returns the surface-hole coordinate of a well. Concurrent
// callers share one lookup that outlives any single caller's
// cancellation; each request is still bounded by the client timeout.
func (l *WellLocator) LocateWell(ctx context.Context, apiNumber string) (*plss.Coordinate, error) {
	api := plss.NormalizeAPI(apiNumber)
	if api == "" {
		return nil, plss.Errorf(plss.ENOTFOUND, "well not found")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(api, func() (any, error) {
		return l.locateWithRetry(shared, api)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		c := res.Val.(plss.Coordinate)
		return &c, nil
	}
}

func (l *WellLocator) locateWithRetry(ctx context.Context, api string) (plss.Coordinate, error) {
	maxAttempts := len(l.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := l.locate(ctx, api)
		if err == nil {
			return c, nil
		}
		lastErr = err

		var te *transientError
		if !errors.As(err, &te) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return plss.Coordinate{}, ctx.Err()
		case <-time.After(l.retryDelays[attempt]):
		}
	}

	var te *transientError
	if errors.As(lastErr, &te) {
		return plss.Coordinate{}, te.err
	}
	return plss.Coordinate{}, lastErr
}

// transientError marks failures worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (l *WellLocator) locate(ctx context.Context, api string) (plss.Coordinate, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return plss.Coordinate{}, err
	}

	q := url.Values{}
	q.Set("where", fmt.Sprintf("%s='%s'", l.fields.API, api))
	q.Set("outFields", strings.Join([]string{l.fields.API, l.fields.Latitude, l.fields.Longitude}, ","))
	q.Set("returnGeometry", "false")
	q.Set("f", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.queryURL+"?"+q.Encode(), nil)
	if err != nil {
		return plss.Coordinate{}, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return plss.Coordinate{}, ctx.Err()
		}
		return plss.Coordinate{}, &transientError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return plss.Coordinate{}, &transientError{err: err}
	}

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return plss.Coordinate{}, &transientError{err: fmt.Errorf("HTTP %d from GIS", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return plss.Coordinate{}, fmt.Errorf("HTTP %d from GIS", resp.StatusCode)
	}

	return l.parse(body)
}

// parse reads the first feature's coordinate from a query response.
func (l *WellLocator) parse(body []byte) (plss.Coordinate, error) {
	if !gjson.ValidBytes(body) {
		return plss.Coordinate{}, fmt.Errorf("invalid GIS response")
	}
	res := gjson.ParseBytes(body)
	if msg := res.Get("error.message"); msg.Exists() {
		return plss.Coordinate{}, fmt.Errorf("GIS error: %s", msg.String())
	}

	feature := res.Get("features.0")
	if !feature.Exists() {
		return plss.Coordinate{}, plss.Errorf(plss.ENOTFOUND, "well not found")
	}

	attrs := feature.Get("attributes")
	lat, lng := attrs.Get(gjsonKey(l.fields.Latitude)), attrs.Get(gjsonKey(l.fields.Longitude))
	if lat.Type != gjson.Number || lng.Type != gjson.Number {
		return plss.Coordinate{}, plss.Errorf(plss.ENOTFOUND, "well has no coordinates")
	}
	c := plss.Coordinate{Latitude: lat.Float(), Longitude: lng.Float()}
	if !c.Valid() {
		return plss.Coordinate{}, plss.Errorf(plss.ENOTFOUND, "well has no coordinates")
	}
	return c, nil
}

var gjsonEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

// gjsonKey escapes a literal attribute name for use as a gjson path.
func gjsonKey(name string) string {
	return gjsonEscaper.Replace(name)
}
