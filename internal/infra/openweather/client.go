package openweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	userAgent      = "openweather-report/1.0"
	defaultTimeout = 10 * time.Second
	redacted       = "REDACTED"
)

// Client performs raw GETs against OpenWeather. It never retries and leaves
// status interpretation to the caller.
type Client struct {
	client *resty.Client
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(restyLogger{logger}).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		otel.GetTextMapPropagator().Inject(req.Context(), propagation.HeaderCarrier(req.Header))
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "openweather response",
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"bytes", len(resp.Body()),
		)
		return nil
	})

	return &Client{client: client}
}

func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (int, []byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(rawURL)
	if err != nil {
		return 0, nil, redactError(err)
	}
	return resp.StatusCode(), resp.Body(), nil
}

// redactError hides the api key that url.Error would otherwise echo back.
func redactError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		urlErr.URL = redacted
		return err
	}
	q := u.Query()
	if q.Has("appid") {
		q.Set("appid", redacted)
		u.RawQuery = q.Encode()
	}
	urlErr.URL = u.String()
	return err
}

// restyLogger routes resty's own diagnostics into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
