// Package api is the typed client of the remote booking REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"therewecome/models"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	FailureRatio float64
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// Client calls the booking API. It never retries; failures are reported to
// the caller as *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	validate   *validator.Validate
	logger     *zap.Logger
}

var (
	errServerStatus = errors.New("server error status")
	errEmptyBody    = errors.New("empty response body")
)

type rawResponse struct {
	status int
	body   []byte
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ratio := opts.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}

	v := validator.New()
	v.RegisterStructValidation(validateStylistCandidate, models.StylistCandidate{})

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "booking-api",
			MaxRequests: 1,
			Interval:    30 * time.Second,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 5 && failureRatio >= ratio
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		}),
		validate: v,
		logger:   logger,
	}
}

func validateStylistCandidate(sl validator.StructLevel) {
	s := sl.Current().Interface().(models.StylistCandidate)
	if s.BookingID() == "" {
		sl.ReportError(s.ID, "ID", "id", "required", "")
	}
}

// Ping reports whether the API answers at all. Any HTTP status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// call performs one request. token is sent as a bearer credential when set;
// out, when non-nil, receives the decoded and validated 2xx body, which must
// not be empty.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, token string, body, out any) error {
	raw, err := c.do(ctx, op, method, path, query, token, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw.body)) == 0 {
		return &Error{Kind: KindMalformed, Op: op, StatusCode: raw.status, Err: errEmptyBody}
	}
	return c.decode(op, raw, out)
}

// do sends the request and turns transport failures and non-2xx answers into
// *Error.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body any) (*rawResponse, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to marshal request body: %w", op, err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		raw := &rawResponse{status: resp.StatusCode, body: respBody}
		if resp.StatusCode >= http.StatusInternalServerError {
			return raw, errServerStatus
		}
		return raw, nil
	})

	raw, _ := result.(*rawResponse)
	if raw == nil {
		c.logger.Warn("Booking API unreachable",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, &Error{Kind: KindNetwork, Op: op, Err: err}
	}

	c.logger.Debug("Booking API call",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", raw.status),
		zap.Duration("elapsed", time.Since(start)),
	)

	if raw.status < 200 || raw.status > 299 {
		return nil, &Error{
			Kind:       KindServer,
			Op:         op,
			StatusCode: raw.status,
			Message:    serverMessage(raw.body),
		}
	}
	return raw, nil
}

func (c *Client) decode(op string, raw *rawResponse, out any) error {
	if err := json.Unmarshal(raw.body, out); err != nil {
		return &Error{Kind: KindMalformed, Op: op, StatusCode: raw.status, Err: err}
	}
	if err := c.validateResponse(out); err != nil {
		return &Error{Kind: KindMalformed, Op: op, StatusCode: raw.status, Err: err}
	}
	return nil
}

func (c *Client) validateResponse(out any) error {
	rv := reflect.Indirect(reflect.ValueOf(out))
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return nil
		}
		return c.validate.Var(rv.Interface(), "dive")
	case reflect.Struct:
		return c.validate.Struct(rv.Interface())
	default:
		return nil
	}
}
