package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/amirhossein-jamali/psp-client/internal/domain/entity"
	errs "github.com/amirhossein-jamali/psp-client/internal/domain/error"
	coreport "github.com/amirhossein-jamali/psp-client/internal/domain/port/core"
)

// Defaults applied when the configuration leaves a value unset
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
)

// Config holds outbound HTTP settings
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// Client implements the Gateway port with net/http
type Client struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
	logger       coreport.Logger
}

// NewClient creates a gateway client with an explicit, finite timeout
func NewClient(cfg Config, logger coreport.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
		logger:       logger,
	}
}

// SendGet issues a GET to target with the payload's query string.
// The query string is the same encoding the signature was computed over.
func (c *Client) SendGet(ctx context.Context, target string, payload *entity.Payload) (*entity.GatewayResponse, error) {
	requestURL, err := BuildURL(target, payload)
	if err != nil {
		return nil, errs.NewGatewayError(target, errs.ErrInvalidArgument, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errs.NewGatewayError(target, errs.ErrInvalidArgument, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("Sending request to payment provider", map[string]any{
		"url": target,
	})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, classify(target, err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, errs.NewGatewayError(target, errs.ErrNetwork,
			fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes))
	}

	c.logger.Debug("Payment provider response received", map[string]any{
		"url":         target,
		"status_code": resp.StatusCode,
		"body":        string(body),
	})

	return &entity.GatewayResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}, nil
}

// BuildURL appends the payload's query string to target, keeping any query target already has
func BuildURL(target string, payload *entity.Payload) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("gateway URL %q must be absolute", target)
	}

	query := payload.QueryString()
	switch {
	case query == "":
	case u.RawQuery == "":
		u.RawQuery = query
	default:
		u.RawQuery += "&" + query
	}
	return u.String(), nil
}

func classify(target string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errs.NewGatewayError(target, errs.ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return errs.NewGatewayError(target, errs.ErrTimeout, err)
	default:
		return errs.NewGatewayError(target, errs.ErrNetwork, err)
	}
}
