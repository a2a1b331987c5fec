package ephemeris

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
	"github.com/sony/gobreaker"
)

const (
	breakerName       = "ephemeris"
	LongitudeEndpoint = "ephemeris/longitude"
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client HTTP-клиент внешнего сервиса эфемерид, реализует service.IEphemeris
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Collector
	Log        *slog.Logger
}

func NewClient(cfg *Config, m *metrics.Collector, log *slog.Logger) *Client {
	transport := &http.Transport{}
	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	c := &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		metrics: m,
		Log:     log,
	}
	c.breaker = gobreaker.NewCircuitBreaker(c.breakerSettings())
	m.SetBreakerState(breakerName, float64(gobreaker.StateClosed))
	return c
}

func (c *Client) breakerSettings() gobreaker.Settings {
	bc := c.cfg.Breaker
	return gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bc.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= bc.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.Log.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			c.metrics.SetBreakerState(name, float64(to))
		},
		// отмена запроса вызывающим не считается отказом провайдера
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
}

// State текущее состояние breaker, для /ready
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// BodyLongitude тропическая долгота и скорость тела. Любой отказ, включая
// открытый breaker, возвращается как EphemerisUnavailableError
func (c *Client) BodyLongitude(ctx context.Context, jdUT float64, body domain.Body) (domain.EclipticPosition, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, LongitudeRequest{JDUT: jdUT, Body: string(body)})
	})
	c.metrics.ObserveEphemeris(string(body), err)
	if err != nil {
		return domain.EclipticPosition{}, &domain.EphemerisUnavailableError{Body: body, Err: err}
	}

	resp := res.(*LongitudeResponse)
	return domain.EclipticPosition{Longitude: resp.Longitude, Speed: resp.Speed}, nil
}

func (c *Client) fetch(ctx context.Context, req LongitudeRequest) (*LongitudeResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(LongitudeEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("ephemeris API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("ephemeris API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	var out LongitudeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris API response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("ephemeris API unmarshal failed: %w", err)
	}

	if out.Status < 0 {
		return nil, fmt.Errorf("ephemeris calculation failed [status=%d]: %s", out.Status, out.Error)
	}
	return &out, nil
}
