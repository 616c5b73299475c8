package youtubeclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	youtubedomain "github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/funnel-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	SearchChannelVideos(ctx context.Context, channelID string, maxResults int) (*youtubedomain.SearchListResponse, error)
	GetVideoStatistics(ctx context.Context, videoIDs []string) (*youtubedomain.VideoListResponse, error)
	RemainingQuota() int
}

type YouTubeClient struct {
	httpClient *http.Client
	cfg        config.YouTube
	quota      *QuotaTracker
}

func NewClient(cfg *config.Config) Client {
	return newClient(cfg.YouTube, &http.Client{Timeout: 30 * time.Second}, NewQuotaTracker(cfg.YouTube.DailyQuota, time.Now))
}

func newClient(cfg config.YouTube, httpClient *http.Client, quota *QuotaTracker) *YouTubeClient {
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}

	return &YouTubeClient{
		httpClient: httpClient,
		cfg:        cfg,
		quota:      quota,
	}
}

func (c *YouTubeClient) RemainingQuota() int {
	return c.quota.Remaining()
}

// APIError é um erro devolvido pela API com status diferente de 2xx
type APIError struct {
	StatusCode int
	Message    string
	Quota      bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api status %d: %s", e.StatusCode, e.Message)
}

// retryable indica falhas temporárias; erros 4xx de requisição não são repetidos
func (e *APIError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// get executa a requisição com novas tentativas e decodifica a resposta em out.
// Cada tentativa consome a cota do endpoint.
func (c *YouTubeClient) get(ctx context.Context, resource string, params url.Values, cost int, out any) error {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	params.Set("key", c.cfg.APIKey)
	endpoint.RawQuery = params.Encode()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		if err := c.quota.Consume(cost); err != nil {
			return err
		}

		lastErr = c.do(ctx, endpoint.String(), out)
		if lastErr == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && (!apiErr.retryable() || apiErr.Quota) {
			return lastErr
		}

		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"attempt":  attempt,
			"error":    lastErr.Error(),
		}).Warn("youtube: falha na requisição, tentando novamente")

		if attempt < c.cfg.RetryAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RetryDelay * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("youtube: %d tentativas falharam: %w", c.cfg.RetryAttempts, lastErr)
}

func (c *YouTubeClient) do(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

		var errResp youtubedomain.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			apiErr.Message = errResp.Error.Message
			apiErr.Quota = errResp.IsQuotaExceeded()
		}

		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
