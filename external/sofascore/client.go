package sofascore

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/starpick-admin/internal/domain/providersync"
	"github.com/riskibarqy/starpick-admin/internal/domain/round"
	"github.com/riskibarqy/starpick-admin/internal/platform/cache"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/platform/resilience"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.sofascore.com/api/v1"
	defaultUserAgent = "Mozilla/5.0 (Linux; Android 10; SM-G973F) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
	defaultReferer   = "https://www.sofascore.com/"
	maxResponseBody  = 6 << 20
)

var errSofaScoreTransient = crerr.New("sofascore transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads reference data from SofaScore's public API. Requests carry the
// headers a browser would send because the API rejects bare clients.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	responses      *cache.Store[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("sofascore circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
		responses:      cache.NewStore[[]byte](cfg.CacheTTL),
	}
}

func (c *Client) Categories(ctx context.Context) ([]providersync.Category, error) {
	var payload struct {
		Categories []providersync.Category `json:"categories"`
	}
	if err := c.doJSON(ctx, "/sport/football/categories", &payload); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if payload.Categories == nil {
		return nil, fmt.Errorf("%w: categories missing from provider payload", usecase.ErrMalformedResponse)
	}
	return payload.Categories, nil
}

func (c *Client) Tournaments(ctx context.Context, categoryID int64) ([]providersync.Tournament, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload struct {
		Groups []struct {
			UniqueTournaments []providersync.Tournament `json:"uniqueTournaments"`
		} `json:"groups"`
	}
	path := "/category/" + strconv.FormatInt(categoryID, 10) + "/unique-tournaments"
	if err := c.doJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch tournaments category_id=%d: %w", categoryID, err)
	}

	out := make([]providersync.Tournament, 0, 16)
	seen := make(map[int64]struct{}, 16)
	for _, group := range payload.Groups {
		for _, item := range group.UniqueTournaments {
			if _, dup := seen[item.ID]; dup || item.ID <= 0 {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *Client) Seasons(ctx context.Context, tournamentID string) (providersync.SeasonsDocument, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return providersync.SeasonsDocument{}, fmt.Errorf("%w: tournament id is required", usecase.ErrInvalidInput)
	}

	var doc providersync.SeasonsDocument
	path := "/unique-tournament/" + tournamentID + "/seasons"
	if err := c.doJSON(ctx, path, &doc); err != nil {
		return providersync.SeasonsDocument{}, fmt.Errorf("fetch seasons tournament_id=%s: %w", tournamentID, err)
	}
	if doc.Seasons == nil {
		doc.Seasons = []providersync.Season{}
	}
	return doc, nil
}

func (c *Client) Rounds(ctx context.Context, tournamentID, seasonID string) (round.Set, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	seasonID = strings.TrimSpace(seasonID)
	if tournamentID == "" || seasonID == "" {
		return round.Set{}, fmt.Errorf("%w: tournament and season ids are required", usecase.ErrInvalidInput)
	}

	var set round.Set
	path := "/unique-tournament/" + tournamentID + "/season/" + seasonID + "/rounds"
	if err := c.doJSON(ctx, path, &set); err != nil {
		return round.Set{}, fmt.Errorf("fetch rounds tournament_id=%s season_id=%s: %w", tournamentID, seasonID, err)
	}
	if err := set.Validate(); err != nil {
		return round.Set{}, fmt.Errorf("%w: %v", usecase.ErrMalformedResponse, err)
	}
	return set, nil
}

// Invalidate drops cached responses whose path starts with prefix.
func (c *Client) Invalidate(prefix string) {
	c.responses.DeletePrefix(prefix)
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	raw, err := c.responses.GetOrLoad(ctx, path, func(ctx context.Context) ([]byte, error) {
		return c.fetch(ctx, path)
	})
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrMalformedResponse, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if !c.circuitEnabled {
		return c.executeRequest(ctx, c.baseURL+path)
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, c.baseURL+path)
		return reqErr
	}, isCircuitFailure)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "sofascore circuit breaker rejected request", "state", c.breaker.State(), "path", path)
		return nil, fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", defaultReferer)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, c.transient(ctx, fullURL, crerr.Wrapf(errSofaScoreTransient, "send request: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	switch {
	case err != nil:
		return nil, c.transient(ctx, fullURL, crerr.Wrapf(errSofaScoreTransient, "read response body: %v", err))
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: provider status=404", usecase.ErrNotFound)
	case isTransientStatus(resp.StatusCode):
		return nil, c.transient(ctx, fullURL, crerr.Wrapf(errSofaScoreTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)))
	default:
		return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
}

func (c *Client) transient(ctx context.Context, fullURL string, err error) error {
	c.logger.WarnContext(ctx, "sofascore request failed", "url", fullURL, "error", err)
	return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSofaScoreTransient) || crerr.Is(err, usecase.ErrDependencyUnavailable)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	value := strings.TrimSpace(string(raw))
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
