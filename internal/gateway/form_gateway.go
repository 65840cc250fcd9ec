package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-portal/internal/config"
)

// Form categories form a closed set; requests for anything else are treated
// the same as an unconfigured category.
const (
	CategoryPlacement    = "placement"
	CategoryAchievements = "achievements"
	CategoryGeneral      = "general"
)

var (
	// ErrNotConfigured means the category is unknown or has no URL.
	ErrNotConfigured = errors.New("form category not configured")
	// ErrUpstreamUnreachable means the outbound fetch failed. It carries no
	// detail so the upstream URL cannot leak to clients.
	ErrUpstreamUnreachable = errors.New("form upstream unreachable")
)

// FormResponse carries the upstream reply through to the caller. Body is
// streamed, not buffered; the consumer owns closing it.
type FormResponse struct {
	StatusCode  int
	ContentType string
	Body        io.ReadCloser
}

// FormGateway fetches configured external form URLs on behalf of an admin
// without ever exposing those URLs.
type FormGateway struct {
	urls   map[string]string
	client *http.Client
	logger *zap.Logger
}

// New builds the gateway from configuration.
func New(cfg config.FormsConfig, logger *zap.Logger) *FormGateway {
	return &FormGateway{
		urls: map[string]string{
			CategoryPlacement:    cfg.PlacementURL,
			CategoryAchievements: cfg.AchievementsURL,
			CategoryGeneral:      cfg.GeneralURL,
		},
		client: &http.Client{Timeout: cfg.FetchTimeout()},
		logger: logger,
	}
}

// Fetch performs one outbound request for the category and hands back the
// upstream status, content type, and body stream verbatim.
func (g *FormGateway) Fetch(ctx context.Context, category string) (*FormResponse, error) {
	url, ok := g.urls[category]
	if !ok || url == "" {
		return nil, ErrNotConfigured
	}

	// The body is streamed to the client after the handler returns, so the
	// outbound request must outlive the handler's context. The client
	// timeout still bounds the whole exchange.
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, url, nil)
	if err != nil {
		g.logger.Error("building form request failed", zap.String("category", category), zap.Error(err))
		return nil, ErrUpstreamUnreachable
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("form fetch failed", zap.String("category", category), zap.Error(err))
		return nil, ErrUpstreamUnreachable
	}

	return &FormResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}
