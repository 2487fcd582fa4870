// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client and its error types.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/google/go-querystring/query"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com/"

// PageRequest identifies one page of a repository listing.
type PageRequest struct {
	domain.Query
	// Page is 1-based.
	Page int
}

// PageFetcher defines the behavior of a gateway that fetches one page of repositories.
// A failed fetch returns a *domain.FetchError classifying the outcome.
type PageFetcher interface {
	FetchPage(ctx context.Context, req PageRequest) ([]domain.Repository, error)
}

// Options configures the HTTP side of a GitHubGateway.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
}

// GitHubGateway is the concrete implementation of the PageFetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// listOptions mirrors the query parameters of the org and user repository listings.
type listOptions struct {
	Sort      string `url:"sort,omitempty"`
	Direction string `url:"direction,omitempty"`
	github.ListOptions
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// Requests are unauthenticated.
func NewGitHubGateway(opts Options, logger *log.Logger) (*GitHubGateway, error) {
	// A zero sleep limit turns the waiter into a detector: secondary limits are
	// reported and the 403 is handed back instead of being slept on and retried.
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(0, func(cbCtx *github_ratelimit.CallbackContext) {
			if cbCtx.SleepUntil != nil {
				logger.Warn("Secondary rate limit detected", "until", cbCtx.SleepUntil.Format(time.RFC3339))
				return
			}
			logger.Warn("Secondary rate limit detected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{
		Transport: rateLimitWaiter,
		Timeout:   opts.Timeout,
	}

	restClient := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API base URL: %w", err)
		}
		restClient.BaseURL = baseURL
	}
	if opts.UserAgent != "" {
		restClient.UserAgent = opts.UserAgent
	}

	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchPage requests a single page of the listing and decodes it.
func (g *GitHubGateway) FetchPage(ctx context.Context, req PageRequest) ([]domain.Repository, error) {
	if !req.Scope.Valid() {
		return nil, &domain.FetchError{Kind: domain.ErrInvalidRequestType, Page: req.Page}
	}

	u, err := listURL(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing URL: %w", err)
	}
	httpReq, err := g.restClient.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	g.logger.Debug("GET", "scope", req.Scope, "identity", req.Identity, "page", req.Page)
	var repos []domain.Repository
	resp, err := g.restClient.Do(ctx, httpReq, &repos)
	if resp != nil && resp.Response != nil {
		g.logger.Debug("Rate limit",
			"remaining", resp.Rate.Remaining,
			"reset", resp.Rate.Reset.Time.Format(time.RFC3339),
			"status", resp.StatusCode)
	}
	if err != nil {
		return nil, classify(req.Page, resp, err)
	}
	return repos, nil
}

func listURL(req PageRequest) (string, error) {
	u := fmt.Sprintf("%s/%s/repos", req.Scope.Plural(), url.PathEscape(req.Identity))
	qs, err := query.Values(listOptions{
		Sort:      req.Sort,
		Direction: req.Direction,
		ListOptions: github.ListOptions{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	})
	if err != nil {
		return "", err
	}
	return u + "?" + qs.Encode(), nil
}

// classify maps the outcome of a failed request onto the error taxonomy.
// A failure that still carries a successful status can only come from decoding the body.
func classify(page int, resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return &domain.FetchError{Kind: domain.ErrNetwork, Page: page, Err: err}
	}

	status := resp.StatusCode
	kind := domain.ErrUnclassifiedUpstream
	switch {
	case status >= 200 && status < 300:
		kind = domain.ErrDeserialization
	case status == http.StatusNotFound:
		kind = domain.ErrProfileNotFound
	case status == http.StatusForbidden:
		kind = domain.ErrRateLimited
	}
	return &domain.FetchError{Kind: kind, Page: page, StatusCode: status, Err: err}
}
