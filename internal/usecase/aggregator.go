// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/gateway"
)

// FirstPage is the page every full listing starts from.
const FirstPage = 1

// Aggregator is the use case for listing an account's repositories.
// It drives the gateway page by page and merges the results.
type Aggregator struct {
	fetcher gateway.PageFetcher
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.PageFetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// FetchAll requests pages 1, 2, ... until a page comes back empty and returns
// every record in the order received.
//
// Any failed page aborts the whole listing and nothing gathered so far is returned.
// Pages are fetched one after another; nothing is retried.
func (a *Aggregator) FetchAll(ctx context.Context, q domain.Query) ([]domain.Repository, error) {
	if !q.Scope.Valid() {
		return nil, &domain.FetchError{Kind: domain.ErrInvalidRequestType, Page: FirstPage}
	}
	a.logger.Info("Fetching repositories", "scope", q.Scope, "identity", q.Identity)

	all := []domain.Repository{}
	for page := FirstPage; ; page++ {
		repos, err := a.fetcher.FetchPage(ctx, gateway.PageRequest{Query: q, Page: page})
		if err != nil {
			a.logger.Error("Page fetch failed", "page", page, "error", err)
			return nil, err
		}
		if len(repos) == 0 {
			break
		}
		all = append(all, repos...)
		a.logger.Info("Fetched page", "page", page, "count", len(repos), "total", len(all))
	}

	a.logger.Info("Listing complete", "total", len(all))
	return all, nil
}

// FetchPage requests exactly one page, starting at page. An empty page is a
// successful, empty result.
func (a *Aggregator) FetchPage(ctx context.Context, q domain.Query, page int) ([]domain.Repository, error) {
	if !q.Scope.Valid() {
		return nil, &domain.FetchError{Kind: domain.ErrInvalidRequestType, Page: page}
	}
	a.logger.Info("Fetching repository page", "scope", q.Scope, "identity", q.Identity, "page", page)

	repos, err := a.fetcher.FetchPage(ctx, gateway.PageRequest{Query: q, Page: page})
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []domain.Repository{}
	}
	return repos, nil
}
