package service

import (
	"context"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/query"
	"github.com/galley-app/galley-client/models"
)

// minSuggestionRunes is the shortest query the suggestion endpoint is asked
// about. Shorter input returns empty suggestions locally.
const minSuggestionRunes = 2

type searchService struct {
	queries  adapter.QueryAdapter
	tokens   TokenSource
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSearchService(queries adapter.QueryAdapter, tokens TokenSource, logger *logger.Logger) SearchService {
	return &searchService{
		queries:  queries,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *searchService) Search(ctx context.Context, filter models.SearchFilter) models.SearchResult {
	if err := s.validate.Struct(filter); err != nil {
		s.logger.Warn().
			Str("func", "searchService.Search").
			Str("reason", err.Error()).
			Msg("search filter rejected before request")
		return models.SearchResult{Error: msgInvalidFilter}
	}

	composed := query.Compose(filter)
	token := s.tokens.Token()

	recipes, total, err := s.queries.Search(ctx, token, composed)
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.Search").
			Str("query", filter.Query).
			Msg("search request failed")
		return models.SearchResult{Error: normalizeError(err, msgSearchFailed)}
	}

	if filter.Query != "" {
		s.logSearch(ctx, token, filter.Query, total)
	}

	return models.SearchResult{Recipes: recipes, Total: total}
}

// logSearch records the search term in the background. Best effort, no
// retry; the primary search result never waits on it.
func (s *searchService) logSearch(ctx context.Context, token, term string, total int) {
	logCtx := context.WithoutCancel(ctx)
	go func() {
		if err := s.queries.LogSearch(logCtx, token, term, total); err != nil {
			s.logger.Warn().
				Err(err).
				Str("func", "searchService.logSearch").
				Str("term", term).
				Msg("failed to log search term")
		}
	}()
}

func (s *searchService) Suggestions(ctx context.Context, text string) models.Suggestions {
	if utf8.RuneCountInString(text) < minSuggestionRunes {
		return models.Suggestions{}
	}

	suggestions, err := s.queries.Suggestions(ctx, text)
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.Suggestions").
			Str("text", text).
			Msg("suggestion request failed")
		return models.Suggestions{}
	}
	return suggestions
}

func (s *searchService) PopularTerms(ctx context.Context) []string {
	terms, err := s.queries.PopularSearchTerms(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.PopularTerms").
			Msg("popular terms request failed")
		return nil
	}
	return terms
}

func (s *searchService) Categories(ctx context.Context) []models.Category {
	categories, err := s.queries.Categories(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "searchService.Categories").
			Msg("categories request failed")
		return nil
	}
	return categories
}
