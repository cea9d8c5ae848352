package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/galley-app/galley-client/internal/query"
	"github.com/galley-app/galley-client/models"
)

const graphqlPath = "/api/graphql"

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

// post sends one query document with its variables and decodes the data
// payload into out. Query-language errors in the envelope are treated the
// same as transport errors; out may be nil for mutations whose result is
// discarded.
func (h *HTTPAdapter) post(ctx context.Context, token, document string, variables map[string]any, out any) error {
	var envelope gqlEnvelope

	resp, err := h.request(ctx, token).
		SetBody(gqlRequest{Query: document, Variables: variables}).
		SetResult(&envelope).
		Post(graphqlPath)
	if err != nil {
		return fmt.Errorf("query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrBadRequest, envelope.Errors[0].Message)
	}
	if out == nil {
		return nil
	}
	if envelope.Data == nil {
		return ErrInvalidResponse
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}

type searchData struct {
	Recipes   []models.Recipe `json:"recipes"`
	Aggregate struct {
		Aggregate struct {
			Count int `json:"count"`
		} `json:"aggregate"`
	} `json:"recipes_aggregate"`
}

// Search implements [QueryAdapter]. The composed predicate tree is attached
// once as the $where variable, which both the row selection and the count
// aggregate reference.
func (h *HTTPAdapter) Search(ctx context.Context, token string, q query.Composed) ([]models.Recipe, int, error) {
	variables := map[string]any{
		"where":    q.Where,
		"order_by": q.OrderBy,
		"limit":    q.Page.Limit,
		"offset":   q.Page.Offset,
	}

	var data searchData
	if err := h.post(ctx, token, searchRecipesQuery, variables, &data); err != nil {
		return nil, 0, err
	}

	return data.Recipes, data.Aggregate.Aggregate.Count, nil
}

// InteractionRows implements [QueryAdapter]. One batched request returns all
// four fact tables for the pair.
func (h *HTTPAdapter) InteractionRows(ctx context.Context, token, userID, recipeID string) (models.InteractionRows, error) {
	variables := map[string]any{
		"user_id":   userID,
		"recipe_id": recipeID,
	}

	var rows models.InteractionRows
	if err := h.post(ctx, token, interactionRowsQuery, variables, &rows); err != nil {
		return models.InteractionRows{}, err
	}

	return rows, nil
}

type suggestionsData struct {
	Recipes     []models.RecipeSuggestion `json:"recipes"`
	Ingredients []struct {
		Name string `json:"name"`
	} `json:"recipe_ingredients"`
	Categories []models.Category `json:"categories"`
}

// Suggestions implements [QueryAdapter].
func (h *HTTPAdapter) Suggestions(ctx context.Context, text string) (models.Suggestions, error) {
	variables := map[string]any{"search_query": "%" + text + "%"}

	var data suggestionsData
	if err := h.post(ctx, "", suggestionsQuery, variables, &data); err != nil {
		return models.Suggestions{}, err
	}

	s := models.Suggestions{
		Recipes:    data.Recipes,
		Categories: data.Categories,
	}
	for _, ing := range data.Ingredients {
		s.Ingredients = append(s.Ingredients, ing.Name)
	}

	return s, nil
}

type searchLogsData struct {
	SearchLogs []struct {
		SearchTerm string `json:"search_term"`
		Count      int    `json:"count"`
	} `json:"search_logs"`
}

// PopularSearchTerms implements [QueryAdapter].
func (h *HTTPAdapter) PopularSearchTerms(ctx context.Context) ([]string, error) {
	var data searchLogsData
	if err := h.post(ctx, "", popularSearchTermsQuery, nil, &data); err != nil {
		return nil, err
	}

	terms := make([]string, 0, len(data.SearchLogs))
	for _, l := range data.SearchLogs {
		terms = append(terms, l.SearchTerm)
	}

	return terms, nil
}

// LogSearch implements [QueryAdapter]. The mutation result is discarded.
func (h *HTTPAdapter) LogSearch(ctx context.Context, token, term string, resultsCount int) error {
	variables := map[string]any{
		"search_term":   term,
		"results_count": resultsCount,
	}

	return h.post(ctx, token, logSearchMutation, variables, nil)
}

type categoriesData struct {
	Categories []models.Category `json:"categories"`
}

// Categories implements [QueryAdapter].
func (h *HTTPAdapter) Categories(ctx context.Context) ([]models.Category, error) {
	var data categoriesData
	if err := h.post(ctx, "", categoriesQuery, nil, &data); err != nil {
		return nil, err
	}

	return data.Categories, nil
}

// LikeRecipe implements [QueryAdapter].
func (h *HTTPAdapter) LikeRecipe(ctx context.Context, token, recipeID string) error {
	return h.post(ctx, token, likeRecipeMutation, map[string]any{"recipe_id": recipeID}, nil)
}

// UnlikeRecipe implements [QueryAdapter].
func (h *HTTPAdapter) UnlikeRecipe(ctx context.Context, token, recipeID string) error {
	return h.post(ctx, token, unlikeRecipeMutation, map[string]any{"recipe_id": recipeID}, nil)
}

// BookmarkRecipe implements [QueryAdapter].
func (h *HTTPAdapter) BookmarkRecipe(ctx context.Context, token, recipeID string) error {
	return h.post(ctx, token, bookmarkRecipeMutation, map[string]any{"recipe_id": recipeID}, nil)
}

// RemoveBookmark implements [QueryAdapter].
func (h *HTTPAdapter) RemoveBookmark(ctx context.Context, token, recipeID string) error {
	return h.post(ctx, token, removeBookmarkMutation, map[string]any{"recipe_id": recipeID}, nil)
}

// RateRecipe implements [QueryAdapter].
func (h *HTTPAdapter) RateRecipe(ctx context.Context, token, recipeID string, rating float64) error {
	variables := map[string]any{
		"recipe_id": recipeID,
		"rating":    rating,
	}

	return h.post(ctx, token, rateRecipeMutation, variables, nil)
}
