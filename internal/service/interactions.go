package service

import (
	"context"
	"fmt"

	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/models"
)

type interactionService struct {
	queries adapter.QueryAdapter
	tokens  TokenSource
	logger  *logger.Logger
}

func NewInteractionService(queries adapter.QueryAdapter, tokens TokenSource, logger *logger.Logger) InteractionService {
	return &interactionService{
		queries: queries,
		tokens:  tokens,
		logger:  logger,
	}
}

func (i *interactionService) Facts(ctx context.Context, recipeID string) models.InteractionFacts {
	session := i.tokens.Session()
	if !session.Authenticated || recipeID == "" {
		// No network call for an anonymous user or a missing recipe.
		return models.InteractionFacts{}
	}

	rows, err := i.queries.InteractionRows(ctx, session.Token, session.User.ID, recipeID)
	if err != nil {
		i.logger.Err(err).
			Str("func", "interactionService.Facts").
			Str("recipe_id", recipeID).
			Msg("interaction lookup failed")
		return models.InteractionFacts{}
	}

	return foldInteractionRows(rows)
}

// foldInteractionRows collapses the raw row lists into the four facts. Row
// presence encodes the boolean facts; the first rating row carries the
// user's rating.
func foldInteractionRows(rows models.InteractionRows) models.InteractionFacts {
	facts := models.InteractionFacts{
		Liked:      len(rows.Likes) > 0,
		Bookmarked: len(rows.Bookmarks) > 0,
		Purchased:  len(rows.Purchases) > 0,
	}
	if len(rows.Ratings) > 0 {
		rating := rows.Ratings[0].Rating
		facts.Rating = &rating
	}
	return facts
}

func (i *interactionService) Like(ctx context.Context, recipeID string) error {
	return i.mutate(ctx, "like", recipeID, i.queries.LikeRecipe)
}

func (i *interactionService) Unlike(ctx context.Context, recipeID string) error {
	return i.mutate(ctx, "unlike", recipeID, i.queries.UnlikeRecipe)
}

func (i *interactionService) Bookmark(ctx context.Context, recipeID string) error {
	return i.mutate(ctx, "bookmark", recipeID, i.queries.BookmarkRecipe)
}

func (i *interactionService) RemoveBookmark(ctx context.Context, recipeID string) error {
	return i.mutate(ctx, "remove bookmark", recipeID, i.queries.RemoveBookmark)
}

func (i *interactionService) Rate(ctx context.Context, recipeID string, rating float64) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	token := i.tokens.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	if err := i.queries.RateRecipe(ctx, token, recipeID, rating); err != nil {
		i.logger.Err(err).
			Str("func", "interactionService.Rate").
			Str("recipe_id", recipeID).
			Float64("rating", rating).
			Msg("rate mutation failed")
		return fmt.Errorf("failed to rate recipe: %w", err)
	}
	return nil
}

func (i *interactionService) mutate(ctx context.Context, name, recipeID string, call func(ctx context.Context, token, recipeID string) error) error {
	token := i.tokens.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	if err := call(ctx, token, recipeID); err != nil {
		i.logger.Err(err).
			Str("func", "interactionService.mutate").
			Str("mutation", name).
			Str("recipe_id", recipeID).
			Msg("interaction mutation failed")
		return fmt.Errorf("failed to %s recipe: %w", name, err)
	}
	return nil
}
