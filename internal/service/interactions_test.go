package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/mock"
	"github.com/galley-app/galley-client/models"
)

func newTestInteractionSvc(t *testing.T, ctrl *gomock.Controller) (*interactionService, *mock.MockQueryAdapter, *mock.MockTokenSource) {
	t.Helper()
	mockQueries := mock.NewMockQueryAdapter(ctrl)
	mockTokens := mock.NewMockTokenSource(ctrl)

	svc := NewInteractionService(mockQueries, mockTokens, logger.Nop()).(*interactionService)
	return svc, mockQueries, mockTokens
}

func authenticatedSession() models.Session {
	return models.Session{
		User:          &models.User{ID: "u1"},
		Token:         "t1",
		Authenticated: true,
	}
}

func TestInteractionService_Facts_AnonymousSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens := newTestInteractionSvc(t, ctrl)

	mockTokens.EXPECT().Session().Return(models.Session{})

	facts := svc.Facts(context.Background(), "r1")
	assert.Equal(t, models.InteractionFacts{}, facts)
	assert.False(t, facts.Liked)
	assert.False(t, facts.Bookmarked)
	assert.Nil(t, facts.Rating)
	assert.False(t, facts.Purchased)
}

func TestInteractionService_Facts_EmptyRecipeIDSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens := newTestInteractionSvc(t, ctrl)

	mockTokens.EXPECT().Session().Return(authenticatedSession())

	assert.Equal(t, models.InteractionFacts{}, svc.Facts(context.Background(), ""))
}

func TestInteractionService_Facts_FoldsRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueries, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Session().Return(authenticatedSession())
	mockQueries.EXPECT().InteractionRows(ctx, "t1", "u1", "r1").
		Return(models.InteractionRows{
			Likes:   []models.IDRow{{ID: "l1"}},
			Ratings: []models.RatingRow{{ID: "rt1", Rating: 4.5}},
		}, nil)

	facts := svc.Facts(ctx, "r1")
	assert.True(t, facts.Liked)
	assert.False(t, facts.Bookmarked)
	require.NotNil(t, facts.Rating)
	assert.InDelta(t, 4.5, *facts.Rating, 0.001)
	assert.False(t, facts.Purchased)
}

func TestInteractionService_Facts_FetchFailureYieldsZeroFacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueries, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Session().Return(authenticatedSession())
	mockQueries.EXPECT().InteractionRows(ctx, "t1", "u1", "r1").
		Return(models.InteractionRows{}, adapter.ErrBadGateway)

	assert.Equal(t, models.InteractionFacts{}, svc.Facts(ctx, "r1"))
}

func Test_foldInteractionRows(t *testing.T) {
	rating := 3.0

	tests := []struct {
		name string
		rows models.InteractionRows
		want models.InteractionFacts
	}{
		{
			name: "no rows, no interaction",
			rows: models.InteractionRows{},
			want: models.InteractionFacts{},
		},
		{
			name: "all facts present",
			rows: models.InteractionRows{
				Likes:     []models.IDRow{{ID: "l1"}},
				Bookmarks: []models.IDRow{{ID: "b1"}},
				Ratings:   []models.RatingRow{{ID: "rt1", Rating: 3.0}},
				Purchases: []models.IDRow{{ID: "p1"}},
			},
			want: models.InteractionFacts{
				Liked:      true,
				Bookmarked: true,
				Rating:     &rating,
				Purchased:  true,
			},
		},
		{
			name: "bookmark only",
			rows: models.InteractionRows{Bookmarks: []models.IDRow{{ID: "b1"}}},
			want: models.InteractionFacts{Bookmarked: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, foldInteractionRows(tt.rows))
		})
	}
}

func TestInteractionService_Mutations_RequireAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Token().Return("").Times(5)

	assert.ErrorIs(t, svc.Like(ctx, "r1"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Unlike(ctx, "r1"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Bookmark(ctx, "r1"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.RemoveBookmark(ctx, "r1"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Rate(ctx, "r1", 4), ErrNotAuthenticated)
}

func TestInteractionService_Mutations_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueries, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Token().Return("t1").Times(4)
	mockQueries.EXPECT().LikeRecipe(ctx, "t1", "r1").Return(nil)
	mockQueries.EXPECT().UnlikeRecipe(ctx, "t1", "r1").Return(nil)
	mockQueries.EXPECT().BookmarkRecipe(ctx, "t1", "r1").Return(nil)
	mockQueries.EXPECT().RemoveBookmark(ctx, "t1", "r1").Return(nil)

	require.NoError(t, svc.Like(ctx, "r1"))
	require.NoError(t, svc.Unlike(ctx, "r1"))
	require.NoError(t, svc.Bookmark(ctx, "r1"))
	require.NoError(t, svc.RemoveBookmark(ctx, "r1"))
}

func TestInteractionService_Mutations_WrapTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueries, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().Token().Return("t1")
	mockQueries.EXPECT().LikeRecipe(ctx, "t1", "r1").
		Return(fmt.Errorf("%w: recipe not found", adapter.ErrNotFound))

	err := svc.Like(ctx, "r1")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestInteractionService_Rate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQueries, mockTokens := newTestInteractionSvc(t, ctrl)
	ctx := context.Background()

	// Out-of-range ratings never reach the wire.
	assert.ErrorIs(t, svc.Rate(ctx, "r1", 0), ErrInvalidRating)
	assert.ErrorIs(t, svc.Rate(ctx, "r1", 5.5), ErrInvalidRating)

	mockTokens.EXPECT().Token().Return("t1")
	mockQueries.EXPECT().RateRecipe(ctx, "t1", "r1", 4.0).Return(nil)
	require.NoError(t, svc.Rate(ctx, "r1", 4))
}
