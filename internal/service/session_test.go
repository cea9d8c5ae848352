package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/galley-app/galley-client/internal/adapter"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/mock"
	"github.com/galley-app/galley-client/internal/store"
	"github.com/galley-app/galley-client/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionVault, *mock.MockAuthAdapter) {
	t.Helper()
	mockVault := mock.NewMockSessionVault(ctrl)
	mockAuth := mock.NewMockAuthAdapter(ctrl)

	svc := NewSessionService(mockVault, mockAuth, logger.Nop()).(*sessionService)
	return svc, mockVault, mockAuth
}

func validProfile() models.RegisterProfile {
	return models.RegisterProfile{
		Email:    "cook@example.com",
		Username: "cook",
		FullName: "Test Cook",
		Password: "long-enough-password",
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1", Email: "a@b.com", Username: "a"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)

	result := svc.Login(ctx, "a@b.com", "pw")
	require.True(t, result.Success)
	assert.Empty(t, result.Error)

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "t1", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "u1", session.User.ID)
}

func TestSessionService_Login_ServerMessageWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Login(ctx, "a@b.com", "wrong").
		Return(models.AuthResponse{}, fmt.Errorf("%w: invalid credentials", adapter.ErrUnauthorized))

	result := svc.Login(ctx, "a@b.com", "wrong")
	require.False(t, result.Success)
	assert.Equal(t, "invalid credentials", result.Error)

	session := svc.Session()
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
	assert.Empty(t, session.Token)
}

func TestSessionService_Login_FailureLeavesExistingSessionUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	mockAuth.EXPECT().Login(ctx, "other@b.com", "pw").
		Return(models.AuthResponse{}, errors.New("connection refused"))
	require.False(t, svc.Login(ctx, "other@b.com", "pw").Success)

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "t1", session.Token)
}

func TestSessionService_Login_InvalidResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{}, adapter.ErrInvalidResponse)

	result := svc.Login(ctx, "a@b.com", "pw")
	require.False(t, result.Success)
	assert.Equal(t, adapter.ErrInvalidResponse.Error(), result.Error)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	profile := validProfile()

	user := models.User{ID: "u2", Email: profile.Email, Username: profile.Username}
	mockAuth.EXPECT().Register(ctx, profile).
		Return(models.AuthResponse{Token: "t2", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t2", user).Return(nil)

	result := svc.Register(ctx, profile)
	require.True(t, result.Success)

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "u2", session.User.ID)
}

func TestSessionService_Register_InvalidProfileSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	tests := []struct {
		name   string
		mutate func(p *models.RegisterProfile)
	}{
		{"missing email", func(p *models.RegisterProfile) { p.Email = "" }},
		{"malformed email", func(p *models.RegisterProfile) { p.Email = "not-an-email" }},
		{"short username", func(p *models.RegisterProfile) { p.Username = "ab" }},
		{"short password", func(p *models.RegisterProfile) { p.Password = "short" }},
		{"missing full name", func(p *models.RegisterProfile) { p.FullName = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			result := svc.Register(context.Background(), profile)
			require.False(t, result.Success)
			assert.Equal(t, msgInvalidProfile, result.Error)
			assert.False(t, svc.Session().Authenticated)
		})
	}
}

func TestSessionService_Register_ServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	profile := validProfile()

	mockAuth.EXPECT().Register(ctx, profile).
		Return(models.AuthResponse{}, fmt.Errorf("%w: email already registered", adapter.ErrConflict))

	result := svc.Register(ctx, profile)
	require.False(t, result.Success)
	assert.Equal(t, "email already registered", result.Error)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionService_Logout_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	mockVault.EXPECT().ClearSession(ctx).Return(nil).Times(2)

	svc.Logout(ctx)
	session := svc.Session()
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
	assert.Empty(t, session.Token)

	// Logging out when already anonymous has the same observable effect.
	svc.Logout(ctx)
	assert.False(t, svc.Session().Authenticated)
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestSessionService_Init_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1", Email: "a@b.com"}
	mockVault.EXPECT().LoadSession(ctx).Return("t1", user, nil)

	svc.Init(ctx)

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, "u1", session.User.ID)
}

func TestSessionService_Init_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockVault.EXPECT().LoadSession(ctx).Return("", models.User{}, store.ErrSessionNotFound)

	svc.Init(ctx)
	assert.False(t, svc.Session().Authenticated)
}

func TestSessionService_Init_CorruptedSessionClearsVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockVault.EXPECT().LoadSession(ctx).Return("", models.User{}, store.ErrSessionCorrupted)
	mockVault.EXPECT().ClearSession(ctx).Return(nil)

	svc.Init(ctx)
	assert.False(t, svc.Session().Authenticated)
}

// ── RefreshToken ─────────────────────────────────────────────────────────────

func TestSessionService_RefreshToken_UpdatesOnlyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1", Email: "a@b.com"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	mockAuth.EXPECT().Refresh(ctx, "t1").
		Return(models.RefreshResponse{Token: "t2"}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t2", user).Return(nil)

	require.True(t, svc.RefreshToken(ctx))

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "t2", session.Token)
	assert.Equal(t, user, *session.User)
}

func TestSessionService_RefreshToken_FailureLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	mockAuth.EXPECT().Refresh(ctx, "t1").
		Return(models.RefreshResponse{}, fmt.Errorf("%w: token expired", adapter.ErrUnauthorized))
	mockVault.EXPECT().ClearSession(ctx).Return(nil)

	require.False(t, svc.RefreshToken(ctx))

	session := svc.Session()
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
	assert.Empty(t, session.Token)
}

func TestSessionService_RefreshToken_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	assert.False(t, svc.RefreshToken(context.Background()))
}

func TestSessionService_RefreshToken_FailureSparesNewerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	oldUser := models.User{ID: "u1"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &oldUser}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", oldUser).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	newUser := models.User{ID: "u2"}
	// While the refresh request is in flight, a fresh login replaces the
	// session. The failed refresh must not tear the new session down.
	mockAuth.EXPECT().Refresh(ctx, "t1").DoAndReturn(
		func(ctx context.Context, _ string) (models.RefreshResponse, error) {
			mockAuth.EXPECT().Login(ctx, "b@c.com", "pw2").
				Return(models.AuthResponse{Token: "t9", User: &newUser}, nil)
			mockVault.EXPECT().SaveSession(ctx, "t9", newUser).Return(nil)
			require.True(t, svc.Login(ctx, "b@c.com", "pw2").Success)

			return models.RefreshResponse{}, errors.New("connection reset")
		},
	)

	require.False(t, svc.RefreshToken(ctx))

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "t9", session.Token)
	assert.Equal(t, "u2", session.User.ID)
}

func TestSessionService_RefreshToken_SuccessDiscardedWhenSessionChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	// A logout lands while the refresh is in flight; the stale token from
	// the refresh must not resurrect the session.
	mockAuth.EXPECT().Refresh(ctx, "t1").DoAndReturn(
		func(ctx context.Context, _ string) (models.RefreshResponse, error) {
			mockVault.EXPECT().ClearSession(ctx).Return(nil)
			svc.Logout(ctx)
			return models.RefreshResponse{Token: "t2"}, nil
		},
	)

	require.False(t, svc.RefreshToken(ctx))
	assert.False(t, svc.Session().Authenticated)
}

// ── Snapshot semantics ───────────────────────────────────────────────────────

func TestSessionService_SessionSnapshotIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockAuth := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u1", Username: "cook"}
	mockAuth.EXPECT().Login(ctx, "a@b.com", "pw").
		Return(models.AuthResponse{Token: "t1", User: &user}, nil)
	mockVault.EXPECT().SaveSession(ctx, "t1", user).Return(nil)
	require.True(t, svc.Login(ctx, "a@b.com", "pw").Success)

	snapshot := svc.Session()
	snapshot.User.Username = "intruder"

	assert.Equal(t, "cook", svc.Session().User.Username)
}
