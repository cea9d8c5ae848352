package workers

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/mock"
	"github.com/galley-app/galley-client/models"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func sessionWithToken(token string) models.Session {
	return models.Session{
		User:          &models.User{ID: "u1"},
		Token:         token,
		Authenticated: true,
	}
}

func TestRefreshJob_NextWait_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().Return(models.Session{})

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop()).(*refreshJob)
	assert.Equal(t, retryInterval, job.nextWait())
}

func TestRefreshJob_NextWait_SchedulesAheadOfExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().
		Return(sessionWithToken(signedToken(t, time.Now().Add(time.Hour))))

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop()).(*refreshJob)

	wait := job.nextWait()
	assert.Greater(t, wait, 57*time.Minute)
	assert.Less(t, wait, 58*time.Minute+time.Second)
}

func TestRefreshJob_NextWait_InsideMarginIsImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().
		Return(sessionWithToken(signedToken(t, time.Now().Add(30*time.Second))))

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop()).(*refreshJob)
	assert.Equal(t, time.Millisecond, job.nextWait())
}

func TestRefreshJob_NextWait_UnparseableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().Return(sessionWithToken("not-a-jwt"))

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop()).(*refreshJob)
	assert.Equal(t, retryInterval, job.nextWait())
}

func TestRefreshJob_RefreshesExpiringToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	session := sessionWithToken(signedToken(t, time.Now().Add(time.Second)))
	mockSessions.EXPECT().Session().Return(session).AnyTimes()

	refreshed := make(chan struct{})
	mockSessions.EXPECT().RefreshToken(gomock.Any()).DoAndReturn(
		func(context.Context) bool {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return true
		},
	).AnyTimes()

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop())
	job.Start(context.Background())
	defer job.Stop()

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("token was never refreshed")
	}
}

func TestRefreshJob_StopTerminatesGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().Return(models.Session{}).AnyTimes()

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop())
	job.Start(context.Background())
	job.Stop()

	// Stopping again is a no-op.
	job.Stop()
}

func TestRefreshJob_StartStopsPreviousJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mock.NewMockSessionService(ctrl)
	mockSessions.EXPECT().Session().Return(models.Session{}).AnyTimes()

	job := NewRefreshJob(mockSessions, 2*time.Minute, logger.Nop())
	job.Start(context.Background())
	job.Start(context.Background())
	job.Stop()
}
