// Package workers runs the client's background jobs. The only job today is
// the token refresh worker.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/internal/service"
	"github.com/galley-app/galley-client/internal/utils"
)

// retryInterval is how long the job sleeps when the current token cannot be
// scheduled from (no session, unparseable token, or a failed refresh).
const retryInterval = time.Minute

// RefreshJob keeps the session token fresh: it reads the expiry claim of the
// current token and calls RefreshToken ahead of it by the configured margin.
// The job survives logout and login cycles; with no session it simply polls
// until one appears.
type RefreshJob interface {
	// Start launches the background goroutine. Any previously running
	// job is stopped first. The goroutine exits when ctx is cancelled or
	// Stop is called.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

type refreshJob struct {
	sessions service.SessionService
	margin   time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refresh job that renews the token margin ahead of
// its expiry. The job is idle until Start is called.
func NewRefreshJob(sessions service.SessionService, margin time.Duration, logger *logger.Logger) RefreshJob {
	if margin <= 0 {
		margin = 2 * time.Minute
	}
	return &refreshJob{
		sessions: sessions,
		margin:   margin,
		logger:   logger,
	}
}

func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		for {
			wait := j.nextWait()

			select {
			case <-jobCtx.Done():
				return
			case <-time.After(wait):
			}

			session := j.sessions.Session()
			if !session.Authenticated {
				continue
			}
			if refreshed := j.sessions.RefreshToken(jobCtx); refreshed {
				j.logger.Debug().
					Str("func", "refreshJob").
					Msg("session token refreshed")
			}
		}
	}()
}

// nextWait computes the time until the next refresh attempt: the token's
// expiry minus the margin, or a short retry interval when there is nothing
// to schedule from.
func (j *refreshJob) nextWait() time.Duration {
	session := j.sessions.Session()
	if !session.Authenticated {
		return retryInterval
	}

	expiresAt, err := utils.TokenExpiresAt(session.Token)
	if err != nil {
		j.logger.Warn().
			Err(err).
			Str("func", "refreshJob.nextWait").
			Msg("cannot read token expiry, falling back to retry interval")
		return retryInterval
	}

	wait := time.Until(expiresAt.Add(-j.margin))
	if wait < 0 {
		// Already inside the margin; refresh immediately on the next tick.
		return time.Millisecond
	}
	return wait
}

func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
