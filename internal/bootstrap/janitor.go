package bootstrap

import (
	"context"
	"time"

	"msa-backend/internal/shared/telemetry"
)

// expiringStore is a session store whose expired records stay until purged.
type expiringStore interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// sweep drops expired session records and the artifact directories of
// sessions idle for two TTLs. Sessions that expire without a logout never
// reach Teardown, so this is the only path that frees their files.
func (a *App) sweep(ctx context.Context, now time.Time) {
	if store, ok := a.SessionStore.(expiringStore); ok {
		n, err := store.PurgeExpired(ctx)
		if err != nil {
			telemetry.Warn("janitor.purge_failed", map[string]any{"error": err})
		} else if n > 0 {
			telemetry.Info("janitor.sessions_purged", map[string]any{"count": n})
		}
	}
	if a.Registry != nil {
		a.Registry.SweepStale(ctx, now.Add(-2*a.Config.SessionTTL))
	}
}

// startJanitor runs sweep every interval until Close. A non-positive
// interval disables it.
func (a *App) startJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				a.sweep(ctx, now)
			}
		}
	}()
	stop := func() error {
		cancel()
		<-done
		return nil
	}
	// Stop before the connections it uses are closed.
	a.closers = append([]func() error{stop}, a.closers...)
}
