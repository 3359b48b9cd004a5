package lease_sweep

import (
	"context"
	"time"

	"tracking/pkg/logger"
)

type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

type LeaseSweep struct {
	log      logger.Logger
	sweeper  Sweeper
	interval time.Duration
}

func NewLeaseSweep(log logger.Logger, sweeper Sweeper, interval time.Duration) *LeaseSweep {
	return &LeaseSweep{
		log:      log,
		sweeper:  sweeper,
		interval: interval,
	}
}

func (l *LeaseSweep) TTL() time.Duration {
	return l.interval
}

func (l *LeaseSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	removed, err := l.sweeper.Sweep(ctxWithTimeout)

	if removed > 0 {
		l.log.With(
			logger.NewField("expired_leases", removed),
		).Info("idempotency lease sweep")
	}

	return err
}

func (l *LeaseSweep) Info() string {
	return "idempotency lease sweep"
}
