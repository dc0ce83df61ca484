package tracking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
)

// Tracker advances an order one stage per tick until it is delivered.
type Tracker struct {
	interval time.Duration
	logger   *zap.Logger
}

func NewTracker(interval time.Duration, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{interval: interval, logger: logger}
}

// Run blocks until o reaches Delivered or ctx is cancelled.
func (t *Tracker) Run(ctx context.Context, o *order.Order) error {
	if o.Status().IsDelivered() {
		return nil
	}
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("tracking stopped",
				zap.String("order_id", o.ID()),
				zap.String("status", o.CurrentStatus()),
			)
			return ctx.Err()
		case <-ticker.C:
			o.NextState()
			if o.Status().IsDelivered() {
				t.logger.Info("order delivered", zap.String("order_id", o.ID()))
				return nil
			}
		}
	}
}
