// Package tracking follows orders through their lifecycle: it reports
// status changes to logs and NATS, and drives simulated progress.
package tracking

import (
	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
)

// LogObserver writes every status notification to the log.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (l *LogObserver) Notify(s order.Snapshot) {
	if !s.Moved {
		l.logger.Info("order status unchanged",
			zap.String("order_id", s.ID),
			zap.String("status", s.Status.Label()),
			zap.String("direction", s.Direction.String()),
		)
		return
	}
	l.logger.Info("order status changed",
		zap.String("order_id", s.ID),
		zap.String("status", s.Status.Label()),
		zap.String("direction", s.Direction.String()),
		zap.String("total", s.Total.StringFixed(2)),
	)
}
