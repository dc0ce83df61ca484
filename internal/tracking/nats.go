package tracking

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
)

// Publisher sends a payload to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher is a connection used only for publishing.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("pizzeria"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}

func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}

// NATSObserver publishes each status notification as a JSON event.
// Publish failures are logged, never returned to the order.
type NATSObserver struct {
	pub     Publisher
	subject string
	logger  *zap.Logger
}

func NewNATSObserver(pub Publisher, subject string, logger *zap.Logger) *NATSObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NATSObserver{pub: pub, subject: subject, logger: logger}
}

func (n *NATSObserver) Notify(s order.Snapshot) {
	data, err := EncodeStatusEvent(s)
	if err != nil {
		n.logger.Error("failed to encode status event", zap.String("order_id", s.ID), zap.Error(err))
		return
	}
	if err := n.pub.Publish(n.subject, data); err != nil {
		n.logger.Warn("failed to publish status event",
			zap.String("subject", n.subject),
			zap.String("order_id", s.ID),
			zap.Error(err),
		)
	}
}

// EncodeStatusEvent renders a snapshot as a protojson object.
func EncodeStatusEvent(s order.Snapshot) ([]byte, error) {
	event, err := structpb.NewStruct(map[string]any{
		"order_id":    s.ID,
		"status":      s.Status.Code(),
		"label":       s.Status.Label(),
		"direction":   s.Direction.String(),
		"moved":       s.Moved,
		"total":       s.Total.StringFixed(2),
		"promo_code":  s.PromoCode,
		"occurred_at": s.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(event)
}

// DecodeStatusEvent parses an event written by EncodeStatusEvent.
func DecodeStatusEvent(data []byte) (map[string]any, error) {
	var event structpb.Struct
	if err := protojson.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return event.AsMap(), nil
}
