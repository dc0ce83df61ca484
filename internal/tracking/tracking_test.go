package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
)

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func newOrder(t *testing.T) *order.Order {
	o, err := order.New(order.Params{
		ID:      "ORD-TEST",
		Total:   decimal.NewFromInt(25),
		Product: product.NewBuilder().Name("Custom").Build(),
	})
	require.NoError(t, err)
	return o
}

func TestNATSObserver_publishesEachTransition(t *testing.T) {
	pub := &fakePublisher{}
	o := newOrder(t)
	o.AddObserver(NewNATSObserver(pub, "pizzeria.orders.status", zaptest.NewLogger(t)))

	o.NextState()
	o.PrevState()
	o.PrevState()

	require.Len(t, pub.payloads, 3)
	assert.Equal(t, "pizzeria.orders.status", pub.subjects[0])

	first, err := DecodeStatusEvent(pub.payloads[0])
	require.NoError(t, err)
	assert.Equal(t, "ORD-TEST", first["order_id"])
	assert.Equal(t, "IN_PREPARATION", first["status"])
	assert.Equal(t, "In Preparation", first["label"])
	assert.Equal(t, true, first["moved"])
	assert.Equal(t, "25.00", first["total"])

	last, err := DecodeStatusEvent(pub.payloads[2])
	require.NoError(t, err)
	assert.Equal(t, "ORDER_PLACED", last["status"])
	assert.Equal(t, false, last["moved"])
	assert.Equal(t, "backward", last["direction"])
}

func TestNATSObserver_publishFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	o := newOrder(t)
	o.AddObserver(NewNATSObserver(&fakePublisher{err: errors.New("no servers")}, "s", zap.New(core)))

	assert.True(t, o.NextState())
	assert.Equal(t, 1, logs.FilterMessage("failed to publish status event").Len())
}

func TestLogObserver_logsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	o := newOrder(t)
	o.AddObserver(NewLogObserver(zap.New(core)))

	o.NextState()
	o.PrevState()
	o.PrevState()

	assert.Equal(t, 2, logs.FilterMessage("order status changed").Len())
	assert.Equal(t, 1, logs.FilterMessage("order status unchanged").Len())
}

func TestTracker_drivesOrderToDelivered(t *testing.T) {
	o := newOrder(t)
	var count int
	var mu sync.Mutex
	o.AddObserver(&countingObserver{mu: &mu, n: &count})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := NewTracker(5*time.Millisecond, zaptest.NewLogger(t)).Run(ctx, o)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, o.Status())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestTracker_stopsOnCancel(t *testing.T) {
	o := newOrder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTracker(time.Hour, nil).Run(ctx, o)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, order.StatusOrderPlaced, o.Status())
}

func TestTracker_deliveredOrderReturnsImmediately(t *testing.T) {
	o := newOrder(t)
	for o.NextState() {
	}

	err := NewTracker(time.Hour, nil).Run(context.Background(), o)
	assert.NoError(t, err)
}

type countingObserver struct {
	mu *sync.Mutex
	n  *int
}

func (c *countingObserver) Notify(order.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*c.n++
}
