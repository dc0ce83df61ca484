// Package checkout runs the customer-facing flows that create and settle
// orders: placing, paying and leaving feedback.
package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/favorites"
	"github.com/Madhavee/PizzaOrderingSystem/internal/feedback"
	"github.com/Madhavee/PizzaOrderingSystem/internal/loyalty"
	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
)

// Authenticator reports whether the current customer is signed in.
type Authenticator interface {
	IsAuthenticated() bool
}

// Deps are the collaborators of a Service. Favorites and Observers are
// optional.
type Deps struct {
	Auth       Authenticator
	Chain      *product.Chain
	Promotions order.PromotionValidator
	Ledger     *loyalty.Ledger
	Feedback   *feedback.Book
	Favorites  *favorites.Book
	// Observers are attached to every order placed through the service.
	Observers []order.Observer
	Logger    *zap.Logger
}

// Service gates every order flow behind authentication.
type Service struct {
	deps   Deps
	logger *zap.Logger

	mu   sync.Mutex
	paid map[string]Receipt
}

func NewService(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Chain == nil {
		deps.Chain = product.DefaultChain(logger)
	}
	if deps.Feedback == nil {
		deps.Feedback = feedback.NewBook()
	}
	return &Service{deps: deps, logger: logger, paid: make(map[string]Receipt)}
}

// PlaceOrderRequest describes a new order.
type PlaceOrderRequest struct {
	ID       string
	Product  product.Item
	Delivery order.DeliveryOption
	Address  string
}

// Receipt summarizes a settled payment.
type Receipt struct {
	OrderID      string
	Method       string
	Amount       decimal.Decimal
	PointsUsed   int
	PointsEarned int
	Balance      int
}

func (s *Service) requireAuth() error {
	if s.deps.Auth == nil || !s.deps.Auth.IsAuthenticated() {
		return pizzeria.NewUnauthenticated(ErrMsgNotAuthenticated)
	}
	return nil
}

// PlaceOrder validates the product and opens an order priced at the
// product's price.
func (s *Service) PlaceOrder(req PlaceOrderRequest) (*order.Order, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if req.Product == nil {
		return nil, pizzeria.NewInvalidArgument(order.ErrMsgProductRequired)
	}
	if err := s.deps.Chain.Validate(req.Product); err != nil {
		return nil, err
	}
	o, err := order.New(order.Params{
		ID:         req.ID,
		Total:      req.Product.Price(),
		Product:    req.Product,
		Delivery:   req.Delivery,
		Address:    req.Address,
		Promotions: s.deps.Promotions,
	})
	if err != nil {
		return nil, err
	}
	for _, obs := range s.deps.Observers {
		o.AddObserver(obs)
	}
	s.logger.Info("order placed",
		zap.String("order_id", o.ID()),
		zap.String("product", req.Product.Name()),
		zap.String("total", o.Total().StringFixed(2)),
		zap.String("delivery", o.Delivery().String()),
	)
	return o, nil
}

// ApplyPromotion applies code to o.
func (s *Service) ApplyPromotion(o *order.Order, code string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if err := o.ApplyPromotion(code); err != nil {
		return err
	}
	p, _ := o.Promotion()
	s.logger.Info("promotion applied",
		zap.String("order_id", o.ID()),
		zap.String("code", p.Code),
		zap.String("total", o.Total().StringFixed(2)),
	)
	return nil
}

// Pay redeems points against o, charges the remainder through method and
// credits the points earned on the amount charged. Only the points needed to
// cover the total are redeemed, and they are returned if the charge fails.
func (s *Service) Pay(ctx context.Context, o *order.Order, method PaymentMethod, points int) (Receipt, error) {
	if err := s.requireAuth(); err != nil {
		return Receipt{}, err
	}
	if method == nil {
		return Receipt{}, pizzeria.NewInvalidArgument(ErrMsgUnknownPayment)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, done := s.paid[o.ID()]; done {
		return Receipt{}, pizzeria.NewFailedPrecondition(ErrMsgAlreadyPaid)
	}

	if points < 0 {
		return Receipt{}, pizzeria.NewInvalidArgument(loyalty.ErrMsgPointsNegative)
	}
	if needed := loyalty.PointsToCover(o.Total()); points > needed {
		points = needed
	}
	if _, err := s.deps.Ledger.Redeem(points); err != nil {
		return Receipt{}, err
	}
	discount := loyalty.PointsValue(points)
	amount := pizzeria.FloorZero(o.Total().Sub(discount))

	if err := method.Process(ctx, amount); err != nil {
		if refundErr := s.deps.Ledger.Refund(points); refundErr != nil {
			s.logger.Error("failed to refund points", zap.Error(refundErr))
		}
		s.logger.Warn("payment failed",
			zap.String("order_id", o.ID()),
			zap.String("method", method.Type()),
			zap.Error(err),
		)
		return Receipt{}, fmt.Errorf("%s: %w", ErrMsgPaymentDeclined, err)
	}

	if err := o.ApplyDiscount(discount); err != nil {
		return Receipt{}, err
	}
	earned := loyalty.PointsEarned(o.Total())
	balance, err := s.deps.Ledger.Add(earned)
	if err != nil {
		return Receipt{}, err
	}

	r := Receipt{
		OrderID:      o.ID(),
		Method:       method.Type(),
		Amount:       o.Total(),
		PointsUsed:   points,
		PointsEarned: earned,
		Balance:      balance,
	}
	s.paid[o.ID()] = r
	s.logger.Info("payment completed",
		zap.String("order_id", r.OrderID),
		zap.String("method", r.Method),
		zap.String("amount", r.Amount.StringFixed(2)),
		zap.Int("points_used", r.PointsUsed),
		zap.Int("points_earned", r.PointsEarned),
		zap.Int("balance", r.Balance),
	)
	return r, nil
}

// SubmitFeedback rates o and records the comments.
func (s *Service) SubmitFeedback(o *order.Order, rating int, comments string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if err := o.SetRating(rating); err != nil {
		return err
	}
	o.SetFeedback(comments)
	return s.deps.Feedback.Add(feedback.Entry{
		OrderID:     o.ID(),
		ProductName: o.Product().Name(),
		Rating:      rating,
		Comments:    comments,
	})
}

// SaveFavorite stores item in owner's favorites.
func (s *Service) SaveFavorite(owner string, item product.Item) (favorites.Favorite, error) {
	if err := s.requireAuth(); err != nil {
		return favorites.Favorite{}, err
	}
	if s.deps.Favorites == nil {
		return favorites.Favorite{}, pizzeria.NewFailedPrecondition("Favorites are not available")
	}
	return s.deps.Favorites.Save(owner, item)
}

// Feedback exposes the feedback book.
func (s *Service) Feedback() *feedback.Book {
	return s.deps.Feedback
}
