package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/checkout"
	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
)

// SimulateRequest describes one end-to-end order run.
type SimulateRequest struct {
	Customer      string
	Email         string
	ProductName   string
	Crust         string
	Sauce         string
	Cheese        string
	Size          product.Size
	Toppings      []string
	ExtraCheese   bool
	Packaging     bool
	Delivery      order.DeliveryOption
	Address       string
	PromoCode     string
	PaymentMethod string
	Points        int
	Rating        int
	Comments      string
	SaveFavorite  bool
}

// SimulateResult reports what happened.
type SimulateResult struct {
	Order   *order.Order
	Receipt checkout.Receipt
}

// Simulate signs the customer in, then builds, orders, pays for and tracks
// one product until it is delivered.
func (a *App) Simulate(ctx context.Context, req SimulateRequest) (SimulateResult, error) {
	if err := a.Session.Login(req.Customer, req.Email); err != nil {
		return SimulateResult{}, err
	}

	base, err := a.Menu.Quote(product.NewBuilder().
		Name(req.ProductName).
		Crust(req.Crust).
		Sauce(req.Sauce).
		Cheese(req.Cheese).
		Size(req.Size).
		Toppings(req.Toppings...))
	if err != nil {
		return SimulateResult{}, err
	}
	var item product.Item = base
	if req.ExtraCheese {
		item = product.Wrap(item, product.ExtraCheese)
	}
	if req.Packaging {
		item = product.Wrap(item, product.SpecialPackaging)
	}

	o, err := a.Checkout.PlaceOrder(checkout.PlaceOrderRequest{
		Product:  item,
		Delivery: req.Delivery,
		Address:  req.Address,
	})
	if err != nil {
		return SimulateResult{}, err
	}

	if req.PromoCode != "" {
		if err := a.Checkout.ApplyPromotion(o, req.PromoCode); err != nil {
			a.Logger.Warn("promotion not applied", zap.String("code", req.PromoCode), zap.Error(err))
		}
	}

	method, err := checkoutMethod(req.PaymentMethod)
	if err != nil {
		return SimulateResult{}, err
	}
	receipt, err := a.Checkout.Pay(ctx, o, method, req.Points)
	if err != nil {
		return SimulateResult{}, err
	}

	if req.SaveFavorite {
		if _, err := a.Checkout.SaveFavorite(req.Email, item); err != nil {
			return SimulateResult{}, err
		}
	}

	if err := a.Tracker.Run(ctx, o); err != nil {
		return SimulateResult{}, fmt.Errorf("tracking %s: %w", o.ID(), err)
	}

	if req.Rating > 0 {
		if err := a.Checkout.SubmitFeedback(o, req.Rating, req.Comments); err != nil {
			return SimulateResult{}, err
		}
	}
	return SimulateResult{Order: o, Receipt: receipt}, nil
}

func checkoutMethod(name string) (checkout.PaymentMethod, error) {
	if name == "" {
		return checkout.CreditCard{}, nil
	}
	return checkout.ParsePaymentMethod(name)
}
