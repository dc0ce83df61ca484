package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
	"github.com/Madhavee/PizzaOrderingSystem/internal/transport"
)

// promotionAdmin is the operator surface shared by local storage and a
// running server.
type promotionAdmin interface {
	List(ctx context.Context, all bool) ([]promotion.Promotion, error)
	Add(ctx context.Context, p promotion.Promotion) error
	Deactivate(ctx context.Context, code string) (bool, error)
	Remove(ctx context.Context, code string) (bool, error)
}

type localPromotions struct {
	catalog *promotion.Catalog
}

func (l localPromotions) List(_ context.Context, all bool) ([]promotion.Promotion, error) {
	if all {
		return l.catalog.AllPromotions(), nil
	}
	return l.catalog.ActivePromotions(), nil
}

func (l localPromotions) Add(_ context.Context, p promotion.Promotion) error {
	return l.catalog.AddPromotion(p)
}

func (l localPromotions) Deactivate(_ context.Context, code string) (bool, error) {
	return l.catalog.DeactivatePromotion(code), nil
}

func (l localPromotions) Remove(_ context.Context, code string) (bool, error) {
	return l.catalog.RemovePromotion(code), nil
}

type remotePromotions struct {
	conn   *grpc.ClientConn
	client *transport.Client
}

func dialPromotions(addr string) (*remotePromotions, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &remotePromotions{conn: conn, client: transport.NewClient(conn)}, nil
}

func (r *remotePromotions) Close() error {
	return r.conn.Close()
}

func (r *remotePromotions) List(ctx context.Context, all bool) ([]promotion.Promotion, error) {
	if all {
		return r.client.ListAll(ctx)
	}
	return r.client.ListActive(ctx)
}

func (r *remotePromotions) Add(ctx context.Context, p promotion.Promotion) error {
	_, err := r.client.Add(ctx, p)
	return err
}

func (r *remotePromotions) Deactivate(ctx context.Context, code string) (bool, error) {
	return r.client.Deactivate(ctx, code)
}

func (r *remotePromotions) Remove(ctx context.Context, code string) (bool, error) {
	return r.client.Remove(ctx, code)
}

func parseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t, nil
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return t.Format(time.DateOnly)
}
