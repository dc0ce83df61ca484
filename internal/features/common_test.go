// Package features runs the Gherkin scenarios under /features against the
// domain packages.
package features

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
	"github.com/Madhavee/PizzaOrderingSystem/internal/storage"
)

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func expectStatus(err error, status string) error {
	if err == nil {
		return errors.New("expected command to fail")
	}
	var cmdErr *pizzeria.CommandError
	if !errors.As(err, &cmdErr) {
		return fmt.Errorf("expected CommandError, got %T: %v", err, err)
	}
	if cmdErr.Code.String() != status {
		return fmt.Errorf("expected status %s, got %s", status, cmdErr.Code.String())
	}
	return nil
}

func expectMessage(err error, substring string) error {
	if err == nil {
		return errors.New("expected error but command succeeded")
	}
	if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(substring)) {
		return fmt.Errorf("expected error message to contain %q, got %q", substring, err.Error())
	}
	return nil
}

func expectAmount(got decimal.Decimal, want string) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !got.Equal(w) {
		return fmt.Errorf("expected %s, got %s", want, got.StringFixed(2))
	}
	return nil
}

// catalogOn builds a memory-backed default catalog whose clock is fixed to day.
func catalogOn(day string) (*promotion.Catalog, error) {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return nil, err
	}
	return promotion.NewCatalog(
		storage.NewMemoryStore[promotion.Promotion](),
		promotion.WithClock(func() time.Time { return t }),
	), nil
}
