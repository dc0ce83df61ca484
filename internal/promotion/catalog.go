package promotion

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/notify"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Store persists the catalog. Load returns an empty slice when nothing was
// saved yet.
type Store interface {
	Load() ([]Promotion, error)
	Save(promotions []Promotion) error
}

// ChangeKind identifies a catalog mutation.
type ChangeKind int

const (
	Added ChangeKind = iota
	Deactivated
	Removed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Deactivated:
		return "deactivated"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Change describes a completed catalog mutation.
type Change struct {
	Kind      ChangeKind
	Promotion Promotion
}

// Listener is notified after every successful mutation, once it has been
// persisted.
type Listener = notify.Observer[Change]

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the time source used for validity checks.
func WithClock(clock Clock) Option {
	return func(c *Catalog) { c.now = clock }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) { c.logger = logger }
}

// Catalog is the shared promotion list. It loads lazily on first use and
// serializes all access behind a mutex.
type Catalog struct {
	store  Store
	now    Clock
	logger *zap.Logger

	loadOnce   sync.Once
	mu         sync.Mutex
	promotions []Promotion
	listeners  notify.Hub[Change]
}

// NewCatalog builds a catalog backed by store. A nil store keeps the
// catalog in memory only.
func NewCatalog(store Store, opts ...Option) *Catalog {
	c := &Catalog{
		store:  store,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) ensureLoaded() {
	c.loadOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		var loaded []Promotion
		if c.store != nil {
			var err error
			loaded, err = c.store.Load()
			if err != nil {
				c.logger.Warn("failed to load promotions, seeding defaults", zap.Error(err))
				loaded = nil
			}
		}
		if len(loaded) == 0 {
			c.promotions = DefaultPromotions()
			c.persist()
			c.logger.Info("seeded default promotions", zap.Int("count", len(c.promotions)))
			return
		}
		c.promotions = loaded
	})
}

// persist must be called with mu held.
func (c *Catalog) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(slices.Clone(c.promotions)); err != nil {
		c.logger.Warn("failed to save promotions", zap.Error(err))
	}
}

// ActivePromotions returns the promotions active today, in catalog order.
func (c *Catalog) ActivePromotions() []Promotion {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.now()
	var active []Promotion
	for _, p := range c.promotions {
		if p.IsActiveOn(today) {
			active = append(active, p)
		}
	}
	return active
}

// AllPromotions returns every promotion, including inactive and expired ones.
func (c *Catalog) AllPromotions() []Promotion {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.promotions)
}

// ValidatePromoCode returns the first promotion active today whose code
// matches and whose condition is ORDER or equals condition. It returns a
// NOT_FOUND error otherwise.
func (c *Catalog) ValidatePromoCode(code, condition string) (Promotion, error) {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.now()
	for _, p := range c.promotions {
		if p.IsActiveOn(today) && p.Matches(code, condition) {
			return p, nil
		}
	}
	return Promotion{}, pizzeria.NewNotFound(ErrMsgNoSuchPromotion + " " + code)
}

// AddPromotion appends p as an active promotion.
func (c *Catalog) AddPromotion(p Promotion) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Code = strings.TrimSpace(p.Code)
	p.Active = true

	c.ensureLoaded()
	c.mu.Lock()
	if c.indexOf(p.Code) >= 0 {
		c.mu.Unlock()
		return pizzeria.NewFailedPreconditionf("%s: %s", ErrMsgCodeExists, p.Code)
	}
	c.promotions = append(c.promotions, p)
	c.persist()
	c.mu.Unlock()

	c.logger.Info("promotion added", zap.String("code", p.Code))
	c.listeners.Publish(Change{Kind: Added, Promotion: p})
	return nil
}

// DeactivatePromotion clears the active flag of the promotion with the given
// code. It reports whether a promotion matched.
func (c *Catalog) DeactivatePromotion(code string) bool {
	c.ensureLoaded()
	c.mu.Lock()
	i := c.indexOf(code)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.promotions[i].Active = false
	p := c.promotions[i]
	c.persist()
	c.mu.Unlock()

	c.logger.Info("promotion deactivated", zap.String("code", p.Code))
	c.listeners.Publish(Change{Kind: Deactivated, Promotion: p})
	return true
}

// RemovePromotion deletes the promotion with the given code. It reports
// whether a promotion matched.
func (c *Catalog) RemovePromotion(code string) bool {
	c.ensureLoaded()
	c.mu.Lock()
	i := c.indexOf(code)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	p := c.promotions[i]
	c.promotions = slices.Delete(c.promotions, i, i+1)
	c.persist()
	c.mu.Unlock()

	c.logger.Info("promotion removed", zap.String("code", p.Code))
	c.listeners.Publish(Change{Kind: Removed, Promotion: p})
	return true
}

// AddListener registers l. Adding the same listener twice has no effect.
func (c *Catalog) AddListener(l Listener) {
	c.listeners.Add(l)
}

// RemoveListener unregisters l.
func (c *Catalog) RemoveListener(l Listener) {
	c.listeners.Remove(l)
}

// indexOf must be called with mu held.
func (c *Catalog) indexOf(code string) int {
	return slices.IndexFunc(c.promotions, func(p Promotion) bool {
		return strings.EqualFold(p.Code, code)
	})
}
