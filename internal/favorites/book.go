// Package favorites keeps customers' saved products.
package favorites

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
	"github.com/Madhavee/PizzaOrderingSystem/internal/storage"
)

// Favorite is a saved product. ID is derived from the owner and the product
// name, so saving the same product again replaces the earlier entry.
type Favorite struct {
	ID      string       `json:"id" yaml:"id"`
	Owner   string       `json:"owner" yaml:"owner"`
	Product product.Spec `json:"product" yaml:"product"`
	SavedAt time.Time    `json:"saved_at" yaml:"saved_at"`
}

// Item restores the saved product.
func (f Favorite) Item() (product.Item, error) {
	return product.FromSpec(f.Product)
}

// Book is the favorites collection. It loads once at construction and saves
// after every change.
type Book struct {
	mu     sync.Mutex
	store  storage.Store[Favorite]
	logger *zap.Logger
	items  []Favorite
}

// NewBook loads favorites from store. A load failure starts an empty book.
func NewBook(store storage.Store[Favorite], logger *zap.Logger) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Book{store: store, logger: logger}
	items, err := store.Load()
	if err != nil {
		logger.Warn("failed to load favorites", zap.Error(err))
	}
	b.items = items
	return b
}

// Save records item as a favorite of owner.
func (b *Book) Save(owner string, item product.Item) (Favorite, error) {
	owner = strings.TrimSpace(owner)
	if err := pizzeria.RequireNotBlank(owner, "Owner is required"); err != nil {
		return Favorite{}, err
	}
	if err := pizzeria.RequireNotBlank(item.Name(), "Product name is required"); err != nil {
		return Favorite{}, err
	}
	f := Favorite{
		ID:      pizzeria.FavoriteRoot(owner, item.Name()).String(),
		Owner:   owner,
		Product: product.ToSpec(item),
		SavedAt: time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(f.ID); i >= 0 {
		b.items[i] = f
	} else {
		b.items = append(b.items, f)
	}
	b.persist()
	return f, nil
}

// List returns owner's favorites in the order they were first saved.
func (b *Book) List(owner string) []Favorite {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Favorite
	for _, f := range b.items {
		if strings.EqualFold(f.Owner, owner) {
			out = append(out, f)
		}
	}
	return out
}

// Remove deletes owner's favorite with the given product name.
func (b *Book) Remove(owner, productName string) bool {
	id := pizzeria.FavoriteRoot(strings.TrimSpace(owner), productName).String()

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.items = slices.Delete(b.items, i, i+1)
	b.persist()
	return true
}

func (b *Book) indexOf(id string) int {
	return slices.IndexFunc(b.items, func(f Favorite) bool { return f.ID == id })
}

func (b *Book) persist() {
	if err := b.store.Save(slices.Clone(b.items)); err != nil {
		b.logger.Warn("failed to save favorites", zap.Error(err))
	}
}
