package favorites

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
	"github.com/Madhavee/PizzaOrderingSystem/internal/storage"
)

func decimalOf(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func veggie() product.Item {
	return product.Wrap(product.NewBuilder().
		Name("Veggie").
		Crust("Thin").
		Size(product.SizeLarge).
		Toppings("Olives", "Peppers").
		Price(decimalOf("23")).
		Build(), product.ExtraCheese)
}

func TestBook_saveListAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	book := NewBook(storage.NewFileStore[Favorite](path), zaptest.NewLogger(t))

	_, err := book.Save("jane@example.com", veggie())
	require.NoError(t, err)

	reloaded := NewBook(storage.NewFileStore[Favorite](path), zaptest.NewLogger(t))
	favs := reloaded.List("JANE@example.com")
	require.Len(t, favs, 1)

	item, err := favs[0].Item()
	require.NoError(t, err)
	assert.Equal(t, "Veggie with Extra Cheese", item.Name())
	assert.True(t, item.Price().Equal(decimalOf("24.5")))
	assert.Equal(t, []string{"Olives", "Peppers"}, item.Toppings())
}

func TestBook_savingSameProductReplaces(t *testing.T) {
	book := NewBook(storage.NewFileStore[Favorite](filepath.Join(t.TempDir(), "f.yaml")), nil)

	first, err := book.Save("jane@example.com", veggie())
	require.NoError(t, err)
	second, err := book.Save("jane@example.com", veggie())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, book.List("jane@example.com"), 1)
	assert.Empty(t, book.List("bob@example.com"))
}

func TestBook_remove(t *testing.T) {
	book := NewBook(storage.NewFileStore[Favorite](filepath.Join(t.TempDir(), "f.json")), nil)
	_, err := book.Save("jane@example.com", veggie())
	require.NoError(t, err)

	assert.False(t, book.Remove("jane@example.com", "Margherita"))
	assert.True(t, book.Remove("jane@example.com", "Veggie with Extra Cheese"))
	assert.Empty(t, book.List("jane@example.com"))
}

func TestBook_rejectsBlankOwner(t *testing.T) {
	book := NewBook(storage.NewFileStore[Favorite](filepath.Join(t.TempDir(), "f.json")), nil)

	_, err := book.Save(" ", veggie())
	assert.Error(t, err)
}

func TestBook_loadFailureStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be read as a file.
	book := NewBook(storage.NewFileStore[Favorite](dir), zaptest.NewLogger(t))

	assert.Empty(t, book.List("jane@example.com"))
}
