package pizzeria

import (
	"strings"
	"testing"
)

func TestComputeRootDeterministic(t *testing.T) {
	root1 := ComputeRoot("favorite", "alice@example.com/Margherita")
	root2 := ComputeRoot("favorite", "alice@example.com/Margherita")

	if root1 != root2 {
		t.Errorf("same inputs should produce same root: %s != %s", root1, root2)
	}
}

func TestComputeRootDifferentDomains(t *testing.T) {
	if ComputeRoot("order", "k") == ComputeRoot("favorite", "k") {
		t.Error("different domains should produce different roots")
	}
}

func TestFavoriteRoot_ignoresEmailCase(t *testing.T) {
	if FavoriteRoot("Alice@Example.com", "Veggie") != FavoriteRoot("alice@example.com", "Veggie") {
		t.Error("expected email case to be ignored")
	}
}

func TestNewOrderID(t *testing.T) {
	id1 := NewOrderID()
	id2 := NewOrderID()

	if !strings.HasPrefix(id1, OrderIDPrefix) {
		t.Errorf("expected prefix %q, got %q", OrderIDPrefix, id1)
	}
	if len(id1) != len(OrderIDPrefix)+8 {
		t.Errorf("unexpected id length: %q", id1)
	}
	if id1 == id2 {
		t.Error("expected unique ids")
	}
}
