package feedback

import (
	"testing"
)

func TestBook_addAndList(t *testing.T) {
	b := NewBook()

	if err := b.Add(Entry{OrderID: "ORD-1", ProductName: "Pepperoni", Rating: 5, Comments: "Delicious!"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(Entry{OrderID: "ORD-2", ProductName: "Veggie", Rating: 4, Comments: "Could use less cheese."}); err != nil {
		t.Fatal(err)
	}

	all := b.All()
	if len(all) != 2 || all[0].OrderID != "ORD-1" || all[1].OrderID != "ORD-2" {
		t.Errorf("unexpected entries %+v", all)
	}
	if all[0].At.IsZero() {
		t.Error("expected submission time to be set")
	}
	if got := b.AverageRating(); got != 4.5 {
		t.Errorf("expected 4.5, got %v", got)
	}
	if got := b.ForOrder("ORD-2"); len(got) != 1 || got[0].ProductName != "Veggie" {
		t.Errorf("unexpected ForOrder result %+v", got)
	}
}

func TestBook_rejectsInvalidEntries(t *testing.T) {
	b := NewBook()

	if err := b.Add(Entry{OrderID: "ORD-1", Rating: 6}); err == nil {
		t.Error("expected rating 6 to be rejected")
	}
	if err := b.Add(Entry{Rating: 3}); err == nil {
		t.Error("expected missing order id to be rejected")
	}
	if len(b.All()) != 0 {
		t.Error("rejected entries must not be stored")
	}
	if b.AverageRating() != 0 {
		t.Error("expected 0 average with no entries")
	}
}
