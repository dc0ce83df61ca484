package notify

import (
	"testing"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Notify(event string) {
	*r.log = append(*r.log, r.name+":"+event)
}

func TestHub_publishesInRegistrationOrder(t *testing.T) {
	var log []string
	var h Hub[string]
	h.Add(&recorder{name: "a", log: &log})
	h.Add(&recorder{name: "b", log: &log})

	h.Publish("placed")

	if len(log) != 2 || log[0] != "a:placed" || log[1] != "b:placed" {
		t.Errorf("unexpected delivery %v", log)
	}
}

func TestHub_addIsIdempotent(t *testing.T) {
	var log []string
	var h Hub[string]
	r := &recorder{name: "a", log: &log}
	h.Add(r)
	h.Add(r)

	h.Publish("x")

	if h.Len() != 1 {
		t.Errorf("expected 1 observer, got %d", h.Len())
	}
	if len(log) != 1 {
		t.Errorf("expected one delivery, got %v", log)
	}
}

func TestHub_removeUnknownIsNoop(t *testing.T) {
	var log []string
	var h Hub[string]
	a := &recorder{name: "a", log: &log}
	h.Add(a)

	h.Remove(&recorder{name: "other", log: &log})
	if h.Len() != 1 {
		t.Errorf("expected 1 observer, got %d", h.Len())
	}

	h.Remove(a)
	h.Publish("x")
	if len(log) != 0 {
		t.Errorf("expected no delivery after removal, got %v", log)
	}
}

func TestHub_removeKeepsOrderOfOthers(t *testing.T) {
	var log []string
	var h Hub[string]
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	c := &recorder{name: "c", log: &log}
	h.Add(a)
	h.Add(b)
	h.Add(c)

	h.Remove(b)
	h.Publish("x")

	if len(log) != 2 || log[0] != "a:x" || log[1] != "c:x" {
		t.Errorf("unexpected delivery %v", log)
	}
}

func TestHub_observerMayUnregisterDuringPublish(t *testing.T) {
	var h Hub[string]
	calls := 0
	var self Observer[string]
	self = Func(func(string) {
		calls++
		h.Remove(self)
	})
	h.Add(self)

	h.Publish("x")
	h.Publish("y")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestFunc_distinctObservers(t *testing.T) {
	var h Hub[int]
	fn := func(int) {}
	h.Add(Func(fn))
	h.Add(Func(fn))

	if h.Len() != 2 {
		t.Errorf("expected 2 observers, got %d", h.Len())
	}
}
