package catalog

import (
	"testing"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

func validEntry(id string) Entry {
	return Entry{
		ID:   id,
		Name: "test scenario " + id,
		Scenario: model.Scenario{
			Chaser:       model.OrbitState{AltitudeKm: 395},
			Target:       model.OrbitState{AltitudeKm: 400},
			SeparationKm: 50,
		},
	}
}

func TestCatalogAddAndGet(t *testing.T) {
	c := New()
	if err := c.Add(validEntry("a")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	e, ok := c.Get("a")
	if !ok {
		t.Fatal("Get(\"a\") not found")
	}
	if e.Scenario.SeparationKm != 50 {
		t.Errorf("stored scenario = %+v, want separation 50", e.Scenario)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(\"missing\") found an entry")
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := New()
	if err := c.Add(validEntry("a")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := c.Add(validEntry("a")); err == nil {
		t.Error("duplicate Add() succeeded, want error")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", c.Len())
	}
}

func TestCatalogRejectsEmptyID(t *testing.T) {
	if err := New().Add(validEntry("")); err == nil {
		t.Error("Add() with empty ID succeeded, want error")
	}
}

func TestCatalogRejectsInvalidScenario(t *testing.T) {
	e := validEntry("bad")
	e.Scenario.SeparationKm = -1
	if err := New().Add(e); err == nil {
		t.Error("Add() with invalid scenario succeeded, want error")
	}
}

func TestCatalogListPreservesInsertionOrder(t *testing.T) {
	c := New()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		if err := c.Add(validEntry(id)); err != nil {
			t.Fatalf("Add(%q) error: %v", id, err)
		}
	}

	list := c.List()
	if len(list) != len(ids) {
		t.Fatalf("List() returned %d entries, want %d", len(list), len(ids))
	}
	for i, e := range list {
		if e.ID != ids[i] {
			t.Errorf("List()[%d] = %q, want %q", i, e.ID, ids[i])
		}
	}
}
