package catalog

import (
	"fmt"
	"sync"

	"github.com/signalsfoundry/tni-rendezvous/model"
)

// Entry is a named scenario in the catalog.
type Entry struct {
	ID       string
	Name     string
	Scenario model.Scenario
}

// Catalog is an in-memory, thread-safe store of named rendezvous
// scenarios. Report drivers load it from JSON or the builtins and iterate
// it in insertion order so output stays stable run to run.
type Catalog struct {
	mu sync.RWMutex

	entries map[string]Entry
	order   []string
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Add registers a scenario. It returns an error on a duplicate ID or a
// scenario that fails boundary validation; a catalog never holds inputs
// the engine would reject later.
func (c *Catalog) Add(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("scenario with empty id")
	}
	if err := e.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", e.ID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[e.ID]; exists {
		return fmt.Errorf("scenario with ID %q already exists", e.ID)
	}
	c.entries[e.ID] = e
	c.order = append(c.order, e.ID)
	return nil
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e, ok
}

// List returns all entries in insertion order.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}

// Len returns the number of stored scenarios.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
