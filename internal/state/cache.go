package state

// Cache keeps the last snapshot of each state kind. Adding a kind that is
// already present overwrites it in place, so indices stay stable.
//
// Stacked states of the same kind share one slot. With popups nested three
// deep the stack holds the popup slot twice, and both pops resume the most
// recently frozen popup; the kind is restored, its fields may not be.
type Cache struct {
	storage []Snapshot
}

// Add stores s and returns its index.
func (c *Cache) Add(s Snapshot) int {
	for i, cached := range c.storage {
		if cached.Kind() == s.Kind() {
			c.storage[i] = s
			return i
		}
	}
	c.storage = append(c.storage, s)
	return len(c.storage) - 1
}

// Get rebuilds a live state from the snapshot at index.
func (c *Cache) Get(index int, env *Env, tx Sender) (AppState, bool) {
	if index < 0 || index >= len(c.storage) {
		return nil, false
	}
	return c.storage[index].Thaw(env, tx), true
}

// Len returns the number of cached kinds.
func (c *Cache) Len() int {
	return len(c.storage)
}

// Kinds returns the cached kinds in index order.
func (c *Cache) Kinds() []Kind {
	kinds := make([]Kind, len(c.storage))
	for i, s := range c.storage {
		kinds[i] = s.Kind()
	}
	return kinds
}

// Snapshot returns the raw snapshot at index, for inspection.
func (c *Cache) Snapshot(index int) (Snapshot, bool) {
	if index < 0 || index >= len(c.storage) {
		return nil, false
	}
	return c.storage[index], true
}
