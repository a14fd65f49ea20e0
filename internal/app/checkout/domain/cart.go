package domain

import "time"

// CartEntry is one line of a cart. Quantity is always at least 1.
// Listing is the catalog record the units were taken from; once the
// product is removed, a record re-added under the same id has another
// listing and the entry stays orphaned.
type CartEntry struct {
	ProductID string
	Listing   uint64
	Quantity  int64
}

// Cart maps product ids to reserved quantities for one session.
// Entries keep the order in which products were first added and a product
// never appears twice.
//
// Cart methods only touch the cart itself. Anything that must move stock at
// the same time goes through the ledger functions in ledger.go.
type Cart struct {
	sessionID string
	entries   []CartEntry
	updatedAt time.Time
	version   int64
}

// NewCart creates an empty cart for a session.
func NewCart(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	return &Cart{sessionID: sessionID}, nil
}

// ReconstructCart reconstitutes a Cart from the store.
func ReconstructCart(sessionID string, entries []CartEntry, updatedAt time.Time, version int64) *Cart {
	cp := make([]CartEntry, len(entries))
	copy(cp, entries)
	return &Cart{
		sessionID: sessionID,
		entries:   cp,
		updatedAt: updatedAt,
		version:   version,
	}
}

func (c *Cart) SessionID() string    { return c.sessionID }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
func (c *Cart) Version() int64       { return c.version }
func (c *Cart) IsEmpty() bool        { return len(c.entries) == 0 }
func (c *Cart) Len() int             { return len(c.entries) }

// Entries returns a copy of the entries in insertion order.
func (c *Cart) Entries() []CartEntry {
	cp := make([]CartEntry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// ProductIDs lists the referenced products in entry order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ProductID
	}
	return ids
}

// Quantity returns the reserved quantity for a product, 0 when absent.
func (c *Cart) Quantity(productID string) int64 {
	if i := c.index(productID); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// Contains reports whether the product has an entry.
func (c *Cart) Contains(productID string) bool {
	return c.index(productID) >= 0
}

// TotalUnits sums all quantities.
func (c *Cart) TotalUnits() int64 {
	var n int64
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// Discard empties the cart without touching stock. Only checkout uses this:
// the reserved units are sold, not returned.
func (c *Cart) Discard(now time.Time) {
	c.entries = nil
	c.updatedAt = now
}

// add reserves into the entry for the product's current listing. An
// orphaned entry for the same id is replaced: its units are gone with the
// old record.
func (c *Cart) add(productID string, listing uint64, qty int64, now time.Time) {
	if i := c.index(productID); i >= 0 {
		if c.entries[i].Listing == listing {
			c.entries[i].Quantity += qty
		} else {
			c.entries[i] = CartEntry{ProductID: productID, Listing: listing, Quantity: qty}
		}
	} else {
		c.entries = append(c.entries, CartEntry{ProductID: productID, Listing: listing, Quantity: qty})
	}
	c.updatedAt = now
}

func (c *Cart) entry(productID string) (CartEntry, bool) {
	if i := c.index(productID); i >= 0 {
		return c.entries[i], true
	}
	return CartEntry{}, false
}

func (c *Cart) set(productID string, qty int64, now time.Time) {
	if i := c.index(productID); i >= 0 {
		c.entries[i].Quantity = qty
		c.updatedAt = now
	}
}

func (c *Cart) remove(productID string, now time.Time) {
	if i := c.index(productID); i >= 0 {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		c.updatedAt = now
	}
}

func (c *Cart) index(productID string) int {
	for i, e := range c.entries {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}
