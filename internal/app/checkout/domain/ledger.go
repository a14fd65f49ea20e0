package domain

import "time"

// Ledger operations move units between a product's shelf stock and a cart.
// Each one validates everything first and then mutates both sides, so on
// error neither the product nor the cart has changed. That keeps
// stock + reserved quantity constant for every product.
//
// A nil product means the catalog no longer has it. A product whose
// listing differs from the entry's is a later record reusing the id and is
// treated the same way.

// reservedFrom returns product when the entry's units were taken from it,
// nil when the entry is orphaned.
func reservedFrom(e CartEntry, product *Product) *Product {
	if product == nil || product.Listing() != e.Listing {
		return nil
	}
	return product
}

// AddToCart reserves qty units of product into the cart.
func AddToCart(cart *Cart, product *Product, qty int64, now time.Time) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := product.ReserveStock(qty, now); err != nil {
		return err
	}

	cart.add(product.ID(), product.Listing(), qty, now)
	return nil
}

// RemoveFromCart drops the entry for productID and returns its full quantity
// to stock. An entry whose product was removed from the catalog is dropped
// with nothing to restore.
func RemoveFromCart(cart *Cart, productID string, product *Product, now time.Time) error {
	e, ok := cart.entry(productID)
	if !ok {
		return ErrNotInCart
	}

	if product = reservedFrom(e, product); product != nil {
		if err := product.ReleaseStock(e.Quantity, now); err != nil {
			return err
		}
	}

	cart.remove(productID, now)
	return nil
}

// SetQuantity changes the reserved quantity to newQty, reserving or releasing
// only the difference.
func SetQuantity(cart *Cart, productID string, product *Product, newQty int64, now time.Time) error {
	if newQty < 1 {
		return ErrInvalidQuantity
	}

	e, ok := cart.entry(productID)
	if !ok {
		return ErrNotInCart
	}
	if product = reservedFrom(e, product); product == nil {
		return ErrProductNotFound
	}

	delta := newQty - e.Quantity
	switch {
	case delta > 0:
		if err := product.ReserveStock(delta, now); err != nil {
			return err
		}
	case delta < 0:
		if err := product.ReleaseStock(-delta, now); err != nil {
			return err
		}
	}

	cart.set(productID, newQty, now)
	return nil
}

// ClearCart returns every reserved unit to stock and empties the cart.
// It returns the products whose stock changed.
func ClearCart(cart *Cart, products map[string]*Product, now time.Time) ([]*Product, error) {
	touched := make([]*Product, 0, cart.Len())
	for _, e := range cart.entries {
		p := reservedFrom(e, products[e.ProductID])
		if p == nil {
			continue
		}
		if err := p.ReleaseStock(e.Quantity, now); err != nil {
			return nil, err
		}
		touched = append(touched, p)
	}

	cart.entries = nil
	cart.updatedAt = now
	return touched, nil
}

// PriceCart prices every entry at the products' current effective price.
// Fails with ErrProductNotFound when an entry references a removed product.
func PriceCart(cart *Cart, products map[string]*Product) ([]BillLine, error) {
	lines := make([]BillLine, 0, cart.Len())
	for _, e := range cart.entries {
		p := reservedFrom(e, products[e.ProductID])
		if p == nil {
			return nil, ErrProductNotFound
		}
		lines = append(lines, BillLine{
			ProductID: p.ID(),
			Name:      p.Name(),
			Quantity:  e.Quantity,
			UnitPrice: p.EffectivePrice(),
		})
	}
	return lines, nil
}

// CartTotals computes subtotal, tax and total without mutating anything.
func CartTotals(cart *Cart, products map[string]*Product, rate TaxRate) (*Totals, error) {
	lines, err := PriceCart(cart, products)
	if err != nil {
		return nil, err
	}
	return defaultPricingCalculator.Totals(lines, rate), nil
}
