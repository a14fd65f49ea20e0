package domain

import (
	"time"
)

// ProductSpec carries the full, caller-supplied description of a catalog record.
// It is used both to add a product and to replace one.
type ProductSpec struct {
	Name            string
	Category        string
	ListPrice       *Money
	DiscountedPrice *Money // optional
	Stock           int64
}

func (s ProductSpec) validate() (*Discount, error) {
	if s.Name == "" {
		return nil, ErrEmptyName
	}
	if s.Category == "" {
		return nil, ErrInvalidCategory
	}
	if s.ListPrice == nil || !s.ListPrice.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if s.Stock < 0 {
		return nil, ErrNegativeStock
	}
	if s.DiscountedPrice == nil {
		return nil, nil
	}
	return NewDiscount(s.ListPrice, s.DiscountedPrice)
}

// Product is the aggregate root for a catalog record.
// Stock is the number of units still on the shelf; units sitting in carts are
// not counted here.
type Product struct {
	id        string
	name      string
	category  string
	listPrice *Money
	discount  *Discount
	stock     int64
	addedOn   time.Time
	updatedAt time.Time
	version   int64

	// listing tells apart successive catalog records that reuse one id.
	// Zero until the product has been stored.
	listing uint64

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id string, spec ProductSpec, now time.Time) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyProductID
	}

	discount, err := spec.validate()
	if err != nil {
		return nil, err
	}

	p := &Product{
		id:        id,
		name:      spec.Name,
		category:  spec.Category,
		listPrice: spec.ListPrice.Copy(),
		discount:  discount,
		stock:     spec.Stock,
		addedOn:   now,
		updatedAt: now,
		events:    make([]DomainEvent, 0),
	}

	p.recordEvent(&ProductAddedEvent{
		ProductID:       p.id,
		Name:            p.name,
		Category:        p.category,
		ListPrice:       p.ListPrice(),
		DiscountedPrice: p.DiscountedPrice(),
		Stock:           p.stock,
		AddedOn:         now,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the store.
func ReconstructProduct(
	id, name, category string,
	listPrice *Money,
	discount *Discount,
	stock int64,
	addedOn, updatedAt time.Time,
	version int64,
	listing uint64,
) *Product {
	return &Product{
		id:        id,
		name:      name,
		category:  category,
		listPrice: listPrice,
		discount:  discount,
		stock:     stock,
		addedOn:   addedOn,
		updatedAt: updatedAt,
		version:   version,
		listing:   listing,
		events:    make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Category() string            { return p.category }
func (p *Product) ListPrice() *Money           { return p.listPrice.Copy() }
func (p *Product) Discount() *Discount         { return p.discount.Copy() }
func (p *Product) Stock() int64                { return p.stock }
func (p *Product) AddedOn() time.Time          { return p.addedOn }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Version() int64              { return p.version }
func (p *Product) Listing() uint64             { return p.listing }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// DiscountedPrice returns the markdown price or nil.
func (p *Product) DiscountedPrice() *Money {
	if p.discount == nil {
		return nil
	}
	return p.discount.Price()
}

// EffectivePrice is the unit price a customer pays right now.
func (p *Product) EffectivePrice() *Money {
	if p.discount != nil {
		return p.discount.Price()
	}
	return p.listPrice.Copy()
}

// Replace overwrites the full record. The new stock becomes the product's
// baseline; units already reserved in carts are not touched.
func (p *Product) Replace(spec ProductSpec, now time.Time) error {
	discount, err := spec.validate()
	if err != nil {
		return err
	}

	p.name = spec.Name
	p.category = spec.Category
	p.listPrice = spec.ListPrice.Copy()
	p.discount = discount
	p.stock = spec.Stock
	p.updatedAt = now

	p.recordEvent(&ProductUpdatedEvent{
		ProductID:       p.id,
		Name:            p.name,
		Category:        p.category,
		ListPrice:       p.ListPrice(),
		DiscountedPrice: p.DiscountedPrice(),
		Stock:           p.stock,
		UpdatedAt:       now,
	})

	return nil
}

// MarkRemoved records the removal event. The caller deletes the row.
func (p *Product) MarkRemoved(now time.Time) {
	p.recordEvent(&ProductRemovedEvent{
		ProductID: p.id,
		RemovedAt: now,
	})
}

// ReserveStock takes qty units off the shelf.
func (p *Product) ReserveStock(qty int64, now time.Time) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if p.stock < qty {
		return &OutOfStockError{ProductID: p.id, Requested: qty, Available: p.stock}
	}

	p.stock -= qty
	p.updatedAt = now

	p.recordEvent(&StockReservedEvent{
		ProductID:  p.id,
		Quantity:   qty,
		StockAfter: p.stock,
		ReservedAt: now,
	})

	return nil
}

// ReleaseStock puts qty reserved units back on the shelf.
func (p *Product) ReleaseStock(qty int64, now time.Time) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	p.stock += qty
	p.updatedAt = now

	p.recordEvent(&StockReleasedEvent{
		ProductID:  p.id,
		Quantity:   qty,
		StockAfter: p.stock,
		ReleasedAt: now,
	})

	return nil
}

// IsLowStock reports whether stock fell below the threshold.
func (p *Product) IsLowStock(threshold int64) bool {
	return p.stock < threshold
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
