package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductAddedEvent is emitted when a product enters the catalog.
type ProductAddedEvent struct {
	ProductID       string
	Name            string
	Category        string
	ListPrice       *Money
	DiscountedPrice *Money `json:",omitempty"`
	Stock           int64
	AddedOn         time.Time
}

func (e *ProductAddedEvent) EventType() string {
	return "product.added"
}

func (e *ProductAddedEvent) AggregateID() string {
	return e.ProductID
}

// ProductUpdatedEvent is emitted when a catalog record is replaced.
type ProductUpdatedEvent struct {
	ProductID       string
	Name            string
	Category        string
	ListPrice       *Money
	DiscountedPrice *Money `json:",omitempty"`
	Stock           int64
	UpdatedAt       time.Time
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductRemovedEvent is emitted when a product leaves the catalog.
type ProductRemovedEvent struct {
	ProductID string
	RemovedAt time.Time
}

func (e *ProductRemovedEvent) EventType() string {
	return "product.removed"
}

func (e *ProductRemovedEvent) AggregateID() string {
	return e.ProductID
}

// StockReservedEvent is emitted when units move from the shelf into a cart.
type StockReservedEvent struct {
	ProductID  string
	Quantity   int64
	StockAfter int64
	ReservedAt time.Time
}

func (e *StockReservedEvent) EventType() string {
	return "stock.reserved"
}

func (e *StockReservedEvent) AggregateID() string {
	return e.ProductID
}

// StockReleasedEvent is emitted when reserved units return to the shelf.
type StockReleasedEvent struct {
	ProductID  string
	Quantity   int64
	StockAfter int64
	ReleasedAt time.Time
}

func (e *StockReleasedEvent) EventType() string {
	return "stock.released"
}

func (e *StockReleasedEvent) AggregateID() string {
	return e.ProductID
}

// BillIssuedEvent is emitted at checkout.
type BillIssuedEvent struct {
	BillID       string
	CustomerID   string
	CustomerName string
	ItemCount    int64
	Total        *Money
	IssuedAt     time.Time
}

func (e *BillIssuedEvent) EventType() string {
	return "bill.issued"
}

func (e *BillIssuedEvent) AggregateID() string {
	return e.BillID
}

// BillVerifiedEvent is emitted when security verifies a bill.
type BillVerifiedEvent struct {
	BillID     string
	VerifiedBy string
	VerifiedAt time.Time
}

func (e *BillVerifiedEvent) EventType() string {
	return "bill.verified"
}

func (e *BillVerifiedEvent) AggregateID() string {
	return e.BillID
}

// StaffAddedEvent is emitted when a person joins the verification roster.
type StaffAddedEvent struct {
	StaffID string
	Name    string
	Role    string
	AddedOn time.Time
}

func (e *StaffAddedEvent) EventType() string {
	return "staff.added"
}

func (e *StaffAddedEvent) AggregateID() string {
	return e.StaffID
}
