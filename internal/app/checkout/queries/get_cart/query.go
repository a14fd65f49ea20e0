package get_cart

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

// Request identifies the session cart.
type Request struct {
	SessionID string
}

// Query prices a session cart at current catalog prices.
type Query struct {
	products contracts.ProductRepository
	carts    contracts.CartRepository
	taxRate  domain.TaxRate
}

// NewQuery creates a new get cart query.
func NewQuery(products contracts.ProductRepository, carts contracts.CartRepository, taxRate domain.TaxRate) *Query {
	return &Query{
		products: products,
		carts:    carts,
		taxRate:  taxRate,
	}
}

// Execute returns the priced cart. Nothing is written. An entry whose
// product was removed from the catalog fails with domain.ErrProductNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CartDTO, error) {
	cart, err := q.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	products, err := q.products.GetMany(ctx, cart.ProductIDs())
	if err != nil {
		return nil, err
	}

	lines, err := domain.PriceCart(cart, products)
	if err != nil {
		return nil, err
	}
	totals := domain.NewPricingCalculator().Totals(lines, q.taxRate)

	dto := &contracts.CartDTO{
		SessionID: cart.SessionID(),
		Items:     make([]*contracts.CartItemDTO, 0, len(lines)),
		Units:     cart.TotalUnits(),
		Subtotal:  totals.Subtotal.String(),
		Tax:       totals.Tax.String(),
		Total:     totals.Total.String(),
	}
	for _, l := range lines {
		dto.Items = append(dto.Items, &contracts.CartItemDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal().String(),
		})
	}
	return dto, nil
}
