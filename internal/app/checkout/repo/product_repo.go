package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_product"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// ProductRepo implements ProductRepository on the in-memory store.
type ProductRepo struct {
	db    *memstore.DB
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *memstore.DB) contracts.ProductRepository {
	return &ProductRepo{
		db:    db,
		model: m_product.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*committer.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation replacing the product at its loaded version.
func (r *ProductRepo) UpdateMut(product *domain.Product) (*committer.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.UpdateMut(data, product.Version()), nil
}

// DeleteMut creates a mutation removing the product.
func (r *ProductRepo) DeleteMut(productID string) *committer.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.db.Get(m_product.TableName, productID)
	if err != nil {
		if errors.Is(err, memstore.ErrRowNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return dataToProduct(row.(*m_product.Data))
}

// GetMany loads several products from one snapshot.
func (r *ProductRepo) GetMany(ctx context.Context, productIDs []string) (map[string]*domain.Product, error) {
	txn := r.db.Snapshot()
	defer txn.Abort()

	products := make(map[string]*domain.Product, len(productIDs))
	for _, id := range productIDs {
		row, err := memstore.First(txn, m_product.TableName, id)
		if errors.Is(err, memstore.ErrRowNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read product: %w", err)
		}

		p, err := dataToProduct(row.(*m_product.Data))
		if err != nil {
			return nil, err
		}
		products[id] = p
	}
	return products, nil
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.db.Get(m_product.TableName, productID)
	if errors.Is(err, memstore.ErrRowNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to a fresh stored row.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	listNum, listDenom, err := moneyParts(product.ListPrice())
	if err != nil {
		return nil, fmt.Errorf("list price: %w", err)
	}

	data := &m_product.Data{
		ProductID:            product.ID(),
		Name:                 product.Name(),
		Category:             product.Category(),
		ListPriceNumerator:   listNum,
		ListPriceDenominator: listDenom,
		Stock:                product.Stock(),
		AddedOn:              product.AddedOn(),
		UpdatedAt:            product.UpdatedAt(),
	}

	if discounted := product.DiscountedPrice(); discounted != nil {
		num, denom, err := moneyParts(discounted)
		if err != nil {
			return nil, fmt.Errorf("discounted price: %w", err)
		}
		data.HasDiscount = true
		data.DiscountedPriceNumerator = num
		data.DiscountedPriceDenominator = denom
	}

	return data, nil
}

// dataToProduct converts a stored row to a domain Product.
func dataToProduct(data *m_product.Data) (*domain.Product, error) {
	listPrice, err := moneyFromParts(data.ListPriceNumerator, data.ListPriceDenominator)
	if err != nil {
		return nil, err
	}

	var discount *domain.Discount
	if data.HasDiscount {
		price, err := moneyFromParts(data.DiscountedPriceNumerator, data.DiscountedPriceDenominator)
		if err != nil {
			return nil, err
		}
		discount, err = domain.NewDiscount(listPrice, price)
		if err != nil {
			return nil, fmt.Errorf("invalid stored discount: %w", err)
		}
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Category,
		listPrice,
		discount,
		data.Stock,
		data.AddedOn,
		data.UpdatedAt,
		data.Version,
		data.Seq,
	), nil
}
