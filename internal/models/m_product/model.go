package m_product

import (
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *committer.Mutation {
	return committer.Insert(TableName, data)
}

// UpdateMut creates a mutation replacing the product row loaded at expectedVersion.
func (m *Model) UpdateMut(data *Data, expectedVersion int64) *committer.Mutation {
	return committer.Update(TableName, data, expectedVersion)
}

// DeleteMut creates a mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(productID string) *committer.Mutation {
	return committer.Delete(TableName, productID)
}
