package m_product

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the products table.
// They name Data struct fields because go-memdb indexes by field name.
const (
	TableName = "products"

	ProductID = "ProductID"
	Category  = "Category"
)

// Index names beyond the shared id/seq indexes.
const (
	IndexCategory = "category"
)

// Schema returns the go-memdb table schema.
func Schema() *memdb.TableSchema {
	s := memstore.TableSchema(TableName, ProductID)
	s.Indexes[IndexCategory] = &memdb.IndexSchema{
		Name:    IndexCategory,
		Indexer: &memdb.StringFieldIndex{Field: Category, Lowercase: true},
	}
	return s
}
