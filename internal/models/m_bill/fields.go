package m_bill

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the bills table.
const (
	TableName = "bills"

	BillID     = "BillID"
	CustomerID = "CustomerID"
)

// Index names beyond the shared id/seq indexes.
const (
	IndexCustomer = "customer"
)

// Schema returns the go-memdb table schema.
func Schema() *memdb.TableSchema {
	s := memstore.TableSchema(TableName, BillID)
	s.Indexes[IndexCustomer] = &memdb.IndexSchema{
		Name:    IndexCustomer,
		Indexer: &memdb.StringFieldIndex{Field: CustomerID},
	}
	return s
}
