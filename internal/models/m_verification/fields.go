package m_verification

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the verifications table.
const (
	TableName = "verifications"

	RecordID = "RecordID"
	BillID   = "BillID"
)

// Index names beyond the shared id/seq indexes.
const (
	IndexBill = "bill"
)

// Schema returns the go-memdb table schema. Records are looked up by bill.
func Schema() *memdb.TableSchema {
	s := memstore.TableSchema(TableName, RecordID)
	s.Indexes[IndexBill] = &memdb.IndexSchema{
		Name:    IndexBill,
		Unique:  true,
		Indexer: &memdb.StringFieldIndex{Field: BillID},
	}
	return s
}
