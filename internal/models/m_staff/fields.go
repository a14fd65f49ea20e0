package m_staff

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the staff table.
const (
	TableName = "staff"

	NameKey = "NameKey"
)

// Schema returns the go-memdb table schema. Rows are keyed by the
// normalized name so a second member with the same name cannot be inserted.
func Schema() *memdb.TableSchema {
	return memstore.TableSchema(TableName, NameKey)
}
