package m_cart

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the carts table.
const (
	TableName = "carts"

	SessionID = "SessionID"
)

// Schema returns the go-memdb table schema.
func Schema() *memdb.TableSchema {
	return memstore.TableSchema(TableName, SessionID)
}
