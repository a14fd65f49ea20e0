package m_outbox

import (
	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Field name constants for the outbox_events table.
const (
	TableName = "outbox_events"

	EventID     = "EventID"
	EventType   = "EventType"
	AggregateID = "AggregateID"
)

// Index names beyond the shared id/seq indexes.
const (
	IndexEventType   = "event_type"
	IndexAggregateID = "aggregate_id"
)

// Event status constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Schema returns the go-memdb table schema.
func Schema() *memdb.TableSchema {
	s := memstore.TableSchema(TableName, EventID)
	s.Indexes[IndexEventType] = &memdb.IndexSchema{
		Name:    IndexEventType,
		Indexer: &memdb.StringFieldIndex{Field: EventType},
	}
	s.Indexes[IndexAggregateID] = &memdb.IndexSchema{
		Name:    IndexAggregateID,
		Indexer: &memdb.StringFieldIndex{Field: AggregateID},
	}
	return s
}
