package repo

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_events"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_outbox"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// EventsReadModel implements the list_events read model on the in-memory store.
type EventsReadModel struct {
	db *memstore.DB
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(db *memstore.DB) *EventsReadModel {
	return &EventsReadModel{
		db: db,
	}
}

// ListEvents returns matching events, newest first. The count is the number
// of matches before the limit is applied.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	txn := r.db.Snapshot()
	defer txn.Abort()

	// Use the narrowest index available, filter the rest in memory.
	var (
		it  memdb.ResultIterator
		err error
	)
	switch {
	case req.AggregateID != nil:
		it, err = txn.Get(m_outbox.TableName, m_outbox.IndexAggregateID, *req.AggregateID)
	case req.EventType != nil:
		it, err = txn.Get(m_outbox.TableName, m_outbox.IndexEventType, *req.EventType)
	default:
		it, err = txn.Get(m_outbox.TableName, memstore.IndexSeq)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}

	var events []*m_outbox.Data
	for obj := it.Next(); obj != nil; obj = it.Next() {
		e := obj.(*m_outbox.Data)
		if req.EventType != nil && e.EventType != *req.EventType {
			continue
		}
		if req.Status != nil && e.Status != *req.Status {
			continue
		}
		cp := *e
		events = append(events, &cp)
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Seq > events[j].Seq })

	total := int64(len(events))
	if req.Limit > 0 && len(events) > req.Limit {
		events = events[:req.Limit]
	}
	return events, total, nil
}
