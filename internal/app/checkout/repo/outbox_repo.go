package repo

import (
	"encoding/json"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_outbox"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
)

// OutboxRepo implements OutboxRepository on the in-memory store.
type OutboxRepo struct {
	model *m_outbox.Model
	ids   ident.Generator
	clock clock.Clock
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(ids ident.Generator, clk clock.Clock) contracts.OutboxRepository {
	return &OutboxRepo{
		model: m_outbox.NewModel(),
		ids:   ids,
		clock: clk,
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *committer.Mutation {
	data := &m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     event.Payload,
		Status:      event.Status,
		CreatedAt:   r.clock.Now(),
	}

	return r.model.InsertMut(data)
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     r.ids.NewID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// EventMuts serializes every event and returns one insert mutation each.
func (r *OutboxRepo) EventMuts(events []domain.DomainEvent) ([]*committer.Mutation, error) {
	muts := make([]*committer.Mutation, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event %s: %w", event.EventType(), err)
		}
		muts = append(muts, r.InsertMut(r.EnrichEvent(event, string(payload))))
	}
	return muts, nil
}
