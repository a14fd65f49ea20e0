package contracts

import (
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// OutboxEvent represents an enriched domain event ready for persistence.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
}

// OutboxRepository defines the interface for outbox event persistence.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *OutboxEvent) *committer.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent

	// EventMuts serializes and enriches every event, returning one insert per event.
	EventMuts(events []domain.DomainEvent) ([]*committer.Mutation, error)
}
