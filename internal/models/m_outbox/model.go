package m_outbox

import (
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an outbox event.
func (m *Model) InsertMut(data *Data) *committer.Mutation {
	return committer.Insert(TableName, data)
}
