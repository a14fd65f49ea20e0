package m_cart

import (
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Model provides a facade for type-safe operations on the carts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for a session's first cart row.
func (m *Model) InsertMut(data *Data) *committer.Mutation {
	return committer.Insert(TableName, data)
}

// UpdateMut creates a mutation replacing the cart row loaded at expectedVersion.
func (m *Model) UpdateMut(data *Data, expectedVersion int64) *committer.Mutation {
	return committer.Update(TableName, data, expectedVersion)
}

// DeleteMut creates a mutation dropping a session's cart.
func (m *Model) DeleteMut(sessionID string) *committer.Mutation {
	return committer.Delete(TableName, sessionID)
}
