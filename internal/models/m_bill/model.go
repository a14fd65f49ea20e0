package m_bill

import (
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Model provides a facade for type-safe operations on the bills table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a bill.
func (m *Model) InsertMut(data *Data) *committer.Mutation {
	return committer.Insert(TableName, data)
}

// UpdateMut creates a mutation replacing the bill row loaded at expectedVersion.
func (m *Model) UpdateMut(data *Data, expectedVersion int64) *committer.Mutation {
	return committer.Update(TableName, data, expectedVersion)
}
