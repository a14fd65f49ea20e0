package m_staff

import (
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Model provides a facade for the staff table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation adding a roster member.
func (m *Model) InsertMut(data *Data) *committer.Mutation {
	return committer.Insert(TableName, data)
}
