package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaffMember(t *testing.T) {
	t.Run("trims fields and records an event", func(t *testing.T) {
		m, err := NewStaffMember("STAFF-1", StaffSpec{
			Name:  "  John Smith ",
			Role:  "Admin",
			Phone: " 123-456-7890",
			Email: "john.smith@qwikpay.com ",
		}, testNow)
		require.NoError(t, err)
		assert.Equal(t, "John Smith", m.Name())
		assert.Equal(t, RoleAdmin, m.Role())
		assert.Equal(t, "123-456-7890", m.Phone())
		assert.Equal(t, "john.smith@qwikpay.com", m.Email())
		assert.Equal(t, "john smith", m.Key())

		require.Len(t, m.DomainEvents(), 1)
		event := m.DomainEvents()[0].(*StaffAddedEvent)
		assert.Equal(t, "staff.added", event.EventType())
		assert.Equal(t, "STAFF-1", event.AggregateID())
		assert.Equal(t, "admin", event.Role)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := NewStaffMember("STAFF-1", StaffSpec{Name: "   ", Role: RoleSecurity}, testNow)
		assert.ErrorIs(t, err, ErrEmptyStaffName)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := NewStaffMember("STAFF-1", StaffSpec{Name: "Emily", Role: "cashier"}, testNow)
		assert.ErrorIs(t, err, ErrInvalidStaffRole)
	})
}

func TestStaffKey(t *testing.T) {
	assert.Equal(t, "emily johnson", StaffKey("Emily Johnson"))
	assert.Equal(t, "emily johnson", StaffKey("  EMILY \t johnson "))
	assert.Equal(t, StaffKey("a b"), StaffKey("A  B"))
}
