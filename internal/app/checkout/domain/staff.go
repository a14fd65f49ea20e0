package domain

import (
	"strings"
	"time"
)

// StaffRole is the access level of a roster member.
type StaffRole string

const (
	RoleSecurity StaffRole = "security"
	RoleAdmin    StaffRole = "admin"
)

// ParseStaffRole accepts a role name in any letter case.
func ParseStaffRole(s string) (StaffRole, error) {
	switch r := StaffRole(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleSecurity, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidStaffRole
}

// StaffSpec describes a roster member as supplied by an administrator.
type StaffSpec struct {
	Name  string
	Role  StaffRole
	Phone string
	Email string
}

// StaffMember is a person allowed to verify bills at the exit.
type StaffMember struct {
	id      string
	name    string
	role    StaffRole
	phone   string
	email   string
	addedOn time.Time

	events []DomainEvent
}

// NewStaffMember validates spec and records a StaffAddedEvent.
func NewStaffMember(id string, spec StaffSpec, now time.Time) (*StaffMember, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, ErrEmptyStaffName
	}
	role, err := ParseStaffRole(string(spec.Role))
	if err != nil {
		return nil, err
	}

	m := &StaffMember{
		id:      id,
		name:    name,
		role:    role,
		phone:   strings.TrimSpace(spec.Phone),
		email:   strings.TrimSpace(spec.Email),
		addedOn: now,
	}
	m.events = append(m.events, &StaffAddedEvent{
		StaffID: id,
		Name:    name,
		Role:    string(role),
		AddedOn: now,
	})
	return m, nil
}

// ReconstructStaffMember reconstitutes a roster member from the store.
func ReconstructStaffMember(id, name string, role StaffRole, phone, email string, addedOn time.Time) *StaffMember {
	return &StaffMember{
		id:      id,
		name:    name,
		role:    role,
		phone:   phone,
		email:   email,
		addedOn: addedOn,
	}
}

// StaffKey normalizes a name for roster lookups. Two members whose names
// differ only in case or surrounding space share a key.
func StaffKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (m *StaffMember) ID() string                  { return m.id }
func (m *StaffMember) Name() string                { return m.name }
func (m *StaffMember) Key() string                 { return StaffKey(m.name) }
func (m *StaffMember) Role() StaffRole             { return m.role }
func (m *StaffMember) Phone() string               { return m.phone }
func (m *StaffMember) Email() string               { return m.email }
func (m *StaffMember) AddedOn() time.Time          { return m.addedOn }
func (m *StaffMember) DomainEvents() []DomainEvent { return m.events }

// ClearEvents drops recorded events once they are in the outbox.
func (m *StaffMember) ClearEvents() {
	m.events = nil
}
