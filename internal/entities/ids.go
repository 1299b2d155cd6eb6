package entities

// UserID identifies a user principal
// Opaque to this service; issued and verified by the identity layer upstream
type UserID string

// RoleID identifies a role (e.g., "admin", "editor")
type RoleID string

// PermissionID identifies a permission (e.g., "document:write")
type PermissionID string

// ServiceID identifies an internal service principal (e.g., "billing-api")
type ServiceID string

// ID constrains the identifier types an association side can carry
type ID interface {
	~string
}

func (id UserID) String() string       { return string(id) }
func (id RoleID) String() string       { return string(id) }
func (id PermissionID) String() string { return string(id) }
func (id ServiceID) String() string    { return string(id) }
