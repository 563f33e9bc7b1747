package domain

// Role is a user's permission level within an organization.
type Role string

const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User is an account belonging to an organization. PasswordHash is never
// serialized.
type User struct {
	ID               string `json:"id" db:"id"`
	Email            string `json:"email" db:"email"`
	PasswordHash     string `json:"-" db:"password_hash"`
	FirstName        string `json:"firstName" db:"first_name"`
	LastName         string `json:"lastName" db:"last_name"`
	Role             Role   `json:"role" db:"role"`
	OrganizationID   string `json:"organizationId" db:"organization_id"`
	OrganizationCode string `json:"orgCode,omitempty" db:"org_code"`
	CreatedAt        string `json:"createdAt" db:"created_at"`
}

// Registration is the input for creating a user.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	OrgCode   string `json:"orgCode"`
	Role      Role   `json:"role"`
}
