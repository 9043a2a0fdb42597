package domain

// Role is the caller role supplied by the identity collaborator.
type Role string

const (
	RolePatient    Role = "patient"
	RoleProvider   Role = "provider"
	RoleResearcher Role = "researcher"
	RoleAdmin      Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleProvider, RoleResearcher, RoleAdmin:
		return true
	}
	return false
}

// Caller identifies whoever invokes an operation.
type Caller struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin returns true for platform administrators.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// RequestMeta carries per-request context that ends up in audit entries.
type RequestMeta struct {
	IPAddress        string
	UserAgent        string
	Purpose          string
	ConsentValidated bool
	UnusualLocation  bool
}
