package users

// Roles the backend knows. "admin" may mutate records, "hr" is read-only
// in the console (a convenience, not a security boundary).
const (
	RoleAdmin = "admin"
	RoleHr    = "hr"
)

// Detail is a console user account.
type Detail struct {
	Id        int    `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}
