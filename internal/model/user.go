package model

// User roles. The admin panel currently only needs a single role, but the
// column is kept so further roles can be added without a schema change.
const (
	RoleAdmin = "admin"
)
