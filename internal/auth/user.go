// Package auth covers the flat-file user store, login verification and the
// in-process session whose username stamps the audit trail.
package auth

import "fmt"

// Role decides which parts of the application a user may operate.
type Role string

const (
	RoleFreelancer Role = "FREELANCER"
	RoleAdmin      Role = "ADMIN"
	RoleFinance    Role = "FINANCE"
)

// ParseRole maps the stored role name onto a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFreelancer, RoleAdmin, RoleFinance:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is one record of the users file. LinkedEntityID ties a FREELANCER
// account to its freelancer row.
type User struct {
	Username       string
	PasswordHash   string
	Role           Role
	LinkedEntityID int64
}
