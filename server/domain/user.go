package domain

import "fmt"

type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "guest":
		return RoleGuest, nil
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleGuest, fmt.Errorf("unknown role: %q", s)
	}
}

// User is owned by the identity provider; this service only reads it.
type User struct {
	ID   int
	Name string
	Role Role
}
