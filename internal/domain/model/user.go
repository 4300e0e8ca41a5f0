package model

import (
	"fmt"
	"time"
)

// Role is the access-level classification of a user. It is a closed set:
// caller-supplied values go through ParseRole at the boundary.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a caller-supplied role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"` // stored lowercase, unique
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Not exposed
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
