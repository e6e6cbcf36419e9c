package auth

// Package auth contains domain-level types for portal sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents the portal authorization role derived from the API user type.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Credentials are what a user types into the login form.
type Credentials struct {
	Email    string
	Password string
}

// Identity is the principal returned by the API login endpoint.
type Identity struct {
	UserID   string
	Name     string
	Email    string
	UserType string
	Token    string
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier; Token is the bearer token issued by the API
// and never leaves the server.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// IsAdmin returns true if the session may use the admin pages.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// RoleFor maps an API user_type onto a portal role.
func RoleFor(userType, adminUserType string) Role {
	ut := strings.TrimSpace(userType)
	if ut == "" {
		return RoleGuest
	}
	if adminUserType != "" && strings.EqualFold(ut, adminUserType) {
		return RoleAdmin
	}
	return RoleUser
}
