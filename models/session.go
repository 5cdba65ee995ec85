// File: xoadvisor/models/session.go
package models

import "time"

// Role is the capability computed once per request from the session.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "guest"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "admin":
		*r = RoleAdmin
	case "user":
		*r = RoleUser
	default:
		*r = RoleGuest
	}
	return nil
}

// Session is the resolved caller of one request. The zero value is a guest.
type Session struct {
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	SessionID string `json:"-"`
	Role      Role   `json:"role"`
}

// SignedIn reports whether the session carries an identity.
func (s Session) SignedIn() bool {
	return s.UserID != ""
}

// UserIDOrNil returns the identity for rows that allow anonymous authors.
func (s Session) UserIDOrNil() *string {
	if !s.SignedIn() {
		return nil
	}
	id := s.UserID
	return &id
}

// AuthResponse is returned after a successful sign-in or sign-up.
type AuthResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEventType names a session change.
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)

// SessionEvent is published whenever an identity signs in or out.
type SessionEvent struct {
	Type      SessionEventType `json:"type"`
	UserID    string           `json:"user_id"`
	SessionID string           `json:"session_id"`
	At        time.Time        `json:"at"`
}
