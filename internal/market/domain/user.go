package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleExpert Role = "expert"
	RoleDealer Role = "dealer"
	RoleAdmin  Role = "admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleFarmer, RoleExpert, RoleDealer, RoleAdmin}

// ParseRole accepts any case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleExpert, RoleDealer, RoleAdmin:
		return true
	}
	return false
}

// Title is the capitalised name used in user-facing messages.
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// InitialStatus is the status a new account of this role starts in. Admins
// skip the approval queue.
func (r Role) InitialStatus() Status {
	if r == RoleAdmin {
		return StatusApproved
	}
	return StatusPending
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

type User struct {
	ID           string
	Email        string
	Phone        string
	Name         string
	Country      string
	PasswordHash string // argon2id, or bcrypt for imported accounts
	Role         Role   // fixed at creation
	Status       Status // changed only through the approval state machine
	Active       bool
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserFilter narrows admin user listings. Zero values match everything.
type UserFilter struct {
	Role   Role
	Status Status
	Limit  int
	Offset int
}

// Principal is an authenticated, active and (unless admin) approved user.
// Only the access gate constructs one.
type Principal struct {
	User User
}

func (p Principal) ID() string     { return p.User.ID }
func (p Principal) Role() Role     { return p.User.Role }
func (p Principal) Is(r Role) bool { return p.User.Role == r }

// ActorRef identifies who performed an administrative action.
type ActorRef struct {
	ID    string
	Email string
}

// ActorFrom returns the ActorRef for p.
func ActorFrom(p Principal) ActorRef {
	return ActorRef{ID: p.User.ID, Email: p.User.Email}
}
