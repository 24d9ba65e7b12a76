package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrZeroID       = errors.New("user ID cannot be zero")
	ErrIDAlreadySet = errors.New("user ID is already set")
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidLevel = errors.New("target level must be between 1 and 5")
	ErrNotFound     = errors.New("user not found")
)

// User is a learner or administrator account. Accounts are created by the
// first successful external sign-in and updated on every subsequent one.
type User struct {
	id          uint
	email       string
	name        string
	image       string
	isAdmin     bool
	isPro       bool
	targetLevel *int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates an account from an external identity profile.
func NewUser(email, name, image string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	return &User{
		email:     email,
		name:      name,
		image:     image,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	email, name, image string,
	isAdmin, isPro bool,
	targetLevel *int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, ErrZeroID
	}
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmptyEmail
	}
	return &User{
		id:          id,
		email:       email,
		name:        name,
		image:       image,
		isAdmin:     isAdmin,
		isPro:       isPro,
		targetLevel: targetLevel,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Image() string        { return u.image }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) IsPro() bool          { return u.isPro }
func (u *User) TargetLevel() *int    { return u.targetLevel }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the user ID (persistence layer use only).
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	u.id = id
	return nil
}

// RefreshProfile updates name and image from a fresh external sign-in.
func (u *User) RefreshProfile(name, image string) {
	u.name = name
	u.image = image
	u.updatedAt = time.Now()
}

// GrantPro flips the paid-tier entitlement. Only subscription reconciliation
// may call this.
func (u *User) GrantPro() {
	if u.isPro {
		return
	}
	u.isPro = true
	u.updatedAt = time.Now()
}

// RevokePro clears the paid-tier entitlement.
func (u *User) RevokePro() {
	if !u.isPro {
		return
	}
	u.isPro = false
	u.updatedAt = time.Now()
}

// SetTargetLevel records which JLPT level the learner is preparing for.
func (u *User) SetTargetLevel(level int) error {
	if level < 1 || level > 5 {
		return ErrInvalidLevel
	}
	u.targetLevel = &level
	u.updatedAt = time.Now()
	return nil
}
