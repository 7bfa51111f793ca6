// internal/domain/session/entity.go
package session

import (
	"time"
)

// Address is a user's postal address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Profile is the identity record of an authenticated user. CreatedAt
// serializes as an RFC 3339 string in the persisted session record.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Address     *Address  `json:"address,omitempty"`
	IsAdmin     bool      `json:"isAdmin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// State is the observable session state. Exactly one of the three phases
// holds at any time: loading, anonymous (User nil), or authenticated.
type State struct {
	User            *Profile `json:"user"`
	IsAuthenticated bool     `json:"isAuthenticated"`
	IsLoading       bool     `json:"isLoading"`
}

// RegisterData is the well-formed input for account registration
type RegisterData struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// ProfileUpdate carries partial profile fields to merge into the current
// profile. Email is deliberately absent: it is not mutable through this path.
type ProfileUpdate struct {
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	AvatarURL   *string  `json:"avatarUrl"`
	PhoneNumber *string  `json:"phoneNumber"`
	Address     *Address `json:"address"`
}
