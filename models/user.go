package models

import "time"

// Defaults applied to optional profile fields on registration.
const (
	DefaultLastName = "lastName"
	DefaultLocation = "my city"
)

// User represents an account in the application database.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Location     string    `json:"location" db:"location"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialized
	TestUser     bool      `json:"-" db:"test_user"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ApplyDefaults fills the optional profile fields left empty at registration.
func (u *User) ApplyDefaults() {
	if u.LastName == "" {
		u.LastName = DefaultLastName
	}
	if u.Location == "" {
		u.Location = DefaultLocation
	}
}

// Profile returns the public view of the user together with a session token.
func (u *User) Profile(token string) UserProfile {
	return UserProfile{
		Email:    u.Email,
		LastName: u.LastName,
		Location: u.Location,
		Name:     u.Name,
		Token:    token,
	}
}

// Identity is the authenticated caller attached to a request after token verification.
type Identity struct {
	UserID   string
	Name     string
	TestUser bool
}

// RegisterInput is the body accepted by the register endpoint.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=3,max=20"`
	LastName string `json:"lastName" validate:"max=20"`
	Location string `json:"location" validate:"max=20"`
}

// Credentials represents the data needed for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput is the body accepted by the profile update endpoint.
// Presence of every field is checked by the handler before validation.
type UpdateUserInput struct {
	Email    string `json:"email" validate:"email"`
	Name     string `json:"name" validate:"min=3,max=20"`
	LastName string `json:"lastName" validate:"max=20"`
	Location string `json:"location" validate:"max=20"`
}

// UserProfile is the user shape returned by register, login and updateUser.
type UserProfile struct {
	Email    string `json:"email"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// AuthResponse wraps the profile the way the web client expects it.
type AuthResponse struct {
	User UserProfile `json:"user"`
}
