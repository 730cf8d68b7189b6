package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
//
// Lookups return ErrNotFound when nothing matches. Create and Save return
// ErrDuplicateEmail when the email already belongs to another user.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Save(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user account.
type User struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Password    string // bcrypt hash, empty until activation
	IsActivated bool
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Public returns a copy of the user without the password hash and access token.
func (u User) Public() User {
	u.Password = ""
	u.AccessToken = ""
	return u
}

// WithoutPassword returns a copy of the user without the password hash.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// InviteParams describes a user invitation.
type InviteParams struct {
	FirstName string
	LastName  string
	Email     string
}

// CreateParams describes a user created directly, bypassing invitation.
type CreateParams struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	AccessToken string
}

// ActivateParams carries activation input. Nil fields keep the stored value.
type ActivateParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  string
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Password    *string
	AccessToken *string
}

// SignInResult is returned after successful authentication.
type SignInResult struct {
	User        User
	AccessToken string
}
