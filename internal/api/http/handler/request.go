package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dtroode/whiskersm-users/internal/model"
)

var (
	nameRules     = []validation.Rule{validation.Length(1, 50)}
	emailRules    = []validation.Rule{validation.Length(3, 100), is.Email}
	passwordRules = []validation.Rule{validation.Length(3, 100)}
)

func required(rules []validation.Rule) []validation.Rule {
	return append([]validation.Rule{validation.Required}, rules...)
}

func optional(rules []validation.Rule) []validation.Rule {
	return append([]validation.Rule{validation.NilOrNotEmpty}, rules...)
}

// InviteRequest is the payload of POST /users/invite.
type InviteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r InviteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, required(nameRules)...),
		validation.Field(&r.LastName, required(nameRules)...),
		validation.Field(&r.Email, required(emailRules)...),
	)
}

func (r InviteRequest) params() model.InviteParams {
	return model.InviteParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// CreateRequest is the payload of POST /users/create.
type CreateRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccessToken string `json:"accessToken"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, required(nameRules)...),
		validation.Field(&r.LastName, required(nameRules)...),
		validation.Field(&r.Email, required(emailRules)...),
		validation.Field(&r.Password, required(passwordRules)...),
	)
}

func (r CreateRequest) params() model.CreateParams {
	return model.CreateParams{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		AccessToken: r.AccessToken,
	}
}

// ActivateRequest is the payload of PATCH /users/:id/activation.
type ActivateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  string  `json:"password"`
}

func (r ActivateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, optional(nameRules)...),
		validation.Field(&r.LastName, optional(nameRules)...),
		validation.Field(&r.Email, optional(emailRules)...),
		validation.Field(&r.Password, required(passwordRules)...),
	)
}

func (r ActivateRequest) params() model.ActivateParams {
	return model.ActivateParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// UpdateRequest is the payload of PUT /users/:id. Absent fields are kept.
type UpdateRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	AccessToken *string `json:"accessToken"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, optional(nameRules)...),
		validation.Field(&r.LastName, optional(nameRules)...),
		validation.Field(&r.Email, optional(emailRules)...),
		validation.Field(&r.Password, optional(passwordRules)...),
	)
}

func (r UpdateRequest) patch() model.UserPatch {
	return model.UserPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		AccessToken: r.AccessToken,
	}
}

// SignInRequest is the payload of POST /auth/login.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, required(emailRules)...),
		validation.Field(&r.Password, required(passwordRules)...),
	)
}
