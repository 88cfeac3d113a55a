package models

import (
	"sort"
	"strings"
)

// GeneralError is the FieldErrors key used for errors not tied to a form field.
const GeneralError = "general"

// FieldErrors maps form field names to user-facing messages.
// It is returned to forms instead of being raised, and doubles as an error value.
type FieldErrors map[string]string

// Error joins the messages in field order.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up form.
type Registration struct {
	Email           string `json:"email" validate:"notblank"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password,notblank"`
}

// File is an uploaded file attached to a multipart submission.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// GameForm is the create/edit game form.
// ClearPicture marks that the user removed the current picture.
type GameForm struct {
	Title        string   `json:"title" validate:"notblank,max=24"`
	Category     Category `json:"category" validate:"required,category"`
	Price        string   `json:"price" validate:"required,price"`
	Summary      string   `json:"summary"`
	Picture      *File    `json:"-"`
	ClearPicture bool     `json:"-"`
}

// ProfileForm is the user details edit form.
type ProfileForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   *File  `json:"-"`
}
