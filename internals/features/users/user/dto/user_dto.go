package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

/* =======================================================
   TRANSFER DTOs
   ======================================================= */

// UserDTO — proyeksi UserModel tanpa email
type UserDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"notblank,max=100"`
}

// UpdateEmailRequest — set / clear contact address (email kosong = hapus)
type UpdateEmailRequest struct {
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// Normalize — trim & lowercase; empty string becomes nil
func (r *UpdateEmailRequest) Normalize() {
	if r.Email == nil {
		return
	}
	v := strings.TrimSpace(strings.ToLower(*r.Email))
	if v == "" {
		r.Email = nil
		return
	}
	r.Email = &v
}

func (r *UpdateEmailRequest) Validate() error {
	return validate.Struct(r)
}

// ValidateRequest checks every tag on a UserDTO (used by the HTTP layer).
// A blank name reports ErrInvalidUserName, same as ToModel.
func (d *UserDTO) ValidateRequest() error {
	if err := validate.Var(d.Name, "notblank"); err != nil {
		return ErrInvalidUserName
	}
	return validate.Struct(d)
}

// FieldErrors mengubah validator.ValidationErrors menjadi map field → pesan.
// Returns nil when err is not a validation error.
func FieldErrors(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "notblank", "required":
			msg = fe.Field() + " is required."
		case "email":
			msg = "invalid email format."
		case "max":
			msg = fe.Field() + " must be at most " + fe.Param() + " characters."
		default:
			msg = "invalid format."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
