package payload

import (
	"cartrack/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.Role, validation.In("admin", "user")),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

func (r CreateUserRequest) ToMessage() core.CreateUserMessage {
	return core.CreateUserMessage{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		Name:     r.Name,
		Email:    r.Email,
	}
}

// UserPatchRequest enumerates the mutable user fields; anything else in the
// body is rejected by the strict decoder.
type UserPatchRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
}

func (r UserPatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Role, validation.In("admin", "user")),
		validation.Field(&r.Name, validation.NilOrNotEmpty),
	)
}

func (r UserPatchRequest) ToPatch() core.UserPatch {
	return core.UserPatch{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		Name:     r.Name,
		Email:    r.Email,
	}
}
