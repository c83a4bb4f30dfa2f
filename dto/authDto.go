package dto

import (
	"time"

	"HospitalManagement/models"
	"HospitalManagement/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Length(0, 150)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, utils.PasswordRules()...),
		validation.Field(&r.Role, utils.RoleRules()...),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type ResetCodeRequest struct {
	Email string `json:"email"`
}

func (r ResetCodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Code, validation.Required, validation.Length(6, 6), is.Digit),
		validation.Field(&r.NewPassword, utils.PasswordRules()...),
	)
}

type UserResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	Token      string    `json:"token"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Expiration time.Time `json:"expiration"`
}

// ProfileResponse is the caller identity as carried by the bearer token.
type ProfileResponse struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Expiration time.Time `json:"expiration"`
}

func NewProfileResponse(c utils.TokenClaims) ProfileResponse {
	return ProfileResponse{
		ID:         c.UserID,
		FullName:   c.Name,
		Email:      c.Email,
		Role:       c.Role,
		Expiration: c.ExpiresAt,
	}
}
