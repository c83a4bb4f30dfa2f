package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service services.AuthService
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindRequest(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.Logger(c).WithField("user_id", user.ID).Info("user registered")
	middlewares.RespondCreated(c, fmt.Sprintf("/api/auth/users/%d", user.ID), dto.NewUserResponse(*user))
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindRequest(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, http.StatusOK, "Login successful", resp)
}

// GetProfile returns the identity carried by the caller's token.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewProfileResponse(*claims))
}

func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(users, dto.NewUserResponse))
}

func (h *AuthHandler) GetUserByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewUserResponse(*user))
}

// SendResetCode emails a password reset code. The response does not reveal
// whether the email belongs to an account.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var req dto.ResetCodeRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := h.service.SendResetCode(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, http.StatusOK, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword sets a new password after checking the emailed code.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindRequest(c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, http.StatusOK, "Password has been reset", nil)
}
