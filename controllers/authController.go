package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
	Tokens  utils.TokenVerifier
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler, tokens utils.TokenVerifier) *AuthController {
	return &AuthController{
		Handler: authHandler,
		Tokens:  tokens,
	}
}

// RegisterRoutes mounts the /auth routes under api.
func (ac *AuthController) RegisterRoutes(api *gin.RouterGroup) {
	// Public routes: No authentication required
	public := api.Group("/auth")
	{
		public.POST("/register", ac.Handler.Register)
		public.POST("/login", ac.Handler.Login)
		public.POST("/password/reset-code", ac.Handler.SendResetCode)
		public.POST("/password/reset", ac.Handler.ResetPassword)
	}

	// Any authenticated role
	authenticated := guardedGroup(api, "/auth", ac.Tokens)
	{
		authenticated.GET("/me", ac.Handler.GetProfile)
	}

	admin := guardedGroup(api, "/auth/users", ac.Tokens, utils.RoleAdmin)
	{
		admin.GET("", ac.Handler.GetAllUsers)
		admin.GET("/:id", ac.Handler.GetUserByID)
	}
}
