package controllers

import (
	"HospitalManagement/middlewares"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// guardedGroup returns a route group reachable only with a valid bearer token
// holding one of the given roles. No roles means any authenticated caller.
func guardedGroup(parent *gin.RouterGroup, path string, tokens utils.TokenVerifier, roles ...string) *gin.RouterGroup {
	guards := []gin.HandlerFunc{middlewares.TokenAuthMiddleware(tokens)}
	if len(roles) > 0 {
		guards = append(guards, middlewares.RoleAuthMiddleware(roles...))
	}
	return parent.Group(path, guards...)
}
