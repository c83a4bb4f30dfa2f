package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// SetupDoctorRoutes mounts /doctors with departments and specializations.
func SetupDoctorRoutes(api *gin.RouterGroup, tokens utils.TokenVerifier, h *handlers.DoctorHandler) {
	doctors := guardedGroup(api, "/doctors", tokens, utils.RoleAdmin, utils.RoleDoctor)

	doctors.GET("", h.GetAllDoctors)
	doctors.POST("", h.CreateDoctor)
	doctors.GET("/:id", h.GetDoctorByID)
	doctors.PUT("/:id", h.UpdateDoctor)
	doctors.DELETE("/:id", h.DeleteDoctor)

	doctors.GET("/departments", h.GetAllDepartments)
	doctors.POST("/departments", h.CreateDepartment)
	doctors.GET("/departments/:id", h.GetDepartmentByID)
	doctors.PUT("/departments/:id", h.UpdateDepartment)
	doctors.DELETE("/departments/:id", h.DeleteDepartment)

	doctors.GET("/specializations", h.GetAllSpecializations)
	doctors.POST("/specializations", h.CreateSpecialization)
	doctors.GET("/specializations/:id", h.GetSpecializationByID)
	doctors.PUT("/specializations/:id", h.UpdateSpecialization)
	doctors.DELETE("/specializations/:id", h.DeleteSpecialization)
}
