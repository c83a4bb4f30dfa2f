package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// SetupAppointmentRoutes mounts /appointments with statuses, admissions and discharges.
func SetupAppointmentRoutes(api *gin.RouterGroup, tokens utils.TokenVerifier, h *handlers.AppointmentHandler) {
	appointments := guardedGroup(api, "/appointments", tokens, utils.RoleAdmin, utils.RoleDoctor, utils.RolePatient)

	appointments.GET("", h.GetAllAppointments)
	appointments.POST("", h.CreateAppointment)
	appointments.GET("/:id", h.GetAppointmentByID)
	appointments.PUT("/:id", h.UpdateAppointment)
	appointments.DELETE("/:id", h.DeleteAppointment)

	appointments.GET("/statuses", h.GetAllStatuses)
	appointments.POST("/statuses", h.CreateStatus)
	appointments.GET("/statuses/:id", h.GetStatusByID)
	appointments.PUT("/statuses/:id", h.UpdateStatus)
	appointments.DELETE("/statuses/:id", h.DeleteStatus)

	appointments.GET("/admissions", h.GetAllAdmissions)
	appointments.POST("/admissions", h.CreateAdmission)
	appointments.GET("/admissions/:id", h.GetAdmissionByID)
	appointments.PUT("/admissions/:id", h.UpdateAdmission)
	appointments.DELETE("/admissions/:id", h.DeleteAdmission)

	appointments.GET("/discharges", h.GetAllDischarges)
	appointments.POST("/discharges", h.CreateDischarge)
	appointments.GET("/discharges/:id", h.GetDischargeByID)
	appointments.PUT("/discharges/:id", h.UpdateDischarge)
	appointments.DELETE("/discharges/:id", h.DeleteDischarge)
}
