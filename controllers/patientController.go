package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes mounts /patients and the patient detail records.
func SetupPatientRoutes(api *gin.RouterGroup, tokens utils.TokenVerifier, h *handlers.PatientHandler) {
	patients := guardedGroup(api, "/patients", tokens, utils.RoleAdmin, utils.RoleDoctor, utils.RolePatient)

	patients.GET("", h.GetAllPatients)
	patients.POST("", h.CreatePatient)
	patients.GET("/:id", h.GetPatientByID)
	patients.PUT("/:id", h.UpdatePatient)
	patients.DELETE("/:id", h.DeletePatient)

	patients.GET("/:id/addresses", h.GetPatientAddresses)
	patients.POST("/:id/addresses", h.CreateAddress)
	patients.GET("/addresses/:id", h.GetAddressByID)
	patients.PUT("/addresses/:id", h.UpdateAddress)
	patients.DELETE("/addresses/:id", h.DeleteAddress)

	patients.GET("/:id/medical-records", h.GetPatientMedicalRecords)
	patients.POST("/:id/medical-records", h.CreateMedicalRecord)
	patients.GET("/medical-records/:id", h.GetMedicalRecordByID)
	patients.PUT("/medical-records/:id", h.UpdateMedicalRecord)
	patients.DELETE("/medical-records/:id", h.DeleteMedicalRecord)

	patients.GET("/medical-records/:id/diagnoses", h.GetRecordDiagnoses)
	patients.POST("/medical-records/:id/diagnoses", h.CreateDiagnosis)
	patients.GET("/diagnoses/:id", h.GetDiagnosisByID)
	patients.PUT("/diagnoses/:id", h.UpdateDiagnosis)
	patients.DELETE("/diagnoses/:id", h.DeleteDiagnosis)
}
