package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// SetupClinicalRoutes mounts /clinical: prescriptions, medicines and lab work.
func SetupClinicalRoutes(api *gin.RouterGroup, tokens utils.TokenVerifier, h *handlers.ClinicalHandler) {
	clinical := guardedGroup(api, "/clinical", tokens, utils.RoleAdmin, utils.RoleDoctor)

	clinical.GET("/prescriptions", h.GetAllPrescriptions)
	clinical.POST("/prescriptions", h.CreatePrescription)
	clinical.GET("/prescriptions/:id", h.GetPrescriptionByID)
	clinical.PUT("/prescriptions/:id", h.UpdatePrescription)
	clinical.DELETE("/prescriptions/:id", h.DeletePrescription)

	clinical.GET("/prescriptions/:id/items", h.GetPrescriptionItems)
	clinical.POST("/prescriptions/:id/items", h.CreatePrescriptionItem)
	clinical.GET("/prescription-items/:id", h.GetPrescriptionItemByID)
	clinical.PUT("/prescription-items/:id", h.UpdatePrescriptionItem)
	clinical.DELETE("/prescription-items/:id", h.DeletePrescriptionItem)

	clinical.GET("/medicines", h.GetAllMedicines)
	clinical.POST("/medicines", h.CreateMedicine)
	clinical.GET("/medicines/:id", h.GetMedicineByID)
	clinical.PUT("/medicines/:id", h.UpdateMedicine)
	clinical.DELETE("/medicines/:id", h.DeleteMedicine)

	clinical.GET("/lab-tests", h.GetAllLabTests)
	clinical.POST("/lab-tests", h.CreateLabTest)
	clinical.GET("/lab-tests/:id", h.GetLabTestByID)
	clinical.PUT("/lab-tests/:id", h.UpdateLabTest)
	clinical.DELETE("/lab-tests/:id", h.DeleteLabTest)

	clinical.GET("/lab-results", h.GetAllLabResults)
	clinical.POST("/lab-results", h.CreateLabResult)
	clinical.GET("/lab-results/:id", h.GetLabResultByID)
	clinical.PUT("/lab-results/:id", h.UpdateLabResult)
	clinical.DELETE("/lab-results/:id", h.DeleteLabResult)
}
