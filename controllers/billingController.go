package controllers

import (
	"HospitalManagement/handlers"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
)

// SetupBillingRoutes mounts /billing with bill items and insurance claims.
func SetupBillingRoutes(api *gin.RouterGroup, tokens utils.TokenVerifier, h *handlers.BillingHandler) {
	billing := guardedGroup(api, "/billing", tokens, utils.RoleAdmin, utils.RoleDoctor)

	billing.GET("", h.GetAllBills)
	billing.POST("", h.CreateBill)
	billing.GET("/:id", h.GetBillByID)
	billing.PUT("/:id", h.UpdateBill)
	billing.DELETE("/:id", h.DeleteBill)

	billing.GET("/:id/items", h.GetBillItems)
	billing.POST("/:id/items", h.CreateItem)
	billing.GET("/items/:id", h.GetItemByID)
	billing.PUT("/items/:id", h.UpdateItem)
	billing.DELETE("/items/:id", h.DeleteItem)

	billing.GET("/:id/insurance", h.GetBillInsuranceClaim)
	billing.POST("/:id/insurance", h.CreateInsuranceClaim)
	billing.PUT("/insurance/:id", h.UpdateInsuranceClaim)
	billing.DELETE("/insurance/:id", h.DeleteInsuranceClaim)
}
