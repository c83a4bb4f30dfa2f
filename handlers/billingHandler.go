package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	repository *repositories.BillingRepository
}

func NewBillingHandler(repository *repositories.BillingRepository) *BillingHandler {
	return &BillingHandler{repository: repository}
}

func (h *BillingHandler) GetAllBills(c *gin.Context) {
	bills, err := h.repository.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(bills, dto.NewBillViewResponse))
}

func (h *BillingHandler) GetBillByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	bill, err := h.repository.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewBillViewResponse(*bill))
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindRequest(c, &req) {
		return
	}
	bill := req.ToModel()
	if err := h.repository.Create(c.Request.Context(), &bill); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/billing/%d", bill.ID), dto.NewBillResponse(bill))
}

func (h *BillingHandler) UpdateBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBillRequest
	if !bindRequest(c, &req) {
		return
	}
	bill := req.ToModel()
	if err := h.repository.Update(c.Request.Context(), id, &bill); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *BillingHandler) DeleteBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Items

func (h *BillingHandler) GetBillItems(c *gin.Context) {
	billID, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.repository.GetItemsByBill(c.Request.Context(), billID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(items, dto.NewBillItemResponse))
}

func (h *BillingHandler) GetItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repository.GetItemByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewBillItemResponse(*item))
}

func (h *BillingHandler) CreateItem(c *gin.Context) {
	billID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BillItemRequest
	if !bindRequest(c, &req) {
		return
	}
	item := req.ToModel(billID)
	if err := h.repository.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/billing/items/%d", item.ID), dto.NewBillItemResponse(item))
}

func (h *BillingHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.BillItemRequest
	if !bindRequest(c, &req) {
		return
	}
	item := req.ToModel(0)
	if err := h.repository.UpdateItem(c.Request.Context(), id, &item); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *BillingHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Insurance claims

func (h *BillingHandler) GetBillInsuranceClaim(c *gin.Context) {
	billID, ok := parseID(c)
	if !ok {
		return
	}
	claim, err := h.repository.GetInsuranceClaimByBill(c.Request.Context(), billID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewInsuranceClaimResponse(*claim))
}

// CreateInsuranceClaim files the claim of a bill. A second claim for the same bill is a 409.
func (h *BillingHandler) CreateInsuranceClaim(c *gin.Context) {
	billID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.InsuranceClaimRequest
	if !bindRequest(c, &req) {
		return
	}
	claim := req.ToModel(billID)
	if err := h.repository.CreateInsuranceClaim(c.Request.Context(), &claim); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/billing/%d/insurance", billID), dto.NewInsuranceClaimResponse(claim))
}

func (h *BillingHandler) UpdateInsuranceClaim(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.InsuranceClaimRequest
	if !bindRequest(c, &req) {
		return
	}
	claim := req.ToModel(0)
	if err := h.repository.UpdateInsuranceClaim(c.Request.Context(), id, &claim); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *BillingHandler) DeleteInsuranceClaim(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteInsuranceClaim(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}
