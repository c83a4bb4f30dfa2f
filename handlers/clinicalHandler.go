package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"

	"github.com/gin-gonic/gin"
)

type ClinicalHandler struct {
	repository *repositories.ClinicalRepository
}

func NewClinicalHandler(repository *repositories.ClinicalRepository) *ClinicalHandler {
	return &ClinicalHandler{repository: repository}
}

// Prescriptions

func (h *ClinicalHandler) GetAllPrescriptions(c *gin.Context) {
	prescriptions, err := h.repository.GetAllPrescriptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(prescriptions, dto.NewPrescriptionViewResponse))
}

func (h *ClinicalHandler) GetPrescriptionByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	prescription, err := h.repository.GetPrescriptionByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewPrescriptionViewResponse(*prescription))
}

func (h *ClinicalHandler) CreatePrescription(c *gin.Context) {
	var req dto.PrescriptionRequest
	if !bindRequest(c, &req) {
		return
	}
	prescription := req.ToModel()
	if err := h.repository.CreatePrescription(c.Request.Context(), &prescription); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/clinical/prescriptions/%d", prescription.ID), dto.NewPrescriptionResponse(prescription))
}

func (h *ClinicalHandler) UpdatePrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PrescriptionRequest
	if !bindRequest(c, &req) {
		return
	}
	prescription := req.ToModel()
	if err := h.repository.UpdatePrescription(c.Request.Context(), id, &prescription); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *ClinicalHandler) DeletePrescription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeletePrescription(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Prescription items

func (h *ClinicalHandler) GetPrescriptionItems(c *gin.Context) {
	prescriptionID, ok := parseID(c)
	if !ok {
		return
	}
	items, err := h.repository.GetItemsByPrescription(c.Request.Context(), prescriptionID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(items, dto.NewPrescriptionItemViewResponse))
}

func (h *ClinicalHandler) GetPrescriptionItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repository.GetPrescriptionItemByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewPrescriptionItemViewResponse(*item))
}

func (h *ClinicalHandler) CreatePrescriptionItem(c *gin.Context) {
	prescriptionID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PrescriptionItemRequest
	if !bindRequest(c, &req) {
		return
	}
	item := req.ToModel(prescriptionID)
	if err := h.repository.CreatePrescriptionItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/clinical/prescription-items/%d", item.ID), dto.NewPrescriptionItemResponse(item))
}

func (h *ClinicalHandler) UpdatePrescriptionItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PrescriptionItemRequest
	if !bindRequest(c, &req) {
		return
	}
	item := req.ToModel(0)
	if err := h.repository.UpdatePrescriptionItem(c.Request.Context(), id, &item); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *ClinicalHandler) DeletePrescriptionItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeletePrescriptionItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Medicines

func (h *ClinicalHandler) GetAllMedicines(c *gin.Context) {
	medicines, err := h.repository.GetAllMedicines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(medicines, dto.NewMedicineResponse))
}

func (h *ClinicalHandler) GetMedicineByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	medicine, err := h.repository.GetMedicineByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewMedicineResponse(*medicine))
}

func (h *ClinicalHandler) CreateMedicine(c *gin.Context) {
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	medicine := req.ToMedicine()
	if err := h.repository.CreateMedicine(c.Request.Context(), &medicine); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/clinical/medicines/%d", medicine.ID), dto.NewMedicineResponse(medicine))
}

func (h *ClinicalHandler) UpdateMedicine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	medicine := req.ToMedicine()
	if err := h.repository.UpdateMedicine(c.Request.Context(), id, &medicine); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *ClinicalHandler) DeleteMedicine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteMedicine(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Lab tests

func (h *ClinicalHandler) GetAllLabTests(c *gin.Context) {
	tests, err := h.repository.GetAllLabTests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(tests, dto.NewLabTestResponse))
}

func (h *ClinicalHandler) GetLabTestByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	test, err := h.repository.GetLabTestByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewLabTestResponse(*test))
}

func (h *ClinicalHandler) CreateLabTest(c *gin.Context) {
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	test := req.ToLabTest()
	if err := h.repository.CreateLabTest(c.Request.Context(), &test); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/clinical/lab-tests/%d", test.ID), dto.NewLabTestResponse(test))
}

func (h *ClinicalHandler) UpdateLabTest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	test := req.ToLabTest()
	if err := h.repository.UpdateLabTest(c.Request.Context(), id, &test); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *ClinicalHandler) DeleteLabTest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteLabTest(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Lab results

func (h *ClinicalHandler) GetAllLabResults(c *gin.Context) {
	results, err := h.repository.GetAllLabResults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(results, dto.NewLabResultViewResponse))
}

func (h *ClinicalHandler) GetLabResultByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := h.repository.GetLabResultByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewLabResultViewResponse(*result))
}

func (h *ClinicalHandler) CreateLabResult(c *gin.Context) {
	var req dto.CreateLabResultRequest
	if !bindRequest(c, &req) {
		return
	}
	result := req.ToModel()
	if err := h.repository.CreateLabResult(c.Request.Context(), &result); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/clinical/lab-results/%d", result.ID), dto.NewLabResultResponse(result))
}

func (h *ClinicalHandler) UpdateLabResult(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateLabResultRequest
	if !bindRequest(c, &req) {
		return
	}
	result := req.ToModel()
	if err := h.repository.UpdateLabResult(c.Request.Context(), id, &result); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *ClinicalHandler) DeleteLabResult(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteLabResult(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}
