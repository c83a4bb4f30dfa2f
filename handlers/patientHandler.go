package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	repository *repositories.PatientRepository
}

func NewPatientHandler(repository *repositories.PatientRepository) *PatientHandler {
	return &PatientHandler{repository: repository}
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.repository.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(patients, dto.NewPatientResponse))
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	patient, err := h.repository.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewPatientResponse(*patient))
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req dto.PatientRequest
	if !bindRequest(c, &req) {
		return
	}
	patient := req.ToModel()
	if err := h.repository.Create(c.Request.Context(), &patient); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/patients/%d", patient.ID), dto.NewPatientResponse(patient))
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatientRequest
	if !bindRequest(c, &req) {
		return
	}
	patient := req.ToModel()
	if err := h.repository.Update(c.Request.Context(), id, &patient); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
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

// Addresses

func (h *PatientHandler) GetPatientAddresses(c *gin.Context) {
	patientID, ok := parseID(c)
	if !ok {
		return
	}
	addresses, err := h.repository.GetAddressesByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(addresses, dto.NewPatientAddressResponse))
}

func (h *PatientHandler) GetAddressByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	address, err := h.repository.GetAddressByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewPatientAddressResponse(*address))
}

func (h *PatientHandler) CreateAddress(c *gin.Context) {
	patientID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatientAddressRequest
	if !bindRequest(c, &req) {
		return
	}
	address := req.ToModel(patientID)
	if err := h.repository.CreateAddress(c.Request.Context(), &address); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/patients/addresses/%d", address.ID), dto.NewPatientAddressResponse(address))
}

func (h *PatientHandler) UpdateAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatientAddressRequest
	if !bindRequest(c, &req) {
		return
	}
	address := req.ToModel(0)
	if err := h.repository.UpdateAddress(c.Request.Context(), id, &address); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *PatientHandler) DeleteAddress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteAddress(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Medical records

func (h *PatientHandler) GetPatientMedicalRecords(c *gin.Context) {
	patientID, ok := parseID(c)
	if !ok {
		return
	}
	records, err := h.repository.GetMedicalRecordsByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(records, dto.NewMedicalRecordViewResponse))
}

func (h *PatientHandler) GetMedicalRecordByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := h.repository.GetMedicalRecordByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewMedicalRecordViewResponse(*record))
}

func (h *PatientHandler) CreateMedicalRecord(c *gin.Context) {
	patientID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateMedicalRecordRequest
	if !bindRequest(c, &req) {
		return
	}
	record := req.ToModel(patientID)
	if err := h.repository.CreateMedicalRecord(c.Request.Context(), &record); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/patients/medical-records/%d", record.ID), dto.NewMedicalRecordResponse(record))
}

func (h *PatientHandler) UpdateMedicalRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateMedicalRecordRequest
	if !bindRequest(c, &req) {
		return
	}
	record := req.ToModel()
	if err := h.repository.UpdateMedicalRecord(c.Request.Context(), id, &record); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *PatientHandler) DeleteMedicalRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteMedicalRecord(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Diagnoses

func (h *PatientHandler) GetRecordDiagnoses(c *gin.Context) {
	recordID, ok := parseID(c)
	if !ok {
		return
	}
	diagnoses, err := h.repository.GetDiagnosesByMedicalRecord(c.Request.Context(), recordID)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(diagnoses, dto.NewDiagnosisResponse))
}

func (h *PatientHandler) GetDiagnosisByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	diagnosis, err := h.repository.GetDiagnosisByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewDiagnosisResponse(*diagnosis))
}

func (h *PatientHandler) CreateDiagnosis(c *gin.Context) {
	recordID, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DiagnosisRequest
	if !bindRequest(c, &req) {
		return
	}
	diagnosis := req.ToModel(recordID)
	if err := h.repository.CreateDiagnosis(c.Request.Context(), &diagnosis); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/patients/diagnoses/%d", diagnosis.ID), dto.NewDiagnosisResponse(diagnosis))
}

func (h *PatientHandler) UpdateDiagnosis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DiagnosisRequest
	if !bindRequest(c, &req) {
		return
	}
	diagnosis := req.ToModel(0)
	if err := h.repository.UpdateDiagnosis(c.Request.Context(), id, &diagnosis); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *PatientHandler) DeleteDiagnosis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteDiagnosis(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}
