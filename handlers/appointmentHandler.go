package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentHandler(repository *repositories.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{repository: repository}
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.repository.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(appointments, dto.NewAppointmentViewResponse))
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	appointment, err := h.repository.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewAppointmentViewResponse(*appointment))
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req dto.AppointmentRequest
	if !bindRequest(c, &req) {
		return
	}
	appointment := req.ToModel()
	if err := h.repository.Create(c.Request.Context(), &appointment); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/appointments/%d", appointment.ID), dto.NewAppointmentResponse(appointment))
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AppointmentRequest
	if !bindRequest(c, &req) {
		return
	}
	appointment := req.ToModel()
	if err := h.repository.Update(c.Request.Context(), id, &appointment); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
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

// Statuses

func (h *AppointmentHandler) GetAllStatuses(c *gin.Context) {
	statuses, err := h.repository.GetAllStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(statuses, dto.NewAppointmentStatusResponse))
}

func (h *AppointmentHandler) GetStatusByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	status, err := h.repository.GetStatusByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewAppointmentStatusResponse(*status))
}

func (h *AppointmentHandler) CreateStatus(c *gin.Context) {
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	status := req.ToAppointmentStatus()
	if err := h.repository.CreateStatus(c.Request.Context(), &status); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/appointments/statuses/%d", status.ID), dto.NewAppointmentStatusResponse(status))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	status := req.ToAppointmentStatus()
	if err := h.repository.UpdateStatus(c.Request.Context(), id, &status); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *AppointmentHandler) DeleteStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteStatus(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Admissions

func (h *AppointmentHandler) GetAllAdmissions(c *gin.Context) {
	admissions, err := h.repository.GetAllAdmissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(admissions, dto.NewAdmissionViewResponse))
}

func (h *AppointmentHandler) GetAdmissionByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	admission, err := h.repository.GetAdmissionByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewAdmissionViewResponse(*admission))
}

func (h *AppointmentHandler) CreateAdmission(c *gin.Context) {
	var req dto.CreateAdmissionRequest
	if !bindRequest(c, &req) {
		return
	}
	admission := req.ToModel()
	if err := h.repository.CreateAdmission(c.Request.Context(), &admission); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/appointments/admissions/%d", admission.ID), dto.NewAdmissionResponse(admission))
}

func (h *AppointmentHandler) UpdateAdmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateAdmissionRequest
	if !bindRequest(c, &req) {
		return
	}
	admission := req.ToModel()
	if err := h.repository.UpdateAdmission(c.Request.Context(), id, &admission); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *AppointmentHandler) DeleteAdmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteAdmission(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Discharges

func (h *AppointmentHandler) GetAllDischarges(c *gin.Context) {
	discharges, err := h.repository.GetAllDischarges(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(discharges, dto.NewDischargeViewResponse))
}

func (h *AppointmentHandler) GetDischargeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	discharge, err := h.repository.GetDischargeByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewDischargeViewResponse(*discharge))
}

func (h *AppointmentHandler) CreateDischarge(c *gin.Context) {
	var req dto.CreateDischargeRequest
	if !bindRequest(c, &req) {
		return
	}
	discharge := req.ToModel()
	if err := h.repository.CreateDischarge(c.Request.Context(), &discharge); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/appointments/discharges/%d", discharge.ID), dto.NewDischargeResponse(discharge))
}

func (h *AppointmentHandler) UpdateDischarge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDischargeRequest
	if !bindRequest(c, &req) {
		return
	}
	discharge := req.ToModel()
	if err := h.repository.UpdateDischarge(c.Request.Context(), id, &discharge); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *AppointmentHandler) DeleteDischarge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteDischarge(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}
