package handlers

import (
	"fmt"
	"net/http"

	"HospitalManagement/dto"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	repository *repositories.DoctorRepository
}

func NewDoctorHandler(repository *repositories.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{repository: repository}
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.repository.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(doctors, dto.NewDoctorViewResponse))
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doctor, err := h.repository.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewDoctorViewResponse(*doctor))
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req dto.DoctorRequest
	if !bindRequest(c, &req) {
		return
	}
	doctor := req.ToModel()
	if err := h.repository.Create(c.Request.Context(), &doctor); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/doctors/%d", doctor.ID), dto.NewDoctorResponse(doctor))
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DoctorRequest
	if !bindRequest(c, &req) {
		return
	}
	doctor := req.ToModel()
	if err := h.repository.Update(c.Request.Context(), id, &doctor); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
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

// Departments

func (h *DoctorHandler) GetAllDepartments(c *gin.Context) {
	departments, err := h.repository.GetAllDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(departments, dto.NewDepartmentResponse))
}

func (h *DoctorHandler) GetDepartmentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	department, err := h.repository.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewDepartmentResponse(*department))
}

func (h *DoctorHandler) CreateDepartment(c *gin.Context) {
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	department := req.ToDepartment()
	if err := h.repository.CreateDepartment(c.Request.Context(), &department); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/doctors/departments/%d", department.ID), dto.NewDepartmentResponse(department))
}

func (h *DoctorHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	department := req.ToDepartment()
	if err := h.repository.UpdateDepartment(c.Request.Context(), id, &department); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *DoctorHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteDepartment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

// Specializations

func (h *DoctorHandler) GetAllSpecializations(c *gin.Context) {
	specializations, err := h.repository.GetAllSpecializations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.MapSlice(specializations, dto.NewSpecializationResponse))
}

func (h *DoctorHandler) GetSpecializationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	specialization, err := h.repository.GetSpecializationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, middlewares.MessageOK, dto.NewSpecializationResponse(*specialization))
}

func (h *DoctorHandler) CreateSpecialization(c *gin.Context) {
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	specialization := req.ToSpecialization()
	if err := h.repository.CreateSpecialization(c.Request.Context(), &specialization); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondCreated(c, fmt.Sprintf("/api/doctors/specializations/%d", specialization.ID), dto.NewSpecializationResponse(specialization))
}

func (h *DoctorHandler) UpdateSpecialization(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.NameRequest
	if !bindRequest(c, &req) {
		return
	}
	specialization := req.ToSpecialization()
	if err := h.repository.UpdateSpecialization(c.Request.Context(), id, &specialization); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}

func (h *DoctorHandler) DeleteSpecialization(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.repository.DeleteSpecialization(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondNoContent(c)
}
