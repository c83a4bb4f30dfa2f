package dto

import (
	"HospitalManagement/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type DoctorRequest struct {
	FullName         string `json:"fullName"`
	DepartmentID     uint   `json:"departmentId"`
	SpecializationID uint   `json:"specializationId"`
}

func (r DoctorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.DepartmentID, validation.Required),
		validation.Field(&r.SpecializationID, validation.Required),
	)
}

func (r DoctorRequest) ToModel() models.Doctor {
	return models.Doctor{
		FullName:         r.FullName,
		DepartmentID:     r.DepartmentID,
		SpecializationID: r.SpecializationID,
	}
}

type DoctorResponse struct {
	ID                 uint   `json:"id"`
	FullName           string `json:"fullName"`
	DepartmentID       uint   `json:"departmentId"`
	SpecializationID   uint   `json:"specializationId"`
	DepartmentName     string `json:"departmentName,omitempty"`
	SpecializationName string `json:"specializationName,omitempty"`
}

func NewDoctorResponse(d models.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:               d.ID,
		FullName:         d.FullName,
		DepartmentID:     d.DepartmentID,
		SpecializationID: d.SpecializationID,
	}
}

func NewDoctorViewResponse(v models.DoctorView) DoctorResponse {
	return DoctorResponse{
		ID:                 v.ID,
		FullName:           v.FullName,
		DepartmentID:       v.DepartmentID,
		SpecializationID:   v.SpecializationID,
		DepartmentName:     v.DepartmentName,
		SpecializationName: v.SpecializationName,
	}
}

func (r NameRequest) ToDepartment() models.Department {
	return models.Department{Name: r.Name}
}

func (r NameRequest) ToSpecialization() models.Specialization {
	return models.Specialization{Name: r.Name}
}

func NewDepartmentResponse(d models.Department) NameResponse {
	return NameResponse{ID: d.ID, Name: d.Name}
}

func NewSpecializationResponse(s models.Specialization) NameResponse {
	return NameResponse{ID: s.ID, Name: s.Name}
}
