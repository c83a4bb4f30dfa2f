package dto

import (
	"time"

	"HospitalManagement/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AppointmentRequest struct {
	PatientID       uint `json:"patientId"`
	DoctorID        uint `json:"doctorId"`
	AppointmentDate Date `json:"appointmentDate"`
	StatusID        uint `json:"statusId"`
}

func (r AppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.DoctorID, validation.Required),
		validation.Field(&r.AppointmentDate, requiredDate),
		validation.Field(&r.StatusID, validation.Required),
	)
}

func (r AppointmentRequest) ToModel() models.Appointment {
	return models.Appointment{
		PatientID:       r.PatientID,
		DoctorID:        r.DoctorID,
		AppointmentDate: r.AppointmentDate.Time,
		StatusID:        r.StatusID,
	}
}

type AppointmentResponse struct {
	ID              uint      `json:"id"`
	PatientID       uint      `json:"patientId"`
	DoctorID        uint      `json:"doctorId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	StatusID        uint      `json:"statusId"`
	PatientName     string    `json:"patientName,omitempty"`
	DoctorName      string    `json:"doctorName,omitempty"`
	StatusName      string    `json:"statusName,omitempty"`
}

func NewAppointmentResponse(a models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		StatusID:        a.StatusID,
	}
}

func NewAppointmentViewResponse(v models.AppointmentView) AppointmentResponse {
	return AppointmentResponse{
		ID:              v.ID,
		PatientID:       v.PatientID,
		DoctorID:        v.DoctorID,
		AppointmentDate: v.AppointmentDate,
		StatusID:        v.StatusID,
		PatientName:     v.PatientName,
		DoctorName:      v.DoctorName,
		StatusName:      v.StatusName,
	}
}

func (r NameRequest) ToAppointmentStatus() models.AppointmentStatus {
	return models.AppointmentStatus{Name: r.Name}
}

func NewAppointmentStatusResponse(s models.AppointmentStatus) NameResponse {
	return NameResponse{ID: s.ID, Name: s.Name}
}

type CreateAdmissionRequest struct {
	PatientID     uint `json:"patientId"`
	AdmissionDate Date `json:"admissionDate"`
}

func (r CreateAdmissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.AdmissionDate, requiredDate),
	)
}

func (r CreateAdmissionRequest) ToModel() models.Admission {
	return models.Admission{
		PatientID:     r.PatientID,
		AdmissionDate: r.AdmissionDate.Time,
	}
}

type UpdateAdmissionRequest struct {
	AdmissionDate Date `json:"admissionDate"`
}

func (r UpdateAdmissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AdmissionDate, requiredDate),
	)
}

func (r UpdateAdmissionRequest) ToModel() models.Admission {
	return models.Admission{AdmissionDate: r.AdmissionDate.Time}
}

type AdmissionResponse struct {
	ID            uint      `json:"id"`
	PatientID     uint      `json:"patientId"`
	AdmissionDate time.Time `json:"admissionDate"`
	PatientName   string    `json:"patientName,omitempty"`
}

func NewAdmissionResponse(a models.Admission) AdmissionResponse {
	return AdmissionResponse{
		ID:            a.ID,
		PatientID:     a.PatientID,
		AdmissionDate: a.AdmissionDate,
	}
}

func NewAdmissionViewResponse(v models.AdmissionView) AdmissionResponse {
	return AdmissionResponse{
		ID:            v.ID,
		PatientID:     v.PatientID,
		AdmissionDate: v.AdmissionDate,
		PatientName:   v.PatientName,
	}
}

type CreateDischargeRequest struct {
	PatientID      uint   `json:"patientId"`
	AdmissionID    uint   `json:"admissionId"`
	DischargeDate  Date   `json:"dischargeDate"`
	DischargeNotes string `json:"dischargeNotes"`
}

func (r CreateDischargeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.AdmissionID, validation.Required),
		validation.Field(&r.DischargeDate, requiredDate),
	)
}

func (r CreateDischargeRequest) ToModel() models.Discharge {
	return models.Discharge{
		PatientID:      r.PatientID,
		AdmissionID:    r.AdmissionID,
		DischargeDate:  r.DischargeDate.Time,
		DischargeNotes: r.DischargeNotes,
	}
}

type UpdateDischargeRequest struct {
	DischargeDate  Date   `json:"dischargeDate"`
	DischargeNotes string `json:"dischargeNotes"`
}

func (r UpdateDischargeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DischargeDate, requiredDate),
	)
}

func (r UpdateDischargeRequest) ToModel() models.Discharge {
	return models.Discharge{
		DischargeDate:  r.DischargeDate.Time,
		DischargeNotes: r.DischargeNotes,
	}
}

type DischargeResponse struct {
	ID             uint      `json:"id"`
	PatientID      uint      `json:"patientId"`
	AdmissionID    uint      `json:"admissionId"`
	DischargeDate  time.Time `json:"dischargeDate"`
	DischargeNotes string    `json:"dischargeNotes"`
	PatientName    string    `json:"patientName,omitempty"`
}

func NewDischargeResponse(d models.Discharge) DischargeResponse {
	return DischargeResponse{
		ID:             d.ID,
		PatientID:      d.PatientID,
		AdmissionID:    d.AdmissionID,
		DischargeDate:  d.DischargeDate,
		DischargeNotes: d.DischargeNotes,
	}
}

func NewDischargeViewResponse(v models.DischargeView) DischargeResponse {
	return DischargeResponse{
		ID:             v.ID,
		PatientID:      v.PatientID,
		AdmissionID:    v.AdmissionID,
		DischargeDate:  v.DischargeDate,
		DischargeNotes: v.DischargeNotes,
		PatientName:    v.PatientName,
	}
}
