package dto

import (
	"time"

	"HospitalManagement/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PatientRequest is the body of both patient create and update.
type PatientRequest struct {
	FullName              string `json:"fullName"`
	DOB                   Date   `json:"dob"`
	Gender                string `json:"gender"`
	BloodGroup            string `json:"bloodGroup"`
	Allergies             string `json:"allergies"`
	ChronicConditions     string `json:"chronicConditions"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
}

func (r PatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.DOB, requiredDate),
		validation.Field(&r.BloodGroup, validation.Length(0, 5)),
		validation.Field(&r.Email, is.Email),
	)
}

func (r PatientRequest) ToModel() models.Patient {
	return models.Patient{
		FullName:              r.FullName,
		DOB:                   r.DOB.Time,
		Gender:                r.Gender,
		BloodGroup:            r.BloodGroup,
		Allergies:             r.Allergies,
		ChronicConditions:     r.ChronicConditions,
		Phone:                 r.Phone,
		Email:                 r.Email,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
	}
}

type PatientResponse struct {
	ID                    uint      `json:"id"`
	FullName              string    `json:"fullName"`
	DOB                   time.Time `json:"dob"`
	Gender                string    `json:"gender"`
	BloodGroup            string    `json:"bloodGroup"`
	Allergies             string    `json:"allergies"`
	ChronicConditions     string    `json:"chronicConditions"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	EmergencyContactName  string    `json:"emergencyContactName"`
	EmergencyContactPhone string    `json:"emergencyContactPhone"`
	EntryTime             time.Time `json:"entryTime"`
}

func NewPatientResponse(p models.Patient) PatientResponse {
	return PatientResponse{
		ID:                    p.ID,
		FullName:              p.FullName,
		DOB:                   p.DOB,
		Gender:                p.Gender,
		BloodGroup:            p.BloodGroup,
		Allergies:             p.Allergies,
		ChronicConditions:     p.ChronicConditions,
		Phone:                 p.Phone,
		Email:                 p.Email,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		EntryTime:             p.EntryTime,
	}
}

type PatientAddressRequest struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
}

func (r PatientAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AddressLine, validation.Required, validation.Length(1, 255)),
	)
}

func (r PatientAddressRequest) ToModel(patientID uint) models.PatientAddress {
	return models.PatientAddress{
		PatientID:   patientID,
		AddressLine: r.AddressLine,
		City:        r.City,
		State:       r.State,
	}
}

type PatientAddressResponse struct {
	ID          uint   `json:"id"`
	PatientID   uint   `json:"patientId"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
}

func NewPatientAddressResponse(a models.PatientAddress) PatientAddressResponse {
	return PatientAddressResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		AddressLine: a.AddressLine,
		City:        a.City,
		State:       a.State,
	}
}

type CreateMedicalRecordRequest struct {
	DoctorID uint   `json:"doctorId"`
	Notes    string `json:"notes"`
}

func (r CreateMedicalRecordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DoctorID, validation.Required),
	)
}

func (r CreateMedicalRecordRequest) ToModel(patientID uint) models.MedicalRecord {
	return models.MedicalRecord{
		PatientID: patientID,
		DoctorID:  r.DoctorID,
		Notes:     r.Notes,
	}
}

type UpdateMedicalRecordRequest struct {
	Notes string `json:"notes"`
}

func (r UpdateMedicalRecordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Notes, validation.Required),
	)
}

func (r UpdateMedicalRecordRequest) ToModel() models.MedicalRecord {
	return models.MedicalRecord{Notes: r.Notes}
}

type MedicalRecordResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patientId"`
	DoctorID    uint      `json:"doctorId"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	PatientName string    `json:"patientName,omitempty"`
	DoctorName  string    `json:"doctorName,omitempty"`
}

func NewMedicalRecordResponse(m models.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:        m.ID,
		PatientID: m.PatientID,
		DoctorID:  m.DoctorID,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func NewMedicalRecordViewResponse(v models.MedicalRecordView) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:          v.ID,
		PatientID:   v.PatientID,
		DoctorID:    v.DoctorID,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		PatientName: v.PatientName,
		DoctorName:  v.DoctorName,
	}
}

type DiagnosisRequest struct {
	Description string `json:"description"`
}

func (r DiagnosisRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required),
	)
}

func (r DiagnosisRequest) ToModel(medicalRecordID uint) models.Diagnosis {
	return models.Diagnosis{
		MedicalRecordID: medicalRecordID,
		Description:     r.Description,
	}
}

type DiagnosisResponse struct {
	ID              uint   `json:"id"`
	MedicalRecordID uint   `json:"medicalRecordId"`
	Description     string `json:"description"`
}

func NewDiagnosisResponse(d models.Diagnosis) DiagnosisResponse {
	return DiagnosisResponse{
		ID:              d.ID,
		MedicalRecordID: d.MedicalRecordID,
		Description:     d.Description,
	}
}
