package dto

import (
	"time"

	"HospitalManagement/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type PrescriptionRequest struct {
	PatientID  uint `json:"patientId"`
	DoctorID   uint `json:"doctorId"`
	DateIssued Date `json:"dateIssued"`
}

func (r PrescriptionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.DoctorID, validation.Required),
		validation.Field(&r.DateIssued, requiredDate),
	)
}

func (r PrescriptionRequest) ToModel() models.Prescription {
	return models.Prescription{
		PatientID:  r.PatientID,
		DoctorID:   r.DoctorID,
		DateIssued: r.DateIssued.Time,
	}
}

type PrescriptionResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patientId"`
	DoctorID    uint      `json:"doctorId"`
	DateIssued  time.Time `json:"dateIssued"`
	PatientName string    `json:"patientName,omitempty"`
	DoctorName  string    `json:"doctorName,omitempty"`
}

func NewPrescriptionResponse(p models.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:         p.ID,
		PatientID:  p.PatientID,
		DoctorID:   p.DoctorID,
		DateIssued: p.DateIssued,
	}
}

func NewPrescriptionViewResponse(v models.PrescriptionView) PrescriptionResponse {
	return PrescriptionResponse{
		ID:          v.ID,
		PatientID:   v.PatientID,
		DoctorID:    v.DoctorID,
		DateIssued:  v.DateIssued,
		PatientName: v.PatientName,
		DoctorName:  v.DoctorName,
	}
}

type PrescriptionItemRequest struct {
	MedicineID   uint   `json:"medicineId"`
	Dosage       string `json:"dosage"`
	DurationDays int    `json:"durationDays"`
}

func (r PrescriptionItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MedicineID, validation.Required),
		validation.Field(&r.Dosage, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.DurationDays, validation.Required, validation.Min(1)),
	)
}

func (r PrescriptionItemRequest) ToModel(prescriptionID uint) models.PrescriptionItem {
	return models.PrescriptionItem{
		PrescriptionID: prescriptionID,
		MedicineID:     r.MedicineID,
		Dosage:         r.Dosage,
		DurationDays:   r.DurationDays,
	}
}

type PrescriptionItemResponse struct {
	ID             uint   `json:"id"`
	PrescriptionID uint   `json:"prescriptionId"`
	MedicineID     uint   `json:"medicineId"`
	Dosage         string `json:"dosage"`
	DurationDays   int    `json:"durationDays"`
	MedicineName   string `json:"medicineName,omitempty"`
}

func NewPrescriptionItemResponse(i models.PrescriptionItem) PrescriptionItemResponse {
	return PrescriptionItemResponse{
		ID:             i.ID,
		PrescriptionID: i.PrescriptionID,
		MedicineID:     i.MedicineID,
		Dosage:         i.Dosage,
		DurationDays:   i.DurationDays,
	}
}

func NewPrescriptionItemViewResponse(v models.PrescriptionItemView) PrescriptionItemResponse {
	return PrescriptionItemResponse{
		ID:             v.ID,
		PrescriptionID: v.PrescriptionID,
		MedicineID:     v.MedicineID,
		Dosage:         v.Dosage,
		DurationDays:   v.DurationDays,
		MedicineName:   v.MedicineName,
	}
}

func (r NameRequest) ToMedicine() models.Medicine {
	return models.Medicine{Name: r.Name}
}

func NewMedicineResponse(m models.Medicine) NameResponse {
	return NameResponse{ID: m.ID, Name: m.Name}
}

func (r NameRequest) ToLabTest() models.LabTest {
	return models.LabTest{Name: r.Name}
}

func NewLabTestResponse(t models.LabTest) NameResponse {
	return NameResponse{ID: t.ID, Name: t.Name}
}

type CreateLabResultRequest struct {
	PatientID uint   `json:"patientId"`
	LabTestID uint   `json:"labTestId"`
	Result    string `json:"result"`
	TestDate  Date   `json:"testDate"`
}

func (r CreateLabResultRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.LabTestID, validation.Required),
		validation.Field(&r.TestDate, requiredDate),
	)
}

func (r CreateLabResultRequest) ToModel() models.LabResult {
	return models.LabResult{
		PatientID: r.PatientID,
		LabTestID: r.LabTestID,
		Result:    r.Result,
		TestDate:  r.TestDate.Time,
	}
}

type UpdateLabResultRequest struct {
	Result   string `json:"result"`
	TestDate Date   `json:"testDate"`
}

func (r UpdateLabResultRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TestDate, requiredDate),
	)
}

func (r UpdateLabResultRequest) ToModel() models.LabResult {
	return models.LabResult{
		Result:   r.Result,
		TestDate: r.TestDate.Time,
	}
}

type LabResultResponse struct {
	ID          uint      `json:"id"`
	PatientID   uint      `json:"patientId"`
	LabTestID   uint      `json:"labTestId"`
	Result      string    `json:"result"`
	TestDate    time.Time `json:"testDate"`
	PatientName string    `json:"patientName,omitempty"`
	LabTestName string    `json:"labTestName,omitempty"`
}

func NewLabResultResponse(l models.LabResult) LabResultResponse {
	return LabResultResponse{
		ID:        l.ID,
		PatientID: l.PatientID,
		LabTestID: l.LabTestID,
		Result:    l.Result,
		TestDate:  l.TestDate,
	}
}

func NewLabResultViewResponse(v models.LabResultView) LabResultResponse {
	return LabResultResponse{
		ID:          v.ID,
		PatientID:   v.PatientID,
		LabTestID:   v.LabTestID,
		Result:      v.Result,
		TestDate:    v.TestDate,
		PatientName: v.PatientName,
		LabTestName: v.LabTestName,
	}
}
