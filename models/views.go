package models

import (
	"time"
)

// The view types below are read-only projections joining the parent names
// a listing needs. They are never migrated.

type DoctorView struct {
	ID                 uint   `gorm:"column:id"`
	FullName           string `gorm:"column:full_name"`
	DepartmentID       uint   `gorm:"column:department_id"`
	SpecializationID   uint   `gorm:"column:specialization_id"`
	DepartmentName     string `gorm:"column:department_name"`
	SpecializationName string `gorm:"column:specialization_name"`
}

type AppointmentView struct {
	ID              uint      `gorm:"column:id"`
	PatientID       uint      `gorm:"column:patient_id"`
	DoctorID        uint      `gorm:"column:doctor_id"`
	AppointmentDate time.Time `gorm:"column:appointment_date"`
	StatusID        uint      `gorm:"column:status_id"`
	PatientName     string    `gorm:"column:patient_name"`
	DoctorName      string    `gorm:"column:doctor_name"`
	StatusName      string    `gorm:"column:status_name"`
}

type AdmissionView struct {
	ID            uint      `gorm:"column:id"`
	PatientID     uint      `gorm:"column:patient_id"`
	AdmissionDate time.Time `gorm:"column:admission_date"`
	PatientName   string    `gorm:"column:patient_name"`
}

type DischargeView struct {
	ID             uint      `gorm:"column:id"`
	PatientID      uint      `gorm:"column:patient_id"`
	AdmissionID    uint      `gorm:"column:admission_id"`
	DischargeDate  time.Time `gorm:"column:discharge_date"`
	DischargeNotes string    `gorm:"column:discharge_notes"`
	PatientName    string    `gorm:"column:patient_name"`
}

type MedicalRecordView struct {
	ID          uint      `gorm:"column:id"`
	PatientID   uint      `gorm:"column:patient_id"`
	DoctorID    uint      `gorm:"column:doctor_id"`
	Notes       string    `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
}

type BillView struct {
	ID          uint    `gorm:"column:id"`
	PatientID   uint    `gorm:"column:patient_id"`
	TotalAmount float64 `gorm:"column:total_amount"`
	IsPaid      bool    `gorm:"column:is_paid"`
	PatientName string  `gorm:"column:patient_name"`
}

type PrescriptionView struct {
	ID          uint      `gorm:"column:id"`
	PatientID   uint      `gorm:"column:patient_id"`
	DoctorID    uint      `gorm:"column:doctor_id"`
	DateIssued  time.Time `gorm:"column:date_issued"`
	PatientName string    `gorm:"column:patient_name"`
	DoctorName  string    `gorm:"column:doctor_name"`
}

type PrescriptionItemView struct {
	ID             uint   `gorm:"column:id"`
	PrescriptionID uint   `gorm:"column:prescription_id"`
	MedicineID     uint   `gorm:"column:medicine_id"`
	Dosage         string `gorm:"column:dosage"`
	DurationDays   int    `gorm:"column:duration_days"`
	MedicineName   string `gorm:"column:medicine_name"`
}

type LabResultView struct {
	ID          uint      `gorm:"column:id"`
	PatientID   uint      `gorm:"column:patient_id"`
	LabTestID   uint      `gorm:"column:lab_test_id"`
	Result      string    `gorm:"column:result"`
	TestDate    time.Time `gorm:"column:test_date"`
	PatientName string    `gorm:"column:patient_name"`
	LabTestName string    `gorm:"column:lab_test_name"`
}
