package models

import (
	"time"
)

// Medicine model
type Medicine struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Name string `gorm:"size:150;not null;column:name"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// Prescription model
type Prescription struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID  uint      `gorm:"not null;index;column:patient_id"`
	DoctorID   uint      `gorm:"not null;index;column:doctor_id"`
	DateIssued time.Time `gorm:"not null;column:date_issued"`
	Patient    *Patient  `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor     *Doctor   `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionItem model
type PrescriptionItem struct {
	ID             uint          `gorm:"primaryKey;autoIncrement;column:id"`
	PrescriptionID uint          `gorm:"not null;index;column:prescription_id"`
	MedicineID     uint          `gorm:"not null;index;column:medicine_id"`
	Dosage         string        `gorm:"size:100;not null;column:dosage"`
	DurationDays   int           `gorm:"not null;column:duration_days"`
	Prescription   *Prescription `gorm:"foreignKey:PrescriptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Medicine       *Medicine     `gorm:"foreignKey:MedicineID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

// LabTest model
type LabTest struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Name string `gorm:"size:150;not null;column:name"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}

// LabResult model
type LabResult struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID uint      `gorm:"not null;index;column:patient_id"`
	LabTestID uint      `gorm:"not null;index;column:lab_test_id"`
	Result    string    `gorm:"type:text;column:result"`
	TestDate  time.Time `gorm:"not null;column:test_date"`
	Patient   *Patient  `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	LabTest   *LabTest  `gorm:"foreignKey:LabTestID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
