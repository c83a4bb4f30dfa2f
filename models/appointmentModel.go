package models

import (
	"time"

	"gorm.io/gorm"
)

// AppointmentStatus model
type AppointmentStatus struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id"`
	Name string `gorm:"size:50;not null;column:name"`
}

func (AppointmentStatus) TableName() string {
	return "appointment_statuses"
}

// SeedAppointmentStatuses inserts the default appointment statuses.
func SeedAppointmentStatuses(db *gorm.DB) error {
	initialStatuses := []AppointmentStatus{
		{Name: "Scheduled"},
		{Name: "Completed"},
		{Name: "Cancelled"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, status := range initialStatuses {
			if err := tx.FirstOrCreate(&status, AppointmentStatus{Name: status.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Appointment model
type Appointment struct {
	ID              uint               `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID       uint               `gorm:"not null;index;column:patient_id"`
	DoctorID        uint               `gorm:"not null;index;column:doctor_id"`
	AppointmentDate time.Time          `gorm:"not null;index;column:appointment_date"`
	StatusID        uint               `gorm:"not null;index;column:status_id"`
	Patient         *Patient           `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor          *Doctor            `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Status          *AppointmentStatus `gorm:"foreignKey:StatusID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Admission model
type Admission struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID     uint      `gorm:"not null;index;column:patient_id"`
	AdmissionDate time.Time `gorm:"not null;column:admission_date"`
	Patient       *Patient  `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Admission) TableName() string {
	return "admissions"
}

// Discharge model. Each admission has at most one discharge.
type Discharge struct {
	ID             uint       `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID      uint       `gorm:"not null;index;column:patient_id"`
	AdmissionID    uint       `gorm:"not null;uniqueIndex:idx_discharges_admission;column:admission_id"`
	DischargeDate  time.Time  `gorm:"not null;column:discharge_date"`
	DischargeNotes string     `gorm:"type:text;column:discharge_notes"`
	Patient        *Patient   `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Admission      *Admission `gorm:"foreignKey:AdmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Discharge) TableName() string {
	return "discharges"
}
