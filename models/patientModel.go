package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID                    uint      `gorm:"primaryKey;autoIncrement;column:id"`
	FullName              string    `gorm:"size:150;not null;index;column:full_name"`
	DOB                   time.Time `gorm:"type:date;not null;column:dob"`
	Gender                string    `gorm:"size:20;column:gender"`
	BloodGroup            string    `gorm:"size:5;column:blood_group"`
	Allergies             string    `gorm:"type:text;column:allergies"`
	ChronicConditions     string    `gorm:"type:text;column:chronic_conditions"`
	Phone                 string    `gorm:"size:30;column:phone"`
	Email                 string    `gorm:"size:255;column:email"`
	EmergencyContactName  string    `gorm:"size:150;column:emergency_contact_name"`
	EmergencyContactPhone string    `gorm:"size:30;column:emergency_contact_phone"`
	EntryTime             time.Time `gorm:"autoCreateTime;column:entry_time"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientAddress model
type PatientAddress struct {
	ID          uint     `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID   uint     `gorm:"not null;index;column:patient_id"`
	AddressLine string   `gorm:"size:255;not null;column:address_line"`
	City        string   `gorm:"size:100;column:city"`
	State       string   `gorm:"size:100;column:state"`
	Patient     *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (PatientAddress) TableName() string {
	return "patient_addresses"
}

// MedicalRecord model
type MedicalRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID uint      `gorm:"not null;index;column:patient_id"`
	DoctorID  uint      `gorm:"not null;index;column:doctor_id"`
	Notes     string    `gorm:"type:text;column:notes"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at"`
	Patient   *Patient  `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Doctor    *Doctor   `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// Diagnosis model
type Diagnosis struct {
	ID              uint           `gorm:"primaryKey;autoIncrement;column:id"`
	MedicalRecordID uint           `gorm:"not null;index;column:medical_record_id"`
	Description     string         `gorm:"type:text;not null;column:description"`
	MedicalRecord   *MedicalRecord `gorm:"foreignKey:MedicalRecordID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
