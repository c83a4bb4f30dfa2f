package repositories

import (
	"context"

	"HospitalManagement/models"

	"gorm.io/gorm"
)

// PatientRepository stores patients with their addresses, medical records and diagnoses.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return createRecord(ctx, r.db, patient)
}

func (r *PatientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	return findRecord[models.Patient](ctx, r.db, id)
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	return listRecords[models.Patient](ctx, r.db)
}

func (r *PatientRepository) Update(ctx context.Context, id uint, patient *models.Patient) error {
	return updateRecord(ctx, r.db, id, patient,
		"full_name", "dob", "gender", "blood_group", "allergies", "chronic_conditions",
		"phone", "email", "emergency_contact_name", "emergency_contact_phone")
}

func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	return deleteRecord[models.Patient](ctx, r.db, id)
}

// Addresses

func (r *PatientRepository) CreateAddress(ctx context.Context, address *models.PatientAddress) error {
	return createRecord(ctx, r.db, address)
}

func (r *PatientRepository) GetAddressByID(ctx context.Context, id uint) (*models.PatientAddress, error) {
	return findRecord[models.PatientAddress](ctx, r.db, id)
}

func (r *PatientRepository) GetAddressesByPatient(ctx context.Context, patientID uint) ([]models.PatientAddress, error) {
	return listRecords[models.PatientAddress](ctx, r.db, "patient_id = ?", patientID)
}

func (r *PatientRepository) UpdateAddress(ctx context.Context, id uint, address *models.PatientAddress) error {
	return updateRecord(ctx, r.db, id, address, "address_line", "city", "state")
}

func (r *PatientRepository) DeleteAddress(ctx context.Context, id uint) error {
	return deleteRecord[models.PatientAddress](ctx, r.db, id)
}

// Medical records

func (r *PatientRepository) medicalRecordViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("medical_records AS m").
		Select("m.id, m.patient_id, m.doctor_id, m.notes, m.created_at, " +
			"p.full_name AS patient_name, d.full_name AS doctor_name").
		Joins("JOIN patients p ON p.id = m.patient_id").
		Joins("JOIN doctors d ON d.id = m.doctor_id")
}

func (r *PatientRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	return createRecord(ctx, r.db, record)
}

func (r *PatientRepository) GetMedicalRecordByID(ctx context.Context, id uint) (*models.MedicalRecordView, error) {
	var view models.MedicalRecordView
	if err := scanView(r.medicalRecordViews(ctx).Where("m.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *PatientRepository) GetMedicalRecordsByPatient(ctx context.Context, patientID uint) ([]models.MedicalRecordView, error) {
	views := make([]models.MedicalRecordView, 0)
	err := scanViews(r.medicalRecordViews(ctx).Where("m.patient_id = ?", patientID).Order("m.id"), &views)
	return views, err
}

func (r *PatientRepository) UpdateMedicalRecord(ctx context.Context, id uint, record *models.MedicalRecord) error {
	return updateRecord(ctx, r.db, id, record, "notes")
}

func (r *PatientRepository) DeleteMedicalRecord(ctx context.Context, id uint) error {
	return deleteRecord[models.MedicalRecord](ctx, r.db, id)
}

// Diagnoses

func (r *PatientRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	return createRecord(ctx, r.db, diagnosis)
}

func (r *PatientRepository) GetDiagnosisByID(ctx context.Context, id uint) (*models.Diagnosis, error) {
	return findRecord[models.Diagnosis](ctx, r.db, id)
}

func (r *PatientRepository) GetDiagnosesByMedicalRecord(ctx context.Context, recordID uint) ([]models.Diagnosis, error) {
	return listRecords[models.Diagnosis](ctx, r.db, "medical_record_id = ?", recordID)
}

func (r *PatientRepository) UpdateDiagnosis(ctx context.Context, id uint, diagnosis *models.Diagnosis) error {
	return updateRecord(ctx, r.db, id, diagnosis, "description")
}

func (r *PatientRepository) DeleteDiagnosis(ctx context.Context, id uint) error {
	return deleteRecord[models.Diagnosis](ctx, r.db, id)
}
