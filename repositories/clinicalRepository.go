package repositories

import (
	"context"

	"HospitalManagement/models"

	"gorm.io/gorm"
)

// ClinicalRepository stores prescriptions, medicines and lab work.
type ClinicalRepository struct {
	db *gorm.DB
}

func NewClinicalRepository(db *gorm.DB) *ClinicalRepository {
	return &ClinicalRepository{db: db}
}

// Prescriptions

func (r *ClinicalRepository) prescriptionViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("prescriptions AS pr").
		Select("pr.id, pr.patient_id, pr.doctor_id, pr.date_issued, " +
			"p.full_name AS patient_name, d.full_name AS doctor_name").
		Joins("JOIN patients p ON p.id = pr.patient_id").
		Joins("JOIN doctors d ON d.id = pr.doctor_id")
}

func (r *ClinicalRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	return createRecord(ctx, r.db, prescription)
}

func (r *ClinicalRepository) GetPrescriptionByID(ctx context.Context, id uint) (*models.PrescriptionView, error) {
	var view models.PrescriptionView
	if err := scanView(r.prescriptionViews(ctx).Where("pr.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ClinicalRepository) GetAllPrescriptions(ctx context.Context) ([]models.PrescriptionView, error) {
	views := make([]models.PrescriptionView, 0)
	err := scanViews(r.prescriptionViews(ctx).Order("pr.id"), &views)
	return views, err
}

func (r *ClinicalRepository) UpdatePrescription(ctx context.Context, id uint, prescription *models.Prescription) error {
	return updateRecord(ctx, r.db, id, prescription, "patient_id", "doctor_id", "date_issued")
}

func (r *ClinicalRepository) DeletePrescription(ctx context.Context, id uint) error {
	return deleteRecord[models.Prescription](ctx, r.db, id)
}

// Prescription items

func (r *ClinicalRepository) prescriptionItemViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("prescription_items AS pi").
		Select("pi.id, pi.prescription_id, pi.medicine_id, pi.dosage, pi.duration_days, " +
			"m.name AS medicine_name").
		Joins("JOIN medicines m ON m.id = pi.medicine_id")
}

func (r *ClinicalRepository) CreatePrescriptionItem(ctx context.Context, item *models.PrescriptionItem) error {
	return createRecord(ctx, r.db, item)
}

func (r *ClinicalRepository) GetPrescriptionItemByID(ctx context.Context, id uint) (*models.PrescriptionItemView, error) {
	var view models.PrescriptionItemView
	if err := scanView(r.prescriptionItemViews(ctx).Where("pi.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ClinicalRepository) GetItemsByPrescription(ctx context.Context, prescriptionID uint) ([]models.PrescriptionItemView, error) {
	views := make([]models.PrescriptionItemView, 0)
	err := scanViews(r.prescriptionItemViews(ctx).Where("pi.prescription_id = ?", prescriptionID).Order("pi.id"), &views)
	return views, err
}

func (r *ClinicalRepository) UpdatePrescriptionItem(ctx context.Context, id uint, item *models.PrescriptionItem) error {
	return updateRecord(ctx, r.db, id, item, "medicine_id", "dosage", "duration_days")
}

func (r *ClinicalRepository) DeletePrescriptionItem(ctx context.Context, id uint) error {
	return deleteRecord[models.PrescriptionItem](ctx, r.db, id)
}

// Medicines

func (r *ClinicalRepository) CreateMedicine(ctx context.Context, medicine *models.Medicine) error {
	return createRecord(ctx, r.db, medicine)
}

func (r *ClinicalRepository) GetMedicineByID(ctx context.Context, id uint) (*models.Medicine, error) {
	return findRecord[models.Medicine](ctx, r.db, id)
}

func (r *ClinicalRepository) GetAllMedicines(ctx context.Context) ([]models.Medicine, error) {
	return listRecords[models.Medicine](ctx, r.db)
}

func (r *ClinicalRepository) UpdateMedicine(ctx context.Context, id uint, medicine *models.Medicine) error {
	return updateRecord(ctx, r.db, id, medicine, "name")
}

func (r *ClinicalRepository) DeleteMedicine(ctx context.Context, id uint) error {
	return deleteRecord[models.Medicine](ctx, r.db, id)
}

// Lab tests

func (r *ClinicalRepository) CreateLabTest(ctx context.Context, test *models.LabTest) error {
	return createRecord(ctx, r.db, test)
}

func (r *ClinicalRepository) GetLabTestByID(ctx context.Context, id uint) (*models.LabTest, error) {
	return findRecord[models.LabTest](ctx, r.db, id)
}

func (r *ClinicalRepository) GetAllLabTests(ctx context.Context) ([]models.LabTest, error) {
	return listRecords[models.LabTest](ctx, r.db)
}

func (r *ClinicalRepository) UpdateLabTest(ctx context.Context, id uint, test *models.LabTest) error {
	return updateRecord(ctx, r.db, id, test, "name")
}

func (r *ClinicalRepository) DeleteLabTest(ctx context.Context, id uint) error {
	return deleteRecord[models.LabTest](ctx, r.db, id)
}

// Lab results

func (r *ClinicalRepository) labResultViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("lab_results AS lr").
		Select("lr.id, lr.patient_id, lr.lab_test_id, lr.result, lr.test_date, " +
			"p.full_name AS patient_name, lt.name AS lab_test_name").
		Joins("JOIN patients p ON p.id = lr.patient_id").
		Joins("JOIN lab_tests lt ON lt.id = lr.lab_test_id")
}

func (r *ClinicalRepository) CreateLabResult(ctx context.Context, result *models.LabResult) error {
	return createRecord(ctx, r.db, result)
}

func (r *ClinicalRepository) GetLabResultByID(ctx context.Context, id uint) (*models.LabResultView, error) {
	var view models.LabResultView
	if err := scanView(r.labResultViews(ctx).Where("lr.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ClinicalRepository) GetAllLabResults(ctx context.Context) ([]models.LabResultView, error) {
	views := make([]models.LabResultView, 0)
	err := scanViews(r.labResultViews(ctx).Order("lr.id"), &views)
	return views, err
}

func (r *ClinicalRepository) UpdateLabResult(ctx context.Context, id uint, result *models.LabResult) error {
	return updateRecord(ctx, r.db, id, result, "result", "test_date")
}

func (r *ClinicalRepository) DeleteLabResult(ctx context.Context, id uint) error {
	return deleteRecord[models.LabResult](ctx, r.db, id)
}
