package repositories

import (
	"context"

	"HospitalManagement/models"

	"gorm.io/gorm"
)

// AppointmentRepository stores appointments, their statuses, admissions and discharges.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) appointmentViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.id, a.patient_id, a.doctor_id, a.appointment_date, a.status_id, " +
			"p.full_name AS patient_name, d.full_name AS doctor_name, s.name AS status_name").
		Joins("JOIN patients p ON p.id = a.patient_id").
		Joins("JOIN doctors d ON d.id = a.doctor_id").
		Joins("JOIN appointment_statuses s ON s.id = a.status_id")
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return createRecord(ctx, r.db, appointment)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.AppointmentView, error) {
	var view models.AppointmentView
	if err := scanView(r.appointmentViews(ctx).Where("a.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.AppointmentView, error) {
	views := make([]models.AppointmentView, 0)
	err := scanViews(r.appointmentViews(ctx).Order("a.appointment_date, a.id"), &views)
	return views, err
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, appointment *models.Appointment) error {
	return updateRecord(ctx, r.db, id, appointment, "patient_id", "doctor_id", "appointment_date", "status_id")
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	return deleteRecord[models.Appointment](ctx, r.db, id)
}

// Statuses

func (r *AppointmentRepository) CreateStatus(ctx context.Context, status *models.AppointmentStatus) error {
	return createRecord(ctx, r.db, status)
}

func (r *AppointmentRepository) GetStatusByID(ctx context.Context, id uint) (*models.AppointmentStatus, error) {
	return findRecord[models.AppointmentStatus](ctx, r.db, id)
}

func (r *AppointmentRepository) GetAllStatuses(ctx context.Context) ([]models.AppointmentStatus, error) {
	return listRecords[models.AppointmentStatus](ctx, r.db)
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status *models.AppointmentStatus) error {
	return updateRecord(ctx, r.db, id, status, "name")
}

func (r *AppointmentRepository) DeleteStatus(ctx context.Context, id uint) error {
	return deleteRecord[models.AppointmentStatus](ctx, r.db, id)
}

// Admissions

func (r *AppointmentRepository) admissionViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("admissions AS ad").
		Select("ad.id, ad.patient_id, ad.admission_date, p.full_name AS patient_name").
		Joins("JOIN patients p ON p.id = ad.patient_id")
}

func (r *AppointmentRepository) CreateAdmission(ctx context.Context, admission *models.Admission) error {
	return createRecord(ctx, r.db, admission)
}

func (r *AppointmentRepository) GetAdmissionByID(ctx context.Context, id uint) (*models.AdmissionView, error) {
	var view models.AdmissionView
	if err := scanView(r.admissionViews(ctx).Where("ad.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *AppointmentRepository) GetAllAdmissions(ctx context.Context) ([]models.AdmissionView, error) {
	views := make([]models.AdmissionView, 0)
	err := scanViews(r.admissionViews(ctx).Order("ad.id"), &views)
	return views, err
}

func (r *AppointmentRepository) UpdateAdmission(ctx context.Context, id uint, admission *models.Admission) error {
	return updateRecord(ctx, r.db, id, admission, "admission_date")
}

func (r *AppointmentRepository) DeleteAdmission(ctx context.Context, id uint) error {
	return deleteRecord[models.Admission](ctx, r.db, id)
}

// Discharges

func (r *AppointmentRepository) dischargeViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("discharges AS di").
		Select("di.id, di.patient_id, di.admission_id, di.discharge_date, di.discharge_notes, " +
			"p.full_name AS patient_name").
		Joins("JOIN patients p ON p.id = di.patient_id")
}

func (r *AppointmentRepository) CreateDischarge(ctx context.Context, discharge *models.Discharge) error {
	return createRecord(ctx, r.db, discharge)
}

func (r *AppointmentRepository) GetDischargeByID(ctx context.Context, id uint) (*models.DischargeView, error) {
	var view models.DischargeView
	if err := scanView(r.dischargeViews(ctx).Where("di.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *AppointmentRepository) GetAllDischarges(ctx context.Context) ([]models.DischargeView, error) {
	views := make([]models.DischargeView, 0)
	err := scanViews(r.dischargeViews(ctx).Order("di.id"), &views)
	return views, err
}

func (r *AppointmentRepository) UpdateDischarge(ctx context.Context, id uint, discharge *models.Discharge) error {
	return updateRecord(ctx, r.db, id, discharge, "discharge_date", "discharge_notes")
}

func (r *AppointmentRepository) DeleteDischarge(ctx context.Context, id uint) error {
	return deleteRecord[models.Discharge](ctx, r.db, id)
}
