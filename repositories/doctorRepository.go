package repositories

import (
	"context"

	"HospitalManagement/models"

	"gorm.io/gorm"
)

// DoctorRepository stores doctors, departments and specializations.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) doctorViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("doctors AS d").
		Select("d.id, d.full_name, d.department_id, d.specialization_id, " +
			"dep.name AS department_name, s.name AS specialization_name").
		Joins("JOIN departments dep ON dep.id = d.department_id").
		Joins("JOIN specializations s ON s.id = d.specialization_id")
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return createRecord(ctx, r.db, doctor)
}

func (r *DoctorRepository) GetByID(ctx context.Context, id uint) (*models.DoctorView, error) {
	var view models.DoctorView
	if err := scanView(r.doctorViews(ctx).Where("d.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.DoctorView, error) {
	views := make([]models.DoctorView, 0)
	err := scanViews(r.doctorViews(ctx).Order("d.id"), &views)
	return views, err
}

func (r *DoctorRepository) Update(ctx context.Context, id uint, doctor *models.Doctor) error {
	return updateRecord(ctx, r.db, id, doctor, "full_name", "department_id", "specialization_id")
}

func (r *DoctorRepository) Delete(ctx context.Context, id uint) error {
	return deleteRecord[models.Doctor](ctx, r.db, id)
}

// Departments

func (r *DoctorRepository) CreateDepartment(ctx context.Context, department *models.Department) error {
	return createRecord(ctx, r.db, department)
}

func (r *DoctorRepository) GetDepartmentByID(ctx context.Context, id uint) (*models.Department, error) {
	return findRecord[models.Department](ctx, r.db, id)
}

func (r *DoctorRepository) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	return listRecords[models.Department](ctx, r.db)
}

func (r *DoctorRepository) UpdateDepartment(ctx context.Context, id uint, department *models.Department) error {
	return updateRecord(ctx, r.db, id, department, "name")
}

func (r *DoctorRepository) DeleteDepartment(ctx context.Context, id uint) error {
	return deleteRecord[models.Department](ctx, r.db, id)
}

// Specializations

func (r *DoctorRepository) CreateSpecialization(ctx context.Context, specialization *models.Specialization) error {
	return createRecord(ctx, r.db, specialization)
}

func (r *DoctorRepository) GetSpecializationByID(ctx context.Context, id uint) (*models.Specialization, error) {
	return findRecord[models.Specialization](ctx, r.db, id)
}

func (r *DoctorRepository) GetAllSpecializations(ctx context.Context) ([]models.Specialization, error) {
	return listRecords[models.Specialization](ctx, r.db)
}

func (r *DoctorRepository) UpdateSpecialization(ctx context.Context, id uint, specialization *models.Specialization) error {
	return updateRecord(ctx, r.db, id, specialization, "name")
}

func (r *DoctorRepository) DeleteSpecialization(ctx context.Context, id uint) error {
	return deleteRecord[models.Specialization](ctx, r.db, id)
}
