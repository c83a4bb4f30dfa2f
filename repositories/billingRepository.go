package repositories

import (
	"context"

	"HospitalManagement/models"

	"gorm.io/gorm"
)

// BillingRepository stores bills, bill items and insurance claims.
type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) billViews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bills AS b").
		Select("b.id, b.patient_id, b.total_amount, b.is_paid, p.full_name AS patient_name").
		Joins("JOIN patients p ON p.id = b.patient_id")
}

func (r *BillingRepository) Create(ctx context.Context, bill *models.Bill) error {
	return createRecord(ctx, r.db, bill)
}

func (r *BillingRepository) GetByID(ctx context.Context, id uint) (*models.BillView, error) {
	var view models.BillView
	if err := scanView(r.billViews(ctx).Where("b.id = ?", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *BillingRepository) GetAll(ctx context.Context) ([]models.BillView, error) {
	views := make([]models.BillView, 0)
	err := scanViews(r.billViews(ctx).Order("b.id"), &views)
	return views, err
}

func (r *BillingRepository) Update(ctx context.Context, id uint, bill *models.Bill) error {
	return updateRecord(ctx, r.db, id, bill, "total_amount", "is_paid")
}

func (r *BillingRepository) Delete(ctx context.Context, id uint) error {
	return deleteRecord[models.Bill](ctx, r.db, id)
}

// Items

func (r *BillingRepository) CreateItem(ctx context.Context, item *models.BillItem) error {
	return createRecord(ctx, r.db, item)
}

func (r *BillingRepository) GetItemByID(ctx context.Context, id uint) (*models.BillItem, error) {
	return findRecord[models.BillItem](ctx, r.db, id)
}

func (r *BillingRepository) GetItemsByBill(ctx context.Context, billID uint) ([]models.BillItem, error) {
	return listRecords[models.BillItem](ctx, r.db, "bill_id = ?", billID)
}

func (r *BillingRepository) UpdateItem(ctx context.Context, id uint, item *models.BillItem) error {
	return updateRecord(ctx, r.db, id, item, "description", "amount")
}

func (r *BillingRepository) DeleteItem(ctx context.Context, id uint) error {
	return deleteRecord[models.BillItem](ctx, r.db, id)
}

// Insurance claims

func (r *BillingRepository) CreateInsuranceClaim(ctx context.Context, claim *models.InsuranceClaim) error {
	return createRecord(ctx, r.db, claim)
}

// GetInsuranceClaimByBill returns the single claim filed against a bill.
func (r *BillingRepository) GetInsuranceClaimByBill(ctx context.Context, billID uint) (*models.InsuranceClaim, error) {
	var claim models.InsuranceClaim
	if err := r.db.WithContext(ctx).Where("bill_id = ?", billID).Take(&claim).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &claim, nil
}

func (r *BillingRepository) UpdateInsuranceClaim(ctx context.Context, id uint, claim *models.InsuranceClaim) error {
	return updateRecord(ctx, r.db, id, claim, "provider_name", "status")
}

func (r *BillingRepository) DeleteInsuranceClaim(ctx context.Context, id uint) error {
	return deleteRecord[models.InsuranceClaim](ctx, r.db, id)
}
