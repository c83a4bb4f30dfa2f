package models

// Bill model
type Bill struct {
	ID          uint     `gorm:"primaryKey;autoIncrement;column:id"`
	PatientID   uint     `gorm:"not null;index;column:patient_id"`
	TotalAmount float64  `gorm:"type:numeric(18,2);not null;default:0;column:total_amount"`
	IsPaid      bool     `gorm:"not null;default:false;column:is_paid"`
	Patient     *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Bill) TableName() string {
	return "bills"
}

// BillItem model
type BillItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement;column:id"`
	BillID      uint    `gorm:"not null;index;column:bill_id"`
	Description string  `gorm:"size:255;not null;column:description"`
	Amount      float64 `gorm:"type:numeric(18,2);not null;column:amount"`
	Bill        *Bill   `gorm:"foreignKey:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (BillItem) TableName() string {
	return "bill_items"
}

// InsuranceClaim model. Each bill has at most one claim.
type InsuranceClaim struct {
	ID           uint   `gorm:"primaryKey;autoIncrement;column:id"`
	BillID       uint   `gorm:"not null;uniqueIndex:idx_insurance_claims_bill;column:bill_id"`
	ProviderName string `gorm:"size:150;not null;column:provider_name"`
	Status       string `gorm:"size:50;column:status"`
	Bill         *Bill  `gorm:"foreignKey:BillID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (InsuranceClaim) TableName() string {
	return "insurance_claims"
}
