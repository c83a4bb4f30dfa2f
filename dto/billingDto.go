package dto

import (
	"HospitalManagement/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBillRequest struct {
	PatientID   uint    `json:"patientId"`
	TotalAmount float64 `json:"totalAmount"`
	IsPaid      bool    `json:"isPaid"`
}

func (r CreateBillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PatientID, validation.Required),
		validation.Field(&r.TotalAmount, validation.Min(0.0)),
	)
}

func (r CreateBillRequest) ToModel() models.Bill {
	return models.Bill{
		PatientID:   r.PatientID,
		TotalAmount: r.TotalAmount,
		IsPaid:      r.IsPaid,
	}
}

type UpdateBillRequest struct {
	TotalAmount float64 `json:"totalAmount"`
	IsPaid      bool    `json:"isPaid"`
}

func (r UpdateBillRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TotalAmount, validation.Min(0.0)),
	)
}

func (r UpdateBillRequest) ToModel() models.Bill {
	return models.Bill{
		TotalAmount: r.TotalAmount,
		IsPaid:      r.IsPaid,
	}
}

type BillResponse struct {
	ID          uint    `json:"id"`
	PatientID   uint    `json:"patientId"`
	TotalAmount float64 `json:"totalAmount"`
	IsPaid      bool    `json:"isPaid"`
	PatientName string  `json:"patientName,omitempty"`
}

func NewBillResponse(b models.Bill) BillResponse {
	return BillResponse{
		ID:          b.ID,
		PatientID:   b.PatientID,
		TotalAmount: b.TotalAmount,
		IsPaid:      b.IsPaid,
	}
}

func NewBillViewResponse(v models.BillView) BillResponse {
	return BillResponse{
		ID:          v.ID,
		PatientID:   v.PatientID,
		TotalAmount: v.TotalAmount,
		IsPaid:      v.IsPaid,
		PatientName: v.PatientName,
	}
}

type BillItemRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (r BillItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Amount, validation.Min(0.0)),
	)
}

func (r BillItemRequest) ToModel(billID uint) models.BillItem {
	return models.BillItem{
		BillID:      billID,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

type BillItemResponse struct {
	ID          uint    `json:"id"`
	BillID      uint    `json:"billId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func NewBillItemResponse(i models.BillItem) BillItemResponse {
	return BillItemResponse{
		ID:          i.ID,
		BillID:      i.BillID,
		Description: i.Description,
		Amount:      i.Amount,
	}
}

type InsuranceClaimRequest struct {
	ProviderName string `json:"providerName"`
	Status       string `json:"status"`
}

func (r InsuranceClaimRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProviderName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Status, validation.Length(0, 50)),
	)
}

func (r InsuranceClaimRequest) ToModel(billID uint) models.InsuranceClaim {
	return models.InsuranceClaim{
		BillID:       billID,
		ProviderName: r.ProviderName,
		Status:       r.Status,
	}
}

type InsuranceClaimResponse struct {
	ID           uint   `json:"id"`
	BillID       uint   `json:"billId"`
	ProviderName string `json:"providerName"`
	Status       string `json:"status"`
}

func NewInsuranceClaimResponse(c models.InsuranceClaim) InsuranceClaimResponse {
	return InsuranceClaimResponse{
		ID:           c.ID,
		BillID:       c.BillID,
		ProviderName: c.ProviderName,
		Status:       c.Status,
	}
}
