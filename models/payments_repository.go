package models

import (
	"errors"

	"gorm.io/gorm"
)

type PaymentsRepository struct {
	db *gorm.DB
}

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrDuplicateTransactionCode is returned when the unique index on
// transaction codes rejects a write. The index is the final arbiter;
// TransactionCodeExists is only an advisory pre-check.
var ErrDuplicateTransactionCode = errors.New("transaction code already exists")

func NewPaymentsRepository(db *gorm.DB) *PaymentsRepository {
	return &PaymentsRepository{
		db: db,
	}
}

func (r *PaymentsRepository) CreatePayment(payment *Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransactionCode
		}
		return err
	}
	return nil
}

func (r *PaymentsRepository) ListPayments() ([]Payment, error) {
	var payments []Payment
	if err := r.db.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentsRepository) DeletePayment(id string) error {
	res := r.db.Delete(&Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// TransactionCodeExists reports whether any payment carries the given
// code. Callers racing this check against a write must still handle
// ErrDuplicateTransactionCode.
func (r *PaymentsRepository) TransactionCodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&Payment{}).Where("transaction_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
