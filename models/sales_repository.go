package models

import (
	"errors"

	"gorm.io/gorm"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{
		db: db,
	}
}

func (r *SalesRepository) CreateSale(sale *Sale) error {
	if err := r.db.Create(sale).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransactionCode
		}
		return err
	}
	return nil
}

// ListSales returns all sales with the referenced payment joined in
// where one exists. Sales are never deleted, so this is the full
// history.
func (r *SalesRepository) ListSales() ([]Sale, error) {
	var sales []Sale
	if err := r.db.Preload("Payment").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
