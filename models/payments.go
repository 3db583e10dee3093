package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod enumerates the accepted tender types.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodMpesa PaymentMethod = "M-Pesa"
)

// Valid reports whether m is one of the accepted methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodMpesa
}

// Payment is an immutable record of money received. The transaction
// code carries the provider reference (e.g. an M-Pesa confirmation)
// and is unique across all payments.
type Payment struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Method          PaymentMethod   `gorm:"not null" json:"method"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	TransactionCode string          `gorm:"uniqueIndex;not null" json:"transactionCode"`
	CreatedAt       time.Time       `json:"date"`
}

func (p *Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
