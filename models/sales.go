package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is one recorded sale line. ProductName is a denormalized copy,
// not a foreign key: deleting a product leaves past sales intact.
// PaymentID is a weak reference; a sale never owns its payment.
type Sale struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	ProductName     string          `gorm:"not null" json:"productName"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod   PaymentMethod   `gorm:"not null" json:"paymentMethod"`
	TransactionCode *string         `gorm:"uniqueIndex" json:"transactionCode,omitempty"`
	PaymentID       *string         `gorm:"type:uuid" json:"paymentId,omitempty"`
	Payment         *Payment        `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
	CreatedAt       time.Time       `json:"date"`
}

func (s *Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
