package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"preparos/internal/shared/constants"
)

type TransferModel struct {
	ID          uint            `gorm:"primaryKey"`
	BatchID     uint            `gorm:"not null;index"`
	Date        datatypes.Date  `gorm:"not null;index"`
	Destination string          `gorm:"size:255;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedBy   *string         `gorm:"size:36;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TransferModel) TableName() string {
	return constants.TableTransfers
}
