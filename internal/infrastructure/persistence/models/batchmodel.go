package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"preparos/internal/shared/constants"
)

// BatchModel is the persistence model of a batch ("preparo").
type BatchModel struct {
	ID               uint            `gorm:"primaryKey"`
	ProductionDate   datatypes.Date  `gorm:"not null;index"`
	ArrivalDate      *datatypes.Date
	OriginGroup      *string         `gorm:"size:255"`
	Preparer         string          `gorm:"size:255;not null"`
	ProducedQuantity decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Grade            string          `gorm:"size:100"`
	Status           string          `gorm:"size:50;not null;index"`
	Type             string          `gorm:"size:20;not null"`
	CreatedBy        *string         `gorm:"size:36;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// No foreign keys: consumption lines and transfers reference batches by
	// id and referential rules are enforced by the application.
}

func (BatchModel) TableName() string {
	return constants.TableBatches
}
