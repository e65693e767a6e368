package models

import (
	"time"

	"github.com/shopspring/decimal"

	"preparos/internal/shared/constants"
)

type SessionModel struct {
	ID           uint      `gorm:"primaryKey"`
	HeldAt       time.Time `gorm:"not null;index"`
	Type         string    `gorm:"size:50;not null"`
	Facilitator  string    `gorm:"size:255;not null"`
	Speaker      string    `gorm:"size:255"`
	Reader       string    `gorm:"size:255"`
	Participants int       `gorm:"not null;default:0"`
	CreatedBy    *string   `gorm:"size:36;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}

// ConsumptionModel is one line of a session. (session_id, batch_id) is unique.
type ConsumptionModel struct {
	ID        uint            `gorm:"primaryKey"`
	SessionID uint            `gorm:"not null;uniqueIndex:idx_consumption_session_batch"`
	BatchID   uint            `gorm:"not null;uniqueIndex:idx_consumption_session_batch;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,3);not null"`
}

func (ConsumptionModel) TableName() string {
	return constants.TableConsumption
}

// BatchLineRow is a consumption line left-joined with its session.
type BatchLineRow struct {
	ConsumptionModel
	SessionHeldAt       *time.Time
	SessionType         *string
	SessionFacilitator  *string
	SessionParticipants *int
}
