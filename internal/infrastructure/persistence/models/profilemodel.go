package models

import (
	"time"

	"preparos/internal/shared/constants"
)

type ProfileModel struct {
	UserID           string `gorm:"primaryKey;size:36"`
	FullName         string `gorm:"size:255;not null"`
	Theme            string `gorm:"size:10;not null;default:system"`
	ChangelogVersion string `gorm:"size:20"`
	UpdatedAt        time.Time
}

func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
