package models

import (
	"time"
)

// Upload records a stored order-slip image. The OCR pipeline consumes a
// scratch copy, so the stored file survives extraction; failed extractions
// are flagged rather than deleted so staff can review them.
type Upload struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FileName    string `gorm:"size:255;not null"`
	StorePath   string `gorm:"column:store_path;size:512"` // public relative path (e.g. public/slips/xxx.jpg)
	UserID      uint   `gorm:"index;not null"`
	User        User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ContentType string `gorm:"size:128"`
	OrderID     *uint  `gorm:"index"` // set once the suggested order is confirmed

	Failed       bool   `gorm:"default:false;index"`
	FailedReason string `gorm:"size:255"`
}
