package models

import "time"

// Order is a confirmed customer order. The extraction pipeline only
// suggests values; a human confirms them before the record is created, so
// every field here is what the operator accepted.
type Order struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint `gorm:"index;not null"` // staff account that entered the order

	CustomerName    string `gorm:"size:255"`
	CustomerPhone   string `gorm:"size:32;index"`
	DeliveryAddress string `gorm:"size:512"`
	PickupAddress   string `gorm:"size:512"`

	SubtotalAmount float64
	DiscountAmount float64
	OrderAmount    float64 `gorm:"not null"`

	Notes string `gorm:"size:1024"`
	// Extraction quality at entry time (LOW/MEDIUM/HIGH), empty for manual orders.
	Quality string    `gorm:"size:8"`
	Date    time.Time `gorm:"not null;index"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OrderItem is one free-text line item as it appeared on the slip.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID uint   `gorm:"index;not null"`
	Label   string `gorm:"size:255;not null"`
}
