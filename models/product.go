package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	SKU       string          `json:"sku" gorm:"uniqueIndex;not null"`
	Category  string          `json:"category"` // Camisetas, Baby Look, Inverno, etc
	Price     decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	Cost      decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	Stock     int             `json:"stock" gorm:"default:0"`
	Colors    StringList      `json:"colors" gorm:"type:json"`
	Sizes     StringList      `json:"sizes" gorm:"type:json"`
	CreatedAt time.Time       `json:"createdAt"`
}
