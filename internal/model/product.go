package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogue entry. Unit is one of kg, litre, piece, grams, ml
// (enforced at the validation boundary). Stock is decremented by order
// placement and must never go negative (enforced by the conditional decrement
// in the repository plus the CHECK constraint).
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"uniqueIndex;not null" json:"name"`
	Unit      string          `gorm:"not null" json:"unit"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;check:price > 0" json:"price"`
	Stock     int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
