package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is created once by the order transaction and never mutated afterwards
// (no update or delete path exists). OrderNumber is the human-facing unique
// identifier, distinct from the numeric primary key.
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderNumber  string          `gorm:"uniqueIndex;not null;size:20" json:"order_number"`
	CustomerName string          `gorm:"not null" json:"customer_name"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;check:total > 0" json:"total"`
	OrderDate    time.Time       `gorm:"autoCreateTime;index" json:"order_date"`
	Status       string          `gorm:"not null;default:'completed'" json:"status"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem denormalises product_name and price at order time so that later
// product edits do not retroactively change historical orders. The product
// reference is by name, not by foreign key.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductName string          `gorm:"not null;index" json:"product_name"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:price > 0" json:"price"`
}
