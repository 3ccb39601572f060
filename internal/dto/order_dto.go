package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"min=2,custname"`
	Items        []OrderItemRequest `json:"items" validate:"min=1,dive"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type OrderFilter struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=10"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CreateOrderResponse struct {
	Message     string          `json:"message"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
}

// OrderListItem summarises one order row; Items is the human-readable
// concatenation "productA x qty, productB x qty".
type OrderListItem struct {
	ID           uint            `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	OrderDate    string          `json:"order_date"`
	Status       string          `json:"status"`
	Items        string          `json:"items"`
}

type OrderListResponse struct {
	Orders  []OrderListItem `json:"orders"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}
