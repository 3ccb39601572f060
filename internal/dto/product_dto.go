package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaveProductRequest is the body of both POST and PUT /api/manage-products.
// decimal.Decimal accepts numeric JSON values as well as numeric strings, so
// "price": "45.50" parses the same as "price": 45.50. The validation package
// trims names, runs the tags below, and reports the first violation as a
// single human-readable message.
type SaveProductRequest struct {
	Name  string          `json:"name" validate:"min=2,prodname"`
	Unit  string          `json:"unit" validate:"oneof=kg litre piece grams ml"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
	Stock int             `json:"stock" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MessageResponse struct {
	Message string `json:"message"`
}
