package validation

import (
	"testing"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() dto.SaveProductRequest {
	return dto.SaveProductRequest{
		Name:  "Rice",
		Unit:  "kg",
		Price: decimal.NewFromFloat(50.00),
		Stock: 100,
	}
}

func TestProductValid(t *testing.T) {
	req := validProduct()
	require.NoError(t, Product(&req))
}

func TestProductTrimsName(t *testing.T) {
	req := validProduct()
	req.Name = "  Basmati Rice  "
	require.NoError(t, Product(&req))
	assert.Equal(t, "Basmati Rice", req.Name)
}

func TestProductRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.SaveProductRequest)
		want   string
	}{
		{"short name", func(r *dto.SaveProductRequest) { r.Name = "R" }, "Product name must be at least 2 characters"},
		{"empty name", func(r *dto.SaveProductRequest) { r.Name = "   " }, "Product name must be at least 2 characters"},
		{"bad charset", func(r *dto.SaveProductRequest) { r.Name = "Rice!!" }, "Product name contains invalid characters"},
		{"bad unit", func(r *dto.SaveProductRequest) { r.Unit = "dozen" }, "Invalid unit. Must be kg, litre, piece, grams, or ml"},
		{"zero price", func(r *dto.SaveProductRequest) { r.Price = decimal.Zero }, "Price must be positive"},
		{"negative price", func(r *dto.SaveProductRequest) { r.Price = decimal.NewFromInt(-5) }, "Price must be positive"},
		{"negative stock", func(r *dto.SaveProductRequest) { r.Stock = -1 }, "Stock cannot be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validProduct()
			tc.mutate(&req)
			err := Product(&req)
			require.Error(t, err)
			var ve *apierror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.want, ve.Msg)
		})
	}
}

func TestProductAllowedNameCharacters(t *testing.T) {
	req := validProduct()
	req.Name = "Whole-Wheat_Flour 2"
	require.NoError(t, Product(&req))
}

func validOrder() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName: "John Doe",
		Items: []dto.OrderItemRequest{
			{ProductName: "Rice", Quantity: 3},
		},
	}
}

func TestOrderValid(t *testing.T) {
	req := validOrder()
	require.NoError(t, Order(&req))
}

func TestOrderRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateOrderRequest)
		want   string
	}{
		{"short customer", func(r *dto.CreateOrderRequest) { r.CustomerName = "J" }, "Customer name must be at least 2 characters"},
		{"digits in customer", func(r *dto.CreateOrderRequest) { r.CustomerName = "John42" }, "Customer name contains invalid characters"},
		{"no items", func(r *dto.CreateOrderRequest) { r.Items = nil }, "At least one item is required"},
		{"empty items", func(r *dto.CreateOrderRequest) { r.Items = []dto.OrderItemRequest{} }, "At least one item is required"},
		{"missing product name", func(r *dto.CreateOrderRequest) { r.Items[0].ProductName = "  " }, "Product name is required for all items"},
		{"zero quantity", func(r *dto.CreateOrderRequest) { r.Items[0].Quantity = 0 }, "Quantity must be positive"},
		{"negative quantity", func(r *dto.CreateOrderRequest) { r.Items[0].Quantity = -2 }, "Quantity must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validOrder()
			tc.mutate(&req)
			err := Order(&req)
			require.Error(t, err)
			var ve *apierror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.want, ve.Msg)
		})
	}
}

func TestOrderTrimsNames(t *testing.T) {
	req := validOrder()
	req.CustomerName = " Jane Roe "
	req.Items[0].ProductName = " Rice "
	require.NoError(t, Order(&req))
	assert.Equal(t, "Jane Roe", req.CustomerName)
	assert.Equal(t, "Rice", req.Items[0].ProductName)
}
