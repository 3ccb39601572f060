package service

import (
	"context"
	"testing"
	"time"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardZeroOrders(t *testing.T) {
	products := newStubProductRepo(
		model.Product{Name: "Rice", Unit: "kg", Price: decimal.NewFromFloat(50), Stock: 100},
		model.Product{Name: "Milk", Unit: "litre", Price: decimal.NewFromFloat(55), Stock: 10},
		model.Product{Name: "Bread", Unit: "piece", Price: decimal.NewFromFloat(25), Stock: 3},
	)
	svc := NewStatsService(newStubOrderRepo(), products, nil, 10, 30*time.Second)

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.TotalOrders)
	assert.Equal(t, 0.0, resp.TotalRevenue)
	assert.Equal(t, int64(0), resp.TodayOrders)
	assert.Equal(t, 0.0, resp.TodayRevenue)
	assert.Equal(t, int64(3), resp.TotalProducts)
	// Only Milk (10) and Bread (3) are at or below the threshold.
	assert.Equal(t, int64(2), resp.LowStockProducts)
}

func TestDashboardCountsOrders(t *testing.T) {
	products := newStubProductRepo(riceProduct())
	orders := newStubOrderRepo()
	orderSvc := NewOrderService(orders, products, 10)

	for i := 0; i < 3; i++ {
		_, err := orderSvc.PlaceOrder(context.Background(), dto.CreateOrderRequest{
			CustomerName: "John Doe",
			Items:        []dto.OrderItemRequest{{ProductName: "Rice", Quantity: 2}},
		})
		require.NoError(t, err)
	}

	svc := NewStatsService(orders, products, nil, 10, 30*time.Second)
	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.Equal(t, 300.0, resp.TotalRevenue)
	assert.Equal(t, int64(3), resp.TodayOrders)
	assert.Equal(t, 300.0, resp.TodayRevenue)
}
