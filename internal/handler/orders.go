package handler

import (
	"net/http"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// List returns a page of orders with their items summarised.
func (h *OrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid pagination parameters"))
		return
	}
	resp, err := h.svc.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create places an order: validates stock, prices the lines, and persists the
// order atomically while decrementing product stock.
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, resp)
}
