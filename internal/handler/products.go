package handler

import (
	"net/http"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/dto"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List returns all products ordered by name.
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Add(c *gin.Context) {
	var req dto.SaveProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Add(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Product added successfully"})
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.SaveProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product updated successfully"})
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}
