package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the order dashboard page.
func Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Grocery Store Dashboard"})
}

// ManageProducts serves the product management page.
func ManageProducts(c *gin.Context) {
	c.HTML(http.StatusOK, "manage-products.html", gin.H{"title": "Manage Products"})
}
