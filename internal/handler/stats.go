package handler

import (
	"net/http"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, resp)
}
