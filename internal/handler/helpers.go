package handler

import (
	"net/http"
	"strconv"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/apierror"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps a service error onto the HTTP taxonomy. Classified errors
// carry their own message; anything else is logged with request context and
// replaced by the generic fallback so internals never leak.
func respondError(c *gin.Context, err error, fallback string) {
	if apierror.IsClient(err) {
		c.JSON(apierror.Status(err), apierror.New(err.Error()))
		return
	}
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, apierror.New(fallback))
}

// bindJSON binds the request body, writing the 400 response itself on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid request body"))
		return false
	}
	return true
}

// paramID parses the :id path parameter, writing the 400 response on failure.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid product ID"))
		return 0, false
	}
	return uint(id), true
}
