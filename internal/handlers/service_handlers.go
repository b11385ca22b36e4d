package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetData is the handler for GET /api/data.
// It returns every service with its images nested, which is all the booking
// page needs to render.
func (h *Handlers) GetData(c *gin.Context) {
	services, err := h.Services.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
