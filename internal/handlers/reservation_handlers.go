package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// CreateReservationInput is the JSON body for POST /api/reservation.
type CreateReservationInput struct {
	ServiceID int64  `json:"serviceId"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
}

// PatchReservationInput is the JSON body for PATCH /api/reservation.
// Validated is a *bool so an absent field and a present false are
// distinguishable, and a non-boolean value fails JSON binding outright.
type PatchReservationInput struct {
	ID        int64 `json:"id"`
	Validated *bool `json:"validated"`
}

// GetReservations is the handler for GET /api/reservation.
// Newest first, each with its service joined.
func (h *Handlers) GetReservations(c *gin.Context) {
	reservations, err := h.Reservations.ListReservations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CreateReservation is the handler for POST /api/reservation.
// Every new reservation starts unvalidated.
func (h *Handlers) CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch {
	case input.ServiceID == 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service ID is required"})
		return
	case strings.TrimSpace(input.FullName) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Full name is required"})
		return
	case strings.TrimSpace(input.Phone) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}

	reservation := &models.Reservation{
		ServiceID: input.ServiceID,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Validated: false,
		CreatedAt: time.Now(),
	}

	if err := h.Reservations.CreateReservation(reservation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// DeleteReservations is the handler for DELETE /api/reservation?id=A&id=B.
// Ids arrive as repeated query parameters. The delete is idempotent: 204
// comes back regardless of how many rows actually matched.
func (h *Handlers) DeleteReservations(c *gin.Context) {
	raw := c.QueryArray("id")
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one id is required"})
		return
	}

	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, err := strconv.ParseInt(r, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + r})
			return
		}
		ids = append(ids, id)
	}

	if err := h.Reservations.DeleteReservations(ids); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchReservation is the handler for PATCH /api/reservation.
// Toggles the validated flag and returns the updated record.
func (h *Handlers) PatchReservation(c *gin.Context) {
	var input PatchReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Covers non-boolean validated values such as "yes".
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reservation id is required"})
		return
	}
	if input.Validated == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validated must be a boolean"})
		return
	}

	reservation, err := h.Reservations.SetReservationValidated(input.ID, *input.Validated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservation)
}
