package handlers

import (
	"net/http"

	"powergas-profit/internal/api/models"
	"powergas-profit/internal/profit"

	"github.com/gin-gonic/gin"
)

// TripHandler handles single-trip profitability requests
type TripHandler struct{}

// NewTripHandler creates a new trip handler
func NewTripHandler() *TripHandler {
	return &TripHandler{}
}

// Calculate handles POST /api/v1/trip
func (h *TripHandler) Calculate(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	trip, err := tripConfigFromPayload(req.Trip).ToModel()
	if err != nil {
		writeComputeError(c, err)
		return
	}

	res, err := profit.Compute(trip)
	if err != nil {
		writeComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TripResponse{
		Status: "completed",
		Result: tripResultPayload(res),
	})
}
