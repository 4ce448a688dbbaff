package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teslamate-tools/teslachat/internal/models"
)

// ListCars returns all logged vehicles.
func (h *Handler) ListCars(c *gin.Context) {
	cars, err := h.carStore.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list cars", err)
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}

	c.JSON(http.StatusOK, models.CarsResponse{Cars: cars})
}
