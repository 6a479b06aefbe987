package handlers

import (
	"net/http"

	"github.com/Thonkla/PlaceMate/internal/dto"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/service"

	"github.com/gin-gonic/gin"
)

type PlacesHandler struct {
	responder
	svc *service.PlaceService
}

func NewPlacesHandler(svc *service.PlaceService, log logger.Logger, m *metrics.Metrics) *PlacesHandler {
	return &PlacesHandler{responder: responder{log: log, metrics: m}, svc: svc}
}

// Search godoc
// @Summary      Search places by name
// @Tags         places
// @Produce      json
// @Param        query  query     string  true  "Substring of the place name"
// @Success      200    {array}   dto.PlaceResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /places/search [get]
func (h *PlacesHandler) Search(c *gin.Context) {
	list, err := h.svc.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.fail(c, "place_search", err, "Failed to fetch search results")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlaceResponses(list))
}
