package handlers

import (
	"net/http"

	"github.com/Thonkla/PlaceMate/internal/auth"
	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/dto"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/service"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	responder
	svc *service.PlanService
}

func NewPlannerHandler(svc *service.PlanService, log logger.Logger, m *metrics.Metrics) *PlannerHandler {
	return &PlannerHandler{responder: responder{log: log, metrics: m}, svc: svc}
}

// List godoc
// @Summary      List the caller's plans
// @Tags         planner
// @Produce      json
// @Success      200  {array}   dto.PlanResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /planner/user [get]
func (h *PlannerHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		h.fail(c, "plan_list", err, "Failed to fetch plans")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponses(list))
}

// Create godoc
// @Summary      Create a plan
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PlanRequest  true  "Plan"
// @Success      201   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /planner/add [post]
func (h *PlannerHandler) Create(c *gin.Context) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.PlanInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.fail(c, "plan_create", err, "Failed to create plan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPlanResponse(p))
}

// Remove godoc
// @Summary      Archive and delete a plan
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PlanIDRequest  true  "Plan id"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /planner/remove [delete]
func (h *PlannerHandler) Remove(c *gin.Context) {
	var req dto.PlanIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), req.PlanID); err != nil {
		h.fail(c, "plan_delete", err, "Failed to remove plan")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Plan removed and archived successfully"})
}

// AddPlaces godoc
// @Summary      Attach places to a plan
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        planId  path      int                   true  "Plan ID"
// @Param        body    body      dto.AddPlacesRequest  true  "Places"
// @Success      201     {object}  dto.CountResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /planner/{planId}/add-place [post]
func (h *PlannerHandler) AddPlaces(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var req dto.AddPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	items := make([]service.AssignmentInput, 0, len(req.Places))
	for _, p := range req.Places {
		items = append(items, service.AssignmentInput{PlaceID: p.PlaceID, StartTime: p.StartTime, EndTime: p.EndTime})
	}
	n, err := h.svc.AddPlaces(c.Request.Context(), auth.UserIDFromContext(c), planID, items)
	if err != nil {
		h.fail(c, "plan_add_places", err, "Failed to add places")
		return
	}
	c.JSON(http.StatusCreated, dto.CountResponse{Count: n})
}

// AddListToGo godoc
// @Summary      Attach places from a saved list
// @Description  Also records the places in the archive history of the plan.
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        planId  path      int                     true  "Plan ID"
// @Param        body    body      dto.AddListToGoRequest  true  "Listed places"
// @Success      201     {object}  dto.CountResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /planner/{planId}/add-listtogo [post]
func (h *PlannerHandler) AddListToGo(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var req dto.AddListToGoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	items := make([]dom.ListedPlace, 0, len(req.Places))
	for _, p := range req.Places {
		items = append(items, dom.ListedPlace{PlaceID: p.ListToGoID, PlaceName: p.PlaceName, Photo: p.Photo})
	}
	n, err := h.svc.AddFromList(c.Request.Context(), auth.UserIDFromContext(c), planID, items)
	if err != nil {
		h.fail(c, "plan_add_listtogo", err, "Failed to add places from ListToGo")
		return
	}
	c.JSON(http.StatusCreated, dto.CountResponse{Count: n})
}

// RemovePlace godoc
// @Summary      Detach a place from a plan
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        planId  path      int                 true  "Plan ID"
// @Param        body    body      dto.PlaceIDRequest  true  "Place id"
// @Success      200     {object}  dto.RemovePlaceResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /planner/{planId}/remove-place [delete]
func (h *PlannerHandler) RemovePlace(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var req dto.PlaceIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	n, err := h.svc.RemovePlace(c.Request.Context(), auth.UserIDFromContext(c), planID, req.PlaceID)
	if err != nil {
		h.fail(c, "plan_remove_place", err, "Failed to remove place")
		return
	}
	c.JSON(http.StatusOK, dto.RemovePlaceResponse{Message: "Place removed successfully", DeletedCount: n})
}

// Deleted godoc
// @Summary      List recently deleted plans
// @Tags         planner
// @Produce      json
// @Success      200  {array}   dto.ArchivedPlanResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /planner/deleted [get]
func (h *PlannerHandler) Deleted(c *gin.Context) {
	list, err := h.svc.ListArchived(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		h.fail(c, "plan_deleted", err, "Failed to fetch deleted plans")
		return
	}
	c.JSON(http.StatusOK, dto.ToArchivedPlanResponses(list))
}

// Get godoc
// @Summary      Plan detail with places, tags and business hours
// @Tags         planner
// @Produce      json
// @Param        planId  path      int  true  "Plan ID"
// @Success      200     {object}  dto.PlanDetailResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /planner/{planId} [get]
func (h *PlannerHandler) Get(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c), planID)
	if err != nil {
		h.fail(c, "plan_get", err, "Failed to fetch plan details")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanDetailResponse(p))
}

// Edit godoc
// @Summary      Edit title and time range
// @Description  A plan synced before is resynced to the calendar best-effort.
// @Tags         planner
// @Accept       json
// @Produce      json
// @Param        planId  path      int              true  "Plan ID"
// @Param        body    body      dto.PlanRequest  true  "Plan"
// @Success      200     {object}  dto.PlanResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /planner/{planId}/edit [put]
func (h *PlannerHandler) Edit(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Edit(c.Request.Context(), auth.UserIDFromContext(c), planID, service.PlanInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, calendarCredential(c))
	if err != nil {
		h.fail(c, "plan_edit", err, "Failed to update plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(p))
}
