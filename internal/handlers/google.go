package handlers

import (
	"context"
	"net/http"

	"github.com/Thonkla/PlaceMate/internal/auth"
	"github.com/Thonkla/PlaceMate/internal/calendar"
	"github.com/Thonkla/PlaceMate/internal/dto"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	stateCookieName = "google_oauth_state"
	// CalendarTokenHeader carries the calendar credential for clients without cookies.
	CalendarTokenHeader = "X-Calendar-Token"

	calendarCookieMaxAge = 30 * 24 * 60 * 60
	stateCookieMaxAge    = 10 * 60
)

// CalendarConnector runs the OAuth consent flow.
type CalendarConnector interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
}

type GoogleHandler struct {
	responder
	svc       *service.PlanService
	connector CalendarConnector
	cookies   CookieOptions
	// frontend is where the browser lands after the consent flow.
	frontend string
}

// NewGoogleHandler returns a GoogleHandler. A nil connector disables the consent endpoints.
func NewGoogleHandler(svc *service.PlanService, connector CalendarConnector, cookies CookieOptions, frontend string, log logger.Logger, m *metrics.Metrics) *GoogleHandler {
	return &GoogleHandler{
		responder: responder{log: log, metrics: m},
		svc:       svc,
		connector: connector,
		cookies:   cookies,
		frontend:  frontend,
	}
}

// calendarCredential reads the calendar cookie, falling back to CalendarTokenHeader.
func calendarCredential(c *gin.Context) string {
	if token, err := c.Cookie(calendar.CookieName); err == nil && token != "" {
		return token
	}
	return c.GetHeader(CalendarTokenHeader)
}

// Auth godoc
// @Summary      Start the Google Calendar consent flow
// @Tags         google
// @Success      302
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /google/auth [get]
func (h *GoogleHandler) Auth(c *gin.Context) {
	if h.connector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google Calendar is not configured"})
		return
	}
	state := uuid.NewString()
	h.cookies.set(c, stateCookieName, state, stateCookieMaxAge)
	c.Redirect(http.StatusFound, h.connector.AuthURL(state))
}

// Callback godoc
// @Summary      OAuth callback, stores the calendar credential cookie
// @Tags         google
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "State"
// @Success      302
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /google/auth/callback [get]
func (h *GoogleHandler) Callback(c *gin.Context) {
	if h.connector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google Calendar is not configured"})
		return
	}
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		h.badRequest(c, "invalid OAuth state")
		return
	}
	h.cookies.clear(c, stateCookieName)

	code := c.Query("code")
	if code == "" {
		h.badRequest(c, "missing authorization code")
		return
	}
	credential, err := h.connector.Exchange(c.Request.Context(), code)
	if err != nil {
		h.log.Warn("Google code exchange failed", "error", err)
		h.badRequest(c, "failed to connect Google Calendar")
		return
	}
	h.cookies.set(c, calendar.CookieName, credential, calendarCookieMaxAge)
	c.Redirect(http.StatusFound, h.frontend)
}

// CheckToken godoc
// @Summary      Whether a calendar credential is present
// @Tags         google
// @Produce      json
// @Success      200  {object}  dto.GoogleStatusResponse
// @Router       /google/check-token [get]
func (h *GoogleHandler) CheckToken(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GoogleStatusResponse{GoogleConnected: calendarCredential(c) != ""})
}

// SyncPlan godoc
// @Summary      Create or update the calendar event of a plan
// @Tags         google
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PlanIDRequest  true  "Plan id"
// @Success      200   {object}  dto.SyncPlanResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /google/sync-plan [post]
func (h *GoogleHandler) SyncPlan(c *gin.Context) {
	var req dto.PlanIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err.Error())
		return
	}
	p, err := h.svc.SyncCalendar(c.Request.Context(), auth.UserIDFromContext(c), req.PlanID, calendarCredential(c))
	if err != nil {
		h.fail(c, "calendar_sync", err, "Failed to create calendar event")
		return
	}
	link := ""
	if p.CalendarEventLink != nil {
		link = *p.CalendarEventLink
	}
	c.JSON(http.StatusOK, dto.SyncPlanResponse{
		Message:     "Event created in Google Calendar",
		EventLink:   link,
		UpdatedPlan: dto.ToPlanResponse(p),
	})
}

// Disconnect godoc
// @Summary      Forget the calendar credential
// @Tags         google
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /google/disconnect [post]
func (h *GoogleHandler) Disconnect(c *gin.Context) {
	h.cookies.clear(c, calendar.CookieName)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Disconnected from Google Calendar"})
}
