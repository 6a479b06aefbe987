package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const reminderMinutes = 15

// Config for the Google Calendar adapter.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	CalendarID   string
	TimeZone     string
}

// Google mirrors plans into a user's Google Calendar.
type Google struct {
	oauth      *oauth2.Config
	calendarID string
	timeZone   string
	opts       []option.ClientOption
	log        logger.Logger
}

// NewGoogle creates the adapter. opts are appended to every calendar client,
// e.g. option.WithEndpoint to target a different API host.
func NewGoogle(cfg Config, log logger.Logger, opts ...option.ClientOption) *Google {
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Google{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarEventsScope},
		},
		calendarID: calendarID,
		timeZone:   cfg.TimeZone,
		opts:       opts,
		log:        log,
	}
}

// UpsertEvent updates existingID when set, otherwise inserts a new event.
// An update of an event removed on Google's side falls back to an insert.
func (g *Google) UpsertEvent(ctx context.Context, existingID, title string, start, end time.Time, credential string) (dom.CalendarEvent, error) {
	token, err := DecodeToken(credential)
	if err != nil {
		return dom.CalendarEvent{}, err
	}
	opts := append([]option.ClientOption{option.WithTokenSource(g.oauth.TokenSource(ctx, token))}, g.opts...)
	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return dom.CalendarEvent{}, fmt.Errorf("calendar client: %w", err)
	}

	event := g.buildEvent(title, start, end)
	var out *gcal.Event
	if existingID != "" {
		out, err = svc.Events.Update(g.calendarID, existingID, event).Context(ctx).Do()
		if isGone(err) {
			g.log.Warn("Calendar event missing, creating a new one", "eventID", existingID)
			out, err = svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
		}
	} else {
		out, err = svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	}
	if isRejectedCredential(err) {
		return dom.CalendarEvent{}, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if err != nil {
		return dom.CalendarEvent{}, fmt.Errorf("calendar upsert: %w", err)
	}
	return dom.CalendarEvent{ExternalID: out.Id, Link: out.HtmlLink}, nil
}

func (g *Google) buildEvent(title string, start, end time.Time) *gcal.Event {
	return &gcal.Event{
		Summary: title,
		Start:   &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: g.timeZone},
		End:     &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: g.timeZone},
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       []*gcal.EventReminder{{Method: "popup", Minutes: reminderMinutes}},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

// isRejectedCredential reports a revoked or expired grant: Google answered 401
// or the token refresh was refused.
func isRejectedCredential(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}
	var rerr *oauth2.RetrieveError
	return errors.As(err, &rerr)
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
	}
	return false
}
