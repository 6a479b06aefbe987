package domain

import "time"

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Redis.
type Plan struct {
	ID        int64
	UserID    int64
	Title     string
	StartTime time.Time
	EndTime   time.Time

	CalendarEventID   *string
	CalendarEventLink *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is filled by list queries only.
	Owner *UserSummary
	// Places is filled by detail queries only.
	Places []PlaceAssignment
}

// HasCalendarEvent reports whether the plan was synced to the external calendar before.
func (p Plan) HasCalendarEvent() bool {
	return p.CalendarEventID != nil && *p.CalendarEventID != ""
}

// PlaceAssignment attaches a place to a plan with optional sub-scheduling.
type PlaceAssignment struct {
	ID        int64
	PlanID    int64
	PlaceID   int64
	StartTime *time.Time
	EndTime   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Place *Place
}

// NewAssignment is one item of a bulk add.
type NewAssignment struct {
	PlaceID   int64
	StartTime *time.Time
	EndTime   *time.Time
}

// CalendarEvent identifies the external calendar mirror of a plan.
type CalendarEvent struct {
	ExternalID string
	Link       string
}
