package domain

import "time"

// ArchivedPlan is an immutable snapshot of a deleted plan.
type ArchivedPlan struct {
	ID        int64
	PlanID    int64
	UserID    int64
	Title     string
	StartTime time.Time
	EndTime   time.Time
	DeletedAt time.Time

	Places []ArchivedPlace
}

// ArchivedPlace keeps place name and photo as they were at archive time.
// Rows written for list-sourced entries carry PlanID and no ArchivedPlanID.
type ArchivedPlace struct {
	ID             int64
	ArchivedPlanID *int64
	PlanID         *int64
	PlaceID        int64
	PlaceName      string
	Photo          string
}
