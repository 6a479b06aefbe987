// Package archive snapshots deleted plans. Snapshots copy place name and
// photo at archive time so later catalogue edits never rewrite history.
package archive

import (
	"context"
	"fmt"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/repo"
)

// RecentLimit caps the archive listing.
const RecentLimit = 10

type Manager struct {
	log logger.Logger
	now func() time.Time
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Archive writes one ArchivedPlan and one ArchivedPlace per assignment.
// Run it in the same transaction as the delete it precedes: the two inserts
// are only all-or-nothing together with that transaction.
func (m *Manager) Archive(ctx context.Context, r repo.ArchiveRepo, plan dom.Plan, assignments []dom.PlaceAssignment) (dom.ArchivedPlan, error) {
	ap, err := r.CreatePlan(ctx, dom.ArchivedPlan{
		PlanID:    plan.ID,
		UserID:    plan.UserID,
		Title:     plan.Title,
		StartTime: plan.StartTime,
		EndTime:   plan.EndTime,
		DeletedAt: m.now(),
	})
	if err != nil {
		return dom.ArchivedPlan{}, fmt.Errorf("archive plan %d: %w", plan.ID, err)
	}
	ap.Places = []dom.ArchivedPlace{}
	if len(assignments) == 0 {
		return ap, nil
	}

	archivedID := ap.ID
	rows := make([]dom.ArchivedPlace, 0, len(assignments))
	for _, a := range assignments {
		row := dom.ArchivedPlace{ArchivedPlanID: &archivedID, PlaceID: a.PlaceID}
		if a.Place != nil {
			row.PlaceName = a.Place.Name
			row.Photo = a.Place.Photo
		}
		rows = append(rows, row)
	}
	n, err := r.CreatePlaces(ctx, rows)
	if err != nil {
		return dom.ArchivedPlan{}, fmt.Errorf("archive places of plan %d: %w", plan.ID, err)
	}
	if n != int64(len(rows)) {
		return dom.ArchivedPlan{}, fmt.Errorf("archive places of plan %d: wrote %d of %d rows", plan.ID, n, len(rows))
	}
	ap.Places = rows
	m.log.Debug("Plan archived", "planID", plan.ID, "archivedPlanID", ap.ID, "places", n)
	return ap, nil
}

// RecordListed writes archive rows for places added from a saved list at
// insertion time. These rows reference the live plan, not an ArchivedPlan,
// and exist in addition to the rows Archive writes when the plan is deleted.
func (m *Manager) RecordListed(ctx context.Context, r repo.ArchiveRepo, planID int64, items []dom.ListedPlace) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	rows := make([]dom.ArchivedPlace, 0, len(items))
	for _, it := range items {
		pid := planID
		rows = append(rows, dom.ArchivedPlace{
			PlanID:    &pid,
			PlaceID:   it.PlaceID,
			PlaceName: it.PlaceName,
			Photo:     it.Photo,
		})
	}
	n, err := r.CreatePlaces(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("record listed places of plan %d: %w", planID, err)
	}
	return n, nil
}

// Recent lists the user's latest archived plans.
func (m *Manager) Recent(ctx context.Context, r repo.ArchiveRepo, userID int64) ([]dom.ArchivedPlan, error) {
	return r.ListByUser(ctx, userID, RecentLimit)
}
