package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Thonkla/PlaceMate/internal/archive"
	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/metrics"
	"github.com/Thonkla/PlaceMate/internal/repo"
)

const defaultSyncTimeout = 10 * time.Second

// CalendarSyncer creates or updates the external calendar event of a plan.
type CalendarSyncer interface {
	UpsertEvent(ctx context.Context, existingID, title string, start, end time.Time, credential string) (dom.CalendarEvent, error)
}

type PlanDeps struct {
	Plans    repo.PlanRepo
	Archives repo.ArchiveRepo
	Places   repo.PlaceRepo
	Tx       repo.TxManager
	Archive  *archive.Manager
	// Calendar may be nil when no Google client is configured.
	Calendar    CalendarSyncer
	SyncTimeout time.Duration
	Metrics     *metrics.Metrics
	Log         logger.Logger
}

// PlanService implements the plan lifecycle for an already verified caller.
type PlanService struct {
	plans       repo.PlanRepo
	archives    repo.ArchiveRepo
	places      repo.PlaceRepo
	tx          repo.TxManager
	archive     *archive.Manager
	calendar    CalendarSyncer
	syncTimeout time.Duration
	metrics     *metrics.Metrics
	log         logger.Logger
}

func NewPlanService(d PlanDeps) *PlanService {
	if d.SyncTimeout <= 0 {
		d.SyncTimeout = defaultSyncTimeout
	}
	return &PlanService{
		plans:       d.Plans,
		archives:    d.Archives,
		places:      d.Places,
		tx:          d.Tx,
		archive:     d.Archive,
		calendar:    d.Calendar,
		syncTimeout: d.SyncTimeout,
		metrics:     d.Metrics,
		log:         d.Log,
	}
}

// List returns the caller's plans in creation order. No plans is an empty list.
func (s *PlanService) List(ctx context.Context, userID int64) ([]dom.Plan, error) {
	return s.plans.ListByUser(ctx, userID)
}

func (s *PlanService) Create(ctx context.Context, userID int64, in PlanInput) (dom.Plan, error) {
	v, err := validatePlanInput(in)
	if err != nil {
		return dom.Plan{}, err
	}
	return s.plans.Create(ctx, dom.Plan{
		UserID:    userID,
		Title:     v.title,
		StartTime: v.start,
		EndTime:   v.end,
	})
}

// Get returns the plan with assignments, places, tags and business hours.
func (s *PlanService) Get(ctx context.Context, userID, planID int64) (dom.Plan, error) {
	if planID <= 0 {
		return dom.Plan{}, invalid("invalid planId")
	}
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return dom.Plan{}, mapStoreErr(err)
	}
	if err := checkOwner(p, userID); err != nil {
		return dom.Plan{}, err
	}

	assignments, err := s.plans.ListAssignments(ctx, planID)
	if err != nil {
		return dom.Plan{}, err
	}
	ids := make([]int64, 0, len(assignments))
	seen := make(map[int64]bool, len(assignments))
	for _, a := range assignments {
		if !seen[a.PlaceID] {
			seen[a.PlaceID] = true
			ids = append(ids, a.PlaceID)
		}
	}
	places, err := s.places.GetByIDs(ctx, ids)
	if err != nil {
		return dom.Plan{}, err
	}
	byID := make(map[int64]dom.Place, len(places))
	for _, pl := range places {
		byID[pl.ID] = pl
	}
	for i := range assignments {
		if pl, ok := byID[assignments[i].PlaceID]; ok {
			assignments[i].Place = &pl
		}
	}
	p.Places = assignments
	return p, nil
}

// Edit updates title and time range. If the plan was synced before and the
// caller has a calendar credential, the external event is updated best-effort:
// a calendar failure is logged and the edit still succeeds.
func (s *PlanService) Edit(ctx context.Context, userID, planID int64, in PlanInput, calendarToken string) (dom.Plan, error) {
	if planID <= 0 {
		return dom.Plan{}, invalid("invalid planId")
	}
	v, err := validatePlanInput(in)
	if err != nil {
		return dom.Plan{}, err
	}

	var updated dom.Plan
	err = s.tx.WithinTx(ctx, func(ctx context.Context, r repo.Repos) error {
		p, err := s.lockOwned(ctx, r.Plans, userID, planID)
		if err != nil {
			return err
		}
		p.Title, p.StartTime, p.EndTime = v.title, v.start, v.end
		updated, err = r.Plans.Update(ctx, p)
		return mapStoreErr(err)
	})
	if err != nil {
		return dom.Plan{}, err
	}

	if updated.HasCalendarEvent() {
		updated = s.resyncBestEffort(ctx, updated, calendarToken)
	}
	return updated, nil
}

func (s *PlanService) resyncBestEffort(ctx context.Context, p dom.Plan, calendarToken string) dom.Plan {
	log := s.log.With("planID", p.ID)
	if s.calendar == nil || calendarToken == "" {
		log.Debug("Skipping calendar resync, calendar not connected")
		return p
	}
	ev, err := s.upsert(ctx, p, calendarToken)
	s.metrics.CalendarSync("edit", err)
	if err != nil {
		log.Warn("Calendar resync failed, keeping plan edit", "error", err)
		return p
	}
	saved, err := s.plans.SetCalendarEvent(ctx, p.ID, ev)
	if err != nil {
		log.Warn("Failed to store resynced calendar link", "error", err)
		return p
	}
	return saved
}

// Delete archives the plan with its places and removes it, in one
// transaction holding the plan row lock. Any failure leaves both untouched.
func (s *PlanService) Delete(ctx context.Context, userID, planID int64) (dom.ArchivedPlan, error) {
	if planID <= 0 {
		return dom.ArchivedPlan{}, invalid("plan_id is required")
	}
	var archived dom.ArchivedPlan
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r repo.Repos) error {
		p, err := s.lockOwned(ctx, r.Plans, userID, planID)
		if err != nil {
			return err
		}
		assignments, err := r.Plans.ListAssignments(ctx, planID)
		if err != nil {
			return err
		}
		archived, err = s.archive.Archive(ctx, r.Archive, p, assignments)
		if err != nil {
			return err
		}
		return mapStoreErr(r.Plans.DeleteCascade(ctx, planID))
	})
	if err != nil {
		return dom.ArchivedPlan{}, err
	}
	s.metrics.PlanArchived()
	s.log.Info("Plan removed and archived", "planID", planID, "archivedPlanID", archived.ID, "places", len(archived.Places))
	return archived, nil
}

// AddPlaces attaches places in bulk and returns the number inserted.
func (s *PlanService) AddPlaces(ctx context.Context, userID, planID int64, items []AssignmentInput) (int64, error) {
	if planID <= 0 {
		return 0, invalid("invalid planId")
	}
	assignments, err := validateAssignments(items)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context, r repo.Repos) error {
		if _, err := s.lockOwned(ctx, r.Plans, userID, planID); err != nil {
			return err
		}
		n, err = r.Plans.AddAssignments(ctx, planID, assignments)
		return mapStoreErr(err)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// AddFromList attaches places from a saved list. Unlike AddPlaces it also
// writes archive rows for them right away (see archive.Manager.RecordListed).
func (s *PlanService) AddFromList(ctx context.Context, userID, planID int64, items []dom.ListedPlace) (int64, error) {
	if planID <= 0 {
		return 0, invalid("invalid planId")
	}
	listed, err := validateListed(items)
	if err != nil {
		return 0, err
	}
	assignments := make([]dom.NewAssignment, 0, len(listed))
	for _, it := range listed {
		assignments = append(assignments, dom.NewAssignment{PlaceID: it.PlaceID})
	}

	var n int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context, r repo.Repos) error {
		if _, err := s.lockOwned(ctx, r.Plans, userID, planID); err != nil {
			return err
		}
		n, err = r.Plans.AddAssignments(ctx, planID, assignments)
		if err != nil {
			return mapStoreErr(err)
		}
		_, err = s.archive.RecordListed(ctx, r.Archive, planID, listed)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// RemovePlace detaches every assignment of placeID. Removing an absent place returns 0.
func (s *PlanService) RemovePlace(ctx context.Context, userID, planID, placeID int64) (int64, error) {
	if planID <= 0 || placeID <= 0 {
		return 0, invalid("invalid planId or place_id")
	}
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return 0, mapStoreErr(err)
	}
	if err := checkOwner(p, userID); err != nil {
		return 0, err
	}
	return s.plans.RemoveAssignments(ctx, planID, placeID)
}

// SyncCalendar creates the plan's external event, or updates it when one exists.
// The plan row stays locked until the event link is stored, so overlapping
// syncs of one plan update a single event.
func (s *PlanService) SyncCalendar(ctx context.Context, userID, planID int64, calendarToken string) (dom.Plan, error) {
	if planID <= 0 {
		return dom.Plan{}, invalid("plan_id is required")
	}
	if calendarToken == "" {
		return dom.Plan{}, fmt.Errorf("%w: calendar is not connected", dom.ErrUnauthenticated)
	}
	if s.calendar == nil {
		return dom.Plan{}, fmt.Errorf("%w: calendar sync is not configured", dom.ErrSyncFailed)
	}

	var saved dom.Plan
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r repo.Repos) error {
		p, err := s.lockOwned(ctx, r.Plans, userID, planID)
		if err != nil {
			return err
		}
		ev, err := s.upsert(ctx, p, calendarToken)
		s.metrics.CalendarSync("sync", err)
		if err != nil {
			if errors.Is(err, dom.ErrUnauthenticated) {
				return err
			}
			s.log.Error("Calendar sync failed", "planID", planID, "error", err)
			return fmt.Errorf("%w: %v", dom.ErrSyncFailed, err)
		}
		saved, err = r.Plans.SetCalendarEvent(ctx, planID, ev)
		return mapStoreErr(err)
	})
	if err != nil {
		return dom.Plan{}, err
	}
	return saved, nil
}

// ListArchived returns the caller's most recently deleted plans.
func (s *PlanService) ListArchived(ctx context.Context, userID int64) ([]dom.ArchivedPlan, error) {
	return s.archive.Recent(ctx, s.archives, userID)
}

func (s *PlanService) upsert(ctx context.Context, p dom.Plan, calendarToken string) (dom.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()
	existing := ""
	if p.HasCalendarEvent() {
		existing = *p.CalendarEventID
	}
	return s.calendar.UpsertEvent(ctx, existing, p.Title, p.StartTime, p.EndTime, calendarToken)
}

func (s *PlanService) lockOwned(ctx context.Context, plans repo.PlanRepo, userID, planID int64) (dom.Plan, error) {
	p, err := plans.GetForUpdate(ctx, planID)
	if err != nil {
		return dom.Plan{}, mapStoreErr(err)
	}
	if err := checkOwner(p, userID); err != nil {
		return dom.Plan{}, err
	}
	return p, nil
}

// checkOwner runs after the plan was found, so NotFound wins over Forbidden.
func checkOwner(p dom.Plan, userID int64) error {
	if p.UserID != userID {
		return fmt.Errorf("%w: plan %d belongs to another user", dom.ErrForbidden, p.ID)
	}
	return nil
}
