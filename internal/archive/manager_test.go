package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"
	"github.com/Thonkla/PlaceMate/internal/repo/repotest"
)

func samplePlan() dom.Plan {
	return dom.Plan{
		ID:        11,
		UserID:    1,
		Title:     "Bangkok Trip",
		StartTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC),
	}
}

func TestArchiveDenormalizesPlaces(t *testing.T) {
	store := repotest.New()
	m := NewManager(logger.NewNop())
	assignments := []dom.PlaceAssignment{
		{PlanID: 11, PlaceID: 5, Place: &dom.Place{ID: 5, Name: "Wat Arun", Photo: "arun.jpg"}},
		{PlanID: 11, PlaceID: 6, Place: &dom.Place{ID: 6, Name: "Chatuchak", Photo: "jj.jpg"}},
	}

	ap, err := m.Archive(context.Background(), store.Archive(), samplePlan(), assignments)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if ap.PlanID != 11 || ap.UserID != 1 || ap.Title != "Bangkok Trip" || ap.DeletedAt.IsZero() {
		t.Fatalf("unexpected archived plan %+v", ap)
	}
	rows := store.ArchivedPlaces()
	if len(rows) != 2 {
		t.Fatalf("expected 2 archived places, got %d", len(rows))
	}
	for _, row := range rows {
		if row.ArchivedPlanID == nil || *row.ArchivedPlanID != ap.ID || row.PlanID != nil {
			t.Fatalf("row not linked to archived plan: %+v", row)
		}
	}
	if rows[0].PlaceName != "Wat Arun" || rows[0].Photo != "arun.jpg" {
		t.Fatalf("place name/photo not copied: %+v", rows[0])
	}
}

func TestArchiveWithoutPlaces(t *testing.T) {
	store := repotest.New()
	m := NewManager(logger.NewNop())
	store.FailOn("archive.CreatePlaces", errors.New("must not be called"))

	ap, err := m.Archive(context.Background(), store.Archive(), samplePlan(), nil)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if len(ap.Places) != 0 || len(store.ArchivedPlans()) != 1 || len(store.ArchivedPlaces()) != 0 {
		t.Fatalf("expected a single plan row and no place rows")
	}
}

func TestArchivePropagatesPlaceFailure(t *testing.T) {
	store := repotest.New()
	m := NewManager(logger.NewNop())
	boom := errors.New("disk full")
	store.FailOn("archive.CreatePlaces", boom)

	_, err := m.Archive(context.Background(), store.Archive(), samplePlan(), []dom.PlaceAssignment{{PlaceID: 5}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}
}

func TestRecordListedIsNotListedAsDeleted(t *testing.T) {
	store := repotest.New()
	m := NewManager(logger.NewNop())

	n, err := m.RecordListed(context.Background(), store.Archive(), 11, []dom.ListedPlace{
		{PlaceID: 5, PlaceName: "Wat Arun", Photo: "arun.jpg"},
	})
	if err != nil || n != 1 {
		t.Fatalf("RecordListed = %d, %v", n, err)
	}
	rows := store.ArchivedPlaces()
	if len(rows) != 1 || rows[0].PlanID == nil || *rows[0].PlanID != 11 || rows[0].ArchivedPlanID != nil {
		t.Fatalf("unexpected listed row %+v", rows)
	}
	recent, err := m.Recent(context.Background(), store.Archive(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("listed rows must not appear as deleted plans, got %+v", recent)
	}
}

func TestRecentIsCappedAndNewestFirst(t *testing.T) {
	store := repotest.New()
	m := NewManager(logger.NewNop())
	for i := 0; i < RecentLimit+3; i++ {
		p := samplePlan()
		p.ID = int64(100 + i)
		if _, err := m.Archive(context.Background(), store.Archive(), p, nil); err != nil {
			t.Fatalf("Archive: %v", err)
		}
	}
	other := samplePlan()
	other.UserID = 2
	if _, err := m.Archive(context.Background(), store.Archive(), other, nil); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	recent, err := m.Recent(context.Background(), store.Archive(), 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != RecentLimit {
		t.Fatalf("expected %d plans, got %d", RecentLimit, len(recent))
	}
	if recent[0].PlanID != int64(100+RecentLimit+2) {
		t.Fatalf("expected newest first, got plan %d", recent[0].PlanID)
	}
	for _, ap := range recent {
		if ap.UserID != 1 {
			t.Fatalf("foreign archived plan listed: %+v", ap)
		}
	}
}
