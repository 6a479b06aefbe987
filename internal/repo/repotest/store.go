// Package repotest provides an in-memory implementation of the repo interfaces
// for tests. Transactions snapshot the whole state and restore it on failure.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type state struct {
	seq            int64
	users          map[int64]dom.User
	plans          map[int64]dom.Plan
	assignments    []dom.PlaceAssignment
	places         map[int64]dom.Place
	archived       []dom.ArchivedPlan
	archivedPlaces []dom.ArchivedPlace
}

func (st state) clone() state {
	out := st
	out.users = make(map[int64]dom.User, len(st.users))
	for k, v := range st.users {
		out.users[k] = v
	}
	out.plans = make(map[int64]dom.Plan, len(st.plans))
	for k, v := range st.plans {
		out.plans[k] = v
	}
	out.places = make(map[int64]dom.Place, len(st.places))
	for k, v := range st.places {
		out.places[k] = v
	}
	out.assignments = append([]dom.PlaceAssignment(nil), st.assignments...)
	out.archived = append([]dom.ArchivedPlan(nil), st.archived...)
	out.archivedPlaces = append([]dom.ArchivedPlace(nil), st.archivedPlaces...)
	return out
}

// Store is safe for concurrent use; transactions are serialized.
type Store struct {
	txMu     sync.Mutex
	mu       sync.Mutex
	st       state
	failures map[string]error
	now      func() time.Time
}

func New() *Store {
	return &Store{
		st: state{
			users:  map[int64]dom.User{},
			plans:  map[int64]dom.Plan{},
			places: map[int64]dom.Place{},
		},
		failures: map[string]error{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FailOn makes the next call of op (e.g. "archive.CreatePlaces") return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// call must be made with mu held.
func (s *Store) fail(op string) error {
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		return err
	}
	return nil
}

func (s *Store) nextID() int64 {
	s.st.seq++
	return s.st.seq
}

func (s *Store) Plans() repo.PlanRepo       { return planRepo{s} }
func (s *Store) Archive() repo.ArchiveRepo  { return archiveRepo{s} }
func (s *Store) PlacesRepo() repo.PlaceRepo { return placeRepo{s} }
func (s *Store) Users() repo.UserRepo       { return userRepo{s} }

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, r repo.Repos) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()
	return fn(ctx, repo.Repos{Plans: s.Plans(), Archive: s.Archive()})
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
}

// Seeding and inspection helpers.

func (s *Store) AddUser(username, email string) dom.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := dom.User{ID: s.nextID(), Username: username, Email: email, CreatedAt: s.now()}
	s.st.users[u.ID] = u
	return u
}

func (s *Store) AddPlace(p dom.Place) dom.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.nextID()
	}
	s.st.places[p.ID] = p
	return p
}

// RenamePlace changes a catalogue entry after the fact.
func (s *Store) RenamePlace(id int64, name, photo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.st.places[id]
	p.Name, p.Photo = name, photo
	s.st.places[id] = p
}

func (s *Store) HasPlan(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.st.plans[id]
	return ok
}

func (s *Store) AssignmentCount(planID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.st.assignments {
		if a.PlanID == planID {
			n++
		}
	}
	return n
}

func (s *Store) ArchivedPlans() []dom.ArchivedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dom.ArchivedPlan(nil), s.st.archived...)
}

func (s *Store) ArchivedPlaces() []dom.ArchivedPlace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dom.ArchivedPlace(nil), s.st.archivedPlaces...)
}

type planRepo struct{ s *Store }

func (r planRepo) ListByUser(_ context.Context, userID int64) ([]dom.Plan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.ListByUser"); err != nil {
		return nil, err
	}
	list := []dom.Plan{}
	for _, p := range s.st.plans {
		if p.UserID != userID {
			continue
		}
		p.Owner = s.st.users[p.UserID].Summary()
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r planRepo) Create(_ context.Context, p dom.Plan) (dom.Plan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.Create"); err != nil {
		return dom.Plan{}, err
	}
	now := s.now()
	p.ID = s.nextID()
	p.CreatedAt, p.UpdatedAt = now, now
	p.CalendarEventID, p.CalendarEventLink = nil, nil
	s.st.plans[p.ID] = p
	return p, nil
}

func (r planRepo) GetByID(_ context.Context, id int64) (dom.Plan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.plans[id]
	if !ok {
		return dom.Plan{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r planRepo) GetForUpdate(ctx context.Context, id int64) (dom.Plan, error) {
	return r.GetByID(ctx, id)
}

func (r planRepo) Update(_ context.Context, p dom.Plan) (dom.Plan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.Update"); err != nil {
		return dom.Plan{}, err
	}
	cur, ok := s.st.plans[p.ID]
	if !ok {
		return dom.Plan{}, pgx.ErrNoRows
	}
	cur.Title, cur.StartTime, cur.EndTime = p.Title, p.StartTime, p.EndTime
	cur.UpdatedAt = s.now()
	s.st.plans[p.ID] = cur
	return cur, nil
}

func (r planRepo) SetCalendarEvent(_ context.Context, id int64, ev dom.CalendarEvent) (dom.Plan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.SetCalendarEvent"); err != nil {
		return dom.Plan{}, err
	}
	cur, ok := s.st.plans[id]
	if !ok {
		return dom.Plan{}, pgx.ErrNoRows
	}
	eid, link := ev.ExternalID, ev.Link
	cur.CalendarEventID, cur.CalendarEventLink = &eid, &link
	cur.UpdatedAt = s.now()
	s.st.plans[id] = cur
	return cur, nil
}

func (r planRepo) ListAssignments(_ context.Context, planID int64) ([]dom.PlaceAssignment, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dom.PlaceAssignment{}
	for _, a := range s.st.assignments {
		if a.PlanID != planID {
			continue
		}
		pl := s.st.places[a.PlaceID]
		a.Place = &dom.Place{ID: pl.ID, Name: pl.Name, Photo: pl.Photo}
		list = append(list, a)
	}
	return list, nil
}

func (r planRepo) AddAssignments(_ context.Context, planID int64, items []dom.NewAssignment) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.AddAssignments"); err != nil {
		return 0, err
	}
	if _, ok := s.st.plans[planID]; !ok {
		return 0, &pgconn.PgError{Code: "23503", Message: "plan does not exist"}
	}
	var n int64
	for _, it := range items {
		if _, ok := s.st.places[it.PlaceID]; !ok {
			return 0, &pgconn.PgError{Code: "23503", Message: "place does not exist"}
		}
		now := s.now()
		s.st.assignments = append(s.st.assignments, dom.PlaceAssignment{
			ID: s.nextID(), PlanID: planID, PlaceID: it.PlaceID,
			StartTime: it.StartTime, EndTime: it.EndTime,
			CreatedAt: now, UpdatedAt: now,
		})
		n++
	}
	return n, nil
}

func (r planRepo) RemoveAssignments(_ context.Context, planID, placeID int64) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.st.assignments[:0:0]
	var n int64
	for _, a := range s.st.assignments {
		if a.PlanID == planID && a.PlaceID == placeID {
			n++
			continue
		}
		kept = append(kept, a)
	}
	s.st.assignments = kept
	return n, nil
}

func (r planRepo) DeleteCascade(_ context.Context, planID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("plans.DeleteCascade"); err != nil {
		return err
	}
	kept := s.st.assignments[:0:0]
	for _, a := range s.st.assignments {
		if a.PlanID != planID {
			kept = append(kept, a)
		}
	}
	s.st.assignments = kept
	if _, ok := s.st.plans[planID]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.st.plans, planID)
	return nil
}

type archiveRepo struct{ s *Store }

func (r archiveRepo) CreatePlan(_ context.Context, ap dom.ArchivedPlan) (dom.ArchivedPlan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("archive.CreatePlan"); err != nil {
		return dom.ArchivedPlan{}, err
	}
	ap.ID = s.nextID()
	ap.Places = nil
	s.st.archived = append(s.st.archived, ap)
	return ap, nil
}

func (r archiveRepo) CreatePlaces(_ context.Context, rows []dom.ArchivedPlace) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("archive.CreatePlaces"); err != nil {
		return 0, err
	}
	for _, row := range rows {
		row.ID = s.nextID()
		s.st.archivedPlaces = append(s.st.archivedPlaces, row)
	}
	return int64(len(rows)), nil
}

func (r archiveRepo) ListByUser(_ context.Context, userID int64, limit int) ([]dom.ArchivedPlan, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dom.ArchivedPlan{}
	for _, ap := range s.st.archived {
		if ap.UserID == userID {
			list = append(list, ap)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].DeletedAt.Equal(list[j].DeletedAt) {
			return list[i].DeletedAt.After(list[j].DeletedAt)
		}
		return list[i].ID > list[j].ID
	})
	if len(list) > limit {
		list = list[:limit]
	}
	for i := range list {
		list[i].Places = []dom.ArchivedPlace{}
		for _, p := range s.st.archivedPlaces {
			if p.ArchivedPlanID != nil && *p.ArchivedPlanID == list[i].ID {
				list[i].Places = append(list[i].Places, p)
			}
		}
	}
	return list, nil
}

type placeRepo struct{ s *Store }

func (r placeRepo) Search(_ context.Context, q string) ([]dom.Place, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	q = strings.ToLower(q)
	list := []dom.Place{}
	for _, p := range s.st.places {
		if strings.Contains(strings.ToLower(p.Name), q) {
			p.Tags, p.BusinessHours = nil, nil
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r placeRepo) GetByIDs(_ context.Context, ids []int64) ([]dom.Place, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []dom.Place{}
	for _, id := range ids {
		if p, ok := s.st.places[id]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

type userRepo struct{ s *Store }

func (r userRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.st.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r userRepo) Create(_ context.Context, username, email, passwordHash string) (dom.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.st.users {
		if u.Username == username {
			return dom.User{}, &pgconn.PgError{Code: "23505", Message: "duplicate username"}
		}
	}
	u := dom.User{ID: s.nextID(), Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: s.now()}
	s.st.users[u.ID] = u
	return u, nil
}
