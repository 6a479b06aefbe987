package repo

import (
	"context"

	dom "github.com/Thonkla/PlaceMate/internal/domain"

	"github.com/jackc/pgx/v5"
)

// PlanRepo persists plans and their place assignments.
// Lookups of a missing plan return pgx.ErrNoRows.
type PlanRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]dom.Plan, error)
	Create(ctx context.Context, p dom.Plan) (dom.Plan, error)
	GetByID(ctx context.Context, id int64) (dom.Plan, error)
	// GetForUpdate also locks the plan row until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (dom.Plan, error)
	Update(ctx context.Context, p dom.Plan) (dom.Plan, error)
	SetCalendarEvent(ctx context.Context, id int64, ev dom.CalendarEvent) (dom.Plan, error)

	// ListAssignments returns assignments with Place holding id, name and photo.
	ListAssignments(ctx context.Context, planID int64) ([]dom.PlaceAssignment, error)
	AddAssignments(ctx context.Context, planID int64, items []dom.NewAssignment) (int64, error)
	RemoveAssignments(ctx context.Context, planID, placeID int64) (int64, error)
	DeleteCascade(ctx context.Context, planID int64) error
}

type PGPlanRepo struct {
	db DBTX
}

func NewPGPlanRepo(db DBTX) *PGPlanRepo {
	return &PGPlanRepo{db: db}
}

const planColumns = `id, user_id, title, start_time, end_time, calendar_event_id, calendar_event_link, created_at, updated_at`

func scanPlan(row scanner, extra ...any) (dom.Plan, error) {
	var p dom.Plan
	dest := []any{
		&p.ID, &p.UserID, &p.Title, &p.StartTime, &p.EndTime,
		&p.CalendarEventID, &p.CalendarEventLink, &p.CreatedAt, &p.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return p, err
}

func (r *PGPlanRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Plan, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.start_time, p.end_time, p.calendar_event_id, p.calendar_event_link,
		       p.created_at, p.updated_at, u.id, u.username, u.email
		FROM plans p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.id ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.Plan{}
	for rows.Next() {
		var owner dom.UserSummary
		p, err := scanPlan(rows, &owner.ID, &owner.Username, &owner.Email)
		if err != nil {
			return nil, err
		}
		p.Owner = &owner
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGPlanRepo) Create(ctx context.Context, p dom.Plan) (dom.Plan, error) {
	query := `
		INSERT INTO plans (user_id, title, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + planColumns
	return scanPlan(r.db.QueryRow(ctx, query, p.UserID, p.Title, p.StartTime, p.EndTime))
}

func (r *PGPlanRepo) GetByID(ctx context.Context, id int64) (dom.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`
	return scanPlan(r.db.QueryRow(ctx, query, id))
}

func (r *PGPlanRepo) GetForUpdate(ctx context.Context, id int64) (dom.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1 FOR UPDATE`
	return scanPlan(r.db.QueryRow(ctx, query, id))
}

func (r *PGPlanRepo) Update(ctx context.Context, p dom.Plan) (dom.Plan, error) {
	query := `
		UPDATE plans SET title = $2, start_time = $3, end_time = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + planColumns
	return scanPlan(r.db.QueryRow(ctx, query, p.ID, p.Title, p.StartTime, p.EndTime))
}

func (r *PGPlanRepo) SetCalendarEvent(ctx context.Context, id int64, ev dom.CalendarEvent) (dom.Plan, error) {
	query := `
		UPDATE plans SET calendar_event_id = $2, calendar_event_link = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + planColumns
	return scanPlan(r.db.QueryRow(ctx, query, id, ev.ExternalID, ev.Link))
}

func (r *PGPlanRepo) ListAssignments(ctx context.Context, planID int64) ([]dom.PlaceAssignment, error) {
	query := `
		SELECT pa.id, pa.plan_id, pa.place_id, pa.start_time, pa.end_time, pa.created_at, pa.updated_at,
		       pl.name, COALESCE(pl.photo, '')
		FROM place_assignments pa JOIN places pl ON pl.id = pa.place_id
		WHERE pa.plan_id = $1
		ORDER BY pa.id ASC`
	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.PlaceAssignment{}
	for rows.Next() {
		var a dom.PlaceAssignment
		place := &dom.Place{}
		if err := rows.Scan(&a.ID, &a.PlanID, &a.PlaceID, &a.StartTime, &a.EndTime,
			&a.CreatedAt, &a.UpdatedAt, &place.Name, &place.Photo); err != nil {
			return nil, err
		}
		place.ID = a.PlaceID
		a.Place = place
		list = append(list, a)
	}
	return list, rows.Err()
}

var assignmentColumns = []string{"plan_id", "place_id", "start_time", "end_time"}

// AddAssignments copies the batch in one round trip. A missing place fails the
// whole copy with a foreign key violation.
func (r *PGPlanRepo) AddAssignments(ctx context.Context, planID int64, items []dom.NewAssignment) (int64, error) {
	return r.db.CopyFrom(ctx,
		pgx.Identifier{"place_assignments"},
		assignmentColumns,
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			return []any{planID, it.PlaceID, it.StartTime, it.EndTime}, nil
		}),
	)
}

func (r *PGPlanRepo) RemoveAssignments(ctx context.Context, planID, placeID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM place_assignments WHERE plan_id = $1 AND place_id = $2`, planID, placeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGPlanRepo) DeleteCascade(ctx context.Context, planID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM place_assignments WHERE plan_id = $1`, planID); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, planID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
