package repo

import (
	"context"

	dom "github.com/Thonkla/PlaceMate/internal/domain"

	"github.com/jackc/pgx/v5"
)

// ArchiveRepo stores snapshots of deleted plans. Rows are never updated.
type ArchiveRepo interface {
	CreatePlan(ctx context.Context, ap dom.ArchivedPlan) (dom.ArchivedPlan, error)
	CreatePlaces(ctx context.Context, rows []dom.ArchivedPlace) (int64, error)
	// ListByUser returns at most limit plans, newest deletion first, with places.
	ListByUser(ctx context.Context, userID int64, limit int) ([]dom.ArchivedPlan, error)
}

type PGArchiveRepo struct {
	db DBTX
}

func NewPGArchiveRepo(db DBTX) *PGArchiveRepo {
	return &PGArchiveRepo{db: db}
}

func (r *PGArchiveRepo) CreatePlan(ctx context.Context, ap dom.ArchivedPlan) (dom.ArchivedPlan, error) {
	query := `
		INSERT INTO archived_plans (plan_id, user_id, title, start_time, end_time, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, plan_id, user_id, title, start_time, end_time, deleted_at`
	var out dom.ArchivedPlan
	err := r.db.QueryRow(ctx, query, ap.PlanID, ap.UserID, ap.Title, ap.StartTime, ap.EndTime, ap.DeletedAt).Scan(
		&out.ID, &out.PlanID, &out.UserID, &out.Title, &out.StartTime, &out.EndTime, &out.DeletedAt,
	)
	return out, err
}

var archivedPlaceColumns = []string{"archived_plan_id", "plan_id", "place_id", "place_name", "photo"}

func (r *PGArchiveRepo) CreatePlaces(ctx context.Context, rows []dom.ArchivedPlace) (int64, error) {
	return r.db.CopyFrom(ctx,
		pgx.Identifier{"archived_place_assignments"},
		archivedPlaceColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{row.ArchivedPlanID, row.PlanID, row.PlaceID, row.PlaceName, row.Photo}, nil
		}),
	)
}

func (r *PGArchiveRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]dom.ArchivedPlan, error) {
	query := `
		SELECT id, plan_id, user_id, title, start_time, end_time, deleted_at
		FROM archived_plans
		WHERE user_id = $1
		ORDER BY deleted_at DESC, id DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []dom.ArchivedPlan{}
	index := make(map[int64]int)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var ap dom.ArchivedPlan
		if err := rows.Scan(&ap.ID, &ap.PlanID, &ap.UserID, &ap.Title, &ap.StartTime, &ap.EndTime, &ap.DeletedAt); err != nil {
			return nil, err
		}
		ap.Places = []dom.ArchivedPlace{}
		index[ap.ID] = len(list)
		ids = append(ids, ap.ID)
		list = append(list, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	placeRows, err := r.db.Query(ctx, `
		SELECT id, archived_plan_id, plan_id, place_id, place_name, photo
		FROM archived_place_assignments
		WHERE archived_plan_id = ANY($1)
		ORDER BY id ASC`, ids)
	if err != nil {
		return nil, err
	}
	defer placeRows.Close()
	for placeRows.Next() {
		var p dom.ArchivedPlace
		if err := placeRows.Scan(&p.ID, &p.ArchivedPlanID, &p.PlanID, &p.PlaceID, &p.PlaceName, &p.Photo); err != nil {
			return nil, err
		}
		if i, ok := index[*p.ArchivedPlanID]; ok {
			list[i].Places = append(list[i].Places, p)
		}
	}
	return list, placeRows.Err()
}
