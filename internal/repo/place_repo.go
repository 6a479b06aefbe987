package repo

import (
	"context"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/utils"

	"gorm.io/gorm"
)

// PlaceRepo reads the place catalogue. The planner never writes places.
type PlaceRepo interface {
	Search(ctx context.Context, q string) ([]dom.Place, error)
	// GetByIDs loads places with tags and business hours; missing ids are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]dom.Place, error)
}

// GormPlaceRepo implements PlaceRepo with GORM on the shared pgx pool.
type GormPlaceRepo struct {
	db *gorm.DB
}

func NewGormPlaceRepo(db *gorm.DB) *GormPlaceRepo {
	return &GormPlaceRepo{db: db}
}

// Place GORM model for database mapping
type Place struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	Name          string         `gorm:"column:name"`
	Category      *string        `gorm:"column:category"`
	Rating        *float64       `gorm:"column:rating"`
	Lat           *float64       `gorm:"column:lat"`
	Lng           *float64       `gorm:"column:lng"`
	Photo         *string        `gorm:"column:photo"`
	Tags          []PlaceTag     `gorm:"foreignKey:PlaceID"`
	BusinessHours []BusinessHour `gorm:"foreignKey:PlaceID"`
}

func (Place) TableName() string { return "places" }

type PlaceTag struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	PlaceID int64  `gorm:"column:place_id"`
	Name    string `gorm:"column:name"`
}

func (PlaceTag) TableName() string { return "place_tags" }

type BusinessHour struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	PlaceID  int64  `gorm:"column:place_id"`
	Position int    `gorm:"column:position"`
	Hours    string `gorm:"column:hours"`
}

func (BusinessHour) TableName() string { return "business_hours" }

func (r *GormPlaceRepo) Search(ctx context.Context, q string) ([]dom.Place, error) {
	var rows []Place
	result := r.db.WithContext(ctx).
		Select("id", "name", "category", "rating", "lat", "lng", "photo").
		Where("name ILIKE ?", "%"+utils.EscapeLike(q)+"%").
		Order("id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	out := make([]dom.Place, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPlace(row))
	}
	return out, nil
}

func (r *GormPlaceRepo) GetByIDs(ctx context.Context, ids []int64) ([]dom.Place, error) {
	if len(ids) == 0 {
		return []dom.Place{}, nil
	}
	var rows []Place
	result := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("BusinessHours", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id IN ?", ids).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	out := make([]dom.Place, 0, len(rows))
	for _, row := range rows {
		p := toDomainPlace(row)
		p.Tags = make([]string, 0, len(row.Tags))
		for _, t := range row.Tags {
			p.Tags = append(p.Tags, t.Name)
		}
		p.BusinessHours = make([]string, 0, len(row.BusinessHours))
		for _, h := range row.BusinessHours {
			p.BusinessHours = append(p.BusinessHours, h.Hours)
		}
		out = append(out, p)
	}
	return out, nil
}

func toDomainPlace(row Place) dom.Place {
	p := dom.Place{ID: row.ID, Name: row.Name}
	if row.Category != nil {
		p.Category = *row.Category
	}
	if row.Rating != nil {
		p.Rating = *row.Rating
	}
	if row.Lat != nil {
		p.Lat = *row.Lat
	}
	if row.Lng != nil {
		p.Lng = *row.Lng
	}
	if row.Photo != nil {
		p.Photo = *row.Photo
	}
	return p
}
