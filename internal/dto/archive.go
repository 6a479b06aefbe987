package dto

import (
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
)

type ArchivedPlaceResponse struct {
	PlaceID   int64  `json:"place_id"`
	PlaceName string `json:"place_name"`
	Photo     string `json:"photo"`
}

type ArchivedPlanResponse struct {
	DeletedPlanID int64                   `json:"deleted_plan_id"`
	PlanID        int64                   `json:"plan_id"`
	UserID        int64                   `json:"user_id"`
	Title         string                  `json:"title"`
	StartTime     time.Time               `json:"start_time"`
	EndTime       time.Time               `json:"end_time"`
	DeletedAt     time.Time               `json:"deleted_at"`
	Places        []ArchivedPlaceResponse `json:"deleted_place_list"`
}

func ToArchivedPlanResponse(ap dom.ArchivedPlan) ArchivedPlanResponse {
	r := ArchivedPlanResponse{
		DeletedPlanID: ap.ID,
		PlanID:        ap.PlanID,
		UserID:        ap.UserID,
		Title:         ap.Title,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		DeletedAt:     ap.DeletedAt,
		Places:        make([]ArchivedPlaceResponse, 0, len(ap.Places)),
	}
	for _, p := range ap.Places {
		r.Places = append(r.Places, ArchivedPlaceResponse{PlaceID: p.PlaceID, PlaceName: p.PlaceName, Photo: p.Photo})
	}
	return r
}

func ToArchivedPlanResponses(list []dom.ArchivedPlan) []ArchivedPlanResponse {
	out := make([]ArchivedPlanResponse, 0, len(list))
	for _, ap := range list {
		out = append(out, ToArchivedPlanResponse(ap))
	}
	return out
}
