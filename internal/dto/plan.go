package dto

import (
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
)

// Times are accepted as RFC3339 or "2006-01-02T15:04[:05]" and parsed by the service.
type PlanRequest struct {
	Title     string `json:"title" example:"Bangkok Trip"`
	StartTime string `json:"start_time" example:"2025-06-01T09:00:00Z"`
	EndTime   string `json:"end_time" example:"2025-06-03T18:00:00Z"`
}

type PlanIDRequest struct {
	PlanID int64 `json:"plan_id" example:"1"`
}

type PlaceIDRequest struct {
	PlaceID int64 `json:"place_id" example:"5"`
}

type AddPlaceItem struct {
	PlaceID   int64  `json:"place_id" example:"5"`
	StartTime string `json:"start_time,omitempty" example:"2025-06-01T10:00:00Z"`
	EndTime   string `json:"end_time,omitempty" example:"2025-06-01T12:00:00Z"`
}

type AddPlacesRequest struct {
	Places []AddPlaceItem `json:"places"`
}

// ListToGoItem is a saved list entry; list_to_go_id is the place id.
type ListToGoItem struct {
	ListToGoID int64  `json:"list_to_go_id" example:"5"`
	PlaceName  string `json:"place_name" example:"Wat Arun"`
	Photo      string `json:"photo"`
}

type AddListToGoRequest struct {
	Places []ListToGoItem `json:"places"`
}

type OwnerResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PlanResponse struct {
	PlanID          int64          `json:"plan_id"`
	UserID          int64          `json:"user_id"`
	Title           string         `json:"title"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         time.Time      `json:"end_time"`
	GoogleEventID   *string        `json:"google_event_id"`
	GoogleEventLink *string        `json:"google_event_link"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	User            *OwnerResponse `json:"user,omitempty"`
}

type AssignmentResponse struct {
	ID        int64                `json:"id"`
	PlanID    int64                `json:"plan_id"`
	PlaceID   int64                `json:"place_id"`
	StartTime *time.Time           `json:"start_time"`
	EndTime   *time.Time           `json:"end_time"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Place     *PlaceDetailResponse `json:"place"`
}

type PlanDetailResponse struct {
	PlanResponse
	PlaceList []AssignmentResponse `json:"place_list"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RemovePlaceResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type SyncPlanResponse struct {
	Message     string       `json:"message"`
	EventLink   string       `json:"eventLink"`
	UpdatedPlan PlanResponse `json:"updatedPlan"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPlanResponse(p dom.Plan) PlanResponse {
	r := PlanResponse{
		PlanID:          p.ID,
		UserID:          p.UserID,
		Title:           p.Title,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		GoogleEventID:   p.CalendarEventID,
		GoogleEventLink: p.CalendarEventLink,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Owner != nil {
		r.User = &OwnerResponse{UserID: p.Owner.ID, Username: p.Owner.Username, Email: p.Owner.Email}
	}
	return r
}

func ToPlanResponses(list []dom.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPlanResponse(p))
	}
	return out
}

func ToPlanDetailResponse(p dom.Plan) PlanDetailResponse {
	r := PlanDetailResponse{PlanResponse: ToPlanResponse(p), PlaceList: make([]AssignmentResponse, 0, len(p.Places))}
	for _, a := range p.Places {
		item := AssignmentResponse{
			ID:        a.ID,
			PlanID:    a.PlanID,
			PlaceID:   a.PlaceID,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
		if a.Place != nil {
			pl := ToPlaceDetailResponse(*a.Place)
			item.Place = &pl
		}
		r.PlaceList = append(r.PlaceList, item)
	}
	return r
}
