package dto

import dom "github.com/Thonkla/PlaceMate/internal/domain"

// PlaceResponse is the search projection.
type PlaceResponse struct {
	PlaceID  int64   `json:"place_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Photo    string  `json:"photo"`
}

type PlaceDetailResponse struct {
	PlaceResponse
	Tags          []string `json:"tags"`
	BusinessHours []string `json:"business_hours"`
}

func ToPlaceResponse(p dom.Place) PlaceResponse {
	return PlaceResponse{
		PlaceID:  p.ID,
		Name:     p.Name,
		Category: p.Category,
		Rating:   p.Rating,
		Lat:      p.Lat,
		Lng:      p.Lng,
		Photo:    p.Photo,
	}
}

func ToPlaceResponses(list []dom.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPlaceResponse(p))
	}
	return out
}

func ToPlaceDetailResponse(p dom.Place) PlaceDetailResponse {
	r := PlaceDetailResponse{PlaceResponse: ToPlaceResponse(p), Tags: p.Tags, BusinessHours: p.BusinessHours}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.BusinessHours == nil {
		r.BusinessHours = []string{}
	}
	return r
}
