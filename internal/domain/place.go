package domain

// Place is read-only for the planner.
type Place struct {
	ID            int64
	Name          string
	Category      string
	Rating        float64
	Lat           float64
	Lng           float64
	Photo         string
	Tags          []string
	BusinessHours []string
}

// ListedPlace is an entry of a user's saved "list to go".
type ListedPlace struct {
	PlaceID   int64
	PlaceName string
	Photo     string
}
