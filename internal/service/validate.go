package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/utils"

	"github.com/jackc/pgx/v5"
)

// PlanInput is the raw title and time range of a create or edit.
type PlanInput struct {
	Title     string
	StartTime string
	EndTime   string
}

// AssignmentInput is one place of a bulk add; times are optional.
type AssignmentInput struct {
	PlaceID   int64
	StartTime string
	EndTime   string
}

var errPlanNotFound = fmt.Errorf("plan %w", dom.ErrNotFound)

type validPlan struct {
	title      string
	start, end time.Time
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", dom.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validatePlanInput(in PlanInput) (validPlan, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.StartTime) == "" || strings.TrimSpace(in.EndTime) == "" {
		return validPlan{}, invalid("title, start_time, and end_time are required")
	}
	start, err := utils.ParseTimestamp(in.StartTime)
	if err != nil {
		return validPlan{}, invalid("start_time: %v", err)
	}
	end, err := utils.ParseTimestamp(in.EndTime)
	if err != nil {
		return validPlan{}, invalid("end_time: %v", err)
	}
	if end.Before(start) {
		return validPlan{}, invalid("end_time must not be before start_time")
	}
	return validPlan{title: title, start: start, end: end}, nil
}

func optionalTimestamp(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := utils.ParseTimestamp(raw)
	if err != nil {
		return nil, invalid("%s: %v", field, err)
	}
	return &t, nil
}

func validateAssignments(items []AssignmentInput) ([]dom.NewAssignment, error) {
	if len(items) == 0 {
		return nil, invalid("places must be an array and cannot be empty")
	}
	out := make([]dom.NewAssignment, 0, len(items))
	for i, it := range items {
		if it.PlaceID <= 0 {
			return nil, invalid("places[%d].place_id is required", i)
		}
		start, err := optionalTimestamp(fmt.Sprintf("places[%d].start_time", i), it.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := optionalTimestamp(fmt.Sprintf("places[%d].end_time", i), it.EndTime)
		if err != nil {
			return nil, err
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, invalid("places[%d]: end_time must not be before start_time", i)
		}
		out = append(out, dom.NewAssignment{PlaceID: it.PlaceID, StartTime: start, EndTime: end})
	}
	return out, nil
}

func validateListed(items []dom.ListedPlace) ([]dom.ListedPlace, error) {
	if len(items) == 0 {
		return nil, invalid("places must be an array and cannot be empty")
	}
	out := make([]dom.ListedPlace, 0, len(items))
	for i, it := range items {
		if it.PlaceID <= 0 {
			return nil, invalid("places[%d].list_to_go_id is required", i)
		}
		it.PlaceName = strings.TrimSpace(it.PlaceName)
		out = append(out, it)
	}
	return out, nil
}

// mapStoreErr turns persistence errors into the error taxonomy where one applies.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return errPlanNotFound
	case utils.IsPGForeignKeyViolation(err):
		return invalid("referenced place does not exist")
	}
	return err
}
