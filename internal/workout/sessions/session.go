package sessions

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	UnitKg      = "kg"
	UnitLb      = "lb"
	DefaultUnit = UnitKg
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionNotSaved = errors.New("session not saved")
	ErrDateInFuture    = errors.New("date is in the future")
	ErrInvalidDate     = fmt.Errorf("invalid date, expected %s", DateLayout)
	ErrInvalidUnit     = errors.New("unit must be kg or lb")
)

// Session is one logged workout. RoutineID is nil once the routine it was
// logged against has been deleted.
type Session struct {
	ID          int           `json:"id"`
	UserID      int           `json:"userId"`
	RoutineID   *int          `json:"routineId"`
	RoutineName string        `json:"routineName,omitempty"`
	Date        time.Time     `json:"date"`
	CreatedAt   time.Time     `json:"createdAt"`
	Entries     []WeightEntry `json:"entries"`
}

// WeightEntry is one recorded weight. Unit is echoed back to the client on
// the request that logged it and is not stored.
type WeightEntry struct {
	ID           int       `json:"id"`
	SessionID    int       `json:"sessionId"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	Unit         string    `json:"unit,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NormalizeDate keeps the calendar day of t and drops the time of day.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func SameDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}
