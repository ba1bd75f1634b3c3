package routines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/workout/catalog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=builder_mocks_test.go -package=routines

var (
	ErrDayOutOfRange         = errors.New("day out of range")
	ErrDaysPerWeekOutOfRange = fmt.Errorf("days per week must be between %d and %d", MinDaysPerWeek, MaxDaysPerWeek)
	ErrDaysBelowUsedDay      = errors.New("days per week below a day already in use")
	ErrDraftEmpty            = errors.New("draft has no exercises")
	ErrDraftBusy             = errors.New("draft changed concurrently")
)

type exerciseResolver interface {
	Get(ctx context.Context, id int) (*catalog.Exercise, error)
}

// DraftEntry is one exercise of a routine that is not yet persisted.
// TempID only identifies it inside the draft.
type DraftEntry struct {
	TempID       string `json:"tempId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Muscles      string `json:"muscles,omitempty"`
	Day          int    `json:"day"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

type Draft struct {
	Name        string       `json:"name"`
	DaysPerWeek int          `json:"daysPerWeek"`
	Entries     []DraftEntry `json:"entries"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func NewDraft() *Draft {
	return &Draft{
		Name:        DefaultName,
		DaysPerWeek: DefaultDaysPerWeek,
		Entries:     []DraftEntry{},
	}
}

func (d *Draft) maxUsedDay() int {
	maxDay := 0
	for _, e := range d.Entries {
		if e.Day > maxDay {
			maxDay = e.Day
		}
	}
	return maxDay
}

// RoutineExercises maps draft entries to rows for the given routine.
func (d *Draft) RoutineExercises(routineID int) []RoutineExercise {
	exercises := make([]RoutineExercise, 0, len(d.Entries))
	for _, e := range d.Entries {
		exercises = append(exercises, RoutineExercise{
			RoutineID:    routineID,
			ExerciseID:   e.ExerciseID,
			ExerciseName: e.ExerciseName,
			Muscles:      e.Muscles,
			Day:          e.Day,
			Sets:         e.Sets,
			Reps:         e.Reps,
		})
	}
	return exercises
}

// Builder edits a Draft. It never touches storage; callers load and save the
// draft around it.
type Builder struct {
	draft     *Draft
	catalog   exerciseResolver
	newTempID func() string
}

func NewBuilder(draft *Draft, catalog exerciseResolver) *Builder {
	if draft == nil {
		draft = NewDraft()
	}
	if draft.DaysPerWeek < MinDaysPerWeek || draft.DaysPerWeek > MaxDaysPerWeek {
		draft.DaysPerWeek = DefaultDaysPerWeek
	}
	return &Builder{
		draft:     draft,
		catalog:   catalog,
		newTempID: uuid.NewString,
	}
}

func (b *Builder) Draft() *Draft {
	return b.draft
}

// AddExercise appends an exercise to the draft. An exerciseID of 0 means
// nothing was selected and is a no-op (nil entry, nil error).
func (b *Builder) AddExercise(ctx context.Context, exerciseID, day, sets, reps int) (*DraftEntry, error) {
	if exerciseID == 0 {
		return nil, nil
	}
	if day < 1 || day > b.draft.DaysPerWeek {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrDayOutOfRange, day, b.draft.DaysPerWeek)
	}

	exercise, err := b.catalog.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	entry := DraftEntry{
		TempID:       b.newTempID(),
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		Muscles:      exercise.Muscles,
		Day:          day,
		Sets:         clamp(sets, minSetsReps, maxSetsReps),
		Reps:         clamp(reps, minSetsReps, maxSetsReps),
	}
	b.draft.Entries = append(b.draft.Entries, entry)
	b.touch()

	return &entry, nil
}

// RemoveExercise reports whether an entry with tempID was removed.
func (b *Builder) RemoveExercise(tempID string) bool {
	for i, e := range b.draft.Entries {
		if e.TempID == tempID {
			b.draft.Entries = append(b.draft.Entries[:i], b.draft.Entries[i+1:]...)
			b.touch()
			return true
		}
	}
	return false
}

func (b *Builder) SetDaysPerWeek(n int) error {
	if n < MinDaysPerWeek || n > MaxDaysPerWeek {
		return ErrDaysPerWeekOutOfRange
	}
	if used := b.draft.maxUsedDay(); n < used {
		return fmt.Errorf("%w: day %d has exercises", ErrDaysBelowUsedDay, used)
	}
	b.draft.DaysPerWeek = n
	b.touch()
	return nil
}

// SetName falls back to DefaultName for a blank name.
func (b *Builder) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	b.draft.Name = name
	b.touch()
}

func (b *Builder) touch() {
	b.draft.UpdatedAt = time.Now().UTC()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
