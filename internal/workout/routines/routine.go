package routines

import (
	"errors"
	"sort"
	"time"
)

const (
	DefaultName        = "La mia scheda"
	MinDaysPerWeek     = 3
	MaxDaysPerWeek     = 5
	DefaultDaysPerWeek = MinDaysPerWeek

	minSetsReps = 1
	maxSetsReps = 10
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
	ErrRoutineNotSaved = errors.New("routine not saved")
)

type Routine struct {
	ID          int               `json:"id"`
	UserID      int               `json:"userId"`
	Name        string            `json:"name"`
	DaysPerWeek int               `json:"daysPerWeek"`
	CreatedAt   time.Time         `json:"createdAt"`
	Exercises   []RoutineExercise `json:"exercises"`
}

type RoutineExercise struct {
	ID           int    `json:"id"`
	RoutineID    int    `json:"routineId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Muscles      string `json:"muscles,omitempty"`
	Day          int    `json:"day"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

type DayPlan struct {
	Day       int               `json:"day"`
	Exercises []RoutineExercise `json:"exercises"`
}

// Plan is a routine split into its training days. Every day in
// [1, DaysPerWeek] is present, possibly with no exercises.
type Plan struct {
	RoutineID   int       `json:"routineId"`
	Name        string    `json:"name"`
	DaysPerWeek int       `json:"daysPerWeek"`
	Days        []DayPlan `json:"days"`
	// DefaultDay is the lowest day with at least one exercise, 0 when the
	// routine has none.
	DefaultDay int `json:"defaultDay"`
}

func PlanOf(routine Routine) Plan {
	plan := Plan{
		RoutineID:   routine.ID,
		Name:        routine.Name,
		DaysPerWeek: routine.DaysPerWeek,
		Days:        make([]DayPlan, 0, routine.DaysPerWeek),
	}
	for day := 1; day <= routine.DaysPerWeek; day++ {
		plan.Days = append(plan.Days, DayPlan{Day: day, Exercises: []RoutineExercise{}})
	}

	for _, e := range routine.Exercises {
		if e.Day < 1 || e.Day > routine.DaysPerWeek {
			continue
		}
		plan.Days[e.Day-1].Exercises = append(plan.Days[e.Day-1].Exercises, e)
	}

	for _, d := range plan.Days {
		sort.SliceStable(d.Exercises, func(i, j int) bool {
			return d.Exercises[i].ID < d.Exercises[j].ID
		})
		if plan.DefaultDay == 0 && len(d.Exercises) > 0 {
			plan.DefaultDay = d.Day
		}
	}

	return plan
}

// ExercisesForDay returns nil for a day outside the plan.
func (p Plan) ExercisesForDay(day int) []RoutineExercise {
	if day < 1 || day > len(p.Days) {
		return nil
	}
	return p.Days[day-1].Exercises
}

func (p Plan) HasExercisesOn(day int) bool {
	return len(p.ExercisesForDay(day)) > 0
}
