package sessions

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/2beens/workoutlog/internal/workout/routines"
)

const (
	MaxWeight = 1000

	MsgWeightMissing = "Inserisci un peso"
	MsgWeightInvalid = "Peso non valido"
	MsgNothingToSave = "Nessun peso valido da salvare"
)

// ValidationError flags the exercises whose weight blocked a submission.
// Fields maps exercise id to a user facing message.
type ValidationError struct {
	Fields map[int]string `json:"fields"`
	Msg    string         `json:"message,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Msg
	}
	ids := make([]int, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("exercise %d: %s", id, e.Fields[id]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func parseWeight(value string) (float64, bool) {
	w, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(value, ",", ".", 1)), 64)
	if err != nil || math.IsNaN(w) {
		return 0, false
	}
	return w, w > 0 && w <= MaxWeight
}

// CheckWeightInput tells whether a value may be typed into a weight field:
// either still empty or a number in (0, MaxWeight].
func CheckWeightInput(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	_, ok := parseWeight(value)
	return ok
}

// ValidateWeights requires a valid weight for every exercise of the day.
// Weights for exercises outside the day are ignored.
func ValidateWeights(exercises []routines.RoutineExercise, weights map[int]string) (map[int]float64, error) {
	if len(exercises) == 0 {
		return nil, &ValidationError{Msg: MsgNothingToSave}
	}

	parsed := make(map[int]float64, len(exercises))
	fields := make(map[int]string)
	for _, e := range exercises {
		raw := weights[e.ExerciseID]
		if strings.TrimSpace(raw) == "" {
			fields[e.ExerciseID] = MsgWeightMissing
			continue
		}
		w, ok := parseWeight(raw)
		if !ok {
			fields[e.ExerciseID] = MsgWeightInvalid
			continue
		}
		parsed[e.ExerciseID] = w
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return parsed, nil
}

func normalizeUnit(unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "":
		return DefaultUnit, nil
	case UnitKg:
		return UnitKg, nil
	case UnitLb:
		return UnitLb, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}
