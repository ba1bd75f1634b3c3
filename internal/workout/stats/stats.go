package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/workout/catalog"
)

const LabelLayout = "2006-01-02"

// Entry is a weight entry joined to the session it was logged in.
type Entry struct {
	UserID     int       `json:"userId"`
	SessionID  int       `json:"sessionId"`
	ExerciseID int       `json:"exerciseId"`
	Weight     float64   `json:"weight"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DistinctMuscles lists the non-empty muscle tags of the catalog, sorted.
func DistinctMuscles(exercises []catalog.Exercise) []string {
	seen := make(map[string]struct{})
	muscles := make([]string, 0)
	for _, e := range exercises {
		m := strings.TrimSpace(e.Muscles)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)
	return muscles
}

// ExercisesWithWeights returns the catalog exercises the user has logged at
// least one positive weight for, in catalog order. An empty muscle matches
// every exercise. Entries of other users are ignored.
func ExercisesWithWeights(entries []Entry, exercises []catalog.Exercise, userID int, muscle string) []catalog.Exercise {
	logged := make(map[int]struct{})
	for _, e := range entries {
		if e.UserID != userID || e.Weight <= 0 {
			continue
		}
		logged[e.ExerciseID] = struct{}{}
	}

	result := make([]catalog.Exercise, 0)
	for _, e := range catalog.ByMuscle(exercises, muscle) {
		if _, ok := logged[e.ID]; ok {
			result = append(result, e)
		}
	}
	return result
}

// Series shapes the user's entries into a chart series ordered by session
// date, then by entry creation time. Entries of other users are dropped even
// if the query already filtered them.
func Series(entries []Entry, userID int) []Point {
	own := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			own = append(own, e)
		}
	}

	sort.SliceStable(own, func(i, j int) bool {
		if !own[i].Date.Equal(own[j].Date) {
			return own[i].Date.Before(own[j].Date)
		}
		return own[i].CreatedAt.Before(own[j].CreatedAt)
	})

	points := make([]Point, 0, len(own))
	for _, e := range own {
		points = append(points, Point{
			Label: e.Date.Format(LabelLayout),
			Value: e.Weight,
		})
	}
	return points
}
