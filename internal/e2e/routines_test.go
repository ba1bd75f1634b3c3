//go:build e2e_test || all_tests

package e2e

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/workoutlog/internal/workout/routines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRoutine drafts and commits a 3 day routine: bench press and flyes on day 1, squat on day 2.
func (s *E2ETestSuite) buildRoutine(ctx context.Context, token, name string) *routines.Routine {
	name2 := name
	days := 3
	s.doJSON(ctx, "PUT", "/routines/draft", token, routines.DraftUpdate{
		Name:        &name2,
		DaysPerWeek: &days,
	}, http.StatusOK, nil)

	for _, req := range []routines.AddExerciseRequest{
		{ExerciseID: s.exerciseID("Panca piana bilanciere"), Day: 1, Sets: 4, Reps: 8},
		{ExerciseID: s.exerciseID("Croci ai cavi"), Day: 1, Sets: 3, Reps: 12},
		{ExerciseID: s.exerciseID("Squat bilanciere"), Day: 2, Sets: 5, Reps: 5},
	} {
		s.doJSON(ctx, "POST", "/routines/draft/exercises", token, req, http.StatusCreated, nil)
	}

	var routine routines.Routine
	s.doJSON(ctx, "POST", "/routines/draft/commit", token, nil, http.StatusCreated, &routine)
	return &routine
}

func (s *E2ETestSuite) TestRoutineBuilder() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, identity := s.newUser(ctx)

	var draft routines.Draft
	s.doJSON(ctx, "GET", "/routines/draft", token, nil, http.StatusOK, &draft)
	assert.Equal(t, routines.DefaultName, draft.Name)
	assert.Equal(t, routines.DefaultDaysPerWeek, draft.DaysPerWeek)
	assert.Empty(t, draft.Entries)

	// nothing to commit yet
	s.doJSON(ctx, "POST", "/routines/draft/commit", token, nil, http.StatusBadRequest, nil)

	benchID := s.exerciseID("Panca piana bilanciere")

	var added routines.AddExerciseResponse
	s.doJSON(ctx, "POST", "/routines/draft/exercises", token, routines.AddExerciseRequest{
		ExerciseID: benchID, Day: 1, Sets: 40, Reps: 0,
	}, http.StatusCreated, &added)
	require.NotNil(t, added.Entry)
	assert.Equal(t, 10, added.Entry.Sets)
	assert.Equal(t, 1, added.Entry.Reps)
	assert.Len(t, added.Draft.Entries, 1)

	// no exercise selected is a no-op
	added = routines.AddExerciseResponse{}
	s.doJSON(ctx, "POST", "/routines/draft/exercises", token, routines.AddExerciseRequest{
		ExerciseID: 0, Day: 1, Sets: 3, Reps: 10,
	}, http.StatusOK, &added)
	assert.Nil(t, added.Entry)
	assert.Len(t, added.Draft.Entries, 1)

	// day 5 does not exist in a 3 day routine
	s.doJSON(ctx, "POST", "/routines/draft/exercises", token, routines.AddExerciseRequest{
		ExerciseID: benchID, Day: 5, Sets: 3, Reps: 10,
	}, http.StatusBadRequest, nil)

	// unknown exercise
	s.doJSON(ctx, "POST", "/routines/draft/exercises", token, routines.AddExerciseRequest{
		ExerciseID: 999999, Day: 1, Sets: 3, Reps: 10,
	}, http.StatusBadRequest, nil)

	days := 6
	s.doJSON(ctx, "PUT", "/routines/draft", token, routines.DraftUpdate{DaysPerWeek: &days}, http.StatusBadRequest, nil)

	// the draft survives between requests
	s.doJSON(ctx, "GET", "/routines/draft", token, nil, http.StatusOK, &draft)
	require.Len(t, draft.Entries, 1)

	s.doJSON(ctx, "DELETE", "/routines/draft/exercises/"+draft.Entries[0].TempID, token, nil, http.StatusOK, &draft)
	assert.Empty(t, draft.Entries)

	routine := s.buildRoutine(ctx, token, "Push Pull")
	assert.Positive(t, routine.ID)
	assert.Equal(t, "Push Pull", routine.Name)
	assert.Len(t, routine.Exercises, 3)
	assert.Equal(t, 1, s.count(`SELECT count(*) FROM workouts WHERE user_id = $1`, identity.UserID))
	assert.Equal(t, 3, s.count(`SELECT count(*) FROM workout_exercises WHERE workout_id = $1`, routine.ID))

	// committing clears the draft
	s.doJSON(ctx, "GET", "/routines/draft", token, nil, http.StatusOK, &draft)
	assert.Empty(t, draft.Entries)
	assert.Equal(t, routines.DefaultName, draft.Name)

	var list routines.ListResponse
	s.doJSON(ctx, "GET", "/routines", token, nil, http.StatusOK, &list)
	require.Len(t, list.Routines, 1)
	assert.Equal(t, routine.ID, list.Routines[0].ID)

	var plan routines.Plan
	s.doJSON(ctx, "GET", fmt.Sprintf("/routines/%d/plan", routine.ID), token, nil, http.StatusOK, &plan)
	assert.Equal(t, 1, plan.DefaultDay)
	require.Len(t, plan.Days, 3)
	assert.Len(t, plan.Days[0].Exercises, 2)
	assert.Len(t, plan.Days[1].Exercises, 1)
	assert.Empty(t, plan.Days[2].Exercises)

	// routines are private
	otherToken, _ := s.newUser(ctx)
	s.doJSON(ctx, "GET", fmt.Sprintf("/routines/%d", routine.ID), otherToken, nil, http.StatusNotFound, nil)
	s.doJSON(ctx, "DELETE", fmt.Sprintf("/routines/%d", routine.ID), otherToken, nil, http.StatusNotFound, nil)
	s.doJSON(ctx, "GET", "/routines", otherToken, nil, http.StatusOK, &list)
	assert.Empty(t, list.Routines)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/routines/%d", routine.ID), token, nil, http.StatusOK, nil)
	assert.Equal(t, 0, s.count(`SELECT count(*) FROM workout_exercises WHERE workout_id = $1`, routine.ID))
	s.doJSON(ctx, "GET", fmt.Sprintf("/routines/%d", routine.ID), token, nil, http.StatusNotFound, nil)
}
