package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"
	"github.com/2beens/workoutlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectRoutinesWithExercises = `
	SELECT w.id, w.user_id, w.workout_name, w.days_per_week, w.created_at,
	       we.id, we.exercise_id, e.name, e.muscles, we.day, we.sets, we.reps
	FROM workouts w
	LEFT JOIN workout_exercises we ON we.workout_id = w.id
	LEFT JOIN exercises e ON e.id = we.exercise_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, userID int, name string, daysPerWeek int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (user_id, workout_name, days_per_week) VALUES ($1, $2, $3) RETURNING id;`,
		userID, name, daysPerWeek,
	).Scan(&id); err != nil {
		return -1, err
	}

	span.SetAttributes(attribute.Int("routine.id", id))
	return id, nil
}

// AddExercises bulk inserts the exercise rows of one routine.
func (r *Repo) AddExercises(ctx context.Context, routineID int, exercises []RoutineExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("routine.id", routineID),
		attribute.Int("exercises.count", len(exercises)),
	)

	rows := make([][]any, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []any{routineID, e.ExerciseID, e.Day, e.Sets, e.Reps})
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"workout_exercises"},
		[]string{"workout_id", "exercise_id", "day", "sets", "reps"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: %w", catalog.ErrExerciseNotFound, err)
		}
		return err
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d routine exercises", copied, len(rows))
	}

	return nil
}

// DeleteByID removes a routine regardless of its owner. Only used to undo a
// routine created in the same request.
func (r *Repo) DeleteByID(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete_by_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	_, err = r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	return err
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id), attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list_by_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectRoutinesWithExercises+`
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, w.id DESC, we.day, we.id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines, err := scanRoutines(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("routines.count", len(routines)))
	return routines, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id), attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectRoutinesWithExercises+`
		WHERE w.id = $1 AND w.user_id = $2
		ORDER BY we.id;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines, err := scanRoutines(rows)
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		return nil, ErrRoutineNotFound
	}

	return &routines[0], nil
}

// scanRoutines folds joined rows into routines, keeping the row order.
func scanRoutines(rows pgx.Rows) ([]Routine, error) {
	routines := make([]Routine, 0)
	indexByID := make(map[int]int)

	for rows.Next() {
		var (
			routine      Routine
			createdAt    time.Time
			exerciseRow  *int
			exerciseID   *int
			exerciseName *string
			muscles      *string
			day          *int
			sets         *int
			reps         *int
		)
		if err := rows.Scan(
			&routine.ID, &routine.UserID, &routine.Name, &routine.DaysPerWeek, &createdAt,
			&exerciseRow, &exerciseID, &exerciseName, &muscles, &day, &sets, &reps,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		idx, ok := indexByID[routine.ID]
		if !ok {
			routine.CreatedAt = createdAt
			routine.Exercises = []RoutineExercise{}
			routines = append(routines, routine)
			idx = len(routines) - 1
			indexByID[routine.ID] = idx
		}

		// routine without exercises
		if exerciseRow == nil {
			continue
		}

		e := RoutineExercise{
			ID:         *exerciseRow,
			RoutineID:  routine.ID,
			ExerciseID: deref(exerciseID),
			Day:        deref(day),
			Sets:       deref(sets),
			Reps:       deref(reps),
		}
		if exerciseName != nil {
			e.ExerciseName = *exerciseName
		}
		if muscles != nil {
			e.Muscles = *muscles
		}
		routines[idx].Exercises = append(routines[idx].Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
