package sessions

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

const selectSessionsWithEntries = `
	SELECT h.id, h.user_id, h.workout_id, w.workout_name, h.date, h.created_at,
	       weh.id, weh.exercise_id, e.name, weh.weight, weh.created_at
	FROM workout_history h
	LEFT JOIN workouts w ON w.id = h.workout_id
	LEFT JOIN workout_exercise_history weh ON weh.workout_history_id = h.id
	LEFT JOIN exercises e ON e.id = weh.exercise_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, userID, routineID int, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("routine.id", routineID))

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_history (user_id, workout_id, date) VALUES ($1, $2, $3) RETURNING id;`,
		userID, routineID, date,
	).Scan(&id); err != nil {
		return -1, err
	}

	span.SetAttributes(attribute.Int("session.id", id))
	return id, nil
}

func (r *Repo) AddEntries(ctx context.Context, sessionID int, entries []WeightEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add_entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("session.id", sessionID),
		attribute.Int("entries.count", len(entries)),
	)

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{sessionID, e.ExerciseID, e.Weight})
	}

	copied, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"workout_exercise_history"},
		[]string{"workout_history_id", "exercise_id", "weight"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: %w", catalog.ErrExerciseNotFound, err)
		}
		return err
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d weight entries", copied, len(rows))
	}

	return nil
}

// DeleteByID removes a session regardless of its owner. Only used to undo a
// session created in the same request.
func (r *Repo) DeleteByID(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete_by_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	_, err = r.db.Exec(ctx, `DELETE FROM workout_history WHERE id = $1;`, id)
	return err
}

func (r *Repo) Delete(ctx context.Context, id, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id), attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_history WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListByUser returns the user's sessions newest first, each with its entries.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list_by_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectSessionsWithEntries+`
		WHERE h.user_id = $1
		ORDER BY h.date DESC, h.id DESC, weh.id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *Repo) Get(ctx context.Context, id, userID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id), attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		selectSessionsWithEntries+`
		WHERE h.id = $1 AND h.user_id = $2
		ORDER BY weh.id;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

func scanSessions(rows pgx.Rows) ([]Session, error) {
	sessions := make([]Session, 0)
	indexByID := make(map[int]int)

	for rows.Next() {
		var (
			session        Session
			routineName    *string
			entryID        *int
			exerciseID     *int
			exerciseName   *string
			weight         *float64
			entryCreatedAt *time.Time
		)
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.RoutineID, &routineName, &session.Date, &session.CreatedAt,
			&entryID, &exerciseID, &exerciseName, &weight, &entryCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		idx, ok := indexByID[session.ID]
		if !ok {
			if routineName != nil {
				session.RoutineName = *routineName
			}
			session.Date = NormalizeDate(session.Date)
			session.Entries = []WeightEntry{}
			sessions = append(sessions, session)
			idx = len(sessions) - 1
			indexByID[session.ID] = idx
		}

		if entryID == nil {
			continue
		}

		entry := WeightEntry{
			ID:        *entryID,
			SessionID: session.ID,
		}
		if exerciseID != nil {
			entry.ExerciseID = *exerciseID
		}
		if exerciseName != nil {
			entry.ExerciseName = *exerciseName
		}
		if weight != nil {
			entry.Weight = *weight
		}
		if entryCreatedAt != nil {
			entry.CreatedAt = *entryCreatedAt
		}
		sessions[idx].Entries = append(sessions[idx].Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
