package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/metrics"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routines

type routinesRepo interface {
	Create(ctx context.Context, userID int, name string, daysPerWeek int) (int, error)
	AddExercises(ctx context.Context, routineID int, exercises []RoutineExercise) error
	DeleteByID(ctx context.Context, id int) error
	Delete(ctx context.Context, id, userID int) error
	ListByUser(ctx context.Context, userID int) ([]Routine, error)
	Get(ctx context.Context, id, userID int) (*Routine, error)
}

type draftStore interface {
	Get(ctx context.Context, userID int) (*Draft, error)
	Update(ctx context.Context, userID int, mutate DraftMutation) (*Draft, error)
	Delete(ctx context.Context, userID int) error
}

type DraftUpdate struct {
	Name        *string `json:"name"`
	DaysPerWeek *int    `json:"daysPerWeek"`
}

type AddExerciseRequest struct {
	ExerciseID int `json:"exerciseId"`
	Day        int `json:"day"`
	Sets       int `json:"sets"`
	Reps       int `json:"reps"`
}

type Service struct {
	repo           routinesRepo
	drafts         draftStore
	catalog        exerciseResolver
	metricsManager *metrics.Manager
}

func NewService(
	repo routinesRepo,
	drafts draftStore,
	catalog exerciseResolver,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		drafts:         drafts,
		catalog:        catalog,
		metricsManager: metricsManager,
	}
}

func checkIdentity(identity auth.Identity) error {
	if identity.UserID <= 0 {
		return auth.ErrNotAuthenticated
	}
	return nil
}

func (s *Service) Draft(ctx context.Context, identity auth.Identity) (*Draft, error) {
	if err := checkIdentity(identity); err != nil {
		return nil, err
	}
	return s.drafts.Get(ctx, identity.UserID)
}

func (s *Service) UpdateDraft(ctx context.Context, identity auth.Identity, update DraftUpdate) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.update_draft")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	return s.drafts.Update(ctx, identity.UserID, func(draft *Draft) (bool, error) {
		builder := NewBuilder(draft, s.catalog)
		if update.Name != nil {
			builder.SetName(*update.Name)
		}
		if update.DaysPerWeek != nil {
			if err := builder.SetDaysPerWeek(*update.DaysPerWeek); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// AddDraftExercise returns a nil entry when nothing was selected; the draft is
// then left untouched.
func (s *Service) AddDraftExercise(
	ctx context.Context,
	identity auth.Identity,
	req AddExerciseRequest,
) (_ *DraftEntry, _ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.add_draft_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", req.ExerciseID), attribute.Int("day", req.Day))

	if err := checkIdentity(identity); err != nil {
		return nil, nil, err
	}

	var entry *DraftEntry
	draft, err := s.drafts.Update(ctx, identity.UserID, func(draft *Draft) (bool, error) {
		added, err := NewBuilder(draft, s.catalog).AddExercise(ctx, req.ExerciseID, req.Day, req.Sets, req.Reps)
		if err != nil {
			return false, err
		}
		entry = added
		return added != nil, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, draft, nil
}

func (s *Service) RemoveDraftExercise(ctx context.Context, identity auth.Identity, tempID string) (_ *Draft, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.remove_draft_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	return s.drafts.Update(ctx, identity.UserID, func(draft *Draft) (bool, error) {
		return NewBuilder(draft, s.catalog).RemoveExercise(tempID), nil
	})
}

func (s *Service) DiscardDraft(ctx context.Context, identity auth.Identity) error {
	if err := checkIdentity(identity); err != nil {
		return err
	}
	return s.drafts.Delete(ctx, identity.UserID)
}

// Commit persists the caller's draft as a routine: the routine row first,
// then all its exercise rows. When the exercise rows cannot be written the
// routine row is deleted again, so no routine is left without exercises.
func (s *Service) Commit(ctx context.Context, identity auth.Identity) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	draft, err := s.drafts.Get(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if len(draft.Entries) == 0 {
		return nil, ErrDraftEmpty
	}

	routineID, err := s.repo.Create(ctx, identity.UserID, draft.Name, draft.DaysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: create routine: %w", ErrRoutineNotSaved, err)
	}
	span.SetAttributes(attribute.Int("routine.id", routineID))

	saga := pkg.Saga{}
	saga.AddCompensation("routine", func(ctx context.Context) error {
		return s.repo.DeleteByID(ctx, routineID)
	})

	exercises := draft.RoutineExercises(routineID)
	if err := s.repo.AddExercises(ctx, routineID, exercises); err != nil {
		// the request may already be canceled, the undo must still run
		compensateErr := saga.Compensate(context.WithoutCancel(ctx))
		s.metricsManager.Compensation(metrics.FlowRoutineCommit, compensateErr)
		if compensateErr != nil {
			log.Errorf("routine %d of user %d left without exercises: %s", routineID, identity.UserID, compensateErr)
		}
		return nil, multierr.Combine(
			fmt.Errorf("%w: add exercises: %w", ErrRoutineNotSaved, err),
			compensateErr,
		)
	}

	if err := s.drafts.Delete(ctx, identity.UserID); err != nil {
		log.Errorf("routine %d committed, but clear draft failed: %s", routineID, err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterRoutinesCommitted.Inc()
	}

	return &Routine{
		ID:          routineID,
		UserID:      identity.UserID,
		Name:        draft.Name,
		DaysPerWeek: draft.DaysPerWeek,
		CreatedAt:   time.Now().UTC(),
		Exercises:   exercises,
	}, nil
}

func (s *Service) List(ctx context.Context, identity auth.Identity) ([]Routine, error) {
	if err := checkIdentity(identity); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, identity.UserID)
}

func (s *Service) Get(ctx context.Context, identity auth.Identity, id int) (*Routine, error) {
	if err := checkIdentity(identity); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id, identity.UserID)
}

func (s *Service) Delete(ctx context.Context, identity auth.Identity, id int) error {
	if err := checkIdentity(identity); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, identity.UserID)
}

func (s *Service) Plan(ctx context.Context, identity auth.Identity, id int) (*Plan, error) {
	routine, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	plan := PlanOf(*routine)
	return &plan, nil
}
