package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/metrics"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"
	"github.com/2beens/workoutlog/internal/workout/routines"
	"github.com/2beens/workoutlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions

type sessionsRepo interface {
	Create(ctx context.Context, userID, routineID int, date time.Time) (int, error)
	AddEntries(ctx context.Context, sessionID int, entries []WeightEntry) error
	DeleteByID(ctx context.Context, id int) error
	Delete(ctx context.Context, id, userID int) error
	ListByUser(ctx context.Context, userID int) ([]Session, error)
	Get(ctx context.Context, id, userID int) (*Session, error)
}

type routinePlanner interface {
	Plan(ctx context.Context, identity auth.Identity, id int) (*routines.Plan, error)
}

type catalogLister interface {
	List(ctx context.Context) ([]catalog.Exercise, error)
}

type musclesLister interface {
	Muscles(ctx context.Context) ([]string, error)
}

// LogRequest is a submitted session form. Weights and Units are keyed by
// exercise id; Day 0 selects the first day of the routine with exercises.
type LogRequest struct {
	RoutineID int            `json:"routineId"`
	Day       int            `json:"day"`
	Date      string         `json:"date"`
	Weights   map[int]string `json:"weights"`
	Units     map[int]string `json:"units"`
}

type Overview struct {
	Exercises []catalog.Exercise `json:"exercises"`
	Sessions  []Session          `json:"sessions"`
	Muscles   []string           `json:"muscles"`
}

type Service struct {
	repo           sessionsRepo
	planner        routinePlanner
	catalog        catalogLister
	muscles        musclesLister
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo sessionsRepo,
	planner routinePlanner,
	catalog catalogLister,
	muscles musclesLister,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		planner:        planner,
		catalog:        catalog,
		muscles:        muscles,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func checkIdentity(identity auth.Identity) error {
	if identity.UserID <= 0 {
		return auth.ErrNotAuthenticated
	}
	return nil
}

// Log validates and persists one session. The session row and its weight
// entries are two separate writes; if the entries fail, the session row is
// deleted again and ErrSessionNotSaved is returned.
func (s *Service) Log(ctx context.Context, identity auth.Identity, req LogRequest) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", req.RoutineID), attribute.Int("day", req.Day))

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	// selecting
	plan, err := s.planner.Plan(ctx, identity, req.RoutineID)
	if err != nil {
		return nil, err
	}
	day := req.Day
	if day == 0 {
		if plan.DefaultDay == 0 {
			// routine without exercises
			_, err := ValidateWeights(nil, req.Weights)
			return nil, err
		}
		day = plan.DefaultDay
	}
	if day < 1 || day > plan.DaysPerWeek {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", routines.ErrDayOutOfRange, day, plan.DaysPerWeek)
	}
	dayExercises := plan.ExercisesForDay(day)

	// validating
	weights, err := ValidateWeights(dayExercises, req.Weights)
	if err != nil {
		return nil, err
	}
	units := make(map[int]string, len(dayExercises))
	for _, e := range dayExercises {
		unit, err := normalizeUnit(req.Units[e.ExerciseID])
		if err != nil {
			return nil, err
		}
		units[e.ExerciseID] = unit
	}

	date, err := s.sessionDate(req.Date)
	if err != nil {
		return nil, err
	}

	// persisting
	sessionID, err := s.repo.Create(ctx, identity.UserID, req.RoutineID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: create session: %w", ErrSessionNotSaved, err)
	}
	span.SetAttributes(attribute.Int("session.id", sessionID))

	saga := pkg.Saga{}
	saga.AddCompensation("session", func(ctx context.Context) error {
		return s.repo.DeleteByID(ctx, sessionID)
	})

	entries := make([]WeightEntry, 0, len(dayExercises))
	for _, e := range dayExercises {
		entries = append(entries, WeightEntry{
			SessionID:    sessionID,
			ExerciseID:   e.ExerciseID,
			ExerciseName: e.ExerciseName,
			Weight:       weights[e.ExerciseID],
			Unit:         units[e.ExerciseID],
		})
	}

	if err := s.repo.AddEntries(ctx, sessionID, entries); err != nil {
		// compensating
		compensateErr := saga.Compensate(context.WithoutCancel(ctx))
		s.metricsManager.Compensation(metrics.FlowSessionLog, compensateErr)
		if compensateErr != nil {
			log.Errorf("session %d of user %d left without entries: %s", sessionID, identity.UserID, compensateErr)
		}
		return nil, multierr.Combine(
			fmt.Errorf("%w: add weight entries: %w", ErrSessionNotSaved, err),
			compensateErr,
		)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsLogged.Inc()
	}

	routineID := req.RoutineID
	now := s.now().UTC()
	for i := range entries {
		entries[i].CreatedAt = now
	}
	return &Session{
		ID:          sessionID,
		UserID:      identity.UserID,
		RoutineID:   &routineID,
		RoutineName: plan.Name,
		Date:        date,
		CreatedAt:   now,
		Entries:     entries,
	}, nil
}

// sessionDate defaults to today and rejects days after today.
func (s *Service) sessionDate(value string) (time.Time, error) {
	today := NormalizeDate(s.now())
	if value == "" {
		return today, nil
	}
	date, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if date.After(today) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDateInFuture, value)
	}
	return date, nil
}

func (s *Service) List(ctx context.Context, identity auth.Identity) ([]Session, error) {
	if err := checkIdentity(identity); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, identity.UserID)
}

func (s *Service) Page(ctx context.Context, identity auth.Identity, page int) (*Page, error) {
	list, err := s.List(ctx, identity)
	if err != nil {
		return nil, err
	}
	p := Paginate(list, page)
	return &p, nil
}

// Calendar decorates one date. routineID 0 means no routine is selected, and
// day 0 picks the routine's first day with exercises.
func (s *Service) Calendar(
	ctx context.Context,
	identity auth.Identity,
	date time.Time,
	routineID, day int,
) (_ *CalendarDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := s.List(ctx, identity)
	if err != nil {
		return nil, err
	}

	var plan *routines.Plan
	if routineID > 0 {
		plan, err = s.planner.Plan(ctx, identity, routineID)
		if err != nil {
			return nil, err
		}
		if day == 0 {
			day = plan.DefaultDay
		}
	}

	calendarDay := Decorate(list, plan, day, date)
	return &calendarDay, nil
}

func (s *Service) Get(ctx context.Context, identity auth.Identity, id int) (*Session, error) {
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

// Overview loads what the logging page needs in parallel. Any failure fails
// the whole overview and cancels the other loads.
func (s *Service) Overview(ctx context.Context, identity auth.Identity) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := checkIdentity(identity); err != nil {
		return nil, err
	}

	overview := &Overview{}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exercises, err := s.catalog.List(gCtx)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		overview.Exercises = exercises
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.ListByUser(gCtx, identity.UserID)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		overview.Sessions = list
		return nil
	})
	g.Go(func() error {
		muscles, err := s.muscles.Muscles(gCtx)
		if err != nil {
			return fmt.Errorf("muscles: %w", err)
		}
		overview.Muscles = muscles
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
