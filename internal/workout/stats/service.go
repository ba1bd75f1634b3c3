package stats

import (
	"context"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats

type entriesRepo interface {
	Entries(ctx context.Context, userID int) ([]Entry, error)
	ExerciseEntries(ctx context.Context, userID, exerciseID int) ([]Entry, error)
	HasSessions(ctx context.Context, userID int) (bool, error)
}

type catalogReader interface {
	List(ctx context.Context) ([]catalog.Exercise, error)
	Get(ctx context.Context, id int) (*catalog.Exercise, error)
}

type SeriesResponse struct {
	Exercise catalog.Exercise `json:"exercise"`
	Points   []Point          `json:"points"`
}

type Service struct {
	repo    entriesRepo
	catalog catalogReader
}

func NewService(repo entriesRepo, catalog catalogReader) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *Service) Muscles(ctx context.Context) ([]string, error) {
	exercises, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctMuscles(exercises), nil
}

func (s *Service) ExercisesWithWeights(ctx context.Context, identity auth.Identity, muscle string) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.exercises_with_weights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle", muscle))

	if identity.UserID <= 0 {
		return nil, auth.ErrNotAuthenticated
	}

	exercises, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.Entries(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	return ExercisesWithWeights(entries, exercises, identity.UserID, muscle), nil
}

// Series returns the weight history of one exercise. An exercise that was
// never logged gives an empty series.
func (s *Service) Series(ctx context.Context, identity auth.Identity, exerciseID int) (_ *SeriesResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	if identity.UserID <= 0 {
		return nil, auth.ErrNotAuthenticated
	}

	exercise, err := s.catalog.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ExerciseEntries(ctx, identity.UserID, exerciseID)
	if err != nil {
		return nil, err
	}

	own := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ExerciseID == exerciseID {
			own = append(own, e)
		}
	}

	points := Series(own, identity.UserID)
	span.SetAttributes(attribute.Int("points.count", len(points)))
	return &SeriesResponse{
		Exercise: *exercise,
		Points:   points,
	}, nil
}

func (s *Service) HasSessions(ctx context.Context, identity auth.Identity) (bool, error) {
	if identity.UserID <= 0 {
		return false, auth.ErrNotAuthenticated
	}
	return s.repo.HasSessions(ctx, identity.UserID)
}
