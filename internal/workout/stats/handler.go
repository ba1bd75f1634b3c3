package stats

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Muscles(ctx context.Context) ([]string, error)
	ExercisesWithWeights(ctx context.Context, identity auth.Identity, muscle string) ([]catalog.Exercise, error)
	Series(ctx context.Context, identity auth.Identity, exerciseID int) (*SeriesResponse, error)
	HasSessions(ctx context.Context, identity auth.Identity) (bool, error)
}

type MusclesResponse struct {
	Muscles []string `json:"muscles"`
}

type ExercisesResponse struct {
	Exercises []catalog.Exercise `json:"exercises"`
}

type HasSessionsResponse struct {
	HasSessions bool `json:"hasSessions"`
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	statsRouter := mainRouter.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/muscles", handler.HandleMuscles).Methods("GET", "OPTIONS").Name("stats-muscles")
	statsRouter.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("stats-exercises")
	statsRouter.HandleFunc("/exercises/{id:[0-9]+}/series", handler.HandleSeries).Methods("GET", "OPTIONS").Name("stats-series")
	statsRouter.HandleFunc("/has-sessions", handler.HandleHasSessions).Methods("GET", "OPTIONS").Name("stats-has-sessions")
}

func (handler *Handler) HandleMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscles")
	defer span.End()

	muscles, err := handler.service.Muscles(ctx)
	if err != nil {
		log.Errorf("failed to get muscles: %s", err)
		http.Error(w, "failed to load muscles", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, MusclesResponse{Muscles: muscles}, http.StatusOK)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exercises")
	defer span.End()

	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	exercises, err := handler.service.ExercisesWithWeights(ctx, identity, r.URL.Query().Get("muscle"))
	if err != nil {
		log.Errorf("failed to get exercises with weights for user %d: %s", identity.UserID, err)
		http.Error(w, "failed to load exercises", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, ExercisesResponse{Exercises: exercises}, http.StatusOK)
}

func (handler *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.series")
	defer span.End()

	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	series, err := handler.service.Series(ctx, identity, exerciseID)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("failed to get series of exercise %d: %s", exerciseID, err)
		http.Error(w, "failed to load series", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, series, http.StatusOK)
}

func (handler *Handler) HandleHasSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.has_sessions")
	defer span.End()

	identity, ok := auth.IdentityFrom(ctx)
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	has, err := handler.service.HasSessions(ctx, identity)
	if err != nil {
		log.Errorf("failed to check sessions of user %d: %s", identity.UserID, err)
		http.Error(w, "failed to check sessions", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, HasSessionsResponse{HasSessions: has}, http.StatusOK)
}
