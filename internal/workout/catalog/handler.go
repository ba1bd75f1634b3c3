package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type catalogReader interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	catalog catalogReader
}

func NewHandler(catalog catalogReader) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	muscle := r.URL.Query().Get("muscle")
	span.SetAttributes(attribute.String("muscle", muscle))

	exercises, err := handler.catalog.List(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "failed to load exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ListResponse{Exercises: ByMuscle(exercises, muscle)}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	e, err := handler.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, ErrExerciseNotFound.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("failed to get exercise %d: %s", id, err)
		http.Error(w, "failed to load exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}
