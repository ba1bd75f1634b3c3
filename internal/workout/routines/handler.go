package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=routines_test

type routinesService interface {
	Draft(ctx context.Context, identity auth.Identity) (*Draft, error)
	UpdateDraft(ctx context.Context, identity auth.Identity, update DraftUpdate) (*Draft, error)
	AddDraftExercise(ctx context.Context, identity auth.Identity, req AddExerciseRequest) (*DraftEntry, *Draft, error)
	RemoveDraftExercise(ctx context.Context, identity auth.Identity, tempID string) (*Draft, error)
	DiscardDraft(ctx context.Context, identity auth.Identity) error
	Commit(ctx context.Context, identity auth.Identity) (*Routine, error)
	List(ctx context.Context, identity auth.Identity) ([]Routine, error)
	Get(ctx context.Context, identity auth.Identity, id int) (*Routine, error)
	Delete(ctx context.Context, identity auth.Identity, id int) error
	Plan(ctx context.Context, identity auth.Identity, id int) (*Plan, error)
}

type AddExerciseResponse struct {
	Entry *DraftEntry `json:"entry,omitempty"`
	Draft *Draft      `json:"draft"`
}

type ListResponse struct {
	Routines []Routine `json:"routines"`
}

type Handler struct {
	service routinesService
}

func NewHandler(service routinesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	routinesRouter := mainRouter.PathPrefix("/routines").Subrouter()

	routinesRouter.HandleFunc("/draft", handler.HandleGetDraft).Methods("GET", "OPTIONS").Name("get-draft")
	routinesRouter.HandleFunc("/draft", handler.HandleUpdateDraft).Methods("PUT", "OPTIONS").Name("update-draft")
	routinesRouter.HandleFunc("/draft", handler.HandleDiscardDraft).Methods("DELETE", "OPTIONS").Name("discard-draft")
	routinesRouter.HandleFunc("/draft/exercises", handler.HandleAddDraftExercise).Methods("POST", "OPTIONS").Name("add-draft-exercise")
	routinesRouter.HandleFunc("/draft/exercises/{tempId}", handler.HandleRemoveDraftExercise).Methods("DELETE", "OPTIONS").Name("remove-draft-exercise")
	routinesRouter.HandleFunc("/draft/commit", handler.HandleCommit).Methods("POST", "OPTIONS").Name("commit-draft")

	routinesRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	routinesRouter.HandleFunc("/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	routinesRouter.HandleFunc("/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	routinesRouter.HandleFunc("/{id:[0-9]+}/plan", handler.HandlePlan).Methods("GET", "OPTIONS").Name("routine-plan")
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		log.Warnf("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrRoutineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrExerciseNotFound),
		errors.Is(err, ErrDayOutOfRange),
		errors.Is(err, ErrDaysPerWeekOutOfRange),
		errors.Is(err, ErrDaysBelowUsedDay),
		errors.Is(err, ErrDraftEmpty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDraftBusy):
		log.Warnf("%s: %s", op, err)
		http.Error(w, "draft is being edited elsewhere, try again", http.StatusConflict)
	case errors.Is(err, ErrRoutineNotSaved):
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to save routine, try again", http.StatusInternalServerError)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func identityOrUnauthorized(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, auth.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
	}
	return identity, ok
}

func routineIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (handler *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get_draft")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	draft, err := handler.service.Draft(ctx, identity)
	if err != nil {
		writeError(w, "get draft", err)
		return
	}
	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update_draft")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	var update DraftUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "error, invalid json", http.StatusBadRequest)
		return
	}

	draft, err := handler.service.UpdateDraft(ctx, identity, update)
	if err != nil {
		writeError(w, "update draft", err)
		return
	}
	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.discard_draft")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	if err := handler.service.DiscardDraft(ctx, identity); err != nil {
		writeError(w, "discard draft", err)
		return
	}
	pkg.WriteJSON(w, NewDraft(), http.StatusOK)
}

func (handler *Handler) HandleAddDraftExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add_draft_exercise")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid json", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("exercise.id", req.ExerciseID))

	entry, draft, err := handler.service.AddDraftExercise(ctx, identity, req)
	if err != nil {
		writeError(w, "add draft exercise", err)
		return
	}

	status := http.StatusCreated
	if entry == nil {
		status = http.StatusOK
	}
	pkg.WriteJSON(w, AddExerciseResponse{Entry: entry, Draft: draft}, status)
}

func (handler *Handler) HandleRemoveDraftExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.remove_draft_exercise")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	draft, err := handler.service.RemoveDraftExercise(ctx, identity, mux.Vars(r)["tempId"])
	if err != nil {
		writeError(w, "remove draft exercise", err)
		return
	}
	pkg.WriteJSON(w, draft, http.StatusOK)
}

func (handler *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.commit")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	routine, err := handler.service.Commit(ctx, identity)
	if err != nil {
		writeError(w, "commit routine", err)
		return
	}

	log.Debugf("user %d committed routine %d", identity.UserID, routine.ID)
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	routines, err := handler.service.List(ctx, identity)
	if err != nil {
		writeError(w, "list routines", err)
		return
	}
	if routines == nil {
		routines = []Routine{}
	}
	pkg.WriteJSON(w, ListResponse{Routines: routines}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := routineIDParam(w, r)
	if !ok {
		return
	}

	routine, err := handler.service.Get(ctx, identity, id)
	if err != nil {
		writeError(w, "get routine", err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := routineIDParam(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, identity, id); err != nil {
		writeError(w, "delete routine", err)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "deleted", http.StatusOK)
}

func (handler *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.plan")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	id, ok := routineIDParam(w, r)
	if !ok {
		return
	}

	plan, err := handler.service.Plan(ctx, identity, id)
	if err != nil {
		writeError(w, "routine plan", err)
		return
	}
	pkg.WriteJSON(w, plan, http.StatusOK)
}
