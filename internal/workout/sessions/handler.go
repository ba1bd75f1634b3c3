package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workout/catalog"
	"github.com/2beens/workoutlog/internal/workout/routines"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Log(ctx context.Context, identity auth.Identity, req LogRequest) (*Session, error)
	List(ctx context.Context, identity auth.Identity) ([]Session, error)
	Page(ctx context.Context, identity auth.Identity, page int) (*Page, error)
	Calendar(ctx context.Context, identity auth.Identity, date time.Time, routineID, day int) (*CalendarDay, error)
	Get(ctx context.Context, identity auth.Identity, id int) (*Session, error)
	Delete(ctx context.Context, identity auth.Identity, id int) error
	Overview(ctx context.Context, identity auth.Identity) (*Overview, error)
}

type ListResponse struct {
	Sessions []Session `json:"sessions"`
}

type DetailResponse struct {
	Session Session      `json:"session"`
	Details []DetailLine `json:"details"`
}

type Handler struct {
	service sessionsService
	now     func() time.Time
}

func NewHandler(service sessionsService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	sessionsRouter := mainRouter.PathPrefix("/sessions").Subrouter()
	sessionsRouter.HandleFunc("", handler.HandleLog).Methods("POST", "OPTIONS").Name("log-session")
	sessionsRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	sessionsRouter.HandleFunc("/page/{page:[0-9]+}", handler.HandlePage).Methods("GET", "OPTIONS").Name("sessions-page")
	sessionsRouter.HandleFunc("/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("sessions-calendar")
	sessionsRouter.HandleFunc("/overview", handler.HandleOverview).Methods("GET", "OPTIONS").Name("sessions-overview")
	sessionsRouter.HandleFunc("/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
	sessionsRouter.HandleFunc("/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-session")
}

func writeError(w http.ResponseWriter, op string, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSON(w, validationErr, http.StatusBadRequest)
	case errors.Is(err, auth.ErrNotAuthenticated):
		log.Warnf("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, routines.ErrRoutineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrSessionNotSaved):
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to save session, try again", http.StatusInternalServerError)
	case errors.Is(err, ErrDateInFuture),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidUnit),
		errors.Is(err, routines.ErrDayOutOfRange),
		errors.Is(err, catalog.ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
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

// intQuery reads an optional non-negative integer query param, 0 if absent.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative number")
	}
	return v, nil
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.log")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid json", http.StatusBadRequest)
		return
	}
	if req.RoutineID <= 0 {
		http.Error(w, "error, routine not selected", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("routine.id", req.RoutineID))

	session, err := handler.service.Log(ctx, identity, req)
	if err != nil {
		writeError(w, "log session", err)
		return
	}

	log.Debugf("user %d logged session %d", identity.UserID, session.ID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	list, err := handler.service.List(ctx, identity)
	if err != nil {
		writeError(w, "list sessions", err)
		return
	}
	if list == nil {
		list = []Session{}
	}
	pkg.WriteJSON(w, ListResponse{Sessions: list}, http.StatusOK)
}

func (handler *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.page")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	page, err := strconv.Atoi(mux.Vars(r)["page"])
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}

	p, err := handler.service.Page(ctx, identity, page)
	if err != nil {
		writeError(w, "sessions page", err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.calendar")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	date := NormalizeDate(handler.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date = parsed
	}
	routineID, err := intQuery(r, "routine_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	day, err := intQuery(r, "day")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	calendarDay, err := handler.service.Calendar(ctx, identity, date, routineID, day)
	if err != nil {
		writeError(w, "sessions calendar", err)
		return
	}
	pkg.WriteJSON(w, calendarDay, http.StatusOK)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.overview")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	overview, err := handler.service.Overview(ctx, identity)
	if err != nil {
		writeError(w, "sessions overview", err)
		return
	}
	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Get(ctx, identity, id)
	if err != nil {
		writeError(w, "get session", err)
		return
	}
	pkg.WriteJSON(w, DetailResponse{Session: *session, Details: Details(*session)}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, identity, id); err != nil {
		writeError(w, "delete session", err)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.Text, "deleted", http.StatusOK)
}
