package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/metrics"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Signup(ctx context.Context, credentials Credentials) (*User, error)
	Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, *Identity, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

type Handler struct {
	authService    authService
	metricsManager *metrics.Manager
}

func NewHandler(authService authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		authService:    authService,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the /a endpoints; signup and login go through rateLimit.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, rateLimit mux.MiddlewareFunc) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.HandleFunc("/signup", handler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	authSubrouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authSubrouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authSubrouter.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	if rateLimit != nil {
		authSubrouter.Use(rateLimit)
	}
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var credentials Credentials
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		return credentials, errors.New("invalid content type")
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		return credentials, err
	}
	if credentials.Email == "" || credentials.Password == "" {
		return credentials, errors.New("email or password empty")
	}
	return credentials, nil
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("signup, bad request: %s", err)
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := handler.authService.Signup(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUserExists):
			http.Error(w, "error, user already exists", http.StatusConflict)
		default:
			log.Errorf("signup failed: %s", err)
			http.Error(w, "error, signup failed", http.StatusInternalServerError)
		}
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterSignups.Inc()
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("login, bad request: %s", err)
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	token, identity, err := handler.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed login attempt for user: %s", credentials.Email)
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "error, login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LoginResponse{
		Token:    token,
		Identity: *identity,
	}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(TokenHeader)
	if token == "" {
		http.Error(w, "error, no token", http.StatusBadRequest)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "error, logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "error, no such session", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, err := RequireIdentity(r.Context())
	if err != nil {
		log.Warnf("me: %s", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	pkg.WriteJSON(w, identity, http.StatusOK)
}
