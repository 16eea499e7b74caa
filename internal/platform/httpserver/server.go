package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	accesscontrol "formdesk/contexts/identity-access/access-control"
	accesserrors "formdesk/contexts/identity-access/access-control/domain/errors"
	accesshttp "formdesk/contexts/identity-access/access-control/transport/http"
	submissionservice "formdesk/contexts/intake/submission-service"
	intakeerrors "formdesk/contexts/intake/submission-service/domain/errors"
	intakehttp "formdesk/contexts/intake/submission-service/transport/http"
	"formdesk/internal/platform/identity"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "formdesk/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	auth   identity.Authenticator
	access accesscontrol.Module
	intake submissionservice.Module
}

func New(
	access accesscontrol.Module,
	intake submissionservice.Module,
	auth identity.Authenticator,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		auth:   auth,
		access: access,
		intake: intake,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/auth/profile", s.handleGetOwnProfile)
	s.mux.HandleFunc("POST /api/submissions", s.handleCreateSubmission)
	s.mux.HandleFunc("GET /api/submissions", s.handleListSubmissions)
	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("POST /api/users", s.handleCreateUser)
	s.mux.HandleFunc("POST /api/users/update", s.handleUpdateUser)

	s.mux.HandleFunc("GET /auth", s.handleAuthPage)
	s.mux.HandleFunc("GET /{$}", s.guardPage(s.handleHomePage))
	s.mux.HandleFunc("GET /admin", s.guardPage(s.handleAdminPage))
}

// principal resolves the caller identity; a nil error guarantees a non-empty
// principal id. Handlers fail the whole request on error before any store
// access.
func (s *Server) principal(r *http.Request) (string, error) {
	return s.auth.Authenticate(r)
}

func (s *Server) handleGetOwnProfile(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	resp, err := s.access.Handler.GetOwnProfileHandler(r.Context(), principalID)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp.Profile)
}

func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req intakehttp.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.intake.Handler.CreateSubmissionHandler(r.Context(), principalID, req)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp.Submission)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	resp, err := s.intake.Handler.ListSubmissionsHandler(r.Context(), principalID)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp.Items)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	resp, err := s.access.Handler.ListUsersHandler(r.Context(), principalID)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp.Items)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req accesshttp.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.access.Handler.CreateUserHandler(r.Context(), principalID, req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	principalID, err := s.principal(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req accesshttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.access.Handler.UpdateUserHandler(r.Context(), principalID, req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp.Profile)
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	case errors.Is(err, accesserrors.ErrProfileNotFound):
		// Missing profile for an authenticated principal is an authorization
		// failure, not a lookup miss. Generic message so account existence
		// is not leaked.
		writeError(w, http.StatusForbidden, "access_denied", "Access denied")
	case errors.Is(err, accesserrors.ErrBanned):
		writeError(w, http.StatusForbidden, "banned", "Access forbidden - User is banned")
	case errors.Is(err, accesserrors.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "Forbidden - Admin access required")
	case errors.Is(err, accesserrors.ErrCannotSelfBan):
		writeError(w, http.StatusBadRequest, "cannot_self_ban", "Cannot ban yourself")
	case errors.Is(err, accesserrors.ErrInvalidUserInput),
		errors.Is(err, accesserrors.ErrInvalidRole),
		errors.Is(err, accesserrors.ErrMissingTargetUser),
		errors.Is(err, accesserrors.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accesserrors.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accesserrors.ErrEmailAlreadyRegistered):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeIntakeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intakeerrors.ErrInvalidSubmissionInput),
		errors.Is(err, intakeerrors.ErrInvalidPriority):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		// Authorization failures surface through the access-control error
		// set regardless of which endpoint tripped them.
		writeAccessDomainError(w, err)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the uniform response shape: data with a null error on success,
// a null data with a populated error otherwise.
type envelope struct {
	Data  any        `json:"data"`
	Error *errorBody `json:"error"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, envelope{Error: &errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
