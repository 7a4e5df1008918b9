package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/staffdesk/internal/apperror"
	"github.com/Houeta/staffdesk/internal/auth"
	"github.com/Houeta/staffdesk/internal/lib/logger/sl"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/services/directory"
	"github.com/Houeta/staffdesk/internal/services/fulfillment"
	"github.com/Houeta/staffdesk/internal/services/ledger"
	"github.com/Houeta/staffdesk/internal/services/lifecycle"
	"github.com/Houeta/staffdesk/internal/services/requests"
)

// API is the thin administrative boundary. Every handler authenticates the
// caller via HTTP basic auth, produces a typed principal and hands it to
// the core; no business logic lives here.
type API struct {
	log       *slog.Logger
	identity  *auth.Identity
	directory *directory.Directory
	queue     *requests.Queue
	engine    *fulfillment.Engine
	lifecycle *lifecycle.Manager
	ledger    *ledger.Ledger
}

func NewAPI(
	log *slog.Logger,
	identity *auth.Identity,
	dir *directory.Directory,
	queue *requests.Queue,
	engine *fulfillment.Engine,
	lcm *lifecycle.Manager,
	ldg *ledger.Ledger,
) *API {
	return &API{
		log:       log,
		identity:  identity,
		directory: dir,
		queue:     queue,
		engine:    engine,
		lifecycle: lcm,
		ledger:    ldg,
	}
}

// Register mounts the administrative routes onto mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.HandleFunc("GET /api/employees", a.withRole(a.handleListEmployees, models.RoleAdmin))
	mux.HandleFunc("POST /api/employees", a.withRole(a.handleCreateEmployee, models.RoleAdmin))
	mux.HandleFunc("PATCH /api/employees/{email}", a.withRole(a.handleUpdateEmployee, models.RoleAdmin))
	mux.HandleFunc("DELETE /api/employees", a.withRole(a.handleDeleteEmployees, models.RoleAdmin))
	mux.HandleFunc("GET /api/locations", a.withRole(a.handleListLocations, models.RoleAdmin))
	mux.HandleFunc("POST /api/locations", a.withRole(a.handleCreateLocation, models.RoleAdmin))
	mux.HandleFunc("PATCH /api/locations/{id}", a.withRole(a.handleUpdateLocation, models.RoleAdmin))
	mux.HandleFunc("DELETE /api/locations", a.withRole(a.handleDeleteLocations, models.RoleAdmin))
	mux.HandleFunc("GET /api/requests", a.withRole(a.handleListRequests, models.RoleAdmin))
	mux.HandleFunc("POST /api/requests",
		a.withRole(a.handleSubmitRequest, models.RoleAdmin, models.RoleSiteManager))
	mux.HandleFunc("POST /api/requests/{reqnum}/toggle", a.withRole(a.handleToggleRequest, models.RoleAdmin))
	mux.HandleFunc("POST /api/requests/{reqnum}/fulfill", a.withRole(a.handleFulfillRequest, models.RoleAdmin))
	mux.HandleFunc("POST /api/assignments", a.withRole(a.handleAssign, models.RoleAdmin))
	mux.HandleFunc("DELETE /api/assignments/{email}", a.withRole(a.handleUnassign, models.RoleAdmin))
	mux.HandleFunc("GET /api/me/placement",
		a.withRole(a.handlePlacement, models.RoleAdmin, models.RoleStaff))
	mux.HandleFunc("GET /api/me/overview",
		a.withRole(a.handleOverview, models.RoleAdmin, models.RoleSiteManager))
	mux.HandleFunc("POST /api/password", a.withRole(a.handleChangePassword,
		models.RoleAdmin, models.RoleStaff, models.RoleSiteManager))
}

type apiHandler func(w http.ResponseWriter, r *http.Request, principal auth.Principal)

// withRole authenticates the request and checks the principal's role once,
// at the boundary, before the core is reached.
func (a *API) withRole(next apiHandler, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			a.writeError(w, r, apperror.ErrAuthFailure)
			return
		}

		principal, err := a.identity.VerifyCredentials(r.Context(), email, password)
		if err != nil {
			a.writeError(w, r, err)
			return
		}

		if !principal.Can(roles...) {
			a.writeJSON(w, http.StatusForbidden, map[string]string{"error": "FORBIDDEN"})
			return
		}

		next(w, r, principal)
	}
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	principal, err := a.identity.VerifyCredentials(r.Context(), body.Email, body.Password)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]string{
		"email": principal.Email,
		"role":  string(principal.Role),
	})
}

func (a *API) handleListEmployees(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	emps, err := a.directory.ListEmployees(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, emps)
}

func (a *API) handleCreateEmployee(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		Email      string      `json:"email"`
		Name       string      `json:"name"`
		Password   string      `json:"password"`
		AssignedTo int64       `json:"assignedTo"`
		Role       models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}
	if body.Role == "" {
		body.Role = models.RoleStaff
	}

	err := a.directory.CreateEmployee(r.Context(), body.Email, body.Name, body.Password, body.AssignedTo, body.Role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]string{"email": body.Email})
}

func (a *API) handleUpdateEmployee(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	if err := a.directory.UpdateEmployee(r.Context(), r.PathValue("email"), body.Email, body.Name); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteEmployees(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		Emails []string `json:"emails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	deleted := a.lifecycle.DeleteEmployees(r.Context(), body.Emails)
	a.writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (a *API) handleListLocations(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	locs, err := a.directory.ListLocations(r.Context())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, locs)
}

func (a *API) handleCreateLocation(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	id, err := a.directory.CreateLocation(r.Context(), body.Email, body.Name, body.Address, body.Password)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (a *API) handleUpdateLocation(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	var body struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Address string `json:"address"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	if err = a.directory.UpdateLocation(r.Context(), id, body.Email, body.Name, body.Address); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteLocations(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	deleted := a.lifecycle.DeleteLocations(r.Context(), body.IDs)
	a.writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (a *API) handleListRequests(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var reqs []models.StaffRequest
	var err error

	if r.URL.Query().Get("status") == "closed" {
		reqs, err = a.queue.ListClosed(r.Context())
	} else {
		reqs, err = a.queue.ListOpen(r.Context())
	}
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, reqs)
}

func (a *API) handleSubmitRequest(w http.ResponseWriter, r *http.Request, principal auth.Principal) {
	var body struct {
		LocationID    int64  `json:"locationId"`
		Quantity      int    `json:"quantity"`
		DateRequested string `json:"dateRequested"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	date, err := time.Parse(time.DateOnly, body.DateRequested)
	if err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	// Site managers may only request staff for their own location.
	if principal.Role == models.RoleSiteManager {
		overview, ovErr := a.directory.LocationOverview(r.Context(), principal.Email)
		if ovErr != nil {
			a.writeError(w, r, ovErr)
			return
		}
		body.LocationID = overview.Location.ID
	}

	reqnum, err := a.queue.Submit(r.Context(), body.LocationID, body.Quantity, date)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]int64{"reqnum": reqnum})
}

func (a *API) handleToggleRequest(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	reqnum, err := strconv.ParseInt(r.PathValue("reqnum"), 10, 64)
	if err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	open, err := a.queue.Toggle(r.Context(), reqnum)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]bool{"open": open})
}

func (a *API) handleFulfillRequest(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	reqnum, err := strconv.ParseInt(r.PathValue("reqnum"), 10, 64)
	if err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	taken, err := a.engine.Fulfill(r.Context(), reqnum)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]int{"reassigned": taken})
}

func (a *API) handleAssign(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	var body struct {
		Email      string `json:"email"`
		LocationID int64  `json:"locationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	if err := a.ledger.Assign(r.Context(), body.Email, body.LocationID); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleUnassign(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
	if err := a.ledger.Unassign(r.Context(), r.PathValue("email")); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handlePlacement(w http.ResponseWriter, r *http.Request, principal auth.Principal) {
	placement, err := a.directory.Placement(r.Context(), principal.Email)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, placement)
}

func (a *API) handleOverview(w http.ResponseWriter, r *http.Request, principal auth.Principal) {
	overview, err := a.directory.LocationOverview(r.Context(), principal.Email)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, overview)
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request, principal auth.Principal) {
	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, r, apperror.ErrInvalidInput)
		return
	}

	err := a.identity.ChangePassword(r.Context(), principal.Email, body.CurrentPassword, body.NewPassword)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.log.Error("Failed to write response", sl.Err(err))
	}
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperror.Code(err)
	status := httpStatus(code)

	if status >= http.StatusInternalServerError {
		a.log.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, sl.Err(err))
	} else {
		a.log.DebugContext(r.Context(), "Request rejected", "path", r.URL.Path, "code", code)
	}

	a.writeJSON(w, status, map[string]string{"error": code})
}

func httpStatus(code string) int {
	switch code {
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeInvalidInput:
		return http.StatusBadRequest
	case apperror.CodeConstraintViolation:
		return http.StatusConflict
	case apperror.CodeContention:
		return http.StatusServiceUnavailable
	case apperror.CodeAuthFailure:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
