package handler

import (
	"net/http"

	"user_accounts/internal/api/middleware"
	"user_accounts/internal/app/service"
	"user_accounts/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	accountService *service.AccountService
}

func NewUserHandler(accountService *service.AccountService) *UserHandler {
	return &UserHandler{accountService: accountService}
}

// RegisterRoutes mounts the protected surface. The caller wires the
// Authenticator middleware; every route here assumes verified claims are in
// the request context.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.welcome)
	r.Get("/api/protected-route", h.protected)
	r.Get("/api/users", h.listUsers)
	r.Delete("/api/users/{id}", h.deleteUser)
}

func (h *UserHandler) welcome(w http.ResponseWriter, r *http.Request) {
	name, ok := middleware.GetUserNameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Welcome, " + name})
}

func (h *UserHandler) protected(w http.ResponseWriter, r *http.Request) {
	name, ok := middleware.GetUserNameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello, " + name})
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountService.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.accountService.DeleteUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
