package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/auth"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UsersHandler struct {
	Service *shop.UserService
	Tokens  *auth.Tokens
	Log     *zap.Logger
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResp struct {
	Token string `json:"token"`
}

// Register mounts the lookup routes; create and login are mounted by Handlers.Register.
func (h *UsersHandler) Register(r chi.Router) {
	r.Get("/user/id/{id}", h.findByID)
	r.Get("/user/{username}", h.findByUsername)
}

func (h *UsersHandler) findByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	u, err := h.Service.FindByID(ctx, id)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) findByUsername(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	u, err := h.Service.FindByUsername(ctx, chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req shop.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Service.CreateUser(ctx, req)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Service.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, shop.ErrNotFound) || errors.Is(err, shop.ErrInvalidCredentials) {
		h.Log.Warn("login rejected", zap.String("username", req.Username))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	token, err := h.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, LoginResp{Token: token})
}
