package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ariefcatur/go-shop-api/internal/auth"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to status codes. 404 and 400 carry no body.
func writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, shop.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, shop.ErrBadRequest):
		w.WriteHeader(http.StatusBadRequest)
	default:
		log.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return shop.ErrBadRequest
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, shop.ErrBadRequest
	}
	return id, nil
}

// allowSubject writes 403 when the request carries an authenticated subject
// other than username. Without auth there is no subject and every caller passes.
func allowSubject(w http.ResponseWriter, r *http.Request, username string) bool {
	if sub, ok := auth.Username(r.Context()); ok && sub != username {
		w.WriteHeader(http.StatusForbidden)
		return false
	}
	return true
}
