package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ItemsHandler struct {
	Service *shop.ItemService
	Log     *zap.Logger
}

func (h *ItemsHandler) Register(r chi.Router) {
	r.Get("/item", h.list)
	r.Get("/item/{id}", h.getByID)
	r.Get("/item/name/{name}", h.getByName)
}

func (h *ItemsHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.Service.GetItems(ctx)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemsHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	it, err := h.Service.GetItemByID(ctx, id)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ItemsHandler) getByName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.Service.GetItemsByName(ctx, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
