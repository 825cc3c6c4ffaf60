package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	Service *shop.OrderService
	Log     *zap.Logger
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/order/submit/{username}", h.submit)
	r.Get("/order/history/{username}", h.history)
}

func (h *OrdersHandler) submit(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !allowSubject(w, r, username) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.Service.Submit(ctx, username)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) history(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !allowSubject(w, r, username) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.Service.GetOrdersForUser(ctx, username)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
