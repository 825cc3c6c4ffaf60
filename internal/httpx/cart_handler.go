package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	Service *shop.CartService
	Log     *zap.Logger
}

func (h *CartHandler) Register(r chi.Router) {
	r.Post("/cart/add", h.add)
	r.Post("/cart/remove", h.remove)
}

func (h *CartHandler) add(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.Service.AddToCart)
}

func (h *CartHandler) remove(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.Service.RemoveFromCart)
}

func (h *CartHandler) modify(w http.ResponseWriter, r *http.Request, op func(context.Context, shop.ModifyCartRequest) (shop.Cart, error)) {
	var req shop.ModifyCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.Log, err)
		return
	}
	if !allowSubject(w, r, req.Username) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := op(ctx, req)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
