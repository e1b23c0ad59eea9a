package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartPayload(sf *session.Storefront) map[string]any {
	return map[string]any{
		"items":       sf.Cart.Items(),
		"total_items": sf.Cart.TotalItems(),
		"total_price": sf.Cart.TotalPrice(),
	}
}

// GetCartHandler returns the cart lines and totals.
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	respond(w, sf, http.StatusOK, cartPayload(sf))
}

// AddCartItemHandler adds a catalog product; quantity defaults to one.
func (h *Handler) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Cart API]")
	sf := storefrontFrom(r)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, ok := catalog.GetProductByID(req.ProductID)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, msgProductNotFound, http.StatusNotFound)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Cart.AddItem(ctx, product, qty)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Added %d x %s", qty, product.ID))
	respond(w, sf, http.StatusOK, cartPayload(sf))
}

// UpdateCartItemHandler sets the quantity; zero or less removes the line.
func (h *Handler) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Cart API]")
	sf := storefrontFrom(r)

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Cart.UpdateQuantity(ctx, chi.URLParam(r, "id"), req.Quantity)
	respond(w, sf, http.StatusOK, cartPayload(sf))
}

// RemoveCartItemHandler drops a line from the cart.
func (h *Handler) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Cart.RemoveItem(ctx, chi.URLParam(r, "id"))
	respond(w, sf, http.StatusOK, cartPayload(sf))
}

// ClearCartHandler empties the cart.
func (h *Handler) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Cart.ClearCart(ctx)
	respond(w, sf, http.StatusOK, cartPayload(sf))
}
