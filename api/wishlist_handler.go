package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

type WishlistRequest struct {
	ProductID string `json:"product_id"`
}

func wishlistPayload(sf *session.Storefront) map[string]any {
	return map[string]any{
		"items": sf.Wishlist.Items(),
		"count": sf.Wishlist.Count(),
	}
}

// GetWishlistHandler returns the wishlist.
func (h *Handler) GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	respond(w, sf, http.StatusOK, wishlistPayload(sf))
}

// AddWishlistHandler adds a catalog product; adding it twice only raises a notice.
func (h *Handler) AddWishlistHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Wishlist API]")
	sf := storefrontFrom(r)

	var req WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	product, ok := catalog.GetProductByID(req.ProductID)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, msgProductNotFound, http.StatusNotFound)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Wishlist.AddToWishlist(ctx, product)
	respond(w, sf, http.StatusOK, wishlistPayload(sf))
}

// RemoveWishlistHandler removes a product from the wishlist.
func (h *Handler) RemoveWishlistHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Wishlist.RemoveFromWishlist(ctx, chi.URLParam(r, "id"))
	respond(w, sf, http.StatusOK, wishlistPayload(sf))
}

// ToggleWishlistHandler adds the product if missing, otherwise removes it.
func (h *Handler) ToggleWishlistHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Wishlist API]")
	sf := storefrontFrom(r)

	product, ok := catalog.GetProductByID(chi.URLParam(r, "id"))
	if !ok {
		utils.RespondError(w, &logMessageBuilder, msgProductNotFound, http.StatusNotFound)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	in := sf.Wishlist.ToggleWishlist(ctx, product)

	payload := wishlistPayload(sf)
	payload["in_wishlist"] = in
	respond(w, sf, http.StatusOK, payload)
}

// ClearWishlistHandler empties the wishlist.
func (h *Handler) ClearWishlistHandler(w http.ResponseWriter, r *http.Request) {
	sf := storefrontFrom(r)
	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Wishlist.ClearWishlist(ctx)
	respond(w, sf, http.StatusOK, wishlistPayload(sf))
}
