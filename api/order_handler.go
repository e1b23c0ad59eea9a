package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

const (
	msgOrderNotFound = "Pesanan tidak ditemukan"
	msgOrdersSignIn  = "Silakan masuk terlebih dahulu untuk melihat pesanan"

	defaultOrdersPageSize = 10
	maxOrdersPageSize     = 100
)

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type TrackingRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

type orderView struct {
	models.Order
	StatusLabel string `json:"status_label"`
}

func viewOf(o models.Order) orderView {
	return orderView{Order: o, StatusLabel: o.Status.Label()}
}

// ListOrdersHandler reloads the session's persisted orders and pages through them,
// newest first. Signed-out sessions are turned away.
func (h *Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Orders API]")
	sf := storefrontFrom(r)

	if !sf.Auth.IsAuthenticated() {
		respond(w, sf, http.StatusUnauthorized, map[string]any{"error": msgOrdersSignIn})
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	sf.Orders.LoadOrders(ctx)

	orders := sf.Orders.Orders()
	if status := models.OrderStatus(r.URL.Query().Get("status")); status != "" {
		if !status.Valid() {
			utils.RespondError(w, &logMessageBuilder, "unknown order status", http.StatusBadRequest)
			return
		}
		orders = sf.Orders.GetOrdersByStatus(status)
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultOrdersPageSize)
	if limit > maxOrdersPageSize {
		limit = maxOrdersPageSize
	}
	start, end := pageBounds(len(orders), page, limit)

	views := make([]orderView, 0, end-start)
	for _, o := range orders[start:end] {
		views = append(views, viewOf(o))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d of %d orders", len(views), len(orders)))
	respond(w, sf, http.StatusOK, map[string]any{
		"orders": views,
		"total":  len(orders),
		"page":   page,
		"limit":  limit,
	})
}

// pageBounds returns the slice bounds of page (1-based) for n items. Pages past
// the end are empty.
func pageBounds(n, page, limit int) (int, int) {
	if page-1 >= (n+limit-1)/limit {
		return n, n
	}
	start := (page - 1) * limit
	return start, min(start+limit, n)
}

// GetOrderHandler returns one order and makes it the session's current order.
func (h *Handler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Order Detail API]")
	sf := storefrontFrom(r)

	o, ok := sf.Orders.GetOrderByID(chi.URLParam(r, "orderId"))
	if !ok {
		utils.RespondError(w, &logMessageBuilder, msgOrderNotFound, http.StatusNotFound)
		return
	}
	sf.Orders.SetCurrentOrder(&o)
	respond(w, sf, http.StatusOK, map[string]any{"order": viewOf(o)})
}

// UpdateOrderStatusHandler sets an order's status.
func (h *Handler) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Order Status API]")
	sf := storefrontFrom(r)

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	o, err := sf.Orders.UpdateOrderStatus(ctx, chi.URLParam(r, "orderId"), req.Status)
	if err != nil {
		fail(w, sf, &logMessageBuilder, err)
		return
	}
	respond(w, sf, http.StatusOK, map[string]any{"order": viewOf(o)})
}

// AddTrackingHandler records the shipment tracking number and marks the order shipped.
func (h *Handler) AddTrackingHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Order Tracking API]")
	sf := storefrontFrom(r)

	var req TrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.TrackingNumber) == "" {
		utils.RespondError(w, &logMessageBuilder, "tracking_number is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	o, err := sf.Orders.AddTrackingNumber(ctx, chi.URLParam(r, "orderId"), strings.TrimSpace(req.TrackingNumber))
	if err != nil {
		fail(w, sf, &logMessageBuilder, err)
		return
	}
	respond(w, sf, http.StatusOK, map[string]any{"order": viewOf(o)})
}
