package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/skincare-storefront/checkout"
	"github.com/raushankrgupta/skincare-storefront/errx"
	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

type QuoteRequest struct {
	ShippingMethod string `json:"shipping_method"`
	PaymentMethod  string `json:"payment_method"`
}

// CheckoutOptionsHandler lists the shipping and payment choices.
func (h *Handler) CheckoutOptionsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"shipping_options": checkout.ShippingOptions,
		"payment_methods":  checkout.PaymentMethods,
		"admin_fee":        checkout.AdminFee,
		"cod_fee":          checkout.CodFee,
	})
}

// QuoteHandler prices the current cart for the chosen methods.
func (h *Handler) QuoteHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Quote API]")
	sf := storefrontFrom(r)

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote := checkout.QuoteFor(sf.Cart.TotalPrice(), req.ShippingMethod, req.PaymentMethod)
	respond(w, sf, http.StatusOK, map[string]any{"quote": quote, "total_items": sf.Cart.TotalItems()})
}

// CheckoutHandler places the order and returns the payment redirect.
func (h *Handler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Checkout API]")
	sf := storefrontFrom(r)

	var form checkout.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	placed, err := h.Checkout.PlaceOrder(ctx, sf, form)
	if err != nil {
		fail(w, sf, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Order %s placed, total %d", placed.Order.OrderID, placed.Order.Total))
	respond(w, sf, http.StatusCreated, map[string]any{
		"order":    viewOf(placed.Order),
		"payment":  placed.Payment,
		"redirect": "/payment?" + placed.Payment.Query().Encode(),
	})
}

// PaymentHandler loads the payment step and starts its countdown.
func (h *Handler) PaymentHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Payment API]")
	sf := storefrontFrom(r)

	ctx, cancel := requestContext(r)
	defer cancel()

	params := checkout.ParsePaymentParams(r.URL.Query())
	data := h.Checkout.LoadPaymentData(ctx, sf, params)
	started := h.Checkout.StartPaymentTimer(sf, data)

	window := h.Checkout.PaymentWindow()
	respond(w, sf, http.StatusOK, map[string]any{
		"payment":           data,
		"countdown_started": started,
		"window_seconds":    int64(window.Seconds()),
		"time_left":         checkout.Format(window),
	})
}

// PaymentProofHandler uploads the proof and marks the order paid.
func (h *Handler) PaymentProofHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Payment Proof API]")
	sf := storefrontFrom(r)
	orderID := chi.URLParam(r, "orderId")

	f, closeFile, err := formFile(w, r)
	if err != nil {
		fail(w, sf, &logMessageBuilder, err)
		return
	}
	defer closeFile()

	ctx, cancel := requestContext(r)
	defer cancel()

	o, res, err := h.Checkout.SubmitPaymentProof(ctx, sf, orderID, f)
	if err != nil {
		var v *upload.ValidationError
		if !errors.As(err, &v) && res.URL == "" {
			err = errx.New(err, http.StatusBadGateway, checkout.MsgProofFailed)
		}
		fail(w, sf, &logMessageBuilder, err)
		return
	}

	respond(w, sf, http.StatusOK, map[string]any{
		"order":  viewOf(o),
		"upload": res,
	})
}
