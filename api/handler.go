// Package api exposes the storefront over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/raushankrgupta/skincare-storefront/checkout"
	"github.com/raushankrgupta/skincare-storefront/errx"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/stores/auth"
	"github.com/raushankrgupta/skincare-storefront/stores/order"
	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

const requestTimeout = 10 * time.Second

// Handler holds the dependencies shared by every route.
type Handler struct {
	Sessions   *session.Manager
	Checkout   *checkout.Service
	Uploads    *upload.Service
	SessionTTL time.Duration
	UploadDir  string // served under /uploads when set
}

// NewRouter mounts every storefront route.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(utils.LatencyMiddleware)
	r.Use(corsMiddleware)

	r.Post("/session", h.CreateSessionHandler)

	r.Get("/products", h.ListProductsHandler)
	r.Get("/products/{id}", h.GetProductHandler)
	r.Get("/products/{id}/related", h.RelatedProductsHandler)
	r.Get("/categories", h.ListCategoriesHandler)
	r.Get("/categories/{slug}", h.GetCategoryHandler)
	r.Get("/brands", h.ListBrandsHandler)
	r.Get("/search", h.SearchHandler)
	r.Get("/checkout/options", h.CheckoutOptionsHandler)

	r.Post("/api/upload", h.UploadHandler)
	if h.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.sessionMiddleware)

		r.Delete("/session", h.EndSessionHandler)

		r.Get("/cart", h.GetCartHandler)
		r.Delete("/cart", h.ClearCartHandler)
		r.Post("/cart/items", h.AddCartItemHandler)
		r.Patch("/cart/items/{id}", h.UpdateCartItemHandler)
		r.Delete("/cart/items/{id}", h.RemoveCartItemHandler)

		r.Get("/wishlist", h.GetWishlistHandler)
		r.Post("/wishlist", h.AddWishlistHandler)
		r.Delete("/wishlist", h.ClearWishlistHandler)
		r.Delete("/wishlist/{id}", h.RemoveWishlistHandler)
		r.Post("/wishlist/{id}/toggle", h.ToggleWishlistHandler)

		r.Post("/auth/signup", h.SignupHandler)
		r.Post("/auth/signin", h.SigninHandler)
		r.Post("/auth/signout", h.SignoutHandler)
		r.Get("/auth/me", h.MeHandler)

		r.Get("/orders", h.ListOrdersHandler)
		r.Get("/orders/{orderId}", h.GetOrderHandler)
		r.Patch("/orders/{orderId}/status", h.UpdateOrderStatusHandler)
		r.Post("/orders/{orderId}/tracking", h.AddTrackingHandler)

		r.Post("/checkout/quote", h.QuoteHandler)
		r.Post("/checkout", h.CheckoutHandler)
		r.Get("/payment", h.PaymentHandler)
		r.Post("/payment/{orderId}/proof", h.PaymentProofHandler)
	})

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey struct{}

// sessionMiddleware resolves the bearer token to a storefront and holds the
// session lock for the rest of the request.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondError(w, nil, "missing session token", http.StatusUnauthorized)
			return
		}

		id, err := utils.SessionIDFromToken(parts[1])
		if err != nil {
			utils.RespondError(w, nil, "invalid session token", http.StatusUnauthorized)
			return
		}

		sf, err := h.Sessions.Get(r.Context(), id)
		if err != nil {
			utils.RespondError(w, nil, "invalid session token", http.StatusUnauthorized)
			return
		}

		sf.Lock()
		defer sf.Unlock()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sf)))
	})
}

func storefrontFrom(r *http.Request) *session.Storefront {
	sf, _ := r.Context().Value(ctxKey{}).(*session.Storefront)
	return sf
}

// respond writes payload plus any notices the session raised during the request.
func respond(w http.ResponseWriter, sf *session.Storefront, status int, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	if sf != nil {
		if notices := sf.Notices.Drain(); len(notices) > 0 {
			payload["notices"] = notices
		}
	}
	utils.RespondJSON(w, status, payload)
}

// fail maps err to a status and client message, logs it, and writes it with any notices.
func fail(w http.ResponseWriter, sf *session.Storefront, logger *strings.Builder, err error) {
	e := classify(err)
	utils.AddToLogMessage(logger, e.Error())
	respond(w, sf, e.Status, map[string]any{"error": e.Message})
}

func classify(err error) *errx.Error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e
	}
	var v *upload.ValidationError
	switch {
	case errors.As(err, &v):
		return errx.BadRequest(err, v.Message)
	case errors.Is(err, auth.ErrDuplicateEmail):
		return errx.Conflict(err, auth.MsgDuplicateEmail)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errx.Unauthorized(err, auth.MsgInvalidCredentials)
	case errors.Is(err, checkout.ErrNotAuthenticated):
		return errx.Unauthorized(err, checkout.MsgSignInRequired)
	case errors.Is(err, checkout.ErrEmptyCart):
		return errx.BadRequest(err, checkout.MsgEmptyCart)
	case errors.Is(err, checkout.ErrIncompleteForm):
		return errx.BadRequest(err, checkout.MsgIncompleteForm)
	case errors.Is(err, order.ErrOrderNotFound):
		return errx.NotFound(err, msgOrderNotFound)
	case errors.Is(err, order.ErrInvalidStatus):
		return errx.BadRequest(err, "unknown order status")
	case errors.Is(err, order.ErrInvalidTransition):
		return errx.Conflict(err, "order status change not allowed")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errx.New(err, http.StatusGatewayTimeout, "request timed out")
	}
	return errx.New(err, http.StatusInternalServerError, errx.SystemErrorMessage)
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}
