// Package checkout turns a session's cart into a priced order and drives the
// payment step that follows.
package checkout

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/upload"
)

const (
	AdminFee int64 = 2500
	CodFee   int64 = 5000

	MsgIncompleteForm  = "Mohon lengkapi semua data yang diperlukan"
	MsgSignInRequired  = "Silakan masuk terlebih dahulu untuk melanjutkan checkout"
	MsgEmptyCart       = "Tidak Ada Item di Keranjang"
	OrderIDPrefix      = "YLS"
	DefaultPaymentTime = 24 * time.Hour
)

var (
	ErrIncompleteForm   = errors.New("checkout: form is incomplete")
	ErrNotAuthenticated = errors.New("checkout: sign in required")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
)

// DefaultBankAccount is the transfer destination shown on every order.
var DefaultBankAccount = models.BankAccount{
	Bank:          "Bank BCA",
	AccountNumber: "1234567890",
	AccountName:   "PT Yelis Marketplace",
}

type Form struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	ShippingMethod  string                 `json:"shipping_method"`
	PaymentMethod   string                 `json:"payment_method"`
}

// Validate requires every address field and both methods.
func (f Form) Validate() error {
	if !f.ShippingAddress.Complete() || f.ShippingMethod == "" || f.PaymentMethod == "" {
		return ErrIncompleteForm
	}
	return nil
}

type Quote struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shipping_cost"`
	AdminFee     int64 `json:"admin_fee"`
	CodFee       int64 `json:"cod_fee"`
	Total        int64 `json:"total"`
}

// Quote prices subtotal under the form's methods.
func (f Form) Quote(subtotal int64) Quote {
	return QuoteFor(subtotal, f.ShippingMethod, f.PaymentMethod)
}

// QuoteFor prices a subtotal under the chosen shipping and payment methods.
func QuoteFor(subtotal int64, shippingMethod, paymentMethod string) Quote {
	q := Quote{
		Subtotal:     subtotal,
		ShippingCost: CalculateShippingCost(shippingMethod, subtotal),
		AdminFee:     AdminFee,
	}
	if paymentMethod == PaymentCOD {
		q.CodFee = CodFee
	}
	q.Total = q.Subtotal + q.ShippingCost + q.AdminFee + q.CodFee
	return q
}

// PaymentParams are the redirect parameters handed to the payment step.
type PaymentParams struct {
	OrderID  string `json:"orderId"`
	Total    int64  `json:"total"`
	Method   string `json:"method"`
	Shipping string `json:"shipping"`
}

func (p PaymentParams) Query() url.Values {
	return url.Values{
		"orderId":  {p.OrderID},
		"total":    {strconv.FormatInt(p.Total, 10)},
		"method":   {p.Method},
		"shipping": {p.Shipping},
	}
}

// ParsePaymentParams reads the redirect query. A malformed total reads as zero.
func ParsePaymentParams(q url.Values) PaymentParams {
	total, _ := strconv.ParseInt(q.Get("total"), 10, 64)
	return PaymentParams{
		OrderID:  q.Get("orderId"),
		Total:    total,
		Method:   q.Get("method"),
		Shipping: q.Get("shipping"),
	}
}

type Placement struct {
	Order   models.Order  `json:"order"`
	Payment PaymentParams `json:"payment"`
}

type Service struct {
	uploader      upload.Uploader
	mailer        *notify.Mailer
	paymentWindow time.Duration
	now           func() time.Time
}

type Option func(*Service)

func WithMailer(m *notify.Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

func WithPaymentWindow(d time.Duration) Option {
	return func(s *Service) { s.paymentWindow = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(uploader upload.Uploader, opts ...Option) *Service {
	s := &Service{uploader: uploader, paymentWindow: DefaultPaymentTime, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) PaymentWindow() time.Duration { return s.paymentWindow }

// PlaceOrder creates the order from the session cart, stores the payment snapshot
// and empties the cart.
func (s *Service) PlaceOrder(ctx context.Context, sf *session.Storefront, form Form) (Placement, error) {
	user, ok := sf.Auth.CurrentUser()
	if !ok {
		return Placement{}, ErrNotAuthenticated
	}
	items := sf.Cart.Items()
	if len(items) == 0 {
		return Placement{}, ErrEmptyCart
	}
	if err := form.Validate(); err != nil {
		return Placement{}, err
	}

	now := s.now()
	quote := form.Quote(sf.Cart.TotalPrice())
	bank := DefaultBankAccount

	draft := models.Order{
		OrderID:         OrderIDPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		Items:           make([]models.OrderItem, 0, len(items)),
		ShippingAddress: form.ShippingAddress,
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.ShippingCost,
		AdminFee:        quote.AdminFee,
		CodFee:          quote.CodFee,
		Total:           quote.Total,
		PaymentMethod:   form.PaymentMethod,
		ShippingMethod:  form.ShippingMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       now.UTC(),
		BankAccount:     &bank,
	}
	for _, it := range items {
		draft.Items = append(draft.Items, models.OrderItem{
			ID:       it.ID,
			Name:     it.Product.Name,
			Brand:    it.Product.Brand,
			Price:    it.Product.Price,
			Quantity: it.Quantity,
			Image:    it.Product.PrimaryImage(),
		})
	}

	created := sf.Orders.CreateOrder(ctx, draft)

	if err := storage.SaveJSON(ctx, sf.Storage, storage.OrderSnapshotKey(draft.OrderID), draft); err != nil {
		logx.Error().Err(err).Str("order_id", draft.OrderID).Msg("error saving payment snapshot")
	}

	sf.Cart.ClearCart(ctx)

	if err := s.mailer.SendOrderConfirmation(ctx, user, created); err != nil {
		logx.Warn().Err(err).Str("order_id", created.OrderID).Msg("order confirmation not sent")
	}

	logx.Info().Str("session_id", sf.ID).Str("order_id", created.OrderID).Int64("total", created.Total).Msg("order placed")
	return Placement{
		Order: created,
		Payment: PaymentParams{
			OrderID:  created.OrderID,
			Total:    created.Total,
			Method:   created.PaymentMethod,
			Shipping: created.ShippingMethod,
		},
	}, nil
}
