package checkout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var address = models.ShippingAddress{
	Name:       "Rina",
	Phone:      "08123456789",
	Address:    "Jl. Melati 1",
	City:       "Bandung",
	Province:   "Jawa Barat",
	PostalCode: "40111",
}

type failingUploader struct{ err error }

func (f failingUploader) Upload(context.Context, string, upload.File) (upload.Result, error) {
	return upload.Result{}, f.err
}

func steppingClock() func() time.Time {
	var n atomic.Int64
	return func() time.Time {
		return time.UnixMilli(1700000000000 + n.Add(1))
	}
}

func newShopper(t *testing.T) *session.Storefront {
	t.Helper()
	ctx := context.Background()
	m := session.NewManager(storage.NewMemoryStorage(), session.Options{})
	sf := m.Create(ctx)
	_, err := sf.Auth.SignUp(ctx, "Rina", "rina@example.com", "pw")
	require.NoError(t, err)
	return sf
}

func addProduct(t *testing.T, sf *session.Storefront, id string, qty int) {
	t.Helper()
	p, ok := catalog.GetProductByID(id)
	require.True(t, ok)
	sf.Cart.AddItem(context.Background(), p, qty)
}

func TestCalculateShippingCost(t *testing.T) {
	assert.Equal(t, int64(25000), CalculateShippingCost(ShippingRegular, 450000))
	assert.Equal(t, int64(0), CalculateShippingCost(ShippingRegular, 600000))
	assert.Equal(t, int64(0), CalculateShippingCost(ShippingRegular, 500000))
	assert.Equal(t, int64(35000), CalculateShippingCost(ShippingExpress, 600000))
	assert.Equal(t, int64(50000), CalculateShippingCost(ShippingInstant, 10000))
	assert.Equal(t, int64(0), CalculateShippingCost("", 10000))
	assert.Equal(t, int64(0), CalculateShippingCost("drone", 10000))
}

func TestQuoteFor(t *testing.T) {
	q := QuoteFor(450000, ShippingRegular, PaymentTransfer)
	assert.Equal(t, Quote{Subtotal: 450000, ShippingCost: 25000, AdminFee: 2500, Total: 477500}, q)

	q = QuoteFor(600000, ShippingRegular, PaymentTransfer)
	assert.Equal(t, int64(602500), q.Total)

	q = QuoteFor(100000, ShippingExpress, PaymentCOD)
	assert.Equal(t, int64(5000), q.CodFee)
	assert.Equal(t, int64(100000+35000+2500+5000), q.Total)

	form := Form{ShippingMethod: ShippingInstant, PaymentMethod: PaymentCOD}
	assert.Equal(t, QuoteFor(100000, ShippingInstant, PaymentCOD), form.Quote(100000))
}

func TestFormValidate(t *testing.T) {
	ok := Form{ShippingAddress: address, ShippingMethod: ShippingRegular, PaymentMethod: PaymentTransfer}
	assert.NoError(t, ok.Validate())

	missing := ok
	missing.ShippingAddress.PostalCode = ""
	assert.ErrorIs(t, missing.Validate(), ErrIncompleteForm)

	missing = ok
	missing.PaymentMethod = ""
	assert.ErrorIs(t, missing.Validate(), ErrIncompleteForm)
}

func TestPlaceOrderGuards(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingUploader{})
	form := Form{ShippingAddress: address, ShippingMethod: ShippingRegular, PaymentMethod: PaymentTransfer}

	anon := session.NewManager(storage.NewMemoryStorage(), session.Options{}).Create(ctx)
	addProduct(t, anon, "1", 1)
	_, err := svc.PlaceOrder(ctx, anon, form)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	sf := newShopper(t)
	_, err = svc.PlaceOrder(ctx, sf, form)
	assert.ErrorIs(t, err, ErrEmptyCart)

	addProduct(t, sf, "1", 1)
	_, err = svc.PlaceOrder(ctx, sf, Form{ShippingAddress: address})
	assert.ErrorIs(t, err, ErrIncompleteForm)
	assert.Equal(t, 1, sf.Cart.TotalItems(), "cart kept when checkout is aborted")
	assert.Empty(t, sf.Orders.Orders())
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	sf := newShopper(t)
	addProduct(t, sf, "5", 1) // 450.000
	svc := NewService(failingUploader{}, WithClock(func() time.Time { return time.UnixMilli(1700000000000) }))

	placed, err := svc.PlaceOrder(ctx, sf, Form{ShippingAddress: address, ShippingMethod: ShippingRegular, PaymentMethod: PaymentTransfer})
	require.NoError(t, err)

	o := placed.Order
	assert.Equal(t, "YLS1700000000000", o.OrderID)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, int64(450000), o.Subtotal)
	assert.Equal(t, int64(25000), o.ShippingCost)
	assert.Equal(t, int64(477500), o.Total)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Vitamin C Serum", o.Items[0].Name)
	assert.Equal(t, "/images/products/vitamin-c-serum/1.jpg", o.Items[0].Image)
	assert.Equal(t, DefaultBankAccount, *o.BankAccount)

	assert.Equal(t, PaymentParams{OrderID: o.OrderID, Total: 477500, Method: "transfer", Shipping: "regular"}, placed.Payment)
	assert.Equal(t, "477500", placed.Payment.Query().Get("total"))
	assert.Zero(t, sf.Cart.TotalItems())

	cur, ok := sf.Orders.Current()
	require.True(t, ok)
	assert.Equal(t, o.OrderID, cur.OrderID)

	data := svc.LoadPaymentData(ctx, sf, placed.Payment)
	assert.True(t, data.FromSnapshot)
	assert.Equal(t, int64(477500), data.Total)
	assert.Len(t, data.Items, 1)
}

func TestPlaceOrderCOD(t *testing.T) {
	ctx := context.Background()
	sf := newShopper(t)
	addProduct(t, sf, "1", 2) // 378.000
	svc := NewService(failingUploader{}, WithClock(steppingClock()))

	placed, err := svc.PlaceOrder(ctx, sf, Form{ShippingAddress: address, ShippingMethod: ShippingExpress, PaymentMethod: PaymentCOD})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), placed.Order.CodFee)
	assert.Equal(t, int64(378000+35000+2500+5000), placed.Order.Total)
}

func TestLoadPaymentDataFallback(t *testing.T) {
	sf := newShopper(t)
	svc := NewService(failingUploader{})

	data := svc.LoadPaymentData(context.Background(), sf, PaymentParams{OrderID: "YLS42", Total: 528000, Method: PaymentCOD})
	assert.False(t, data.FromSnapshot)
	assert.Equal(t, "YLS42", data.OrderID)
	assert.Equal(t, int64(500000), data.Subtotal)
	assert.Equal(t, int64(25000), data.ShippingCost)
	assert.Equal(t, int64(3000), data.AdminFee)
	assert.Equal(t, int64(5000), data.CodFee)
	assert.Equal(t, ShippingRegular, data.ShippingMethod)
	assert.Empty(t, data.Items)

	data = svc.LoadPaymentData(context.Background(), sf, ParsePaymentParams(nil))
	assert.Equal(t, PaymentTransfer, data.PaymentMethod)
	assert.Zero(t, data.CodFee)
	assert.Contains(t, data.OrderID, OrderIDPrefix)
}

func TestSubmitPaymentProof(t *testing.T) {
	ctx := context.Background()
	sf := newShopper(t)
	svc := NewService(upload.NewService(upload.NewLocalSink(t.TempDir())), WithClock(steppingClock()))
	form := Form{ShippingAddress: address, ShippingMethod: ShippingRegular, PaymentMethod: PaymentTransfer}

	addProduct(t, sf, "1", 1)
	first, err := svc.PlaceOrder(ctx, sf, form)
	require.NoError(t, err)
	addProduct(t, sf, "2", 1)
	second, err := svc.PlaceOrder(ctx, sf, form)
	require.NoError(t, err)
	sf.Notices.Drain()

	paid, res, err := svc.SubmitPaymentProof(ctx, sf, first.Order.OrderID,
		upload.NewBytesFile("bukti.jpg", "image/jpeg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, paid.Status)
	assert.Equal(t, res.URL, paid.PaymentProof)

	other, _ := sf.Orders.GetOrderByID(second.Order.OrderID)
	assert.Equal(t, models.OrderStatusPending, other.Status)

	notices := sf.Notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, MsgProofSent, notices[0].Title)

	// The checkout snapshot is not rewritten by the proof.
	data := svc.LoadPaymentData(ctx, sf, first.Payment)
	assert.True(t, data.FromSnapshot)
}

func TestSubmitPaymentProofFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	sf := newShopper(t)
	addProduct(t, sf, "1", 1)
	boom := errors.New("network down")
	svc := NewService(failingUploader{err: boom})

	placed, err := svc.PlaceOrder(ctx, sf, Form{ShippingAddress: address, ShippingMethod: ShippingRegular, PaymentMethod: PaymentTransfer})
	require.NoError(t, err)

	_, _, err = svc.SubmitPaymentProof(ctx, sf, placed.Order.OrderID, upload.NewBytesFile("a.png", "image/png", []byte("x")))
	assert.ErrorIs(t, err, boom)
	o, _ := sf.Orders.GetOrderByID(placed.Order.OrderID)
	assert.Equal(t, models.OrderStatusPending, o.Status)

	notices := sf.Notices.Drain()
	require.NotEmpty(t, notices)
	last := notices[len(notices)-1]
	assert.Equal(t, notify.LevelError, last.Level)
	assert.Equal(t, MsgProofFailed, last.Title)
}
