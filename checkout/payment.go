package checkout

import (
	"context"
	"errors"
	"strconv"

	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/notify"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/upload"
)

const (
	fallbackShipping int64 = 25000
	fallbackAdminFee int64 = 3000

	MsgProofSent        = "Bukti pembayaran berhasil dikirim!"
	MsgProofSentDetail  = "Pesanan Anda akan segera diproses. Tim kami akan memverifikasi pembayaran dalam 1-10 menit."
	MsgProofFailed      = "Gagal mengirim bukti pembayaran"
	MsgProofFailedRetry = "Silakan coba lagi atau hubungi customer service."
	MsgPaymentExpired   = "Waktu pembayaran telah habis"
	MsgPaymentCancelled = "Pesanan akan dibatalkan otomatis"
)

// PaymentData is what the payment step shows for an order.
type PaymentData struct {
	OrderID        string              `json:"orderId"`
	Total          int64               `json:"total"`
	Subtotal       int64               `json:"subtotal"`
	ShippingCost   int64               `json:"shippingCost"`
	AdminFee       int64               `json:"adminFee"`
	CodFee         int64               `json:"codFee"`
	PaymentMethod  string              `json:"paymentMethod"`
	ShippingMethod string              `json:"shippingMethod"`
	Items          []models.OrderItem  `json:"items"`
	BankAccount    *models.BankAccount `json:"bankAccount,omitempty"`
	FromSnapshot   bool                `json:"fromSnapshot"`
}

// LoadPaymentData reads the checkout snapshot for params.OrderID. Without one it
// estimates the breakdown from the redirect parameters alone.
func (s *Service) LoadPaymentData(ctx context.Context, sf *session.Storefront, params PaymentParams) PaymentData {
	if params.OrderID != "" {
		var snap models.Order
		err := storage.LoadJSON(ctx, sf.Storage, storage.OrderSnapshotKey(params.OrderID), &snap)
		if err == nil {
			return PaymentData{
				OrderID:        snap.OrderID,
				Total:          snap.Total,
				Subtotal:       snap.Subtotal,
				ShippingCost:   snap.ShippingCost,
				AdminFee:       snap.AdminFee,
				CodFee:         snap.CodFee,
				PaymentMethod:  snap.PaymentMethod,
				ShippingMethod: snap.ShippingMethod,
				Items:          snap.Items,
				BankAccount:    snap.BankAccount,
				FromSnapshot:   true,
			}
		}
		if !errors.Is(err, storage.ErrNotFound) {
			logx.Warn().Err(err).Str("order_id", params.OrderID).Msg("payment snapshot unreadable, using fallback")
		}
	}
	return s.fallbackPaymentData(params)
}

func (s *Service) fallbackPaymentData(params PaymentParams) PaymentData {
	method := params.Method
	if method == "" {
		method = PaymentTransfer
	}
	shipping := params.Shipping
	if shipping == "" {
		shipping = ShippingRegular
	}
	orderID := params.OrderID
	if orderID == "" {
		orderID = OrderIDPrefix + strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	var cod int64
	if method == PaymentCOD {
		cod = CodFee
	}
	bank := DefaultBankAccount
	return PaymentData{
		OrderID:        orderID,
		Total:          params.Total,
		Subtotal:       params.Total - fallbackShipping - fallbackAdminFee,
		ShippingCost:   fallbackShipping,
		AdminFee:       fallbackAdminFee,
		CodFee:         cod,
		PaymentMethod:  method,
		ShippingMethod: shipping,
		Items:          []models.OrderItem{},
		BankAccount:    &bank,
	}
}

// SubmitPaymentProof uploads the proof and marks the order paid. Failures raise an
// error notice and can be retried; the checkout snapshot is left untouched.
func (s *Service) SubmitPaymentProof(ctx context.Context, sf *session.Storefront, orderID string, f upload.File) (models.Order, upload.Result, error) {
	res, err := s.uploader.Upload(ctx, orderID, f)
	if err != nil {
		sf.Notices.Notify(notify.Error(MsgProofFailed, MsgProofFailedRetry))
		logx.Error().Err(err).Str("order_id", orderID).Msg("payment upload error")
		return models.Order{}, upload.Result{}, err
	}

	updated, err := sf.Orders.AddPaymentProof(ctx, orderID, res.URL)
	if err != nil {
		sf.Notices.Notify(notify.Error(MsgProofFailed, MsgProofFailedRetry))
		return models.Order{}, res, err
	}

	sf.Notices.Notify(notify.Notice{Level: notify.LevelSuccess, Title: MsgProofSent, Description: MsgProofSentDetail})
	return updated, res, nil
}

// StartPaymentTimer runs the payment countdown for the order in the background, once
// per session and order. Only orders placed through checkout (a saved snapshot) get
// a countdown. Expiry only raises a notice; the order keeps its status.
func (s *Service) StartPaymentTimer(sf *session.Storefront, data PaymentData) bool {
	if !data.FromSnapshot {
		return false
	}
	orderID := data.OrderID
	return sf.Watch("payment:"+orderID, func(ctx context.Context) {
		c := Countdown{
			Duration: s.paymentWindow,
			OnExpired: func() {
				sf.Notices.Notify(notify.Error(MsgPaymentExpired, MsgPaymentCancelled))
				logx.Info().Str("session_id", sf.ID).Str("order_id", orderID).Msg("payment window expired")
			},
		}
		c.Run(ctx)
	})
}
