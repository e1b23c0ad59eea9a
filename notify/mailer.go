package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/logx"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends order mail through SendGrid. A Mailer without an API key logs and skips.
type Mailer struct {
	APIKey    string
	FromName  string
	FromEmail string
}

// SendEmail sends a single message to one recipient.
func (m *Mailer) SendEmail(ctx context.Context, toName, toEmail, subject, textContent, htmlContent string) error {
	if m == nil || m.APIKey == "" {
		logx.Debug().Str("to", toEmail).Str("subject", subject).Msg("mail disabled, skipping")
		return nil
	}

	from := mail.NewEmail(m.FromName, m.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(m.APIKey)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logx.Error().Err(err).Str("to", toEmail).Msg("error sending email")
		return err
	}

	if response.StatusCode >= 400 {
		logx.Error().Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid api error")
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	logx.Info().Str("to", toEmail).Int("status", response.StatusCode).Msg("email sent")
	return nil
}

// SendOrderConfirmation mails the order summary and payment instructions.
func (m *Mailer) SendOrderConfirmation(ctx context.Context, user models.User, order models.Order) error {
	subject := "Pesanan " + order.OrderID + " berhasil dibuat"
	text, html := OrderSummary(order)
	return m.SendEmail(ctx, user.Name, user.Email, subject, text, html)
}

// OrderSummary renders the plain text and HTML bodies of the confirmation mail.
func OrderSummary(order models.Order) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Nomor pesanan: %s\n", order.OrderID)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", it.Name, it.Quantity, catalog.FormatPrice(it.Price*int64(it.Quantity)))
	}
	fmt.Fprintf(&b, "Subtotal: %s\n", catalog.FormatPrice(order.Subtotal))
	fmt.Fprintf(&b, "Ongkos kirim: %s\n", catalog.FormatPrice(order.ShippingCost))
	fmt.Fprintf(&b, "Biaya admin: %s\n", catalog.FormatPrice(order.AdminFee))
	if order.CodFee > 0 {
		fmt.Fprintf(&b, "Biaya COD: %s\n", catalog.FormatPrice(order.CodFee))
	}
	fmt.Fprintf(&b, "Total: %s\n", catalog.FormatPrice(order.Total))
	if order.BankAccount != nil && order.PaymentMethod != "cod" {
		fmt.Fprintf(&b, "Transfer ke %s %s a.n. %s\n",
			order.BankAccount.Bank, order.BankAccount.AccountNumber, order.BankAccount.AccountName)
	}
	text := b.String()
	html := "<pre>" + text + "</pre>"
	return text, html
}
