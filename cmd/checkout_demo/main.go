package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/checkout"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/upload"
)

// Walks one session through the storefront: sign up, fill the cart, check out
// and send a payment proof, printing each step.
func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "checkout-demo-")
	if err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}
	defer os.RemoveAll(dir)

	sessions := session.NewManager(storage.NewMemoryStorage(), session.Options{})
	svc := checkout.NewService(upload.NewService(upload.NewLocalSink(dir)))

	sf := sessions.Create(ctx)
	fmt.Printf("Session: %s\n", sf.ID)

	if _, err := sf.Auth.SignUp(ctx, "Demo Shopper", "demo@example.com", "rahasia"); err != nil {
		log.Fatalf("Failed to sign up: %v", err)
	}

	slugs := []string{
		"gentle-foaming-cleanser",
		"vitamin-c-serum",
		"hydrating-mask",
	}
	for _, slug := range slugs {
		p, ok := catalog.GetProductBySlug(slug)
		if !ok {
			log.Printf("Product %s not in catalog\n", slug)
			continue
		}
		sf.Cart.AddItem(ctx, p, 1)
		fmt.Printf("Added %s (%s)\n", p.Name, catalog.FormatPrice(p.Price))
	}
	fmt.Printf("Cart: %d items, %s\n", sf.Cart.TotalItems(), catalog.FormatPrice(sf.Cart.TotalPrice()))

	placed, err := svc.PlaceOrder(ctx, sf, checkout.Form{
		ShippingAddress: models.ShippingAddress{
			Name:       "Demo Shopper",
			Phone:      "081234567890",
			Address:    "Jl. Melati No. 1",
			City:       "Bandung",
			Province:   "Jawa Barat",
			PostalCode: "40111",
		},
		ShippingMethod: checkout.ShippingRegular,
		PaymentMethod:  checkout.PaymentTransfer,
	})
	if err != nil {
		log.Fatalf("Failed to place order: %v", err)
	}
	fmt.Printf("Redirect: /payment?%s\n", placed.Payment.Query().Encode())

	data := svc.LoadPaymentData(ctx, sf, placed.Payment)
	b, _ := json.MarshalIndent(data, "", "  ")
	fmt.Printf("Payment: %s\n", string(b))

	proof := upload.NewBytesFile("bukti-transfer.png", "image/png", []byte("demo proof"))
	paid, res, err := svc.SubmitPaymentProof(ctx, sf, placed.Order.OrderID, proof)
	if err != nil {
		log.Fatalf("Failed to submit proof: %v", err)
	}
	fmt.Printf("Proof stored at %s\n", res.URL)
	fmt.Printf("Order %s: %s\n", paid.OrderID, paid.Status.Label())

	for _, n := range sf.Notices.Drain() {
		fmt.Printf("[%s] %s\n", n.Level, n.Title)
	}
}
