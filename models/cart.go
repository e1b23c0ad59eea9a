package models

// CartItem references a product by id with a quantity of at least one
type CartItem struct {
	ID       string  `json:"id"` // Product ID
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price times quantity
func (i CartItem) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
