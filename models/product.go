package models

import "strings"

// Product is immutable catalog reference data
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Price          int64    `json:"price"`
	OriginalPrice  int64    `json:"original_price,omitempty"` // Price before discount
	Discount       int      `json:"discount,omitempty"`       // Percent
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Image          string   `json:"image"`
	Href           string   `json:"href"`
	IsNew          bool     `json:"is_new,omitempty"`
	IsBestSeller   bool     `json:"is_best_seller,omitempty"`
	Category       string   `json:"category"`
	CategorySlug   string   `json:"category_slug"`
	Description    string   `json:"description"`
	KeyIngredients []string `json:"key_ingredients"`
	Benefits       []string `json:"benefits"`
	HowToUse       []string `json:"how_to_use"`
	Images         []string `json:"image_paths"`
	InStock        bool     `json:"in_stock"`
	StockCount     int      `json:"stock_count"`
	SkinType       []string `json:"skin_type,omitempty"`
	Concerns       []string `json:"concerns,omitempty"`
}

// Slug returns the path segment under /product/.
func (p Product) Slug() string {
	return strings.TrimPrefix(p.Href, "/product/")
}

// PrimaryImage returns the first gallery image, falling back to the card image.
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// Brand represents a featured brand
type Brand struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Href         string `json:"href"`
	ProductCount int    `json:"product_count"`
	Description  string `json:"description,omitempty"`
}

// Category represents a product category with its derived product count
type Category struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Href         string `json:"href"`
	ProductCount int    `json:"product_count"`
}
