// Package catalog serves the static product, brand and category dataset.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/raushankrgupta/skincare-storefront/models"
)

const (
	DefaultRelatedLimit    = 4
	DefaultBestSellerLimit = 6
	DefaultNewLimit        = 6
	DefaultFeaturedLimit   = 8
)

// All returns a copy of every product.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

func GetProductByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// GetProductBySlug matches the href slug first, then the kebab-cased product name.
func GetProductBySlug(slug string) (models.Product, bool) {
	slug = strings.ToLower(strings.Trim(slug, "/"))
	if slug == "" {
		return models.Product{}, false
	}
	for _, p := range products {
		if p.Href == "/product/"+slug {
			return p, true
		}
	}
	for _, p := range products {
		if Kebab(p.Name) == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

func GetProductsByCategory(categorySlug string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out
}

// GetRelatedProducts returns products sharing the category of productID, excluding itself.
func GetRelatedProducts(productID string, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	current, ok := GetProductByID(productID)
	if !ok {
		return nil
	}
	var out []models.Product
	for _, p := range products {
		if p.ID != current.ID && p.CategorySlug == current.CategorySlug {
			out = append(out, p)
		}
	}
	return head(out, limit)
}

func GetBestSellerProducts(limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultBestSellerLimit
	}
	return head(filter(func(p models.Product) bool { return p.IsBestSeller }), limit)
}

func GetNewProducts(limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultNewLimit
	}
	return head(filter(func(p models.Product) bool { return p.IsNew }), limit)
}

// GetFeaturedProducts orders best sellers first, then by rating, on a copy of the dataset.
func GetFeaturedProducts(limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	out := All()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsBestSeller != out[j].IsBestSeller {
			return out[i].IsBestSeller
		}
		return out[i].Rating > out[j].Rating
	})
	return head(out, limit)
}

// Categories returns every category with its product count derived from the dataset.
func Categories() []models.Category {
	out := make([]models.Category, 0, len(categoryOrder))
	for i, c := range categoryOrder {
		out = append(out, models.Category{
			ID:           strconv.Itoa(i + 1),
			Slug:         c.slug,
			Name:         c.name,
			Description:  c.description,
			Image:        "/images/categories/" + c.slug + ".jpg",
			Href:         "/category/" + c.slug,
			ProductCount: len(GetProductsByCategory(c.slug)),
		})
	}
	return out
}

func GetCategory(slug string) (models.Category, bool) {
	for _, c := range Categories() {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func Brands() []models.Brand {
	out := make([]models.Brand, len(brands))
	copy(out, brands)
	return out
}

// Search matches query against name, brand, description and ingredients.
// An empty query matches everything; max <= 0 means no limit.
func Search(query, categorySlug string, max int) []models.Product {
	terms := strings.Fields(strings.ToLower(query))
	var out []models.Product
	for _, p := range products {
		if categorySlug != "" && p.CategorySlug != categorySlug {
			continue
		}
		if !matches(p, terms) {
			continue
		}
		out = append(out, p)
	}
	if max > 0 {
		return head(out, max)
	}
	return out
}

func matches(p models.Product, terms []string) bool {
	haystack := strings.ToLower(strings.Join(append([]string{
		p.Name, p.Brand, p.Category, p.Description,
	}, p.KeyIngredients...), " "))
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

var whitespace = regexp.MustCompile(`\s+`)

// Kebab lowercases s and replaces each whitespace run with a dash. Punctuation is
// kept, so "Niacinamide 10% + Zinc 1%" becomes "niacinamide-10%-+-zinc-1%".
func Kebab(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}

// FormatPrice renders an IDR amount as "Rp 189.000".
func FormatPrice(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

func filter(keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func head(ps []models.Product, n int) []models.Product {
	if len(ps) > n {
		return ps[:n]
	}
	return ps
}
