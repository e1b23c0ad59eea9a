package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/skincare-storefront/catalog"
	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

const msgProductNotFound = "Produk tidak ditemukan"

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ListProductsHandler lists the catalog, optionally narrowed by category or a
// named collection (best-seller, new, featured).
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Products API]")

	q := r.URL.Query()
	limit := queryInt(r, "limit", 0)

	var products []models.Product
	switch q.Get("collection") {
	case "best-seller":
		products = catalog.GetBestSellerProducts(limit)
	case "new":
		products = catalog.GetNewProducts(limit)
	case "featured":
		products = catalog.GetFeaturedProducts(limit)
	case "":
		if category := q.Get("category"); category != "" {
			products = catalog.GetProductsByCategory(category)
		} else {
			products = catalog.All()
		}
		if limit > 0 && len(products) > limit {
			products = products[:limit]
		}
	default:
		utils.RespondError(w, &logMessageBuilder, "Unknown collection", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d products", len(products)))
	utils.RespondJSON(w, http.StatusOK, map[string]any{"products": nonNil(products), "count": len(products)})
}

// GetProductHandler resolves a product by slug or id and includes related products.
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Product Detail API]")

	ref := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(ref); err == nil {
		ref = unescaped
	}
	product, ok := catalog.GetProductBySlug(ref)
	if !ok {
		product, ok = catalog.GetProductByID(ref)
	}
	if !ok {
		utils.RespondError(w, &logMessageBuilder, msgProductNotFound, http.StatusNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"product":         product,
		"formatted_price": catalog.FormatPrice(product.Price),
		"related":         nonNil(catalog.GetRelatedProducts(product.ID, catalog.DefaultRelatedLimit)),
	})
}

// RelatedProductsHandler lists products from the same category.
func (h *Handler) RelatedProductsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Related Products API]")

	id := chi.URLParam(r, "id")
	if _, ok := catalog.GetProductByID(id); !ok {
		utils.RespondError(w, &logMessageBuilder, msgProductNotFound, http.StatusNotFound)
		return
	}
	related := catalog.GetRelatedProducts(id, queryInt(r, "limit", catalog.DefaultRelatedLimit))
	utils.RespondJSON(w, http.StatusOK, map[string]any{"products": nonNil(related)})
}

// ListCategoriesHandler lists the categories with their product counts.
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"categories": catalog.Categories()})
}

// GetCategoryHandler returns a category and its products.
func (h *Handler) GetCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Category API]")

	slug := chi.URLParam(r, "slug")
	category, ok := catalog.GetCategory(slug)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, "Kategori tidak ditemukan", http.StatusNotFound)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"products": nonNil(catalog.GetProductsByCategory(slug)),
	})
}

// ListBrandsHandler lists the featured brands.
func (h *Handler) ListBrandsHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"brands": catalog.Brands()})
}

// SearchHandler matches every query term against the product text and ingredients.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Search API]")

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	results := catalog.Search(query, q.Get("category"), queryInt(r, "limit", 0))

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Query %q matched %d products", query, len(results)))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"products": nonNil(results),
		"count":    len(results),
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
