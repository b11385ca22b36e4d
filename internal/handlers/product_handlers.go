package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// GetProducts is the handler for GET /api/products.
// It returns the full catalog with nested category, brand, hashtags, reviews
// and gallery images. No pagination and no filtering here; the storefront
// filters client-side and search has its own endpoint.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The catalog must never be served stale.
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, products)
}

// SearchProducts is the handler for GET /api/search?query=Q.
// An empty or whitespace-only query short-circuits to an empty result set
// without touching storage.
func (h *Handlers) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"products": []models.ProductSummary{}})
		return
	}

	products, err := h.Catalog.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ProductInput is the JSON body for the admin create/update endpoints.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	CategoryID  *int64   `json:"categoryId"`
	BrandID     *int64   `json:"brandId"`
}

// validateProduct applies the catalog business rules in order; the first
// violated rule is the one reported.
func validateProduct(input *ProductInput) string {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return "Name is required"
	case input.Price < 0:
		return "Price must not be negative"
	case input.Stock < 0:
		return "Stock must not be negative"
	}
	return ""
}

// CreateProduct is the handler for POST /api/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProduct(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if input.Images == nil {
		input.Images = []string{}
	}

	product := &models.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		Stock:       input.Stock,
		Image:       input.Image,
		Images:      input.Images,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.Catalog.CreateProduct(product); err != nil {
		// Most likely a UNIQUE violation on the slug.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct is the handler for PUT /api/admin/products/:id.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProduct(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if input.Images == nil {
		input.Images = []string{}
	}

	product := &models.Product{
		ID:          id,
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		Stock:       input.Stock,
		Image:       input.Image,
		Images:      input.Images,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		UpdatedAt:   time.Now(),
	}

	if err := h.Catalog.UpdateProduct(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the handler for DELETE /api/admin/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.Catalog.DeleteProduct(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
