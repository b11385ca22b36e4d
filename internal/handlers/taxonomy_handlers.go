package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// --- Category handlers ---

// CreateCategoryInput is the JSON body for POST /api/admin/categories.
type CreateCategoryInput struct {
	Name     string `json:"name" binding:"required"`
	Image    string `json:"image"`
	ParentID *int64 `json:"parentId"`
}

// GetCategories is the handler for GET /api/categories.
// Returns the category tree: roots with children nested.
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.Catalog.ListCategoryTree()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory is the handler for POST /api/admin/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		Image:     input.Image,
		ParentID:  input.ParentID,
		Children:  []*models.Category{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.Catalog.CreateCategory(category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// DeleteCategory is the handler for DELETE /api/admin/categories/:id.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.Catalog.DeleteCategory(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// --- Brand handlers ---

// CreateBrandInput is the JSON body for POST /api/admin/brands.
type CreateBrandInput struct {
	Name string `json:"name" binding:"required"`
}

// GetBrands is the handler for GET /api/brands.
func (h *Handlers) GetBrands(c *gin.Context) {
	brands, err := h.Catalog.ListBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// CreateBrand is the handler for POST /api/admin/brands.
func (h *Handlers) CreateBrand(c *gin.Context) {
	var input CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand := &models.Brand{
		Name:      input.Name,
		Slug:      slug.Make(input.Name),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.Catalog.CreateBrand(brand); err != nil {
		// Most likely a UNIQUE constraint on name or slug.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand, it may already exist."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Brand created successfully", "brand": brand})
}
