package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateReviewInput is the JSON body for POST /api/review.
type CreateReviewInput struct {
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	ProductID int64  `json:"productId"`
}

// validateReview checks the business rules in a fixed order and stops at the
// first violation. The order matters: the message of the first failing rule
// is the one the caller sees. Lengths count characters, not bytes.
func validateReview(input *CreateReviewInput) string {
	switch {
	case utf8.RuneCountInString(input.Content) < 5:
		return "Content must be at least 5 characters long"
	case input.Rating < 1 || input.Rating > 5:
		return "Rating must be between 1 and 5"
	case !emailRegex.MatchString(input.Email):
		return "Invalid email address"
	case utf8.RuneCountInString(input.FullName) < 3:
		return "Full name must be at least 3 characters long"
	case input.ProductID == 0:
		return "Product ID is required"
	}
	return ""
}

// GetReviews is the handler for GET /api/review?productId=ID.
// Without productId it lists every review.
func (h *Handlers) GetReviews(c *gin.Context) {
	var productID *int64
	if raw := c.Query("productId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
			return
		}
		productID = &id
	}

	reviews, err := h.Reviews.ListReviews(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview is the handler for POST /api/review.
func (h *Handlers) CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := validateReview(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	review := &models.Review{
		Content:   input.Content,
		Rating:    input.Rating,
		Email:     input.Email,
		FullName:  input.FullName,
		ProductID: input.ProductID,
		CreatedAt: time.Now(),
	}

	if err := h.Reviews.CreateReview(review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}
