package store

import (
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ListReviews returns reviews newest first, optionally restricted to one
// product.
func (s *Store) ListReviews(productID *int64) ([]models.Review, error) {
	query := `
		SELECT id, content, rating, email, full_name, product_id, created_at
		FROM reviews`
	var args []interface{}

	if productID != nil {
		query += " WHERE product_id = ?"
		args = append(args, *productID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Content, &r.Rating, &r.Email,
			&r.FullName, &r.ProductID, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// CreateReview inserts a review linked to its product. Validation happens at
// the handler boundary; the store only persists.
func (s *Store) CreateReview(r *models.Review) error {
	result, err := s.DB.Exec(`
		INSERT INTO reviews (content, rating, email, full_name, product_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.Content, r.Rating, r.Email, r.FullName, r.ProductID, r.CreatedAt)
	if err != nil {
		return err
	}

	r.ID, err = result.LastInsertId()
	return err
}
