package store

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ListProducts returns every product with its category, brand, hashtags,
// reviews and gallery images attached. No pagination: the storefront renders
// and filters the full catalog client-side.
//
// The nesting is assembled in memory from three bulk queries (one for
// products+joins, one for hashtags, one for reviews) instead of a query per
// product.
func (s *Store) ListProducts() ([]*models.Product, error) {
	query := `
		SELECT
			p.id, p.name, p.slug, p.description, p.price, p.discount,
			p.stock, p.image, p.images, p.rating,
			p.category_id, p.brand_id, p.created_at, p.updated_at,
			c.id, c.name, c.slug, c.image, c.parent_id, c.level, c.created_at, c.updated_at,
			b.id, b.name, b.slug, b.created_at, b.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN brands b ON b.id = p.brand_id
		ORDER BY p.created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	byID := make(map[int64]*models.Product)

	for rows.Next() {
		var p models.Product
		var imagesJSON []byte

		// Joined category/brand columns are all nullable because of the
		// LEFT JOINs.
		var catID, catParent, brandID sql.NullInt64
		var catName, catSlug, catImage, brandName, brandSlug sql.NullString
		var catLevel sql.NullInt64
		var catCreated, catUpdated, brandCreated, brandUpdated sql.NullTime

		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Discount,
			&p.Stock, &p.Image, &imagesJSON, &p.Rating,
			&p.CategoryID, &p.BrandID, &p.CreatedAt, &p.UpdatedAt,
			&catID, &catName, &catSlug, &catImage, &catParent, &catLevel, &catCreated, &catUpdated,
			&brandID, &brandName, &brandSlug, &brandCreated, &brandUpdated,
		); err != nil {
			return nil, err
		}

		p.Images, err = decodeImages(imagesJSON)
		if err != nil {
			return nil, err
		}
		p.Hashtags = []models.Hashtag{}
		p.Reviews = []models.Review{}

		if catID.Valid {
			cat := models.Category{
				ID:        catID.Int64,
				Name:      catName.String,
				Slug:      catSlug.String,
				Image:     catImage.String,
				Level:     int(catLevel.Int64),
				CreatedAt: catCreated.Time,
				UpdatedAt: catUpdated.Time,
			}
			if catParent.Valid {
				parent := catParent.Int64
				cat.ParentID = &parent
			}
			p.Category = &cat
		}
		if brandID.Valid {
			p.Brand = &models.Brand{
				ID:        brandID.Int64,
				Name:      brandName.String,
				Slug:      brandSlug.String,
				CreatedAt: brandCreated.Time,
				UpdatedAt: brandUpdated.Time,
			}
		}

		products = append(products, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return []*models.Product{}, nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	if err := s.attachHashtags(byID, ids); err != nil {
		return nil, err
	}
	if err := s.attachReviews(byID, ids); err != nil {
		return nil, err
	}

	return products, nil
}

// decodeImages parses the JSON images column. An empty or NULL column is an
// empty gallery; anything else that fails to parse is a real error, reported
// like any other storage failure.
func decodeImages(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	images := []string{}
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Store) attachHashtags(byID map[int64]*models.Product, ids []int64) error {
	query := `
		SELECT ph.product_id, h.id, h.name
		FROM hashtags h
		JOIN product_hashtags ph ON ph.hashtag_id = h.id
		WHERE ph.product_id IN (` + placeholders(len(ids)) + `)`

	rows, err := s.DB.Query(query, int64Args(ids)...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var h models.Hashtag
		if err := rows.Scan(&productID, &h.ID, &h.Name); err != nil {
			return err
		}
		if p, ok := byID[productID]; ok {
			p.Hashtags = append(p.Hashtags, h)
		}
	}
	return rows.Err()
}

func (s *Store) attachReviews(byID map[int64]*models.Product, ids []int64) error {
	query := `
		SELECT id, content, rating, email, full_name, product_id, created_at
		FROM reviews
		WHERE product_id IN (` + placeholders(len(ids)) + `)
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, int64Args(ids)...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Content, &r.Rating, &r.Email, &r.FullName, &r.ProductID, &r.CreatedAt); err != nil {
			return err
		}
		if p, ok := byID[r.ProductID]; ok {
			p.Reviews = append(p.Reviews, r)
		}
	}
	return rows.Err()
}

// SearchProducts performs a case-insensitive substring match on the product
// name and returns the reduced search projection. Callers are expected to
// short-circuit empty queries before reaching the store.
func (s *Store) SearchProducts(query string) ([]models.ProductSummary, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, slug, price, discount, image, rating
		FROM products
		WHERE LOWER(name) LIKE ?
		ORDER BY created_at DESC`,
		"%"+strings.ToLower(query)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.ProductSummary{}
	for rows.Next() {
		var p models.ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Discount, &p.Image, &p.Rating); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// CreateProduct inserts a product row and returns it with the generated id.
func (s *Store) CreateProduct(p *models.Product) error {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}

	result, err := s.DB.Exec(`
		INSERT INTO products
		(name, slug, description, price, discount, stock, image, images, rating,
		 category_id, brand_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Slug, p.Description, p.Price, p.Discount, p.Stock,
		p.Image, imagesJSON, p.Rating, p.CategoryID, p.BrandID,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return err
	}

	p.ID, err = result.LastInsertId()
	return err
}

// UpdateProduct overwrites the editable columns of one product.
func (s *Store) UpdateProduct(p *models.Product) error {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(`
		UPDATE products
		SET name = ?, slug = ?, description = ?, price = ?, discount = ?,
		    stock = ?, image = ?, images = ?, category_id = ?, brand_id = ?,
		    updated_at = ?
		WHERE id = ?`,
		p.Name, p.Slug, p.Description, p.Price, p.Discount,
		p.Stock, p.Image, imagesJSON, p.CategoryID, p.BrandID,
		p.UpdatedAt, p.ID)
	return err
}

func (s *Store) DeleteProduct(id int64) error {
	_, err := s.DB.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}
