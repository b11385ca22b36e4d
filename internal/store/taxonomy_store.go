package store

import (
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ListCategoryTree fetches all categories flat and assembles the parent/child
// tree in memory, returning only the roots (children are nested inside).
func (s *Store) ListCategoryTree() ([]*models.Category, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, slug, image, parent_id, level, created_at, updated_at
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []*models.Category
	for rows.Next() {
		var cat models.Category
		// Initialize Children so leaves render as [] instead of null.
		cat.Children = []*models.Category{}
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Image,
			&cat.ParentID, &cat.Level, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		all = append(all, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buildCategoryTree(all), nil
}

// buildCategoryTree links a flat category list into its nested shape and
// returns the roots. Children hold pointers, not copies, so a node picks up
// its own children no matter where it sits in the input order; the tree
// nests to any depth.
func buildCategoryTree(all []*models.Category) []*models.Category {
	byID := make(map[int64]*models.Category, len(all))
	for _, cat := range all {
		byID[cat.ID] = cat
	}

	roots := []*models.Category{}
	for _, cat := range all {
		if cat.ParentID == nil {
			roots = append(roots, cat)
			continue
		}
		if parent, ok := byID[*cat.ParentID]; ok {
			parent.Children = append(parent.Children, cat)
		}
	}
	return roots
}

// CreateCategory inserts a category under an optional parent. Level is
// denormalized at insert (parent level + 1). A freshly inserted node has no
// children, so inserts cannot introduce a cycle; re-parenting is simply not
// offered, which keeps the no-cycle invariant.
func (s *Store) CreateCategory(cat *models.Category) error {
	if cat.ParentID != nil {
		var parentLevel int
		err := s.DB.QueryRow(
			"SELECT level FROM categories WHERE id = ?", *cat.ParentID,
		).Scan(&parentLevel)
		if err != nil {
			return err
		}
		cat.Level = parentLevel + 1
	}

	result, err := s.DB.Exec(`
		INSERT INTO categories (name, slug, image, parent_id, level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cat.Name, cat.Slug, cat.Image, cat.ParentID, cat.Level,
		cat.CreatedAt, cat.UpdatedAt)
	if err != nil {
		return err
	}

	cat.ID, err = result.LastInsertId()
	return err
}

func (s *Store) DeleteCategory(id int64) error {
	_, err := s.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	return err
}

// ListBrands returns every brand ordered by name.
func (s *Store) ListBrands() ([]models.Brand, error) {
	rows, err := s.DB.Query(
		"SELECT id, name, slug, created_at, updated_at FROM brands ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (s *Store) CreateBrand(b *models.Brand) error {
	result, err := s.DB.Exec(`
		INSERT INTO brands (name, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		b.Name, b.Slug, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}

	b.ID, err = result.LastInsertId()
	return err
}
