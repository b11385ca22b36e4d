package models

import "time"

// Product is the model for the 'products' table.
// Nullable columns use pointers so they serialize cleanly as JSON null
// instead of the sql.Null* wrapper shape.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Discount    float64 `json:"discount" db:"discount"`
	Stock       int     `json:"stock" db:"stock"`
	Image       string  `json:"image" db:"image"`
	Rating      float64 `json:"rating" db:"rating"`

	// Ordered gallery URLs, stored as a JSON column.
	Images []string `json:"images"`

	CategoryID *int64 `json:"categoryId,omitempty" db:"category_id"`
	BrandID    *int64 `json:"brandId,omitempty" db:"brand_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joins (not columns, populated by the store)
	Category *Category `json:"category,omitempty" db:"-"`
	Brand    *Brand    `json:"brand,omitempty" db:"-"`
	Hashtags []Hashtag `json:"hashtags" db:"-"`
	Reviews  []Review  `json:"reviews" db:"-"`
}

// ProductSummary is the reduced projection returned by the search endpoint.
type ProductSummary struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Slug     string  `json:"slug" db:"slug"`
	Price    float64 `json:"price" db:"price"`
	Discount float64 `json:"discount" db:"discount"`
	Image    string  `json:"image" db:"image"`
	Rating   float64 `json:"rating" db:"rating"`
}

// Hashtag is the model for the 'hashtags' table, linked to products through
// the 'product_hashtags' join table.
type Hashtag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
