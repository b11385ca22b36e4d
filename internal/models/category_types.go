package models

import "time"

// Category defines the struct for the 'categories' table. Categories form a
// tree through ParentID; Level is the depth (0 for roots) and is set when the
// row is inserted. Children is assembled in memory, never stored.
type Category struct {
	ID        int64       `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Slug      string      `json:"slug" db:"slug"`
	Image     string      `json:"image" db:"image"`
	ParentID  *int64      `json:"parentId,omitempty" db:"parent_id"`
	Level     int         `json:"level" db:"level"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
	Children  []*Category `json:"children" db:"-"`
}

// Brand defines the struct for the 'brands' table
type Brand struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
